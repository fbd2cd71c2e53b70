package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mastaba/FantasySquadTactics/internal/version"
)

// Version reports the build stamp baked in at link time.
func Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
