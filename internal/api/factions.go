package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/storage"
)

// ListFactions returns the recruitable catalog with unit templates.
func (h *Handler) ListFactions(c *gin.Context) {
	factions, err := h.repo.ListFactions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
		return
	}
	c.JSON(http.StatusOK, factions)
}

// GetFaction returns a single faction by its catalog key.
func (h *Handler) GetFaction(c *gin.Context) {
	faction, err := h.repo.FactionByKey(c.Param("factionKey"))
	switch err {
	case nil:
		c.JSON(http.StatusOK, faction)
	case storage.ErrFactionNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFactionNotFound})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCatalog})
	}
}

// SaveFaction creates or updates a catalog faction and its templates.
func (h *Handler) SaveFaction(c *gin.Context) {
	var faction game.Faction
	if err := c.ShouldBindJSON(&faction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	faction.Name = strings.TrimSpace(faction.Name)
	if faction.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(faction.Name) > 64 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFactionNameLength})
		return
	}

	if err := h.repo.SaveFaction(&faction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedSaveFaction})
		return
	}
	c.JSON(http.StatusOK, faction)
}

// ListAbilities returns the built-in ability catalog.
func (h *Handler) ListAbilities(c *gin.Context) {
	c.JSON(http.StatusOK, game.DefaultAbilities())
}
