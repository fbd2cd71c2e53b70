package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/service"
)

// unitIDParam parses the unitID path parameter, replying 400 on garbage.
func unitIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("unitID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidUnitID})
		return 0, false
	}
	return uint(id), true
}

// respondMatchError translates service and rule rejections into HTTP
// replies: rule rejections are client mistakes (400) and carry their
// own message, lifecycle conflicts map to 404/409.
func respondMatchError(c *gin.Context, err error) {
	switch err {
	case service.ErrNoMatch:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrNoMatch})
	case service.ErrMatchFinished:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFinished})
	case service.ErrUnitNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUnitNotFound})
	case service.ErrWrongFaction:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrWrongFaction})
	case engine.ErrOutOfBounds, engine.ErrImpassable, engine.ErrInsufficientMovement,
		engine.ErrAlreadyAttacked, engine.ErrNoTarget, engine.ErrFriendlyFire,
		engine.ErrOutOfRange, engine.ErrAbilityNotUsable, engine.ErrNoValidTarget:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		logging.Error("Unexpected match action failure", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrActionFailed})
	}
}
