package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/service"
	"github.com/Mastaba/FantasySquadTactics/internal/setup"
	"github.com/Mastaba/FantasySquadTactics/internal/storage"
)

// CreateMatch starts a fresh match, replacing any match already in
// progress. The optional body picks the factions and overrides board
// parameters; an empty body drafts a random pairing on the configured
// defaults.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req struct {
		FactionA    string `json:"faction_a"`
		FactionB    string `json:"faction_b"`
		BoardHeight int    `json:"board_height"`
		BoardWidth  int    `json:"board_width"`
		ArmyPoints  int    `json:"army_points"`
		Orientation string `json:"orientation"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
	}

	state, err := h.matches.CreateMatch(service.CreateMatchOptions{
		FactionA:    req.FactionA,
		FactionB:    req.FactionB,
		BoardHeight: req.BoardHeight,
		BoardWidth:  req.BoardWidth,
		ArmyPoints:  req.ArmyPoints,
		Orientation: req.Orientation,
	})
	switch err {
	case nil:
		c.JSON(http.StatusOK, state)
	case service.ErrSameFaction, service.ErrBadMatchOptions,
		setup.ErrNoValidUnits, setup.ErrArmyDoesNotFit:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case storage.ErrFactionNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrFactionNotFound})
	case service.ErrNotEnoughFactions, service.ErrEmptyArmy:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	default:
		logging.Error("Failed to create match", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
	}
}

// GetMatch returns the current match snapshot.
func (h *Handler) GetMatch(c *gin.Context) {
	state, err := h.matches.State()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrNoMatch})
		return
	}
	c.JSON(http.StatusOK, state)
}

// UnitMoves returns the cells the unit can still reach this turn with
// the terrain cost of the cheapest path to each.
func (h *Handler) UnitMoves(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}
	moves, err := h.matches.LegalMoves(id)
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, moves)
}

// UnitAttacks returns the enemy positions the unit can attack from
// where it stands.
func (h *Handler) UnitAttacks(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}
	attacks, err := h.matches.LegalAttacks(id)
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, attacks)
}

// UnitAbilityTargets returns the positions the unit's targeted
// abilities can currently reach.
func (h *Handler) UnitAbilityTargets(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}
	targets, err := h.matches.AbilityTargets(id)
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// UnitEffects returns one rendered line per active effect on the unit.
func (h *Handler) UnitEffects(c *gin.Context) {
	id, ok := unitIDParam(c)
	if !ok {
		return
	}
	summary, err := h.matches.EffectSummary(id)
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
