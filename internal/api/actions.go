package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// MoveUnit walks the unit along a cheapest path to the requested cell.
func (h *Handler) MoveUnit(c *gin.Context) {
	var req struct {
		UnitID uint `json:"unit_id"`
		Row    int  `json:"row"`
		Col    int  `json:"col"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	cost, state, err := h.matches.Move(req.UnitID, game.Position{Row: req.Row, Col: req.Col})
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cost": cost, "match": state})
}

// AttackUnit resolves an attack against the unit standing on the cell.
func (h *Handler) AttackUnit(c *gin.Context) {
	var req struct {
		UnitID uint `json:"unit_id"`
		Row    int  `json:"row"`
		Col    int  `json:"col"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	result, state, err := h.matches.Attack(req.UnitID, game.Position{Row: req.Row, Col: req.Col})
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attack": result, "match": state})
}

// UseAbility triggers one of the unit's active abilities. Row and col
// are optional; self- and area-targeted abilities take no target cell.
func (h *Handler) UseAbility(c *gin.Context) {
	var req struct {
		UnitID  uint   `json:"unit_id"`
		Ability string `json:"ability"`
		Row     *int   `json:"row"`
		Col     *int   `json:"col"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Ability == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	var target *game.Position
	if req.Row != nil && req.Col != nil {
		target = &game.Position{Row: *req.Row, Col: *req.Col}
	}

	result, state, err := h.matches.UseAbility(req.UnitID, req.Ability, target)
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "match": state})
}

// EndTurn ends the active faction's turn and reports upkeep.
func (h *Handler) EndTurn(c *gin.Context) {
	report, state, err := h.matches.EndTurn()
	if err != nil {
		respondMatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report, "match": state})
}
