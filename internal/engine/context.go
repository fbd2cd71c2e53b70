package engine

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// --- Action context and helpers ----------------------------------------

type actionContext struct {
	m        *game.Match
	messages []string
}

func newActionContext(m *game.Match) *actionContext {
	return &actionContext{m: m, messages: make([]string, 0, 16)}
}

func (ac *actionContext) add(msg string) { ac.messages = append(ac.messages, msg) }

// defeat takes a unit off the board, narrates it and re-evaluates the
// match outcome. HP is clamped at 0 so reports never show negative
// health.
func (ac *actionContext) defeat(u *game.Unit) {
	if u.HitPoints < 0 {
		u.HitPoints = 0
	}
	ac.m.Units.Remove(u.ID)
	ac.add(u.Name + " is defeated")
	updateStatus(ac.m)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
