package engine

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// NewMatch assembles a ready-to-play match from the pieces setup built:
// faction A opens, the turn counter starts at 1 and effect state is
// reconciled so the very first legality query sees fresh auras.
func NewMatch(publicID, factionA, factionB string, grid *game.Grid, units *game.Roster) *game.Match {
	m := &game.Match{
		PublicID:       publicID,
		Turn:           1,
		CurrentFaction: factionA,
		FactionA:       factionA,
		FactionB:       factionB,
		Status:         game.MatchStatusActive,
		Grid:           grid,
		Units:          units,
	}
	Reconcile(m)
	updateStatus(m)
	return m
}

// updateStatus finishes the match once a side has no units left. A
// drawn finish (both sides empty) is only reachable through
// damage-over-time.
func updateStatus(m *game.Match) {
	if m.Status == game.MatchStatusFinished {
		return
	}
	aLeft := len(m.Units.OfFaction(m.FactionA))
	bLeft := len(m.Units.OfFaction(m.FactionB))
	switch {
	case aLeft == 0 && bLeft == 0:
		m.Status = game.MatchStatusFinished
	case aLeft == 0:
		m.Status = game.MatchStatusFinished
		m.Winner = m.FactionB
	case bLeft == 0:
		m.Status = game.MatchStatusFinished
		m.Winner = m.FactionA
	}
}
