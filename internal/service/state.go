package service

import (
	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// UnitState is one unit as clients see it: the live unit plus the
// derived numbers the engine would otherwise have to be asked for one
// by one.
type UnitState struct {
	*game.Unit
	MovementBudget int            `json:"movement_budget"`
	EffectiveRange int            `json:"effective_range"`
	CanAttack      bool           `json:"can_attack"`
	Abilities      []game.Ability `json:"available_abilities,omitempty"`
}

// MoveOption is one reachable cell and the movement it costs.
type MoveOption struct {
	Position game.Position `json:"position"`
	Cost     int           `json:"cost"`
}

// MatchState is the full client-facing snapshot. Every field is an
// independent copy except the grid, which never changes after setup.
type MatchState struct {
	PublicID       string           `json:"public_id"`
	Turn           int              `json:"turn"`
	CurrentFaction string           `json:"current_faction"`
	FactionA       string           `json:"faction_a"`
	FactionB       string           `json:"faction_b"`
	Status         game.MatchStatus `json:"status"`
	Winner         string           `json:"winner,omitempty"`
	Grid           *game.Grid       `json:"grid"`
	Units          []UnitState      `json:"units"`
	Revision       uint64           `json:"revision"`
}

// snapshotLocked builds a MatchState from the live match. Callers hold
// at least the read lock.
func (s *MatchService) snapshotLocked() *MatchState {
	m := s.match
	live := m.Units.Units()
	units := make([]UnitState, 0, len(live))
	for _, u := range live {
		cu := *u
		cu.Effects = u.Effects.Clone()
		units = append(units, UnitState{
			Unit:           &cu,
			MovementBudget: engine.MovementBudget(u),
			EffectiveRange: engine.EffectiveRange(u),
			CanAttack:      engine.CanAttack(u),
			Abilities:      engine.AvailableActiveAbilities(u),
		})
	}
	return &MatchState{
		PublicID:       m.PublicID,
		Turn:           m.Turn,
		CurrentFaction: m.CurrentFaction,
		FactionA:       m.FactionA,
		FactionB:       m.FactionB,
		Status:         m.Status,
		Winner:         m.Winner,
		Grid:           m.Grid,
		Units:          units,
		Revision:       s.revision,
	}
}
