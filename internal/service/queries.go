package service

import (
	"sort"
	"strconv"

	"github.com/Mastaba/FantasySquadTactics/internal/dedupe"
	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// queryKey builds the collapse key for a read query: identical queries
// against the same revision share a single computation.
func (s *MatchService) queryKey(kind string, unitID uint) string {
	s.mu.RLock()
	rev := s.revision
	s.mu.RUnlock()
	return kind + ":" + strconv.FormatUint(rev, 10) + ":" + strconv.FormatUint(uint64(unitID), 10)
}

// LegalMoves lists every cell the unit can reach this turn in board
// order, each with its cheapest path cost.
func (s *MatchService) LegalMoves(unitID uint) ([]MoveOption, error) {
	v, err, _ := dedupe.QueryGroup.Do(s.queryKey("moves", unitID), func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		u, err := s.queryUnitLocked(unitID)
		if err != nil {
			return nil, err
		}
		reach := engine.LegalMoves(s.match, u)
		out := make([]MoveOption, 0, len(reach))
		for p, cost := range reach {
			out = append(out, MoveOption{Position: p, Cost: cost})
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Position.Row != out[j].Position.Row {
				return out[i].Position.Row < out[j].Position.Row
			}
			return out[i].Position.Col < out[j].Position.Col
		})
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]MoveOption), nil
}

// LegalAttacks lists the enemy positions the unit can hit this turn.
func (s *MatchService) LegalAttacks(unitID uint) ([]game.Position, error) {
	v, err, _ := dedupe.QueryGroup.Do(s.queryKey("attacks", unitID), func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		u, err := s.queryUnitLocked(unitID)
		if err != nil {
			return nil, err
		}
		return engine.LegalAttacks(s.match, u), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.Position), nil
}

// AbilityTargets lists the cells the unit's special ability accepts.
func (s *MatchService) AbilityTargets(unitID uint) ([]game.Position, error) {
	v, err, _ := dedupe.QueryGroup.Do(s.queryKey("ability-targets", unitID), func() (interface{}, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		u, err := s.queryUnitLocked(unitID)
		if err != nil {
			return nil, err
		}
		return engine.LegalAbilityTargets(s.match, u), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.Position), nil
}

// EffectSummary renders the unit's active effects, one line each. It is
// cheap enough to skip the collapse group.
func (s *MatchService) EffectSummary(unitID uint) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, err := s.queryUnitLocked(unitID)
	if err != nil {
		return nil, err
	}
	return u.Effects.Summary(), nil
}
