package service

import (
	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
)

// Move walks a unit to dest and returns the movement spent plus the
// resulting state.
func (s *MatchService) Move(unitID uint, dest game.Position) (int, *MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.actingUnitLocked(unitID)
	if err != nil {
		return 0, nil, err
	}
	cost, err := engine.Move(s.match, u, dest)
	if err != nil {
		return 0, nil, err
	}
	engine.ReconcileAfterAction(s.match)
	return cost, s.commitLocked(), nil
}

// Attack resolves an attack against the unit standing on target.
func (s *MatchService) Attack(unitID uint, target game.Position) (*engine.AttackResult, *MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.actingUnitLocked(unitID)
	if err != nil {
		return nil, nil, err
	}
	result, err := engine.Attack(s.match, u, target)
	if err != nil {
		return nil, nil, err
	}
	engine.ReconcileAfterAction(s.match)
	return result, s.commitLocked(), nil
}

// UseAbility runs the unit's special ability. target is required by
// single-target abilities and ignored by self and area ones.
func (s *MatchService) UseAbility(unitID uint, ability string, target *game.Position) (*engine.AbilityResult, *MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, err := s.actingUnitLocked(unitID)
	if err != nil {
		return nil, nil, err
	}
	result, err := engine.ExecuteAbility(s.match, u, ability, target)
	if err != nil {
		return nil, nil, err
	}
	engine.ReconcileAfterAction(s.match)
	return result, s.commitLocked(), nil
}

// EndTurn hands the initiative to the opponent and runs the turn
// boundary bookkeeping.
func (s *MatchService) EndTurn() (*engine.TurnReport, *MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.match == nil {
		return nil, nil, ErrNoMatch
	}
	if s.match.Finished() {
		return nil, nil, ErrMatchFinished
	}
	report := engine.EndTurn(s.match)
	state := s.commitLocked()
	logging.Info("turn ended", logging.Fields{
		constants.LogFieldMatchID: s.match.PublicID,
		constants.LogFieldTurn:    report.Turn,
		constants.LogFieldFaction: report.CurrentFaction,
	})
	return report, state, nil
}
