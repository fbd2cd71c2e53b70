package service

import (
	"errors"
	"sync"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/setup"
)

// Rejections shared by every match operation.
var (
	ErrNoMatch       = errors.New("no match in progress")
	ErrMatchFinished = errors.New("match is already finished")
	ErrUnitNotFound  = errors.New("unit not found")
	ErrWrongFaction  = errors.New("unit does not belong to the active faction")
)

// FactionSource supplies the faction catalog armies are drafted from.
// The storage repository satisfies it.
type FactionSource interface {
	ListFactions() ([]game.Faction, error)
	FactionByKey(key string) (*game.Faction, error)
}

// Notifier receives a fresh state snapshot after every successful
// mutation. Implementations must not block.
type Notifier interface {
	MatchChanged(state *MatchState)
}

// MatchSettings fixes the board and army parameters new matches are
// created with.
type MatchSettings struct {
	BoardHeight    int
	BoardWidth     int
	TerrainWeights setup.TerrainWeights
	ArmyPoints     int
	Orientation    setup.Orientation
}

// MatchService owns the single in-memory match and serializes every
// read and write against it. The revision counter bumps on each
// successful mutation; read queries use it to collapse duplicate work.
type MatchService struct {
	factions FactionSource
	settings MatchSettings
	notifier Notifier

	mu       sync.RWMutex
	match    *game.Match
	revision uint64
}

// NewMatchService wires the service. notifier may be nil.
func NewMatchService(factions FactionSource, settings MatchSettings, notifier Notifier) *MatchService {
	return &MatchService{factions: factions, settings: settings, notifier: notifier}
}

// State returns a snapshot of the current match.
func (s *MatchService) State() (*MatchState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.match == nil {
		return nil, ErrNoMatch
	}
	return s.snapshotLocked(), nil
}

// actingUnitLocked validates that the unit may act right now. Callers
// hold the write lock.
func (s *MatchService) actingUnitLocked(unitID uint) (*game.Unit, error) {
	if s.match == nil {
		return nil, ErrNoMatch
	}
	if s.match.Finished() {
		return nil, ErrMatchFinished
	}
	u, ok := s.match.Units.ByID(unitID)
	if !ok {
		return nil, ErrUnitNotFound
	}
	if u.Faction != s.match.CurrentFaction {
		return nil, ErrWrongFaction
	}
	return u, nil
}

// queryUnitLocked resolves a unit for read-only queries. Units of
// either faction may be inspected at any time.
func (s *MatchService) queryUnitLocked(unitID uint) (*game.Unit, error) {
	if s.match == nil {
		return nil, ErrNoMatch
	}
	u, ok := s.match.Units.ByID(unitID)
	if !ok {
		return nil, ErrUnitNotFound
	}
	return u, nil
}

// commitLocked publishes a completed mutation: bump the revision, cut a
// snapshot and hand it to the notifier. Callers hold the write lock.
func (s *MatchService) commitLocked() *MatchState {
	s.revision++
	state := s.snapshotLocked()
	if s.notifier != nil {
		s.notifier.MatchChanged(state)
	}
	if s.match.Finished() {
		logging.Info("match finished", logging.Fields{
			constants.LogFieldMatchID: s.match.PublicID,
			constants.LogFieldWinner:  s.match.Winner,
		})
	}
	return state
}
