package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Mastaba/FantasySquadTactics/internal/constants"
	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/keys"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"
	"github.com/Mastaba/FantasySquadTactics/internal/setup"

	"github.com/google/uuid"
)

var (
	ErrNotEnoughFactions = errors.New("need at least two factions with units to start a match")
	ErrEmptyArmy         = errors.New("army points are too low to recruit any unit")
	ErrSameFaction       = errors.New("factions must be distinct")
	ErrBadMatchOptions   = errors.New("invalid match options")
)

// CreateMatchOptions selects the factions and overrides board and army
// parameters for one match. Zero values fall back to the configured
// settings. Faction keys come either both set (an explicit pairing) or
// both empty (a random distinct pair from the catalog).
type CreateMatchOptions struct {
	FactionA    string
	FactionB    string
	BoardHeight int
	BoardWidth  int
	ArmyPoints  int
	Orientation string
}

// CreateMatch drafts two armies and starts a fresh match on a newly
// generated map, replacing whatever match was running before.
func (s *MatchService) CreateMatch(opts CreateMatchOptions) (*MatchState, error) {
	settings, err := s.resolveSettings(opts)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	factionA, factionB, err := s.pickFactions(opts, rng)
	if err != nil {
		return nil, err
	}

	armyA, err := setup.BuildArmy(&factionA, settings.ArmyPoints, rng)
	if err != nil {
		return nil, err
	}
	armyB, err := setup.BuildArmy(&factionB, settings.ArmyPoints, rng)
	if err != nil {
		return nil, err
	}
	if len(armyA) == 0 || len(armyB) == 0 {
		return nil, ErrEmptyArmy
	}

	grid := setup.GenerateMap(settings.BoardHeight, settings.BoardWidth, settings.TerrainWeights, rng)
	roster, err := setup.PlaceArmies(grid, armyA, armyB, settings.Orientation)
	if err != nil {
		return nil, err
	}
	m := engine.NewMatch(uuid.NewString(), factionA.Name, factionB.Name, grid, roster)

	s.mu.Lock()
	s.match = m
	state := s.commitLocked()
	s.mu.Unlock()

	logging.Info("match created", logging.Fields{
		constants.LogFieldMatchID: m.PublicID,
		"factions":                factionA.Name + " vs " + factionB.Name,
	})
	return state, nil
}

// resolveSettings overlays per-match options onto the configured
// defaults and validates the result.
func (s *MatchService) resolveSettings(opts CreateMatchOptions) (MatchSettings, error) {
	settings := s.settings
	if opts.BoardHeight != 0 {
		settings.BoardHeight = opts.BoardHeight
	}
	if opts.BoardWidth != 0 {
		settings.BoardWidth = opts.BoardWidth
	}
	if opts.ArmyPoints != 0 {
		settings.ArmyPoints = opts.ArmyPoints
	}
	if opts.Orientation != "" {
		settings.Orientation = setup.Orientation(opts.Orientation)
	}

	if settings.BoardHeight < 2 || settings.BoardWidth < 2 || settings.ArmyPoints < 1 {
		return settings, ErrBadMatchOptions
	}
	switch settings.Orientation {
	case setup.OrientationNorthSouth, setup.OrientationEastWest:
	default:
		return settings, ErrBadMatchOptions
	}
	return settings, nil
}

// pickFactions resolves the two sides: an explicit key pair when the
// options name one, otherwise a random distinct pair of factions that
// actually have unit templates.
func (s *MatchService) pickFactions(opts CreateMatchOptions, rng *rand.Rand) (game.Faction, game.Faction, error) {
	var zero game.Faction
	if (opts.FactionA == "") != (opts.FactionB == "") {
		return zero, zero, ErrBadMatchOptions
	}

	if opts.FactionA != "" {
		if keys.FactionKey(opts.FactionA) == keys.FactionKey(opts.FactionB) {
			return zero, zero, ErrSameFaction
		}
		a, err := s.factions.FactionByKey(opts.FactionA)
		if err != nil {
			return zero, zero, err
		}
		b, err := s.factions.FactionByKey(opts.FactionB)
		if err != nil {
			return zero, zero, err
		}
		return *a, *b, nil
	}

	catalog, err := s.factions.ListFactions()
	if err != nil {
		return zero, zero, err
	}
	eligible := make([]game.Faction, 0, len(catalog))
	for _, f := range catalog {
		if len(f.Units) > 0 {
			eligible = append(eligible, f)
		}
	}
	if len(eligible) < 2 {
		return zero, zero, ErrNotEnoughFactions
	}

	i := rng.Intn(len(eligible))
	j := rng.Intn(len(eligible) - 1)
	if j >= i {
		j++
	}
	return eligible[i], eligible[j], nil
}
