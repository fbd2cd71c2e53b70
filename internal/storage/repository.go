package storage

import (
	"errors"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// ErrFactionNotFound is returned when no catalog row matches the
// requested key.
var ErrFactionNotFound = errors.New("faction not found")

// Repository is the persistence surface of the faction catalog. Match
// state is deliberately absent: running matches live in memory only,
// and only the recruitable catalog survives restarts.
type Repository interface {
	// ListFactions returns every catalog faction with its unit
	// templates, ordered by display name.
	ListFactions() ([]game.Faction, error)
	// FactionByKey resolves one faction by its canonical key. The key
	// is canonicalized before lookup, so display names work too.
	FactionByKey(key string) (*game.Faction, error)
	// SaveFaction inserts or updates a faction and its templates.
	SaveFaction(f *game.Faction) error
}
