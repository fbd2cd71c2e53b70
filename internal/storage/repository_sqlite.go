package storage

import (
	"errors"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/keys"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps an opened catalog database.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) ListFactions() ([]game.Faction, error) {
	var factions []game.Faction
	if err := r.db.Preload("Units").Order("name").Find(&factions).Error; err != nil {
		return nil, err
	}
	return factions, nil
}

func (r *sqliteRepository) FactionByKey(key string) (*game.Faction, error) {
	var f game.Faction
	err := r.db.Preload("Units").Where("key = ?", keys.FactionKey(key)).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *sqliteRepository) SaveFaction(f *game.Faction) error {
	if f.Key == "" {
		f.Key = keys.FactionKey(f.Name)
	} else {
		f.Key = keys.FactionKey(f.Key)
	}
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(f).Error
}
