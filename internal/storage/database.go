package storage

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the catalog database, keeps its schema current
// via AutoMigrate and seeds the built-in factions when the catalog is
// empty.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Faction{}, &game.UnitTemplate{}); err != nil {
		return nil, err
	}
	if err := seedDefaultFactions(db); err != nil {
		return nil, err
	}
	return db, nil
}

// seedDefaultFactions fills an empty catalog with the built-in
// factions. A non-empty catalog is left alone: edits made through the
// API must survive restarts.
func seedDefaultFactions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&game.Faction{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	factions := game.DefaultFactions()
	if err := db.Create(&factions).Error; err != nil {
		return err
	}
	logging.Info("seeded faction catalog", logging.Fields{"factions": len(factions)})
	return nil
}
