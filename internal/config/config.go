package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
	"github.com/Mastaba/FantasySquadTactics/internal/setup"

	"github.com/caarlos0/env/v11"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Board *struct {
		Height int `json:"height"`
		Width  int `json:"width"`
		// Optional terrain mix for generated maps, keyed by terrain
		// name ("Plains", "Forest", ...). Omitted terrains are never
		// generated. When absent the default mix is used.
		TerrainWeights map[string]int `json:"terrain_weights"`
	} `json:"board"`
	Match *struct {
		ArmyPoints  int    `json:"army_points"`
		Orientation string `json:"orientation"`
	} `json:"match"`
}

// envOverrides mirrors the file keys that may also be set through the
// environment. Environment values win over file values.
type envOverrides struct {
	Address     string `env:"SQUAD_ADDRESS"`
	BoardHeight int    `env:"SQUAD_BOARD_HEIGHT"`
	BoardWidth  int    `env:"SQUAD_BOARD_WIDTH"`
	ArmyPoints  int    `env:"SQUAD_ARMY_POINTS"`
	Orientation string `env:"SQUAD_ORIENTATION"`
}

// Config is the validated server configuration with all defaults applied.
type Config struct {
	ServerAddress  string
	BoardHeight    int
	BoardWidth     int
	TerrainWeights setup.TerrainWeights
	ArmyPoints     int
	Orientation    setup.Orientation
}

// LoadConfig reads the configuration file at path, applies environment
// overrides and returns the validated configuration. The file is
// optional: when it does not exist the defaults (a 10x10 board, 20-point
// armies, north-south deployment on :8080) plus the environment cover
// everything.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		ServerAddress:  ":8080",
		BoardHeight:    10,
		BoardWidth:     10,
		TerrainWeights: setup.DefaultTerrainWeights(),
		ArmyPoints:     20,
		Orientation:    setup.OrientationNorthSouth,
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		var rc rawConfig
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if rc.Server != nil && rc.Server.Address != "" {
			cfg.ServerAddress = rc.Server.Address
		}
		if rc.Board != nil {
			if rc.Board.Height > 0 {
				cfg.BoardHeight = rc.Board.Height
			}
			if rc.Board.Width > 0 {
				cfg.BoardWidth = rc.Board.Width
			}
			if len(rc.Board.TerrainWeights) > 0 {
				tw := make(setup.TerrainWeights, len(rc.Board.TerrainWeights))
				for name, w := range rc.Board.TerrainWeights {
					t := game.TerrainType(name)
					if !knownTerrain(t) {
						return nil, fmt.Errorf("config file %s: unknown terrain '%s' in terrain_weights", path, name)
					}
					tw[t] = w
				}
				cfg.TerrainWeights = tw
			}
		}
		if rc.Match != nil {
			if rc.Match.ArmyPoints > 0 {
				cfg.ArmyPoints = rc.Match.ArmyPoints
			}
			if rc.Match.Orientation != "" {
				cfg.Orientation = setup.Orientation(rc.Match.Orientation)
			}
		}
	case os.IsNotExist(err):
		// The file is optional.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var ov envOverrides
	if err := env.Parse(&ov); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	if ov.Address != "" {
		cfg.ServerAddress = ov.Address
	}
	if ov.BoardHeight > 0 {
		cfg.BoardHeight = ov.BoardHeight
	}
	if ov.BoardWidth > 0 {
		cfg.BoardWidth = ov.BoardWidth
	}
	if ov.ArmyPoints > 0 {
		cfg.ArmyPoints = ov.ArmyPoints
	}
	if ov.Orientation != "" {
		cfg.Orientation = setup.Orientation(ov.Orientation)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BoardHeight < 2 || c.BoardWidth < 2 {
		return fmt.Errorf("board must be at least 2x2, got %dx%d", c.BoardHeight, c.BoardWidth)
	}
	if c.ArmyPoints < 1 {
		return fmt.Errorf("army_points must be positive, got %d", c.ArmyPoints)
	}
	switch c.Orientation {
	case setup.OrientationNorthSouth, setup.OrientationEastWest:
	default:
		return fmt.Errorf("unknown orientation '%s' (use north-south or east-west)", c.Orientation)
	}
	positive := false
	for t, w := range c.TerrainWeights {
		if w < 0 {
			return fmt.Errorf("terrain weight for %s must not be negative", t)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("terrain_weights needs at least one positive entry")
	}
	return nil
}

func knownTerrain(t game.TerrainType) bool {
	for _, k := range game.TerrainTypes {
		if k == t {
			return true
		}
	}
	return false
}
