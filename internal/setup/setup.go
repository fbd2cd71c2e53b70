package setup

import (
	"errors"
	"math/rand"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// Orientation says which opposite board edges the two armies deploy on.
type Orientation string

const (
	OrientationNorthSouth Orientation = "north-south"
	OrientationEastWest   Orientation = "east-west"
)

var (
	ErrNoValidUnits       = errors.New("faction has no recruitable unit templates")
	ErrUnknownOrientation = errors.New("unknown placement orientation")
	ErrArmyDoesNotFit     = errors.New("army does not fit along its starting edge")
)

// TerrainWeights holds the relative share of each terrain in generated
// maps. Terrains missing from the table are never generated.
type TerrainWeights map[game.TerrainType]int

// DefaultTerrainWeights is the standard map mix: mostly open ground
// with scattered obstacles and the occasional settlement.
func DefaultTerrainWeights() TerrainWeights {
	return TerrainWeights{
		game.TerrainPlains:   40,
		game.TerrainForest:   30,
		game.TerrainMountain: 10,
		game.TerrainLake:     5,
		game.TerrainRiver:    5,
		game.TerrainFarm:     5,
		game.TerrainVillage:  3,
		game.TerrainCity:     2,
	}
}

// GenerateMap rolls every cell independently against the weight table.
// With no usable weights the board stays all plains. All randomness
// comes from rng, so a fixed seed reproduces the map.
func GenerateMap(height, width int, weights TerrainWeights, rng *rand.Rand) *game.Grid {
	grid := game.NewGrid(height, width)
	total := 0
	for _, t := range game.TerrainTypes {
		total += weights[t]
	}
	if total <= 0 {
		return grid
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			roll := rng.Intn(total)
			for _, t := range game.TerrainTypes {
				roll -= weights[t]
				if roll < 0 {
					grid.Cells[r][c] = t
					break
				}
			}
		}
	}
	return grid
}

// BuildArmy drafts units from the faction's templates until the point
// budget is spent: pick a random template, recruit it if affordable,
// otherwise drop everything that costly from the pool and keep going.
// Duplicates are allowed. The army comes back empty, not as an error,
// when the budget cannot afford even the cheapest template.
func BuildArmy(faction *game.Faction, points int, rng *rand.Rand) ([]*game.Unit, error) {
	valid := make([]game.UnitTemplate, 0, len(faction.Units))
	for _, t := range faction.Units {
		if t.Cost() > 0 {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidUnits
	}

	var army []*game.Unit
	remaining := points
	for remaining > 0 && len(valid) > 0 {
		pick := valid[rng.Intn(len(valid))]
		cost := pick.Cost()
		if cost <= remaining {
			u := pick.NewUnit()
			u.Faction = faction.Name
			army = append(army, u)
			remaining -= cost
			continue
		}
		affordable := make([]game.UnitTemplate, 0, len(valid))
		for _, t := range valid {
			if t.Cost() <= remaining {
				affordable = append(affordable, t)
			}
		}
		valid = affordable
	}
	return army, nil
}

// PlaceArmies deploys the two armies on opposite edges, army A on the
// top row or left column, army B on the bottom row or right column,
// filling cells outward from the corner. Units adopt the terrain of
// their starting cell and are added to the returned roster in placement
// order.
func PlaceArmies(grid *game.Grid, armyA, armyB []*game.Unit, orient Orientation) (*game.Roster, error) {
	var capacity int
	var posA, posB func(i int) game.Position
	switch orient {
	case OrientationNorthSouth:
		capacity = grid.Width
		posA = func(i int) game.Position { return game.Position{Row: 0, Col: i} }
		posB = func(i int) game.Position { return game.Position{Row: grid.Height - 1, Col: i} }
	case OrientationEastWest:
		capacity = grid.Height
		posA = func(i int) game.Position { return game.Position{Row: i, Col: 0} }
		posB = func(i int) game.Position { return game.Position{Row: i, Col: grid.Width - 1} }
	default:
		return nil, ErrUnknownOrientation
	}
	if len(armyA) > capacity || len(armyB) > capacity {
		return nil, ErrArmyDoesNotFit
	}

	roster := game.NewRoster()
	for i, u := range armyA {
		u.Position = posA(i)
		u.Terrain = grid.At(u.Position)
		roster.Add(u)
	}
	for i, u := range armyB {
		u.Position = posB(i)
		u.Terrain = grid.At(u.Position)
		roster.Add(u)
	}
	return roster, nil
}
