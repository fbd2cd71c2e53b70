package game

// TerrainType is a canonical terrain name used across the codebase.
// Using a dedicated type instead of plain string keeps cell tags,
// config values and API payloads consistent.
type TerrainType string

const (
	TerrainPlains   TerrainType = "Plains"
	TerrainForest   TerrainType = "Forest"
	TerrainMountain TerrainType = "Mountain"
	TerrainLake     TerrainType = "Lake"
	TerrainRiver    TerrainType = "River"
	TerrainFarm     TerrainType = "Farm"
	TerrainVillage  TerrainType = "Village"
	TerrainCity     TerrainType = "City"
)

// TerrainTypes lists every valid terrain tag; map generation and config
// validation iterate over it.
var TerrainTypes = []TerrainType{
	TerrainPlains,
	TerrainForest,
	TerrainMountain,
	TerrainLake,
	TerrainRiver,
	TerrainFarm,
	TerrainVillage,
	TerrainCity,
}

// MovementCost returns the per-step cost of entering a cell of this
// terrain and whether ground units may enter it at all. Lake is the
// only impassable type.
func (t TerrainType) MovementCost() (int, bool) {
	switch t {
	case TerrainPlains, TerrainFarm, TerrainVillage:
		return 1, true
	case TerrainForest, TerrainCity:
		return 2, true
	case TerrainMountain, TerrainRiver:
		return 3, true
	case TerrainLake:
		return 0, false
	}
	return 0, false
}

// Passable reports whether ground units can stand on this terrain.
func (t TerrainType) Passable() bool {
	_, ok := t.MovementCost()
	return ok
}

// RangeBonus is the extra effective range granted by standing on this
// terrain (Mountain elevation).
func (t TerrainType) RangeBonus() int {
	if t == TerrainMountain {
		return 1
	}
	return 0
}

// AttackBonus is the elevation damage bonus an attacker gets when it
// stands on this terrain and the target does not.
func (t TerrainType) AttackBonus() int {
	if t == TerrainMountain {
		return 1
	}
	return 0
}

// DamageReduction is the incoming-damage reduction granted to a unit
// standing on this terrain (Forest cover).
func (t TerrainType) DamageReduction() int {
	if t == TerrainForest {
		return 1
	}
	return 0
}

// HealsAtTurnStart reports whether a unit standing here recovers 1 HP at
// the start of its own turn (Farm).
func (t TerrainType) HealsAtTurnStart() bool {
	return t == TerrainFarm
}

// Position is a grid coordinate. Row grows downward, Col to the right.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Chebyshev returns the chessboard-king distance between two positions,
// the metric used for every range and aura check.
func Chebyshev(a, b Position) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// Grid is the fixed battlefield: a row-major matrix of terrain tags.
// Gameplay never mutates it; only match setup writes cells.
type Grid struct {
	Height int             `json:"height"`
	Width  int             `json:"width"`
	Cells  [][]TerrainType `json:"cells"`
}

// NewGrid allocates a grid of the given size with every cell set to
// Plains. Callers paint terrain on top.
func NewGrid(height, width int) *Grid {
	cells := make([][]TerrainType, height)
	for r := range cells {
		row := make([]TerrainType, width)
		for c := range row {
			row[c] = TerrainPlains
		}
		cells[r] = row
	}
	return &Grid{Height: height, Width: width, Cells: cells}
}

// InBounds reports whether the position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the terrain at p. Callers must bounds-check first;
// asking for an off-grid cell is a programming error.
func (g *Grid) At(p Position) TerrainType {
	return g.Cells[p.Row][p.Col]
}
