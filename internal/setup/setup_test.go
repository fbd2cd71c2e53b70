package setup

import (
	"math/rand"
	"testing"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

func TestDefaultTerrainWeightsCoverEveryTerrain(t *testing.T) {
	weights := DefaultTerrainWeights()
	total := 0
	for _, terrain := range game.TerrainTypes {
		w, ok := weights[terrain]
		if !ok || w <= 0 {
			t.Fatalf("missing or zero weight for %s", terrain)
		}
		total += w
	}
	if total != 100 {
		t.Fatalf("expected weights summing to 100, got %d", total)
	}
}

func TestGenerateMapHonorsTheWeightTable(t *testing.T) {
	grid := GenerateMap(8, 12, TerrainWeights{game.TerrainForest: 1}, rand.New(rand.NewSource(1)))
	if grid.Height != 8 || grid.Width != 12 {
		t.Fatalf("bad dimensions %dx%d", grid.Height, grid.Width)
	}
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			if grid.Cells[r][c] != game.TerrainForest {
				t.Fatalf("cell (%d,%d) is %s, want forest everywhere", r, c, grid.Cells[r][c])
			}
		}
	}
}

func TestGenerateMapWithoutWeightsStaysPlains(t *testing.T) {
	grid := GenerateMap(4, 4, TerrainWeights{}, rand.New(rand.NewSource(1)))
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			if grid.Cells[r][c] != game.TerrainPlains {
				t.Fatalf("cell (%d,%d) is %s, want plains", r, c, grid.Cells[r][c])
			}
		}
	}
}

func TestBuildArmySpendsTheBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	factions := game.DefaultFactions()
	for i := range factions {
		army, err := BuildArmy(&factions[i], 20, rng)
		if err != nil {
			t.Fatalf("%s: %v", factions[i].Name, err)
		}
		if len(army) == 0 {
			t.Fatalf("%s: empty army on a workable budget", factions[i].Name)
		}
		spent := 0
		for _, u := range army {
			spent += game.ClassCost(u.Class)
			if u.Faction != factions[i].Name {
				t.Fatalf("unit %s carries faction %q", u.Name, u.Faction)
			}
			if u.HitPoints != u.MaxHitPoints || u.MovesRemaining != u.Move {
				t.Fatalf("unit %s not stamped fresh: %+v", u.Name, u)
			}
		}
		if spent > 20 {
			t.Fatalf("%s: overspent %d of 20 points", factions[i].Name, spent)
		}
		if 20-spent >= 2 {
			t.Fatalf("%s: left %d points with 2-cost templates available", factions[i].Name, 20-spent)
		}
	}
}

func TestBuildArmyWithoutTemplates(t *testing.T) {
	empty := &game.Faction{Key: "ghosts", Name: "Ghosts"}
	if _, err := BuildArmy(empty, 20, rand.New(rand.NewSource(1))); err != ErrNoValidUnits {
		t.Fatalf("expected ErrNoValidUnits, got %v", err)
	}
}

func TestBuildArmyBudgetBelowCheapestTemplate(t *testing.T) {
	faction := &game.Faction{
		Key: "royal_guard", Name: "Royal Guard",
		Units: []game.UnitTemplate{{Name: "King", Class: game.ClassLeader, HitPoints: 5, Move: 3, Range: 2, Attack: 3}},
	}
	army, err := BuildArmy(faction, 5, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(army) != 0 {
		t.Fatalf("expected no recruits below the cheapest cost, got %d", len(army))
	}
}

func TestSetupIsDeterministicUnderASeed(t *testing.T) {
	factions := game.DefaultFactions()

	build := func(seed int64) (*game.Grid, []*game.Unit) {
		rng := rand.New(rand.NewSource(seed))
		army, err := BuildArmy(&factions[0], 20, rng)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		return GenerateMap(10, 10, DefaultTerrainWeights(), rng), army
	}

	gridA, armyA := build(42)
	gridB, armyB := build(42)

	for r := 0; r < gridA.Height; r++ {
		for c := 0; c < gridA.Width; c++ {
			if gridA.Cells[r][c] != gridB.Cells[r][c] {
				t.Fatalf("maps diverge at (%d,%d): %s vs %s", r, c, gridA.Cells[r][c], gridB.Cells[r][c])
			}
		}
	}
	if len(armyA) != len(armyB) {
		t.Fatalf("army sizes diverge: %d vs %d", len(armyA), len(armyB))
	}
	for i := range armyA {
		if armyA[i].Name != armyB[i].Name {
			t.Fatalf("recruit %d diverges: %s vs %s", i, armyA[i].Name, armyB[i].Name)
		}
	}
}

func testArmy(faction string, n int) []*game.Unit {
	army := make([]*game.Unit, 0, n)
	for i := 0; i < n; i++ {
		army = append(army, &game.Unit{
			Name: faction + " Soldier", Faction: faction,
			HitPoints: 3, MaxHitPoints: 3, Move: 3, MovesRemaining: 3, Range: 1, Attack: 2,
		})
	}
	return army
}

func TestPlaceArmiesNorthSouth(t *testing.T) {
	grid := game.NewGrid(10, 10)
	grid.Cells[0][1] = game.TerrainForest
	armyA := testArmy("Cantrell", 3)
	armyB := testArmy("Fae", 2)

	roster, err := PlaceArmies(grid, armyA, armyB, OrientationNorthSouth)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if roster.Len() != 5 {
		t.Fatalf("expected 5 placed units, got %d", roster.Len())
	}
	for i, u := range armyA {
		if u.Position != (game.Position{Row: 0, Col: i}) {
			t.Fatalf("army A unit %d at %v", i, u.Position)
		}
	}
	for i, u := range armyB {
		if u.Position != (game.Position{Row: 9, Col: i}) {
			t.Fatalf("army B unit %d at %v", i, u.Position)
		}
	}
	if armyA[1].Terrain != game.TerrainForest {
		t.Fatalf("units must adopt their starting terrain, got %s", armyA[1].Terrain)
	}
	if armyA[0].ID != 1 || armyB[1].ID != 5 {
		t.Fatalf("ids must follow placement order, got %d and %d", armyA[0].ID, armyB[1].ID)
	}
}

func TestPlaceArmiesEastWest(t *testing.T) {
	grid := game.NewGrid(10, 10)
	armyA := testArmy("Cantrell", 2)
	armyB := testArmy("Fae", 2)

	if _, err := PlaceArmies(grid, armyA, armyB, OrientationEastWest); err != nil {
		t.Fatalf("place: %v", err)
	}
	if armyA[1].Position != (game.Position{Row: 1, Col: 0}) {
		t.Fatalf("army A deploys down the left column, got %v", armyA[1].Position)
	}
	if armyB[0].Position != (game.Position{Row: 0, Col: 9}) {
		t.Fatalf("army B deploys down the right column, got %v", armyB[0].Position)
	}
}

func TestPlaceArmiesValidation(t *testing.T) {
	grid := game.NewGrid(4, 4)
	if _, err := PlaceArmies(grid, testArmy("Cantrell", 5), testArmy("Fae", 2), OrientationNorthSouth); err != ErrArmyDoesNotFit {
		t.Fatalf("expected ErrArmyDoesNotFit, got %v", err)
	}
	if _, err := PlaceArmies(grid, testArmy("Cantrell", 2), testArmy("Fae", 2), Orientation("diagonal")); err != ErrUnknownOrientation {
		t.Fatalf("expected ErrUnknownOrientation, got %v", err)
	}
}
