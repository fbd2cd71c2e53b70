package engine

import (
	"testing"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

func TestReconcileIsIdempotent(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 3,
		"Sword & Board - Negates the first point of damage taken if sergeant has not moved this turn", game.Position{Row: 0, Col: 0})
	spotter := testUnit("Watchtower Scout", "Cantrell", 2, 4, 1, 1,
		"Spotter - Friendly units within range 4 have +1 effective range", game.Position{Row: 5, Col: 5})
	archer := testUnit("Longbow Marksman", "Cantrell", 2, 3, 3, 2, "", game.Position{Row: 5, Col: 7})
	enemy := testUnit("Centaur Charger", "Fae", 4, 3, 1, 3, "", game.Position{Row: 9, Col: 9})
	m := testMatch(sergeant, spotter, archer, enemy)

	Reconcile(m)
	Reconcile(m)

	if got := len(sergeant.Effects.Effects); got != 1 {
		t.Fatalf("expected exactly one defense effect, got %d", got)
	}
	if got := len(archer.Effects.Effects); got != 1 {
		t.Fatalf("expected exactly one aura effect, got %d", got)
	}
	if got := len(spotter.Effects.Effects); got != 0 {
		t.Fatalf("the spotter must not buff itself, got %d effects", got)
	}
	if got := len(enemy.Effects.Effects); got != 0 {
		t.Fatalf("enemies must carry nothing, got %d effects", got)
	}
}

func TestSwordAndBoardFollowsMovement(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 3,
		"Sword & Board - Negates the first point of damage taken if sergeant has not moved this turn", game.Position{Row: 5, Col: 5})
	enemy := testUnit("Centaur Charger", "Fae", 4, 3, 1, 3, "", game.Position{Row: 9, Col: 9})
	m := testMatch(sergeant, enemy)

	if sergeant.Effects.Get(game.EffectNameSwordAndBoard) == nil {
		t.Fatalf("expected the defense while unmoved")
	}

	if _, err := Move(m, sergeant, game.Position{Row: 5, Col: 6}); err != nil {
		t.Fatalf("move: %v", err)
	}
	ReconcileAfterAction(m)
	if sergeant.Effects.Get(game.EffectNameSwordAndBoard) != nil {
		t.Fatalf("the defense must drop once the sergeant moves")
	}

	EndTurn(m)
	if sergeant.Effects.Get(game.EffectNameSwordAndBoard) != nil {
		t.Fatalf("the defense must stay down through the enemy turn")
	}
	EndTurn(m)
	if sergeant.Effects.Get(game.EffectNameSwordAndBoard) == nil {
		t.Fatalf("expected the defense back after the movement reset")
	}
}

func TestTrustySteedFollowsAttack(t *testing.T) {
	rider := testUnit("Royal Outrider", "Cantrell", 3, 4, 1, 2,
		"Trusty Steed - +1 movement if outrider does not attack this turn", game.Position{Row: 5, Col: 5})
	enemy := testUnit("Centaur Charger", "Fae", 4, 3, 1, 3, "", game.Position{Row: 5, Col: 6})
	m := testMatch(rider, enemy)

	if rider.Effects.Get(game.EffectNameTrustySteed) == nil {
		t.Fatalf("expected the steed bonus before attacking")
	}
	if got := MovementBudget(rider); got != 5 {
		t.Fatalf("expected budget 4+1, got %d", got)
	}

	if _, err := Attack(m, rider, enemy.Position); err != nil {
		t.Fatalf("attack: %v", err)
	}
	ReconcileAfterAction(m)
	if rider.Effects.Get(game.EffectNameTrustySteed) != nil {
		t.Fatalf("the steed bonus must drop once the rider attacks")
	}
	if got := MovementBudget(rider); got != 4 {
		t.Fatalf("expected base budget 4, got %d", got)
	}
}

func TestSpotterAuraTracksPositions(t *testing.T) {
	spotter := testUnit("Watchtower Scout", "Cantrell", 2, 4, 1, 1,
		"Spotter - Friendly units within range 4 have +1 effective range", game.Position{Row: 0, Col: 0})
	archer := testUnit("Longbow Marksman", "Cantrell", 2, 3, 3, 2, "", game.Position{Row: 0, Col: 4})
	enemy := testUnit("Centaur Charger", "Fae", 4, 3, 1, 3, "", game.Position{Row: 9, Col: 9})
	m := testMatch(spotter, archer, enemy)

	aura := archer.Effects.Get(game.EffectNameSpotter)
	if aura == nil || aura.SourceUnitID != spotter.ID || aura.Duration != game.DurationConditional {
		t.Fatalf("bad aura: %+v", aura)
	}
	if got := EffectiveRange(archer); got != 4 {
		t.Fatalf("expected range 3+1 under the aura, got %d", got)
	}

	if _, err := Move(m, archer, game.Position{Row: 0, Col: 5}); err != nil {
		t.Fatalf("move out: %v", err)
	}
	ReconcileAfterAction(m)
	if archer.Effects.Get(game.EffectNameSpotter) != nil {
		t.Fatalf("the aura must drop outside the spotter's range")
	}

	if _, err := Move(m, archer, game.Position{Row: 0, Col: 4}); err != nil {
		t.Fatalf("move back: %v", err)
	}
	ReconcileAfterAction(m)
	if archer.Effects.Get(game.EffectNameSpotter) == nil {
		t.Fatalf("the aura must return inside the spotter's range")
	}

	m.Units.Remove(spotter.ID)
	ReconcileAfterAction(m)
	if archer.Effects.Get(game.EffectNameSpotter) != nil {
		t.Fatalf("the aura must vanish with its source")
	}
}
