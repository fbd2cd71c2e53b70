package service

import (
	"errors"
	"testing"

	"github.com/Mastaba/FantasySquadTactics/internal/engine"
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

func testUnit(name, faction string, hp, move, rng, atk int, special string, pos game.Position) *game.Unit {
	return &game.Unit{
		Name:           name,
		Faction:        faction,
		HitPoints:      hp,
		MaxHitPoints:   hp,
		Move:           move,
		MovesRemaining: move,
		Range:          rng,
		Attack:         atk,
		Special:        special,
		Position:       pos,
		Terrain:        game.TerrainPlains,
	}
}

// testService wires a service around a hand-built skirmish on a 6x6
// plains board. Cantrell opens.
func testService(notifier Notifier, units ...*game.Unit) *MatchService {
	grid := game.NewGrid(6, 6)
	roster := game.NewRoster()
	for _, u := range units {
		u.Terrain = grid.At(u.Position)
		roster.Add(u)
	}
	s := NewMatchService(nil, defaultSettings(), notifier)
	s.match = engine.NewMatch("m-test", "Cantrell", "Fae", grid, roster)
	return s
}

func findUnit(t *testing.T, state *MatchState, id uint) *UnitState {
	t.Helper()
	for i := range state.Units {
		if state.Units[i].ID == id {
			return &state.Units[i]
		}
	}
	t.Fatalf("unit %d not in state", id)
	return nil
}

func TestMoveThroughService(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 0, Col: 0})
	sprite := testUnit("Gossamer Sprite", "Fae", 2, 4, 1, 1, "", game.Position{Row: 5, Col: 5})
	s := testService(nil, sergeant, sprite)

	cost, state, err := s.Move(1, game.Position{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if cost != 2 {
		t.Fatalf("expected move cost 2 on plains, got %d", cost)
	}
	if state.Revision != 1 {
		t.Fatalf("expected revision 1 after first action, got %d", state.Revision)
	}
	moved := findUnit(t, state, 1)
	if moved.Position != (game.Position{Row: 0, Col: 2}) {
		t.Fatalf("expected unit at (0,2), got %v", moved.Position)
	}
	if moved.MovesRemaining != 1 {
		t.Fatalf("expected 1 movement left, got %d", moved.MovesRemaining)
	}

	if _, _, err := s.Move(2, game.Position{Row: 5, Col: 4}); !errors.Is(err, ErrWrongFaction) {
		t.Fatalf("expected ErrWrongFaction for the idle side, got %v", err)
	}
	if _, _, err := s.Move(99, game.Position{Row: 0, Col: 3}); !errors.Is(err, ErrUnitNotFound) {
		t.Fatalf("expected ErrUnitNotFound, got %v", err)
	}
	if _, _, err := s.Move(1, game.Position{Row: 5, Col: 0}); !errors.Is(err, engine.ErrInsufficientMovement) {
		t.Fatalf("expected the engine rejection to pass through, got %v", err)
	}
}

func TestActionsNeedAMatch(t *testing.T) {
	s := NewMatchService(nil, defaultSettings(), nil)

	if _, err := s.State(); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch from State, got %v", err)
	}
	if _, _, err := s.Move(1, game.Position{}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch from Move, got %v", err)
	}
	if _, _, err := s.Attack(1, game.Position{}); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch from Attack, got %v", err)
	}
	if _, _, err := s.EndTurn(); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch from EndTurn, got %v", err)
	}
	if _, err := s.LegalMoves(1); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch from LegalMoves, got %v", err)
	}
}

func TestAttackThroughServiceFinishesTheMatch(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 0, Col: 0})
	sprite := testUnit("Gossamer Sprite", "Fae", 2, 4, 1, 1, "", game.Position{Row: 1, Col: 1})
	s := testService(nil, sergeant, sprite)

	result, state, err := s.Attack(1, game.Position{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if result.Damage != 2 || !result.TargetDefeated {
		t.Fatalf("expected a 2 damage kill, got damage %d defeated %v", result.Damage, result.TargetDefeated)
	}
	if state.Status != game.MatchStatusFinished || state.Winner != "Cantrell" {
		t.Fatalf("expected a finished match won by Cantrell, got %s winner %q", state.Status, state.Winner)
	}
	if len(state.Units) != 1 {
		t.Fatalf("expected only the attacker left, got %d units", len(state.Units))
	}

	if _, _, err := s.Move(1, game.Position{Row: 0, Col: 1}); !errors.Is(err, ErrMatchFinished) {
		t.Fatalf("expected ErrMatchFinished after the win, got %v", err)
	}
	if _, _, err := s.EndTurn(); !errors.Is(err, ErrMatchFinished) {
		t.Fatalf("expected ErrMatchFinished from EndTurn, got %v", err)
	}
}

func TestEndTurnThroughService(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 0, Col: 0})
	sprite := testUnit("Gossamer Sprite", "Fae", 2, 4, 1, 1, "", game.Position{Row: 5, Col: 5})
	s := testService(nil, sergeant, sprite)

	report, state, err := s.EndTurn()
	if err != nil {
		t.Fatalf("end turn: %v", err)
	}
	if report.Turn != 2 || report.CurrentFaction != "Fae" {
		t.Fatalf("expected turn 2 for Fae, got turn %d for %s", report.Turn, report.CurrentFaction)
	}
	if state.CurrentFaction != "Fae" || state.Turn != 2 {
		t.Fatalf("state disagrees with report: turn %d faction %s", state.Turn, state.CurrentFaction)
	}
	if state.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", state.Revision)
	}
}

func TestUseAbilityThroughService(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 3, Col: 3})
	piper := testUnit("Satyr Piper", "Fae", 3, 3, 2, 1,
		"Lure - Enemies within 2 squares are drawn one step closer", game.Position{Row: 5, Col: 5})
	s := testService(nil, sergeant, piper)

	if _, _, err := s.EndTurn(); err != nil {
		t.Fatalf("end turn: %v", err)
	}

	result, state, err := s.UseAbility(2, game.AbilityLure, nil)
	if err != nil {
		t.Fatalf("use ability: %v", err)
	}
	if result.Ability != game.AbilityLure {
		t.Fatalf("expected a Lure result, got %s", result.Ability)
	}
	if lured := findUnit(t, state, 1); lured.Position != (game.Position{Row: 4, Col: 4}) {
		t.Fatalf("expected the sergeant lured to (4,4), got %v", lured.Position)
	}
	if caster := findUnit(t, state, 2); !caster.HasAttacked {
		t.Fatalf("expected the lure to consume the piper's attack")
	}

	if _, _, err := s.UseAbility(2, game.AbilityLure, nil); !errors.Is(err, engine.ErrAbilityNotUsable) {
		t.Fatalf("expected a spent ability to be rejected, got %v", err)
	}

	if _, _, err := s.EndTurn(); err != nil {
		t.Fatalf("end turn: %v", err)
	}
	if _, _, err := s.UseAbility(1, game.AbilityLure, nil); !errors.Is(err, engine.ErrAbilityNotUsable) {
		t.Fatalf("expected a foreign ability to be rejected, got %v", err)
	}
}

func TestNotifierSeesEveryMutation(t *testing.T) {
	notifier := &recordingNotifier{}
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 0, Col: 0})
	sprite := testUnit("Gossamer Sprite", "Fae", 2, 4, 1, 1, "", game.Position{Row: 5, Col: 5})
	s := testService(notifier, sergeant, sprite)

	if _, _, err := s.Move(1, game.Position{Row: 0, Col: 1}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if _, _, err := s.EndTurn(); err != nil {
		t.Fatalf("end turn: %v", err)
	}

	if len(notifier.states) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.states))
	}
	if notifier.states[0].Revision != 1 || notifier.states[1].Revision != 2 {
		t.Fatalf("expected revisions 1 and 2, got %d and %d",
			notifier.states[0].Revision, notifier.states[1].Revision)
	}
	if notifier.states[1].CurrentFaction != "Fae" {
		t.Fatalf("expected the last snapshot to show Fae's turn, got %s", notifier.states[1].CurrentFaction)
	}

	// Rejected actions must not notify.
	if _, _, err := s.Move(1, game.Position{Row: 0, Col: 0}); err == nil {
		t.Fatalf("expected the idle side's move to be rejected")
	}
	if len(notifier.states) != 2 {
		t.Fatalf("expected no notification for a rejected action, got %d", len(notifier.states))
	}
}

func TestSnapshotsAreDetachedFromLiveState(t *testing.T) {
	sergeant := testUnit("Shield Sergeant", "Cantrell", 4, 3, 1, 2, "", game.Position{Row: 0, Col: 0})
	sprite := testUnit("Gossamer Sprite", "Fae", 2, 4, 1, 1, "", game.Position{Row: 5, Col: 5})
	s := testService(nil, sergeant, sprite)

	before, err := s.State()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if _, _, err := s.Move(1, game.Position{Row: 0, Col: 2}); err != nil {
		t.Fatalf("move: %v", err)
	}

	if pos := findUnit(t, before, 1).Position; pos != (game.Position{Row: 0, Col: 0}) {
		t.Fatalf("old snapshot mutated: unit now at %v", pos)
	}
}
