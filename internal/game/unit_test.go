package game

import "testing"

func TestAbilityNameSplitsSpecialText(t *testing.T) {
	u := &Unit{Special: "Sword & Board - If unit doesn't move, negates first damage point next turn"}
	if got := u.AbilityName(); got != "Sword & Board" {
		t.Fatalf("expected ability name Sword & Board, got %q", got)
	}
	u = &Unit{Special: "Flying"}
	if got := u.AbilityName(); got != "Flying" {
		t.Fatalf("expected bare special to be its own name, got %q", got)
	}
	u = &Unit{}
	if got := u.AbilityName(); got != "" {
		t.Fatalf("expected empty ability name, got %q", got)
	}
}

func TestHealCapsAtMaximum(t *testing.T) {
	u := &Unit{HitPoints: 3, MaxHitPoints: 4}
	u.Heal(5)
	if u.HitPoints != 4 {
		t.Fatalf("expected heal capped at 4, got %d", u.HitPoints)
	}
}

func TestRosterAssignsIDsAndResolvesPositions(t *testing.T) {
	roster := NewRoster()
	a := &Unit{Name: "Watchtower Scout", Position: Position{0, 0}}
	b := &Unit{Name: "Forest Lord", Position: Position{9, 3}}
	idA := roster.Add(a)
	idB := roster.Add(b)
	if idA == idB {
		t.Fatalf("ids must be unique, both got %d", idA)
	}

	got, ok := roster.ByID(idB)
	if !ok || got.Name != "Forest Lord" {
		t.Fatalf("expected to resolve Forest Lord, got %+v ok=%v", got, ok)
	}
	got, ok = roster.At(Position{9, 3})
	if !ok || got.ID != idB {
		t.Fatalf("expected unit at (9,3), got %+v ok=%v", got, ok)
	}
	if _, ok := roster.At(Position{5, 5}); ok {
		t.Fatalf("expected empty square at (5,5)")
	}
}

func TestRosterRemoveDropsUnit(t *testing.T) {
	roster := NewRoster()
	id := roster.Add(&Unit{Name: "Satyr Piper", Faction: "The Fae Armies"})
	roster.Add(&Unit{Name: "Gossamer Sprite", Faction: "The Fae Armies"})

	roster.Remove(id)
	if _, ok := roster.ByID(id); ok {
		t.Fatalf("removed unit must not resolve")
	}
	if roster.Len() != 1 {
		t.Fatalf("expected 1 unit left, got %d", roster.Len())
	}
	if got := len(roster.OfFaction("The Fae Armies")); got != 1 {
		t.Fatalf("expected 1 fae unit, got %d", got)
	}
}

func TestTemplateStampsFreshUnit(t *testing.T) {
	tpl := UnitTemplate{Name: "Longbow Marksman", Class: ClassRanger, HitPoints: 2, Move: 3, Range: 3, Attack: 2, Special: "Double tap - extra shot"}
	u := tpl.NewUnit()
	if u.MaxHitPoints != 2 || u.HitPoints != 2 {
		t.Fatalf("expected hp 2/2, got %d/%d", u.HitPoints, u.MaxHitPoints)
	}
	if u.MovesRemaining != 3 {
		t.Fatalf("expected full movement on spawn, got %d", u.MovesRemaining)
	}
	if tpl.Cost() != 2 {
		t.Fatalf("expected ranger cost 2, got %d", tpl.Cost())
	}
}

func TestDefaultFactionsCoverEveryAbility(t *testing.T) {
	carried := map[string]bool{}
	for _, f := range DefaultFactions() {
		for _, tpl := range f.Units {
			u := tpl.NewUnit()
			carried[u.AbilityName()] = true
		}
	}
	for _, a := range DefaultAbilities() {
		if !carried[a.Name] {
			t.Fatalf("no default template carries ability %q", a.Name)
		}
	}
}
