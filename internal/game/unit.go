package game

import "strings"

// UnitClass names a unit template archetype.
type UnitClass string

const (
	ClassScout     UnitClass = "Scout"
	ClassRanger    UnitClass = "Ranger"
	ClassMelee     UnitClass = "Melee"
	ClassHeavy     UnitClass = "Heavy"
	ClassArtillery UnitClass = "Artillery"
	ClassLeader    UnitClass = "Leader"
)

// ClassCost returns the recruitment point cost of a class. Unknown
// classes cost 0 and are skipped by army building.
func ClassCost(c UnitClass) int {
	switch c {
	case ClassScout, ClassRanger:
		return 2
	case ClassMelee:
		return 3
	case ClassHeavy:
		return 5
	case ClassArtillery:
		return 6
	case ClassLeader:
		return 10
	}
	return 0
}

// Unit is a single squad member on the board. HitPoints, MovesRemaining,
// Position, Terrain and HasAttacked mutate during play; the rest is
// fixed by the template it was built from.
type Unit struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Class          UnitClass    `json:"class"`
	Faction        string       `json:"faction"`
	HitPoints      int          `json:"hit_points"`
	MaxHitPoints   int          `json:"max_hit_points"`
	Move           int          `json:"move"`
	MovesRemaining int          `json:"moves_remaining"`
	Range          int          `json:"range"`
	Attack         int          `json:"attack"`
	Special        string       `json:"special"`
	Position       Position     `json:"position"`
	Terrain        TerrainType  `json:"terrain"`
	HasAttacked    bool         `json:"has_attacked"`
	Effects        EffectLedger `json:"active_effects"`
}

// AbilityName extracts the ability label from the unit's special text.
// Specials are written as "<name> - <description>"; units without a
// special return "".
func (u *Unit) AbilityName() string {
	if u.Special == "" {
		return ""
	}
	name, _, _ := strings.Cut(u.Special, " - ")
	return strings.TrimSpace(name)
}

// Alive reports whether the unit is still on the board.
func (u *Unit) Alive() bool {
	return u.HitPoints > 0
}

// Heal raises hit points by v capped at the unit's maximum.
func (u *Unit) Heal(v int) {
	u.HitPoints += v
	if u.HitPoints > u.MaxHitPoints {
		u.HitPoints = u.MaxHitPoints
	}
}

// Roster owns every unit in a match and hands out their identifiers.
// Units are stored in spawn order; all cross-references elsewhere in
// the engine are by ID so that removals cannot leave dangling pointers.
type Roster struct {
	units  []*Unit
	byID   map[uint]*Unit
	nextID uint
}

// NewRoster returns an empty roster.
func NewRoster() *Roster {
	return &Roster{byID: map[uint]*Unit{}}
}

// Add registers the unit, assigns it the next free ID and returns it.
func (r *Roster) Add(u *Unit) uint {
	r.nextID++
	u.ID = r.nextID
	r.units = append(r.units, u)
	r.byID[u.ID] = u
	return u.ID
}

// ByID resolves a unit identifier. The second result is false when the
// unit never existed or was already removed.
func (r *Roster) ByID(id uint) (*Unit, bool) {
	u, ok := r.byID[id]
	return u, ok
}

// At returns the unit standing on p, if any.
func (r *Roster) At(p Position) (*Unit, bool) {
	for _, u := range r.units {
		if u.Position == p {
			return u, true
		}
	}
	return nil, false
}

// Units returns all units in spawn order. Callers must not reorder the
// slice; it is the roster's backing store.
func (r *Roster) Units() []*Unit {
	return r.units
}

// OfFaction returns the surviving units of one faction in spawn order.
func (r *Roster) OfFaction(faction string) []*Unit {
	var out []*Unit
	for _, u := range r.units {
		if u.Faction == faction {
			out = append(out, u)
		}
	}
	return out
}

// Remove deletes a unit from the roster, usually after it is defeated.
func (r *Roster) Remove(id uint) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	delete(r.byID, id)
	for i, u := range r.units {
		if u.ID == id {
			r.units = append(r.units[:i], r.units[i+1:]...)
			break
		}
	}
}

// Len reports how many units remain on the board.
func (r *Roster) Len() int {
	return len(r.units)
}
