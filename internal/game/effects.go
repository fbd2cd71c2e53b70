package game

import (
	"errors"
	"strconv"
)

// EffectKind classifies what an effect does to its owner.
type EffectKind string

const (
	EffectDamageReduction     EffectKind = "damage_reduction"
	EffectRangeBonus          EffectKind = "range_bonus"
	EffectMovementBonus       EffectKind = "movement_bonus"
	EffectAttackBonus         EffectKind = "attack_bonus"
	EffectDamageOverTime      EffectKind = "damage_over_time"
	EffectMovementRestriction EffectKind = "movement_restriction"
	EffectAttackRestriction   EffectKind = "attack_restriction"
	EffectFirstStrike         EffectKind = "first_strike"
	EffectRegeneration        EffectKind = "regeneration"
	EffectShield              EffectKind = "shield"
)

// EffectDuration says when an effect leaves its owner.
type EffectDuration string

const (
	DurationPermanent      EffectDuration = "permanent"
	DurationUntilNextTurn  EffectDuration = "until_next_turn"
	DurationUntilEndOfTurn EffectDuration = "until_end_of_turn"
	DurationConditional    EffectDuration = "conditional"
	DurationTimed          EffectDuration = "timed"
)

// ErrTimedEffectTurns rejects timed effects created without a positive
// turn count.
var ErrTimedEffectTurns = errors.New("timed effects must have turns remaining greater than zero")

// Effect is a single named modifier on a unit. Name doubles as the
// dedup key: a unit never carries two effects with the same name.
type Effect struct {
	Kind           EffectKind     `json:"kind"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Value          int            `json:"value"`
	Duration       EffectDuration `json:"duration"`
	TurnsRemaining int            `json:"turns_remaining,omitempty"`
	SourceUnitID   uint           `json:"source_unit_id,omitempty"`
	Condition      string         `json:"condition,omitempty"`
}

// Validate rejects effects that break construction rules.
func (e Effect) Validate() error {
	if e.Duration == DurationTimed && e.TurnsRemaining <= 0 {
		return ErrTimedEffectTurns
	}
	return nil
}

// EffectLedger holds every active effect on one unit, in the order they
// were applied. The zero value is ready to use.
type EffectLedger struct {
	Effects []*Effect `json:"effects,omitempty"`
}

// Add applies an effect, refreshing instead of duplicating when the unit
// already carries one with the same name: timed effects keep the larger
// remaining turn count, anything else takes the new magnitude.
func (l *EffectLedger) Add(e Effect) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if existing := l.Get(e.Name); existing != nil {
		if e.Duration == DurationTimed {
			if e.TurnsRemaining > existing.TurnsRemaining {
				existing.TurnsRemaining = e.TurnsRemaining
			}
		} else {
			existing.Value = e.Value
		}
		return nil
	}
	copied := e
	l.Effects = append(l.Effects, &copied)
	return nil
}

// Get returns the effect with this name, or nil.
func (l *EffectLedger) Get(name string) *Effect {
	for _, e := range l.Effects {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Remove deletes the named effect and reports whether it was present.
func (l *EffectLedger) Remove(name string) bool {
	for i, e := range l.Effects {
		if e.Name == name {
			l.Effects = append(l.Effects[:i], l.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every effect.
func (l *EffectLedger) Clear() {
	l.Effects = nil
}

// Clone returns an independent copy of the ledger. State snapshots use
// it so serialization never races with gameplay mutations.
func (l *EffectLedger) Clone() EffectLedger {
	if len(l.Effects) == 0 {
		return EffectLedger{}
	}
	copied := make([]*Effect, len(l.Effects))
	for i, e := range l.Effects {
		ce := *e
		copied[i] = &ce
	}
	return EffectLedger{Effects: copied}
}

// Total sums the magnitudes of every effect of one kind.
func (l *EffectLedger) Total(kind EffectKind) int {
	total := 0
	for _, e := range l.Effects {
		if e.Kind == kind {
			total += e.Value
		}
	}
	return total
}

// Has reports whether any effect of the kind is active.
func (l *EffectLedger) Has(kind EffectKind) bool {
	for _, e := range l.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// TurnStart advances the ledger across the owner's turn start: it emits
// regeneration and damage-over-time notices, counts down timed effects
// and expires everything flagged until-next-turn. Expiry is two-phase so
// the scan never mutates the slice it walks. The caller applies the HP
// changes the messages describe.
func (l *EffectLedger) TurnStart(unitName string) []string {
	var messages []string
	var expired []string

	for _, e := range l.Effects {
		switch e.Kind {
		case EffectRegeneration:
			messages = append(messages, unitName+" regenerates "+strconv.Itoa(e.Value)+" HP")
		case EffectDamageOverTime:
			messages = append(messages, unitName+" takes "+strconv.Itoa(e.Value)+" damage from "+e.Name)
		}

		switch e.Duration {
		case DurationTimed:
			e.TurnsRemaining--
			if e.TurnsRemaining <= 0 {
				expired = append(expired, e.Name)
			}
		case DurationUntilNextTurn:
			expired = append(expired, e.Name)
		}
	}

	for _, name := range expired {
		l.Remove(name)
		messages = append(messages, name+" effect expired")
	}
	return messages
}

// TurnEnd expires every until-end-of-turn effect, same two-phase pattern
// as TurnStart.
func (l *EffectLedger) TurnEnd() []string {
	var messages []string
	var expired []string

	for _, e := range l.Effects {
		if e.Duration == DurationUntilEndOfTurn {
			expired = append(expired, e.Name)
		}
	}

	for _, name := range expired {
		l.Remove(name)
		messages = append(messages, name+" effect expired")
	}
	return messages
}

// Summary renders one line per active effect for clients and logs.
func (l *EffectLedger) Summary() []string {
	if len(l.Effects) == 0 {
		return []string{"No active effects"}
	}
	out := make([]string, 0, len(l.Effects))
	for _, e := range l.Effects {
		line := e.Name + ": " + e.Description
		switch e.Duration {
		case DurationTimed:
			line += " (" + strconv.Itoa(e.TurnsRemaining) + " turns)"
		case DurationUntilNextTurn:
			line += " (until next turn)"
		case DurationUntilEndOfTurn:
			line += " (until end of turn)"
		}
		out = append(out, line)
	}
	return out
}
