package engine

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// --- Conditional and aura reconciliation --------------------------------

// ReconcileConditional re-derives the unit's condition-driven effects
// from its current flags. Idempotent: with unchanged flags, the effect
// set does not change.
func ReconcileConditional(u *game.Unit) {
	ability, ok := game.AbilityByName(u.AbilityName())
	if !ok || ability.Type != game.AbilityConditionalPassive {
		return
	}

	var holds bool
	switch ability.Condition {
	case game.ConditionNoMovement:
		holds = u.MovesRemaining == u.Move
	case game.ConditionNoAttack:
		holds = !u.HasAttacked
	default:
		return
	}

	switch ability.Effect {
	case game.EffectTagDamageReduction:
		if holds {
			_ = u.Effects.Add(game.Effect{
				Kind: game.EffectDamageReduction, Name: game.EffectNameSwordAndBoard,
				Description: "Negates the first point of damage taken next turn", Value: 1,
				Duration: game.DurationConditional, Condition: "hasnt_moved",
			})
		} else {
			u.Effects.Remove(game.EffectNameSwordAndBoard)
		}
	case game.EffectTagMovementBoost:
		if holds {
			_ = u.Effects.Add(game.Effect{
				Kind: game.EffectMovementBonus, Name: game.EffectNameTrustySteed,
				Description: "+1 movement this turn", Value: 1,
				Duration: game.DurationConditional, Condition: "hasnt_attacked",
			})
		} else {
			u.Effects.Remove(game.EffectNameTrustySteed)
		}
	}
}

// ReconcileAuras recomputes every aura-sourced effect from scratch:
// clear everything carrying a source unit id, then rebuild from the
// current positions. Rebuilding is cheaper than diffing and cannot go
// stale.
func ReconcileAuras(m *game.Match) {
	for _, u := range m.Units.Units() {
		var sourced []string
		for _, e := range u.Effects.Effects {
			if e.SourceUnitID != 0 {
				sourced = append(sourced, e.Name)
			}
		}
		for _, name := range sourced {
			u.Effects.Remove(name)
		}
	}

	for _, spotter := range m.Units.Units() {
		ability, ok := game.AbilityByName(spotter.AbilityName())
		if !ok || ability.Effect != game.EffectTagRangeBoost {
			continue
		}
		for _, ally := range m.Units.Units() {
			if ally.Faction != spotter.Faction || ally.ID == spotter.ID {
				continue
			}
			if game.Chebyshev(spotter.Position, ally.Position) > ability.Range {
				continue
			}
			_ = ally.Effects.Add(game.Effect{
				Kind: game.EffectRangeBonus, Name: game.EffectNameSpotter,
				Description: "+1 effective range from Spotter", Value: 1,
				Duration: game.DurationConditional, SourceUnitID: spotter.ID,
				Condition: "within_spotter_range",
			})
		}
	}
}

// Reconcile runs both reconciliation passes for the whole roster. Match
// construction and turn transitions use it; after a mid-turn action use
// ReconcileAfterAction instead.
func Reconcile(m *game.Match) {
	for _, u := range m.Units.Units() {
		ReconcileConditional(u)
	}
	ReconcileAuras(m)
}

// ReconcileAfterAction refreshes conditionals for the acting faction
// only, plus all auras. Defender-side conditionals are left alone until
// the turn boundary: a consumed single-use defense must stay consumed
// for the rest of the enemy turn, and only the acting faction's flags
// can have changed anyway.
func ReconcileAfterAction(m *game.Match) {
	for _, u := range m.CurrentUnits() {
		ReconcileConditional(u)
	}
	ReconcileAuras(m)
}
