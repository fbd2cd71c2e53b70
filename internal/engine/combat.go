package engine

import (
	"strconv"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// AttackResult is the full breakdown of one resolved attack.
type AttackResult struct {
	AttackerID       uint     `json:"attacker_id"`
	AttackerName     string   `json:"attacker_name"`
	TargetID         uint     `json:"target_id"`
	TargetName       string   `json:"target_name"`
	Damage           int      `json:"damage"`
	TargetHP         int      `json:"target_hp"`
	TargetDefeated   bool     `json:"target_defeated"`
	TerrainBonus     int      `json:"terrain_bonus"`
	TerrainReduction int      `json:"terrain_reduction"`
	EffectReduction  int      `json:"effect_reduction"`
	Ranged           bool     `json:"ranged"`
	FollowUp         string   `json:"follow_up,omitempty"`
	Messages         []string `json:"messages,omitempty"`
}

// Attack resolves one attack from attacker against the unit standing on
// targetPos. Validation happens before any mutation; a returned error
// means nothing changed.
//
// Damage pipeline: attack stat + attack bonuses + high-ground bonus,
// minus the defender's damage-reduction effects and Forest cover,
// floored at 1. Shield effects then absorb floored damage point for
// point before it reaches HP.
func Attack(m *game.Match, attacker *game.Unit, targetPos game.Position) (*AttackResult, error) {
	if !CanAttack(attacker) {
		return nil, ErrAlreadyAttacked
	}
	target, ok := m.Units.At(targetPos)
	if !ok {
		return nil, ErrNoTarget
	}
	if target.Faction == attacker.Faction {
		return nil, ErrFriendlyFire
	}
	distance := game.Chebyshev(attacker.Position, targetPos)
	if distance > EffectiveRange(attacker) {
		return nil, ErrOutOfRange
	}

	ac := newActionContext(m)

	terrainBonus := 0
	if attacker.Terrain.AttackBonus() > 0 && target.Terrain.AttackBonus() == 0 {
		terrainBonus = attacker.Terrain.AttackBonus()
	}
	effectReduction := target.Effects.Total(game.EffectDamageReduction) + UnitPassives(target).DamageReduction
	terrainReduction := target.Terrain.DamageReduction()

	damage := attacker.Attack + attacker.Effects.Total(game.EffectAttackBonus) + terrainBonus - effectReduction - terrainReduction
	if damage < 1 {
		damage = 1
	}

	// Shields soak floored damage before it reaches hit points, then
	// spent shields drop off.
	absorbed := 0
	remaining := damage
	for _, e := range target.Effects.Effects {
		if e.Kind != game.EffectShield || remaining == 0 {
			continue
		}
		take := e.Value
		if take > remaining {
			take = remaining
		}
		e.Value -= take
		remaining -= take
		absorbed += take
	}
	if absorbed > 0 {
		var spent []string
		for _, e := range target.Effects.Effects {
			if e.Kind == game.EffectShield && e.Value <= 0 {
				spent = append(spent, e.Name)
			}
		}
		for _, name := range spent {
			target.Effects.Remove(name)
		}
	}

	target.HitPoints -= remaining
	attacker.HasAttacked = true

	// The stand-still defense is single-use: once it absorbed anything,
	// it is gone, even mid-turn.
	if effectReduction > 0 && target.Effects.Get(game.EffectNameSwordAndBoard) != nil {
		target.Effects.Remove(game.EffectNameSwordAndBoard)
	}

	ac.add(attacker.Name + " attacks " + target.Name + " for " + strconv.Itoa(damage) + " damage" + func() string {
		if terrainBonus > 0 {
			return " (high ground +" + strconv.Itoa(terrainBonus) + ")"
		}
		return ""
	}() + func() string {
		if effectReduction+terrainReduction > 0 {
			return " (reduced by " + strconv.Itoa(effectReduction+terrainReduction) + ")"
		}
		return ""
	}() + func() string {
		if absorbed > 0 {
			return " (" + strconv.Itoa(absorbed) + " absorbed by shield)"
		}
		return ""
	}())

	result := &AttackResult{
		AttackerID:       attacker.ID,
		AttackerName:     attacker.Name,
		TargetID:         target.ID,
		TargetName:       target.Name,
		Damage:           damage,
		TargetDefeated:   target.HitPoints <= 0,
		TerrainBonus:     terrainBonus,
		TerrainReduction: terrainReduction,
		EffectReduction:  effectReduction,
		Ranged:           distance > 1,
	}

	if result.TargetDefeated {
		ac.defeat(target)
		if attacker.AbilityName() == game.AbilityDoubleTap {
			_ = attacker.Effects.Add(game.Effect{
				Kind: game.EffectAttackBonus, Name: game.EffectNameDoubleTap,
				Description: "May make an extra 1 damage attack vs another unit in range", Value: 0,
				Duration: game.DurationUntilEndOfTurn,
			})
			result.FollowUp = "Double tap ready: extra 1 damage attack available"
		}
	}
	result.TargetHP = target.HitPoints
	result.Messages = ac.messages
	return result, nil
}
