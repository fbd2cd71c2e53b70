package engine

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// TurnReport summarizes one turn transition.
type TurnReport struct {
	Turn           int      `json:"turn"`
	CurrentFaction string   `json:"current_faction"`
	Messages       []string `json:"messages,omitempty"`
}

// EndTurn performs the full turn transition: outgoing turn-end effects,
// faction flip, incoming flag resets and turn-start effects (with the
// controller applying regen/DoT hit point changes), farm regeneration,
// then a full reconcile. The sequence is atomic; there is no
// intermediate state an observer can see.
func EndTurn(m *game.Match) *TurnReport {
	ac := newActionContext(m)

	for _, u := range m.CurrentUnits() {
		for _, msg := range u.Effects.TurnEnd() {
			ac.add(msg)
		}
	}

	m.CurrentFaction = m.Opponent(m.CurrentFaction)
	m.Turn++

	// Snapshot: damage-over-time can remove units mid-loop.
	incoming := append([]*game.Unit(nil), m.CurrentUnits()...)
	for _, u := range incoming {
		u.MovesRemaining = u.Move
		u.HasAttacked = false

		heal := u.Effects.Total(game.EffectRegeneration)
		dot := u.Effects.Total(game.EffectDamageOverTime)
		for _, msg := range u.Effects.TurnStart(u.Name) {
			ac.add(msg)
		}
		if heal > 0 {
			u.Heal(heal)
		}
		if dot > 0 {
			u.HitPoints -= dot
			if u.HitPoints <= 0 {
				ac.defeat(u)
			}
		}
	}

	for _, u := range m.CurrentUnits() {
		if u.Terrain.HealsAtTurnStart() && u.HitPoints < u.MaxHitPoints {
			u.Heal(1)
			ac.add(u.Name + " regenerates 1 HP at the farm")
		}
	}

	Reconcile(m)
	updateStatus(m)

	return &TurnReport{Turn: m.Turn, CurrentFaction: m.CurrentFaction, Messages: ac.messages}
}
