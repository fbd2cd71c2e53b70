package engine

import (
	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// --- Movement and targeting --------------------------------------------

var moveSteps = []game.Position{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// MovementBudget is how many cost points the unit may still spend this
// turn: moves remaining plus every active movement bonus. Bonuses can
// leave MovesRemaining negative after a long move, so the total is
// clamped at zero.
func MovementBudget(u *game.Unit) int {
	budget := u.MovesRemaining + u.Effects.Total(game.EffectMovementBonus) + UnitPassives(u).MoveBonus
	if budget < 0 {
		return 0
	}
	return budget
}

// canStand reports whether the unit may end its movement on the given
// terrain. Fliers cross anything but may not stop over Lake.
func canStand(u *game.Unit, t game.TerrainType) bool {
	if UnitPassives(u).Flight {
		return t != game.TerrainLake
	}
	return t.Passable()
}

// LegalMoves runs a cost-bounded uniform-cost search (4-directional)
// from the unit's cell and returns every reachable destination with its
// cheapest cumulative cost. Occupied cells block both entry and
// pass-through. The unit's own cell is never included. Units under a
// movement restriction cannot move at all.
func LegalMoves(m *game.Match, u *game.Unit) map[game.Position]int {
	reachable := map[game.Position]int{}
	if u.Effects.Has(game.EffectMovementRestriction) {
		return reachable
	}
	budget := MovementBudget(u)
	if budget == 0 {
		return reachable
	}
	flight := UnitPassives(u).Flight

	dist := map[game.Position]int{u.Position: 0}
	done := map[game.Position]bool{}
	for {
		// Pick the cheapest unsettled cell. The board is small enough
		// that a linear scan beats maintaining a heap.
		var cur game.Position
		best := -1
		for p, d := range dist {
			if done[p] {
				continue
			}
			if best == -1 || d < best {
				cur, best = p, d
			}
		}
		if best == -1 {
			break
		}
		done[cur] = true

		for _, step := range moveSteps {
			next := game.Position{Row: cur.Row + step.Row, Col: cur.Col + step.Col}
			if !m.Grid.InBounds(next) {
				continue
			}
			if _, occupied := m.Units.At(next); occupied {
				continue
			}
			terrain := m.Grid.At(next)
			cost := 1
			if !flight {
				c, ok := terrain.MovementCost()
				if !ok {
					continue
				}
				cost = c
			}
			total := best + cost
			if total > budget {
				continue
			}
			if old, seen := dist[next]; !seen || total < old {
				dist[next] = total
			}
		}
	}

	for p, d := range dist {
		if p == u.Position {
			continue
		}
		if !canStand(u, m.Grid.At(p)) {
			continue
		}
		reachable[p] = d
	}
	return reachable
}

// EffectiveRange is base range plus the Mountain elevation bonus plus
// every active range bonus, reconciled Spotter auras included.
func EffectiveRange(u *game.Unit) int {
	return u.Range + u.Terrain.RangeBonus() + u.Effects.Total(game.EffectRangeBonus) + UnitPassives(u).RangeBonus
}

// CanAttack reports whether the unit still has its attack action this
// turn.
func CanAttack(u *game.Unit) bool {
	return !u.HasAttacked && !u.Effects.Has(game.EffectAttackRestriction)
}

// LegalAttacks lists every enemy-occupied cell within the unit's
// effective range, or nothing when its attack is spent or restricted.
func LegalAttacks(m *game.Match, u *game.Unit) []game.Position {
	if !CanAttack(u) {
		return nil
	}
	reach := EffectiveRange(u)
	var cells []game.Position
	for _, enemy := range m.Units.Units() {
		if enemy.Faction == u.Faction {
			continue
		}
		if game.Chebyshev(u.Position, enemy.Position) <= reach {
			cells = append(cells, enemy.Position)
		}
	}
	return cells
}

// LegalAbilityTargets lists the cells the unit's ability can currently
// be aimed at. Self- and area-targeted abilities need no target cell and
// return nothing, as do abilities that cannot be used right now.
func LegalAbilityTargets(m *game.Match, u *game.Unit) []game.Position {
	name := u.AbilityName()
	ability, ok := game.AbilityByName(name)
	if !ok || !CanUseAbility(u, name) {
		return nil
	}

	var cells []game.Position
	switch ability.Effect {
	case game.EffectTagAllyBoost, game.EffectTagTacticalStrike:
		for _, ally := range m.Units.Units() {
			if ally.Faction != u.Faction || ally.ID == u.ID {
				continue
			}
			if game.Chebyshev(u.Position, ally.Position) <= ability.Range {
				cells = append(cells, ally.Position)
			}
		}
	case game.EffectTagPullAttack:
		for _, enemy := range m.Units.Units() {
			if enemy.Faction == u.Faction {
				continue
			}
			if game.Chebyshev(u.Position, enemy.Position) <= ability.Range {
				cells = append(cells, enemy.Position)
			}
		}
	case game.EffectTagAttackAndMove, game.EffectTagBonusAttack:
		reach := EffectiveRange(u)
		for _, enemy := range m.Units.Units() {
			if enemy.Faction == u.Faction {
				continue
			}
			if game.Chebyshev(u.Position, enemy.Position) <= reach {
				cells = append(cells, enemy.Position)
			}
		}
	}
	return cells
}

// Move validates and performs a move to dest, returning the movement
// cost spent. MovesRemaining may go negative when bonus movement paid
// for part of the path; the budget arithmetic accounts for that.
func Move(m *game.Match, u *game.Unit, dest game.Position) (int, error) {
	if !m.Grid.InBounds(dest) {
		return 0, ErrOutOfBounds
	}
	if _, occupied := m.Units.At(dest); occupied {
		return 0, ErrImpassable
	}
	if !canStand(u, m.Grid.At(dest)) {
		return 0, ErrImpassable
	}
	cost, ok := LegalMoves(m, u)[dest]
	if !ok {
		return 0, ErrInsufficientMovement
	}

	u.Position = dest
	u.Terrain = m.Grid.At(dest)
	u.MovesRemaining -= cost
	return cost, nil
}
