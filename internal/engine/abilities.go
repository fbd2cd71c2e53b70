package engine

import (
	"strconv"

	"github.com/Mastaba/FantasySquadTactics/internal/game"
)

// PassiveModifiers are the always-on contributions of a unit's own
// ability. Conditional passives (Sword & Board, Trusty Steed) are not
// reported here: the reconciler materializes those as ledger effects,
// which keeps a single source of truth for budget and damage math.
type PassiveModifiers struct {
	RangeBonus      int  `json:"range_bonus"`
	MoveBonus       int  `json:"move_bonus"`
	DamageReduction int  `json:"damage_reduction"`
	Flight          bool `json:"flight"`
}

// UnitPassives derives the passive modifiers from the unit's ability
// label.
func UnitPassives(u *game.Unit) PassiveModifiers {
	var mods PassiveModifiers
	ability, ok := game.AbilityByName(u.AbilityName())
	if !ok {
		return mods
	}
	if ability.Effect == game.EffectTagFlight {
		mods.Flight = true
	}
	return mods
}

// CanUseAbility reports whether the unit may use the named ability right
// now. The name must be the unit's own ability. Actives require the
// attack action to be available; triggered abilities require their ready
// marker; conditional passives evaluate their condition tag.
func CanUseAbility(u *game.Unit, name string) bool {
	ability, ok := game.AbilityByName(name)
	if !ok || u.AbilityName() != name {
		return false
	}
	switch ability.Type {
	case game.AbilityActive:
		return CanAttack(u)
	case game.AbilityTriggered:
		return u.Effects.Get(game.EffectNameDoubleTap) != nil
	case game.AbilityConditionalPassive:
		switch ability.Condition {
		case game.ConditionNoMovement:
			return u.MovesRemaining == u.Move
		case game.ConditionNoAttack:
			return !u.HasAttacked
		}
	}
	return true
}

// AvailableActiveAbilities lists the abilities the unit could execute
// this instant: its active ability, or a triggered one whose marker is
// lit. At most one entry today since units carry a single special.
func AvailableActiveAbilities(u *game.Unit) []game.Ability {
	name := u.AbilityName()
	ability, ok := game.AbilityByName(name)
	if !ok {
		return nil
	}
	if ability.Type != game.AbilityActive && ability.Type != game.AbilityTriggered {
		return nil
	}
	if !CanUseAbility(u, name) {
		return nil
	}
	return []game.Ability{ability}
}

// AbilityResult reports what an executed ability did.
type AbilityResult struct {
	Ability       string        `json:"ability"`
	CasterID      uint          `json:"caster_id"`
	CasterName    string        `json:"caster_name"`
	Message       string        `json:"message"`
	Messages      []string      `json:"messages,omitempty"`
	AffectedUnits []string      `json:"affected_units,omitempty"`
	DamageDealt   int           `json:"damage_dealt,omitempty"`
	ExtraMovement int           `json:"extra_movement,omitempty"`
	TargetMoved   bool          `json:"target_moved,omitempty"`
	Attack        *AttackResult `json:"attack,omitempty"`
}

// ExecuteAbility validates and runs the named ability for the unit.
// target is required by single-target abilities and ignored by self and
// area ones. The has-attacked flag is only set once the handler
// succeeded; a rejected ability mutates nothing.
func ExecuteAbility(m *game.Match, u *game.Unit, name string, target *game.Position) (*AbilityResult, error) {
	ability, ok := game.AbilityByName(name)
	if !ok || !CanUseAbility(u, name) {
		return nil, ErrAbilityNotUsable
	}
	if ability.Type != game.AbilityActive && ability.Type != game.AbilityTriggered {
		return nil, ErrAbilityNotUsable
	}

	result := &AbilityResult{Ability: name, CasterID: u.ID, CasterName: u.Name}
	var err error
	switch ability.Effect {
	case game.EffectTagRangeBoostPenalty:
		err = execAllShesGot(u, result)
	case game.EffectTagAllyBoost:
		err = execForTheKing(m, u, ability, target, result)
	case game.EffectTagTacticalStrike:
		err = execStrategicSavant(m, u, ability, target, result)
	case game.EffectTagFirstStrikeAura:
		err = execVigilance(m, u, ability, result)
	case game.EffectTagForcedMovement:
		err = execLure(m, u, ability, result)
	case game.EffectTagAttackAndMove:
		err = execMobileStrike(m, u, target, result)
	case game.EffectTagTrampleAttack:
		err = execTrample(m, u, result)
	case game.EffectTagPullAttack:
		err = execGrab(m, u, ability, target, result)
	case game.EffectTagBonusAttack:
		err = execDoubleTap(m, u, target, result)
	default:
		// Passive variants (flight, range_boost, damage_reduction,
		// movement_boost) are never executed directly.
		return nil, ErrAbilityNotUsable
	}
	if err != nil {
		return nil, err
	}
	if !ability.AttackExempt {
		u.HasAttacked = true
	}
	return result, nil
}

func execAllShesGot(u *game.Unit, result *AbilityResult) error {
	if err := u.Effects.Add(game.Effect{
		Kind: game.EffectRangeBonus, Name: game.EffectNameAllShesGot,
		Description: "+1 range this turn", Value: 1,
		Duration: game.DurationUntilEndOfTurn,
	}); err != nil {
		return err
	}
	if err := u.Effects.Add(game.Effect{
		Kind: game.EffectMovementRestriction, Name: game.EffectNameAllShesGotRecoil,
		Description: "Cannot move next turn", Value: 1,
		Duration: game.DurationTimed, TurnsRemaining: 2,
	}); err != nil {
		return err
	}
	if err := u.Effects.Add(game.Effect{
		Kind: game.EffectAttackRestriction, Name: game.EffectNameAllShesGotStrain,
		Description: "Cannot attack next turn", Value: 1,
		Duration: game.DurationTimed, TurnsRemaining: 2,
	}); err != nil {
		return err
	}
	result.Message = u.Name + " gives it all she's got: +1 range this turn"
	result.AffectedUnits = []string{u.Name}
	return nil
}

func resolveAlly(m *game.Match, u *game.Unit, reach int, target *game.Position) (*game.Unit, error) {
	if target == nil {
		return nil, ErrNoValidTarget
	}
	ally, ok := m.Units.At(*target)
	if !ok || ally.Faction != u.Faction || ally.ID == u.ID {
		return nil, ErrNoValidTarget
	}
	if game.Chebyshev(u.Position, *target) > reach {
		return nil, ErrNoValidTarget
	}
	return ally, nil
}

func resolveEnemy(m *game.Match, u *game.Unit, reach int, target *game.Position) (*game.Unit, error) {
	if target == nil {
		return nil, ErrNoValidTarget
	}
	enemy, ok := m.Units.At(*target)
	if !ok || enemy.Faction == u.Faction {
		return nil, ErrNoValidTarget
	}
	if game.Chebyshev(u.Position, *target) > reach {
		return nil, ErrNoValidTarget
	}
	return enemy, nil
}

func execForTheKing(m *game.Match, u *game.Unit, ability game.Ability, target *game.Position, result *AbilityResult) error {
	ally, err := resolveAlly(m, u, ability.Range, target)
	if err != nil {
		return err
	}
	if err := ally.Effects.Add(game.Effect{
		Kind: game.EffectMovementBonus, Name: game.EffectNameKingCharge,
		Description: "+1 movement this turn", Value: 1,
		Duration: game.DurationUntilEndOfTurn,
	}); err != nil {
		return err
	}
	if err := ally.Effects.Add(game.Effect{
		Kind: game.EffectAttackBonus, Name: game.EffectNameKingValor,
		Description: "+1 attack this turn", Value: 1,
		Duration: game.DurationUntilEndOfTurn,
	}); err != nil {
		return err
	}
	result.Message = u.Name + " rallies " + ally.Name + ": +1 move and +1 attack this turn"
	result.AffectedUnits = []string{ally.Name}
	return nil
}

func execStrategicSavant(m *game.Match, u *game.Unit, ability game.Ability, target *game.Position, result *AbilityResult) error {
	ally, err := resolveAlly(m, u, ability.Range, target)
	if err != nil {
		return err
	}
	ally.HasAttacked = false
	if err := ally.Effects.Add(game.Effect{
		Kind: game.EffectMovementBonus, Name: game.EffectNameSavantGambit,
		Description: "+1 movement this turn", Value: 1,
		Duration: game.DurationUntilEndOfTurn,
	}); err != nil {
		return err
	}
	result.Message = u.Name + " directs " + ally.Name + ": extra attack and +1 movement this turn"
	result.AffectedUnits = []string{ally.Name}
	return nil
}

func execVigilance(m *game.Match, u *game.Unit, ability game.Ability, result *AbilityResult) error {
	var granted []string
	for _, ally := range m.Units.Units() {
		if ally.Faction != u.Faction || ally.ID == u.ID {
			continue
		}
		if game.Chebyshev(u.Position, ally.Position) > ability.Range {
			continue
		}
		if err := ally.Effects.Add(game.Effect{
			Kind: game.EffectFirstStrike, Name: game.EffectNameVigilance,
			Description: "Strikes first when attacked", Value: 1,
			Duration: game.DurationUntilNextTurn,
		}); err != nil {
			return err
		}
		granted = append(granted, ally.Name)
	}
	result.Message = u.Name + " grants First Strike to " + strconv.Itoa(len(granted)) + " nearby allies"
	result.AffectedUnits = granted
	return nil
}

func execLure(m *game.Match, u *game.Unit, ability game.Ability, result *AbilityResult) error {
	var lured []string
	for _, enemy := range m.Units.Units() {
		if enemy.Faction == u.Faction {
			continue
		}
		if game.Chebyshev(u.Position, enemy.Position) > ability.Range {
			continue
		}
		next := game.Position{
			Row: enemy.Position.Row + sign(u.Position.Row-enemy.Position.Row),
			Col: enemy.Position.Col + sign(u.Position.Col-enemy.Position.Col),
		}
		if !m.Grid.InBounds(next) {
			continue
		}
		if _, occupied := m.Units.At(next); occupied {
			continue
		}
		if !canStand(enemy, m.Grid.At(next)) {
			continue
		}
		enemy.Position = next
		enemy.Terrain = m.Grid.At(next)
		lured = append(lured, enemy.Name)
	}
	result.Message = "Lured " + strconv.Itoa(len(lured)) + " enemy units toward " + u.Name
	result.AffectedUnits = lured
	return nil
}

func execMobileStrike(m *game.Match, u *game.Unit, target *game.Position, result *AbilityResult) error {
	if target == nil {
		return ErrNoValidTarget
	}
	attack, err := Attack(m, u, *target)
	if err != nil {
		switch err {
		case ErrNoTarget, ErrFriendlyFire, ErrOutOfRange:
			return ErrNoValidTarget
		}
		return err
	}
	if err := u.Effects.Add(game.Effect{
		Kind: game.EffectMovementBonus, Name: game.EffectNameMobileStrike,
		Description: "+2 movement after striking", Value: 2,
		Duration: game.DurationUntilEndOfTurn,
	}); err != nil {
		return err
	}
	result.Attack = attack
	result.ExtraMovement = 2
	result.Message = u.Name + " performs mobile strike"
	result.AffectedUnits = []string{attack.TargetName}
	return nil
}

func execTrample(m *game.Match, u *game.Unit, result *AbilityResult) error {
	ac := newActionContext(m)
	var hit []string
	total := 0
	// Snapshot: defeat removal must not disturb the iteration.
	targets := append([]*game.Unit(nil), m.Units.Units()...)
	for _, enemy := range targets {
		if enemy.Faction == u.Faction {
			continue
		}
		if game.Chebyshev(u.Position, enemy.Position) > 1 {
			continue
		}
		enemy.HitPoints -= 2
		total += 2
		hit = append(hit, enemy.Name)
		if enemy.HitPoints <= 0 {
			ac.defeat(enemy)
		}
	}
	result.Message = u.Name + " tramples through enemies"
	result.Messages = ac.messages
	result.AffectedUnits = hit
	result.DamageDealt = total
	return nil
}

func execGrab(m *game.Match, u *game.Unit, ability game.Ability, target *game.Position, result *AbilityResult) error {
	enemy, err := resolveEnemy(m, u, ability.Range, target)
	if err != nil {
		return err
	}
	ac := newActionContext(m)
	enemy.HitPoints -= 2
	result.DamageDealt = 2
	if enemy.HitPoints <= 0 {
		ac.defeat(enemy)
	} else {
		// Pull the survivor to the first free cell next to the caster,
		// scanning neighbors in row-major order.
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				next := game.Position{Row: u.Position.Row + dr, Col: u.Position.Col + dc}
				if !m.Grid.InBounds(next) {
					continue
				}
				if _, occupied := m.Units.At(next); occupied {
					continue
				}
				if !canStand(enemy, m.Grid.At(next)) {
					continue
				}
				enemy.Position = next
				enemy.Terrain = m.Grid.At(next)
				result.TargetMoved = true
				break
			}
			if result.TargetMoved {
				break
			}
		}
	}
	result.Message = u.Name + " grabs " + enemy.Name + " for 2 damage"
	result.Messages = ac.messages
	result.AffectedUnits = []string{enemy.Name}
	return nil
}

func execDoubleTap(m *game.Match, u *game.Unit, target *game.Position, result *AbilityResult) error {
	enemy, err := resolveEnemy(m, u, EffectiveRange(u), target)
	if err != nil {
		return err
	}
	ac := newActionContext(m)
	enemy.HitPoints--
	result.DamageDealt = 1
	if enemy.HitPoints <= 0 {
		ac.defeat(enemy)
	}
	u.Effects.Remove(game.EffectNameDoubleTap)
	result.Message = u.Name + " fires a double tap at " + enemy.Name + " for 1 damage"
	result.Messages = ac.messages
	result.AffectedUnits = []string{enemy.Name}
	return nil
}
