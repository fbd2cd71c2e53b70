package game

// AbilityType groups abilities by how they come into play.
type AbilityType string

const (
	// AbilityPassive abilities are always on.
	AbilityPassive AbilityType = "passive"
	// AbilityActive abilities are triggered by the player in place of an attack.
	AbilityActive AbilityType = "active"
	// AbilityTriggered abilities fire off another action, such as a successful hit.
	AbilityTriggered AbilityType = "triggered"
	// AbilityConditionalPassive abilities apply only while their condition holds.
	AbilityConditionalPassive AbilityType = "conditional_passive"
)

// AbilityEffect is the closed set of mechanical variants an ability can
// have. Execution dispatches on this tag with an exhaustive switch, so
// adding a variant without a handler is a compile-visible gap, not a
// silent string miss.
type AbilityEffect string

const (
	EffectTagRangeBoost        AbilityEffect = "range_boost"
	EffectTagBonusAttack       AbilityEffect = "bonus_attack"
	EffectTagDamageReduction   AbilityEffect = "damage_reduction"
	EffectTagMovementBoost     AbilityEffect = "movement_boost"
	EffectTagRangeBoostPenalty AbilityEffect = "range_boost_with_penalty"
	EffectTagAllyBoost         AbilityEffect = "ally_boost"
	EffectTagTacticalStrike    AbilityEffect = "tactical_strike"
	EffectTagFirstStrikeAura   AbilityEffect = "first_strike_aura"
	EffectTagForcedMovement    AbilityEffect = "forced_movement"
	EffectTagAttackAndMove     AbilityEffect = "attack_and_move"
	EffectTagFlight            AbilityEffect = "flight"
	EffectTagTrampleAttack     AbilityEffect = "trample_attack"
	EffectTagPullAttack        AbilityEffect = "pull_attack"
)

// Ability condition tags checked by the conditional reconciler.
const (
	ConditionNoMovement = "no_movement"
	ConditionNoAttack   = "no_attack"
)

// Ability names as they appear in unit specials.
const (
	AbilitySpotter         = "Spotter"
	AbilityDoubleTap       = "Double tap"
	AbilitySwordAndBoard   = "Sword & Board"
	AbilityTrustySteed     = "Trusty Steed"
	AbilityAllShesGot      = "All She's Got"
	AbilityForTheKing      = "For the King!"
	AbilityStrategicSavant = "Strategic Savant"
	AbilityVigilance       = "Vigilance"
	AbilityLure            = "Lure"
	AbilityMobileStrike    = "Mobile Strike"
	AbilityFlying          = "Flying"
	AbilityTrample         = "Trample"
	AbilityGrab            = "Grab"
)

// Effect names granted by abilities. Each is a ledger dedup key.
const (
	EffectNameSwordAndBoard    = "Sword & Board Defense"
	EffectNameTrustySteed      = "Trusty Steed Bonus"
	EffectNameSpotter          = "Spotter Bonus"
	EffectNameDoubleTap        = "Double Tap Ready"
	EffectNameAllShesGot       = "All She's Got"
	EffectNameAllShesGotRecoil = "All She's Got Recoil"
	EffectNameAllShesGotStrain = "All She's Got Strain"
	EffectNameKingCharge       = "For the King! Charge"
	EffectNameKingValor        = "For the King! Valor"
	EffectNameSavantGambit     = "Savant's Gambit"
	EffectNameVigilance        = "Vigilance"
	EffectNameMobileStrike     = "Mobile Strike"
)

// Ability describes one entry of the ability catalog. Range is in board
// squares (Chebyshev); zero means self or adjacent only. AttackExempt
// abilities do not consume the unit's attack when executed.
type Ability struct {
	Name         string        `json:"name"`
	Type         AbilityType   `json:"type"`
	Description  string        `json:"description"`
	Range        int           `json:"range,omitempty"`
	Effect       AbilityEffect `json:"effect"`
	Condition    string        `json:"condition,omitempty"`
	Trigger      string        `json:"trigger,omitempty"`
	AttackExempt bool          `json:"attack_exempt,omitempty"`
}

// DefaultAbilities returns the full ability catalog in presentation
// order. Callers must not mutate the entries.
func DefaultAbilities() []Ability {
	return []Ability{
		{
			Name:        AbilitySpotter,
			Type:        AbilityPassive,
			Description: "Friendly units within range 4 have +1 effective range",
			Range:       4,
			Effect:      EffectTagRangeBoost,
		},
		{
			Name:         AbilityDoubleTap,
			Type:         AbilityTriggered,
			Description:  "On successful hit, may make extra 1 damage attack vs another unit in range",
			Trigger:      "successful_attack",
			Effect:       EffectTagBonusAttack,
			AttackExempt: true,
		},
		{
			Name:        AbilitySwordAndBoard,
			Type:        AbilityConditionalPassive,
			Description: "If unit doesn't move, negates first damage point next turn",
			Condition:   ConditionNoMovement,
			Effect:      EffectTagDamageReduction,
		},
		{
			Name:         AbilityTrustySteed,
			Type:         AbilityConditionalPassive,
			Description:  "If unit doesn't attack, +1 move this turn",
			Condition:    ConditionNoAttack,
			Effect:       EffectTagMovementBoost,
			AttackExempt: true,
		},
		{
			Name:        AbilityAllShesGot,
			Type:        AbilityActive,
			Description: "+1 range this turn, but can't move/attack next turn",
			Effect:      EffectTagRangeBoostPenalty,
		},
		{
			Name:        AbilityForTheKing,
			Type:        AbilityActive,
			Description: "Grant friendly unit extra move + melee attack bonus",
			Range:       4,
			Effect:      EffectTagAllyBoost,
		},
		{
			Name:        AbilityStrategicSavant,
			Type:        AbilityActive,
			Description: "Grant extra attack to friendly unit, bonus move if target defeated",
			Range:       4,
			Effect:      EffectTagTacticalStrike,
		},
		{
			Name:        AbilityVigilance,
			Type:        AbilityActive,
			Description: "Grant First Strike to nearby allies",
			Range:       2,
			Effect:      EffectTagFirstStrikeAura,
		},
		{
			Name:        AbilityLure,
			Type:        AbilityActive,
			Description: "Force enemies within 5 squares to move 2 squares toward satyr",
			Range:       5,
			Effect:      EffectTagForcedMovement,
		},
		{
			Name:        AbilityMobileStrike,
			Type:        AbilityActive,
			Description: "Attack then move 2 extra tiles",
			Effect:      EffectTagAttackAndMove,
		},
		{
			Name:        AbilityFlying,
			Type:        AbilityPassive,
			Description: "Can fly over water, move through any terrain for 1 point",
			Effect:      EffectTagFlight,
		},
		{
			Name:        AbilityTrample,
			Type:        AbilityActive,
			Description: "Move through enemy dealing damage, end on open tile",
			Effect:      EffectTagTrampleAttack,
		},
		{
			Name:        AbilityGrab,
			Type:        AbilityActive,
			Description: "Pull enemy from 2 tiles away, deal 2 damage",
			Range:       2,
			Effect:      EffectTagPullAttack,
		},
	}
}

var abilityRegistry = buildAbilityRegistry()

func buildAbilityRegistry() map[string]Ability {
	registry := map[string]Ability{}
	for _, a := range DefaultAbilities() {
		registry[a.Name] = a
	}
	return registry
}

// AbilityByName looks an ability up in the catalog.
func AbilityByName(name string) (Ability, bool) {
	a, ok := abilityRegistry[name]
	return a, ok
}
