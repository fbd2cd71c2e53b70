package game

import "gorm.io/gorm"

// Faction is a persisted catalog entry: a named side with the unit
// templates players can recruit from. Match state never touches the
// database; only this static catalog lives there.
type Faction struct {
	gorm.Model
	Key   string         `json:"key" gorm:"uniqueIndex;size:64"`
	Name  string         `json:"name"`
	Units []UnitTemplate `json:"units" gorm:"foreignKey:FactionID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default GORM table name so the persisted
// table is `faction_catalog` instead of the default `factions`.
func (Faction) TableName() string { return "faction_catalog" }

// UnitTemplate is the recruitable blueprint a live Unit is stamped
// from. Stats are baseline values; in-match modifiers never write back
// to the template.
type UnitTemplate struct {
	gorm.Model
	FactionID uint      `json:"-"`
	Name      string    `json:"name"`
	Class     UnitClass `json:"unit_class"`
	HitPoints int       `json:"hp"`
	Move      int       `json:"move"`
	Range     int       `json:"range"`
	Attack    int       `json:"atk"`
	Special   string    `json:"special"`
}

// TableName keeps the template table name explicit.
func (UnitTemplate) TableName() string { return "unit_templates" }

// Cost returns the recruitment cost of this template's class.
func (t UnitTemplate) Cost() int {
	return ClassCost(t.Class)
}

// NewUnit stamps a live unit from the template. Position and terrain
// are set by placement afterwards.
func (t UnitTemplate) NewUnit() *Unit {
	return &Unit{
		Name:           t.Name,
		Class:          t.Class,
		HitPoints:      t.HitPoints,
		MaxHitPoints:   t.HitPoints,
		Move:           t.Move,
		MovesRemaining: t.Move,
		Range:          t.Range,
		Attack:         t.Attack,
		Special:        t.Special,
	}
}

// DefaultFactions returns the built-in faction catalog used to seed an
// empty database. Every ability in the registry is carried by at least
// one template here.
func DefaultFactions() []Faction {
	return []Faction{
		{
			Key:  "kingdom_of_cantrell",
			Name: "Kingdom of Cantrell",
			Units: []UnitTemplate{
				{
					Name: "Watchtower Scout", Class: ClassScout,
					HitPoints: 2, Move: 4, Range: 1, Attack: 1,
					Special: "Spotter - Friendly units within range 4 have +1 effective range",
				},
				{
					Name: "Royal Outrider", Class: ClassScout,
					HitPoints: 2, Move: 4, Range: 1, Attack: 1,
					Special: "Trusty Steed - If unit doesn't attack, +1 move this turn",
				},
				{
					Name: "Longbow Marksman", Class: ClassRanger,
					HitPoints: 2, Move: 3, Range: 3, Attack: 2,
					Special: "Double tap - On successful hit, may make extra 1 damage attack vs another unit in range",
				},
				{
					Name: "Shield Sergeant", Class: ClassMelee,
					HitPoints: 4, Move: 3, Range: 1, Attack: 3,
					Special: "Sword & Board - If unit doesn't move, negates first damage point next turn",
				},
				{
					Name: "Royal Vanguard", Class: ClassHeavy,
					HitPoints: 6, Move: 2, Range: 1, Attack: 4,
					Special: "Vigilance - Grant First Strike to nearby allies",
				},
				{
					Name: "Siege Bombardier", Class: ClassArtillery,
					HitPoints: 3, Move: 1, Range: 4, Attack: 5,
					Special: "All She's Got - +1 range this turn, but can't move/attack next turn",
				},
				{
					Name: "Battle Tactician", Class: ClassLeader,
					HitPoints: 5, Move: 3, Range: 2, Attack: 3,
					Special: "Strategic Savant - Grant extra attack to friendly unit, bonus move if target defeated",
				},
				{
					Name: "King Aldric", Class: ClassLeader,
					HitPoints: 5, Move: 3, Range: 2, Attack: 3,
					Special: "For the King! - Grant friendly unit extra move + melee attack bonus",
				},
			},
		},
		{
			Key:  "the_fae_armies",
			Name: "The Fae Armies",
			Units: []UnitTemplate{
				{
					Name: "Gossamer Sprite", Class: ClassScout,
					HitPoints: 2, Move: 4, Range: 1, Attack: 1,
					Special: "Flying - Can fly over water, move through any terrain for 1 point",
				},
				{
					Name: "Satyr Piper", Class: ClassScout,
					HitPoints: 2, Move: 4, Range: 1, Attack: 1,
					Special: "Lure - Force enemies within 5 squares to move 2 squares toward satyr",
				},
				{
					Name: "Wild Elf Skirmisher", Class: ClassRanger,
					HitPoints: 2, Move: 3, Range: 3, Attack: 2,
					Special: "Mobile Strike - Attack then move 2 extra tiles",
				},
				{
					Name: "Centaur Charger", Class: ClassMelee,
					HitPoints: 4, Move: 3, Range: 1, Attack: 3,
					Special: "Trample - Move through enemy dealing damage, end on open tile",
				},
				{
					Name: "Briarhorn Behemoth", Class: ClassHeavy,
					HitPoints: 6, Move: 2, Range: 1, Attack: 4,
					Special: "Trample - Move through enemy dealing damage, end on open tile",
				},
				{
					Name: "Forest Lord", Class: ClassLeader,
					HitPoints: 5, Move: 3, Range: 2, Attack: 3,
					Special: "Grab - Pull enemy from 2 tiles away, deal 2 damage",
				},
			},
		},
	}
}
