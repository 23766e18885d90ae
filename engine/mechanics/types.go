// Package mechanics holds the rules-side records and calculations that decide which spells
// an NPC starts with.
package mechanics

// Attribute identifies one of the eight actor attributes.
type Attribute int

const (
	AttributeStrength Attribute = iota
	AttributeIntelligence
	AttributeWillpower
	AttributeAgility
	AttributeSpeed
	AttributeEndurance
	AttributePersonality
	AttributeLuck

	// AttributeCount is the number of attributes.
	AttributeCount = 8
)

var attributeNames = [AttributeCount]string{
	"Strength", "Intelligence", "Willpower", "Agility", "Speed", "Endurance", "Personality", "Luck",
}

// Valid reports whether a is one of the defined attributes.
func (a Attribute) Valid() bool {
	return a >= 0 && a < AttributeCount
}

func (a Attribute) String() string {
	if !a.Valid() {
		return "Unknown"
	}
	return attributeNames[a]
}

// Skill identifies one of the 27 actor skills, in record order.
type Skill int

const (
	SkillBlock Skill = iota
	SkillArmorer
	SkillMediumArmor
	SkillHeavyArmor
	SkillBluntWeapon
	SkillLongBlade
	SkillAxe
	SkillSpear
	SkillAthletics
	SkillEnchant
	SkillDestruction
	SkillAlteration
	SkillIllusion
	SkillConjuration
	SkillMysticism
	SkillRestoration
	SkillAlchemy
	SkillUnarmored
	SkillSecurity
	SkillSneak
	SkillAcrobatics
	SkillLightArmor
	SkillShortBlade
	SkillMarksman
	SkillMercantile
	SkillSpeechcraft
	SkillHandToHand

	// SkillCount is the number of skills.
	SkillCount = 27
)

var skillNames = [SkillCount]string{
	"Block", "Armorer", "MediumArmor", "HeavyArmor", "BluntWeapon", "LongBlade", "Axe", "Spear",
	"Athletics", "Enchant", "Destruction", "Alteration", "Illusion", "Conjuration", "Mysticism",
	"Restoration", "Alchemy", "Unarmored", "Security", "Sneak", "Acrobatics", "LightArmor",
	"ShortBlade", "Marksman", "Mercantile", "Speechcraft", "HandToHand",
}

// Valid reports whether s is one of the defined skills.
func (s Skill) Valid() bool {
	return s >= 0 && s < SkillCount
}

func (s Skill) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return skillNames[s]
}

// School identifies a school of magic.
type School int

const (
	// SchoolNone asks AutoCastChance to derive the school from the spell's effects.
	SchoolNone School = iota - 1
	SchoolAlteration
	SchoolConjuration
	SchoolDestruction
	SchoolIllusion
	SchoolMysticism
	SchoolRestoration

	// SchoolCount is the number of schools.
	SchoolCount = 6
)

var schoolNames = [SchoolCount]string{
	"Alteration", "Conjuration", "Destruction", "Illusion", "Mysticism", "Restoration",
}

var schoolSkills = [SchoolCount]Skill{
	SkillAlteration, SkillConjuration, SkillDestruction, SkillIllusion, SkillMysticism, SkillRestoration,
}

// Valid reports whether s is one of the six schools.
func (s School) Valid() bool {
	return s >= 0 && s < SchoolCount
}

// Skill returns the skill governing spells of this school, or -1 for an invalid school.
func (s School) Skill() Skill {
	if !s.Valid() {
		return -1
	}
	return schoolSkills[s]
}

func (s School) String() string {
	if !s.Valid() {
		return "None"
	}
	return schoolNames[s]
}

// SpellType classifies a spell record.
type SpellType int

const (
	SpellTypeSpell SpellType = iota
	SpellTypeAbility
	SpellTypeBlight
	SpellTypeDisease
	SpellTypeCurse
	SpellTypePower
)

// SpellFlags is a bit set of spell record flags.
type SpellFlags uint32

const (
	// SpellFlagAutocalc marks spells whose cost is computed and which NPCs may be given automatically.
	SpellFlagAutocalc SpellFlags = 1 << iota
	// SpellFlagPCStart marks spells offered to a new player character.
	SpellFlagPCStart
	// SpellFlagAlways marks spells that always succeed.
	SpellFlagAlways
)

// EffectFlags is a bit set of magic effect flags.
type EffectFlags uint32

const (
	EffectFlagTargetSkill     EffectFlags = 0x1
	EffectFlagTargetAttribute EffectFlags = 0x2
	EffectFlagUncappedDamage  EffectFlags = 0x1000
)

// RangeType is where an effect is delivered.
type RangeType int

const (
	RangeSelf RangeType = iota
	RangeTouch
	RangeTarget
)
