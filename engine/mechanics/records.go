package mechanics

import "slices"

// MagicEffect is the static definition of one kind of magic effect.
type MagicEffect struct {
	ID       int
	School   School
	BaseCost float32
	Flags    EffectFlags
}

// EffectInstance is one effect entry of a spell.
// Skill and Attribute are only meaningful when the referenced effect targets one.
type EffectInstance struct {
	EffectID     int
	Skill        Skill
	Attribute    Attribute
	Range        RangeType
	Area         int
	Duration     int
	MagnitudeMin int
	MagnitudeMax int
}

// Spell is a spell, ability, disease or power record.
type Spell struct {
	ID      string
	Name    string
	Type    SpellType
	Cost    int
	Flags   SpellFlags
	Effects []EffectInstance
}

// Race holds the race data relevant to spell selection.
type Race struct {
	ID     string
	Powers []string
}

// HasPower reports whether spellID is one of the race's powers.
func (r *Race) HasPower(spellID string) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.Powers, spellID)
}

// ActorStats holds the base skills and attributes of an actor.
type ActorStats struct {
	Skills     [SkillCount]int
	Attributes [AttributeCount]int
}
