package mechanics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

var (
	// ErrUnknownEffect is returned when a spell references a magic effect missing from the store.
	ErrUnknownEffect = errors.New("mechanics: unknown magic effect")
	// ErrNoEffects is returned when a calculation needs at least one effect and the spell has none.
	ErrNoEffects = errors.New("mechanics: spell has no effects")
	// ErrInvalidRecord is returned for records that reference an out-of-range school, skill or attribute.
	ErrInvalidRecord = errors.New("mechanics: invalid record")
)

// AutoCalculator selects the spells an NPC with auto-calculated stats starts with.
type AutoCalculator interface {
	// NPCSpells picks the spells for an actor.
	//
	// Only autocalc spells of type Spell are considered, in ID order. A spell is skipped when the
	// actor's base magicka cannot cast it AutoSpellTimesCanCast times, when it is one of the race's
	// powers, when an effect targets a skill or attribute below AutoSpellAttSkillMin, or when the
	// cast chance is below AutoSpellChance. Each school is capped at AutoSpellSchoolMax; once a cap is
	// reached a new spell must cost more than the weakest selected one, which it then replaces.
	// Spells without effects are skipped.
	//
	// Parameters:
	//   - actor: the actor's base skills and attributes
	//   - race: the actor's race, or nil
	//
	// Returns:
	//   - []string: the selected spell IDs in ascending order
	//   - error: ErrUnknownEffect or ErrInvalidRecord if a considered spell cannot be evaluated
	NPCSpells(actor *ActorStats, race *Race) ([]string, error)

	// AttrSkillCheck reports whether every skill and attribute targeted by the spell's effects
	// is at least AutoSpellAttSkillMin.
	//
	// Parameters:
	//   - spell: the spell to check
	//   - actor: the actor's stats
	//
	// Returns:
	//   - bool: true if the actor passes
	//   - error: ErrUnknownEffect or ErrInvalidRecord
	AttrSkillCheck(spell *Spell, actor *ActorStats) (bool, error)

	// WeakestSchool finds the school of the effect the actor is least suited to cast.
	//
	// Parameters:
	//   - spell: the spell to evaluate
	//   - actor: the actor's stats
	//
	// Returns:
	//   - School: the weakest effect's school
	//   - float32: the skill term, twice the actor's skill in that school
	//   - error: ErrNoEffects, ErrUnknownEffect or ErrInvalidRecord
	WeakestSchool(spell *Spell, actor *ActorStats) (School, float32, error)

	// AutoCastChance estimates the actor's chance to cast the spell.
	// Non-Spell types and spells flagged SpellFlagAlways always return 100.
	//
	// Parameters:
	//   - spell: the spell to evaluate
	//   - actor: the actor's stats
	//   - school: the school whose skill applies, or SchoolNone to use WeakestSchool
	//
	// Returns:
	//   - float32: the cast chance (may be negative or exceed 100)
	//   - error: any error from WeakestSchool, or ErrInvalidRecord for an invalid school
	AutoCastChance(spell *Spell, actor *ActorStats, school School) (float32, error)
}

// autoCalculator is the implementation of the AutoCalculator interface.
type autoCalculator struct {
	settings GameSettings
	store    Store
	logger   *zap.Logger
}

var _ AutoCalculator = &autoCalculator{}

// schoolCaps tracks the selection of one school.
type schoolCaps struct {
	count        int
	limit        int
	reachedLimit bool
	minCost      int
	weakestSpell string
}

// NewAutoCalculator creates an AutoCalculator over a settings table and record store.
//
// Parameters:
//   - settings: the resolved game settings
//   - store: the spell and magic effect records
//   - options: functional options for configuring the calculator
//
// Returns:
//   - AutoCalculator: the new calculator
func NewAutoCalculator(settings GameSettings, store Store, options ...AutoCalculatorBuilderOption) AutoCalculator {
	if store == nil {
		panic("mechanics: NewAutoCalculator requires a non-nil Store")
	}
	c := &autoCalculator{
		settings: settings,
		store:    store,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *autoCalculator) NPCSpells(actor *ActorStats, race *Race) ([]string, error) {
	baseMagicka := c.settings.NPCBaseMagickaMult * float32(actor.Attributes[AttributeIntelligence])

	var caps [SchoolCount]schoolCaps
	for i := range caps {
		limit := c.settings.AutoSpellSchoolMax[i]
		caps[i] = schoolCaps{
			limit:        limit,
			reachedLimit: limit <= 0,
			minCost:      math.MaxInt,
		}
	}

	selected := make(map[string]*Spell)
	for _, spell := range c.store.Spells() {
		if spell.Type != SpellTypeSpell || spell.Flags&SpellFlagAutocalc == 0 {
			continue
		}
		if len(spell.Effects) == 0 {
			continue
		}
		if baseMagicka < float32(c.settings.AutoSpellTimesCanCast*spell.Cost) {
			continue
		}
		if race.HasPower(spell.ID) {
			continue
		}

		ok, err := c.AttrSkillCheck(spell, actor)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		school, _, err := c.WeakestSchool(spell, actor)
		if err != nil {
			return nil, err
		}
		sc := &caps[school]
		if sc.reachedLimit && spell.Cost <= sc.minCost {
			continue
		}

		chance, err := c.AutoCastChance(spell, actor, school)
		if err != nil {
			return nil, err
		}
		if chance < c.settings.AutoSpellChance {
			continue
		}

		selected[spell.ID] = spell
		c.logger.Debug("auto spell selected",
			zap.String("spell", spell.ID),
			zap.Stringer("school", school),
			zap.Float32("chance", chance),
		)

		if sc.reachedLimit {
			delete(selected, sc.weakestSpell)
			c.logger.Debug("auto spell replaced", zap.String("spell", sc.weakestSpell))

			// The replacement candidate is searched across all schools.
			sc.minCost = math.MaxInt
			for _, id := range sortedIDs(selected) {
				if s := selected[id]; s.Cost < sc.minCost {
					sc.minCost = s.Cost
					sc.weakestSpell = s.ID
				}
			}
			continue
		}

		sc.count++
		if sc.count == sc.limit {
			sc.reachedLimit = true
		}
		if spell.Cost < sc.minCost {
			sc.weakestSpell = spell.ID
			sc.minCost = spell.Cost
		}
	}

	return sortedIDs(selected), nil
}

func (c *autoCalculator) AttrSkillCheck(spell *Spell, actor *ActorStats) (bool, error) {
	for _, e := range spell.Effects {
		me, err := c.magicEffect(spell, e.EffectID)
		if err != nil {
			return false, err
		}

		if me.Flags&EffectFlagTargetSkill != 0 {
			if !e.Skill.Valid() {
				return false, fmt.Errorf("spell %q: skill %d: %w", spell.ID, e.Skill, ErrInvalidRecord)
			}
			if actor.Skills[e.Skill] < c.settings.AutoSpellAttSkillMin {
				return false, nil
			}
		}

		if me.Flags&EffectFlagTargetAttribute != 0 {
			if !e.Attribute.Valid() {
				return false, fmt.Errorf("spell %q: attribute %d: %w", spell.ID, e.Attribute, ErrInvalidRecord)
			}
			if actor.Attributes[e.Attribute] < c.settings.AutoSpellAttSkillMin {
				return false, nil
			}
		}
	}
	return true, nil
}

func (c *autoCalculator) WeakestSchool(spell *Spell, actor *ActorStats) (School, float32, error) {
	if len(spell.Effects) == 0 {
		return SchoolNone, 0, fmt.Errorf("spell %q: %w", spell.ID, ErrNoEffects)
	}

	school := SchoolNone
	var skillTerm float32
	minChance := float32(math.MaxFloat32)
	for _, e := range spell.Effects {
		me, err := c.magicEffect(spell, e.EffectID)
		if err != nil {
			return SchoolNone, 0, err
		}
		if !me.School.Valid() {
			return SchoolNone, 0, fmt.Errorf("spell %q: effect %d school %d: %w", spell.ID, me.ID, me.School, ErrInvalidRecord)
		}

		x := float32(e.Duration)
		if me.Flags&EffectFlagUncappedDamage == 0 {
			x = max(1, x)
		}
		x *= 0.1 * me.BaseCost
		x *= 0.5 * float32(e.MagnitudeMin+e.MagnitudeMax)
		x += float32(e.Area) * 0.05 * me.BaseCost
		if e.Range == RangeTarget {
			x *= 1.5
		}
		x *= c.settings.EffectCostMult

		s := 2 * float32(actor.Skills[me.School.Skill()])
		if s-x < minChance {
			minChance = s - x
			school = me.School
			skillTerm = s
		}
	}
	return school, skillTerm, nil
}

func (c *autoCalculator) AutoCastChance(spell *Spell, actor *ActorStats, school School) (float32, error) {
	if spell.Type != SpellTypeSpell || spell.Flags&SpellFlagAlways != 0 {
		return 100, nil
	}

	var skillTerm float32
	switch {
	case school == SchoolNone:
		var err error
		if _, skillTerm, err = c.WeakestSchool(spell, actor); err != nil {
			return 0, err
		}
	case school.Valid():
		skillTerm = 2 * float32(actor.Skills[school.Skill()])
	default:
		return 0, fmt.Errorf("spell %q: school %d: %w", spell.ID, school, ErrInvalidRecord)
	}

	chance := skillTerm - float32(spell.Cost) +
		0.2*float32(actor.Attributes[AttributeWillpower]) +
		0.1*float32(actor.Attributes[AttributeLuck])
	return chance, nil
}

func (c *autoCalculator) magicEffect(spell *Spell, id int) (*MagicEffect, error) {
	me := c.store.MagicEffect(id)
	if me == nil {
		return nil, fmt.Errorf("spell %q: effect %d: %w", spell.ID, id, ErrUnknownEffect)
	}
	return me, nil
}

func sortedIDs(spells map[string]*Spell) []string {
	ids := make([]string, 0, len(spells))
	for id := range spells {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
