package mechanics

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// GameSettingsSection is the INI section LoadGameSettings reads.
const GameSettingsSection = "GameSettings"

// GameSettings holds the tunables used by spell auto-calculation.
// Resolve it once at startup and pass it to NewAutoCalculator.
type GameSettings struct {
	// NPCBaseMagickaMult scales Intelligence into an NPC's base magicka (fNPCbaseMagickaMult).
	NPCBaseMagickaMult float32
	// AutoSpellSchoolMax caps the spells picked per school (iAutoSpell<School>Max).
	AutoSpellSchoolMax [SchoolCount]int
	// AutoSpellTimesCanCast is how many casts the base magicka must afford (iAutoSpellTimesCanCast).
	AutoSpellTimesCanCast int
	// AutoSpellChance is the minimum cast chance for a pick (fAutoSpellChance).
	AutoSpellChance float32
	// AutoSpellAttSkillMin is the minimum value of a skill or attribute an effect targets (iAutoSpellAttSkillMin).
	AutoSpellAttSkillMin int
	// EffectCostMult scales effect cost in the weakest-school estimate (fEffectCostMult).
	EffectCostMult float32
}

// DefaultGameSettings returns the stock values of every auto-calculation setting.
//
// Returns:
//   - GameSettings: the default settings
func DefaultGameSettings() GameSettings {
	return GameSettings{
		NPCBaseMagickaMult:    2,
		AutoSpellSchoolMax:    [SchoolCount]int{2, 2, 2, 2, 2, 2},
		AutoSpellTimesCanCast: 3,
		AutoSpellChance:       80,
		AutoSpellAttSkillMin:  70,
		EffectCostMult:        0.5,
	}
}

// SchoolMaxKey returns the setting name of a school's spell cap, e.g. iAutoSpellAlterationMax.
func SchoolMaxKey(s School) string {
	return "iAutoSpell" + s.String() + "Max"
}

// LoadGameSettings reads the [GameSettings] section of an INI source.
// Keys use the game setting names, matched without regard to case like section names;
// absent keys and a missing section keep their defaults.
//
// Parameters:
//   - source: a file name, []byte or io.Reader accepted by ini.Load
//
// Returns:
//   - GameSettings: the resolved settings
//   - error: error if the source cannot be parsed or a value has the wrong type
func LoadGameSettings(source any) (GameSettings, error) {
	gs := DefaultGameSettings()

	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:             true,
		SkipUnrecognizableLines: true,
	}, source)
	if err != nil {
		return gs, fmt.Errorf("mechanics: load game settings: %w", err)
	}

	sec, err := cfg.GetSection(GameSettingsSection)
	if err != nil {
		return gs, nil
	}

	if err := readFloat(sec, "fNPCbaseMagickaMult", &gs.NPCBaseMagickaMult); err != nil {
		return gs, err
	}
	for s := SchoolAlteration; s < SchoolCount; s++ {
		if err := readInt(sec, SchoolMaxKey(s), &gs.AutoSpellSchoolMax[s]); err != nil {
			return gs, err
		}
	}
	if err := readInt(sec, "iAutoSpellTimesCanCast", &gs.AutoSpellTimesCanCast); err != nil {
		return gs, err
	}
	if err := readFloat(sec, "fAutoSpellChance", &gs.AutoSpellChance); err != nil {
		return gs, err
	}
	if err := readInt(sec, "iAutoSpellAttSkillMin", &gs.AutoSpellAttSkillMin); err != nil {
		return gs, err
	}
	if err := readFloat(sec, "fEffectCostMult", &gs.EffectCostMult); err != nil {
		return gs, err
	}
	return gs, nil
}

func readFloat(sec *ini.Section, key string, dst *float32) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Float64()
	if err != nil {
		return fmt.Errorf("mechanics: game setting %s: %w", key, err)
	}
	*dst = float32(v)
	return nil
}

func readInt(sec *ini.Section, key string, dst *int) error {
	if !sec.HasKey(key) {
		return nil
	}
	v, err := sec.Key(key).Int()
	if err != nil {
		return fmt.Errorf("mechanics: game setting %s: %w", key, err)
	}
	*dst = v
	return nil
}
