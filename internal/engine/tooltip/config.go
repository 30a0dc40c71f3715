// Package tooltip implements the ability-tooltip resolution engine
// behind the engine.Engine interface. Everything in this package is a
// pure function of its inputs plus the configuration captured at
// construction time; there is no I/O and no shared mutable state.
package tooltip

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
)

// ScalingConfig drives stat resolution and variable scaling. The
// category keywords and coefficients are a heuristic reconstruction of
// game balance data the upstream export does not carry explicitly;
// they are configuration precisely so a data patch can correct them
// without a code change.
type ScalingConfig struct {
	// StarMultipliers is indexed by star level; index 0 is unused.
	// Applied to base health and attack damage only.
	StarMultipliers []float64 `yaml:"star_multipliers"`

	// ManaPerAttack is the assumed mana gained per auto attack, used
	// by the cast-cadence estimate.
	ManaPerAttack float64 `yaml:"mana_per_attack"`

	// CategoryKeywords maps a scaling category to the lowercase
	// substrings of a variable key that select it. HP wins over AP and
	// AD ("health" contains "heal"); a key matching both AP and AD
	// keywords is HYBRID.
	CategoryKeywords map[entities.ScalingCategory][]string `yaml:"category_keywords"`

	// CategoryCoefficients is the fallback coefficient per category
	// when no per-variable override applies.
	CategoryCoefficients map[entities.ScalingCategory]float64 `yaml:"category_coefficients"`

	// VariableCoefficients overrides the coefficient for specific
	// variable keys (lowercase).
	VariableCoefficients map[string]float64 `yaml:"variable_coefficients"`
}

// DefaultScalingConfig returns the multipliers and heuristic tables
// observed in current game data.
func DefaultScalingConfig() *ScalingConfig {
	return &ScalingConfig{
		StarMultipliers: []float64{0, 1.0, 1.8, 3.24},
		ManaPerAttack:   10,
		CategoryKeywords: map[entities.ScalingCategory][]string{
			entities.ScalingAP: {"magic", "spell", "heal", "shield", "power", "burn"},
			entities.ScalingAD: {"physical", "attack", "strike"},
			entities.ScalingHP: {"health", "maxhp"},
		},
		CategoryCoefficients: map[entities.ScalingCategory]float64{
			entities.ScalingAP:     0.01,
			entities.ScalingAD:     0.01,
			entities.ScalingHP:     0.01,
			entities.ScalingHybrid: 0.01,
		},
		VariableCoefficients: map[string]float64{
			"damage":       0.5,
			"magicdamage":  0.6,
			"shieldamount": 0.4,
			"healamount":   0.45,
		},
	}
}

// withDefaults fills any zero-valued section from the defaults so a
// partial YAML file only overrides what it names.
func (c *ScalingConfig) withDefaults() *ScalingConfig {
	def := DefaultScalingConfig()
	if c == nil {
		return def
	}
	out := *c
	if len(out.StarMultipliers) < int(entities.MaxStarLevel)+1 {
		out.StarMultipliers = def.StarMultipliers
	}
	if out.ManaPerAttack <= 0 {
		out.ManaPerAttack = def.ManaPerAttack
	}
	if len(out.CategoryKeywords) == 0 {
		out.CategoryKeywords = def.CategoryKeywords
	}
	if len(out.CategoryCoefficients) == 0 {
		out.CategoryCoefficients = def.CategoryCoefficients
	}
	if out.VariableCoefficients == nil {
		out.VariableCoefficients = def.VariableCoefficients
	}
	return &out
}

// LabelEntry is the display mapping for one variable key.
type LabelEntry struct {
	Label    string `yaml:"label"`
	Kind     string `yaml:"kind"`
	Color    string `yaml:"color"`
	Priority int32  `yaml:"priority"`
}

// LabelConfig is the locale dictionary consumed by the label resolver.
// Labels is keyed by lowercase variable key; Keywords is the free-form
// text translation table (English term to localized equivalent),
// applied with word-boundary matching at render time only.
type LabelConfig struct {
	Labels   map[string]LabelEntry `yaml:"labels"`
	Keywords map[string]string     `yaml:"keywords"`
}

// DefaultLabelConfig returns the built-in English dictionary.
func DefaultLabelConfig() *LabelConfig {
	return &LabelConfig{
		Labels: map[string]LabelEntry{
			"damage":         {Label: "Damage", Kind: string(entities.EffectDamage), Color: "#d64545", Priority: 100},
			"magicdamage":    {Label: "Magic Damage", Kind: string(entities.EffectDamage), Color: "#9a5cd0", Priority: 100},
			"physicaldamage": {Label: "Physical Damage", Kind: string(entities.EffectDamage), Color: "#d6772b", Priority: 100},
			"truedamage":     {Label: "True Damage", Kind: string(entities.EffectDamage), Color: "#f0f0f0", Priority: 100},
			"healamount":     {Label: "Heal", Kind: string(entities.EffectHeal), Color: "#4fad52", Priority: 80},
			"heal":           {Label: "Heal", Kind: string(entities.EffectHeal), Color: "#4fad52", Priority: 80},
			"shieldamount":   {Label: "Shield", Kind: string(entities.EffectShield), Color: "#cfcfcf", Priority: 70},
			"shield":         {Label: "Shield", Kind: string(entities.EffectShield), Color: "#cfcfcf", Priority: 70},
			"duration":       {Label: "Duration", Kind: string(entities.EffectDuration), Priority: 40},
			"stunduration":   {Label: "Stun Duration", Kind: string(entities.EffectDuration), Priority: 40},
			"attackspeed":    {Label: "Attack Speed", Kind: string(entities.EffectStat), Priority: 30},
			"bonusarmor":     {Label: "Armor", Kind: string(entities.EffectStat), Priority: 30},
		},
		Keywords: map[string]string{},
	}
}

func (c *LabelConfig) withDefaults() *LabelConfig {
	def := DefaultLabelConfig()
	if c == nil {
		return def
	}
	out := *c
	if len(out.Labels) == 0 {
		out.Labels = def.Labels
	}
	if out.Keywords == nil {
		out.Keywords = def.Keywords
	}
	return &out
}

// TemplateConfig drives the description tokenizer.
type TemplateConfig struct {
	// ConditionalTags name markup tags whose wrapped content is only
	// shown under a runtime condition this engine never satisfies, so
	// the whole block is stripped (lowercase tag names).
	ConditionalTags []string `yaml:"conditional_tags"`

	// ConnectiveKeywords start a new paragraph when they open a clause.
	ConnectiveKeywords []string `yaml:"connective_keywords"`
}

// DefaultTemplateConfig returns the tag and connective tables observed
// in current game data.
func DefaultTemplateConfig() *TemplateConfig {
	return &TemplateConfig{
		ConditionalTags:    []string{"rules", "tftrules", "tftitemrules", "showif", "showifnot"},
		ConnectiveKeywords: []string{"Afterward", "Additionally"},
	}
}

func (c *TemplateConfig) withDefaults() *TemplateConfig {
	def := DefaultTemplateConfig()
	if c == nil {
		return def
	}
	out := *c
	if len(out.ConditionalTags) == 0 {
		out.ConditionalTags = def.ConditionalTags
	}
	if len(out.ConnectiveKeywords) == 0 {
		out.ConnectiveKeywords = def.ConnectiveKeywords
	}
	return &out
}

// ClassifierConfig drives the active/passive fallback keywords used
// when mana fields are absent.
type ClassifierConfig struct {
	PassiveKeywords []string `yaml:"passive_keywords"`
	ActiveKeywords  []string `yaml:"active_keywords"`
}

// DefaultClassifierConfig returns the built-in keyword lists.
func DefaultClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		PassiveKeywords: []string{"passive", "innate", "constantly", "permanently", "always"},
		ActiveKeywords:  []string{"cast", "channel", "active"},
	}
}

func (c *ClassifierConfig) withDefaults() *ClassifierConfig {
	def := DefaultClassifierConfig()
	if c == nil {
		return def
	}
	out := *c
	if len(out.PassiveKeywords) == 0 {
		out.PassiveKeywords = def.PassiveKeywords
	}
	if len(out.ActiveKeywords) == 0 {
		out.ActiveKeywords = def.ActiveKeywords
	}
	return &out
}

// LoadScalingConfig reads a ScalingConfig from a YAML file.
func LoadScalingConfig(path string) (*ScalingConfig, error) {
	var cfg ScalingConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLabelConfig reads a LabelConfig from a YAML file.
func LoadLabelConfig(path string) (*LabelConfig, error) {
	var cfg LabelConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 // operator-supplied config path
	if err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file "+path)
	}
	return nil
}
