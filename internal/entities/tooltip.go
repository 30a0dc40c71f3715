package entities

// SkillType says whether an ability is cast for mana or always on.
type SkillType string

// Skill types.
const (
	SkillTypeActive  SkillType = "active"
	SkillTypePassive SkillType = "passive"
)

// ScalingCategory identifies which resolved combat stat, if any, adds a
// bonus on top of a variable's per-star base value.
type ScalingCategory string

// Scaling categories.
const (
	ScalingAP     ScalingCategory = "AP"
	ScalingAD     ScalingCategory = "AD"
	ScalingHP     ScalingCategory = "HP"
	ScalingHybrid ScalingCategory = "HYBRID"
	ScalingNone   ScalingCategory = "NONE"
)

// EffectKind is the semantic category a variable's label carries, used
// for display color grouping and for the derived-metric estimate.
type EffectKind string

// Effect kinds.
const (
	EffectDamage   EffectKind = "damage"
	EffectHeal     EffectKind = "heal"
	EffectShield   EffectKind = "shield"
	EffectDuration EffectKind = "duration"
	EffectStat     EffectKind = "stat"
	EffectOther    EffectKind = "other"
)

// ManaInfo is the mana line shown for active abilities.
type ManaInfo struct {
	Start int32 `json:"start"`
	Cost  int32 `json:"cost"`
}

// ResolvedVariable is one ability variable after scaling and label
// resolution. PerStar holds the final (base + stat bonus) values for
// star levels 1-3; CurrentValue is the entry for the requested star.
type ResolvedVariable struct {
	Key           string          `json:"key"`
	Label         string          `json:"label"`
	Category      ScalingCategory `json:"category"`
	Kind          EffectKind      `json:"kind"`
	PerStar       [3]int32        `json:"perStar"`
	CurrentValue  int32           `json:"currentValue"`
	Bonus         int32           `json:"bonus"`
	DisplayString string          `json:"displayString"`
	Color         string          `json:"color,omitempty"`
	Priority      int32           `json:"priority,omitempty"`
}

// DerivedMetrics are the secondary display estimates. Both fields are
// optional; DPS is absent for abilities without a usable cast cadence.
type DerivedMetrics struct {
	DPS            *float64 `json:"dps,omitempty"`
	BurstPotential *float64 `json:"burstPotential,omitempty"`
}

// ResolvedTooltip is the display-ready artifact handed to the
// presentation layer. It is recomputed from scratch on every
// (unit, item-set, star-level) change; nothing here is mutated after
// construction.
type ResolvedTooltip struct {
	Name       string             `json:"name"`
	Type       SkillType          `json:"type"`
	Mana       *ManaInfo          `json:"manaInfo,omitempty"`
	Paragraphs []string           `json:"paragraphs"`
	Variables  []ResolvedVariable `json:"variables"`
	Metrics    DerivedMetrics     `json:"derivedMetrics"`

	// TypeGuessed marks a low-confidence passive classification
	// (the default branch of the classifier). Data-quality triage
	// signal only, never shown to end users.
	TypeGuessed bool `json:"-"`
}
