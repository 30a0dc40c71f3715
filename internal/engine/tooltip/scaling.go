package tooltip

import (
	"math"
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// ScaledVariable is one ability variable after numeric resolution.
type ScaledVariable struct {
	Key      string
	Category entities.ScalingCategory
	// PerStar holds final (base + stat bonus) values for stars 1-3.
	PerStar [3]int32
	Current int32
	Bonus   int32
}

// Scaler computes final variable values. The scaling category is
// inferred from the variable key by substring matching; this is a
// known-imprecise approximation of balance data the upstream export
// does not carry, which is why every table it consults comes from
// ScalingConfig rather than code.
type Scaler struct {
	cfg *ScalingConfig
}

// NewScaler creates a scaler; nil config uses the defaults.
func NewScaler(cfg *ScalingConfig) *Scaler {
	return &Scaler{cfg: cfg.withDefaults()}
}

// Categorize infers the scaling category for a variable key.
// HP keywords win outright ("health" would otherwise match the AP
// keyword "heal"); a key matching both AD and AP keywords is HYBRID.
func (s *Scaler) Categorize(key string) entities.ScalingCategory {
	k := strings.ToLower(key)

	if s.matchesAny(k, entities.ScalingHP) {
		return entities.ScalingHP
	}
	ad := s.matchesAny(k, entities.ScalingAD)
	ap := s.matchesAny(k, entities.ScalingAP)
	switch {
	case ad && ap:
		return entities.ScalingHybrid
	case ad:
		return entities.ScalingAD
	case ap:
		return entities.ScalingAP
	}
	return entities.ScalingNone
}

func (s *Scaler) matchesAny(key string, cat entities.ScalingCategory) bool {
	for _, kw := range s.cfg.CategoryKeywords[cat] {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// Coefficient returns the per-key override if one exists, otherwise
// the category default. NONE variables never scale.
func (s *Scaler) Coefficient(key string, cat entities.ScalingCategory) float64 {
	if cat == entities.ScalingNone {
		return 0
	}
	if c, ok := s.cfg.VariableCoefficients[strings.ToLower(key)]; ok {
		return c
	}
	return s.cfg.CategoryCoefficients[cat]
}

// StatFor picks the combat stat a category scales off.
func (s *Scaler) StatFor(cat entities.ScalingCategory, stats entities.CombatStats) float64 {
	switch cat {
	case entities.ScalingAP:
		return stats.AbilityPower
	case entities.ScalingAD:
		return stats.AttackDamage
	case entities.ScalingHP:
		return stats.Health
	case entities.ScalingHybrid:
		return stats.AbilityPower + stats.AttackDamage
	}
	return 0
}

// Scale resolves a variable against combat stats:
// final[s] = round(base[s] + coefficient * stat). Displayed values are
// rounded, never truncated, and negative base values pass through
// unclamped. Bonus is the integer gain over the base at the current
// star level.
func (s *Scaler) Scale(v entities.AbilityVariable, stats entities.CombatStats) ScaledVariable {
	cat := s.Categorize(v.Key)
	coeff := s.Coefficient(v.Key, cat)
	bonus := coeff * s.StatFor(cat, stats)

	out := ScaledVariable{
		Key:      v.Key,
		Category: cat,
	}
	for star := entities.MinStarLevel; star <= entities.MaxStarLevel; star++ {
		out.PerStar[star-1] = roundToInt32(v.ValueAt(star) + bonus)
	}

	star := entities.ClampStarLevel(stats.StarLevel)
	out.Current = out.PerStar[star-1]
	out.Bonus = out.Current - roundToInt32(v.ValueAt(star))
	return out
}

func roundToInt32(f float64) int32 {
	return int32(math.Round(f))
}
