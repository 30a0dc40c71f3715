package tooltip

import (
	"github.com/hexbench/tooltip-api/internal/entities"
)

// StatsResolver derives a unit's effective combat stats from base
// stats, equipped items, and a star level.
type StatsResolver struct {
	multipliers []float64
}

// NewStatsResolver creates a resolver with the given per-star
// multiplier table (index 0 unused).
func NewStatsResolver(multipliers []float64) *StatsResolver {
	return &StatsResolver{multipliers: multipliers}
}

// Resolve applies the star multiplier to health and attack damage and
// sums item bonuses onto every stat. Item stat fields absent upstream
// are zero here, so summing needs no special cases. Negative results
// are clamped to zero; star levels outside 1-3 are clamped first.
func (r *StatsResolver) Resolve(
	base entities.BaseStats,
	items []entities.ItemStats,
	star int32,
) entities.CombatStats {
	star = entities.ClampStarLevel(star)
	mult := r.multipliers[star]

	stats := entities.CombatStats{
		Health:       base.Health * mult,
		Mana:         base.Mana,
		Armor:        base.Armor,
		MagicResist:  base.MagicResist,
		AttackDamage: base.AttackDamage * mult,
		AttackSpeed:  base.AttackSpeed,
		AbilityPower: base.AbilityPower,
		CritChance:   base.CritChance,
		CritDamage:   base.CritDamage,
		StarLevel:    star,
		ItemCount:    int32(len(items)),
	}

	for _, it := range items {
		stats.Health += it.Health
		stats.Mana += it.Mana
		stats.Armor += it.Armor
		stats.MagicResist += it.MagicResist
		stats.AttackDamage += it.AttackDamage
		stats.AttackSpeed += it.AttackSpeed
		stats.AbilityPower += it.AbilityPower
		stats.CritChance += it.CritChance
		stats.CritDamage += it.CritDamage
	}

	clampNonNegative(&stats.Health)
	clampNonNegative(&stats.Mana)
	clampNonNegative(&stats.Armor)
	clampNonNegative(&stats.MagicResist)
	clampNonNegative(&stats.AttackDamage)
	clampNonNegative(&stats.AttackSpeed)
	clampNonNegative(&stats.AbilityPower)
	clampNonNegative(&stats.CritChance)
	clampNonNegative(&stats.CritDamage)

	return stats
}

func clampNonNegative(f *float64) {
	if *f < 0 {
		*f = 0
	}
}
