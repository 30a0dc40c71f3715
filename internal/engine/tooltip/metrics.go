package tooltip

import (
	"github.com/hexbench/tooltip-api/internal/entities"
)

// MetricsEstimator computes the secondary display metrics: expected
// burst and an estimated cast-sequence DPS. Both are approximations
// for comparison shopping between units, not a combat simulation.
type MetricsEstimator struct {
	manaPerAttack float64
}

// NewMetricsEstimator creates an estimator using the configured mana
// gain per auto attack.
func NewMetricsEstimator(manaPerAttack float64) *MetricsEstimator {
	return &MetricsEstimator{manaPerAttack: manaPerAttack}
}

// Estimate sums the damage and heal variables at the current star into
// a burst figure, then divides by the estimated seconds between casts
// for DPS. DPS is omitted when the ability has no mana cadence or the
// unit cannot attack.
func (m *MetricsEstimator) Estimate(
	vars []entities.ResolvedVariable,
	stats entities.CombatStats,
	mana *entities.ManaInfo,
) entities.DerivedMetrics {
	var burst float64
	for _, v := range vars {
		if v.Kind == entities.EffectDamage || v.Kind == entities.EffectHeal {
			burst += float64(v.CurrentValue)
		}
	}

	var out entities.DerivedMetrics
	if burst <= 0 {
		return out
	}
	out.BurstPotential = &burst

	if mana == nil || m.manaPerAttack <= 0 || stats.AttackSpeed <= 0 {
		return out
	}
	attacksPerCast := float64(mana.Cost-mana.Start) / m.manaPerAttack
	if attacksPerCast < 1 {
		// A unit cannot cast faster than its first attack.
		attacksPerCast = 1
	}
	castTime := attacksPerCast / stats.AttackSpeed
	dps := burst / castTime
	out.DPS = &dps
	return out
}
