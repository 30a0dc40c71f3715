package tooltip

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexbench/tooltip-api/internal/entities"
)

func TestScaler_Categorize(t *testing.T) {
	s := NewScaler(nil)

	testCases := []struct {
		key      string
		expected entities.ScalingCategory
	}{
		{"MagicDamage", entities.ScalingAP},
		{"HealAmount", entities.ScalingAP},
		{"ShieldAmount", entities.ScalingAP},
		{"PhysicalDamage", entities.ScalingAD},
		{"AttackDamage", entities.ScalingAD},
		{"BonusHealth", entities.ScalingHP},
		{"Health", entities.ScalingHP}, // HP wins although "health" contains "heal"
		{"SpellAttackDamage", entities.ScalingHybrid},
		{"Damage", entities.ScalingNone},
		{"StunDuration", entities.ScalingNone},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.Categorize(tc.key))
		})
	}
}

func TestScaler_Coefficient(t *testing.T) {
	s := NewScaler(nil)

	t.Run("per-key override wins", func(t *testing.T) {
		assert.InDelta(t, 0.4, s.Coefficient("ShieldAmount", entities.ScalingAP), 0.0001)
	})

	t.Run("category default when no override", func(t *testing.T) {
		assert.InDelta(t, 0.01, s.Coefficient("SpellPower", entities.ScalingAP), 0.0001)
	})

	t.Run("NONE never scales", func(t *testing.T) {
		assert.Zero(t, s.Coefficient("Damage", entities.ScalingNone))
	})
}

func TestScaler_Scale(t *testing.T) {
	s := NewScaler(nil)
	stats := entities.CombatStats{
		AbilityPower: 40,
		AttackDamage: 99,
		Health:       1170,
		StarLevel:    2,
	}

	t.Run("override coefficient scales off ability power", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "MagicDamage", PerStar: []float64{0, 100, 150, 225}}
		out := s.Scale(v, stats)

		// magicdamage override 0.6 * 40 AP = +24
		assert.Equal(t, entities.ScalingAP, out.Category)
		assert.Equal(t, [3]int32{124, 174, 249}, out.PerStar)
		assert.Equal(t, int32(174), out.Current)
		assert.Equal(t, int32(24), out.Bonus)
	})

	t.Run("NONE category passes base through", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "StunDuration", PerStar: []float64{0, 2, 2, 3}}
		out := s.Scale(v, stats)

		assert.Equal(t, entities.ScalingNone, out.Category)
		assert.Equal(t, int32(2), out.Current)
		assert.Zero(t, out.Bonus)
	})

	t.Run("values round rather than truncate", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "StunDuration", PerStar: []float64{0, 1.5, 2.4, 2.6}}
		out := s.Scale(v, stats)

		assert.Equal(t, [3]int32{2, 2, 3}, out.PerStar)
	})

	t.Run("negative base values are preserved", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "StunDuration", PerStar: []float64{0, -10, -20, -30}}
		out := s.Scale(v, stats)

		assert.Equal(t, int32(-20), out.Current)
	})

	t.Run("short per-star arrays read as zero", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "StunDuration", PerStar: []float64{0, 2}}
		out := s.Scale(v, stats)

		assert.Equal(t, [3]int32{2, 0, 0}, out.PerStar)
		assert.Zero(t, out.Current)
	})

	t.Run("raising the relevant stat raises the value", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "MagicDamage", PerStar: []float64{0, 100, 150, 225}}

		low := s.Scale(v, stats)
		richer := stats
		richer.AbilityPower = 90
		high := s.Scale(v, richer)

		assert.Greater(t, high.Current, low.Current)
	})

	t.Run("hybrid scales off ability power plus attack damage", func(t *testing.T) {
		v := entities.AbilityVariable{Key: "SpellAttackDamage", PerStar: []float64{0, 50, 75, 110}}
		out := s.Scale(v, stats)

		// default hybrid coefficient 0.01 * (40 + 99) = +1.39, rounds in
		assert.Equal(t, entities.ScalingHybrid, out.Category)
		assert.Equal(t, int32(76), out.Current) // round(75 + 1.39)
		assert.Equal(t, int32(1), out.Bonus)
	})
}
