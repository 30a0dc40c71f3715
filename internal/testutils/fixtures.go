package testutils

import (
	"github.com/hexbench/tooltip-api/internal/entities"
)

func ptr(f float64) *float64 { return &f }

// NewTestAbility returns an active ability whose template exercises
// placeholders, wrapper tags, conditional rules text, and a line break.
func NewTestAbility() *entities.AbilityDefinition {
	return &entities.AbilityDefinition{
		Name: "Flame Surge",
		Description: "<spellActive>Flame Surge</spellActive><br>" +
			"Deals @Damage@ magic damage to the nearest enemy and gains a " +
			"@ShieldAmount@ shield for @Duration@ seconds." +
			"<rules>Shield does not stack.</rules>",
		ManaStart: ptr(25),
		ManaCost:  ptr(75),
		Variables: []entities.AbilityVariable{
			{Key: "Damage", PerStar: []float64{0, 80, 120, 180}},
			{Key: "ShieldAmount", PerStar: []float64{0, 50, 75, 110}},
			{Key: "Duration", PerStar: []float64{0, 3, 3, 3}},
		},
	}
}

// NewTestUnit returns a three-cost unit carrying NewTestAbility.
func NewTestUnit() *entities.UnitDefinition {
	return &entities.UnitDefinition{
		ID:     "unit_ember",
		Name:   "Ember",
		Cost:   3,
		Traits: []string{"Pyromancer", "Scrapper"},
		BaseStats: entities.BaseStats{
			Health:       650,
			Mana:         75,
			Armor:        30,
			MagicResist:  30,
			AttackDamage: 55,
			AttackSpeed:  0.75,
			AbilityPower: 100,
			CritChance:   0.25,
			CritDamage:   1.4,
		},
		Ability: NewTestAbility(),
	}
}

// NewTestItems returns the three stock test items: an AP hat, an AD
// sword, and an HP belt.
func NewTestItems() []*entities.ItemDefinition {
	return []*entities.ItemDefinition{
		{
			ID:    "item_deathcap",
			Name:  "Rabadon's Deathcap",
			Stats: entities.ItemStats{AbilityPower: 50},
		},
		{
			ID:    "item_bf_sword",
			Name:  "B.F. Sword",
			Stats: entities.ItemStats{AttackDamage: 33},
		},
		{
			ID:    "item_giants_belt",
			Name:  "Giant's Belt",
			Stats: entities.ItemStats{Health: 250},
		},
	}
}

// NewTestCombatStats returns stats for a bare two-star NewTestUnit.
func NewTestCombatStats() entities.CombatStats {
	return entities.CombatStats{
		Health:       1170, // 650 * 1.8
		Mana:         75,
		Armor:        30,
		MagicResist:  30,
		AttackDamage: 99, // 55 * 1.8
		AttackSpeed:  0.75,
		AbilityPower: 100,
		CritChance:   0.25,
		CritDamage:   1.4,
		StarLevel:    2,
		ItemCount:    0,
	}
}
