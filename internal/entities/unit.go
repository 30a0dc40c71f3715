// Package entities defines the domain types shared across all layers.
// These are internal representations, not wire formats; the game-data
// snapshot happens to serialize them as JSON.
package entities

// BaseStats holds a unit's level-independent combat attributes as
// exported by the upstream game data.
type BaseStats struct {
	Health       float64 `json:"health"`
	Mana         float64 `json:"mana"`
	Armor        float64 `json:"armor"`
	MagicResist  float64 `json:"magicResist"`
	AttackDamage float64 `json:"attackDamage"`
	AttackSpeed  float64 `json:"attackSpeed"`
	AbilityPower float64 `json:"abilityPower"`
	CritChance   float64 `json:"critChance"`
	CritDamage   float64 `json:"critDamage"`
}

// UnitDefinition is an immutable unit as loaded from the game-data snapshot.
type UnitDefinition struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Cost      int32              `json:"cost"`
	Traits    []string           `json:"traits,omitempty"`
	BaseStats BaseStats          `json:"baseStats"`
	Ability   *AbilityDefinition `json:"ability,omitempty"`
}

// CombatStats is a unit's effective stats at a given star level with
// items equipped. All fields are non-negative; StarLevel is always in
// the range 1-3 by the time a CombatStats value exists.
type CombatStats struct {
	Health       float64 `json:"health"`
	Mana         float64 `json:"mana"`
	Armor        float64 `json:"armor"`
	MagicResist  float64 `json:"magicResist"`
	AttackDamage float64 `json:"attackDamage"`
	AttackSpeed  float64 `json:"attackSpeed"`
	AbilityPower float64 `json:"abilityPower"`
	CritChance   float64 `json:"critChance"`
	CritDamage   float64 `json:"critDamage"`
	StarLevel    int32   `json:"starLevel"`
	ItemCount    int32   `json:"itemCount"`
}

// MinStarLevel and MaxStarLevel bound the upgrade tiers a unit can hold.
const (
	MinStarLevel int32 = 1
	MaxStarLevel int32 = 3
)

// ClampStarLevel forces a star level into the valid 1-3 range.
// Out-of-range input is clamped rather than rejected.
func ClampStarLevel(star int32) int32 {
	if star < MinStarLevel {
		return MinStarLevel
	}
	if star > MaxStarLevel {
		return MaxStarLevel
	}
	return star
}
