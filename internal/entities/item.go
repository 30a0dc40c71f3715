package entities

// ItemStats holds the flat stat bonuses an item grants. Fields the
// upstream export omits decode as zero, which is exactly the contract
// the stats resolver wants.
type ItemStats struct {
	Health       float64 `json:"health,omitempty"`
	Mana         float64 `json:"mana,omitempty"`
	Armor        float64 `json:"armor,omitempty"`
	MagicResist  float64 `json:"magicResist,omitempty"`
	AttackDamage float64 `json:"attackDamage,omitempty"`
	AttackSpeed  float64 `json:"attackSpeed,omitempty"`
	AbilityPower float64 `json:"abilityPower,omitempty"`
	CritChance   float64 `json:"critChance,omitempty"`
	CritDamage   float64 `json:"critDamage,omitempty"`
}

// ItemDefinition is an immutable item as loaded from the game-data snapshot.
type ItemDefinition struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Stats ItemStats `json:"stats"`
}

// MaxEquippedItems is the most items a single unit can hold.
const MaxEquippedItems = 3
