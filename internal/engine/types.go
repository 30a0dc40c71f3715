package engine

import (
	"github.com/hexbench/tooltip-api/internal/entities"
)

// CalculateCombatStatsInput holds the raw material for stat resolution.
type CalculateCombatStatsInput struct {
	Base      entities.BaseStats
	Items     []entities.ItemStats
	StarLevel int32
}

// CalculateCombatStatsOutput is the resolved stat block.
type CalculateCombatStatsOutput struct {
	Stats entities.CombatStats
}

// ResolveTooltipInput pairs an ability with the stats it scales off.
type ResolveTooltipInput struct {
	// Ability may be nil when the unit has no ability data.
	Ability *entities.AbilityDefinition

	// Stats must already be resolved for the star level being displayed.
	Stats entities.CombatStats

	// FullRange asks the renderer to show "/"-joined per-star values
	// instead of the single current-star number.
	FullRange bool
}

// ResolveTooltipOutput carries the display-ready tooltip.
type ResolveTooltipOutput struct {
	Tooltip *entities.ResolvedTooltip
}
