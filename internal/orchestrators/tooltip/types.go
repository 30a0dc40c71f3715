package tooltip

import (
	"github.com/hexbench/tooltip-api/internal/entities"
)

// GetTooltipInput defines the input for resolving a unit's tooltip
type GetTooltipInput struct {
	UnitID string

	// StarLevel is clamped into 1-3 rather than rejected.
	StarLevel int32

	// ItemIDs is the equipped loadout; unknown IDs are skipped.
	ItemIDs []string

	// FullRange asks for "/"-joined per-star display values.
	FullRange bool
}

// GetTooltipOutput defines the output for resolving a unit's tooltip
type GetTooltipOutput struct {
	Unit    *entities.UnitDefinition
	Stats   entities.CombatStats
	Tooltip *entities.ResolvedTooltip

	// SkippedItems lists requested item IDs that don't exist.
	SkippedItems []string

	// FromCache marks a cache hit.
	FromCache bool
}

// ListUnitsInput defines the input for listing units
type ListUnitsInput struct {
	// Empty for now, pagination can be added later
}

// ListUnitsOutput defines the output for listing units
type ListUnitsOutput struct {
	Units []*entities.UnitDefinition
}

// ListItemsInput defines the input for listing items
type ListItemsInput struct {
	// Empty for now, pagination can be added later
}

// ListItemsOutput defines the output for listing items
type ListItemsOutput struct {
	Items []*entities.ItemDefinition
}
