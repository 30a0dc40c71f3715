// Package gamedata defines the interface for reading the static game
// data snapshot: unit, item, and ability definitions.
package gamedata

//go:generate mockgen -destination=mock/mock_repository.go -package=gamedatamock github.com/hexbench/tooltip-api/internal/repositories/gamedata Repository

import (
	"context"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// Repository defines the interface for game data access. The snapshot
// is read-only; implementations load it once and serve from memory.
type Repository interface {
	// GetUnit retrieves a unit definition by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the unit doesn't exist
	GetUnit(ctx context.Context, input GetUnitInput) (*GetUnitOutput, error)

	// GetItem retrieves an item definition by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the item doesn't exist
	GetItem(ctx context.Context, input GetItemInput) (*GetItemOutput, error)

	// ListUnits returns all unit definitions sorted by cost then name
	ListUnits(ctx context.Context, input ListUnitsInput) (*ListUnitsOutput, error)

	// ListItems returns all item definitions sorted by name
	ListItems(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error)
}

// GetUnitInput defines the input for getting a unit
type GetUnitInput struct {
	ID string
}

// GetUnitOutput defines the output for getting a unit
type GetUnitOutput struct {
	Unit *entities.UnitDefinition
}

// GetItemInput defines the input for getting an item
type GetItemInput struct {
	ID string
}

// GetItemOutput defines the output for getting an item
type GetItemOutput struct {
	Item *entities.ItemDefinition
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
