// Package tooltipcache defines the interface for caching resolved
// tooltips. The cache is a pure read-through optimization; every entry
// can be recomputed from game data, so loss is never an error.
package tooltipcache

//go:generate mockgen -destination=mock/mock_repository.go -package=tooltipcachemock github.com/hexbench/tooltip-api/internal/repositories/tooltipcache Repository

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// Repository defines the interface for tooltip cache access.
type Repository interface {
	// Get retrieves a cached tooltip
	// Returns errors.InvalidArgument for an invalid key
	// Returns errors.NotFound on a cache miss
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set stores a resolved tooltip under the key, with the repository's TTL
	// Returns errors.InvalidArgument for an invalid key or nil tooltip
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// Key identifies one resolved tooltip: a unit at a star level with a
// specific item loadout. Item order does not matter.
type Key struct {
	UnitID    string
	ItemIDs   []string
	StarLevel int32
}

// String renders the canonical cache key. Item IDs are sorted so two
// loadouts with the same items hash to the same entry.
func (k Key) String() string {
	items := make([]string, len(k.ItemIDs))
	copy(items, k.ItemIDs)
	sort.Strings(items)

	var b strings.Builder
	b.WriteString(k.UnitID)
	b.WriteString(":s")
	b.WriteString(strconv.FormatInt(int64(k.StarLevel), 10))
	for _, id := range items {
		b.WriteString(":")
		b.WriteString(id)
	}
	return b.String()
}

// Entry is the cached payload: the tooltip plus the stats it was
// resolved against, so a cache hit can serve the full API response.
type Entry struct {
	Tooltip *entities.ResolvedTooltip `json:"tooltip"`
	Stats   entities.CombatStats      `json:"stats"`
}

// GetInput defines the input for a cache lookup
type GetInput struct {
	Key Key
}

// GetOutput defines the output for a cache lookup
type GetOutput struct {
	Entry *Entry
}

// SetInput defines the input for storing a tooltip
type SetInput struct {
	Key   Key
	Entry *Entry
}

// SetOutput defines the output for storing a tooltip
type SetOutput struct {
	// Empty for now, can be extended later
}
