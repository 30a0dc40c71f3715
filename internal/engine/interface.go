// Package engine defines the seam between the service layers and the
// tooltip-resolution engine. The implementation lives in engine/tooltip.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/hexbench/tooltip-api/internal/engine Engine

import (
	"context"
)

// Engine resolves ability tooltips and the combat stats feeding them.
// Implementations are pure: identical inputs produce identical outputs,
// and no call performs I/O. Malformed game data never surfaces as an
// error; it degrades to a best-available tooltip.
type Engine interface {
	// CalculateCombatStats derives a unit's effective stats from base
	// stats, equipped items, and a star level (clamped into 1-3).
	CalculateCombatStats(
		ctx context.Context,
		input *CalculateCombatStatsInput,
	) (*CalculateCombatStatsOutput, error)

	// ResolveTooltip produces the display-ready tooltip for an ability
	// at the given combat stats. A nil ability yields the degraded
	// "no ability data" tooltip rather than an error.
	ResolveTooltip(ctx context.Context, input *ResolveTooltipInput) (*ResolveTooltipOutput, error)
}
