// Package tooltip implements the tooltip orchestrator: it joins game
// data, the resolution engine, and the cache into the service the API
// handlers call.
package tooltip

//go:generate mockgen -destination=mock/mock_service.go -package=tooltipmock github.com/hexbench/tooltip-api/internal/orchestrators/tooltip Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hexbench/tooltip-api/internal/engine"
	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
	"github.com/hexbench/tooltip-api/internal/pkg/clock"
	"github.com/hexbench/tooltip-api/internal/repositories/gamedata"
	"github.com/hexbench/tooltip-api/internal/repositories/tooltipcache"
)

// Service defines the interface for tooltip operations
type Service interface {
	// GetTooltip resolves a unit's tooltip for a star level and loadout
	GetTooltip(ctx context.Context, input *GetTooltipInput) (*GetTooltipOutput, error)

	// ListUnits returns all units in the game data snapshot
	ListUnits(ctx context.Context, input *ListUnitsInput) (*ListUnitsOutput, error)

	// ListItems returns all items in the game data snapshot
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}

// Config holds the dependencies for the tooltip orchestrator
type Config struct {
	GameDataRepo gamedata.Repository
	Engine       engine.Engine

	// CacheRepo is optional; nil disables caching.
	CacheRepo tooltipcache.Repository

	// Clock is optional; nil uses the system clock.
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameDataRepo == nil {
		vb.RequiredField("GameDataRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	gameData gamedata.Repository
	engine   engine.Engine
	cache    tooltipcache.Repository
	clock    clock.Clock
}

// NewOrchestrator creates a new tooltip orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		gameData: cfg.GameDataRepo,
		engine:   cfg.Engine,
		cache:    cfg.CacheRepo,
		clock:    clk,
	}, nil
}

func (o *orchestrator) GetTooltip(ctx context.Context, input *GetTooltipInput) (*GetTooltipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	unitID := strings.TrimSpace(input.UnitID)
	if unitID == "" {
		return nil, errors.InvalidArgument("unit ID is required")
	}
	if len(input.ItemIDs) > entities.MaxEquippedItems {
		return nil, errors.InvalidArgumentf("at most %d items can be equipped", entities.MaxEquippedItems)
	}

	star := entities.ClampStarLevel(input.StarLevel)

	unitOut, err := o.gameData.GetUnit(ctx, gamedata.GetUnitInput{ID: unitID})
	if err != nil {
		return nil, err
	}
	unit := unitOut.Unit

	itemIDs, itemStats, skipped := o.resolveItems(ctx, input.ItemIDs)

	// Full-range responses are rare and cheap to recompute, so only the
	// single-star shape is cached.
	cacheable := o.cache != nil && !input.FullRange
	key := tooltipcache.Key{UnitID: unitID, ItemIDs: itemIDs, StarLevel: star}

	if cacheable {
		cached, err := o.cache.Get(ctx, tooltipcache.GetInput{Key: key})
		if err == nil {
			return &GetTooltipOutput{
				Unit:         unit,
				Stats:        cached.Entry.Stats,
				Tooltip:      cached.Entry.Tooltip,
				SkippedItems: skipped,
				FromCache:    true,
			}, nil
		}
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "tooltip cache lookup failed",
				"unit_id", unitID,
				"error", err)
		}
	}

	started := o.clock.Now()

	statsOut, err := o.engine.CalculateCombatStats(ctx, &engine.CalculateCombatStatsInput{
		Base:      unit.BaseStats,
		Items:     itemStats,
		StarLevel: star,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate combat stats")
	}

	tooltipOut, err := o.engine.ResolveTooltip(ctx, &engine.ResolveTooltipInput{
		Ability:   unit.Ability,
		Stats:     statsOut.Stats,
		FullRange: input.FullRange,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve tooltip")
	}

	slog.DebugContext(ctx, "resolved tooltip",
		"unit_id", unitID,
		"star_level", star,
		"item_count", len(itemIDs),
		"duration", o.clock.Now().Sub(started))

	if cacheable {
		_, err := o.cache.Set(ctx, tooltipcache.SetInput{
			Key: key,
			Entry: &tooltipcache.Entry{
				Tooltip: tooltipOut.Tooltip,
				Stats:   statsOut.Stats,
			},
		})
		if err != nil {
			// Cache writes are best effort.
			slog.WarnContext(ctx, "tooltip cache write failed",
				"unit_id", unitID,
				"error", err)
		}
	}

	return &GetTooltipOutput{
		Unit:         unit,
		Stats:        statsOut.Stats,
		Tooltip:      tooltipOut.Tooltip,
		SkippedItems: skipped,
	}, nil
}

// resolveItems looks up each requested item, skipping unknown IDs so a
// stale client loadout still renders a tooltip.
func (o *orchestrator) resolveItems(
	ctx context.Context,
	ids []string,
) (known []string, stats []entities.ItemStats, skipped []string) {
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out, err := o.gameData.GetItem(ctx, gamedata.GetItemInput{ID: id})
		if err != nil {
			slog.WarnContext(ctx, "skipping unknown item",
				"item_id", id,
				"error", err)
			skipped = append(skipped, id)
			continue
		}
		known = append(known, id)
		stats = append(stats, out.Item.Stats)
	}
	return known, stats, skipped
}

func (o *orchestrator) ListUnits(ctx context.Context, input *ListUnitsInput) (*ListUnitsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.gameData.ListUnits(ctx, gamedata.ListUnitsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units")
	}

	return &ListUnitsOutput{Units: out.Units}, nil
}

func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	out, err := o.gameData.ListItems(ctx, gamedata.ListItemsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &ListItemsOutput{Items: out.Items}, nil
}
