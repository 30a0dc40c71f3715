package tooltip

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/hexbench/tooltip-api/internal/engine"
	"github.com/hexbench/tooltip-api/internal/entities"
	"github.com/hexbench/tooltip-api/internal/errors"
)

// noAbilityMessage is the fixed degraded text shown when a unit has no
// ability data at all.
const noAbilityMessage = "No ability data available."

// Config holds the configuration tables for the tooltip engine. All
// sections are optional; nil sections use built-in defaults.
type Config struct {
	Scaling    *ScalingConfig
	Labels     *LabelConfig
	Template   *TemplateConfig
	Classifier *ClassifierConfig
}

// Validate checks the configuration for values the defaults cannot
// repair.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Scaling != nil {
		for _, c := range cfg.Scaling.CategoryCoefficients {
			if c < 0 {
				return errors.InvalidArgument("category coefficients must be non-negative")
			}
		}
	}
	return nil
}

type tooltipEngine struct {
	stats      *StatsResolver
	parser     *TemplateParser
	scaler     *Scaler
	labels     *LabelResolver
	renderer   *Renderer
	classifier *Classifier
	metrics    *MetricsEstimator
}

// New creates the tooltip engine. The returned engine is immutable and
// safe for concurrent use.
func New(cfg *Config) (engine.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scaling := cfg.Scaling.withDefaults()
	labels := NewLabelResolver(cfg.Labels)

	return &tooltipEngine{
		stats:      NewStatsResolver(scaling.StarMultipliers),
		parser:     NewTemplateParser(cfg.Template),
		scaler:     NewScaler(cfg.Scaling),
		labels:     labels,
		renderer:   NewRenderer(labels),
		classifier: NewClassifier(cfg.Classifier),
		metrics:    NewMetricsEstimator(scaling.ManaPerAttack),
	}, nil
}

func (e *tooltipEngine) CalculateCombatStats(
	_ context.Context,
	input *engine.CalculateCombatStatsInput,
) (*engine.CalculateCombatStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	return &engine.CalculateCombatStatsOutput{
		Stats: e.stats.Resolve(input.Base, input.Items, input.StarLevel),
	}, nil
}

func (e *tooltipEngine) ResolveTooltip(
	_ context.Context,
	input *engine.ResolveTooltipInput,
) (*engine.ResolveTooltipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	stats := input.Stats
	stats.StarLevel = entities.ClampStarLevel(stats.StarLevel)

	ability := input.Ability
	if ability == nil {
		return &engine.ResolveTooltipOutput{
			Tooltip: &entities.ResolvedTooltip{
				Type:        entities.SkillTypePassive,
				Paragraphs:  []string{e.labels.TranslateText(noAbilityMessage)},
				Variables:   []entities.ResolvedVariable{},
				TypeGuessed: true,
			},
		}, nil
	}

	cls := e.classifier.Classify(ability)
	parsed := e.parser.Parse(ability.Description)

	vars := make([]entities.ResolvedVariable, 0, len(ability.Variables))
	for _, raw := range ability.Variables {
		scaled := e.scaler.Scale(raw, stats)
		label := e.labels.Resolve(raw.Key)
		vars = append(vars, entities.ResolvedVariable{
			Key:           raw.Key,
			Label:         e.labels.TranslateText(label.Label),
			Category:      scaled.Category,
			Kind:          label.Kind,
			PerStar:       scaled.PerStar,
			CurrentValue:  scaled.Current,
			Bonus:         scaled.Bonus,
			DisplayString: displayString(scaled, input.FullRange),
			Color:         label.Color,
			Priority:      label.Priority,
		})
	}
	// Stable sort keeps the ability's own variable order within a
	// priority tier.
	sort.SliceStable(vars, func(i, j int) bool {
		return vars[i].Priority > vars[j].Priority
	})

	return &engine.ResolveTooltipOutput{
		Tooltip: &entities.ResolvedTooltip{
			Name:        ability.Name,
			Type:        cls.Type,
			Mana:        cls.Mana,
			Paragraphs:  e.renderer.Render(parsed, vars),
			Variables:   vars,
			Metrics:     e.metrics.Estimate(vars, stats, cls.Mana),
			TypeGuessed: cls.Guessed,
		},
	}, nil
}

// displayString renders a scaled variable as the single current-star
// number, or the "/"-joined per-star progression when the full
// breakdown was requested.
func displayString(v ScaledVariable, fullRange bool) string {
	if !fullRange {
		return strconv.FormatInt(int64(v.Current), 10)
	}
	parts := make([]string, len(v.PerStar))
	for i, val := range v.PerStar {
		parts[i] = strconv.FormatInt(int64(val), 10)
	}
	return strings.Join(parts, "/")
}
