package tooltip

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// ResolvedLabel is the display mapping for one variable key.
type ResolvedLabel struct {
	Label    string
	Kind     entities.EffectKind
	Color    string
	Priority int32
}

// LabelResolver maps internal variable keys to localized display
// labels, and applies the free-form keyword translation pass to
// display text. It never fails: an unmapped key resolves to itself.
type LabelResolver struct {
	labels map[string]LabelEntry
	// known keys, longest first, for the substring fallback.
	ordered  []string
	keywords []keywordRule
}

type keywordRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewLabelResolver creates a resolver; nil config uses the built-in
// English dictionary.
func NewLabelResolver(cfg *LabelConfig) *LabelResolver {
	cfg = cfg.withDefaults()

	ordered := make([]string, 0, len(cfg.Labels))
	for k := range cfg.Labels {
		ordered = append(ordered, k)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	kws := make([]string, 0, len(cfg.Keywords))
	for k := range cfg.Keywords {
		kws = append(kws, k)
	}
	sort.Slice(kws, func(i, j int) bool {
		if len(kws[i]) != len(kws[j]) {
			return len(kws[i]) > len(kws[j])
		}
		return kws[i] < kws[j]
	})
	rules := make([]keywordRule, 0, len(kws))
	for _, k := range kws {
		rules = append(rules, keywordRule{
			re:          regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
			replacement: cfg.Keywords[k],
		})
	}

	return &LabelResolver{
		labels:   cfg.Labels,
		ordered:  ordered,
		keywords: rules,
	}
}

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// Resolve maps a variable key to its display label. Lookup order:
// exact match, trailing-digit-stripped match (merging Damage1/Damage2
// into one base key), longest substring containment, then the raw key
// itself.
func (r *LabelResolver) Resolve(key string) ResolvedLabel {
	k := strings.ToLower(key)

	if e, ok := r.labels[k]; ok {
		return r.resolved(e)
	}

	if stripped := trailingDigits.ReplaceAllString(k, ""); stripped != k {
		if e, ok := r.labels[stripped]; ok {
			return r.resolved(e)
		}
	}

	for _, known := range r.ordered {
		if strings.Contains(k, known) {
			return r.resolved(r.labels[known])
		}
	}

	return ResolvedLabel{Label: key, Kind: entities.EffectOther}
}

func (r *LabelResolver) resolved(e LabelEntry) ResolvedLabel {
	kind := entities.EffectKind(e.Kind)
	if kind == "" {
		kind = entities.EffectOther
	}
	return ResolvedLabel{
		Label:    e.Label,
		Kind:     kind,
		Color:    e.Color,
		Priority: e.Priority,
	}
}

// TranslateText substitutes known domain terms in free-form display
// text with their localized equivalents, matching on word boundaries
// so "heal" never rewrites "health". With an empty keyword table (the
// English locale) this is the identity function.
func (r *LabelResolver) TranslateText(text string) string {
	for _, rule := range r.keywords {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	return text
}
