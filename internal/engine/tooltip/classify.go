package tooltip

import (
	"math"
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// Classification is the outcome of skill-type resolution.
type Classification struct {
	Type entities.SkillType
	Mana *entities.ManaInfo

	// Guessed marks the low-confidence default branch; callers use it
	// for data-quality triage, not display.
	Guessed bool
}

// Classifier decides whether an ability is cast for mana or always on.
type Classifier struct {
	cfg *ClassifierConfig
}

// NewClassifier creates a classifier; nil config uses the defaults.
func NewClassifier(cfg *ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg.withDefaults()}
}

// Classify resolves the skill type in fixed precedence order:
// mana fields, passive keywords, active keywords, then a low-confidence
// passive default.
func (c *Classifier) Classify(a *entities.AbilityDefinition) Classification {
	if a.ManaStart != nil && a.ManaCost != nil && *a.ManaCost > 0 {
		return Classification{
			Type: entities.SkillTypeActive,
			Mana: &entities.ManaInfo{
				Start: int32(math.Round(*a.ManaStart)),
				Cost:  int32(math.Round(*a.ManaCost)),
			},
		}
	}

	text := strings.ToLower(a.Name + " " + a.Description)
	for _, kw := range c.cfg.PassiveKeywords {
		if strings.Contains(text, kw) {
			return Classification{Type: entities.SkillTypePassive}
		}
	}
	for _, kw := range c.cfg.ActiveKeywords {
		if strings.Contains(text, kw) {
			return Classification{Type: entities.SkillTypeActive, Mana: manaFrom(a)}
		}
	}

	return Classification{Type: entities.SkillTypePassive, Guessed: true}
}

// manaFrom builds mana info for keyword-classified actives, where one
// or both mana fields may still be missing.
func manaFrom(a *entities.AbilityDefinition) *entities.ManaInfo {
	if a.ManaCost == nil || *a.ManaCost <= 0 {
		return nil
	}
	info := &entities.ManaInfo{Cost: int32(math.Round(*a.ManaCost))}
	if a.ManaStart != nil {
		info.Start = int32(math.Round(*a.ManaStart))
	}
	return info
}
