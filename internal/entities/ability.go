package entities

import "strings"

// AbilityVariable is a named per-star numeric array embedded in an
// ability definition and referenced by @Name@ placeholders in its
// description. Index 0 of PerStar is unused in the upstream export;
// indices 1-3 correspond to star levels 1-3.
type AbilityVariable struct {
	Key     string    `json:"name"`
	PerStar []float64 `json:"value"`
}

// ValueAt returns the base value for a star level, tolerating short or
// missing arrays by returning zero.
func (v AbilityVariable) ValueAt(star int32) float64 {
	star = ClampStarLevel(star)
	if int(star) >= len(v.PerStar) {
		return 0
	}
	return v.PerStar[star]
}

// AbilityDefinition is a unit ability as exported by upstream: templated
// description text plus the variable arrays the template references.
// ManaStart and ManaCost are pointers because the export omits them for
// passive abilities.
type AbilityDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"desc"`
	ManaStart   *float64          `json:"manaStart,omitempty"`
	ManaCost    *float64          `json:"manaCost,omitempty"`
	Variables   []AbilityVariable `json:"variables,omitempty"`
}

// Variable looks up a variable by key, case-insensitively matching the
// way upstream descriptions reference them.
func (a *AbilityDefinition) Variable(key string) (AbilityVariable, bool) {
	for _, v := range a.Variables {
		if strings.EqualFold(v.Key, key) {
			return v, true
		}
	}
	return AbilityVariable{}, false
}
