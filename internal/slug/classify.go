package slug

import "strings"

// KindRule is one entry of the ordered classification table. Match receives
// the set name folded to lowercase ASCII.
type KindRule struct {
	Name  string
	Match func(lower string) bool
	Kind  SetKind
}

// DefaultRules is the keyword table, evaluated top to bottom; the first rule
// that matches wins and anything unmatched is an Insert. Keywords match
// anywhere in the name, so "ink" also fires on "Pink Ice"; pin such names
// with an override.
var DefaultRules = []KindRule{
	{
		Name:  "autograph",
		Match: containsAny("autograph", "signature", "ink"),
		Kind:  Autograph,
	},
	{
		Name:  "memorabilia",
		Match: containsAny("material", "jersey", "patch", "memorabilia"),
		Kind:  Memorabilia,
	},
	{
		Name:  "base",
		Match: containsAny("base", "optic", "rookies"),
		Kind:  Base,
	},
}

// Classifier maps raw set names to kinds. The zero value uses DefaultRules.
// Overrides pin specific set names to a kind ahead of every rule; build one
// with NewClassifier so lookups ignore case and punctuation.
type Classifier struct {
	Rules     []KindRule
	overrides map[string]SetKind
}

// NewClassifier returns a classifier over rules (DefaultRules when nil) with
// per-name overrides.
func NewClassifier(rules []KindRule, overrides map[string]SetKind) Classifier {
	c := Classifier{Rules: rules}
	if len(overrides) > 0 {
		c.overrides = make(map[string]SetKind, len(overrides))
		for name, kind := range overrides {
			c.overrides[Normalize(name)] = kind
		}
	}
	return c
}

// Classify returns the kind of rawSetName. It never fails: names no rule
// recognizes are Inserts.
func (c Classifier) Classify(rawSetName string) SetKind {
	if kind, ok := c.overrides[Normalize(rawSetName)]; ok {
		return kind
	}
	rules := c.Rules
	if rules == nil {
		rules = DefaultRules
	}
	lower := fold(strings.ToLower(rawSetName))
	for _, r := range rules {
		if r.Match(lower) {
			return r.Kind
		}
	}
	return Insert
}

// MatchedRule returns the name of the rule that classifies rawSetName, or ""
// when the name falls through to Insert or hits an override.
func (c Classifier) MatchedRule(rawSetName string) string {
	if _, ok := c.overrides[Normalize(rawSetName)]; ok {
		return ""
	}
	rules := c.Rules
	if rules == nil {
		rules = DefaultRules
	}
	lower := fold(strings.ToLower(rawSetName))
	for _, r := range rules {
		if r.Match(lower) {
			return r.Name
		}
	}
	return ""
}

// ClassifySetKind classifies with DefaultRules and no overrides.
func ClassifySetKind(rawSetName string) SetKind {
	return Classifier{}.Classify(rawSetName)
}

// containsAny returns a matcher that fires when any keyword occurs in the
// input.
func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}
