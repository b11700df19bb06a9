package accounts

import (
	"fmt"
	"strings"

	"github.com/minibook-dev/minibook/internal/model"
)

// Rule maps a group of substrings to a classification.
type Rule struct {
	Keywords []string
	Type     model.AccountType
}

// Matches reports whether any keyword occurs in the lower-cased name.
func (r Rule) Matches(lowerName string) bool {
	for _, k := range r.Keywords {
		if k != "" && strings.Contains(lowerName, k) {
			return true
		}
	}
	return false
}

// Classifier evaluates an ordered rule table; the first match wins and
// FallbackType covers everything else. It holds no mutable state.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a Classifier that evaluates extra before the
// built-in rules. Keywords are lower-cased; every type must be valid.
func NewClassifier(extra ...Rule) (*Classifier, error) {
	rules := make([]Rule, 0, len(extra)+len(DefaultRules()))
	for i, r := range extra {
		if !r.Type.Valid() {
			return nil, fmt.Errorf("rule %d: unknown account type %q", i+1, r.Type)
		}
		kws := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				kws = append(kws, k)
			}
		}
		if len(kws) == 0 {
			return nil, fmt.Errorf("rule %d: no keywords", i+1)
		}
		rules = append(rules, Rule{Keywords: kws, Type: r.Type})
	}
	rules = append(rules, DefaultRules()...)
	return &Classifier{rules: rules}, nil
}

// DefaultClassifier returns a Classifier with only the built-in rules.
func DefaultClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// Classify returns the classification for an account name. It never fails.
func (c *Classifier) Classify(name string) model.AccountType {
	lower := strings.ToLower(name)
	for _, r := range c.rules {
		if r.Matches(lower) {
			return r.Type
		}
	}
	return FallbackType
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = Rule{Keywords: append([]string(nil), r.Keywords...), Type: r.Type}
	}
	return out
}
