package rules

import (
	"fmt"
	"iter"
	"slices"

	"go.uber.org/multierr"
)

// ConflictError is returned when rule with already registered matcher has
// different definition.
type ConflictError struct {
	Matcher string
	Type    Type
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s rule %s already exists with a different definition", e.Type, e.Matcher)
}

// Registry keeps rules in the order they were added. Pattern and helper
// matchers are indexed separately so the same matcher may exist in both.
// Registry is append only and is not safe for concurrent mutation.
type Registry struct {
	rules    []Rule
	patterns map[string]int
	helpers  map[string]int
	version  uint64
}

// NewRegistry creates empty registry.
func NewRegistry() *Registry {
	return &Registry{
		patterns: make(map[string]int),
		helpers:  make(map[string]int),
	}
}

// Add registers rules. Re-adding identical definition is a no-op. Every
// conflicting definition is reported, non conflicting rules from the same
// call are still registered.
func (r *Registry) Add(rules ...Rule) (err error) {
	added := false
	for _, rule := range rules {
		if e := rule.validate(); e != nil {
			err = multierr.Append(err, e)
			continue
		}
		index := r.index(rule.Type)
		if i, found := index[rule.Matcher]; found {
			if !r.rules[i].Equal(rule) {
				err = multierr.Append(err, &ConflictError{Matcher: rule.Matcher, Type: rule.Type})
			}
			continue
		}
		r.rules = append(r.rules, rule)
		index[rule.Matcher] = len(r.rules) - 1
		added = true
	}
	if added {
		r.version++
	}
	return err
}

func (r *Registry) index(t Type) map[string]int {
	if t == TypePattern {
		return r.patterns
	}
	return r.helpers
}

// Version changes every time new rule is registered. It is used to
// invalidate anything derived from registry content.
func (r *Registry) Version() uint64 {
	return r.version
}

// Len returns number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

// Pattern looks up pattern rule by matcher.
func (r *Registry) Pattern(matcher string) (Rule, bool) {
	return r.lookup(r.patterns, matcher)
}

// Helper looks up helper rule by matcher.
func (r *Registry) Helper(matcher string) (Rule, bool) {
	return r.lookup(r.helpers, matcher)
}

func (r *Registry) lookup(index map[string]int, matcher string) (Rule, bool) {
	if i, ok := index[matcher]; ok {
		return r.rules[i], true
	}
	return Rule{}, false
}

// All iterates rules in declaration order.
func (r *Registry) All() iter.Seq[Rule] {
	return slices.Values(r.rules)
}

// Rules returns copy of registered rules in declaration order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}
