// Package rules defines atomic class rules and the registry they live in.
package rules

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	yaml "gopkg.in/yaml.v3"
)

// Declaration is a single property with templated value. Value may contain
// positional placeholders $0, $1, ... which are replaced by resolved class
// parameters.
type Declaration struct {
	Property string
	Value    string
}

// Styles is an ordered list of declarations. Order is preserved all the way
// to generated stylesheet.
type Styles []Declaration

// Companion is a selector emitted verbatim whenever its owning rule is used.
type Companion struct {
	Selector string `yaml:"selector"`
	Styles   Styles `yaml:"styles"`
}

// Rule is an immutable definition of an atomic class.
type Rule struct {
	Matcher           string              `yaml:"matcher"`
	Name              string              `yaml:"name,omitempty"`
	Type              Type                `yaml:"type"`
	Styles            Styles              `yaml:"styles"`
	Arguments         []map[string]string `yaml:"arguments,omitempty"`
	AllowParamToValue bool                `yaml:"allow_param_to_value,omitempty"`
	Rules             []Companion         `yaml:"rules,omitempty"`
}

// Equal reports whether two rules are structurally identical. Nil and empty
// collections are considered equal.
func (r Rule) Equal(o Rule) bool {
	if r.Matcher != o.Matcher || r.Name != o.Name || r.Type != o.Type || r.AllowParamToValue != o.AllowParamToValue {
		return false
	}
	if !slices.Equal(r.Styles, o.Styles) {
		return false
	}
	if !slices.EqualFunc(r.Arguments, o.Arguments, func(a, b map[string]string) bool { return maps.Equal(a, b) }) {
		return false
	}
	return slices.EqualFunc(r.Rules, o.Rules, func(a, b Companion) bool {
		return a.Selector == b.Selector && slices.Equal(a.Styles, b.Styles)
	})
}

func (r Rule) validate() error {
	if len(r.Matcher) == 0 {
		return errors.New("rule matcher must not be empty")
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("rule %s: %w", r.Matcher, ErrInvalidType)
	}
	return nil
}

// Argument returns value of named keyword for parameter at position index.
func (r Rule) Argument(index int, keyword string) (string, bool) {
	if index >= len(r.Arguments) {
		return "", false
	}
	v, ok := r.Arguments[index][keyword]
	return v, ok
}

// UnmarshalYAML reads styles from mapping node keeping declaration order.
func (s *Styles) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: styles must be a mapping", node.Line)
	}
	out := make(Styles, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of style %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, Declaration{Property: k.Value, Value: v.Value})
	}
	*s = out
	return nil
}

// MarshalYAML writes styles as mapping node keeping declaration order.
func (s Styles) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.Property},
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.Value, Style: yaml.DoubleQuotedStyle})
	}
	return node, nil
}
