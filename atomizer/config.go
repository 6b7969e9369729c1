package atomizer

import (
	"fmt"
	"maps"
	"slices"

	yaml "gopkg.in/yaml.v3"
)

// Breakpoint names media query.
type Breakpoint struct {
	Name  string
	Query string
}

// Breakpoints keep configured order, which is also the order media blocks
// are emitted in.
type Breakpoints []Breakpoint

// Query returns media query for breakpoint name.
func (b Breakpoints) Query(name string) (string, bool) {
	for _, bp := range b {
		if bp.Name == name {
			return bp.Query, true
		}
	}
	return "", false
}

// Queries returns media queries in configured order.
func (b Breakpoints) Queries() []string {
	out := make([]string, 0, len(b))
	for _, bp := range b {
		out = append(out, bp.Query)
	}
	return out
}

// UnmarshalYAML reads breakpoints from mapping node keeping order.
func (b *Breakpoints) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: break points must be a mapping", node.Line)
	}
	out := make(Breakpoints, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: break point %q must be a string", v.Line, k.Value)
		}
		out = append(out, Breakpoint{Name: k.Value, Query: v.Value})
	}
	*b = out
	return nil
}

// MarshalYAML writes breakpoints as mapping node keeping order.
func (b Breakpoints) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, bp := range b {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: bp.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Value: bp.Query})
	}
	return node, nil
}

// DefaultBreakpoint is key of breakpoint scoped custom value used for
// unscoped declaration.
const DefaultBreakpoint = "default"

// CustomValue is either plain value or set of values keyed by breakpoint
// name (and DefaultBreakpoint).
type CustomValue struct {
	Value  string
	Scoped map[string]string
}

// Plain creates scalar custom value.
func Plain(v string) CustomValue {
	return CustomValue{Value: v}
}

// IsScoped reports whether value is keyed by breakpoint.
func (c CustomValue) IsScoped() bool {
	return c.Scoped != nil
}

// UnmarshalYAML accepts either scalar or mapping of scalars.
func (c *CustomValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = CustomValue{Value: node.Value}
		return nil
	case yaml.MappingNode:
		scoped := make(map[string]string, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			k, v := node.Content[i], node.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: custom value for %q must be a string", v.Line, k.Value)
			}
			scoped[k.Value] = v.Value
		}
		*c = CustomValue{Scoped: scoped}
		return nil
	}
	return fmt.Errorf("line %d: custom value must be a string or a mapping", node.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (c CustomValue) MarshalYAML() (any, error) {
	if c.IsScoped() {
		return c.Scoped, nil
	}
	return c.Value, nil
}

// Config describes what to compile: explicitly requested class names, class
// names to skip, custom values and breakpoints.
type Config struct {
	ClassNames  []string               `yaml:"class_names,omitempty"`
	Exclude     []string               `yaml:"exclude,omitempty"`
	Custom      map[string]CustomValue `yaml:"custom,omitempty"`
	BreakPoints Breakpoints            `yaml:"break_points,omitempty"`
}

// Clone returns deep copy of config.
func (c Config) Clone() Config {
	out := Config{
		ClassNames:  slices.Clone(c.ClassNames),
		Exclude:     slices.Clone(c.Exclude),
		BreakPoints: slices.Clone(c.BreakPoints),
	}
	if c.Custom != nil {
		out.Custom = make(map[string]CustomValue, len(c.Custom))
		for k, v := range c.Custom {
			if v.IsScoped() {
				v.Scoped = maps.Clone(v.Scoped)
			}
			out.Custom[k] = v
		}
	}
	return out
}

// DefaultConfig returns configuration used when nothing else is provided.
func DefaultConfig() Config {
	return Config{
		ClassNames: []string{"Bd(bd1)", "D(n)!"},
		Custom: map[string]CustomValue{
			"font1": Plain(`"Roboto", Arial`),
			"bd1":   Plain("1px solid #000"),
		},
		BreakPoints: Breakpoints{
			{Name: "xs", Query: "@media screen and (max-width:700px)"},
			{Name: "sm", Query: "@media screen and (min-width:700px)"},
			{Name: "md", Query: "@media screen and (min-width:999px)"},
			{Name: "lg", Query: "@media screen and (min-width:1200px)"},
		},
	}
}

// MergeConfigs combines configs left to right. Class name lists are united
// and sorted, custom values and breakpoints of later configs replace earlier
// ones with the same key.
func MergeConfigs(configs ...Config) Config {
	var out Config
	for _, c := range configs {
		out.ClassNames = union(out.ClassNames, c.ClassNames)
		out.Exclude = union(out.Exclude, c.Exclude)
		if len(c.Custom) > 0 && out.Custom == nil {
			out.Custom = make(map[string]CustomValue, len(c.Custom))
		}
		for k, v := range c.Custom {
			out.Custom[k] = v
		}
		for _, bp := range c.BreakPoints {
			i := slices.IndexFunc(out.BreakPoints, func(b Breakpoint) bool { return b.Name == bp.Name })
			if i < 0 {
				out.BreakPoints = append(out.BreakPoints, bp)
				continue
			}
			out.BreakPoints[i] = bp
		}
	}
	return out.Clone()
}

// union returns sorted set of both lists, nil when both are empty.
func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// CSSOptions control how stylesheet is rendered.
type CSSOptions struct {
	// Banner is prepended to output as is.
	Banner string `yaml:"banner,omitempty"`
	// Namespace prefixes every pattern selector without parent.
	Namespace string `yaml:"namespace,omitempty"`
	// HelpersNamespace prefixes every helper selector without parent.
	HelpersNamespace string `yaml:"helpers_namespace,omitempty"`
	// RTL swaps left and right.
	RTL bool `yaml:"rtl"`
	// IE adds declarations for legacy Internet Explorer.
	IE bool `yaml:"ie"`
}
