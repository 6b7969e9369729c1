package atomizer

import (
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/zap"

	"acss/grammar"
	"acss/jss"
	"acss/rules"
)

// TreeEntry is a single class name resolved against its rule.
type TreeEntry struct {
	grammar.Match

	// Declarations is nil when any of class parameters could not be
	// resolved, such entry produces no output.
	Declarations *jss.Declarations
	// Scoped holds declarations produced by breakpoint keyed custom values,
	// keyed by media query.
	Scoped *orderedmap.OrderedMap[string, *jss.Declarations]
}

// RuleKey identifies rule in tree. Pattern and helper may share matcher.
type RuleKey struct {
	Type    rules.Type
	Matcher string
}

func keyOf(r rules.Rule) RuleKey {
	return RuleKey{Type: r.Type, Matcher: r.Matcher}
}

// Tree groups resolved entries by rule.
type Tree map[RuleKey][]*TreeEntry

// Entries returns entries produced for rule.
func (t Tree) Entries(r rules.Rule) []*TreeEntry {
	return t[keyOf(r)]
}

// GetConfig returns copy of config with class names united with names and
// sorted.
func (a *Atomizer) GetConfig(names []string, config Config) Config {
	out := config.Clone()
	all := make([]string, 0, len(names)+len(config.ClassNames))
	seen := make(map[string]struct{}, cap(all))
	for _, name := range slices.Concat(names, config.ClassNames) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		all = append(all, name)
	}
	out.ClassNames = a.SortCSS(all)
	return out
}

// pseudoOrder is precedence of pseudo classes among class names with the
// same named parameter: link, visited, focus, hover, active.
var pseudoOrder = []string{":li", ":vi", ":f", ":h", ":a"}

func pseudoIndex(name string) int {
	return slices.IndexFunc(pseudoOrder, func(p string) bool {
		return strings.Contains(name, p)
	})
}

// namedParam returns first parameter of class name if it is a keyword.
func (a *Atomizer) namedParam(name string) string {
	m, ok := a.grammar().Parse(name)
	if !ok || !m.HasParams() {
		return ""
	}
	first, _, _ := strings.Cut(m.AtomicValues, ",")
	v, ok := grammar.MatchValue(first)
	if !ok || v.Kind != grammar.ValueNamed {
		return ""
	}
	return v.Named
}

// SortCSS returns sorted copy of class names. Names are ordered lexically,
// except names with the same keyword parameter which are ordered by pseudo
// class precedence.
func (a *Atomizer) SortCSS(names []string) []string {
	out := slices.Clone(names)
	slices.Sort(out)

	named := make(map[string]string, len(out))
	for _, name := range out {
		named[name] = a.namedParam(name)
	}
	slices.SortStableFunc(out, func(x, y string) int {
		nx, ny := named[x], named[y]
		if len(nx) == 0 || nx != ny {
			return strings.Compare(x, y)
		}
		return pseudoIndex(x) - pseudoIndex(y)
	})
	return out
}

// lookup finds rule for parsed class name: pattern by atomic selector, helper
// by atomic selector, helper by bare selector.
func (a *Atomizer) lookup(m grammar.Match) (rules.Rule, bool) {
	if r, ok := a.registry.Pattern(m.AtomicSelector); ok && m.HasParams() {
		return r, true
	}
	if r, ok := a.registry.Helper(m.AtomicSelector); ok && m.HasParams() {
		return r, true
	}
	if len(m.Selector) > 0 {
		return a.registry.Helper(m.Selector)
	}
	return rules.Rule{}, false
}

// ParseConfig resolves every class name of config into tree. Class names
// which do not match any rule are silently skipped. Problems with individual
// parameters are returned as warnings and never stop processing.
func (a *Atomizer) ParseConfig(config Config, options CSSOptions) (Tree, []Warning) {
	tree := make(Tree)
	m := a.grammar()

	names := config.ClassNames
	if len(config.Exclude) > 0 {
		names = slices.DeleteFunc(slices.Clone(names), func(name string) bool {
			return slices.Contains(config.Exclude, name)
		})
	}

	var warnings []Warning
	for _, name := range names {
		match, ok := m.Parse(name)
		if !ok {
			continue
		}
		rule, ok := a.lookup(match)
		if !ok {
			continue
		}
		r := resolver{rule: rule, match: match, config: &config, options: &options}
		entry := r.entry()
		warnings = append(warnings, r.warnings...)
		tree[keyOf(rule)] = append(tree[keyOf(rule)], entry)
	}

	if a.verbose {
		for _, w := range warnings {
			a.log.Warn(w.Message(), zap.String("class", w.ClassName), zap.Stringer("kind", w.Kind), zap.String("value", w.Value))
		}
	}
	return tree, warnings
}
