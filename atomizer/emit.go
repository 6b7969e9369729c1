package atomizer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"acss/grammar"
	"acss/jss"
	"acss/rules"
)

// BreakpointError is returned when configured breakpoint is not a media
// query.
type BreakpointError struct {
	Name  string
	Query string
}

func (e *BreakpointError) Error() string {
	return fmt.Sprintf("breakpoint `%s` must start with `@media`, got %q", e.Name, e.Query)
}

// Result of stylesheet generation.
type Result struct {
	CSS      string
	Warnings []Warning
	// Rules is number of generated rules including companion and nested
	// ones.
	Rules int
}

// GetCSS generates stylesheet for class names in config. Rules are written in
// the order they were registered, not in the order class names were found.
func (a *Atomizer) GetCSS(config Config, options CSSOptions) (Result, error) {
	for _, bp := range config.BreakPoints {
		if !strings.HasPrefix(bp.Query, "@media") {
			return Result{}, &BreakpointError{Name: bp.Name, Query: bp.Query}
		}
	}

	tree, warnings := a.ParseConfig(config, options)

	sheet := jss.New(config.BreakPoints.Queries()...)
	for rule := range a.registry.All() {
		companions := false
		for _, entry := range tree.Entries(rule) {
			if entry.Declarations == nil {
				continue
			}
			if !companions {
				for _, c := range rule.Rules {
					sheet.Merge(c.Selector, styles(c.Styles))
				}
				companions = true
			}

			selector := buildSelector(rule, entry, options)
			if query, ok := config.BreakPoints.Query(entry.BreakPoint); ok && len(entry.BreakPoint) > 0 {
				sheet.MergeMedia(query, selector, entry.Declarations)
			} else {
				sheet.Merge(selector, entry.Declarations)
			}
			if entry.Scoped != nil {
				for query, decls := range entry.Scoped.AllFromFront() {
					sheet.MergeMedia(query, selector, decls)
				}
			}
		}
	}

	css := ReplaceConstants(options.Banner+sheet.String(), options.RTL)
	a.log.Debug("Stylesheet generated",
		zap.Int("classes", len(config.ClassNames)), zap.Int("rules", sheet.Len()), zap.Int("warnings", len(warnings)))
	return Result{CSS: css, Warnings: warnings, Rules: sheet.Len()}, nil
}

func styles(list rules.Styles) *jss.Declarations {
	d := jss.NewDeclarations()
	for _, s := range list {
		d.Set(s.Property, s.Value)
	}
	return d
}

func buildSelector(rule rules.Rule, entry *TreeEntry, options CSSOptions) string {
	selector := EscapeSelector(entry.ClassName)

	if len(entry.ParentSelector) > 0 {
		sep := " "
		if entry.ParentSep != "_" {
			sep = " " + entry.ParentSep + " "
		}
		selector = EscapeSelector(entry.Parent) + grammar.PseudoClass(entry.ParentPseudo) + sep + "." + selector
	}
	if len(entry.ValuePseudoClass) > 0 {
		selector += grammar.PseudoClass(entry.ValuePseudoClass)
	}
	if len(entry.ValuePseudoElement) > 0 {
		selector += grammar.PseudoElement(entry.ValuePseudoElement)
	}
	selector = "." + selector

	// parent class may be set on root element, so it is never namespaced
	if len(entry.Parent) == 0 {
		switch {
		case rule.Type == rules.TypeHelper && len(options.HelpersNamespace) > 0:
			selector = options.HelpersNamespace + " " + selector
		case rule.Type != rules.TypeHelper && len(options.Namespace) > 0:
			selector = options.Namespace + " " + selector
		}
	}
	return selector
}

// EscapeSelector puts backslash before every character which is not allowed
// in class selector: "W-100%" becomes "W-100\%".
func EscapeSelector(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for _, c := range s {
		switch {
		case c == '-' || c == '_',
			'a' <= c && c <= 'z',
			'A' <= c && c <= 'Z',
			'0' <= c && c <= '9':
		default:
			sb.WriteByte('\\')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// ReplaceConstants replaces direction placeholders with "left" and "right",
// swapping them for right to left layouts.
func ReplaceConstants(s string, rtl bool) string {
	start, end := "left", "right"
	if rtl {
		start, end = end, start
	}
	return strings.NewReplacer(rules.Start, start, rules.End, end).Replace(s)
}
