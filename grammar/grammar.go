// Package grammar builds composite class name matcher from rule table.
//
// Class name syntax is
//
//	[<parent>[:<pseudo-class>]<combinator>]<Matcher>(<param>[,<param>...])[!][:<pseudo-class>][::<pseudo-element>][--<breakpoint>][!]
//
// where combinator is one of ">", "_" (descendant), "+" or "~". Helper
// matchers may be used without parameters.
package grammar

import (
	"regexp"
	"strings"
	"sync"

	"acss/rules"
)

// Match is decomposition of a single class name.
type Match struct {
	ClassName          string
	ParentSelector     string
	Parent             string
	ParentPseudo       string
	ParentSep          string
	AtomicSelector     string
	AtomicValues       string
	Selector           string
	ValuePseudoClass   string
	ValuePseudoElement string
	BreakPoint         string
	Important          bool
}

// HasParams reports whether class name carries parameter block.
func (m Match) HasParams() bool {
	return len(m.AtomicSelector) > 0
}

// Matcher recognizes class names produced by rule table.
type Matcher interface {
	// Next finds first class name in src at or after offset. Offset must be
	// either 0 or end returned by previous call. Returned bounds are
	// absolute, end is always greater than offset when ok is true.
	Next(src string, offset int) (start, end int, ok bool)
	// Parse decomposes single class name.
	Parse(token string) (Match, bool)
}

// Compiler builds matcher from ordered rule list.
type Compiler func(list []rules.Rule) Matcher

const (
	parentName = `[a-zA-Z][-_a-zA-Z0-9]*?`
	parentSep  = `[>_+~]`
	params     = `[^\s()"'{}` + "`" + `]*`
	breakPoint = `[a-zA-Z0-9]+`
	boundary   = `[\s"'{}` + "`" + `]`
)

// Regexp is Matcher backed by regular expressions. Simple form is used for
// bulk discovery in free text, full form with named groups is used to
// decompose individual class names. Both are compiled on first use.
type Regexp struct {
	simple func() *regexp.Regexp
	full   func() *regexp.Regexp
}

// Compile builds Regexp matcher for rules. Building is linear in number of
// rules, actual compilation is deferred.
func Compile(list []rules.Rule) *Regexp {
	var all, helpers []string
	for _, r := range list {
		all = append(all, r.Matcher)
		if r.Type == rules.TypeHelper {
			helpers = append(helpers, r.Matcher)
		}
	}
	b := builder{
		matchers: alternation(all),
		helpers:  alternation(helpers),
		classes:  alternation(keys(pseudoClasses)),
		elements: alternation(keys(pseudoElements)),
	}
	return &Regexp{
		simple: sync.OnceValue(func() *regexp.Regexp {
			return regexp.MustCompile(`(?:^|` + boundary + `)(` + b.syntax(false) + `)(?:$|` + boundary + `)`)
		}),
		full: sync.OnceValue(func() *regexp.Regexp {
			return regexp.MustCompile(`^` + b.syntax(true) + `$`)
		}),
	}
}

// Next implements Matcher.
func (g *Regexp) Next(src string, offset int) (int, int, bool) {
	if offset >= len(src) {
		return 0, 0, false
	}
	// Search always starts either at the beginning of the text or at the
	// boundary character which terminated previous class name.
	loc := g.simple().FindStringSubmatchIndex(src[offset:])
	if loc == nil {
		return 0, 0, false
	}
	return offset + loc[2], offset + loc[3], true
}

// Parse implements Matcher.
func (g *Regexp) Parse(token string) (Match, bool) {
	re := g.full()
	sub := re.FindStringSubmatch(token)
	if sub == nil {
		return Match{}, false
	}
	group := func(name string) string {
		return sub[re.SubexpIndex(name)]
	}
	return Match{
		ClassName:          token,
		ParentSelector:     group("parentSelector"),
		Parent:             group("parent"),
		ParentPseudo:       group("parentPseudo"),
		ParentSep:          group("parentSep"),
		AtomicSelector:     group("atomicSelector"),
		AtomicValues:       group("atomicValues"),
		Selector:           group("selector"),
		ValuePseudoClass:   group("valuePseudoClass"),
		ValuePseudoElement: group("valuePseudoElement"),
		BreakPoint:         group("breakPoint"),
		Important:          len(group("important")) > 0 || len(group("importantLast")) > 0,
	}, true
}

type builder struct {
	matchers, helpers, classes, elements string
}

func (b builder) syntax(named bool) string {
	g := func(name, body string) string {
		if named {
			return `(?P<` + name + `>` + body + `)`
		}
		return `(?:` + body + `)`
	}
	var sb strings.Builder
	sb.WriteString(g("parentSelector",
		g("parent", parentName)+`(?::`+g("parentPseudo", b.classes)+`)?`+g("parentSep", parentSep)) + `?`)
	sb.WriteString(`(?:`)
	sb.WriteString(g("atomicSelector", b.matchers) + `\(` + g("atomicValues", params) + `\)`)
	sb.WriteString(`|`)
	sb.WriteString(g("selector", b.helpers))
	sb.WriteString(`)`)
	sb.WriteString(g("important", `!`) + `?`)
	sb.WriteString(`(?::` + g("valuePseudoClass", b.classes) + `)?`)
	sb.WriteString(`(?:::` + g("valuePseudoElement", b.elements) + `)?`)
	sb.WriteString(`(?:--` + g("breakPoint", breakPoint) + `)?`)
	sb.WriteString(g("importantLast", `!`) + `?`)
	return sb.String()
}

func quote(s string) string {
	return regexp.QuoteMeta(s)
}
