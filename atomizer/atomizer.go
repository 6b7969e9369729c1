// Package atomizer turns atomic class names found in text into stylesheet.
//
// Typical use is
//
//	a, _ := atomizer.New(log)
//	names := a.FindClassNames(html)
//	res, err := a.GetCSS(a.GetConfig(names, cfg), options)
//
// Atomizer is not safe for concurrent use. All rules must be registered
// before any class names are processed.
package atomizer

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"acss/grammar"
	"acss/rules"
)

// Atomizer keeps rule registry and grammar built from it.
type Atomizer struct {
	log      *zap.Logger
	verbose  bool
	registry *rules.Registry
	compile  grammar.Compiler

	// matcher is valid for registry version it was built from
	matcher grammar.Matcher
	version uint64
}

// Option configures Atomizer.
type Option func(*options)

type options struct {
	verbose bool
	compile grammar.Compiler
	rules   []rules.Rule
	custom  bool
}

// WithVerbose makes atomizer log every warning it collects.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithCompiler replaces matching engine.
func WithCompiler(c grammar.Compiler) Option {
	return func(o *options) {
		o.compile = c
	}
}

// WithRules replaces built-in rule table.
func WithRules(list []rules.Rule) Option {
	return func(o *options) {
		o.rules, o.custom = list, true
	}
}

func compileRegexp(list []rules.Rule) grammar.Matcher {
	return grammar.Compile(list)
}

// New creates atomizer with built-in rules registered.
func New(log *zap.Logger, opts ...Option) (*Atomizer, error) {
	o := options{compile: compileRegexp}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.custom {
		o.rules = rules.Defaults()
	}
	a := &Atomizer{
		log:      log,
		verbose:  o.verbose,
		registry: rules.NewRegistry(),
		compile:  o.compile,
	}
	if err := a.registry.Add(o.rules...); err != nil {
		return nil, err
	}
	return a, nil
}

// AddRules registers additional rules. Grammar is rebuilt on next use.
func (a *Atomizer) AddRules(list ...rules.Rule) error {
	return a.registry.Add(list...)
}

// Rules returns registered rules in declaration order.
func (a *Atomizer) Rules() []rules.Rule {
	return a.registry.Rules()
}

func (a *Atomizer) grammar() grammar.Matcher {
	if a.matcher == nil || a.version != a.registry.Version() {
		a.matcher = a.compile(a.registry.Rules())
		a.version = a.registry.Version()
		a.log.Debug("Grammar rebuilt", zap.Int("rules", a.registry.Len()), zap.Uint64("version", a.version))
	}
	return a.matcher
}

// CountClassNames returns number of occurrences of every class name found in
// src.
func (a *Atomizer) CountClassNames(src string) map[string]int {
	m := a.grammar()
	counts := make(map[string]int)
	for offset := 0; ; {
		start, end, ok := m.Next(src, offset)
		if !ok || end <= offset {
			break
		}
		counts[src[start:end]]++
		offset = end
	}
	return counts
}

// FindClassNames returns sorted list of unique class names found in src.
func (a *Atomizer) FindClassNames(src string) []string {
	return slices.Sorted(maps.Keys(a.CountClassNames(src)))
}
