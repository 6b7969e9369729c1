// Package jss keeps nested selector -> declarations structure produced by
// atomizer and renders it as stylesheet text.
package jss

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Declarations maps property names to values in insertion order.
type Declarations = orderedmap.OrderedMap[string, string]

// NewDeclarations creates declarations from property/value pairs.
func NewDeclarations(pairs ...string) *Declarations {
	d := orderedmap.NewOrderedMap[string, string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d
}

type block = orderedmap.OrderedMap[string, *Declarations]

// Sheet is ordered set of rules. Top level rules are rendered first in the
// order selectors were added, followed by one @media block per query.
type Sheet struct {
	rules *block
	media *orderedmap.OrderedMap[string, *block]
}

// New creates empty sheet. Media queries listed in order are rendered in that
// order, queries first seen later follow them.
func New(order ...string) *Sheet {
	s := &Sheet{
		rules: orderedmap.NewOrderedMap[string, *Declarations](),
		media: orderedmap.NewOrderedMap[string, *block](),
	}
	for _, q := range order {
		s.media.Set(q, orderedmap.NewOrderedMap[string, *Declarations]())
	}
	return s
}

// Merge adds declarations to selector, later values replace earlier ones.
func (s *Sheet) Merge(selector string, decls *Declarations) {
	merge(s.rules, selector, decls)
}

// MergeMedia adds declarations to selector nested under media query.
func (s *Sheet) MergeMedia(query, selector string, decls *Declarations) {
	b, ok := s.media.Get(query)
	if !ok {
		b = orderedmap.NewOrderedMap[string, *Declarations]()
		s.media.Set(query, b)
	}
	merge(b, selector, decls)
}

func merge(b *block, selector string, decls *Declarations) {
	if decls == nil {
		return
	}
	dst, ok := b.Get(selector)
	if !ok {
		dst = orderedmap.NewOrderedMap[string, string]()
		b.Set(selector, dst)
	}
	for prop, value := range decls.AllFromFront() {
		dst.Set(prop, value)
	}
}

// Lookup returns top level declarations for selector.
func (s *Sheet) Lookup(selector string) (*Declarations, bool) {
	return s.rules.Get(selector)
}

// LookupMedia returns declarations for selector nested under media query.
func (s *Sheet) LookupMedia(query, selector string) (*Declarations, bool) {
	b, ok := s.media.Get(query)
	if !ok {
		return nil, false
	}
	return b.Get(selector)
}

// Len returns number of non empty rules including nested ones.
func (s *Sheet) Len() int {
	n := count(s.rules)
	for _, b := range s.media.AllFromFront() {
		n += count(b)
	}
	return n
}

func count(b *block) (n int) {
	for _, d := range b.AllFromFront() {
		if d.Len() > 0 {
			n++
		}
	}
	return n
}

type writer struct {
	w     io.Writer
	total int64
	err   error
	items int
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.w, format, args...)
	w.total += int64(n)
	w.err = err
}

// separate puts blank line between top level items.
func (w *writer) separate() {
	if w.items > 0 {
		w.printf("\n")
	}
	w.items++
}

func (w *writer) rule(indent, selector string, decls *Declarations) {
	w.printf("%s%s {\n", indent, selector)
	for prop, value := range decls.AllFromFront() {
		w.printf("%s  %s: %s;\n", indent, prop, value)
	}
	w.printf("%s}\n", indent)
}

// WriteTo writes the sheet to w, implementing io.WriterTo. Rules without
// declarations and empty media blocks are skipped.
func (s *Sheet) WriteTo(out io.Writer) (int64, error) {
	w := &writer{w: out}
	for selector, decls := range s.rules.AllFromFront() {
		if decls.Len() == 0 {
			continue
		}
		w.separate()
		w.rule("", selector, decls)
	}
	for query, b := range s.media.AllFromFront() {
		if count(b) == 0 {
			continue
		}
		w.separate()
		w.printf("%s {\n", query)
		first := true
		for selector, decls := range b.AllFromFront() {
			if decls.Len() == 0 {
				continue
			}
			if !first {
				w.printf("\n")
			}
			first = false
			w.rule("  ", selector, decls)
		}
		w.printf("}\n")
	}
	return w.total, w.err
}

// String returns stylesheet text.
func (s *Sheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
