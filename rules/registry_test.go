package rules

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestRegistry_AddKeepsOrder(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(
		pattern("D", "Display", style("display", "$0"), map[string]string{"b": "block"}),
		valued("Op", "Opacity", style("opacity", "$0")),
		helper("Cf", "Clearfix", style("zoom", "1")),
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	var got []string
	for rule := range r.All() {
		got = append(got, rule.Matcher)
	}
	want := []string{"D", "Op", "Cf"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistry_IdenticalIsNoop(t *testing.T) {
	r := NewRegistry()
	rule := valued("Op", "Opacity", style("opacity", "$0"))
	if err := r.Add(rule); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	v := r.Version()

	if err := r.Add(valued("Op", "Opacity", style("opacity", "$0"))); err != nil {
		t.Fatalf("re-adding identical rule error = %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if r.Version() != v {
		t.Errorf("Version() changed on no-op add: %d -> %d", v, r.Version())
	}
}

func TestRegistry_Conflict(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(valued("Op", "Opacity", style("opacity", "$0"))); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	err := r.Add(
		valued("Op", "Opacity", style("opacity", "$1")),
		pattern("D", "Display", style("display", "$0")),
	)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %T: %v", err, err)
	}
	if ce.Matcher != "Op" {
		t.Errorf("conflict matcher = %s, want Op", ce.Matcher)
	}
	if _, ok := r.Pattern("D"); !ok {
		t.Error("non conflicting rule from the same call must be registered")
	}
}

func TestRegistry_ConflictsAreCollected(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(Defaults()...); err != nil {
		t.Fatalf("Add(Defaults()) error = %v", err)
	}

	err := r.Add(
		pattern("D", "Display", style("display", "$1")),
		pattern("C", "Color", style("color", "$1")),
	)
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("expected 2 conflicts, got %d: %v", n, err)
	}
}

func TestRegistry_SeparateNamespaces(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(
		pattern("Bd", "Border", style("border", "$0")),
		helper("Bd", "Border helper", style("border-width", "1px")),
	); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	p, ok := r.Pattern("Bd")
	if !ok || p.Type != TypePattern {
		t.Errorf("Pattern(Bd) = %+v, %v", p, ok)
	}
	h, ok := r.Helper("Bd")
	if !ok || h.Type != TypeHelper {
		t.Errorf("Helper(Bd) = %+v, %v", h, ok)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_VersionBumps(t *testing.T) {
	r := NewRegistry()
	v0 := r.Version()
	if err := r.Add(valued("Op", "Opacity", style("opacity", "$0"))); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if r.Version() == v0 {
		t.Error("Version() must change after new rule is added")
	}
}

func TestRegistry_InvalidRule(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(Rule{Type: TypePattern}); err == nil {
		t.Error("expected error for empty matcher")
	}
	if err := r.Add(Rule{Matcher: "X", Type: Type(42)}); !errors.Is(err, ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestDefaults_NoConflicts(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(Defaults()...); err != nil {
		t.Fatalf("default rules conflict: %v", err)
	}
	if r.Len() != len(Defaults()) {
		t.Errorf("Len() = %d, want %d (duplicate matchers in defaults?)", r.Len(), len(Defaults()))
	}
}

func TestRule_Equal(t *testing.T) {
	a := Rule{Matcher: "X", Styles: style("x", "$0")}
	b := Rule{Matcher: "X", Styles: style("x", "$0"), Arguments: []map[string]string{}}
	if !a.Equal(b) {
		t.Error("nil and empty arguments must compare equal")
	}
	c := Rule{Matcher: "X", Styles: style("x", "$0"), Arguments: []map[string]string{{"n": "none"}}}
	if a.Equal(c) {
		t.Error("different arguments must not compare equal")
	}
}
