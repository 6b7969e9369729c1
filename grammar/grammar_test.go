package grammar

import (
	"testing"

	"acss/rules"
)

func testRules() []rules.Rule {
	return []rules.Rule{
		{Matcher: "D", Type: rules.TypePattern},
		{Matcher: "Bg", Type: rules.TypePattern},
		{Matcher: "Bgc", Type: rules.TypePattern},
		{Matcher: "Op", Type: rules.TypePattern},
		{Matcher: "Bd", Type: rules.TypePattern},
		{Matcher: "Bd", Type: rules.TypeHelper},
		{Matcher: "Cf", Type: rules.TypeHelper},
		{Matcher: "LineClamp", Type: rules.TypeHelper},
	}
}

func scanAll(m Matcher, src string) []string {
	var out []string
	for offset := 0; ; {
		start, end, ok := m.Next(src, offset)
		if !ok {
			return out
		}
		out = append(out, src[start:end])
		offset = end
	}
}

func TestNext(t *testing.T) {
	m := Compile(testRules())

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"html", `<div class="D(b) Op(1) D(n):h"></div>`, []string{"D(b)", "Op(1)", "D(n):h"}},
		{"adjacent", `D(b) D(n)`, []string{"D(b)", "D(n)"}},
		{"helper", `<p class='Cf Bd'>`, []string{"Cf", "Bd"}},
		{"helper with params", `class="LineClamp(2,40px)"`, []string{"LineClamp(2,40px)"}},
		{"jsx", "className={`Bgc(#fff)`}", []string{"Bgc(#fff)"}},
		{"not a class", `XD(b) D(b)x Cfx`, nil},
		{"parent", `class="foo:h>Op(1) bar_D(n)"`, []string{"foo:h>Op(1)", "bar_D(n)"}},
		{"suffixes", `"D(n)!:h::b--sm"`, []string{"D(n)!:h::b--sm"}},
		{"empty", ``, nil},
		{"garbage", "((((((((((", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanAll(m, tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	m := Compile(testRules())

	tests := []struct {
		token string
		want  Match
	}{
		{"Bgc(#0af)", Match{AtomicSelector: "Bgc", AtomicValues: "#0af"}},
		{"D(n):h", Match{AtomicSelector: "D", AtomicValues: "n", ValuePseudoClass: "h"}},
		{"Op(.5)!", Match{AtomicSelector: "Op", AtomicValues: ".5", Important: true}},
		{"Op(.5):h!", Match{AtomicSelector: "Op", AtomicValues: ".5", ValuePseudoClass: "h", Important: true}},
		{"D(b)::a--md", Match{AtomicSelector: "D", AtomicValues: "b", ValuePseudoElement: "a", BreakPoint: "md"}},
		{"Cf", Match{Selector: "Cf"}},
		{"Bd", Match{Selector: "Bd"}},
		{"Bd(0)", Match{AtomicSelector: "Bd", AtomicValues: "0"}},
		{"LineClamp(2,40px)", Match{AtomicSelector: "LineClamp", AtomicValues: "2,40px"}},
		{"foo:fc>D(b)", Match{
			ParentSelector: "foo:fc>", Parent: "foo", ParentPseudo: "fc", ParentSep: ">",
			AtomicSelector: "D", AtomicValues: "b",
		}},
		{"a-b_Op(1)", Match{ParentSelector: "a-b_", Parent: "a-b", ParentSep: "_", AtomicSelector: "Op", AtomicValues: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := m.Parse(tt.token)
			if !ok {
				t.Fatalf("Parse(%q) failed", tt.token)
			}
			tt.want.ClassName = tt.token
			if got != tt.want {
				t.Errorf("Parse(%q)\n got %+v\nwant %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParse_NoMatch(t *testing.T) {
	m := Compile(testRules())
	for _, token := range []string{"D", "X(1)", "D(b)x", "Cf(", "D(b):zz", ""} {
		if _, ok := m.Parse(token); ok {
			t.Errorf("Parse(%q) must fail", token)
		}
	}
}

func TestCompile_NoHelpers(t *testing.T) {
	m := Compile([]rules.Rule{{Matcher: "D", Type: rules.TypePattern}})
	if _, ok := m.Parse(""); ok {
		t.Error("empty helper alternation must not match empty string")
	}
	if _, ok := m.Parse("D(b)"); !ok {
		t.Error("Parse(D(b)) failed")
	}
}

func TestPseudo(t *testing.T) {
	if got := PseudoClass("h"); got != ":hover" {
		t.Errorf("PseudoClass(h) = %q", got)
	}
	if got := PseudoClass("fc"); got != ":first-child" {
		t.Errorf("PseudoClass(fc) = %q", got)
	}
	if got := PseudoElement("a"); got != "::after" {
		t.Errorf("PseudoElement(a) = %q", got)
	}
	if got := PseudoClass("zz"); got != "" {
		t.Errorf("PseudoClass(zz) = %q, want empty", got)
	}
}

func TestMatchValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
		ok   bool
	}{
		{"10px", Value{Kind: ValueNumber, Number: "10", Unit: "px"}, true},
		{".5", Value{Kind: ValueNumber, Number: ".5"}, true},
		{"-1.5em", Value{Kind: ValueNumber, Number: "-1.5", Unit: "em"}, true},
		{"100%", Value{Kind: ValueNumber, Number: "100", Unit: "%"}, true},
		{"1/3", Value{Kind: ValueFraction, Numerator: "1", Denominator: "3"}, true},
		{"#fff", Value{Kind: ValueHex, Hex: "#fff"}, true},
		{"#0af.5", Value{Kind: ValueHex, Hex: "#0af", Alpha: ".5"}, true},
		{"#FFFFFF", Value{Kind: ValueHex, Hex: "#FFFFFF"}, true},
		{"n", Value{Kind: ValueNamed, Named: "n"}, true},
		{"heading", Value{Kind: ValueNamed, Named: "heading"}, true},
		{"$gutter", Value{Kind: ValueNamed, Named: "$gutter"}, true},
		{"-", Value{}, false},
		{"1/0", Value{}, false},
		{"#ffff", Value{Kind: ValueHex, Hex: "#ffff", Malformed: true}, true},
		{"#ggg", Value{Kind: ValueHex, Hex: "#ggg", Malformed: true}, true},
		{"#", Value{Kind: ValueHex, Hex: "#", Malformed: true}, true},
		{"", Value{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := MatchValue(tt.in)
			if ok != tt.ok {
				t.Fatalf("MatchValue(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			tt.want.Input = tt.in
			if got != tt.want {
				t.Errorf("MatchValue(%q)\n got %+v\nwant %+v", tt.in, got, tt.want)
			}
		})
	}
}
