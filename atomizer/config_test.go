package atomizer

import (
	"slices"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

const configYAML = `class_names: [D(b), "Op(.5)"]
exclude: [Op(.5)]
custom:
  heading: 80px
  gutter:
    default: 10px
    sm: 12px
break_points:
  sm: "@media screen and (min-width:700px)"
  md: "@media screen and (min-width:999px)"
  lg: "@media screen and (min-width:1200px)"
`

func TestConfig_YAML(t *testing.T) {
	var cfg Config
	dec := yaml.NewDecoder(strings.NewReader(configYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !slices.Equal(cfg.ClassNames, []string{"D(b)", "Op(.5)"}) {
		t.Errorf("ClassNames = %q", cfg.ClassNames)
	}
	names := make([]string, 0, len(cfg.BreakPoints))
	for _, bp := range cfg.BreakPoints {
		names = append(names, bp.Name)
	}
	if !slices.Equal(names, []string{"sm", "md", "lg"}) {
		t.Errorf("breakpoint order not preserved: %q", names)
	}
	if q, ok := cfg.BreakPoints.Query("md"); !ok || q != "@media screen and (min-width:999px)" {
		t.Errorf("Query(md) = %q, %v", q, ok)
	}
	if _, ok := cfg.BreakPoints.Query("xl"); ok {
		t.Error("Query(xl) must fail")
	}

	if h := cfg.Custom["heading"]; h.IsScoped() || h.Value != "80px" {
		t.Errorf("heading = %+v", h)
	}
	g := cfg.Custom["gutter"]
	if !g.IsScoped() || g.Scoped["default"] != "10px" || g.Scoped["sm"] != "12px" {
		t.Errorf("gutter = %+v", g)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !slices.Equal(back.BreakPoints, cfg.BreakPoints) {
		t.Errorf("breakpoints changed after round trip: %v", back.BreakPoints)
	}
	if back.Custom["gutter"].Scoped["sm"] != "12px" || back.Custom["heading"].Value != "80px" {
		t.Errorf("custom changed after round trip: %+v", back.Custom)
	}
}

func TestConfig_YAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"break points list", "break_points: [a, b]\n"},
		{"break point not string", "break_points:\n  sm: [a]\n"},
		{"custom list", "custom:\n  a: [1, 2]\n"},
		{"custom nested", "custom:\n  a:\n    sm: {x: y}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(tt.data), &cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMergeConfigs(t *testing.T) {
	base := DefaultConfig()
	user := Config{
		ClassNames: []string{"C(#000)", "D(n)!"},
		Custom:     map[string]CustomValue{"bd1": Plain("2px dashed red"), "x": Plain("1")},
		BreakPoints: Breakpoints{
			{Name: "sm", Query: "@media (min-width:600px)"},
			{Name: "xl", Query: "@media (min-width:1600px)"},
		},
	}

	got := MergeConfigs(base, user)

	if want := []string{"Bd(bd1)", "C(#000)", "D(n)!"}; !slices.Equal(got.ClassNames, want) {
		t.Errorf("ClassNames = %q, want %q", got.ClassNames, want)
	}
	if got.Custom["bd1"].Value != "2px dashed red" || got.Custom["font1"].Value != `"Roboto", Arial` || got.Custom["x"].Value != "1" {
		t.Errorf("Custom = %+v", got.Custom)
	}
	if want := []string{"xs", "sm", "md", "lg", "xl"}; len(got.BreakPoints) != len(want) {
		t.Fatalf("BreakPoints = %v", got.BreakPoints)
	}
	if q, _ := got.BreakPoints.Query("sm"); q != "@media (min-width:600px)" {
		t.Errorf("sm = %q", q)
	}
	if got.BreakPoints[1].Name != "sm" {
		t.Errorf("replaced breakpoint must keep its position: %v", got.BreakPoints)
	}

	// inputs are not modified
	if q, _ := base.BreakPoints.Query("sm"); q != "@media screen and (min-width:700px)" {
		t.Error("MergeConfigs modified its argument")
	}
	got.Custom["font1"] = Plain("serif")
	if base.Custom["font1"].Value == "serif" {
		t.Error("result shares custom values with argument")
	}
}

func TestMergeConfigs_Empty(t *testing.T) {
	got := MergeConfigs()
	if got.ClassNames != nil || got.Custom != nil || got.BreakPoints != nil {
		t.Errorf("expected zero config, got %+v", got)
	}
}
