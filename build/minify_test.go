package build

import (
	"strings"
	"testing"
)

func TestMinify(t *testing.T) {
	css := `/* banner */
.D\(b\) {
  display: block;
}

@media screen and (min-width:680px) {
  .D\(n\)--sm {
    display: none;
  }
}
`
	got, err := Minify(css)
	if err != nil {
		t.Fatalf("Minify() error = %v", err)
	}
	if strings.Contains(got, "banner") {
		t.Errorf("comments were not removed: %q", got)
	}
	if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
		t.Errorf("whitespace was not removed: %q", got)
	}
	for _, want := range []string{"display:block", "display:none", "@media"} {
		if !strings.Contains(got, want) {
			t.Errorf("Minify() = %q, does not contain %q", got, want)
		}
	}
	if len(got) >= len(css) {
		t.Errorf("Minify() did not reduce size: %d >= %d", len(got), len(css))
	}
}

func TestMinify_Empty(t *testing.T) {
	got, err := Minify("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "\n" {
		t.Errorf("Minify(\"\") = %q", got)
	}
}
