package jss

import (
	"bytes"
	"strings"
	"testing"
)

func TestSheet_String_SimpleRule(t *testing.T) {
	s := New()
	s.Merge(`.D\(b\)`, NewDeclarations("display", "block"))

	want := ".D\\(b\\) {\n  display: block;\n}\n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestSheet_String_PropertyOrder(t *testing.T) {
	s := New()
	s.Merge(".Ell", NewDeclarations("max-width", "100%", "white-space", "nowrap", "overflow", "hidden"))

	got := s.String()
	iMax := strings.Index(got, "max-width")
	iWs := strings.Index(got, "white-space")
	iOv := strings.Index(got, "overflow")
	if !(iMax < iWs && iWs < iOv) {
		t.Errorf("insertion order not preserved:\n%s", got)
	}
}

func TestSheet_String_MediaOrder(t *testing.T) {
	const sm, md = "@media (min-width:700px)", "@media (min-width:999px)"
	s := New(sm, md)
	s.MergeMedia(md, ".a--md", NewDeclarations("color", "red"))
	s.Merge(".a", NewDeclarations("color", "blue"))
	s.MergeMedia(sm, ".a--sm", NewDeclarations("color", "green"))
	s.MergeMedia("@media print", ".a--p", NewDeclarations("color", "black"))

	want := `.a {
  color: blue;
}

@media (min-width:700px) {
  .a--sm {
    color: green;
  }
}

@media (min-width:999px) {
  .a--md {
    color: red;
  }
}

@media print {
  .a--p {
    color: black;
  }
}
`
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSheet_Merge(t *testing.T) {
	s := New()
	s.Merge(".Cf:after", NewDeclarations("clear", "both"))
	s.Merge(".Cf:after", NewDeclarations("content", `""`, "clear", "left"))
	s.Merge(".x", nil)

	d, ok := s.Lookup(".Cf:after")
	if !ok {
		t.Fatal("selector not found")
	}
	if v, _ := d.Get("clear"); v != "left" {
		t.Errorf("clear = %q, want left", v)
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 declarations, got %d", d.Len())
	}
	if _, ok := s.Lookup(".x"); ok {
		t.Error("nil declarations must not create selector")
	}
}

func TestSheet_EmptyBlocksSkipped(t *testing.T) {
	s := New("@media (min-width:700px)")
	s.Merge(".empty", NewDeclarations())
	if got := s.String(); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if _, ok := s.LookupMedia("@media (min-width:700px)", ".x"); ok {
		t.Error("unexpected media rule")
	}
}

func TestSheet_WriteTo(t *testing.T) {
	s := New()
	s.Merge(".a", NewDeclarations("color", "red"))
	s.Merge(".b", NewDeclarations("color", "blue"))

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d", n, buf.Len())
	}
	if buf.String() != s.String() {
		t.Error("WriteTo and String disagree")
	}
	if !strings.Contains(buf.String(), "}\n\n.b {") {
		t.Errorf("items must be separated by blank line:\n%s", buf.String())
	}
}
