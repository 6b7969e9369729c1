package build

import (
	"testing"
)

func TestExtractAttributes(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		attrs []string
		want  string
	}{
		{"double quotes", `<div class="D(b) C(#fff)"></div>`, []string{"class"}, "D(b) C(#fff)\n"},
		{"single quotes", `<p class='Op(1)'>`, []string{"class"}, "Op(1)\n"},
		{"unquoted", `<p class=Op(1)>`, []string{"class"}, "Op(1)\n"},
		{"case", `<App className="D(f)" CLASS="D(n)"/>`, []string{"class", "classname"}, "D(f)\nD(n)\n"},
		{"other attributes", `<a href="D(b)" title="Op(0)" class="C(red)">D(n)</a>`, []string{"class"}, "C(red)\n"},
		{"empty", `<div class="" class=''></div>`, []string{"class"}, ""},
		{"nested", `<ul class="M(0)"><li class="P(0)">x</li></ul>`, []string{"class"}, "M(0)\nP(0)\n"},
		{"text", `D(b) Op(1)`, []string{"class"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractAttributes([]byte(tt.src), tt.attrs)
			if err != nil {
				t.Fatalf("extractAttributes() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("extractAttributes() = %q, want %q", got, tt.want)
			}
		})
	}
}
