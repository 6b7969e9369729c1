package build

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
)

// BannerValues are available to banner template.
type BannerValues struct {
	Name    string
	Version string
	Classes int
	Rules   int
	Time    time.Time
}

// ExpandBanner executes banner template. Empty template gives empty banner.
func ExpandBanner(banner string, values BannerValues) (string, error) {
	if len(banner) == 0 {
		return "", nil
	}
	tmpl, err := template.New("banner").Funcs(sprig.FuncMap()).Parse(banner)
	if err != nil {
		return "", fmt.Errorf("unable to parse banner template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("unable to expand banner template: %w", err)
	}
	return buf.String(), nil
}
