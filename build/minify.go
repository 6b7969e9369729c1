package build

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.uber.org/multierr"
)

// Minify compacts generated stylesheet. Comments are dropped, so banner must
// be added afterwards.
func Minify(css string) (string, error) {
	res := api.Transform(css, api.TransformOptions{
		Loader:           api.LoaderCSS,
		MinifyWhitespace: true,
		MinifySyntax:     true,
		LegalComments:    api.LegalCommentsNone,
		LogLevel:         api.LogLevelSilent,
		Charset:          api.CharsetUTF8,
	})
	var err error
	for _, m := range res.Errors {
		if m.Location != nil {
			err = multierr.Append(err, fmt.Errorf("line %d: %s", m.Location.Line, m.Text))
			continue
		}
		err = multierr.Append(err, errors.New(m.Text))
	}
	if err != nil {
		return "", fmt.Errorf("unable to minify stylesheet: %w", err)
	}
	return strings.TrimSpace(string(res.Code)) + "\n", nil
}
