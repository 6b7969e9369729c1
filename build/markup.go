package build

import (
	"bytes"
	"io"
	"slices"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"
)

// extractAttributes returns values of requested attributes (lower case
// names) found in markup, one per line. Lexer errors other than end of input
// are returned together with what was collected so far.
func extractAttributes(src []byte, attributes []string) ([]byte, error) {
	var out bytes.Buffer
	l := html.NewLexer(parse.NewInputBytes(src))
	for {
		tt, _ := l.Next()
		switch tt {
		case html.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return out.Bytes(), err
			}
			return out.Bytes(), nil
		case html.AttributeToken:
			if !slices.Contains(attributes, string(l.AttrKey())) {
				continue
			}
			val := l.AttrVal()
			if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
				val = val[1 : len(val)-1]
			}
			if len(val) == 0 {
				continue
			}
			out.Write(val)
			out.WriteByte('\n')
		}
	}
}
