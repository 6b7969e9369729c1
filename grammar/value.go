package grammar

import "regexp"

// ValueKind classifies single class parameter.
type ValueKind int

const (
	ValueNumber ValueKind = iota + 1
	ValueFraction
	ValueHex
	ValueNamed
)

// Value is decomposition of single class parameter.
type Value struct {
	Kind        ValueKind
	Input       string
	Number      string
	Unit        string
	Numerator   string
	Denominator string
	Hex         string
	Alpha       string
	// Malformed is set for parameters which start with "#" but are not
	// 3 or 6 hex digits with optional alpha.
	Malformed bool
	Named       string
}

// Order of alternatives defines classification priority.
var valueSyntax = regexp.MustCompile(`^(?:` +
	`(?P<number>-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+))(?P<unit>[a-zA-Z%]+)?` +
	`|(?P<numerator>[0-9]+)/(?P<denominator>[1-9][0-9]*)` +
	`|(?P<hex>#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3})(?P<alpha>\.[0-9]+)?` +
	`|(?P<named>-?[a-zA-Z$_][-_a-zA-Z0-9]*)` +
	`|(?P<malformed>#\S*)` +
	`)$`)

// MatchValue classifies class parameter. It returns false for text which is
// not a valid parameter (for example lone "-").
func MatchValue(param string) (Value, bool) {
	sub := valueSyntax.FindStringSubmatch(param)
	if sub == nil {
		return Value{}, false
	}
	group := func(name string) string {
		return sub[valueSyntax.SubexpIndex(name)]
	}
	v := Value{Input: param}
	switch {
	case len(group("number")) > 0:
		v.Kind, v.Number, v.Unit = ValueNumber, group("number"), group("unit")
	case len(group("numerator")) > 0:
		v.Kind, v.Numerator, v.Denominator = ValueFraction, group("numerator"), group("denominator")
	case len(group("hex")) > 0:
		v.Kind, v.Hex, v.Alpha = ValueHex, group("hex"), group("alpha")
	case len(group("malformed")) > 0:
		v.Kind, v.Hex, v.Malformed = ValueHex, group("malformed"), true
	default:
		v.Kind, v.Named = ValueNamed, group("named")
	}
	return v, true
}
