package atomizer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"

	"acss/grammar"
	"acss/jss"
	"acss/rules"
)

// Warning describes class parameter which could not be turned into value.
type Warning struct {
	Kind      Warn
	ClassName string
	// Value is offending part of class name: "Fz(heading)" or "#FFF".
	Value string
}

// Message returns human readable description of the problem.
func (w Warning) Message() string {
	switch w.Kind {
	case WarnMalformedHex:
		return fmt.Sprintf("Only 3 or 6 lowercase hex digits are accepted, no rules will be generated for `%s`", w.Value)
	default:
		return fmt.Sprintf("Class `%s` is ambiguous and must be added to custom section of configuration", w.Value)
	}
}

func (w Warning) String() string {
	return w.ClassName + ": " + w.Message()
}

// leftover matches placeholders which were not substituted together with
// their separator.
var leftover = regexp.MustCompile(`[,\s]?\$\d+`)

type resolver struct {
	rule     rules.Rule
	match    grammar.Match
	config   *Config
	options  *CSSOptions
	warnings []Warning
}

func (r *resolver) warn(kind Warn, value string) {
	r.warnings = append(r.warnings, Warning{Kind: kind, ClassName: r.match.ClassName, Value: value})
}

func plain(v string) *CustomValue {
	return &CustomValue{Value: v}
}

// param resolves single parameter at position index, nil means there is no
// usable value.
func (r *resolver) param(index int, text string) *CustomValue {
	v, ok := grammar.MatchValue(text)
	if !ok {
		return nil
	}
	switch v.Kind {
	case grammar.ValueNumber:
		if r.rule.AllowParamToValue || r.rule.Type == rules.TypeHelper {
			return plain(v.Number + v.Unit)
		}
		return r.named(index, v.Number+v.Unit)
	case grammar.ValueFraction:
		return plain(fraction(v.Numerator, v.Denominator))
	case grammar.ValueHex:
		if v.Malformed || v.Hex != strings.ToLower(v.Hex) {
			r.warn(WarnMalformedHex, v.Input)
			return nil
		}
		if len(v.Alpha) == 0 {
			return plain(v.Hex)
		}
		red, green, blue := hexToRGB(v.Hex)
		return plain(fmt.Sprintf("rgba(%d,%d,%d,%s)", red, green, blue, v.Alpha))
	default:
		return r.named(index, v.Named)
	}
}

func (r *resolver) named(index int, keyword string) *CustomValue {
	if keyword == "inh" {
		return plain("inherit")
	}
	if v, ok := r.rule.Argument(index, keyword); ok {
		return plain(v)
	}
	full := r.match.AtomicSelector + "(" + keyword + ")"
	if v, ok := r.config.Custom[full]; ok {
		return &v
	}
	if v, ok := r.config.Custom[keyword]; ok {
		return &v
	}
	r.warn(WarnUnresolvedValue, full)
	return nil
}

// fraction converts n/d into percentage rounded to 4 decimal places.
func fraction(numerator, denominator string) string {
	n, _ := strconv.ParseFloat(numerator, 64)
	d, _ := strconv.ParseFloat(denominator, 64)
	return formatNumber(n/d*100) + "%"
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*10000)/10000, 'f', -1, 64)
}

// hexToRGB expects validated #rgb or #rrggbb.
func hexToRGB(hex string) (r, g, b uint64) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	r, _ = strconv.ParseUint(hex[0:2], 16, 8)
	g, _ = strconv.ParseUint(hex[2:4], 16, 8)
	b, _ = strconv.ParseUint(hex[4:6], 16, 8)
	return r, g, b
}

// entry builds tree entry: clones declaration template, substitutes
// parameters, adds legacy declarations and importance.
func (r *resolver) entry() *TreeEntry {
	e := &TreeEntry{Match: r.match}

	var values []*CustomValue
	if r.match.HasParams() {
		unresolved := false
		for i, text := range strings.Split(r.match.AtomicValues, ",") {
			v := r.param(i, text)
			if v == nil {
				unresolved = true
			}
			values = append(values, v)
		}
		if unresolved {
			return e
		}
	}

	decls := jss.NewDeclarations()
	scoped := orderedmap.NewOrderedMap[string, *jss.Declarations]()
	for _, d := range r.rule.Styles {
		decls.Set(d.Property, d.Value)
	}

	for _, d := range r.rule.Styles {
		prop := d.Property
		value, keep := d.Value, true
		for index, v := range values {
			placeholder := "$" + strconv.Itoa(index)
			if !v.IsScoped() {
				if r.options.IE {
					r.shim(decls, prop, v.Value)
				}
				value = strings.ReplaceAll(value, placeholder, v.Value)
				for _, sd := range scoped.AllFromFront() {
					if cur, ok := sd.Get(prop); ok {
						sd.Set(prop, strings.ReplaceAll(cur, placeholder, v.Value))
					}
				}
				continue
			}
			for _, bp := range r.config.BreakPoints {
				bv, ok := v.Scoped[bp.Name]
				if !ok {
					continue
				}
				sd, ok := scoped.Get(bp.Query)
				if !ok {
					sd = jss.NewDeclarations()
					scoped.Set(bp.Query, sd)
				}
				cur, ok := sd.Get(prop)
				if !ok {
					cur = value
				}
				sd.Set(prop, strings.ReplaceAll(cur, placeholder, bv))
			}
			if def, ok := v.Scoped[DefaultBreakpoint]; ok {
				value = strings.ReplaceAll(value, placeholder, def)
			} else {
				keep = false
			}
		}
		if !keep {
			decls.Delete(prop)
			continue
		}
		decls.Set(prop, strip(value))
	}
	for _, sd := range scoped.AllFromFront() {
		for prop, value := range sd.AllFromFront() {
			sd.Set(prop, strip(value))
		}
	}

	if r.match.Important || (len(r.match.Parent) > 0 && len(r.options.Namespace) > 0 && r.rule.Type != rules.TypeHelper) {
		important(decls)
		for _, sd := range scoped.AllFromFront() {
			important(sd)
		}
	}

	e.Declarations = decls
	if scoped.Len() > 0 {
		e.Scoped = scoped
	}
	return e
}

func strip(value string) string {
	if !strings.Contains(value, "$") {
		return value
	}
	return leftover.ReplaceAllString(value, "")
}

func important(d *jss.Declarations) {
	for prop, value := range d.AllFromFront() {
		d.Set(prop, value+" !important")
	}
}

// shim adds declarations old Internet Explorer needs for some properties.
func (r *resolver) shim(decls *jss.Declarations, prop, value string) {
	switch prop {
	case "display":
		if value == "inline-block" {
			decls.Set("zoom", "1")
			decls.Set("*display", "inline")
		}
	case "overflow":
		if value != "visible" {
			decls.Set("zoom", "1")
		}
	case "opacity":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			decls.Set("filter", "alpha(opacity="+formatNumber(f*100)+")")
		}
	}
}
