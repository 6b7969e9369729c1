package grammar

import (
	"maps"
	"slices"
	"strings"
)

var pseudoClasses = map[string]string{
	"a":   ":active",
	"c":   ":checked",
	"d":   ":default",
	"di":  ":disabled",
	"e":   ":empty",
	"en":  ":enabled",
	"fi":  ":first",
	"fc":  ":first-child",
	"fot": ":first-of-type",
	"fs":  ":fullscreen",
	"f":   ":focus",
	"fw":  ":focus-within",
	"fv":  ":focus-visible",
	"h":   ":hover",
	"ind": ":indeterminate",
	"ir":  ":in-range",
	"inv": ":invalid",
	"lc":  ":last-child",
	"lot": ":last-of-type",
	"l":   ":left",
	"li":  ":link",
	"oc":  ":only-child",
	"oot": ":only-of-type",
	"o":   ":optional",
	"oor": ":out-of-range",
	"ph":  ":placeholder-shown",
	"ro":  ":read-only",
	"rw":  ":read-write",
	"req": ":required",
	"r":   ":right",
	"rt":  ":root",
	"s":   ":scope",
	"t":   ":target",
	"va":  ":valid",
	"vi":  ":visited",
}

var pseudoElements = map[string]string{
	"b":   "::before",
	"a":   "::after",
	"fl":  "::first-letter",
	"fli": "::first-line",
	"ph":  "::placeholder",
	"sel": "::selection",
}

// PseudoClass expands pseudo-class abbreviation ("h" -> ":hover").
func PseudoClass(key string) string {
	return pseudoClasses[key]
}

// PseudoElement expands pseudo-element abbreviation ("b" -> "::before").
func PseudoElement(key string) string {
	return pseudoElements[key]
}

// alternation builds regexp alternation of quoted literals, longest first so
// that leftmost-first matching prefers complete names. Empty list produces
// pattern which never matches.
func alternation(list []string) string {
	if len(list) == 0 {
		return `[^\s\S]`
	}
	sorted := slices.Clone(list)
	slices.SortFunc(sorted, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	sorted = slices.Compact(sorted)
	for i, s := range sorted {
		sorted[i] = quote(s)
	}
	return strings.Join(sorted, "|")
}

func keys(m map[string]string) []string {
	return slices.Collect(maps.Keys(m))
}
