package rules

// Direction placeholders, replaced with left/right (or right/left) when
// stylesheet is produced.
const (
	Start = "__START__"
	End   = "__END__"
)

func style(pairs ...string) Styles {
	s := make(Styles, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		s = append(s, Declaration{Property: pairs[i], Value: pairs[i+1]})
	}
	return s
}

// pattern defines rule whose parameters are always looked up as keywords.
func pattern(matcher, name string, styles Styles, args ...map[string]string) Rule {
	return Rule{Type: TypePattern, Matcher: matcher, Name: name, Styles: styles, Arguments: args}
}

// valued defines rule which accepts numeric parameters as is.
func valued(matcher, name string, styles Styles, args ...map[string]string) Rule {
	r := pattern(matcher, name, styles, args...)
	r.AllowParamToValue = true
	return r
}

func helper(matcher, name string, styles Styles, companions ...Companion) Rule {
	return Rule{Type: TypeHelper, Matcher: matcher, Name: name, Styles: styles, Rules: companions}
}

var (
	autoArg   = map[string]string{"a": "auto"}
	noneArg   = map[string]string{"n": "none"}
	normalArg = map[string]string{"n": "normal"}
	colorArg  = map[string]string{"t": "transparent", "cc": "currentColor"}
	sizeArg   = map[string]string{
		"a":    "auto",
		"bb":   "border-box",
		"cb":   "content-box",
		"av":   "available",
		"mc":   "min-content",
		"maxc": "max-content",
		"fc":   "fit-content",
	}
	maxSizeArg = map[string]string{
		"n":    "none",
		"fc":   "fit-content",
		"mc":   "min-content",
		"maxc": "max-content",
	}
	overflowArg = map[string]string{"a": "auto", "h": "hidden", "s": "scroll", "v": "visible"}
	borderArg   = map[string]string{"0": "0", "n": "none"}
	borderStyle = map[string]string{
		"d":  "dotted",
		"da": "dashed",
		"do": "double",
		"g":  "groove",
		"h":  "hidden",
		"i":  "inset",
		"n":  "none",
		"o":  "outset",
		"r":  "ridge",
		"s":  "solid",
	}
	borderWidth = map[string]string{"m": "medium", "t": "thin", "th": "thick"}
	flexAlign   = map[string]string{
		"fs": "flex-start",
		"fe": "flex-end",
		"c":  "center",
		"b":  "baseline",
		"st": "stretch",
	}
)

// Defaults returns built-in rule table: patterns first, helpers last.
// Declaration order of this table defines cascade order of generated
// stylesheet.
func Defaults() []Rule {
	return append(defaultPatterns(), defaultHelpers()...)
}

func defaultPatterns() []Rule {
	return []Rule{
		pattern("Anim", "Animation", style("animation", "$0")),
		pattern("Ap", "Appearance", style("appearance", "$0"), map[string]string{"a": "auto", "n": "none"}),
		pattern("Bfv", "Backface visibility", style("backface-visibility", "$0"), map[string]string{"h": "hidden", "v": "visible"}),

		// background
		pattern("Bg", "Background", style("background", "$0"), map[string]string{"n": "none", "t": "transparent"}),
		pattern("Bgc", "Background color", style("background-color", "$0"), colorArg),
		pattern("Bgi", "Background image", style("background-image", "$0"), noneArg),
		pattern("Bgr", "Background repeat", style("background-repeat", "$0"), map[string]string{
			"n":  "no-repeat",
			"rx": "repeat-x",
			"ry": "repeat-y",
			"r":  "repeat",
			"s":  "space",
			"ro": "round",
		}),
		pattern("Bgcp", "Background clip", style("background-clip", "$0"), map[string]string{
			"bb": "border-box",
			"cb": "content-box",
			"pb": "padding-box",
		}),
		valued("Bgz", "Background size", style("background-size", "$0"), map[string]string{
			"a":  "auto",
			"ct": "contain",
			"cv": "cover",
		}),

		// border
		pattern("Bd", "Border", style("border", "$0"), borderArg),
		pattern("Bdx", "Border X", style("border-"+Start, "$0", "border-"+End, "$0"), borderArg),
		pattern("Bdy", "Border Y", style("border-top", "$0", "border-bottom", "$0"), borderArg),
		pattern("Bdt", "Border top", style("border-top", "$0"), borderArg),
		pattern("Bdend", "Border end", style("border-"+End, "$0"), borderArg),
		pattern("Bdb", "Border bottom", style("border-bottom", "$0"), borderArg),
		pattern("Bdstart", "Border start", style("border-"+Start, "$0"), borderArg),
		pattern("Bdc", "Border color", style("border-color", "$0"), colorArg),
		pattern("Bdtc", "Border top color", style("border-top-color", "$0"), colorArg),
		pattern("Bdendc", "Border end color", style("border-"+End+"-color", "$0"), colorArg),
		pattern("Bdbc", "Border bottom color", style("border-bottom-color", "$0"), colorArg),
		pattern("Bdstartc", "Border start color", style("border-"+Start+"-color", "$0"), colorArg),
		pattern("Bds", "Border style", style("border-style", "$0"), borderStyle),
		valued("Bdw", "Border width", style("border-width", "$0"), borderWidth),
		valued("Bdtw", "Border top width", style("border-top-width", "$0"), borderWidth),
		valued("Bdendw", "Border end width", style("border-"+End+"-width", "$0"), borderWidth),
		valued("Bdbw", "Border bottom width", style("border-bottom-width", "$0"), borderWidth),
		valued("Bdstartw", "Border start width", style("border-"+Start+"-width", "$0"), borderWidth),
		valued("Bdrs", "Border radius", style("border-radius", "$0")),
		pattern("Bdcl", "Border collapse", style("border-collapse", "$0"), map[string]string{"c": "collapse", "s": "separate"}),

		// box
		pattern("Bxz", "Box sizing", style("box-sizing", "$0"), map[string]string{
			"cb": "content-box",
			"pb": "padding-box",
			"bb": "border-box",
		}),
		pattern("Bxsh", "Box shadow", style("box-shadow", "$0"), noneArg),
		pattern("Cl", "Clear", style("clear", "$0"), map[string]string{"n": "none", "b": "both", "start": Start, "end": End}),
		pattern("C", "Color", style("color", "$0"), colorArg),
		pattern("Cnt", "Content", style("content", "$0"), map[string]string{
			"n":   "none",
			"nor": "normal",
			"oq":  "open-quote",
			"cq":  "close-quote",
			"noq": "no-open-quote",
			"ncq": "no-close-quote",
		}),
		pattern("Cur", "Cursor", style("cursor", "$0"), map[string]string{
			"a":   "auto",
			"d":   "default",
			"h":   "help",
			"m":   "move",
			"na":  "not-allowed",
			"p":   "pointer",
			"pr":  "progress",
			"t":   "text",
			"w":   "wait",
			"zi":  "zoom-in",
			"zo":  "zoom-out",
			"g":   "grab",
			"gri": "grabbing",
		}),
		pattern("D", "Display", style("display", "$0"), map[string]string{
			"b":     "block",
			"cont":  "contents",
			"f":     "flex",
			"g":     "grid",
			"i":     "inline",
			"ib":    "inline-block",
			"if":    "inline-flex",
			"ig":    "inline-grid",
			"tb":    "table",
			"tbr":   "table-row",
			"tbc":   "table-cell",
			"li":    "list-item",
			"itb":   "inline-table",
			"tbcl":  "table-column",
			"tbclg": "table-column-group",
			"tbhg":  "table-header-group",
			"tbfg":  "table-footer-group",
			"tbrg":  "table-row-group",
			"n":     "none",
		}),
		pattern("Fil", "Filter", style("filter", "$0"), noneArg),

		// flexbox
		pattern("Ai", "Align items", style("align-items", "$0"), flexAlign),
		pattern("Ac", "Align content", style("align-content", "$0"), map[string]string{
			"fs": "flex-start",
			"fe": "flex-end",
			"c":  "center",
			"sb": "space-between",
			"sa": "space-around",
			"st": "stretch",
		}),
		pattern("As", "Align self", style("align-self", "$0"), map[string]string{
			"a":  "auto",
			"fs": "flex-start",
			"fe": "flex-end",
			"c":  "center",
			"b":  "baseline",
			"st": "stretch",
		}),
		valued("Fx", "Flex", style("flex", "$0"), map[string]string{"a": "auto", "n": "none"}),
		valued("Fxg", "Flex grow", style("flex-grow", "$0")),
		valued("Fxs", "Flex shrink", style("flex-shrink", "$0")),
		valued("Fxb", "Flex basis", style("flex-basis", "$0"), map[string]string{"a": "auto", "n": "none"}),
		pattern("Fxd", "Flex direction", style("flex-direction", "$0"), map[string]string{
			"r":  "row",
			"rr": "row-reverse",
			"c":  "column",
			"cr": "column-reverse",
		}),
		pattern("Fxw", "Flex wrap", style("flex-wrap", "$0"), map[string]string{
			"nw": "nowrap",
			"w":  "wrap",
			"wr": "wrap-reverse",
		}),
		pattern("Jc", "Justify content", style("justify-content", "$0"), map[string]string{
			"fs": "flex-start",
			"fe": "flex-end",
			"c":  "center",
			"sb": "space-between",
			"sa": "space-around",
			"se": "space-evenly",
			"st": "stretch",
		}),
		valued("Or", "Order", style("order", "$0")),

		pattern("Fl", "Float", style("float", "$0"), map[string]string{"n": "none", "start": Start, "end": End}),

		// font
		pattern("Ff", "Font family", style("font-family", "$0"), map[string]string{
			"c":  "\"Monotype Corsiva\", \"Comic Sans MS\", cursive",
			"f":  "Capitals, Impact, fantasy",
			"m":  "Monaco, \"Courier New\", monospace",
			"s":  "Georgia, \"Times New Roman\", serif",
			"ss": "\"Helvetica Neue\", Helvetica, Arial, sans-serif",
		}),
		valued("Fw", "Font weight", style("font-weight", "$0"), map[string]string{
			"100": "100",
			"200": "200",
			"300": "300",
			"400": "400",
			"500": "500",
			"600": "600",
			"700": "700",
			"800": "800",
			"900": "900",
			"b":   "bold",
			"br":  "bolder",
			"lr":  "lighter",
			"n":   "normal",
		}),
		valued("Fz", "Font size", style("font-size", "$0")),
		pattern("Fs", "Font style", style("font-style", "$0"), map[string]string{"n": "normal", "i": "italic", "o": "oblique"}),
		pattern("Fv", "Font variant", style("font-variant", "$0"), map[string]string{"n": "normal", "sc": "small-caps"}),

		// dimensions
		valued("H", "Height", style("height", "$0"), sizeArg),
		valued("Lts", "Letter spacing", style("letter-spacing", "$0"), normalArg),
		valued("Lh", "Line height", style("line-height", "$0"), normalArg),
		pattern("List", "List style type", style("list-style-type", "$0"), map[string]string{
			"n":    "none",
			"d":    "disc",
			"c":    "circle",
			"s":    "square",
			"dc":   "decimal",
			"dclz": "decimal-leading-zero",
			"lr":   "lower-roman",
			"lg":   "lower-greek",
			"ll":   "lower-latin",
			"ur":   "upper-roman",
			"ul":   "upper-latin",
		}),
		pattern("Lisp", "List style position", style("list-style-position", "$0"), map[string]string{"i": "inside", "o": "outside"}),
		valued("Mah", "Max height", style("max-height", "$0"), maxSizeArg),
		valued("Maw", "Max width", style("max-width", "$0"), maxSizeArg),
		valued("Mih", "Min height", style("min-height", "$0"), sizeArg),
		valued("Miw", "Min width", style("min-width", "$0"), sizeArg),

		// margins
		valued("M", "Margin (all edges)", style("margin", "$0 $1 $2 $3"), autoArg, autoArg, autoArg, autoArg),
		valued("Mx", "Margin X", style("margin-"+Start, "$0", "margin-"+End, "$0"), autoArg),
		valued("My", "Margin Y", style("margin-top", "$0", "margin-bottom", "$0"), autoArg),
		valued("Mt", "Margin top", style("margin-top", "$0"), autoArg),
		valued("Mend", "Margin end", style("margin-"+End, "$0"), autoArg),
		valued("Mb", "Margin bottom", style("margin-bottom", "$0"), autoArg),
		valued("Mstart", "Margin start", style("margin-"+Start, "$0"), autoArg),

		valued("Op", "Opacity", style("opacity", "$0")),
		pattern("O", "Outline", style("outline", "$0"), map[string]string{"0": "0", "n": "none"}),
		pattern("Ov", "Overflow", style("overflow", "$0"), overflowArg),
		pattern("Ovx", "Overflow X", style("overflow-x", "$0"), overflowArg),
		pattern("Ovy", "Overflow Y", style("overflow-y", "$0"), overflowArg),

		// paddings
		valued("P", "Padding (all edges)", style("padding", "$0 $1 $2 $3")),
		valued("Px", "Padding X", style("padding-"+Start, "$0", "padding-"+End, "$0")),
		valued("Py", "Padding Y", style("padding-top", "$0", "padding-bottom", "$0")),
		valued("Pt", "Padding top", style("padding-top", "$0")),
		valued("Pend", "Padding end", style("padding-"+End, "$0")),
		valued("Pb", "Padding bottom", style("padding-bottom", "$0")),
		valued("Pstart", "Padding start", style("padding-"+Start, "$0")),

		pattern("Pe", "Pointer events", style("pointer-events", "$0"), map[string]string{
			"a":   "auto",
			"all": "all",
			"f":   "fill",
			"n":   "none",
			"p":   "painted",
			"s":   "stroke",
			"v":   "visible",
		}),
		pattern("Pos", "Position", style("position", "$0"), map[string]string{
			"a":  "absolute",
			"fx": "fixed",
			"r":  "relative",
			"s":  "static",
			"st": "sticky",
		}),
		pattern("Rsz", "Resize", style("resize", "$0"), map[string]string{
			"n": "none",
			"b": "both",
			"h": "horizontal",
			"v": "vertical",
		}),
		pattern("Tbl", "Table layout", style("table-layout", "$0"), map[string]string{"a": "auto", "f": "fixed"}),

		// text
		pattern("Ta", "Text align", style("text-align", "$0"), map[string]string{
			"c":     "center",
			"e":     "end",
			"end":   End,
			"j":     "justify",
			"mp":    "match-parent",
			"s":     "start",
			"start": Start,
		}),
		pattern("Td", "Text decoration", style("text-decoration", "$0"), map[string]string{
			"lt": "line-through",
			"n":  "none",
			"o":  "overline",
			"u":  "underline",
		}),
		valued("Ti", "Text indent", style("text-indent", "$0")),
		pattern("Tov", "Text overflow", style("text-overflow", "$0"), map[string]string{"c": "clip", "e": "ellipsis"}),
		pattern("Tsh", "Text shadow", style("text-shadow", "$0"), noneArg),
		pattern("Tt", "Text transform", style("text-transform", "$0"), map[string]string{
			"n": "none",
			"c": "capitalize",
			"u": "uppercase",
			"l": "lowercase",
		}),

		// positioning
		valued("T", "Top", style("top", "$0"), autoArg),
		valued("End", "End", style(End, "$0"), autoArg),
		valued("B", "Bottom", style("bottom", "$0"), autoArg),
		valued("Start", "Start", style(Start, "$0"), autoArg),

		pattern("Trf", "Transform", style("transform", "$0"), noneArg),
		pattern("Trs", "Transition", style("transition", "$0"), noneArg),
		valued("Trsdu", "Transition duration", style("transition-duration", "$0")),
		valued("Trsde", "Transition delay", style("transition-delay", "$0")),
		pattern("Us", "User select", style("user-select", "$0"), map[string]string{
			"a":   "auto",
			"all": "all",
			"el":  "element",
			"n":   "none",
			"t":   "text",
			"to":  "toggle",
		}),
		pattern("Va", "Vertical align", style("vertical-align", "$0"), map[string]string{
			"b":   "bottom",
			"bl":  "baseline",
			"m":   "middle",
			"sub": "sub",
			"sup": "super",
			"t":   "top",
			"tb":  "text-bottom",
			"tt":  "text-top",
		}),
		pattern("V", "Visibility", style("visibility", "$0"), map[string]string{"v": "visible", "h": "hidden", "c": "collapse"}),
		pattern("Whs", "White space", style("white-space", "$0"), map[string]string{
			"n":  "normal",
			"p":  "pre",
			"nw": "nowrap",
			"pw": "pre-wrap",
			"pl": "pre-line",
		}),
		valued("W", "Width", style("width", "$0"), sizeArg),
		pattern("Wob", "Word break", style("word-break", "$0"), map[string]string{
			"ba": "break-all",
			"ka": "keep-all",
			"n":  "normal",
		}),
		valued("Z", "Z-index", style("z-index", "$0"), autoArg),
	}
}

func defaultHelpers() []Rule {
	return []Rule{
		helper("BfcHack", "Block formatting context hack",
			style("display", "table-cell", "width", "1600px", "*width", "auto", "zoom", "1")),
		helper("Cf", "Clearfix",
			style("zoom", "1"),
			Companion{Selector: ".Cf:before, .Cf:after", Styles: style("content", "\" \"", "display", "table")},
			Companion{Selector: ".Cf:after", Styles: style("clear", "both")}),
		helper("Ell", "Ellipsis",
			style("max-width", "100%", "white-space", "nowrap", "overflow", "hidden", "text-overflow", "ellipsis", "hyphens", "none"),
			Companion{Selector: ".Ell:after", Styles: style(
				"content", "\".\"",
				"font-size", "0",
				"visibility", "hidden",
				"display", "inline-block",
				"overflow", "hidden",
				"height", "0",
				"width", "0",
			)}),
		helper("Hidden", "Hidden (visually)",
			style(
				"position", "absolute !important",
				"clip", "rect(1px,1px,1px,1px)",
				"padding", "0 !important",
				"border", "0 !important",
				"height", "1px !important",
				"width", "1px !important",
				"overflow", "hidden",
			)),
		helper("IbBox", "Inline-block box",
			style("display", "inline-block", "*display", "inline", "zoom", "1", "vertical-align", "top")),
		helper("LineClamp", "Line clamp",
			style("-webkit-line-clamp", "$0", "max-height", "$1"),
			Companion{Selector: "[class*=LineClamp]", Styles: style(
				"display", "-webkit-box",
				"-webkit-box-orient", "vertical",
				"overflow", "hidden",
			)},
			Companion{Selector: "a[class*=LineClamp]", Styles: style("display", "inline-block")},
			Companion{Selector: "a[class*=LineClamp]:after", Styles: style(
				"content", "\".\"",
				"font-size", "0",
				"visibility", "hidden",
				"display", "inline-block",
				"overflow", "hidden",
				"height", "0",
				"width", "0",
			)}),
		helper("Row", "Row",
			style(
				"clear", "both",
				"display", "inline-block",
				"vertical-align", "top",
				"width", "100%",
				"box-sizing", "border-box",
				"*display", "block",
				"*width", "auto",
				"zoom", "1",
			)),
		helper("StretchedBox", "Stretched box",
			style("position", "absolute", "top", "0", "right", "0", "bottom", "0", "left", "0")),
		helper("Bd", "Border (all edges)", style("border-width", "1px", "border-style", "solid")),
		helper("BdT", "Border top", style("border-top-width", "1px", "border-top-style", "solid")),
		helper("BdEnd", "Border end", style("border-"+End+"-width", "1px", "border-"+End+"-style", "solid")),
		helper("BdB", "Border bottom", style("border-bottom-width", "1px", "border-bottom-style", "solid")),
		helper("BdStart", "Border start", style("border-"+Start+"-width", "1px", "border-"+Start+"-style", "solid")),
		helper("BdX", "Border X", style(
			"border-"+Start+"-width", "1px",
			"border-"+Start+"-style", "solid",
			"border-"+End+"-width", "1px",
			"border-"+End+"-style", "solid",
		)),
		helper("BdY", "Border Y", style(
			"border-top-width", "1px",
			"border-top-style", "solid",
			"border-bottom-width", "1px",
			"border-bottom-style", "solid",
		)),
	}
}
