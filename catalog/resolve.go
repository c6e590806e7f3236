package catalog

// ResolutionContext describes the device a color is resolved for.
type ResolutionContext struct {
	// Idiom is the current device class.
	Idiom Idiom
	// Gamut is the widest gamut the display supports. Only
	// GamutDisplayP3 enables wide-gamut selection.
	Gamut Gamut
}

// WideGamut reports whether the display supports Display P3.
func (c ResolutionContext) WideGamut() bool {
	return c.Gamut == GamutDisplayP3
}

// Candidates returns the variants eligible in ctx, best first: variants
// whose idiom equals ctx.Idiom, then universal variants, each group in
// definition order. Variants for other idioms are dropped.
func Candidates(def Definition, ctx ResolutionContext) []Variant {
	var matched, universal []Variant
	for _, v := range def.Variants {
		switch {
		case v.Idiom == IdiomOther:
			// Unrecognized tags never match, even if ctx.Idiom is IdiomOther.
		case v.Idiom == ctx.Idiom && v.Idiom != IdiomUnspecified:
			matched = append(matched, v)
		case v.Idiom == IdiomUnspecified:
			universal = append(universal, v)
		}
	}
	return append(matched, universal...)
}

// Select picks the best variant of def for ctx.
//
// On a wide-gamut display the first Display P3 candidate is chosen if any
// exists; otherwise, or on a standard display, the first candidate is
// chosen regardless of gamut. It reports false when no variant is eligible.
func Select(def Definition, ctx ResolutionContext) (Variant, bool) {
	ranked := Candidates(def, ctx)
	if len(ranked) == 0 {
		return Variant{}, false
	}
	if ctx.WideGamut() {
		for _, v := range ranked {
			if v.Gamut == GamutDisplayP3 {
				return v, true
			}
		}
	}
	return ranked[0], true
}

// Resolve selects the best variant of def for ctx and returns its color.
func Resolve(def Definition, ctx ResolutionContext) (Color, bool) {
	v, ok := Select(def, ctx)
	if !ok {
		return Color{}, false
	}
	return v.Color, true
}
