// Package color provides the color space math used to realize catalog
// colors as 8-bit sRGB values.
package color

// RGBA represents a color with float64 components.
// RGB components are in the color space indicated by context and may lie
// outside [0,1] for extended-range spaces. Alpha is always linear.
type RGBA struct {
	R, G, B, A float64
}

// U8 represents a color with uint8 components in [0,255].
type U8 struct {
	R, G, B, A uint8
}

// ToU8 converts an RGBA to U8, clamping every component to [0,1] first.
func ToU8(c RGBA) U8 {
	return U8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// Clamp restricts every component of c to [0,1].
func Clamp(c RGBA) RGBA {
	return RGBA{R: clampUnit(c.R), G: clampUnit(c.G), B: clampUnit(c.B), A: clampUnit(c.A)}
}

func clampUnit(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// clampAndRound clamps a float64 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
