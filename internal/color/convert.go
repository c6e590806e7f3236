package color

import "math"

// SRGBToLinear converts an sRGB-encoded component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Negative inputs (extended range) are mirrored around zero.
func SRGBToLinear(s float64) float64 {
	if s < 0 {
		return -SRGBToLinear(-s)
	}
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB encoding.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Negative inputs (extended range) are mirrored around zero.
func LinearToSRGB(l float64) float64 {
	if l < 0 {
		return -LinearToSRGB(-l)
	}
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// displayP3ToSRGB converts linear Display P3 (D65) to linear sRGB (D65).
// Rows are output channels.
var displayP3ToSRGB = [3][3]float64{
	{1.2249401, -0.2249404, 0.0000000},
	{-0.0420569, 1.0420571, 0.0000000},
	{-0.0196376, -0.0786361, 1.0982735},
}

// DisplayP3ToSRGB converts an encoded Display P3 color to encoded sRGB.
// Display P3 shares the sRGB transfer function, so the conversion is
// decode, matrix, encode. The result may fall outside [0,1] for colors
// outside the sRGB gamut; callers clamp when they need a device value.
func DisplayP3ToSRGB(c RGBA) RGBA {
	lin := LinearDisplayP3ToSRGB(RGBA{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	})
	return RGBA{
		R: LinearToSRGB(lin.R),
		G: LinearToSRGB(lin.G),
		B: LinearToSRGB(lin.B),
		A: c.A,
	}
}

// LinearDisplayP3ToSRGB applies the P3 to sRGB matrix to linear components.
func LinearDisplayP3ToSRGB(c RGBA) RGBA {
	m := &displayP3ToSRGB
	return RGBA{
		R: m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B,
		G: m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B,
		B: m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B,
		A: c.A,
	}
}

// LinearToSRGBColor encodes the RGB components of a linear color.
// Alpha remains linear.
func LinearToSRGBColor(c RGBA) RGBA {
	return RGBA{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// GrayGamma22ToSRGB converts a gamma 2.2 gray level to an sRGB-encoded level.
func GrayGamma22ToSRGB(w float64) float64 {
	if w < 0 {
		return -GrayGamma22ToSRGB(-w)
	}
	return LinearToSRGB(math.Pow(w, 2.2))
}
