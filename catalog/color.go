package catalog

import (
	imgcolor "image/color"

	"github.com/gogpu/colorcatalog/internal/color"
)

// Color is a realized catalog color. R, G, B and A hold the components as
// written in the catalog, in Space. Gray spaces repeat the white level in
// R, G and B.
//
// Color implements image/color.Color by converting to 8-bit sRGB; values
// outside the sRGB gamut are clamped.
type Color struct {
	Space      ColorSpace
	R, G, B, A float64
}

// SRGB returns the color as sRGB-encoded components in [0,1].
func (c Color) SRGB() (r, g, b, a float64) {
	s := color.Clamp(c.srgb())
	return s.R, s.G, s.B, s.A
}

// NRGBA returns the color as non-premultiplied 8-bit sRGB.
func (c Color) NRGBA() imgcolor.NRGBA {
	u := color.ToU8(c.srgb())
	return imgcolor.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// srgb converts to sRGB encoding without clamping.
func (c Color) srgb() color.RGBA {
	in := color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	switch c.Space {
	case SpaceDisplayP3:
		return color.DisplayP3ToSRGB(in)
	case SpaceExtendedLinearSRGB:
		return color.LinearToSRGBColor(in)
	case SpaceGrayGamma22, SpaceExtendedGray:
		w := color.GrayGamma22ToSRGB(c.R)
		return color.RGBA{R: w, G: w, B: w, A: c.A}
	default:
		return in
	}
}

var _ imgcolor.Color = Color{}
