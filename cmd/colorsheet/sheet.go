package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colorcatalog"
)

// Cell geometry in pixels.
const (
	cellWidth    = 160
	swatchHeight = 56
	labelHeight  = 24
	cellHeight   = swatchHeight + labelHeight
	padding      = 8
	hatchSpacing = 8
)

var (
	background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor = color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	hatchColor = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
)

// sheet lays colors out in a grid of labelled swatches.
type sheet struct {
	columns int
	face    font.Face
}

func newSheet(columns int) (*sheet, error) {
	if columns < 1 {
		columns = 1
	}
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    11,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &sheet{columns: columns, face: face}, nil
}

// render draws one cell per name and returns the names that did not resolve.
func (s *sheet) render(m *colorcatalog.Manager, names []string) (*image.NRGBA, []string) {
	cols := min(s.columns, len(names))
	rows := (len(names) + s.columns - 1) / s.columns
	w := padding + cols*(cellWidth+padding)
	h := padding + rows*(cellHeight+padding)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	var missing []string
	for i, name := range names {
		x := padding + (i%s.columns)*(cellWidth+padding)
		y := padding + (i/s.columns)*(cellHeight+padding)
		swatch := image.Rect(x, y, x+cellWidth, y+swatchHeight)

		if c, ok := m.Color(name); ok {
			draw.Draw(img, swatch, image.NewUniform(c), image.Point{}, draw.Over)
		} else {
			missing = append(missing, name)
			drawHatch(img, swatch)
		}
		s.drawLabel(img, name, x, y+swatchHeight)
	}
	return img, missing
}

// drawHatch marks a swatch whose color could not be resolved.
func drawHatch(img *image.NRGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if (x-r.Min.X+y-r.Min.Y)%hatchSpacing == 0 {
				img.SetNRGBA(x, y, hatchColor)
			}
		}
	}
}

// drawLabel writes name below a swatch, clipped to the cell width.
func (s *sheet) drawLabel(img *image.NRGBA, name string, x, y int) {
	clip := img.SubImage(image.Rect(x, y, x+cellWidth, y+labelHeight)).(*image.NRGBA)
	ascent := s.face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(labelColor),
		Face: s.face,
		Dot:  fixed.P(x+2, y+(labelHeight+ascent)/2-1),
	}
	d.DrawString(name)
}
