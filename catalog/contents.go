package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ContentsFile is the metadata file inside every color set.
const ContentsFile = "Contents.json"

// ColorSetExt is the directory extension of a color set.
const ColorSetExt = ".colorset"

// Variant is one candidate definition of a named color.
type Variant struct {
	Idiom Idiom
	Gamut Gamut
	Color Color
}

// Definition is the decoded form of one color set. Variants keep the order
// in which they appear in Contents.json; duplicate (idiom, gamut) pairs are
// allowed.
type Definition struct {
	Variants []Variant
}

type contentsDoc struct {
	Colors []colorEntry `json:"colors"`
}

type colorEntry struct {
	Idiom        string     `json:"idiom"`
	DisplayGamut string     `json:"display-gamut"`
	Color        *colorBody `json:"color"`
}

type colorBody struct {
	ColorSpace   string               `json:"color-space"`
	DisplayGamut string               `json:"display-gamut"`
	Components   map[string]component `json:"components"`
}

// component is a channel value. Catalogs write components as strings in
// one of three notations: "0.250" (unit float), "0x40" (hex byte) or
// "64" (decimal byte). Plain JSON numbers are taken as unit floats.
type component float64

func (c *component) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '"' {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*c = component(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parseComponent(s)
	if err != nil {
		return err
	}
	*c = component(v)
	return nil
}

func parseComponent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		n, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("component %q: %w", s, err)
		}
		return float64(n) / 255, nil
	case strings.ContainsAny(s, ".eE"):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("component %q: %w", s, err)
		}
		return f, nil
	default:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("component %q: %w", s, err)
		}
		return float64(n) / 255, nil
	}
}

// Decode parses the contents of a color set's Contents.json.
//
// Unknown idiom, gamut and color-space tags decode to their Other values
// instead of failing. Entries without a color body are skipped. Structural
// problems, including unparseable component values, return an error
// wrapping ErrMalformedContents.
func Decode(data []byte) (Definition, error) {
	var doc contentsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("%w: %w", ErrMalformedContents, err)
	}

	def := Definition{Variants: make([]Variant, 0, len(doc.Colors))}
	for _, e := range doc.Colors {
		if e.Color == nil {
			continue
		}
		gamut := e.DisplayGamut
		if gamut == "" {
			gamut = e.Color.DisplayGamut
		}
		def.Variants = append(def.Variants, Variant{
			Idiom: ParseIdiom(e.Idiom),
			Gamut: ParseGamut(gamut),
			Color: e.Color.realize(),
		})
	}
	return def, nil
}

func (b *colorBody) realize() Color {
	space := ParseColorSpace(b.ColorSpace)
	get := func(key string, def float64) float64 {
		if v, ok := b.Components[key]; ok {
			return float64(v)
		}
		return def
	}

	c := Color{Space: space, A: get("alpha", 1)}
	if space.IsGray() {
		w := get("white", 0)
		c.R, c.G, c.B = w, w, w
	} else {
		c.R, c.G, c.B = get("red", 0), get("green", 0), get("blue", 0)
	}
	return c
}
