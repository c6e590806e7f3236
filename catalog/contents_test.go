package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestDecodeVariants(t *testing.T) {
	data := []byte(`{
	  "info": {"version": 1, "author": "xcode"},
	  "colors": [
	    {"idiom": "universal", "color": {"color-space": "srgb",
	      "components": {"red": "1.000", "green": "0x80", "blue": "64", "alpha": "0.500"}}},
	    {"idiom": "iphone", "display-gamut": "display-P3", "color": {"color-space": "display-p3",
	      "components": {"red": 0.25, "green": 0.5, "blue": 0.75}}},
	    {"color": {"color-space": "gray-gamma-22", "components": {"white": "0.300", "alpha": "1"}}}
	  ]
	}`)

	def, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(def.Variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(def.Variants))
	}

	v := def.Variants[0]
	if v.Idiom != IdiomUnspecified || v.Gamut != GamutUnspecified || v.Color.Space != SpaceSRGB {
		t.Errorf("variant 0 tags = %v/%v/%v", v.Idiom, v.Gamut, v.Color.Space)
	}
	wantComponents(t, v.Color, 1, 128.0/255, 64.0/255, 0.5)

	v = def.Variants[1]
	if v.Idiom != IdiomPhone || v.Gamut != GamutDisplayP3 || v.Color.Space != SpaceDisplayP3 {
		t.Errorf("variant 1 tags = %v/%v/%v", v.Idiom, v.Gamut, v.Color.Space)
	}
	wantComponents(t, v.Color, 0.25, 0.5, 0.75, 1)

	v = def.Variants[2]
	if v.Color.Space != SpaceGrayGamma22 {
		t.Errorf("variant 2 space = %v", v.Color.Space)
	}
	// "1" is a decimal byte, not a unit float.
	wantComponents(t, v.Color, 0.3, 0.3, 0.3, 1.0/255)
}

func TestDecodeUnknownTags(t *testing.T) {
	data := []byte(`{"colors": [
	  {"idiom": "ios-marketing", "display-gamut": "rec2020",
	   "color": {"color-space": "lab", "components": {"red": "0.1", "green": "0.2", "blue": "0.3"}}}
	]}`)

	def, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v := def.Variants[0]
	if v.Idiom != IdiomOther {
		t.Errorf("Idiom = %v, want other", v.Idiom)
	}
	if v.Gamut != GamutOther {
		t.Errorf("Gamut = %v, want other", v.Gamut)
	}
	if v.Color.Space != SpaceOther {
		t.Errorf("Space = %v, want other", v.Color.Space)
	}
}

func TestDecodeGamutOnColorBody(t *testing.T) {
	data := []byte(`{"colors": [
	  {"idiom": "universal", "color": {"display-gamut": "display-P3", "components": {"red": "1"}}}
	]}`)

	def, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g := def.Variants[0].Gamut; g != GamutDisplayP3 {
		t.Errorf("Gamut = %v, want display-P3", g)
	}
}

func TestDecodeSkipsEntriesWithoutColor(t *testing.T) {
	def, err := Decode([]byte(`{"colors": [{"idiom": "universal"}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(def.Variants) != 0 {
		t.Errorf("got %d variants, want 0", len(def.Variants))
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{colors`},
		{"colors not a list", `{"colors": {"idiom": "universal"}}`},
		{"bad component", `{"colors": [{"color": {"components": {"red": "zero"}}}]}`},
		{"hex overflow", `{"colors": [{"color": {"components": {"red": "0x1FF"}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrMalformedContents) {
				t.Errorf("Decode error = %v, want ErrMalformedContents", err)
			}
		})
	}
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.000", 0},
		{"1.000", 1},
		{" 0.5 ", 0.5},
		{"0xFF", 1},
		{"0x00", 0},
		{"255", 1},
		{"0", 0},
		{"1e-1", 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseComponent(tt.in)
			if err != nil {
				t.Fatalf("parseComponent(%q): %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("parseComponent(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRealization(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  [4]uint8
	}{
		{"srgb", Color{Space: SpaceSRGB, R: 1, G: 0.6, B: 0, A: 1}, [4]uint8{255, 153, 0, 255}},
		{"extended srgb clamps", Color{Space: SpaceExtendedSRGB, R: 1.4, G: -0.2, B: 0.6, A: 1}, [4]uint8{255, 0, 153, 255}},
		{"linear white", Color{Space: SpaceExtendedLinearSRGB, R: 1, G: 1, B: 1, A: 1}, [4]uint8{255, 255, 255, 255}},
		{"p3 red clamps to srgb red", Color{Space: SpaceDisplayP3, R: 1, A: 1}, [4]uint8{255, 0, 0, 255}},
		{"gray black", Color{Space: SpaceGrayGamma22, A: 1}, [4]uint8{0, 0, 0, 255}},
		{"unknown space as srgb", Color{Space: SpaceOther, R: 0.6, G: 0.6, B: 0.6, A: 0}, [4]uint8{153, 153, 153, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.color.NRGBA()
			got := [4]uint8{n.R, n.G, n.B, n.A}
			if got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorImplementsImageColor(t *testing.T) {
	c := Color{Space: SpaceSRGB, R: 1, G: 1, B: 1, A: 1}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x, want all 0xffff", r, g, b, a)
	}

	sr, sg, sb, sa := Color{Space: SpaceExtendedSRGB, R: 2, G: 0.5, B: -1, A: 1}.SRGB()
	if sr != 1 || sg != 0.5 || sb != 0 || sa != 1 {
		t.Errorf("SRGB() = %v %v %v %v", sr, sg, sb, sa)
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, tag := range []string{"universal", "iphone", "ipad", "tv", "car", "mac", "watch", "vision"} {
		if got := ParseIdiom(tag).String(); got != tag {
			t.Errorf("ParseIdiom(%q).String() = %q", tag, got)
		}
	}
	for _, tag := range []string{"srgb", "display-p3", "extended-srgb", "extended-linear-srgb", "gray-gamma-22", "extended-gray"} {
		if got := ParseColorSpace(tag).String(); got != tag {
			t.Errorf("ParseColorSpace(%q).String() = %q", tag, got)
		}
	}
	if ParseGamut("display-P3").String() != "display-P3" || ParseGamut("sRGB").String() != "sRGB" {
		t.Error("gamut tags do not round-trip")
	}
}

func wantComponents(t *testing.T, c Color, r, g, b, a float64) {
	t.Helper()
	got := [4]float64{c.R, c.G, c.B, c.A}
	want := [4]float64{r, g, b, a}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("components = %v, want %v", got, want)
			return
		}
	}
}
