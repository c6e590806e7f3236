package catalog

// Idiom is the device class a variant targets.
type Idiom uint8

const (
	// IdiomUnspecified marks a universal variant usable on any device.
	IdiomUnspecified Idiom = iota
	IdiomPhone
	IdiomPad
	IdiomTV
	IdiomCar
	IdiomMac
	IdiomWatch
	IdiomVision
	// IdiomOther is any tag this package does not recognize.
	// It never matches a device.
	IdiomOther
)

var idiomTags = map[string]Idiom{
	"universal": IdiomUnspecified,
	"iphone":    IdiomPhone,
	"ipad":      IdiomPad,
	"tv":        IdiomTV,
	"car":       IdiomCar,
	"mac":       IdiomMac,
	"watch":     IdiomWatch,
	"vision":    IdiomVision,
}

// ParseIdiom maps a Contents.json idiom tag to an Idiom.
// The empty string is universal; unknown tags map to IdiomOther.
func ParseIdiom(tag string) Idiom {
	if tag == "" {
		return IdiomUnspecified
	}
	if i, ok := idiomTags[tag]; ok {
		return i
	}
	return IdiomOther
}

// String returns the Contents.json tag for the idiom.
func (i Idiom) String() string {
	switch i {
	case IdiomUnspecified:
		return "universal"
	case IdiomPhone:
		return "iphone"
	case IdiomPad:
		return "ipad"
	case IdiomTV:
		return "tv"
	case IdiomCar:
		return "car"
	case IdiomMac:
		return "mac"
	case IdiomWatch:
		return "watch"
	case IdiomVision:
		return "vision"
	default:
		return "other"
	}
}

// Gamut is a display color gamut. On a Variant it names the gamut the
// variant was authored for; in a ResolutionContext it names what the
// display can show.
type Gamut uint8

const (
	// GamutUnspecified means no gamut was given.
	GamutUnspecified Gamut = iota
	// GamutSRGB is the standard sRGB gamut.
	GamutSRGB
	// GamutDisplayP3 is the wide Display P3 gamut.
	GamutDisplayP3
	// GamutOther is any tag this package does not recognize.
	GamutOther
)

// ParseGamut maps a Contents.json display-gamut tag to a Gamut.
func ParseGamut(tag string) Gamut {
	switch tag {
	case "":
		return GamutUnspecified
	case "sRGB":
		return GamutSRGB
	case "display-P3":
		return GamutDisplayP3
	default:
		return GamutOther
	}
}

// String returns the Contents.json tag for the gamut.
func (g Gamut) String() string {
	switch g {
	case GamutUnspecified:
		return "unspecified"
	case GamutSRGB:
		return "sRGB"
	case GamutDisplayP3:
		return "display-P3"
	default:
		return "other"
	}
}

// ColorSpace identifies how a variant's components are encoded.
type ColorSpace uint8

const (
	SpaceSRGB ColorSpace = iota
	SpaceDisplayP3
	SpaceExtendedSRGB
	SpaceExtendedLinearSRGB
	SpaceGrayGamma22
	SpaceExtendedGray
	// SpaceOther is an unrecognized color space. Its components are
	// interpreted as sRGB.
	SpaceOther
)

var spaceTags = map[string]ColorSpace{
	"srgb":                 SpaceSRGB,
	"display-p3":           SpaceDisplayP3,
	"extended-srgb":        SpaceExtendedSRGB,
	"extended-linear-srgb": SpaceExtendedLinearSRGB,
	"gray-gamma-22":        SpaceGrayGamma22,
	"extended-gray":        SpaceExtendedGray,
}

// ParseColorSpace maps a Contents.json color-space tag to a ColorSpace.
// The empty string means sRGB.
func ParseColorSpace(tag string) ColorSpace {
	if tag == "" {
		return SpaceSRGB
	}
	if s, ok := spaceTags[tag]; ok {
		return s
	}
	return SpaceOther
}

// String returns the Contents.json tag for the color space.
func (s ColorSpace) String() string {
	for tag, v := range spaceTags {
		if v == s {
			return tag
		}
	}
	return "other"
}

// IsGray reports whether the space carries a single white component.
func (s ColorSpace) IsGray() bool {
	return s == SpaceGrayGamma22 || s == SpaceExtendedGray
}
