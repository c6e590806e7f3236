// Package catalog reads color sets from an asset catalog and picks the
// variant that best fits a device.
//
// An asset catalog is a directory tree. Each named color lives in a
// "<Name>.colorset" directory holding a Contents.json file; names may be
// grouped by nesting the color set inside plain directories, giving names
// such as "brand/accents/Highlight".
//
// # Overview
//
// Locate finds and decodes one color set into a Definition, the ordered list
// of its Variants. Resolve then selects a single Variant for a
// ResolutionContext (the device idiom and the display's gamut capability)
// and realizes it as a Color:
//
//	def, err := catalog.Locate(os.DirFS("Colors.xcassets"), "brand/Primary")
//	if err != nil {
//	    return err
//	}
//	c, ok := catalog.Resolve(def, catalog.ResolutionContext{
//	    Idiom: catalog.IdiomPhone,
//	    Gamut: catalog.GamutDisplayP3,
//	})
//
// # Selection
//
// Variants tagged with the context's idiom rank ahead of universal variants;
// variants for any other idiom are never candidates. On a wide-gamut display
// the first Display P3 candidate wins, otherwise the first candidate does.
// Idiom ranking is applied before gamut filtering, so a standard-gamut
// variant for the device's idiom beats a wide-gamut universal variant when
// no idiom-matched P3 variant exists.
//
// Neither Locate nor Resolve caches anything; see the root package's
// Manager for memoized lookups.
package catalog
