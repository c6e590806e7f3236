// Package colorcatalog resolves named colors from an asset catalog and
// caches the results.
//
// # Overview
//
// An asset catalog is a "<Name>.xcassets" directory inside a bundle. Each
// named color is a "<Color>.colorset" directory with a Contents.json file
// listing variants for different device idioms and display gamuts. A
// Manager finds the color set for a name, picks the variant that fits the
// current device, and remembers the answer.
//
// # Quick Start
//
//	import "github.com/gogpu/colorcatalog"
//
//	m := colorcatalog.New(
//	    colorcatalog.WithBundle(os.DirFS("Resources")),
//	    colorcatalog.WithResolutionContext(catalog.ResolutionContext{
//	        Idiom: catalog.IdiomPhone,
//	        Gamut: catalog.GamutDisplayP3,
//	    }),
//	)
//
//	if c, ok := m.Color("brand/Primary"); ok {
//	    dc.SetColor(c) // c implements image/color.Color
//	}
//
// # Caching
//
// Every result is cached by name, including "not found". Cached entries are
// dropped only all at once, by ClearCache or by a memory pressure event from
// the source passed to WithMemoryPressure. Caching can be switched off with
// SetCachingEnabled(false), after which every call reads the catalog again;
// switching it back on resumes using the existing entries.
//
// # Errors
//
// Color reports a missing color with a false boolean and nothing more.
// The reason (missing group, missing color set, unreadable or malformed
// Contents.json, no matching variant) is logged at debug level; see
// SetLogger. Use the catalog package directly to get errors.
//
// # Package Layout
//
//   - catalog: Contents.json decoding, Locate and Resolve
//   - cache: the sharded cache backing Manager
//   - cmd/colorsheet: renders a catalog to a PNG swatch sheet
package colorcatalog
