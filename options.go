package colorcatalog

import (
	"io/fs"

	"github.com/gogpu/colorcatalog/catalog"
)

// DefaultCatalogName is the catalog a Manager reads when no name is given.
const DefaultCatalogName = "Colors"

// Option configures a Manager during creation.
//
// Example:
//
//	m := colorcatalog.New(
//	    colorcatalog.WithCatalogName("Brand"),
//	    colorcatalog.WithBundle(os.DirFS("Resources")),
//	    colorcatalog.WithResolutionContext(catalog.ResolutionContext{
//	        Idiom: catalog.IdiomPad,
//	        Gamut: catalog.GamutDisplayP3,
//	    }),
//	)
type Option func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	catalogName     string
	bundle          fs.FS
	context         func() catalog.ResolutionContext
	cachingDisabled bool
	pressure        MemoryPressureSource
}

// defaultOptions returns the default manager options.
func defaultOptions() managerOptions {
	return managerOptions{
		catalogName: DefaultCatalogName,
		bundle:      nil, // DefaultBundle at lookup time
		context:     func() catalog.ResolutionContext { return catalog.ResolutionContext{} },
	}
}

// WithCatalogName sets the asset catalog to read. The Manager looks for a
// "<name>.xcassets" directory at the root of its bundle. The name cannot be
// changed after construction.
func WithCatalogName(name string) Option {
	return func(o *managerOptions) {
		o.catalogName = name
	}
}

// WithBundle sets the file system holding the asset catalog.
// See Manager.SetBundle.
func WithBundle(bundle fs.FS) Option {
	return func(o *managerOptions) {
		o.bundle = bundle
	}
}

// WithResolutionContext fixes the device idiom and display gamut used to
// pick variants.
//
// Without this option a Manager resolves for an unspecified idiom on a
// standard-gamut display, so only universal variants are candidates.
func WithResolutionContext(ctx catalog.ResolutionContext) Option {
	return func(o *managerOptions) {
		o.context = func() catalog.ResolutionContext { return ctx }
	}
}

// WithResolutionContextFunc supplies the resolution context from fn, which
// is called once per uncached lookup. Use it when the display can change
// while the process runs.
func WithResolutionContextFunc(fn func() catalog.ResolutionContext) Option {
	return func(o *managerOptions) {
		if fn != nil {
			o.context = fn
		}
	}
}

// WithCachingDisabled starts the Manager with caching turned off.
func WithCachingDisabled() Option {
	return func(o *managerOptions) {
		o.cachingDisabled = true
	}
}

// WithMemoryPressure subscribes the Manager to src. Every memory pressure
// event clears the Manager's cache.
func WithMemoryPressure(src MemoryPressureSource) Option {
	return func(o *managerOptions) {
		o.pressure = src
	}
}
