package colorcatalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/colorcatalog/cache"
	"github.com/gogpu/colorcatalog/catalog"
)

// Manager looks up named colors in an asset catalog and caches the results.
//
// A Manager is safe for concurrent use. While caching is enabled, concurrent
// first lookups of the same name share a single catalog read.
type Manager struct {
	catalogName string
	context     func() catalog.ResolutionContext

	bundle  atomic.Pointer[bundleRef]
	caching atomic.Bool

	colors *cache.Cache[string, entry]
	flight singleflight.Group
}

// bundleRef boxes an fs.FS so it can be stored in an atomic.Pointer.
type bundleRef struct {
	fsys fs.FS
}

// entry is a cached lookup result. found is false for names that did not
// resolve; those stay cached until the next clear.
type entry struct {
	color catalog.Color
	found bool
}

// New creates a Manager configured by opts.
//
// If opts include WithMemoryPressure, the Manager subscribes to the source
// for the rest of the process lifetime.
func New(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Manager{
		catalogName: o.catalogName,
		context:     o.context,
		colors:      cache.New[string, entry](cache.StringHasher),
	}
	m.bundle.Store(&bundleRef{fsys: o.bundle})
	m.caching.Store(!o.cachingDisabled)

	if o.pressure != nil {
		o.pressure.OnMemoryPressure(m.onMemoryPressure)
	}
	return m
}

var defaultManager = sync.OnceValue(func() *Manager { return New() })

// Default returns a process-wide Manager reading the "Colors" catalog from
// DefaultBundle. It is created on first use.
func Default() *Manager {
	return defaultManager()
}

// CatalogName returns the name of the catalog this Manager reads.
func (m *Manager) CatalogName() string {
	return m.catalogName
}

// Bundle returns the configured bundle, or nil when the Manager uses
// DefaultBundle.
func (m *Manager) Bundle() fs.FS {
	return m.bundle.Load().fsys
}

// SetBundle changes the file system holding the catalog. Pass nil to use
// DefaultBundle. Cached colors are kept; call ClearCache to drop colors read
// from the previous bundle.
func (m *Manager) SetBundle(bundle fs.FS) {
	m.bundle.Store(&bundleRef{fsys: bundle})
}

// CachingEnabled reports whether lookups use the cache.
func (m *Manager) CachingEnabled() bool {
	return m.caching.Load()
}

// SetCachingEnabled turns caching on or off. Turning it off does not clear
// the cache; turning it back on resumes serving whatever was cached before.
func (m *Manager) SetCachingEnabled(enabled bool) {
	m.caching.Store(enabled)
}

// Color returns the color named name, resolved for the Manager's device
// context. The boolean is false if the catalog has no usable color by that
// name, whatever the reason.
//
// Names may contain "/"-separated groups and are matched case-sensitively.
// With caching enabled, the first result for a name, found or not, is
// returned for every later call until the cache is cleared.
func (m *Manager) Color(name string) (catalog.Color, bool) {
	if !m.caching.Load() {
		e := m.lookup(name)
		return e.color, e.found
	}

	if e, ok := m.colors.Get(name); ok {
		return e.color, e.found
	}

	v, _, _ := m.flight.Do(name, func() (any, error) {
		// A flight for this name may have finished since the Get above.
		if e, ok := m.colors.Peek(name); ok {
			return e, nil
		}
		e := m.lookup(name)
		if m.caching.Load() {
			m.colors.Set(name, e)
		}
		return e, nil
	})
	e := v.(entry)
	return e.color, e.found
}

// ClearCache drops every cached color. It is safe to call at any time,
// including while lookups are in progress.
func (m *Manager) ClearCache() {
	m.colors.Clear()
}

// Stats returns statistics for the Manager's cache.
func (m *Manager) Stats() cache.Stats {
	return m.colors.Stats()
}

func (m *Manager) onMemoryPressure() {
	Logger().Info("memory pressure, clearing color cache",
		slog.String("catalog", m.catalogName),
		slog.Int("entries", m.colors.Len()))
	m.ClearCache()
}

// catalogFS returns the catalog directory inside the current bundle.
func (m *Manager) catalogFS() (fs.FS, error) {
	bundle := m.Bundle()
	if bundle == nil {
		var err error
		if bundle, err = DefaultBundle(); err != nil {
			return nil, fmt.Errorf("default bundle: %w", err)
		}
	}
	return fs.Sub(bundle, m.catalogName+".xcassets")
}

// lookup reads and resolves name without touching the cache.
func (m *Manager) lookup(name string) entry {
	log := Logger()

	fsys, err := m.catalogFS()
	if err != nil {
		log.Debug("color catalog unavailable",
			slog.String("catalog", m.catalogName),
			slog.String("name", name),
			slog.Any("err", err))
		return entry{}
	}

	def, err := catalog.Locate(fsys, name)
	if err != nil {
		log.Debug("color not found",
			slog.String("catalog", m.catalogName),
			slog.String("name", name),
			slog.Any("err", err))
		return entry{}
	}

	ctx := m.context()
	c, ok := catalog.Resolve(def, ctx)
	if !ok {
		log.Debug("no variant matches device",
			slog.String("catalog", m.catalogName),
			slog.String("name", name),
			slog.String("idiom", ctx.Idiom.String()),
			slog.Int("variants", len(def.Variants)))
		return entry{}
	}
	return entry{color: c, found: true}
}
