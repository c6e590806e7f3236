// Package cache provides a generic, sharded, all-or-nothing cache.
//
// Entries are never evicted individually: a cache grows until Clear drops
// every entry at once. This suits memoization of small, bounded key spaces
// such as named colors in an asset catalog, where recomputation is cheap but
// should not be repeated on every access.
//
//	c := cache.New[string, int](cache.StringHasher)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use. Keys are spread over 16 shards, each
// guarded by its own RWMutex, so readers of different keys rarely contend.
// A Cache must not be copied after creation (it contains mutexes).
package cache
