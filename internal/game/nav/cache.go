package nav

import "slices"

// CacheStats counts path cache lookups since creation.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Stale  uint64
	Size   int
}

// Route is a cached path. Direct marks the straight-line fallback used
// when the target is unreachable from the start cell.
type Route struct {
	Points []Point
	Direct bool
}

type cacheEntry struct {
	route      Route
	generation uint64
}

// PathCache memoizes the last path computed from each start cell.
// Invalidate bumps the generation instead of clearing the map; entries
// written under an older generation read as misses and are evicted lazily.
type PathCache struct {
	entries    map[Cell]cacheEntry
	generation uint64
	stats      CacheStats
}

// NewPathCache creates an empty cache.
func NewPathCache() *PathCache {
	return &PathCache{
		entries: make(map[Cell]cacheEntry, 64),
	}
}

// Generation returns the current generation. It changes on every Invalidate.
func (c *PathCache) Generation() uint64 {
	return c.generation
}

// Invalidate drops every entry.
func (c *PathCache) Invalidate() {
	c.generation++
}

// Get returns a copy of the route cached for start, if current.
func (c *PathCache) Get(start Cell) (Route, bool) {
	e, ok := c.entries[start]
	if !ok {
		c.stats.Misses++
		return Route{}, false
	}
	if e.generation != c.generation {
		delete(c.entries, start)
		c.stats.Stale++
		c.stats.Misses++
		return Route{}, false
	}
	c.stats.Hits++
	return Route{Points: slices.Clone(e.route.Points), Direct: e.route.Direct}, true
}

// Put stores a copy of route for start under the current generation.
func (c *PathCache) Put(start Cell, route Route) {
	c.entries[start] = cacheEntry{
		route:      Route{Points: slices.Clone(route.Points), Direct: route.Direct},
		generation: c.generation,
	}
}

// Remove deletes the entry for start.
func (c *PathCache) Remove(start Cell) {
	delete(c.entries, start)
}

// Len returns the number of stored entries, stale ones included.
func (c *PathCache) Len() int {
	return len(c.entries)
}

// Stats returns lookup counters.
func (c *PathCache) Stats() CacheStats {
	s := c.stats
	s.Size = len(c.entries)
	return s
}
