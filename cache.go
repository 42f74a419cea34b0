package nodal

// Cache memoizes the geometry of one drawn layer. It is an
// invalidate-on-write dirty flag plus the last built geometry, keyed by
// the viewport size it was built for, not a dependency graph. Whoever
// mutates state that affects the layer's output must call Clear before
// the next draw; Draw itself never detects staleness.
type Cache struct {
	geometry Geometry
	size     Vec2
	valid    bool
}

// NewCache creates an empty, stale cache.
func NewCache() *Cache {
	return &Cache{}
}

// Clear marks the cached geometry stale. The next Draw rebuilds.
func (c *Cache) Clear() {
	c.valid = false
}

// Valid reports whether a Draw at the given size would reuse the cache.
func (c *Cache) Valid(size Vec2) bool {
	return c.valid && c.size == size
}

// Draw returns the cached geometry when it is fresh and was built for the
// same size; otherwise it runs draw on a new frame of that size, caches
// the result, and returns it.
func (c *Cache) Draw(size Vec2, draw func(*Frame)) Geometry {
	if c.valid && c.size == size {
		return c.geometry
	}

	frame := NewFrame(size)
	draw(frame)

	c.geometry = frame.Geometry()
	c.size = size
	c.valid = true
	return c.geometry
}
