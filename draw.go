package nodal

// Stroke widths in world units per unit of scaling.
const (
	nodeStrokeWidth = 2.5
	lineStrokeWidth = 5.0
)

// Draw produces the frame's geometry layers for a canvas of the given
// bounds, back to front. The background layer is rebuilt every frame; the
// node layer comes from the render cache and is only rebuilt after an
// invalidating change or a resize.
func (c *Canvas) Draw(bounds Rect) []Geometry {
	size := bounds.Size()

	background := NewFrame(size)
	background.FillRect(Rect{Width: size.X, Height: size.Y}, ColorBackground)

	nodes := c.nodesCache.Draw(size, func(frame *Frame) {
		// Recenter the origin on the viewport center, zoom, then pan.
		// Applied once for the whole layer; Project is its exact inverse.
		frame.Translate(Vec2{size.X / 2, size.Y / 2})
		frame.Scale(c.viewport.Scaling)
		frame.Translate(c.viewport.Translation)

		frame.Line(Vec2{}, Vec2{X: 500}, ColorWhite, lineStrokeWidth*c.viewport.Scaling)

		for i := range c.store.nodes {
			n := &c.store.nodes[i]
			frame.FillRect(n.Bounds, n.Color)
			stroke := n.Color
			if n.Selected {
				stroke = ColorSelected
			}
			frame.StrokeRect(n.Bounds, stroke, nodeStrokeWidth*c.viewport.Scaling)
		}
	})

	return []Geometry{background.Geometry(), nodes}
}
