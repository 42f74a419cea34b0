package nodal

import "math"

// Primitive is a single solid quad: the unit square mapped through an
// affine transform and filled with a color. Everything the canvas draws
// lowers to primitives, which submission turns into one draw of
// WhitePixel each.
type Primitive struct {
	Transform [6]float64
	Color     Color
}

// Geometry is an ordered list of primitives produced by one frame build.
// It is plain data: comparable in tests and renderable by any backend.
type Geometry struct {
	Primitives []Primitive
}

// Frame accumulates geometry under a mutable affine transform. Translate
// and Scale compose onto the current transform and affect everything drawn
// afterwards; there is no way to un-apply a transform, matching the
// single-pass way the draw code uses it.
type Frame struct {
	size      Vec2
	transform [6]float64
	geometry  Geometry
}

// NewFrame creates a frame for a drawing surface of the given size, with
// the identity transform.
func NewFrame(size Vec2) *Frame {
	return &Frame{size: size, transform: identityTransform}
}

// Size returns the frame's surface size.
func (f *Frame) Size() Vec2 {
	return f.size
}

// Translate composes a translation onto the current transform.
func (f *Frame) Translate(v Vec2) {
	f.transform = multiplyAffine(f.transform, translationMatrix(v))
}

// Scale composes a uniform scale onto the current transform.
func (f *Frame) Scale(factor float64) {
	f.transform = multiplyAffine(f.transform, scaleMatrix(factor))
}

// FillRect fills an axis-aligned rectangle under the current transform.
func (f *Frame) FillRect(r Rect, color Color) {
	f.quad(r.X, r.Y, r.Width, r.Height, color)
}

// StrokeRect outlines an axis-aligned rectangle with four edge quads of
// the given width, centered on the rectangle's edges.
func (f *Frame) StrokeRect(r Rect, color Color, width float64) {
	h := width / 2
	// Top and bottom run the full width including the corner squares.
	f.quad(r.X-h, r.Y-h, r.Width+width, width, color)
	f.quad(r.X-h, r.Y+r.Height-h, r.Width+width, width, color)
	// Left and right fill between them.
	f.quad(r.X-h, r.Y+h, width, r.Height-width, color)
	f.quad(r.X+r.Width-h, r.Y+h, width, r.Height-width, color)
}

// Line draws a straight segment of the given width between two points.
func (f *Frame) Line(from, to Vec2, color Color, width float64) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	sin, cos := dy/length, dx/length
	h := width / 2

	// Unit square mapped to a length x width quad along the segment,
	// centered on the line: columns are the direction and normal vectors.
	local := [6]float64{
		length * cos, length * sin,
		-width * sin, width * cos,
		from.X + h*sin, from.Y - h*cos,
	}
	f.geometry.Primitives = append(f.geometry.Primitives, Primitive{
		Transform: multiplyAffine(f.transform, local),
		Color:     color,
	})
}

// quad emits one axis-aligned rectangle as a primitive.
func (f *Frame) quad(x, y, w, h float64, color Color) {
	local := [6]float64{w, 0, 0, h, x, y}
	f.geometry.Primitives = append(f.geometry.Primitives, Primitive{
		Transform: multiplyAffine(f.transform, local),
		Color:     color,
	})
}

// Geometry returns everything drawn into the frame so far.
func (f *Frame) Geometry() Geometry {
	return f.geometry
}
