package nodal

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ColorSelected is the stroke color for selected nodes.
var ColorSelected = Color{1, 0, 0, 1}

// ColorBackground is the default canvas background, a dark teal.
var ColorBackground = Color{R: 0x04 / 255.0, G: 0x44 / 255.0, B: 0x48 / 255.0, A: 1}

// WhitePixel is a 1x1 white image. Every primitive the canvas emits is an
// affine image of this pixel, so solid geometry needs no texture assets.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// toRGBA converts a Color to a color.Color value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API. Screen-space and world-space vectors share this type; which
// space a value lives in is part of each operation's contract.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. Hit testing and drawing both
// go through this method, so the two can never disagree about edges.
// A rectangle with zero or negative size contains no points.
func (r Rect) Contains(x, y float64) bool {
	return r.Width > 0 && r.Height > 0 &&
		x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Size returns the rectangle's width and height as a Vec2.
func (r Rect) Size() Vec2 {
	return Vec2{r.Width, r.Height}
}

// Position returns the rectangle's top-left corner.
func (r Rect) Position() Vec2 {
	return Vec2{r.X, r.Y}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Status reports whether the canvas consumed an input event. Ignored events
// may be forwarded elsewhere by the host.
type Status uint8

const (
	StatusIgnored  Status = iota // event not consumed; host may dispatch it further
	StatusConsumed               // event consumed by the canvas
)

// EventType identifies a kind of input event delivered by the host.
type EventType uint8

const (
	EventButtonPressed  EventType = iota // a mouse button went down
	EventButtonReleased                  // a mouse button went up
	EventCursorMoved                     // the cursor position changed
	EventWheelScrolled                   // the scroll wheel moved
)

// MessageKind identifies a message the canvas hands back to the host.
type MessageKind uint8

const (
	MessageNodeSelected     MessageKind = iota // a node became selected
	MessageSelectionCleared                    // a press on empty space cleared all selection
)

// Message is an optional result of Update that the host may dispatch into
// its own message loop.
type Message struct {
	Kind   MessageKind
	NodeID uint32 // valid for MessageNodeSelected
}

// InteractionEventType identifies a kind of interaction event for the
// ECS bridge (see EntityStore).
type InteractionEventType uint8

const (
	InteractionNodeSelected     InteractionEventType = iota // node selected by left press
	InteractionSelectionCleared                             // selection cleared by left press on empty space
	InteractionNodeMoved                                    // node repositioned by a drag
	InteractionViewPanned                                   // translation changed by a middle-drag
	InteractionViewZoomed                                   // scaling changed by the wheel
)
