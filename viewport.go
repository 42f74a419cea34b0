package nodal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scaling bounds for the viewport. Scaling can never leave this range, so
// divisions by the scale factor are always safe.
const (
	MinScaling = 0.1
	MaxScaling = 2.0
)

// wheelZoomRate converts a wheel delta into a relative scale step:
// one wheel line changes the scale factor by 1/30 of its current value.
const wheelZoomRate = 30.0

// scrollAnim holds active scroll-to tweens for the translation X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the camera state of the canvas: a world-space pan offset and a
// clamped scale factor. The visible region is centered on the negated
// translation, so a zero translation looks at the world origin.
type Viewport struct {
	// Translation is the world-space pan offset. Unconstrained.
	Translation Vec2
	// Scaling is the zoom factor, always within [MinScaling, MaxScaling].
	Scaling float64

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
	zoomDone    bool
}

// NewViewport creates a viewport at the origin with no zoom.
func NewViewport() *Viewport {
	return &Viewport{Scaling: 1.0}
}

// VisibleRegion computes the world-space rectangle visible through a canvas
// of the given size.
func (v *Viewport) VisibleRegion(size Vec2) Rect {
	width := size.X / v.Scaling
	height := size.Y / v.Scaling

	return Rect{
		X:      -v.Translation.X - width/2,
		Y:      -v.Translation.Y - height/2,
		Width:  width,
		Height: height,
	}
}

// viewMatrix returns the world-to-screen affine for a canvas of the given
// size: recenter on the canvas center, zoom, then pan. The draw pass applies
// the same three steps to the node layer.
func (v *Viewport) viewMatrix(size Vec2) [6]float64 {
	m := multiplyAffine(translationMatrix(Vec2{size.X / 2, size.Y / 2}), scaleMatrix(v.Scaling))
	return multiplyAffine(m, translationMatrix(v.Translation))
}

// Project maps a screen-space position (local to a canvas of the given size)
// to world space by inverting the draw-time transform, which keeps hit
// testing consistent with rendering. Scaling is clamped away from zero, so
// the view matrix is never singular.
func (v *Viewport) Project(position, size Vec2) Vec2 {
	x, y := transformPoint(invertAffine(v.viewMatrix(size)), position.X, position.Y)
	return Vec2{x, y}
}

// WorldToScreen maps a world-space point back to screen space, inverting
// Project for the same canvas size.
func (v *Viewport) WorldToScreen(world, size Vec2) Vec2 {
	x, y := transformPoint(v.viewMatrix(size), world.X, world.Y)
	return Vec2{x, y}
}

// Pan sets the translation to start + delta/scaling, where delta is a
// screen-space cursor displacement captured during a pan gesture.
func (v *Viewport) Pan(start, delta Vec2) {
	v.Translation = start.Add(delta.Scale(1 / v.Scaling))
}

// ZoomAround applies one wheel step of deltaY lines, keeping the world point
// under the cursor fixed on screen. cursorFromCenter is the cursor's offset
// from the canvas center. Reports whether the viewport changed; a step that
// would push the scaling outside its bounds in the direction it is already
// clamped changes nothing.
func (v *Viewport) ZoomAround(deltaY float64, cursorFromCenter Vec2) bool {
	if !(deltaY < 0 && v.Scaling > MinScaling || deltaY > 0 && v.Scaling < MaxScaling) {
		return false
	}

	old := v.Scaling
	v.Scaling = clampScaling(v.Scaling * (1 + deltaY/wheelZoomRate))

	// Re-center so the point under the cursor stays fixed.
	factor := v.Scaling - old
	v.Translation = v.Translation.Sub(Vec2{
		X: cursorFromCenter.X * factor / (old * old),
		Y: cursorFromCenter.Y * factor / (old * old),
	})
	return true
}

// ScrollTo animates the translation to the given value over duration seconds.
func (v *Viewport) ScrollTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.Translation.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(v.Translation.Y), float32(target.Y), duration, easeFn),
	}
}

// ZoomTo animates the scaling to the given level over duration seconds.
// The target is clamped to [MinScaling, MaxScaling] up front, so the scaling
// invariant holds at every step of the tween.
func (v *Viewport) ZoomTo(level float64, duration float32, easeFn ease.TweenFunc) {
	level = clampScaling(level)
	v.zoomTween = gween.New(float32(v.Scaling), float32(level), duration, easeFn)
	v.zoomDone = false
}

// Tick advances active scroll and zoom animations by dt seconds and reports
// whether either moved the viewport. With no animation running it is a no-op.
func (v *Viewport) Tick(dt float32) bool {
	changed := false

	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.Translation.X = float64(val)
			v.scrollTween.doneX = done
			changed = true
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Translation.Y = float64(val)
			v.scrollTween.doneY = done
			changed = true
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	if v.zoomTween != nil && !v.zoomDone {
		val, done := v.zoomTween.Update(dt)
		v.Scaling = clampScaling(float64(val))
		v.zoomDone = done
		changed = true
		if done {
			v.zoomTween = nil
		}
	}

	return changed
}

// Animating reports whether a scroll or zoom animation is in flight.
func (v *Viewport) Animating() bool {
	return v.scrollTween != nil || v.zoomTween != nil
}

func clampScaling(s float64) float64 {
	if s < MinScaling {
		return MinScaling
	}
	if s > MaxScaling {
		return MaxScaling
	}
	return s
}
