// Package nodal is an interactive node-diagram canvas for [Ebitengine].
//
// Nodal renders draggable, selectable rectangular nodes on a pannable,
// zoomable viewport. The core is host-agnostic: it takes pointer events as
// plain values and produces geometry layers as plain data, so it can be
// driven and tested without a window. A ready-made ebiten host is provided
// for applications that just want a diagram on screen.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a fixed-size
// window and game loop for you:
//
//	canvas := nodal.NewCanvas()
//	canvas.AddNode(nodal.Rect{Width: 100, Height: 100}, nodal.ColorBlack)
//	nodal.Run(canvas, nodal.RunConfig{
//		Title: "Diagram", Width: 800, Height: 600,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Canvas.Tick], [Canvas.Update], [Canvas.Draw], and [RenderGeometry]
// directly.
//
// # Interaction model
//
// Left-press on a node selects it and starts a drag; left-press on empty
// space clears the selection. Middle-drag pans the viewport. The scroll
// wheel zooms about the cursor, clamped to [MinScaling, MaxScaling].
// Exactly one gesture is active at a time, and any button release returns
// the canvas to idle.
//
// Positions come in two spaces: world space, the diagram's own unbounded
// coordinate system, and screen space, pixels local to the draw surface.
// [Viewport.Project] maps screen to world and is the exact inverse of the
// draw-time transform, so hit testing always agrees with rendering.
//
// # Render caching
//
// The node layer's geometry is memoized and only rebuilt after a change
// that affects it: a node moved or selected, the view panned or zoomed,
// or the surface resized. The background is redrawn every frame.
//
// # Animation and ECS
//
// [Viewport.ScrollTo], [Viewport.ZoomTo], and [Canvas.FocusNode] animate
// the view with [gween] tweens, advanced by [Canvas.Tick] at whatever
// cadence the host delivers. Interaction events can be published into a
// [Donburi] world through the adapter in nodal/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package nodal
