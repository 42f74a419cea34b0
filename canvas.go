package nodal

import (
	"github.com/tanema/gween/ease"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Canvas, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type   InteractionEventType
	NodeID uint32 // valid for node events
	// Position is the node's new top-left corner (InteractionNodeMoved).
	Position Vec2
	// Translation and Scaling are the viewport state after a view event.
	Translation Vec2
	Scaling     float64
}

// interactionKind tags the current pointer gesture.
type interactionKind uint8

const (
	interactionIdle          interactionKind = iota // no gesture in progress
	interactionPanningScreen                        // middle-drag panning the viewport
	interactionPanningNode                          // left-drag moving one node
)

// interaction is the gesture state: a tagged variant with exactly one kind
// active at a time. start holds the translation (PanningScreen) or node
// position (PanningNode) captured when the button went down; cursorStart
// holds the cursor position at the same instant.
type interaction struct {
	kind        interactionKind
	nodeID      uint32
	start       Vec2
	cursorStart Vec2
}

// Canvas is the node-diagram program: it owns the node store, the viewport,
// the gesture state, and the node-layer render cache, and turns host input
// events into pan, zoom, and drag operations.
//
// A Canvas is exclusively owned by a single goroutine; the host delivers
// one event at a time and one draw request per frame, and no method blocks.
type Canvas struct {
	store       *Store
	viewport    *Viewport
	nodesCache  *Cache
	interaction interaction
	entityStore EntityStore

	// OnNodeSelected fires when a left press lands on a node.
	OnNodeSelected func(id uint32)
	// OnSelectionCleared fires when a left press on empty space clears
	// the selection.
	OnSelectionCleared func()
	// OnNodeMoved fires on each drag step that repositions a node.
	OnNodeMoved func(id uint32, pos Vec2)
	// OnViewChanged fires whenever translation or scaling change, whether
	// from a gesture or an animation tick.
	OnViewChanged func(translation Vec2, scaling float64)
}

// NewCanvas creates an empty canvas at the origin with no zoom.
func NewCanvas() *Canvas {
	return &Canvas{
		store:      NewStore(),
		viewport:   NewViewport(),
		nodesCache: NewCache(),
	}
}

// Store returns the canvas's node store. Mutating nodes through the store
// directly bypasses cache invalidation; prefer the Canvas mutators.
func (c *Canvas) Store() *Store {
	return c.store
}

// Viewport returns the canvas's viewport.
func (c *Canvas) Viewport() *Viewport {
	return c.viewport
}

// SetEntityStore sets the optional ECS bridge.
func (c *Canvas) SetEntityStore(store EntityStore) {
	c.entityStore = store
}

// AddNode adds a node and invalidates the node layer.
func (c *Canvas) AddNode(bounds Rect, color Color) uint32 {
	id := c.store.Add(bounds, color)
	c.nodesCache.Clear()
	return id
}

// MoveNode repositions a node and invalidates the node layer.
// A stale ID is logged and reported false.
func (c *Canvas) MoveNode(id uint32, pos Vec2) bool {
	if !c.store.MoveTo(id, pos) {
		return false
	}
	c.nodesCache.Clear()
	return true
}

// SelectNode sets a node's selection flag and invalidates the node layer.
// A stale ID is logged and reported false.
func (c *Canvas) SelectNode(id uint32, selected bool) bool {
	if !c.store.SetSelected(id, selected) {
		return false
	}
	c.nodesCache.Clear()
	return true
}

// UnselectAll clears all selection flags and invalidates the node layer.
func (c *Canvas) UnselectAll() {
	c.store.UnselectAll()
	c.nodesCache.Clear()
}

// FocusNode animates the viewport until the node is centered. A stale ID
// is logged and the view left untouched.
func (c *Canvas) FocusNode(id uint32, duration float32, easeFn ease.TweenFunc) bool {
	n, ok := c.store.Get(id)
	if !ok {
		debugLogStaleID("focus", id)
		return false
	}
	// The visible region is centered on the negated translation.
	center := n.Bounds.Center()
	c.viewport.ScrollTo(Vec2{-center.X, -center.Y}, duration, easeFn)
	return true
}

// Tick advances viewport animations by dt seconds. The host calls it on
// its periodic tick; the canvas assumes nothing about the cadence, and a
// tick with no animation in flight changes nothing.
func (c *Canvas) Tick(dt float32) {
	if c.viewport.Tick(dt) {
		c.nodesCache.Clear()
		c.fireViewChanged()
	}
}

// Update feeds one input event through the interaction state machine.
// bounds is the canvas's viewport-space rectangle and cursor the pointer
// position, if any. The returned Status tells the host whether the event
// was consumed; the optional Message reports selection changes for the
// host's own dispatch.
func (c *Canvas) Update(ev Event, bounds Rect, cursor Cursor) (Status, *Message) {
	// A release ends the gesture unconditionally, even when the cursor
	// position is unknown: the gesture must not survive its button.
	if ev.Type == EventButtonReleased {
		c.interaction = interaction{}
	}

	position, ok := cursor.PositionIn(bounds)
	if !ok {
		return StatusIgnored, nil
	}

	switch ev.Type {
	case EventButtonPressed:
		return c.updatePressed(ev.Button, position, bounds)
	case EventButtonReleased:
		return StatusConsumed, nil
	case EventCursorMoved:
		return c.updateMoved(position)
	case EventWheelScrolled:
		return c.updateScrolled(ev.DeltaY, cursor, bounds)
	}
	return StatusIgnored, nil
}

// updatePressed handles a button press at a bounds-local cursor position.
func (c *Canvas) updatePressed(button MouseButton, position Vec2, bounds Rect) (Status, *Message) {
	switch button {
	case MouseButtonLeft:
		var message *Message
		world := c.viewport.Project(position, bounds.Size())
		if id, hit := c.store.FindAt(world); hit {
			// Resolve the ID again through the store rather than holding
			// the node: gesture state only ever stores IDs.
			if n, found := c.store.Get(id); found {
				c.interaction = interaction{
					kind:        interactionPanningNode,
					nodeID:      id,
					start:       n.Position(),
					cursorStart: position,
				}
				n.Selected = true
				message = &Message{Kind: MessageNodeSelected, NodeID: id}
				if c.OnNodeSelected != nil {
					c.OnNodeSelected(id)
				}
				c.emit(InteractionEvent{Type: InteractionNodeSelected, NodeID: id})
			} else {
				debugLogStaleID("select", id)
			}
		} else {
			c.store.UnselectAll()
			message = &Message{Kind: MessageSelectionCleared}
			if c.OnSelectionCleared != nil {
				c.OnSelectionCleared()
			}
			c.emit(InteractionEvent{Type: InteractionSelectionCleared})
		}
		c.nodesCache.Clear()
		return StatusConsumed, message

	case MouseButtonMiddle:
		c.interaction = interaction{
			kind:        interactionPanningScreen,
			start:       c.viewport.Translation,
			cursorStart: position,
		}
		return StatusConsumed, nil
	}
	return StatusConsumed, nil
}

// updateMoved handles a cursor move during (or outside of) a gesture.
func (c *Canvas) updateMoved(position Vec2) (Status, *Message) {
	switch c.interaction.kind {
	case interactionPanningScreen:
		c.viewport.Pan(c.interaction.start, position.Sub(c.interaction.cursorStart))
		c.nodesCache.Clear()
		c.fireViewChanged()
		c.emit(InteractionEvent{
			Type:        InteractionViewPanned,
			Translation: c.viewport.Translation,
			Scaling:     c.viewport.Scaling,
		})
		return StatusConsumed, nil

	case interactionPanningNode:
		delta := position.Sub(c.interaction.cursorStart).Scale(1 / c.viewport.Scaling)
		pos := c.interaction.start.Add(delta)
		// MoveTo logs stale IDs itself: the gesture stays active but has
		// no effect until released.
		if c.store.MoveTo(c.interaction.nodeID, pos) {
			c.nodesCache.Clear()
			if c.OnNodeMoved != nil {
				c.OnNodeMoved(c.interaction.nodeID, pos)
			}
			c.emit(InteractionEvent{
				Type:     InteractionNodeMoved,
				NodeID:   c.interaction.nodeID,
				Position: pos,
			})
		}
		return StatusConsumed, nil
	}

	// Idle hover: not ours, let the host forward it.
	return StatusIgnored, nil
}

// updateScrolled handles a wheel step, zooming about the cursor.
func (c *Canvas) updateScrolled(deltaY float64, cursor Cursor, bounds Rect) (Status, *Message) {
	offset, _ := cursor.PositionFrom(bounds.Center())
	if c.viewport.ZoomAround(deltaY, offset) {
		c.nodesCache.Clear()
		c.fireViewChanged()
		c.emit(InteractionEvent{
			Type:        InteractionViewZoomed,
			Translation: c.viewport.Translation,
			Scaling:     c.viewport.Scaling,
		})
	}
	return StatusConsumed, nil
}

func (c *Canvas) fireViewChanged() {
	if c.OnViewChanged != nil {
		c.OnViewChanged(c.viewport.Translation, c.viewport.Scaling)
	}
}

func (c *Canvas) emit(event InteractionEvent) {
	if c.entityStore != nil {
		c.entityStore.EmitEvent(event)
	}
}
