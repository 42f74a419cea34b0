package nodal

// Event is a single pointer input delivered by the host. A flat tagged
// struct is used rather than an interface hierarchy: events are small,
// closed, and passed by value on the hot path.
type Event struct {
	Type   EventType
	Button MouseButton // valid for EventButtonPressed and EventButtonReleased
	DeltaY float64     // valid for EventWheelScrolled, in wheel lines
}

// ButtonPressed builds a button-press event.
func ButtonPressed(b MouseButton) Event {
	return Event{Type: EventButtonPressed, Button: b}
}

// ButtonReleased builds a button-release event.
func ButtonReleased(b MouseButton) Event {
	return Event{Type: EventButtonReleased, Button: b}
}

// CursorMoved builds a cursor-move event. The position travels in the
// Cursor argument to Update, not in the event itself.
func CursorMoved() Event {
	return Event{Type: EventCursorMoved}
}

// WheelScrolled builds a wheel event with the given vertical delta in lines.
// Positive deltas zoom in.
func WheelScrolled(deltaY float64) Event {
	return Event{Type: EventWheelScrolled, DeltaY: deltaY}
}

// Cursor is the pointer position accompanying an event, or its absence when
// the pointer is outside the host window.
type Cursor struct {
	Position  Vec2
	Available bool
}

// CursorAt builds an available cursor at the given screen position.
func CursorAt(x, y float64) Cursor {
	return Cursor{Position: Vec2{x, y}, Available: true}
}

// CursorUnavailable is the cursor value for events with no known position.
var CursorUnavailable = Cursor{}

// PositionIn returns the cursor position relative to the top-left of
// bounds, or false when the cursor is unavailable or outside bounds.
func (c Cursor) PositionIn(bounds Rect) (Vec2, bool) {
	if !c.Available || !bounds.Contains(c.Position.X, c.Position.Y) {
		return Vec2{}, false
	}
	return c.Position.Sub(bounds.Position()), true
}

// PositionFrom returns the cursor position relative to an arbitrary point,
// or false when the cursor is unavailable.
func (c Cursor) PositionFrom(point Vec2) (Vec2, bool) {
	if !c.Available {
		return Vec2{}, false
	}
	return c.Position.Sub(point), true
}
