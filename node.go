package nodal

// Node is a single rectangular diagram element. Nodes are owned exclusively
// by a Store and mutated only through store operations, so an in-flight
// gesture never holds anything stronger than an ID.
type Node struct {
	// ID is a stable identifier, unique within the owning store.
	ID uint32
	// Bounds is the node's axis-aligned rectangle in world space. No size
	// validation is applied; a node with zero or negative size is simply
	// never hit.
	Bounds Rect
	// Color fills the node body and strokes its outline when unselected.
	Color Color
	// Selected marks the node for a red outline. Selection is per-node, not
	// exclusive; only a press on empty space clears it.
	Selected bool
}

// Position returns the node's top-left corner in world space.
func (n *Node) Position() Vec2 {
	return n.Bounds.Position()
}

// Store is an ordered collection of nodes. Insertion order is both draw
// order and hit priority: FindAt returns the first containing node in
// store order, and the draw pass paints in the same order. The store has
// no remove or reorder operations, so the two can never diverge.
type Store struct {
	nodes  []Node
	nextID uint32
}

// NewStore creates an empty node store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a node with the given bounds and color and returns its ID.
func (s *Store) Add(bounds Rect, color Color) uint32 {
	id := s.nextID
	s.nextID++
	s.nodes = append(s.nodes, Node{ID: id, Bounds: bounds, Color: color})
	return id
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Nodes returns the backing node slice in store order.
// The returned slice MUST NOT be appended to or reordered.
func (s *Store) Nodes() []Node {
	return s.nodes
}

// Get returns a pointer to the node with the given ID, or false if the ID
// does not resolve. The pointer is valid until the next Add.
func (s *Store) Get(id uint32) (*Node, bool) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return &s.nodes[i], true
		}
	}
	return nil, false
}

// FindAt returns the ID of the first node, in store order, whose bounds
// contain the given world-space point. Overlap ties break toward the
// earlier insertion.
func (s *Store) FindAt(world Vec2) (uint32, bool) {
	for i := range s.nodes {
		if s.nodes[i].Bounds.Contains(world.X, world.Y) {
			return s.nodes[i].ID, true
		}
	}
	return 0, false
}

// MoveTo repositions the node's top-left corner. A stale ID is logged and
// reported false; the store is unchanged.
func (s *Store) MoveTo(id uint32, pos Vec2) bool {
	n, ok := s.Get(id)
	if !ok {
		debugLogStaleID("move", id)
		return false
	}
	n.Bounds.X = pos.X
	n.Bounds.Y = pos.Y
	return true
}

// SetSelected sets the node's selection flag. A stale ID is logged and
// reported false; the store is unchanged.
func (s *Store) SetSelected(id uint32, selected bool) bool {
	n, ok := s.Get(id)
	if !ok {
		debugLogStaleID("select", id)
		return false
	}
	n.Selected = selected
	return true
}

// UnselectAll clears the selection flag on every node.
func (s *Store) UnselectAll() {
	for i := range s.nodes {
		s.nodes[i].Selected = false
	}
}
