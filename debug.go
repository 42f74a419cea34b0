package nodal

import (
	"fmt"
	"os"
)

// debugLogStaleID reports a store operation that referenced a node ID no
// longer present. Gesture state can outlive the node it points at; the
// policy is to log and carry on, never to abort the gesture.
func debugLogStaleID(op string, id uint32) {
	_, _ = fmt.Fprintf(os.Stderr, "[nodal] could not %s node with id %d: not found in store\n", op, id)
}
