package ecs

import (
	"github.com/saronno/nodal"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for nodal interaction
// events. Subscribe to this in your ECS systems to react to node selection,
// node drags, and view changes.
var InteractionEventType = events.NewEventType[nodal.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) nodal.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event nodal.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
