// Package ecs provides ECS adapters for nodal's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges nodal interaction
// events (node selected, node moved, view panned/zoomed) into a [Donburi]
// world as typed events. Subscribe to [InteractionEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	canvas.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
