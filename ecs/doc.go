// Package ecs provides ECS adapters for tween's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges tween events (start,
// restart, stop, loop, complete) into a [Donburi] world as typed events.
// Subscribe to [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
