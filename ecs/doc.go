// Package ecs provides ECS adapters for the gesture recognizer.
//
// The primary adapter is [NewDonburiSink], which bridges recognized
// gestures (tap, double-tap, drag, fly, scale, rotate) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	recognizer.SetEventSink(sink)
//	ecs.SubscribeKind(world, gesture.KindScale, func(w donburi.World, e gesture.GestureEvent) {
//		zoom *= e.Scale
//	})
//
// Pass kinds to NewDonburiSink to publish only those gestures.
//
// Kinds without registered callbacks are accepted once published, so drag,
// scale and rotate deltas stay incremental for ECS-only consumers.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
