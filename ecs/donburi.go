package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for recognized gestures.
// Subscribe to this in your ECS systems to receive taps, drags, pinches and
// the rest.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiSink struct {
	world donburi.World
	kinds gesture.KindSet
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Gestures
// are published to GestureEventType and can be consumed with
// events.Subscribe and ProcessEvents. When kinds are given, only those
// gestures are published; with none, every gesture is.
//
// A recognizer with a sink attached treats kinds without handlers as
// accepted, so filtered-out kinds still commit their baselines.
func NewDonburiSink(world donburi.World, kinds ...gesture.Kind) gesture.EventSink {
	s := &donburiSink{world: world, kinds: gesture.NewKindSet(kinds...)}
	if len(kinds) == 0 {
		s.kinds = gesture.AllKinds()
	}
	return s
}

func (s *donburiSink) EmitEvent(event gesture.GestureEvent) {
	if !s.kinds.Has(event.Kind) {
		return
	}
	GestureEventType.Publish(s.world, event)
}

// SubscribeKind registers fn for gestures of one kind. Rejected detections
// are delivered too; check GestureEvent.Accepted when it matters.
func SubscribeKind(world donburi.World, kind gesture.Kind, fn func(donburi.World, gesture.GestureEvent)) {
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		if e.Kind == kind {
			fn(w, e)
		}
	})
}
