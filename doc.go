// Package gesture recognizes multi-touch gestures from a raw stream of pointer
// events.
//
// A [Recognizer] runs six independent detectors over every event: tap,
// double-tap, drag, fly (fling), scale (pinch) and rotate. Each event is
// reduced once to a shared [Frame] (action, pointers, pivot, skipped
// pointer) that every enabled detector reads. Detections are reported to
// per-gesture callbacks; a callback returns true to accept the result,
// which commits the detector's baseline, or false to keep accumulating
// from the previous baseline.
//
// # Quick start
//
//	rec, err := gesture.NewRecognizer(gesture.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	rec.OnDrag(func(ctx gesture.DragContext) bool {
//		box.X += ctx.DeltaX
//		box.Y += ctx.DeltaY
//		return true
//	})
//	rec.OnScale(func(ctx gesture.ScaleContext) bool {
//		box.Zoom *= ctx.ScaleFactor()
//		return true
//	})
//
//	// per input event:
//	handled, err := rec.ProcessEvent(ev)
//
// # Input
//
// Hosts that deliver discrete touch events build [Event] values directly.
// Polling hosts use a [PointerStream], which diffs "pointers currently
// down" snapshots into events; [EbitenSource] does this for [Ebitengine]
// and package tcellsource for terminal mice. [Injector] and [TestRunner]
// produce synthetic streams.
//
// # Enabling and skipping
//
// [Recognizer.Enable] and [Recognizer.Disable] persist until changed.
// [Recognizer.Skip] suppresses gestures only until the current stream ends
// with an up or cancel event. Tap and fly are disabled by default.
//
// # Configuration
//
// Thresholds live in [Config]; [LoadConfig] reads them from TOML:
//
//	tap_slop = 8.0
//	double_tap_timeout = "300ms"
//	rotation_slop = 0.1745
//	gestures = ["double-tap", "drag", "scale", "rotate", "fly"]
//
// # Animation
//
// [Fling] turns a fly gesture into an eased deceleration (via [gween]).
// Detected gestures can also be mirrored to an ECS world through an
// [EventSink]; see the gesture/ecs module for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package gesture
