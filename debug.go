package gesture

import (
	"fmt"
	"os"
)

// debugLogGesture prints one fired gesture to stderr. Only called when
// Recognizer.debug is true.
func debugLogGesture(ev GestureEvent) {
	var detail string
	switch ev.Kind {
	case KindTap:
		detail = fmt.Sprintf("x: %.1f, y: %.1f", ev.X, ev.Y)
	case KindDoubleTap:
		detail = fmt.Sprintf("dx: %.1f, dy: %.1f, elapsed: %v", ev.DeltaX, ev.DeltaY, ev.Elapsed)
	case KindDrag:
		detail = fmt.Sprintf("dx: %.1f, dy: %.1f", ev.DeltaX, ev.DeltaY)
	case KindFly:
		detail = fmt.Sprintf("vx: %.1f, vy: %.1f", ev.VelocityX, ev.VelocityY)
	case KindScale:
		detail = fmt.Sprintf("scale: %.3f, pivot: (%.1f, %.1f)", ev.Scale, ev.X, ev.Y)
	case KindRotate:
		detail = fmt.Sprintf("rotation: %.3f, pivot: (%.1f, %.1f)", ev.Rotation, ev.X, ev.Y)
	}
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] %s at %v | %s | accepted: %v\n",
		ev.Kind, ev.Time, detail, ev.Accepted)
}

// debugLogRejected prints an event the recognizer refused.
func debugLogRejected(ev Event, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[gesture] rejected %s with %d pointers: %v\n",
		ev.Action, len(ev.Pointers), err)
}
