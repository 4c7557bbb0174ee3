package gesture

import (
	"fmt"
	"time"
)

// detector is one gesture state machine. onFrame reports whether the
// gesture fired and was accepted.
type detector interface {
	kind() Kind
	onFrame(f *Frame) bool
}

// streamScoped detectors hold a resource for the length of a stream and
// must give it up when the stream ends, even if they were not evaluated.
type streamScoped interface {
	endStream()
}

type resetter interface {
	reset()
}

// Recognizer turns raw pointer events into gestures. It is not safe for
// concurrent use; call ProcessEvent from the goroutine that receives input.
type Recognizer struct {
	policy    policy
	handlers  handlerRegistry
	detectors []detector
	sink      EventSink
	debug     bool
	now       time.Duration // time of the frame being dispatched
}

// NewRecognizer creates a Recognizer with the six detectors in their fixed
// order: tap, double-tap, rotate, scale, drag, fly.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	newTracker := cfg.NewVelocityTracker
	if newTracker == nil {
		newTracker = NewVelocityTracker
	}

	r := &Recognizer{}
	r.policy.enabled = NewKindSet(cfg.Gestures...)
	r.detectors = []detector{
		&tapDetector{
			slopSquare: cfg.TapSlop * cfg.TapSlop,
			listener:   r.fireTap,
		},
		&doubleTapDetector{
			timeout:    cfg.DoubleTapTimeout,
			slopSquare: cfg.DoubleTapSlop * cfg.DoubleTapSlop,
			listener:   r.fireDoubleTap,
		},
		&rotateDetector{
			rotationSlop: cfg.RotationSlop,
			listener:     r.fireRotate,
		},
		&scaleDetector{
			spanSlop: cfg.ScaleSpanSlop,
			listener: r.fireScale,
		},
		&dragDetector{
			slopSquare: cfg.DragSlop * cfg.DragSlop,
			listener:   r.fireDrag,
		},
		&flyDetector{
			minVelocity: cfg.MinFlingVelocity,
			maxVelocity: cfg.MaxFlingVelocity,
			newTracker:  newTracker,
			listener:    r.fireFly,
		},
	}
	return r, nil
}

// ProcessEvent runs one raw event through every enabled, unskipped detector.
// It reports whether the event was handled: always for down and
// pointer-down, otherwise when some gesture fired and was accepted.
// An event with an unknown action or an unusable pointer list is rejected
// with an error and leaves all state untouched.
func (r *Recognizer) ProcessEvent(ev Event) (bool, error) {
	f, err := buildFrame(ev)
	if err != nil {
		if r.debug {
			debugLogRejected(ev, err)
		}
		return false, err
	}
	r.now = f.Time

	handled := f.Action == ActionDown || f.Action == ActionPointerDown
	for _, d := range r.detectors {
		if r.policy.shouldEvaluate(d.kind()) {
			if d.onFrame(&f) {
				handled = true
			}
		}
	}

	if f.StreamCompleted {
		for _, d := range r.detectors {
			if s, ok := d.(streamScoped); ok {
				s.endStream()
			}
		}
		r.policy.skipped.Clear()
	}
	return handled, nil
}

// Feed processes events in order and reports whether any was handled. It
// stops at the first invalid event.
func (r *Recognizer) Feed(events []Event) (bool, error) {
	handled := false
	for i, ev := range events {
		h, err := r.ProcessEvent(ev)
		if err != nil {
			return handled, fmt.Errorf("gesture: event %d: %w", i, err)
		}
		handled = handled || h
	}
	return handled, nil
}

// Reset abandons any in-flight detection as if the stream was cancelled,
// and clears all skips. Enabled gestures and handlers are kept.
func (r *Recognizer) Reset() {
	for _, d := range r.detectors {
		if s, ok := d.(resetter); ok {
			s.reset()
		}
	}
	r.policy.skipped.Clear()
}

// SetEventSink mirrors every fired gesture to sink. Pass nil to detach.
// For kinds without handlers, an attached sink accepts the detection.
func (r *Recognizer) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebug enables logging of fired gestures to stderr.
func (r *Recognizer) SetDebug(enabled bool) {
	r.debug = enabled
}

// --- Dispatch ---

func (r *Recognizer) emit(ev GestureEvent, handlerCount int) bool {
	ev.Time = r.now
	if handlerCount == 0 && r.sink != nil {
		ev.Accepted = true
	}
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
	if r.debug {
		debugLogGesture(ev)
	}
	return ev.Accepted
}

func (r *Recognizer) fireTap(ctx TapContext) bool {
	accepted := invoke(r.handlers.tap, ctx)
	return r.emit(GestureEvent{Kind: KindTap, Accepted: accepted, X: ctx.X, Y: ctx.Y}, len(r.handlers.tap))
}

func (r *Recognizer) fireDoubleTap(ctx DoubleTapContext) bool {
	accepted := invoke(r.handlers.doubleTap, ctx)
	return r.emit(GestureEvent{
		Kind: KindDoubleTap, Accepted: accepted,
		X: ctx.X, Y: ctx.Y, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY, Elapsed: ctx.Elapsed,
	}, len(r.handlers.doubleTap))
}

func (r *Recognizer) fireDrag(ctx DragContext) bool {
	accepted := invoke(r.handlers.drag, ctx)
	return r.emit(GestureEvent{
		Kind: KindDrag, Accepted: accepted,
		X: ctx.PivotX, Y: ctx.PivotY, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	}, len(r.handlers.drag))
}

func (r *Recognizer) fireFly(ctx FlyContext) bool {
	accepted := invoke(r.handlers.fly, ctx)
	return r.emit(GestureEvent{
		Kind: KindFly, Accepted: accepted,
		PointerID: ctx.PointerID, VelocityX: ctx.VelocityX, VelocityY: ctx.VelocityY,
	}, len(r.handlers.fly))
}

func (r *Recognizer) fireScale(ctx ScaleContext) bool {
	accepted := invoke(r.handlers.scale, ctx)
	return r.emit(GestureEvent{
		Kind: KindScale, Accepted: accepted,
		X: ctx.PivotX, Y: ctx.PivotY, Scale: ctx.ScaleFactor(), Span: ctx.Span,
	}, len(r.handlers.scale))
}

func (r *Recognizer) fireRotate(ctx RotateContext) bool {
	accepted := invoke(r.handlers.rotate, ctx)
	return r.emit(GestureEvent{
		Kind: KindRotate, Accepted: accepted,
		X: ctx.PivotX, Y: ctx.PivotY, Rotation: ctx.Rotation,
	}, len(r.handlers.rotate))
}
