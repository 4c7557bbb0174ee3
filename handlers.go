package gesture

import (
	"math"
	"time"
)

// --- Handler contexts ---

// TapContext describes a detected tap.
type TapContext struct {
	X, Y float64
}

// DoubleTapContext describes a detected double tap. X and Y are the
// position of the second tap; DeltaX/DeltaY the offset from the first.
type DoubleTapContext struct {
	X, Y           float64
	DeltaX, DeltaY float64
	Elapsed        time.Duration // between the two releases
}

// DragContext describes one drag step. The delta is relative to the last
// accepted step, so a handler that returns false keeps accumulating.
type DragContext struct {
	PivotX, PivotY float64
	DeltaX, DeltaY float64
}

// Distance returns the length of the drag delta.
func (c DragContext) Distance() float64 {
	return math.Hypot(c.DeltaX, c.DeltaY)
}

// FlyContext describes a fling of the primary pointer. Velocities are in
// units per second.
type FlyContext struct {
	PointerID            int
	VelocityX, VelocityY float64
}

// Speed returns the magnitude of the fling velocity.
func (c FlyContext) Speed() float64 {
	return math.Hypot(c.VelocityX, c.VelocityY)
}

// ScaleContext describes one pinch step. Span is the current mean radius of
// the pointers around the pivot, PrevSpan the radius at the last accepted step.
type ScaleContext struct {
	PivotX, PivotY float64
	Span           float64
	SpanX, SpanY   float64
	PrevSpan       float64
}

// ScaleFactor returns Span / PrevSpan, or 1 when PrevSpan is not positive.
func (c ScaleContext) ScaleFactor() float64 {
	if c.PrevSpan > 0 {
		return c.Span / c.PrevSpan
	}
	return 1
}

// RotateContext describes one rotation step. Rotation is in radians,
// counter-clockwise positive, relative to the last accepted step.
type RotateContext struct {
	PivotX, PivotY float64
	Rotation       float64
}

// Degrees returns Rotation in degrees.
func (c RotateContext) Degrees() float64 {
	return c.Rotation * 180 / math.Pi
}

// --- Handler registry ---

type handler[C any] struct {
	id uint32
	fn func(C) bool
}

type handlerRegistry struct {
	tap       []handler[TapContext]
	doubleTap []handler[DoubleTapContext]
	drag      []handler[DragContext]
	fly       []handler[FlyContext]
	scale     []handler[ScaleContext]
	rotate    []handler[RotateContext]
	nextID    uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind Kind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case KindTap:
		h.reg.tap = removeHandler(h.reg.tap, h.id)
	case KindDoubleTap:
		h.reg.doubleTap = removeHandler(h.reg.doubleTap, h.id)
	case KindDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case KindFly:
		h.reg.fly = removeHandler(h.reg.fly, h.id)
	case KindScale:
		h.reg.scale = removeHandler(h.reg.scale, h.id)
	case KindRotate:
		h.reg.rotate = removeHandler(h.reg.rotate, h.id)
	}
}

// removeHandler returns a new slice without id. The old backing array is
// left intact, since invoke may be ranging over it when a handler removes
// itself.
func removeHandler[C any](s []handler[C], id uint32) []handler[C] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[C], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func addHandler[C any](reg *handlerRegistry, s *[]handler[C], kind Kind, fn func(C) bool) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*s = append(*s, handler[C]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, kind: kind}
}

// invoke calls every handler and reports whether any accepted.
func invoke[C any](s []handler[C], ctx C) bool {
	accepted := false
	for _, h := range s {
		if h.fn(ctx) {
			accepted = true
		}
	}
	return accepted
}

// --- Registration ---

// OnTap registers a callback for taps. Returning true accepts the tap.
func (r *Recognizer) OnTap(fn func(TapContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.tap, KindTap, fn)
}

// OnDoubleTap registers a callback for double taps. Returning true accepts
// the pair and lets the second tap start a new pair.
func (r *Recognizer) OnDoubleTap(fn func(DoubleTapContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.doubleTap, KindDoubleTap, fn)
}

// OnDrag registers a callback for drag steps. Returning true commits the
// step so the next delta starts from the current pivot.
func (r *Recognizer) OnDrag(fn func(DragContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.drag, KindDrag, fn)
}

// OnFly registers a callback for flings.
func (r *Recognizer) OnFly(fn func(FlyContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.fly, KindFly, fn)
}

// OnScale registers a callback for pinch steps. Returning true commits the
// current span as the new baseline.
func (r *Recognizer) OnScale(fn func(ScaleContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.scale, KindScale, fn)
}

// OnRotate registers a callback for rotation steps. Returning true commits
// the current bearings as the new baseline.
func (r *Recognizer) OnRotate(fn func(RotateContext) bool) CallbackHandle {
	return addHandler(&r.handlers, &r.handlers.rotate, KindRotate, fn)
}
