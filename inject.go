package gesture

import (
	"math"
	"time"
)

// Injector builds synthetic pointer streams for tests, scripted demos and
// replay. Pointer changes made with Press, Move and Release take effect on
// the next Step, which turns them into Events stamped with the injector's
// clock and then advances the clock by FrameTime.
type Injector struct {
	FrameTime time.Duration

	stream PointerStream
	down   []Pointer
	now    time.Duration
	queue  []Event
}

// NewInjector returns an injector running at 60 frames per second.
func NewInjector() *Injector {
	return &Injector{FrameTime: time.Second / 60}
}

// Press puts pointer id down at (x, y). Pressing a pointer that is already
// down moves it.
func (in *Injector) Press(id int, x, y float64) {
	for i := range in.down {
		if in.down[i].ID == id {
			in.down[i].X, in.down[i].Y = x, y
			return
		}
	}
	in.down = append(in.down, Pointer{ID: id, X: x, Y: y})
}

// Move moves pointer id to (x, y). It is the same as Press.
func (in *Injector) Move(id int, x, y float64) {
	in.Press(id, x, y)
}

// Release lifts pointer id.
func (in *Injector) Release(id int) {
	for i := range in.down {
		if in.down[i].ID == id {
			in.down = append(in.down[:i], in.down[i+1:]...)
			return
		}
	}
}

// Step emits the events for the pointer changes since the last step and
// advances the clock by one frame.
func (in *Injector) Step() {
	in.queue = in.stream.Update(in.now, in.down, in.queue)
	in.now += in.FrameTime
}

// Wait advances the clock without emitting events.
func (in *Injector) Wait(d time.Duration) {
	in.now += d
}

// Cancel aborts the current stream with a cancel event.
func (in *Injector) Cancel() {
	in.queue = in.stream.Cancel(in.now, in.queue)
	in.down = in.down[:0]
	in.now += in.FrameTime
}

// Now returns the injector clock.
func (in *Injector) Now() time.Duration {
	return in.now
}

// Pending returns the number of queued events.
func (in *Injector) Pending() int {
	return len(in.queue)
}

// Events drains and returns the queued events.
func (in *Injector) Events() []Event {
	out := in.queue
	in.queue = nil
	return out
}

// Flush feeds all queued events to r.
func (in *Injector) Flush(r *Recognizer) (bool, error) {
	return r.Feed(in.Events())
}

// --- Sequences ---

// Tap queues a press and release of pointer 0 at (x, y). Consumes two frames.
func (in *Injector) Tap(x, y float64) {
	in.Press(0, x, y)
	in.Step()
	in.Release(0)
	in.Step()
}

// DoubleTap queues two taps at (x, y) with gap between the first release
// and the second press.
func (in *Injector) DoubleTap(x, y float64, gap time.Duration) {
	in.Tap(x, y)
	in.Wait(gap)
	in.Tap(x, y)
}

// Drag queues a one-pointer drag: press at (fromX, fromY), frames-2
// linearly interpolated moves, a move to (toX, toY), and a release there
// on the following frame. Minimum frames is 2 (press + final move).
func (in *Injector) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Press(0, fromX, fromY)
	in.Step()
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.Move(0, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
		in.Step()
	}
	in.Move(0, toX, toY)
	in.Step()
	in.Release(0)
	in.Step()
}

// Pinch queues a two-pointer pinch centered on (cx, cy). The pointers sit
// on a horizontal line, each fromSpan away from the center, and move
// linearly until they are toSpan away. Both lift together at the end.
func (in *Injector) Pinch(cx, cy, fromSpan, toSpan float64, frames int) {
	in.twoFinger(frames, func(t float64) (Vec2, Vec2) {
		s := fromSpan + (toSpan-fromSpan)*t
		return Vec2{X: cx - s, Y: cy}, Vec2{X: cx + s, Y: cy}
	})
}

// Rotate queues a two-pointer rotation around (cx, cy). The pointers sit on
// opposite sides of a circle of the given radius and turn from fromAngle to
// toAngle radians, counter-clockwise positive on screen.
func (in *Injector) Rotate(cx, cy, radius, fromAngle, toAngle float64, frames int) {
	in.twoFinger(frames, func(t float64) (Vec2, Vec2) {
		a := fromAngle + (toAngle-fromAngle)*t
		dx, dy := radius*math.Cos(a), -radius*math.Sin(a)
		return Vec2{X: cx + dx, Y: cy + dy}, Vec2{X: cx - dx, Y: cy - dy}
	})
}

// twoFinger places pointers 0 and 1 at pos(0), moves them through pos over
// the intermediate frames, then lifts pointer 1 followed by pointer 0.
func (in *Injector) twoFinger(frames int, pos func(t float64) (Vec2, Vec2)) {
	if frames < 2 {
		frames = 2
	}
	a, b := pos(0)
	in.Press(0, a.X, a.Y)
	in.Step()
	in.Press(1, b.X, b.Y)
	in.Step()
	for i := 1; i < frames; i++ {
		a, b = pos(float64(i) / float64(frames-1))
		in.Move(0, a.X, a.Y)
		in.Move(1, b.X, b.Y)
		in.Step()
	}
	in.Release(1)
	in.Step()
	in.Release(0)
	in.Step()
}
