package gesture

import "time"

// tapMark is one recorded release.
type tapMark struct {
	set   bool
	time  time.Duration
	pivot Vec2
}

// doubleTapDetector pairs consecutive releases. The pair slides: once a
// second release has been evaluated it becomes the first release of the
// next pair, unless the handler declined, in which case the first release
// is kept and the second dropped.
//
// A pair that is too slow or too far apart also slides, so a stale first
// tap never blocks the next two quick taps from pairing.
type doubleTapDetector struct {
	timeout    time.Duration
	slopSquare float64
	listener   func(DoubleTapContext) bool

	first  tapMark
	second tapMark
}

func (d *doubleTapDetector) kind() Kind { return KindDoubleTap }

func (d *doubleTapDetector) onFrame(f *Frame) bool {
	// Detect on release so moving the fingers away can still cancel.
	if f.Action != ActionUp {
		return false
	}
	mark := tapMark{set: true, time: f.Time, pivot: f.Pivot}
	if !d.first.set {
		d.first = mark
		return false
	}
	d.second = mark

	dx := d.second.pivot.X - d.first.pivot.X
	dy := d.second.pivot.Y - d.first.pivot.Y
	elapsed := d.second.time - d.first.time
	if elapsed < 0 || elapsed > d.timeout || dx*dx+dy*dy > d.slopSquare {
		d.first = d.second
		d.second = tapMark{}
		return false
	}

	ctx := DoubleTapContext{
		X:       d.second.pivot.X,
		Y:       d.second.pivot.Y,
		DeltaX:  dx,
		DeltaY:  dy,
		Elapsed: elapsed,
	}
	accepted := d.listener(ctx)
	if accepted {
		d.first = d.second
	}
	d.second = tapMark{}
	return accepted
}

func (d *doubleTapDetector) reset() {
	d.first = tapMark{}
	d.second = tapMark{}
}
