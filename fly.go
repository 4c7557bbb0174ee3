package gesture

import "math"

// flyDetector reports a fling of the primary pointer when the stream ends.
// It holds a VelocityTracker only between the first frame of a stream and
// the stream's up or cancel.
type flyDetector struct {
	minVelocity float64
	maxVelocity float64
	newTracker  func() VelocityTracker
	listener    func(FlyContext) bool

	tracker VelocityTracker
}

func (d *flyDetector) kind() Kind { return KindFly }

func (d *flyDetector) onFrame(f *Frame) bool {
	if f.Action == ActionDown {
		// A tracker surviving to a new stream missed its release; start over.
		d.release()
	}
	if f.ConfigChanged && d.tracker == nil {
		d.tracker = d.newTracker()
	}
	if d.tracker == nil {
		// Enabled mid-stream: nothing to estimate from until the next config change.
		return false
	}
	if f.StreamCompleted {
		defer d.release()
	}

	d.tracker.AddMovement(f)
	if f.Action != ActionUp {
		return false
	}

	id := f.Pointers[0].ID
	vx, vy := d.tracker.Velocity(id, d.maxVelocity)
	if math.Abs(vx) < d.minVelocity && math.Abs(vy) < d.minVelocity {
		return false
	}
	return d.listener(FlyContext{PointerID: id, VelocityX: vx, VelocityY: vy})
}

// endStream is called by the Recognizer after every up or cancel, whether or
// not this detector ran for that frame.
func (d *flyDetector) endStream() {
	d.release()
}

func (d *flyDetector) release() {
	if d.tracker != nil {
		d.tracker.Release()
		d.tracker = nil
	}
}

func (d *flyDetector) reset() {
	d.release()
}
