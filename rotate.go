package gesture

import "math"

// angleDelta returns bearing - lastBearing folded into (-π, π), so a pointer
// crossing the ±π boundary reports a small step instead of a full turn.
func angleDelta(lastBearing, bearing float64) float64 {
	d := bearing - lastBearing
	if d >= math.Pi {
		return d - 2*math.Pi
	}
	if d <= -math.Pi {
		return d + 2*math.Pi
	}
	return d
}

// rotateDetector tracks the mean angular motion of the pointers around the
// pivot. Bearings are keyed by pointer ID since indices shift when pointers
// join or leave.
type rotateDetector struct {
	rotationSlop float64
	listener     func(RotateContext) bool

	inProgress bool
	rotation   float64
	pivot      Vec2
	lastPivot  Vec2
	bearings   map[int]float64
}

func (d *rotateDetector) kind() Kind { return KindRotate }

func (d *rotateDetector) onFrame(f *Frame) bool {
	if f.StreamCompleted {
		d.inProgress = false
		return false
	}
	if f.PointerCount() < 2 {
		return false
	}

	switch {
	case f.ConfigChanged:
		d.inProgress = false
		d.pivot = f.Pivot
		d.lastPivot = f.Pivot
		d.snapshot(f)
	case f.Action == ActionMove:
		var sum float64
		for i, p := range f.Pointers {
			last, ok := d.bearings[p.ID]
			if !ok {
				continue
			}
			sum += angleDelta(last, f.Bearing(i))
		}
		d.pivot = f.Pivot
		d.rotation = sum / f.DivCount

		if !d.inProgress {
			if math.Abs(d.rotation) >= d.rotationSlop {
				d.inProgress = true
				d.commit(f)
			}
			return false
		}
		ctx := RotateContext{
			PivotX:   (d.lastPivot.X + d.pivot.X) / 2,
			PivotY:   (d.lastPivot.Y + d.pivot.Y) / 2,
			Rotation: d.rotation,
		}
		if d.listener(ctx) {
			d.commit(f)
			return true
		}
	}
	return false
}

// snapshot replaces the stored bearings with those of the frame's
// non-skipped pointers.
func (d *rotateDetector) snapshot(f *Frame) {
	if d.bearings == nil {
		d.bearings = make(map[int]float64, len(f.Pointers))
	}
	clear(d.bearings)
	for i, p := range f.Pointers {
		if f.Skipped(i) {
			continue
		}
		d.bearings[p.ID] = f.Bearing(i)
	}
}

func (d *rotateDetector) commit(f *Frame) {
	d.lastPivot = d.pivot
	d.snapshot(f)
}

func (d *rotateDetector) reset() {
	d.inProgress = false
	d.rotation = 0
	clear(d.bearings)
}
