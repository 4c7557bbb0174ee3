package gesture

// dragDetector tracks pivot translation. Deltas are incremental: each
// accepted step moves the baseline to the current pivot.
type dragDetector struct {
	slopSquare float64
	listener   func(DragContext) bool

	inProgress bool
	pivot      Vec2
	lastPivot  Vec2
}

func (d *dragDetector) kind() Kind { return KindDrag }

func (d *dragDetector) onFrame(f *Frame) bool {
	switch {
	case f.ConfigChanged:
		// A pointer joined or left: restart tracking from here.
		d.inProgress = false
		d.pivot = f.Pivot
		d.lastPivot = f.Pivot
	case f.Action == ActionMove:
		d.pivot = f.Pivot
		if !d.inProgress {
			dx := d.pivot.X - d.lastPivot.X
			dy := d.pivot.Y - d.lastPivot.Y
			if dx*dx+dy*dy >= d.slopSquare {
				d.inProgress = true
				d.lastPivot = d.pivot
			}
			return false
		}
		ctx := DragContext{
			PivotX: d.pivot.X,
			PivotY: d.pivot.Y,
			DeltaX: d.pivot.X - d.lastPivot.X,
			DeltaY: d.pivot.Y - d.lastPivot.Y,
		}
		if d.listener(ctx) {
			d.lastPivot = d.pivot
			return true
		}
	case f.StreamCompleted:
		d.inProgress = false
	}
	return false
}

func (d *dragDetector) reset() {
	d.inProgress = false
}
