package gesture

// tapDetector fires when a stream ends close to where it started.
type tapDetector struct {
	slopSquare float64
	listener   func(TapContext) bool

	pivot     Vec2
	lastPivot Vec2
}

func (d *tapDetector) kind() Kind { return KindTap }

func (d *tapDetector) onFrame(f *Frame) bool {
	switch f.Action {
	case ActionDown:
		d.pivot = f.Pivot
		d.lastPivot = f.Pivot
	case ActionUp:
		d.pivot = f.Pivot
		dx := d.pivot.X - d.lastPivot.X
		dy := d.pivot.Y - d.lastPivot.Y
		if dx*dx+dy*dy <= d.slopSquare {
			ctx := TapContext{
				X: (d.lastPivot.X + d.pivot.X) / 2,
				Y: (d.lastPivot.Y + d.pivot.Y) / 2,
			}
			if d.listener(ctx) {
				d.lastPivot = d.pivot
				return true
			}
		}
	}
	return false
}
