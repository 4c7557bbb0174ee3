package gesture

import "math"

// span is the mean absolute distance of the pointers from the pivot.
type span struct {
	r, rx, ry float64
}

func frameSpan(f *Frame) span {
	var sumX, sumY float64
	for i, p := range f.Pointers {
		if f.Skipped(i) {
			continue
		}
		sumX += math.Abs(p.X - f.Pivot.X)
		sumY += math.Abs(p.Y - f.Pivot.Y)
	}
	rx := sumX / f.DivCount
	ry := sumY / f.DivCount
	return span{r: math.Hypot(rx, ry), rx: rx, ry: ry}
}

// scaleDetector tracks the pinch span of two or more pointers.
type scaleDetector struct {
	spanSlop float64
	listener func(ScaleContext) bool

	inProgress bool
	pivot      Vec2
	lastPivot  Vec2
	span       span
	lastSpan   span
}

func (d *scaleDetector) kind() Kind { return KindScale }

func (d *scaleDetector) onFrame(f *Frame) bool {
	if f.StreamCompleted {
		d.inProgress = false
		return false
	}
	if f.PointerCount() < 2 {
		return false
	}

	s := frameSpan(f)
	switch {
	case f.ConfigChanged:
		d.inProgress = false
		d.pivot = f.Pivot
		d.lastPivot = f.Pivot
		d.span = s
		d.lastSpan = s
	case f.Action == ActionMove:
		d.pivot = f.Pivot
		d.span = s
		if !d.inProgress {
			if math.Abs(d.span.r-d.lastSpan.r) >= d.spanSlop {
				d.inProgress = true
				d.commit()
			}
			return false
		}
		ctx := ScaleContext{
			PivotX:   (d.lastPivot.X + d.pivot.X) / 2,
			PivotY:   (d.lastPivot.Y + d.pivot.Y) / 2,
			Span:     d.span.r,
			SpanX:    d.span.rx,
			SpanY:    d.span.ry,
			PrevSpan: d.lastSpan.r,
		}
		if d.listener(ctx) {
			d.commit()
			return true
		}
	}
	return false
}

func (d *scaleDetector) commit() {
	d.lastPivot = d.pivot
	d.lastSpan = d.span
}

func (d *scaleDetector) reset() {
	d.inProgress = false
}
