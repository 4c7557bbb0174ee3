package gesture

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFlingCoversHalfVelocityTimesDuration(t *testing.T) {
	f := NewFling(FlyContext{VelocityX: 1000, VelocityY: -400}, 0.5, nil)

	var sumX, sumY float64
	dx, dy := f.Update(0.25)
	sumX += dx
	sumY += dy
	if f.Done {
		t.Fatal("fling should not be done halfway")
	}
	dx, dy = f.Update(0.25)
	sumX += dx
	sumY += dy

	if !f.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(sumX-250) > 0.01 || math.Abs(sumY+100) > 0.01 {
		t.Errorf("travel = (%f,%f), want (250,-100)", sumX, sumY)
	}
	if x, y := f.Offset(); math.Abs(x-sumX) > 1e-9 || math.Abs(y-sumY) > 1e-9 {
		t.Errorf("Offset = (%f,%f), want (%f,%f)", x, y, sumX, sumY)
	}
	if dx, dy := f.Update(0.1); dx != 0 || dy != 0 {
		t.Error("finished fling should not move")
	}
}

func TestFlingDecelerates(t *testing.T) {
	f := NewFling(FlyContext{VelocityX: 1000}, 1.0, ease.OutQuad)
	first, _ := f.Update(0.1)
	for i := 0; i < 7; i++ {
		f.Update(0.1)
	}
	late, _ := f.Update(0.1)
	if late >= first {
		t.Errorf("late step %f should be shorter than first step %f", late, first)
	}
}

func TestFlingZeroDuration(t *testing.T) {
	f := NewFling(FlyContext{VelocityX: 1000}, 0, nil)
	if !f.Done {
		t.Error("zero-duration fling should be done")
	}
	if dx, dy := f.Update(1); dx != 0 || dy != 0 {
		t.Error("zero-duration fling should not move")
	}
}
