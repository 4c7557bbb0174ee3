package gesture

import (
	"math"
	"testing"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		name        string
		last, now   float64
		wantDegrees float64
	}{
		{"small ccw", 10, 20, 10},
		{"small cw", 20, 10, -10},
		{"wrap positive", 178, -179, 3},
		{"wrap negative", -178, 179, -3},
		{"no motion", 90, 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := angleDelta(deg(tt.last), deg(tt.now))
			if !approx(got, deg(tt.wantDegrees), 1e-9) {
				t.Errorf("angleDelta(%v°, %v°) = %v°, want %v°", tt.last, tt.now, got*180/math.Pi, tt.wantDegrees)
			}
		})
	}
}

func TestRotate_CounterClockwise(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	var got []RotateContext
	r.OnRotate(func(ctx RotateContext) bool {
		got = append(got, ctx)
		return true
	})

	// Six moves of 20°; the first crosses the 10° slop.
	in := NewInjector()
	in.Rotate(100, 100, 50, 0, deg(120), 7)
	flush(t, r, in)

	if len(got) != 5 {
		t.Fatalf("expected 5 rotate steps, got %d", len(got))
	}
	for i, ctx := range got {
		if !approx(ctx.Degrees(), 20, 1e-6) {
			t.Errorf("step %d: %v°, want 20°", i, ctx.Degrees())
		}
		if !approx(ctx.PivotX, 100, 1e-9) || !approx(ctx.PivotY, 100, 1e-9) {
			t.Errorf("step %d: pivot (%v,%v), want (100,100)", i, ctx.PivotX, ctx.PivotY)
		}
	}
}

func TestRotate_Clockwise(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	var total float64
	r.OnRotate(func(ctx RotateContext) bool {
		total += ctx.Rotation
		return true
	})

	in := NewInjector()
	in.Rotate(100, 100, 50, 0, deg(-120), 7)
	flush(t, r, in)

	if !approx(total, deg(-100), 1e-6) {
		t.Errorf("total rotation = %v°, want -100°", total*180/math.Pi)
	}
}

func TestRotate_AcrossBoundary(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	var got []float64
	r.OnRotate(func(ctx RotateContext) bool {
		got = append(got, ctx.Degrees())
		return true
	})

	// Pointer 0 goes 150° → 170° → 190° → 210°, crossing ±180°.
	in := NewInjector()
	in.Rotate(0, 0, 40, deg(150), deg(210), 4)
	flush(t, r, in)

	if len(got) != 2 {
		t.Fatalf("expected 2 rotate steps, got %v", got)
	}
	for i, d := range got {
		if !approx(d, 20, 1e-6) {
			t.Errorf("step %d: %v°, want 20°", i, d)
		}
	}
}

func TestRotate_Declined(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	var got []float64
	r.OnRotate(func(ctx RotateContext) bool {
		got = append(got, ctx.Degrees())
		return false
	})

	in := NewInjector()
	in.Rotate(0, 0, 40, 0, deg(80), 5)
	flush(t, r, in)

	// Committed once at 20°; each declined step grows from there.
	want := []float64{20, 40, 60}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !approx(got[i], want[i], 1e-6) {
			t.Errorf("step %d: %v°, want %v°", i, got[i], want[i])
		}
	}
}

func TestRotate_PinchHasNoRotation(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	fired := false
	r.OnRotate(func(RotateContext) bool { fired = true; return true })

	in := NewInjector()
	in.Pinch(100, 100, 20, 200, 10)
	flush(t, r, in)
	if fired {
		t.Error("straight pinch should not rotate")
	}
}

func TestRotate_ResetClearsBearings(t *testing.T) {
	r := newTestRecognizer(t, KindRotate)
	d := findDetector[*rotateDetector](r)

	process(t, r, Event{Action: ActionDown, Pointers: pts(0, 0)})
	process(t, r, Event{Action: ActionPointerDown, Pointers: pts(0, 0, 10, 0), ActionIndex: 1})
	if len(d.bearings) != 2 {
		t.Fatalf("expected 2 bearings, got %d", len(d.bearings))
	}
	r.Reset()
	if len(d.bearings) != 0 || d.inProgress {
		t.Error("Reset should clear rotation state")
	}
}
