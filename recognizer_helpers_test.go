package gesture

import (
	"math"
	"testing"
	"time"
)

// newTestRecognizer returns a recognizer with default thresholds and only
// the given kinds enabled.
func newTestRecognizer(t *testing.T, kinds ...Kind) *Recognizer {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Gestures = kinds
	r, err := NewRecognizer(cfg)
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	return r
}

func newTestRecognizerConfig(t *testing.T, cfg Config) *Recognizer {
	t.Helper()
	r, err := NewRecognizer(cfg)
	if err != nil {
		t.Fatalf("NewRecognizer: %v", err)
	}
	return r
}

// pts builds pointers with IDs 0, 1, ... from x, y pairs.
func pts(xy ...float64) []Pointer {
	out := make([]Pointer, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Pointer{ID: i / 2, X: xy[i], Y: xy[i+1]})
	}
	return out
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func process(t *testing.T, r *Recognizer, ev Event) bool {
	t.Helper()
	handled, err := r.ProcessEvent(ev)
	if err != nil {
		t.Fatalf("ProcessEvent(%s): %v", ev.Action, err)
	}
	return handled
}

func flush(t *testing.T, r *Recognizer, in *Injector) {
	t.Helper()
	if _, err := in.Flush(r); err != nil {
		t.Fatalf("Flush: %v", err)
	}
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func findDetector[T detector](r *Recognizer) T {
	for _, d := range r.detectors {
		if v, ok := d.(T); ok {
			return v
		}
	}
	var zero T
	return zero
}
