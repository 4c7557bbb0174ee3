package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrUnknownAction is returned for an event whose Action is not one of
	// the six defined actions.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNoPointers is returned for an event with an empty pointer list.
	ErrNoPointers = errors.New("event has no pointers")
	// ErrActionIndex is returned when a pointer-up names a pointer index
	// outside the event's pointer list.
	ErrActionIndex = errors.New("action index out of range")
	// ErrDegenerateFrame is returned when no pointer would remain after
	// skipping the lifted one, which would make the pivot undefined.
	ErrDegenerateFrame = errors.New("no pointers left after skip")
)

// Frame is the shared per-event state handed to every detector. It is built
// once per event and must not be modified by detectors.
type Frame struct {
	Action   Action
	Pointers []Pointer
	Time     time.Duration

	// SkipIndex is the index of the pointer being lifted on a pointer-up,
	// or -1. That pointer is excluded from the pivot and all averages.
	SkipIndex int
	// DivCount is the number of pointers that take part in averages.
	// Always > 0.
	DivCount float64
	// Pivot is the mean position of the non-skipped pointers.
	Pivot Vec2

	// ConfigChanged is set on down, pointer-down and pointer-up: the set of
	// pointers changed and detectors must re-baseline.
	ConfigChanged bool
	// StreamCompleted is set on up and cancel.
	StreamCompleted bool
}

// buildFrame derives the shared frame state from a raw event.
func buildFrame(ev Event) (Frame, error) {
	if !ev.Action.valid() {
		return Frame{}, fmt.Errorf("gesture: %w: %d", ErrUnknownAction, uint8(ev.Action))
	}
	n := len(ev.Pointers)
	if n == 0 {
		return Frame{}, fmt.Errorf("gesture: %s: %w", ev.Action, ErrNoPointers)
	}

	f := Frame{
		Action:          ev.Action,
		Pointers:        append([]Pointer(nil), ev.Pointers...),
		Time:            ev.Time,
		SkipIndex:       -1,
		ConfigChanged:   ev.Action == ActionDown || ev.Action == ActionPointerDown || ev.Action == ActionPointerUp,
		StreamCompleted: ev.Action == ActionUp || ev.Action == ActionCancel,
	}

	count := n
	if ev.Action == ActionPointerUp {
		if ev.ActionIndex < 0 || ev.ActionIndex >= n {
			return Frame{}, fmt.Errorf("gesture: %w: %d of %d pointers", ErrActionIndex, ev.ActionIndex, n)
		}
		f.SkipIndex = ev.ActionIndex
		count--
	}
	if count <= 0 {
		return Frame{}, fmt.Errorf("gesture: %s: %w", ev.Action, ErrDegenerateFrame)
	}
	f.DivCount = float64(count)

	var sumX, sumY float64
	for i, p := range f.Pointers {
		if i == f.SkipIndex {
			continue
		}
		sumX += p.X
		sumY += p.Y
	}
	f.Pivot = Vec2{X: sumX / f.DivCount, Y: sumY / f.DivCount}
	return f, nil
}

// Skipped reports whether pointer index i is excluded from aggregates.
func (f *Frame) Skipped(i int) bool {
	return i == f.SkipIndex
}

// PointerCount returns the raw number of pointers in the event.
func (f *Frame) PointerCount() int {
	return len(f.Pointers)
}

// Bearing returns the angle of pointer i around the pivot in radians, in
// (-π, π]. Y is inverted so angles grow counter-clockwise on screen.
func (f *Frame) Bearing(i int) float64 {
	p := f.Pointers[i]
	return math.Atan2(f.Pivot.Y-p.Y, p.X-f.Pivot.X)
}
