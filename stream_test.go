package gesture

import "testing"

func actions(evs []Event) []Action {
	out := make([]Action, len(evs))
	for i, ev := range evs {
		out[i] = ev.Action
	}
	return out
}

func sameActions(got []Event, want ...Action) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Action != want[i] {
			return false
		}
	}
	return true
}

func TestPointerStream_SinglePointer(t *testing.T) {
	var s PointerStream
	var evs []Event

	evs = s.Update(0, []Pointer{{ID: 3, X: 1, Y: 1}}, evs)
	evs = s.Update(ms(16), []Pointer{{ID: 3, X: 1, Y: 1}}, evs) // no change
	evs = s.Update(ms(32), []Pointer{{ID: 3, X: 5, Y: 1}}, evs)
	evs = s.Update(ms(48), nil, evs)

	if !sameActions(evs, ActionDown, ActionMove, ActionUp) {
		t.Fatalf("actions = %v", actions(evs))
	}
	if evs[1].Time != ms(32) || evs[1].Pointers[0].X != 5 {
		t.Errorf("unexpected move %+v", evs[1])
	}
	if evs[2].Pointers[0].X != 5 {
		t.Errorf("up should carry the last position, got %+v", evs[2].Pointers)
	}
	if s.Active() != 0 {
		t.Errorf("Active = %d after up", s.Active())
	}
}

func TestPointerStream_MultiPointer(t *testing.T) {
	var s PointerStream
	a := Pointer{ID: 10, X: 0, Y: 0}
	b := Pointer{ID: 20, X: 100, Y: 0}

	evs := s.Update(0, []Pointer{a}, nil)
	evs = s.Update(ms(10), []Pointer{a, b}, evs)
	if !sameActions(evs, ActionDown, ActionPointerDown) {
		t.Fatalf("actions = %v", actions(evs))
	}
	if evs[1].ActionIndex != 1 || len(evs[1].Pointers) != 2 {
		t.Errorf("pointer-down = %+v", evs[1])
	}

	// a lifts: the pointer-up still lists it at its index.
	evs = s.Update(ms(20), []Pointer{b}, nil)
	if !sameActions(evs, ActionPointerUp) {
		t.Fatalf("actions = %v", actions(evs))
	}
	if evs[0].ActionIndex != 0 || len(evs[0].Pointers) != 2 || evs[0].Pointers[0].ID != 10 {
		t.Errorf("pointer-up = %+v", evs[0])
	}

	evs = s.Update(ms(30), nil, nil)
	if !sameActions(evs, ActionUp) || evs[0].Pointers[0].ID != 20 {
		t.Errorf("final events = %+v", evs)
	}
}

func TestPointerStream_SimultaneousPress(t *testing.T) {
	var s PointerStream
	evs := s.Update(0, pts(0, 0, 10, 10), nil)
	if !sameActions(evs, ActionDown, ActionPointerDown) {
		t.Fatalf("actions = %v", actions(evs))
	}
	if len(evs[0].Pointers) != 1 || len(evs[1].Pointers) != 2 {
		t.Error("second pointer should join in its own event")
	}

	// Move and lift in the same update: move first.
	evs = s.Update(ms(10), []Pointer{{ID: 1, X: 20, Y: 20}}, nil)
	if !sameActions(evs, ActionMove, ActionPointerUp) {
		t.Fatalf("actions = %v", actions(evs))
	}
	for _, ev := range evs {
		if _, err := buildFrame(ev); err != nil {
			t.Errorf("%s: %v", ev.Action, err)
		}
	}
}

func TestPointerStream_Cancel(t *testing.T) {
	var s PointerStream
	if evs := s.Cancel(0, nil); len(evs) != 0 {
		t.Error("cancel without a stream should emit nothing")
	}
	s.Update(0, pts(0, 0, 1, 1), nil)
	evs := s.Cancel(ms(5), nil)
	if !sameActions(evs, ActionCancel) || len(evs[0].Pointers) != 2 {
		t.Errorf("cancel = %+v", evs)
	}
	if s.Active() != 0 {
		t.Errorf("Active = %d after cancel", s.Active())
	}
}
