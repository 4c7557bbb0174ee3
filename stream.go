package gesture

import "time"

// PointerStream turns successive snapshots of "pointers currently down" into
// the Event sequence a Recognizer expects. Polling sources (ebiten, tcell,
// Injector) feed it once per frame.
//
// Per Update, events are produced in this order: one move if any tracked
// pointer changed position, one up/pointer-up per lifted pointer, one
// down/pointer-down per new pointer.
type PointerStream struct {
	active []Pointer // tracked pointers in arrival order
}

// Update diffs down against the tracked pointers and appends the resulting
// events to dst. Pointer IDs in down must be unique.
func (s *PointerStream) Update(t time.Duration, down []Pointer, dst []Event) []Event {
	moved := false
	for i, p := range s.active {
		if q, ok := findPointer(down, p.ID); ok && (q.X != p.X || q.Y != p.Y) {
			s.active[i] = q
			moved = true
		}
	}
	if moved {
		dst = append(dst, Event{Action: ActionMove, Pointers: s.snapshot(), Time: t})
	}

	for i := 0; i < len(s.active); {
		if _, ok := findPointer(down, s.active[i].ID); ok {
			i++
			continue
		}
		if len(s.active) == 1 {
			dst = append(dst, Event{Action: ActionUp, Pointers: s.snapshot(), Time: t})
			s.active = s.active[:0]
			break
		}
		dst = append(dst, Event{Action: ActionPointerUp, Pointers: s.snapshot(), ActionIndex: i, Time: t})
		s.active = append(s.active[:i], s.active[i+1:]...)
	}

	for _, p := range down {
		if _, ok := findPointer(s.active, p.ID); ok {
			continue
		}
		s.active = append(s.active, p)
		if len(s.active) == 1 {
			dst = append(dst, Event{Action: ActionDown, Pointers: s.snapshot(), Time: t})
		} else {
			dst = append(dst, Event{Action: ActionPointerDown, Pointers: s.snapshot(), ActionIndex: len(s.active) - 1, Time: t})
		}
	}
	return dst
}

// Cancel ends the current stream with a cancel event, if one is active.
func (s *PointerStream) Cancel(t time.Duration, dst []Event) []Event {
	if len(s.active) == 0 {
		return dst
	}
	dst = append(dst, Event{Action: ActionCancel, Pointers: s.snapshot(), Time: t})
	s.active = s.active[:0]
	return dst
}

// Active returns the number of tracked pointers.
func (s *PointerStream) Active() int {
	return len(s.active)
}

func (s *PointerStream) snapshot() []Pointer {
	return append([]Pointer(nil), s.active...)
}

func findPointer(ps []Pointer, id int) (Pointer, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}
