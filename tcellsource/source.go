// Package tcellsource feeds terminal mouse input from tcell into a gesture
// recognizer. The primary button acts as a single pointer, so only tap,
// double-tap, drag and fly can be produced.
package tcellsource

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gesture"
)

const pointerID = 0

// Source converts *tcell.EventMouse values into gesture events.
type Source struct {
	// CellWidth and CellHeight scale cell coordinates into recognizer
	// units, so slops can be expressed in pixels for a known font size.
	CellWidth, CellHeight float64

	stream gesture.PointerStream
	start  time.Time
	down   []gesture.Pointer
}

// New returns a source that reports positions in cells.
func New() *Source {
	return &Source{CellWidth: 1, CellHeight: 1}
}

// HandleMouse appends the events produced by ev to dst. Button1 pressed
// means the pointer is down; wheel and other buttons are ignored.
func (s *Source) HandleMouse(ev *tcell.EventMouse, dst []gesture.Event) []gesture.Event {
	x, y := ev.Position()
	s.down = s.down[:0]
	if ev.Buttons()&tcell.Button1 != 0 {
		s.down = append(s.down, gesture.Pointer{
			ID: pointerID,
			X:  float64(x) * s.CellWidth,
			Y:  float64(y) * s.CellHeight,
		})
	}
	return s.stream.Update(s.since(ev.When()), s.down, dst)
}

// Cancel ends the active stream, for example when the terminal loses focus
// or is resized mid-drag.
func (s *Source) Cancel(when time.Time, dst []gesture.Event) []gesture.Event {
	return s.stream.Cancel(s.since(when), dst)
}

// Dispatch is a convenience for event loops: it converts mouse events and
// feeds them to r. Other events are ignored.
func (s *Source) Dispatch(r *gesture.Recognizer, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return r.Feed(s.HandleMouse(ev, nil))
	case *tcell.EventFocus:
		// Focus events carry no timestamp.
		if !ev.Focused {
			return r.Feed(s.Cancel(time.Now(), nil))
		}
	case *tcell.EventResize:
		return r.Feed(s.Cancel(time.Now(), nil))
	}
	return false, nil
}

func (s *Source) since(t time.Time) time.Duration {
	if s.start.IsZero() {
		s.start = t
	}
	return t.Sub(s.start)
}
