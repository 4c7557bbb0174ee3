package gesture

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	maxPointers    = 10 // touches beyond this are ignored
	mousePointerID = -1 // touch IDs from ebiten are never negative
)

// EbitenSource polls ebiten's touch and mouse state and converts it into
// Events. Call Poll once per Game.Update and pass the result to
// Recognizer.Feed:
//
//	events = src.Poll(events[:0])
//	if _, err := rec.Feed(events); err != nil {
//		return err
//	}
type EbitenSource struct {
	// Mouse makes the left mouse button act as a pointer while no touches
	// are active.
	Mouse bool
	// Transform maps screen coordinates into the recognizer's space, for
	// example a camera's screen-to-world conversion. Nil keeps screen
	// coordinates.
	Transform func(x, y float64) (float64, float64)

	stream   PointerStream
	start    time.Time
	touchIDs []ebiten.TouchID
	down     []Pointer
	warned   bool
}

// NewEbitenSource returns a source with mouse emulation enabled.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{Mouse: true, start: time.Now()}
}

// Poll reads the current input state and appends the resulting events to dst.
// Losing window focus cancels the active stream.
func (s *EbitenSource) Poll(dst []Event) []Event {
	now := time.Since(s.start)
	if !ebiten.IsFocused() {
		return s.stream.Cancel(now, dst)
	}

	s.down = s.down[:0]
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		if len(s.down) == maxPointers {
			if !s.warned {
				log.Printf("gesture: more than %d touches, extra touches ignored", maxPointers)
				s.warned = true
			}
			break
		}
		tx, ty := ebiten.TouchPosition(tid)
		s.down = append(s.down, s.pointer(int(tid), tx, ty))
	}

	if s.Mouse && len(s.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s.down = append(s.down, s.pointer(mousePointerID, mx, my))
	}

	return s.stream.Update(now, s.down, dst)
}

func (s *EbitenSource) pointer(id, sx, sy int) Pointer {
	x, y := float64(sx), float64(sy)
	if s.Transform != nil {
		x, y = s.Transform(x, y)
	}
	return Pointer{ID: id, X: x, Y: y}
}
