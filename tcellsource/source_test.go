package tcellsource

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/gesture"
)

func newRecognizer(t *testing.T, kinds ...gesture.Kind) *gesture.Recognizer {
	t.Helper()
	cfg := gesture.DefaultConfig()
	cfg.Gestures = kinds
	r, err := gesture.NewRecognizer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestHandleMouse_PressMoveRelease(t *testing.T) {
	s := New()
	s.CellWidth, s.CellHeight = 8, 16

	var evs []gesture.Event
	evs = s.HandleMouse(tcell.NewEventMouse(2, 3, tcell.Button1, tcell.ModNone), evs)
	evs = s.HandleMouse(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone), evs)
	evs = s.HandleMouse(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone), evs)

	want := []gesture.Action{gesture.ActionDown, gesture.ActionMove, gesture.ActionUp}
	if len(evs) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(evs))
	}
	for i := range want {
		if evs[i].Action != want[i] {
			t.Errorf("event %d: %s, want %s", i, evs[i].Action, want[i])
		}
	}
	if p := evs[0].Pointers[0]; p.X != 16 || p.Y != 48 {
		t.Errorf("down at (%v,%v), want (16,48)", p.X, p.Y)
	}
	if p := evs[1].Pointers[0]; p.X != 32 {
		t.Errorf("move to x=%v, want 32", p.X)
	}
	if evs[0].Time != 0 {
		t.Errorf("first event time = %v, want 0", evs[0].Time)
	}
}

func TestHandleMouse_IgnoresOtherButtons(t *testing.T) {
	s := New()
	evs := s.HandleMouse(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone), nil)
	evs = s.HandleMouse(tcell.NewEventMouse(1, 1, tcell.WheelUp, tcell.ModNone), evs)
	if len(evs) != 0 {
		t.Errorf("expected no events, got %d", len(evs))
	}
}

func TestDispatch_Drag(t *testing.T) {
	r := newRecognizer(t, gesture.KindDrag)
	var dx float64
	drags := 0
	r.OnDrag(func(ctx gesture.DragContext) bool {
		dx += ctx.DeltaX
		drags++
		return true
	})

	s := New()
	s.CellWidth = 10
	for x := 0; x <= 3; x++ {
		if _, err := s.Dispatch(r, tcell.NewEventMouse(x, 0, tcell.Button1, tcell.ModNone)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.Dispatch(r, tcell.NewEventMouse(3, 0, tcell.ButtonNone, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	// The move to x=10 crosses the slop; the next two fire.
	if drags != 2 || dx != 20 {
		t.Errorf("drags = %d, dx = %v; want 2 and 20", drags, dx)
	}
}

func TestDispatch_FocusLossCancels(t *testing.T) {
	r := newRecognizer(t, gesture.KindTap)
	taps := 0
	r.OnTap(func(gesture.TapContext) bool { taps++; return true })

	s := New()
	s.Dispatch(r, tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if s.stream.Active() != 1 {
		t.Fatal("press should start a stream")
	}
	if _, err := s.Dispatch(r, tcell.NewEventFocus(false)); err != nil {
		t.Fatal(err)
	}
	if s.stream.Active() != 0 {
		t.Error("focus loss should cancel the stream")
	}
	s.Dispatch(r, tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))

	if taps != 0 {
		t.Error("a cancelled press should not tap")
	}
}

func TestDispatch_FocusGainIgnored(t *testing.T) {
	r := newRecognizer(t)
	s := New()
	s.Dispatch(r, tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if _, err := s.Dispatch(r, tcell.NewEventFocus(true)); err != nil {
		t.Fatal(err)
	}
	if s.stream.Active() != 1 {
		t.Error("focus gain should not end the stream")
	}
}

func TestDispatch_ResizeCancels(t *testing.T) {
	s := New()
	s.HandleMouse(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone), nil)
	evs := s.Cancel(time.Now(), nil)
	if len(evs) != 1 || evs[0].Action != gesture.ActionCancel {
		t.Fatalf("expected a cancel event, got %+v", evs)
	}

	r := newRecognizer(t)
	s.HandleMouse(tcell.NewEventMouse(6, 6, tcell.Button1, tcell.ModNone), nil)
	if _, err := s.Dispatch(r, tcell.NewEventResize(80, 24)); err != nil {
		t.Fatal(err)
	}
	if s.stream.Active() != 0 {
		t.Error("resize should cancel the stream")
	}
	if handled, err := s.Dispatch(r, tcell.NewEventResize(80, 24)); handled || err != nil {
		t.Errorf("resize with no active stream: handled=%v err=%v", handled, err)
	}
}

func TestDispatch_IgnoresKeys(t *testing.T) {
	r := newRecognizer(t)
	s := New()
	handled, err := s.Dispatch(r, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if handled || err != nil {
		t.Errorf("key event: handled=%v err=%v", handled, err)
	}
}
