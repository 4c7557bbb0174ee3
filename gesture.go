package gesture

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKind is returned when a gesture name or value is not recognized.
var ErrUnknownKind = errors.New("unknown gesture kind")

// Vec2 is a 2D point or offset in the host's pointer coordinate space.
type Vec2 struct {
	X, Y float64
}

// Action classifies a raw pointer event. The zero value is not a valid action.
type Action uint8

const (
	ActionDown        Action = iota + 1 // first pointer of a stream touched down
	ActionMove                          // one or more pointers moved
	ActionUp                            // last pointer lifted, stream ends
	ActionCancel                        // host aborted the stream
	ActionPointerDown                   // an additional pointer joined
	ActionPointerUp                     // a non-last pointer lifted
)

var actionNames = [...]string{
	ActionDown:        "down",
	ActionMove:        "move",
	ActionUp:          "up",
	ActionCancel:      "cancel",
	ActionPointerDown: "pointer-down",
	ActionPointerUp:   "pointer-up",
}

func (a Action) valid() bool {
	return a >= ActionDown && a <= ActionPointerUp
}

func (a Action) String() string {
	if a.valid() {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Kind identifies one of the recognized gestures.
type Kind uint8

const (
	KindTap       Kind = iota // single tap, disabled by default
	KindDoubleTap             // two taps close in time and space
	KindDrag                  // pivot translation past the drag slop
	KindFly                   // fling of the primary pointer on release, disabled by default
	KindScale                 // pinch span change, needs two pointers
	KindRotate                // rotation around the pivot, needs two pointers

	kindCount
)

var kindNames = [kindCount]string{
	KindTap:       "tap",
	KindDoubleTap: "double-tap",
	KindDrag:      "drag",
	KindFly:       "fly",
	KindScale:     "scale",
	KindRotate:    "rotate",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k >= kindCount {
		return nil, fmt.Errorf("gesture: %w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so gesture names can be
// used directly in config files.
func (k *Kind) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range kindNames {
		if n == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("gesture: %w: %q", ErrUnknownKind, name)
}

// KindSet is a fixed-size set of gesture kinds. The zero value is empty.
type KindSet struct {
	on [kindCount]bool
}

// NewKindSet returns a set holding the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	s.Add(kinds...)
	return s
}

// AllKinds returns a set holding every gesture kind.
func AllKinds() KindSet {
	var s KindSet
	for i := range s.on {
		s.on[i] = true
	}
	return s
}

// Add inserts kinds into the set. Adding a kind twice has no further effect.
// Unknown kinds are ignored.
func (s *KindSet) Add(kinds ...Kind) {
	for _, k := range kinds {
		if k < kindCount {
			s.on[k] = true
		}
	}
}

// Remove deletes kinds from the set.
func (s *KindSet) Remove(kinds ...Kind) {
	for _, k := range kinds {
		if k < kindCount {
			s.on[k] = false
		}
	}
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return k < kindCount && s.on[k]
}

// Clear empties the set.
func (s *KindSet) Clear() {
	s.on = [kindCount]bool{}
}

// Empty reports whether the set holds no kinds.
func (s KindSet) Empty() bool {
	return s.on == [kindCount]bool{}
}

// Kinds returns the members in declaration order.
func (s KindSet) Kinds() []Kind {
	var out []Kind
	for i, on := range s.on {
		if on {
			out = append(out, Kind(i))
		}
	}
	return out
}

// Pointer is one active pointer sample. ID stays stable for the lifetime of
// the pointer; its index in Event.Pointers may change between events.
type Pointer struct {
	ID   int
	X, Y float64
}

// Event is a raw pointer event as delivered by the host toolkit.
//
// Pointers lists every pointer that is down for this event, including the
// one being removed on ActionPointerUp. ActionIndex is the index into
// Pointers of the pointer that was added (ActionPointerDown) or removed
// (ActionPointerUp); it is ignored for other actions. Time is a monotonic
// timestamp from any fixed origin.
type Event struct {
	Action      Action
	Pointers    []Pointer
	ActionIndex int
	Time        time.Duration
}

// GestureEvent is the flattened record of a fired detection, emitted to an
// EventSink. Only the fields relevant to Kind are set.
type GestureEvent struct {
	Kind     Kind
	Accepted bool
	Time     time.Duration

	X, Y           float64 // pivot or tap position
	DeltaX, DeltaY float64 // drag or double-tap offset
	Elapsed        time.Duration

	VelocityX, VelocityY float64
	PointerID            int

	Scale    float64
	Span     float64
	Rotation float64
}

// EventSink receives every fired gesture. See Recognizer.SetEventSink.
type EventSink interface {
	EmitEvent(event GestureEvent)
}
