package gesture

import (
	"math"
	"sync"
	"time"
)

// VelocityTracker estimates pointer velocity from the frames of one stream.
// A tracker is obtained at stream start and released at stream end; it must
// not be used after Release.
type VelocityTracker interface {
	// AddMovement records the pointer positions of a frame.
	AddMovement(f *Frame)
	// Velocity returns the current velocity of a pointer in units per
	// second, each axis clamped to [-maxVelocity, maxVelocity].
	Velocity(pointerID int, maxVelocity float64) (vx, vy float64)
	// Release returns the tracker's resources.
	Release()
}

const (
	velocityHorizon = 100 * time.Millisecond // samples older than this are ignored
	velocityHistory = 20                     // samples kept per pointer

	// pointerStoppedTime is how long a pointer may rest before release and
	// still count as moving.
	pointerStoppedTime = 40 * time.Millisecond
)

type velocitySample struct {
	t    time.Duration
	x, y float64
}

// lsqTracker fits a straight line per axis through the recent samples of each
// pointer and reports its slope.
type lsqTracker struct {
	history  map[int][]velocitySample
	released bool          // a release frame has been seen
	liftTime time.Duration // time of the latest release frame
}

var trackerPool = sync.Pool{
	New: func() any {
		return &lsqTracker{history: make(map[int][]velocitySample)}
	},
}

// NewVelocityTracker obtains a pooled least-squares tracker. It is the
// default Config.NewVelocityTracker.
func NewVelocityTracker() VelocityTracker {
	return trackerPool.Get().(*lsqTracker)
}

func (t *lsqTracker) AddMovement(f *Frame) {
	switch f.Action {
	case ActionUp, ActionCancel, ActionPointerUp:
		// Release positions repeat the last move and would drag the fit to
		// zero; only the time matters.
		t.released = true
		t.liftTime = f.Time
		return
	case ActionDown:
		clear(t.history)
		t.released = false
	}

	for id := range t.history {
		if _, ok := findPointer(f.Pointers, id); !ok {
			delete(t.history, id)
		}
	}
	for _, p := range f.Pointers {
		h := t.history[p.ID]
		if n := len(h); n > 0 && h[n-1].t >= f.Time {
			// Same timestamp: keep the latest position only.
			h[n-1] = velocitySample{t: f.Time, x: p.X, y: p.Y}
			continue
		}
		if len(h) == velocityHistory {
			copy(h, h[1:])
			h = h[:len(h)-1]
		}
		t.history[p.ID] = append(h, velocitySample{t: f.Time, x: p.X, y: p.Y})
	}
}

func (t *lsqTracker) Velocity(pointerID int, maxVelocity float64) (vx, vy float64) {
	h := t.history[pointerID]
	if len(h) < 2 {
		return 0, 0
	}
	newest := h[len(h)-1].t
	if t.released && t.liftTime-newest > pointerStoppedTime {
		return 0, 0
	}
	start := len(h) - 1
	for start > 0 && newest-h[start-1].t <= velocityHorizon {
		start--
	}
	h = h[start:]
	if len(h) < 2 {
		return 0, 0
	}

	var meanT, meanX, meanY float64
	for _, s := range h {
		meanT += s.t.Seconds()
		meanX += s.x
		meanY += s.y
	}
	n := float64(len(h))
	meanT /= n
	meanX /= n
	meanY /= n

	var stt, stx, sty float64
	for _, s := range h {
		dt := s.t.Seconds() - meanT
		stt += dt * dt
		stx += dt * (s.x - meanX)
		sty += dt * (s.y - meanY)
	}
	if stt == 0 {
		return 0, 0
	}
	return clampAbs(stx/stt, maxVelocity), clampAbs(sty/stt, maxVelocity)
}

func (t *lsqTracker) Release() {
	clear(t.history)
	t.released = false
	t.liftTime = 0
	trackerPool.Put(t)
}

func clampAbs(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}
