package gesture

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fling animates the inertial travel that follows a fly gesture. The total
// distance on each axis is velocity*duration/2, which with the default
// ease.OutQuad starts at the fling velocity and decelerates to rest.
//
// There is no global animation manager; call Update each frame until Done.
type Fling struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	lastX  float64
	lastY  float64
	doneX  bool
	doneY  bool
	Done   bool
}

// NewFling creates a fling animation lasting duration seconds. A nil easing
// function means ease.OutQuad.
func NewFling(ctx FlyContext, duration float32, fn ease.TweenFunc) *Fling {
	if fn == nil {
		fn = ease.OutQuad
	}
	if duration <= 0 {
		return &Fling{Done: true}
	}
	half := float64(duration) / 2
	return &Fling{
		tweenX: gween.New(0, float32(ctx.VelocityX*half), duration, fn),
		tweenY: gween.New(0, float32(ctx.VelocityY*half), duration, fn),
	}
}

// Update advances the animation by dt seconds and returns the offset covered
// since the previous call.
func (f *Fling) Update(dt float32) (dx, dy float64) {
	if f.Done {
		return 0, 0
	}
	if !f.doneX {
		x, finished := f.tweenX.Update(dt)
		dx = float64(x) - f.lastX
		f.lastX = float64(x)
		f.doneX = finished
	}
	if !f.doneY {
		y, finished := f.tweenY.Update(dt)
		dy = float64(y) - f.lastY
		f.lastY = float64(y)
		f.doneY = finished
	}
	f.Done = f.doneX && f.doneY
	return dx, dy
}

// Offset returns the total offset covered so far.
func (f *Fling) Offset() (x, y float64) {
	return f.lastX, f.lastY
}
