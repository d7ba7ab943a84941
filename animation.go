package bezier

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultAnimationSpeed is the per-tick drift amplitude in NDC units.
	DefaultAnimationSpeed = 0.001
	// DefaultAnimationBound keeps drifting points inside [-0.9, 0.9].
	DefaultAnimationBound = 0.9
)

// Animator drifts the control points of a curve over time.
//
// Each Advance nudges the current positions rather than computing them from
// elapsed time, so the trajectory depends on the full history of ticks.
// Pausing and resuming at any tick leaves that history intact.
type Animator struct {
	curve   *Curve
	speed   float64
	bound   float64
	enabled bool
	elapsed float64
}

// NewAnimator creates a disabled animator for curve. A negative speed falls
// back to DefaultAnimationSpeed and a bound outside (0, 1] falls back to
// DefaultAnimationBound.
func NewAnimator(curve *Curve, speed, bound float64) *Animator {
	if speed < 0 {
		speed = DefaultAnimationSpeed
	}
	if bound <= 0 || bound > 1 {
		bound = DefaultAnimationBound
	}
	return &Animator{curve: curve, speed: speed, bound: bound}
}

// Toggle flips the enabled flag and returns the new value. Elapsed time is
// kept.
func (a *Animator) Toggle() bool {
	a.enabled = !a.enabled
	return a.enabled
}

// SetEnabled sets the enabled flag.
func (a *Animator) SetEnabled(enabled bool) {
	a.enabled = enabled
}

// Enabled reports whether Advance moves the control points.
func (a *Animator) Enabled() bool {
	return a.enabled
}

// Elapsed returns the accumulated animation time in seconds.
func (a *Animator) Elapsed() float64 {
	return a.elapsed
}

// Speed returns the drift amplitude.
func (a *Animator) Speed() float64 {
	return a.speed
}

// Bound returns the clamp limit applied to both coordinates.
func (a *Animator) Bound() float64 {
	return a.bound
}

// Advance moves time forward by dt seconds. It is a no-op while disabled.
// Point i moves by speed·(sin(t+i), cos(t+i)) and is then clamped to
// [-bound, bound] on both axes.
func (a *Animator) Advance(dt float64) {
	if !a.enabled {
		return
	}
	a.elapsed += dt
	points := a.curve.ControlPoints()
	for i, p := range points {
		phase := a.elapsed + float64(i)
		p.X = clampRange(p.X+a.speed*math.Sin(phase), -a.bound, a.bound)
		p.Y = clampRange(p.Y+a.speed*math.Cos(phase), -a.bound, a.bound)
		_ = a.curve.SetControlPoint(i, p)
	}
}

// --- Layout tweens ---

// TweenGroup animates all four control points of a curve toward a target
// layout. Call Update(dt) each frame; values are written back through
// Curve.SetControlPoint. Stop ends the group early and leaves the points
// where they are.
type TweenGroup struct {
	tweens [NumControlPoints][2]*gween.Tween
	to     [NumControlPoints]Vec2
	curve  *Curve
	Done   bool
}

// TweenControlPoints creates a TweenGroup that moves every control point of
// curve to the matching entry of to over duration seconds using fn.
func TweenControlPoints(curve *Curve, to [NumControlPoints]Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{curve: curve, to: to}
	from := curve.ControlPoints()
	for i := range from {
		g.tweens[i][0] = gween.New(float32(from[i].X), float32(to[i].X), duration, fn)
		g.tweens[i][1] = gween.New(float32(from[i].Y), float32(to[i].Y), duration, fn)
	}
	return g
}

// Update advances the group by dt seconds and writes the current values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	var cur [NumControlPoints]Vec2
	for i := range g.tweens {
		x, xDone := g.tweens[i][0].Update(dt)
		y, yDone := g.tweens[i][1].Update(dt)
		cur[i] = Vec2{X: float64(x), Y: float64(y)}
		if !xDone || !yDone {
			allDone = false
		}
	}
	// gween runs in float32; land exactly on the target once finished.
	if allDone {
		cur = g.to
	}
	for i, p := range cur {
		_ = g.curve.SetControlPoint(i, p)
	}
	g.Done = allDone
}

// Stop marks the group done without further writes.
func (g *TweenGroup) Stop() {
	g.Done = true
}
