package bezier

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewAnimatorDefaults(t *testing.T) {
	c := NewCurve(DefaultControlPoints)

	a := NewAnimator(c, -1, 0)
	if a.Speed() != DefaultAnimationSpeed {
		t.Errorf("Speed() = %v, want %v", a.Speed(), DefaultAnimationSpeed)
	}
	if a.Bound() != DefaultAnimationBound {
		t.Errorf("Bound() = %v, want %v", a.Bound(), DefaultAnimationBound)
	}
	if a.Enabled() {
		t.Error("new animator should start disabled")
	}

	a = NewAnimator(c, 0.01, 1.5)
	if a.Speed() != 0.01 || a.Bound() != DefaultAnimationBound {
		t.Errorf("NewAnimator(0.01, 1.5) = speed %v bound %v", a.Speed(), a.Bound())
	}
}

func TestAdvanceDisabledIsNoOp(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	a := NewAnimator(c, DefaultAnimationSpeed, DefaultAnimationBound)

	for range 10 {
		a.Advance(1.0 / 60)
	}
	if c.ControlPoints() != DefaultControlPoints {
		t.Error("disabled animator moved control points")
	}
	if a.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, want 0 while disabled", a.Elapsed())
	}
}

func TestAdvanceFirstTick(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	a := NewAnimator(c, DefaultAnimationSpeed, DefaultAnimationBound)
	a.SetEnabled(true)

	const dt = 1.0 / 60
	a.Advance(dt)

	for i, p0 := range DefaultControlPoints {
		want := Vec2{
			X: p0.X + DefaultAnimationSpeed*math.Sin(dt+float64(i)),
			Y: p0.Y + DefaultAnimationSpeed*math.Cos(dt+float64(i)),
		}
		got, _ := c.ControlPoint(i)
		if math.Abs(got.X-want.X) > 1e-15 || math.Abs(got.Y-want.Y) > 1e-15 {
			t.Errorf("P%d = %v, want %v", i, got, want)
		}
	}
	if a.Elapsed() != dt {
		t.Errorf("Elapsed() = %v, want %v", a.Elapsed(), dt)
	}
}

func TestAdvanceClampsToBound(t *testing.T) {
	start := Vec2{X: 0.89, Y: 0.89}
	c := NewCurve([NumControlPoints]Vec2{start, start, start, start})
	a := NewAnimator(c, 0.05, DefaultAnimationBound)
	a.SetEnabled(true)

	// sin(0.5) and cos(0.5) are both positive: P0 overshoots on both axes.
	a.Advance(0.5)
	if got, _ := c.ControlPoint(0); got != (Vec2{X: 0.9, Y: 0.9}) {
		t.Errorf("P0 = %v, want clamped to (0.9, 0.9)", got)
	}

	for range 1000 {
		a.Advance(1.0 / 60)
		for i, p := range c.ControlPoints() {
			if math.Abs(p.X) > 0.9 || math.Abs(p.Y) > 0.9 {
				t.Fatalf("P%d = %v escaped [-0.9, 0.9]", i, p)
			}
		}
	}
}

func TestTogglePreservesState(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	a := NewAnimator(c, DefaultAnimationSpeed, DefaultAnimationBound)

	if !a.Toggle() {
		t.Fatal("first Toggle should enable")
	}
	for range 30 {
		a.Advance(1.0 / 60)
	}
	paused := c.ControlPoints()
	elapsed := a.Elapsed()

	if a.Toggle() {
		t.Fatal("second Toggle should disable")
	}
	for range 30 {
		a.Advance(1.0 / 60)
	}
	if c.ControlPoints() != paused {
		t.Error("points moved while paused")
	}
	if a.Elapsed() != elapsed {
		t.Errorf("Elapsed() = %v, want %v after pause", a.Elapsed(), elapsed)
	}

	// Resuming continues from the paused positions, not from the start.
	a.Toggle()
	a.Advance(1.0 / 60)
	got, _ := c.ControlPoint(0)
	want := paused[0].X + DefaultAnimationSpeed*math.Sin(elapsed+1.0/60)
	if math.Abs(got.X-want) > 1e-15 {
		t.Errorf("P0.X after resume = %v, want %v", got.X, want)
	}
}

func TestAdvanceZeroSpeed(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	a := NewAnimator(c, 0, DefaultAnimationBound)
	a.SetEnabled(true)
	a.Advance(1)
	if c.ControlPoints() != DefaultControlPoints {
		t.Error("zero speed moved control points")
	}
	if a.Elapsed() != 1 {
		t.Errorf("Elapsed() = %v, want 1", a.Elapsed())
	}
}

// --- Layout tweens ---

func TestTweenControlPointsReachesTarget(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	target := [NumControlPoints]Vec2{
		{X: -0.75, Y: -0.75}, {X: -0.25, Y: 0.75}, {X: 0.25, Y: -0.75}, {X: 0.75, Y: 0.75},
	}

	g := TweenControlPoints(c, target, 1.0, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("Done after half the duration")
	}
	mid, _ := c.ControlPoint(0)
	wantMid := (DefaultControlPoints[0].X + target[0].X) / 2
	if math.Abs(mid.X-wantMid) > 1e-6 {
		t.Errorf("P0.X at half = %f, want ~%f", mid.X, wantMid)
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if c.ControlPoints() != target {
		t.Errorf("ControlPoints() = %v, want exactly %v", c.ControlPoints(), target)
	}
}

func TestTweenGroupStop(t *testing.T) {
	c := NewCurve(DefaultControlPoints)
	target := [NumControlPoints]Vec2{}

	g := TweenControlPoints(c, target, 1.0, ease.Linear)
	g.Update(0.25)
	partial := c.ControlPoints()

	g.Stop()
	g.Update(0.5)
	if !g.Done {
		t.Error("expected Done after Stop")
	}
	if c.ControlPoints() != partial {
		t.Error("Update after Stop wrote control points")
	}
}
