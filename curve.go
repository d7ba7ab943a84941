package bezier

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultSamples is the number of points the editor samples per frame.
const DefaultSamples = 100

// Curve is a cubic Bézier curve defined by four control points.
//
// The curve holds no cached samples. Every call to Resample or Samples
// evaluates the polynomial against the current control points.
type Curve struct {
	points [NumControlPoints]Vec2
}

// NewCurve creates a curve from the given control points.
func NewCurve(points [NumControlPoints]Vec2) *Curve {
	return &Curve{points: points}
}

// Evaluate returns the point on the curve at parameter t:
//
//	u³·P0 + 3u²t·P1 + 3ut²·P2 + t³·P3, with u = 1 - t
//
// Callers should pass t in [0, 1]. Values outside that range extrapolate the
// polynomial and are not clamped.
func (c *Curve) Evaluate(t float64) Vec2 {
	u := 1 - t
	tt := t * t
	uu := u * u

	p := r2.Scale(uu*u, c.points[0])
	p = r2.Add(p, r2.Scale(3*uu*t, c.points[1]))
	p = r2.Add(p, r2.Scale(3*u*tt, c.points[2]))
	p = r2.Add(p, r2.Scale(tt*t, c.points[3]))
	return p
}

// Resample evaluates the curve at n evenly spaced parameters t = i/(n-1)
// and returns a new slice of n points. It returns nil if n < 2.
func (c *Curve) Resample(n int) []Vec2 {
	if n < 2 {
		return nil
	}
	return c.AppendSamples(make([]Vec2, 0, n), n)
}

// AppendSamples appends the n points Resample would return to dst and
// returns the extended slice. dst is returned unchanged if n < 2.
func (c *Curve) AppendSamples(dst []Vec2, n int) []Vec2 {
	if n < 2 {
		return dst
	}
	last := float64(n - 1)
	for i := 0; i < n; i++ {
		dst = append(dst, c.Evaluate(float64(i)/last))
	}
	return dst
}

// Samples returns a lazy sequence of the n points Resample would return,
// keyed by sample index. The sequence is empty if n < 2. Each point is
// evaluated against the control points current at the time it is yielded.
func (c *Curve) Samples(n int) iter.Seq2[int, Vec2] {
	return func(yield func(int, Vec2) bool) {
		if n < 2 {
			return
		}
		last := float64(n - 1)
		for i := 0; i < n; i++ {
			if !yield(i, c.Evaluate(float64(i)/last)) {
				return
			}
		}
	}
}

// SetControlPoint replaces control point i with p.
func (c *Curve) SetControlPoint(i int, p Vec2) error {
	if i < 0 || i >= NumControlPoints {
		return fmt.Errorf("set control point %d: %w", i, ErrIndexOutOfRange)
	}
	c.points[i] = p
	return nil
}

// ControlPoint returns control point i.
func (c *Curve) ControlPoint(i int) (Vec2, error) {
	if i < 0 || i >= NumControlPoints {
		return Vec2{}, fmt.Errorf("get control point %d: %w", i, ErrIndexOutOfRange)
	}
	return c.points[i], nil
}

// ControlPoints returns a copy of all four control points.
func (c *Curve) ControlPoints() [NumControlPoints]Vec2 {
	return c.points
}

// Bounds returns the axis-aligned bounding box of the control polygon.
// For t in [0, 1] every point on the curve lies inside it.
func (c *Curve) Bounds() r2.Box {
	b := r2.Box{
		Min: Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range c.points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}
