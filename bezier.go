package bezier

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// NumControlPoints is the number of control points of a cubic Bézier curve.
const NumControlPoints = 4

// Vec2 is a 2D position or offset. Control points and curve samples are in
// normalized device coordinates: both axes span [-1, 1] with the origin at
// the center of the viewport and Y increasing upward.
type Vec2 = r2.Vec

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorGreen is the default curve color.
	ColorGreen = Color{0, 1, 0, 1}
	// ColorMagenta is the default control point color.
	ColorMagenta = Color{1, 0, 1, 1}
	// ColorBlack is the default clear color.
	ColorBlack = Color{0, 0, 0, 1}
)

// ErrIndexOutOfRange is returned when a control point index is not in
// 0..NumControlPoints-1.
var ErrIndexOutOfRange = errors.New("bezier: control point index out of range")

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown EventType = iota // pointer button pressed
	EventPointerMove                  // pointer moved, button state unchanged
	EventPointerUp                    // pointer button released
	EventToggle                       // toggle animation request
	EventDragStart                    // a control point was grabbed
	EventDrag                         // a grabbed control point followed the pointer
	EventDragEnd                      // a grabbed control point was released
)

func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventToggle:
		return "toggle"
	case EventDragStart:
		return "drag-start"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag-end"
	default:
		return "unknown"
	}
}

// Renderer is the drawing capability provided by the host. The editor hands
// it NDC coordinates; mapping to pixels is the renderer's job.
type Renderer interface {
	// DrawLineStrip draws a connected polyline through points.
	DrawLineStrip(points []Vec2, width float64, c Color)
	// DrawPoints draws one square marker of the given pixel size per point.
	DrawPoints(points []Vec2, size float64, c Color)
}

// clampRange limits v to [lo, hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
