package bezier

import "gonum.org/v1/gonum/spatial/r2"

// DefaultHitRadius is the pick distance around a control point, in NDC units.
const DefaultHitRadius = 0.1

// noSelection is the selected index while no control point is grabbed.
const noSelection = -1

// --- Hit shape ---

// HitCircle is a circular hit area in NDC.
type HitCircle struct {
	Center Vec2
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c HitCircle) Contains(p Vec2) bool {
	return r2.Norm2(r2.Sub(p, c.Center)) <= c.Radius*c.Radius
}

// --- Coordinate conversion ---

// PixelToNDC maps a window pixel position to normalized device coordinates.
// Pixel origin is the top-left corner with Y down; NDC origin is the center
// with Y up. width and height must be positive.
func PixelToNDC(px, py, width, height float64) Vec2 {
	return Vec2{
		X: 2*px/width - 1,
		Y: -(2*py/height - 1),
	}
}

// NDCToPixel is the inverse of PixelToNDC.
func NDCToPixel(p Vec2, width, height float64) (float64, float64) {
	return (p.X + 1) * width / 2, (1 - p.Y) * height / 2
}

// --- Handler registry ---

// DragContext describes a drag event on a control point.
type DragContext struct {
	Index    int  // grabbed control point
	Position Vec2 // pointer position, NDC
	Start    Vec2 // pointer position at press time, NDC
	Delta    Vec2 // movement since the previous drag event
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	dragStart []dragHandler
	drag      []dragHandler
	dragEnd   []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	}
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(DragContext)) CallbackHandle {
	r.nextID++
	h := dragHandler{id: r.nextID, fn: fn}
	switch event {
	case EventDragStart:
		r.dragStart = append(r.dragStart, h)
	case EventDrag:
		r.drag = append(r.drag, h)
	case EventDragEnd:
		r.dragEnd = append(r.dragEnd, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

func fireDrag(handlers []dragHandler, ctx DragContext) {
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// --- Controller ---

// InteractionState is a snapshot of the controller's pointer state.
type InteractionState struct {
	Selected    int  // grabbed control point index, -1 if none
	Dragging    bool // a drag is in progress
	LastPointer Vec2 // last known pointer position, NDC
}

// Controller turns pointer input into control point edits.
//
// It is a two-state machine. While idle, a press grabs the first control
// point (in index order) within the hit radius and snaps it to the pointer.
// While dragging, every move writes the pointer position into the grabbed
// point until the pointer is released.
type Controller struct {
	curve     *Curve
	hitRadius float64

	selected int
	dragging bool
	start    Vec2
	last     Vec2

	handlers handlerRegistry
}

// NewController creates an idle controller editing curve. A non-positive
// hitRadius falls back to DefaultHitRadius.
func NewController(curve *Curve, hitRadius float64) *Controller {
	if hitRadius <= 0 {
		hitRadius = DefaultHitRadius
	}
	return &Controller{
		curve:     curve,
		hitRadius: hitRadius,
		selected:  noSelection,
	}
}

// HitRadius returns the pick distance in NDC units.
func (c *Controller) HitRadius() float64 {
	return c.hitRadius
}

// SetHitRadius sets the pick distance. Non-positive values are ignored.
func (c *Controller) SetHitRadius(r float64) {
	if r > 0 {
		c.hitRadius = r
	}
}

// HitTest returns the index of the first control point within the hit
// radius of p, or -1. Lower indices win when several points are in range.
func (c *Controller) HitTest(p Vec2) int {
	points := c.curve.ControlPoints()
	for i, cp := range points {
		if (HitCircle{Center: cp, Radius: c.hitRadius}).Contains(p) {
			return i
		}
	}
	return noSelection
}

// PointerDown handles a press at p (NDC). A press while already dragging is
// ignored.
func (c *Controller) PointerDown(p Vec2) {
	c.last = p
	if c.dragging {
		return
	}
	i := c.HitTest(p)
	if i == noSelection {
		return
	}
	// i comes from HitTest, so the index is always valid.
	_ = c.curve.SetControlPoint(i, p)
	c.selected = i
	c.dragging = true
	c.start = p
	fireDrag(c.handlers.dragStart, DragContext{Index: i, Position: p, Start: p})
}

// PointerMove handles pointer motion to q (NDC).
func (c *Controller) PointerMove(q Vec2) {
	prev := c.last
	c.last = q
	if !c.dragging {
		return
	}
	_ = c.curve.SetControlPoint(c.selected, q)
	fireDrag(c.handlers.drag, DragContext{
		Index: c.selected, Position: q, Start: c.start, Delta: r2.Sub(q, prev),
	})
}

// PointerUp handles a release. It ends any drag without moving a point.
func (c *Controller) PointerUp() {
	if !c.dragging {
		return
	}
	ctx := DragContext{Index: c.selected, Position: c.last, Start: c.start}
	c.selected = noSelection
	c.dragging = false
	fireDrag(c.handlers.dragEnd, ctx)
}

// Selected returns the grabbed control point index, or -1.
func (c *Controller) Selected() int {
	return c.selected
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// LastPointer returns the last pointer position seen, in NDC.
func (c *Controller) LastPointer() Vec2 {
	return c.last
}

// State returns a snapshot of the interaction state.
func (c *Controller) State() InteractionState {
	return InteractionState{Selected: c.selected, Dragging: c.dragging, LastPointer: c.last}
}

// OnDragStart registers a callback fired when a press grabs a control point.
func (c *Controller) OnDragStart(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDragStart, fn)
}

// OnDrag registers a callback fired on every move while dragging.
func (c *Controller) OnDrag(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDrag, fn)
}

// OnDragEnd registers a callback fired when a drag is released.
func (c *Controller) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return c.handlers.add(EventDragEnd, fn)
}
