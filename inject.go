package bezier

// syntheticEvent is a single injected input event. Positions are window
// pixels, converted to NDC with the current viewport exactly like host input.
type syntheticEvent struct {
	kind EventType
	x, y float64
}

// InjectPress queues a pointer press at the given pixel position. Queued
// events are consumed one per Update.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: EventPointerDown, x: x, y: y})
}

// InjectMove queues pointer motion to the given pixel position.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: EventPointerMove, x: x, y: y})
}

// InjectRelease queues a pointer release.
func (e *Editor) InjectRelease() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: EventPointerUp})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease()
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a final move to (toX, toY) and a release. frames is
// raised to 3 if smaller, so the point always arrives at the target.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease()
}

// InjectToggle queues an animation toggle request.
func (e *Editor) InjectToggle() {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: EventToggle})
}

// PendingInjections returns the number of queued synthetic events. Hosts
// skip real pointer input while this is non-zero.
func (e *Editor) PendingInjections() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event from the queue and dispatches it.
// Returns true if an event was consumed.
func (e *Editor) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case EventPointerDown:
		e.PointerDownAt(evt.x, evt.y)
	case EventPointerMove:
		e.PointerMoveAt(evt.x, evt.y)
	case EventPointerUp:
		e.PointerUp()
	case EventToggle:
		e.ToggleAnimation()
	}
	return true
}

// Screenshot queues a labeled screenshot request. The host drains the queue
// with TakeScreenshots after drawing the frame.
func (e *Editor) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (e *Editor) TakeScreenshots() []string {
	if len(e.screenshotQueue) == 0 {
		return nil
	}
	labels := make([]string, len(e.screenshotQueue))
	copy(labels, e.screenshotQueue)
	e.screenshotQueue = e.screenshotQueue[:0]
	return labels
}
