package bezier

import "testing"

func TestInjectClick(t *testing.T) {
	e := newTestEditor(t)

	var started, ended bool
	e.Controller().OnDragStart(func(DragContext) { started = true })
	e.Controller().OnDragEnd(func(DragContext) { ended = true })

	e.InjectClick(200, 450)
	if e.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued events, got %d", e.PendingInjections())
	}

	// Frame 1: press
	e.Update(1.0 / 60)
	if e.PendingInjections() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", e.PendingInjections())
	}
	if !started || ended {
		t.Error("press frame should start the drag only")
	}

	// Frame 2: release
	e.Update(1.0 / 60)
	if e.PendingInjections() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", e.PendingInjections())
	}
	if !ended {
		t.Error("release frame should end the drag")
	}
}

func TestInjectDrag(t *testing.T) {
	e := newTestEditor(t)

	e.InjectDrag(200, 450, 400, 300, 6)
	// press + 4 moves + release
	if e.PendingInjections() != 6 {
		t.Fatalf("expected 6 queued events, got %d", e.PendingInjections())
	}

	var moves int
	e.Controller().OnDrag(func(DragContext) { moves++ })

	for e.PendingInjections() > 0 {
		e.Update(1.0 / 60)
	}
	if moves != 4 {
		t.Errorf("drag fired %d times, want 4", moves)
	}
	if got, _ := e.Curve().ControlPoint(0); got != (Vec2{}) {
		t.Errorf("P0 = %v, want origin", got)
	}
	if e.Controller().Dragging() {
		t.Error("still dragging after injected release")
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	e := newTestEditor(t)
	e.InjectDrag(200, 450, 600, 150, 1)
	if e.PendingInjections() != 3 {
		t.Fatalf("expected 3 queued events, got %d", e.PendingInjections())
	}
	last := e.injectQueue[1]
	if last.kind != EventPointerMove || last.x != 600 || last.y != 150 {
		t.Errorf("final move = %+v, want move to (600, 150)", last)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	e := newTestEditor(t)
	e.InjectDrag(0, 0, 100, 200, 6)

	want := [][2]float64{{25, 50}, {50, 100}, {75, 150}, {100, 200}}
	for i, w := range want {
		evt := e.injectQueue[i+1]
		if evt.kind != EventPointerMove || evt.x != w[0] || evt.y != w[1] {
			t.Errorf("move %d = %+v, want (%v, %v)", i, evt, w[0], w[1])
		}
	}
	if e.injectQueue[0].kind != EventPointerDown || e.injectQueue[5].kind != EventPointerUp {
		t.Error("drag should start with a press and end with a release")
	}
}

func TestInjectToggle(t *testing.T) {
	e := newTestEditor(t)
	e.InjectToggle()
	e.Update(1.0 / 60)
	if !e.Animator().Enabled() {
		t.Error("injected toggle did not enable animation")
	}
}

func TestInjectOnePerFrame(t *testing.T) {
	e := newTestEditor(t)
	e.InjectMove(10, 10)
	e.InjectMove(20, 20)
	e.InjectMove(30, 30)

	for want := 2; want >= 0; want-- {
		e.Update(1.0 / 60)
		if e.PendingInjections() != want {
			t.Errorf("pending = %d, want %d", e.PendingInjections(), want)
		}
	}
	if got := e.Controller().LastPointer(); got != PixelToNDC(30, 30, 800, 600) {
		t.Errorf("LastPointer() = %v", got)
	}
}

func TestTakeScreenshots(t *testing.T) {
	e := newTestEditor(t)
	if got := e.TakeScreenshots(); got != nil {
		t.Errorf("TakeScreenshots() = %v, want nil", got)
	}

	e.Screenshot("a")
	e.Screenshot("b")
	got := e.TakeScreenshots()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("TakeScreenshots() = %v, want [a b]", got)
	}
	if again := e.TakeScreenshots(); again != nil {
		t.Errorf("queue not cleared: %v", again)
	}

	// The returned slice survives later requests.
	e.Screenshot("c")
	if got[0] != "a" {
		t.Errorf("returned labels changed to %v", got)
	}
}
