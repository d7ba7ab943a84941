package bezier

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newCapturedEditor(t *testing.T) (*Editor, *bytes.Buffer) {
	t.Helper()
	e := newTestEditor(t)
	var buf bytes.Buffer
	e.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return e, &buf
}

func TestDebugMode_LogsFrameStats(t *testing.T) {
	e, buf := newCapturedEditor(t)
	e.SetDebugMode(true)
	e.Update(1.0 / 60)

	out := buf.String()
	for _, want := range []string{"msg=frame", "component=bezier", "frame=1", "samples=100", "selected=-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMode_Off(t *testing.T) {
	e, buf := newCapturedEditor(t)
	e.Update(1.0 / 60)
	if strings.Contains(buf.String(), "msg=frame") {
		t.Errorf("frame stats logged with debug mode off:\n%s", buf.String())
	}
}

func TestDebugLog_DragEnd(t *testing.T) {
	e, buf := newCapturedEditor(t)
	e.PointerDownAt(200, 450)
	e.PointerMoveAt(400, 300)
	e.PointerUp()

	out := buf.String()
	if !strings.Contains(out, "control point moved") || !strings.Contains(out, "index=0") {
		t.Errorf("drag end not logged:\n%s", out)
	}
}

func TestDebugLog_Toggle(t *testing.T) {
	e, buf := newCapturedEditor(t)
	e.ToggleAnimation()
	if !strings.Contains(buf.String(), "enabled=true") {
		t.Errorf("toggle not logged:\n%s", buf.String())
	}
}
