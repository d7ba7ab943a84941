package bezier

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultResetDuration is how long ResetLayout takes to return the control
// points to their initial layout, in seconds.
const DefaultResetDuration = 0.6

// DefaultControlPoints is the initial layout used when none is configured.
var DefaultControlPoints = [NumControlPoints]Vec2{
	{X: -0.5, Y: -0.5},
	{X: -0.2, Y: 0.8},
	{X: 0.2, Y: -0.8},
	{X: 0.5, Y: 0.5},
}

// Style holds the colors and sizes the editor hands to the Renderer.
type Style struct {
	CurveColor Color
	PointColor Color
	ClearColor Color
	CurveWidth float64 // line strip width in pixels
	PointSize  float64 // marker edge length in pixels
}

// DefaultStyle returns green curve lines over magenta control points on black.
func DefaultStyle() Style {
	return Style{
		CurveColor: ColorGreen,
		PointColor: ColorMagenta,
		ClearColor: ColorBlack,
		CurveWidth: 2,
		PointSize:  10,
	}
}

// EditorConfig configures an Editor.
type EditorConfig struct {
	ControlPoints  [NumControlPoints]Vec2
	Samples        int     // points per resample, at least 2
	HitRadius      float64 // NDC units, positive
	AnimationSpeed float64 // drift amplitude, non-negative
	AnimationBound float64 // clamp limit, in (0, 1]
	Animate        bool    // start with animation enabled
	ResetDuration  float32 // seconds; zero or less resets instantly
	Width, Height  int     // initial viewport in pixels
	Style          Style
}

// DefaultEditorConfig returns the configuration of the reference editor.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		ControlPoints:  DefaultControlPoints,
		Samples:        DefaultSamples,
		HitRadius:      DefaultHitRadius,
		AnimationSpeed: DefaultAnimationSpeed,
		AnimationBound: DefaultAnimationBound,
		ResetDuration:  DefaultResetDuration,
		Width:          800,
		Height:         600,
		Style:          DefaultStyle(),
	}
}

func (c EditorConfig) validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("samples %d: must be at least 2", c.Samples)
	}
	if c.HitRadius <= 0 {
		return fmt.Errorf("hit radius %v: must be positive", c.HitRadius)
	}
	if c.AnimationSpeed < 0 {
		return fmt.Errorf("animation speed %v: must not be negative", c.AnimationSpeed)
	}
	if c.AnimationBound <= 0 || c.AnimationBound > 1 {
		return fmt.Errorf("animation bound %v: must be in (0, 1]", c.AnimationBound)
	}
	return nil
}

// Editor runs one interactive curve. The host calls Update and Draw once per
// frame and forwards pointer and key events in between. All methods must be
// called from the host's update goroutine.
type Editor struct {
	cfg        EditorConfig
	curve      *Curve
	controller *Controller
	animator   *Animator
	tween      *TweenGroup

	samples       []Vec2
	width, height int
	frame         uint64

	logger *slog.Logger
	debug  bool

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewEditor creates an editor from cfg and computes the initial samples.
func NewEditor(cfg EditorConfig) (*Editor, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("new editor: %w", err)
	}
	curve := NewCurve(cfg.ControlPoints)
	e := &Editor{
		cfg:        cfg,
		curve:      curve,
		controller: NewController(curve, cfg.HitRadius),
		animator:   NewAnimator(curve, cfg.AnimationSpeed, cfg.AnimationBound),
		samples:    make([]Vec2, 0, cfg.Samples),
		width:      cfg.Width,
		height:     cfg.Height,
		logger:     slog.Default().With("component", "bezier"),
	}
	e.animator.SetEnabled(cfg.Animate)

	// Grabbing a point takes over from a running reset.
	e.controller.OnDragStart(func(ctx DragContext) {
		if e.tween != nil {
			e.tween.Stop()
			e.tween = nil
		}
	})
	e.controller.OnDragEnd(func(ctx DragContext) {
		e.logger.Debug("control point moved", "index", ctx.Index,
			"x", ctx.Position.X, "y", ctx.Position.Y)
	})

	e.resample()
	return e, nil
}

// SetLogger replaces the editor's logger.
func (e *Editor) SetLogger(l *slog.Logger) {
	e.logger = l.With("component", "bezier")
}

// SetDebugMode enables or disables per-frame debug stats, logged at Debug
// level.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Curve returns the edited curve.
func (e *Editor) Curve() *Curve {
	return e.curve
}

// Controller returns the pointer interaction controller.
func (e *Editor) Controller() *Controller {
	return e.controller
}

// Animator returns the drift animator.
func (e *Editor) Animator() *Animator {
	return e.animator
}

// Style returns the draw style.
func (e *Editor) Style() Style {
	return e.cfg.Style
}

// Frame returns the number of Update calls so far.
func (e *Editor) Frame() uint64 {
	return e.frame
}

// Samples returns the points computed by the last Update. The slice is
// reused by the next Update and MUST NOT be retained or mutated.
func (e *Editor) Samples() []Vec2 {
	return e.samples
}

// SetViewport records the window size used for pixel to NDC conversion.
func (e *Editor) SetViewport(width, height int) {
	e.width = width
	e.height = height
}

// Viewport returns the window size in pixels.
func (e *Editor) Viewport() (int, int) {
	return e.width, e.height
}

// Update runs one frame: scripted input, then the reset tween or the drift
// animation, then a full resample of the curve.
func (e *Editor) Update(dt float64) {
	e.frame++

	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()

	if e.tween != nil {
		e.tween.Update(float32(dt))
		if e.tween.Done {
			e.tween = nil
		}
	} else {
		e.animator.Advance(dt)
	}

	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.resample()

	if e.debug {
		stats.resampleTime = time.Since(t0)
		stats.sampleCount = len(e.samples)
		stats.pendingEvents = len(e.injectQueue)
		stats.selected = e.controller.Selected()
		e.debugLog(stats)
	}
}

func (e *Editor) resample() {
	e.samples = e.curve.AppendSamples(e.samples[:0], e.cfg.Samples)
}

// Draw hands the control points and the current samples to r.
func (e *Editor) Draw(r Renderer) {
	points := e.curve.ControlPoints()
	st := e.cfg.Style
	r.DrawPoints(points[:], st.PointSize, st.PointColor)
	r.DrawLineStrip(e.samples, st.CurveWidth, st.CurveColor)
}

// toNDC converts a pixel position using the current viewport. ok is false
// while the viewport is empty.
func (e *Editor) toNDC(px, py float64) (p Vec2, ok bool) {
	if e.width <= 0 || e.height <= 0 {
		return Vec2{}, false
	}
	return PixelToNDC(px, py, float64(e.width), float64(e.height)), true
}

// PointerDownAt forwards a press at window pixel (px, py).
func (e *Editor) PointerDownAt(px, py float64) {
	if p, ok := e.toNDC(px, py); ok {
		e.controller.PointerDown(p)
	}
}

// PointerMoveAt forwards pointer motion to window pixel (px, py).
func (e *Editor) PointerMoveAt(px, py float64) {
	if p, ok := e.toNDC(px, py); ok {
		e.controller.PointerMove(p)
	}
}

// PointerUp forwards a release. The release position is not needed: a
// release never moves a control point.
func (e *Editor) PointerUp() {
	e.controller.PointerUp()
}

// ToggleAnimation flips the drift animation on or off and returns the new
// state.
func (e *Editor) ToggleAnimation() bool {
	on := e.animator.Toggle()
	e.logger.Debug("animation toggled", "enabled", on, "elapsed", e.animator.Elapsed())
	return on
}

// ResetLayout moves the control points back to the configured layout,
// tweened over the configured reset duration. A drag in progress is ended.
func (e *Editor) ResetLayout() {
	e.controller.PointerUp()
	if e.cfg.ResetDuration <= 0 {
		for i, p := range e.cfg.ControlPoints {
			_ = e.curve.SetControlPoint(i, p)
		}
		e.tween = nil
		return
	}
	e.tween = TweenControlPoints(e.curve, e.cfg.ControlPoints, e.cfg.ResetDuration, ease.OutCubic)
}

// Resetting reports whether a reset tween is running.
func (e *Editor) Resetting() bool {
	return e.tween != nil
}
