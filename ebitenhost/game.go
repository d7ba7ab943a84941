// Package ebitenhost runs a bezier.Editor in an Ebitengine window.
//
// The host owns everything the core leaves out: the window, the render
// loop, mouse and keyboard polling, drawing through DrawTriangles and
// screenshot files. Keys: Space toggles the drift animation, R resets the
// layout, F12 takes a screenshot, Escape quits.
package ebitenhost

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/bezier"
)

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	TPS           int  // ticks per second; 0 keeps ebiten's default
	ShowHUD       bool // draw the FPS / key help overlay
	ScreenshotDir string
	Logger        *slog.Logger
}

// Game implements ebiten.Game around an editor.
type Game struct {
	editor   *bezier.Editor
	renderer *Renderer
	cfg      RunConfig
	logger   *slog.Logger

	mouseX, mouseY int
}

// NewGame creates a Game for editor.
func NewGame(editor *bezier.Editor, cfg RunConfig) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return &Game{
		editor:   editor,
		renderer: NewRenderer(),
		cfg:      cfg,
		logger:   logger.With("component", "ebitenhost"),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.editor.ToggleAnimation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.editor.ResetLayout()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.editor.Screenshot("manual")
	}

	// Scripted input owns the pointer until its queue drains.
	if g.editor.PendingInjections() == 0 {
		g.processMouse()
	}

	g.editor.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// processMouse forwards left-button edges and cursor motion as pointer
// events, in that order within a frame.
func (g *Game) processMouse() {
	mx, my := ebiten.CursorPosition()
	moved := mx != g.mouseX || my != g.mouseY
	g.mouseX, g.mouseY = mx, my
	x, y := float64(mx), float64(my)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.editor.PointerDownAt(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.editor.PointerUp()
	case moved:
		g.editor.PointerMoveAt(x, y)
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.editor.Style()
	screen.Fill(toRGBA(st.ClearColor))

	g.renderer.Begin(screen)
	g.editor.Draw(g.renderer)

	if g.cfg.ShowHUD {
		drawHUD(screen, g.editor)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The editor maps pointer pixels with the
// outside size, so resizes take effect on the next event.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.editor.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and runs editor until the window is closed or Escape
// is pressed.
func Run(editor *bezier.Editor, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		editor.SetViewport(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(editor, cfg)
	g.logger.Info("starting editor", "width", cfg.Width, "height", cfg.Height, "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
