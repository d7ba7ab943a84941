package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/bezier"
)

// hudText formats the overlay text for the current editor state.
func hudText(editor *bezier.Editor, fps float64) string {
	anim := "off"
	if editor.Animator().Enabled() {
		anim = "on"
	}
	sel := "-"
	if i := editor.Controller().Selected(); i >= 0 {
		sel = fmt.Sprintf("P%d", i)
	}
	return fmt.Sprintf("FPS: %.1f  anim: %s  t: %.2f  drag: %s\n[space] animate  [r] reset  [f12] screenshot  [esc] quit",
		fps, anim, editor.Animator().Elapsed(), sel)
}

// drawHUD prints the overlay in the top-left corner.
func drawHUD(screen *ebiten.Image, editor *bezier.Editor) {
	ebitenutil.DebugPrint(screen, hudText(editor, ebiten.ActualFPS()))
}
