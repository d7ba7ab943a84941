// Package bezier is the core of an interactive cubic Bézier curve editor.
//
// Four control points in normalized device coordinates define a curve that
// is resampled every frame. Control points can be grabbed and dragged with a
// pointer, and an optional drift animation nudges them over time. The
// package has no graphics dependency: drawing goes through the [Renderer]
// interface, and a window host (see package ebitenhost) feeds it frames and
// input events.
//
// # Quick start
//
//	editor, err := bezier.NewEditor(bezier.DefaultEditorConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Per input event, with pixel coordinates:
//	editor.PointerDownAt(x, y)
//	editor.PointerMoveAt(x, y)
//	editor.PointerUp()
//	editor.ToggleAnimation()
//
//	// Per frame:
//	editor.Update(dt)
//	editor.Draw(renderer)
//
// # Building blocks
//
// [Curve] evaluates and resamples the curve and owns the control points.
// [Controller] runs the press/drag/release state machine, selecting the
// lowest-index point within [DefaultHitRadius] of a press. [Animator]
// applies the additive drift, clamped to [-0.9, 0.9]. [Editor] wires the
// three together for a host and adds scripted input ([Editor.InjectDrag],
// [LoadTestScript]) for automated checks.
//
// Coordinates: [PixelToNDC] maps a window pixel (origin top-left, Y down) to
// NDC (origin center, Y up). The window size is always passed explicitly.
package bezier
