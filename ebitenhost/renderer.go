package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bezier"
)

// Renderer draws editor geometry onto an ebiten image. It implements
// bezier.Renderer. Call Begin with the frame's target before handing it to
// Editor.Draw.
type Renderer struct {
	target        *ebiten.Image
	width, height float64

	// Buffers grow to a high-water mark and are reused every frame.
	pixels []bezier.Vec2
	verts  []ebiten.Vertex
	inds   []uint16
	op     ebiten.DrawTrianglesOptions
}

// NewRenderer creates a renderer with no target.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	r.op.AntiAlias = true
	return r
}

// Begin sets the draw target and takes the NDC mapping from its bounds.
func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
	b := target.Bounds()
	r.width = float64(b.Dx())
	r.height = float64(b.Dy())
}

// toPixels maps NDC points to target pixels into the reused buffer.
func (r *Renderer) toPixels(points []bezier.Vec2) []bezier.Vec2 {
	r.pixels = r.pixels[:0]
	for _, p := range points {
		x, y := bezier.NDCToPixel(p, r.width, r.height)
		r.pixels = append(r.pixels, bezier.Vec2{X: x, Y: y})
	}
	return r.pixels
}

// DrawLineStrip implements bezier.Renderer.
func (r *Renderer) DrawLineStrip(points []bezier.Vec2, width float64, c bezier.Color) {
	if r.target == nil || len(points) < 2 {
		return
	}
	r.verts, r.inds = appendStrip(r.verts[:0], r.inds[:0], r.toPixels(points), width, c)
	r.target.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.op)
}

// DrawPoints implements bezier.Renderer.
func (r *Renderer) DrawPoints(points []bezier.Vec2, size float64, c bezier.Color) {
	if r.target == nil || len(points) == 0 {
		return
	}
	r.verts, r.inds = appendSquares(r.verts[:0], r.inds[:0], r.toPixels(points), size, c)
	r.target.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.op)
}
