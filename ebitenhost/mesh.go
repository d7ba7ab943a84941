package ebitenhost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/bezier"
)

// maxMiterScale caps the miter extension at sharp corners.
const maxMiterScale = 2.0

// appendStrip appends a ribbon mesh following points (pixel space) to verts
// and inds. For N points: 2N vertices, 6(N-1) indices. Colors are
// premultiplied. Fewer than two points append nothing.
func appendStrip(verts []ebiten.Vertex, inds []uint16, points []bezier.Vec2, width float64, c bezier.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 2 {
		return verts, inds
	}
	halfW := width / 2
	base := uint16(len(verts))
	cr, cg, cb, ca := premultiply(c)

	for i := 0; i < n; i++ {
		var nx, ny float64
		switch i {
		case 0:
			nx, ny = perpendicular(points[0], points[1])
		case n - 1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			// Average of adjacent segment normals (miter).
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			if ln := math.Hypot(nx, ny); ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				scale := math.Min(1.0/dot, maxMiterScale)
				nx *= scale
				ny *= scale
			}
		}

		p := points[i]
		verts = append(verts,
			ebiten.Vertex{
				DstX: float32(p.X + nx*halfW), DstY: float32(p.Y + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(p.X - nx*halfW), DstY: float32(p.Y - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		inds = append(inds, v, v+1, v+2, v+1, v+3, v+2)
	}
	return verts, inds
}

// appendSquares appends one axis-aligned square of edge size centered on
// each point (pixel space). 4 vertices and 6 indices per point.
func appendSquares(verts []ebiten.Vertex, inds []uint16, points []bezier.Vec2, size float64, c bezier.Color) ([]ebiten.Vertex, []uint16) {
	h := size / 2
	cr, cg, cb, ca := premultiply(c)
	for _, p := range points {
		v := uint16(len(verts))
		for _, off := range [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
			verts = append(verts, ebiten.Vertex{
				DstX: float32(p.X + off[0]), DstY: float32(p.Y + off[1]),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		inds = append(inds, v, v+1, v+2, v, v+2, v+3)
	}
	return verts, inds
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b bezier.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

func premultiply(c bezier.Color) (r, g, b, a float32) {
	a = float32(c.A)
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}

// toRGBA converts a straight-alpha color to premultiplied color.RGBA.
func toRGBA(c bezier.Color) color.RGBA {
	r, g, b, a := premultiply(c)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// --- White pixel singleton (single-threaded host) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of all untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
