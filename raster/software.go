// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/vertex"
)

// Software is a rasterization stage that fills triangles into a
// PixmapTarget.
//
// Vertex positions are taken as window coordinates: X right and Y down in
// pixels, with W holding 1/w for perspective-correct color interpolation
// (1 for affine). Coverage is anti-aliased by golang.org/x/image/vector
// and colors are interpolated across the triangle from the vertex colors.
// Triangles of either winding are filled; degenerate and non-finite
// triangles are rejected.
//
// Software is not safe for concurrent use.
type Software struct {
	target *PixmapTarget
	z      *vector.Rasterizer
	op     draw.Op

	drawn    int
	rejected int
}

// NewSoftware creates a software rasterizer drawing into target.
func NewSoftware(target *PixmapTarget) *Software {
	return &Software{
		target: target,
		z:      vector.NewRasterizer(0, 0),
		op:     draw.Over,
	}
}

// SetOp selects how triangles are composited onto the target.
// The default is draw.Over.
func (s *Software) SetOp(op draw.Op) {
	s.op = op
}

// Target returns the render target.
func (s *Software) Target() *PixmapTarget {
	return s.target
}

// Drawn returns the number of triangles that produced coverage.
func (s *Software) Drawn() int { return s.drawn }

// Rejected returns the number of triangles dropped as degenerate or
// entirely outside the target.
func (s *Software) Rejected() int { return s.rejected }

// RasterizeTriangle fills the triangle v0, v1, v2.
func (s *Software) RasterizeTriangle(_ *swr.Context, v0, v1, v2 *vertex.Vertex) {
	if s.target == nil {
		swr.Logger().Warn("raster: software rasterizer has no target")
		return
	}

	g, ok := newGouraud(v0, v1, v2)
	if !ok {
		s.rejected++
		swr.Logger().Debug("raster: rejected degenerate triangle",
			"x", g.x, "y", g.y)
		return
	}

	clip := s.target.Bounds()
	bbox := g.bounds(clip).Intersect(clip)
	if bbox.Empty() {
		s.rejected++
		return
	}

	s.z.Reset(bbox.Dx(), bbox.Dy())
	s.z.DrawOp = s.op
	ox, oy := float32(bbox.Min.X), float32(bbox.Min.Y)
	s.z.MoveTo(g.x[0]-ox, g.y[0]-oy)
	s.z.LineTo(g.x[1]-ox, g.y[1]-oy)
	s.z.LineTo(g.x[2]-ox, g.y[2]-oy)
	s.z.ClosePath()
	s.z.Draw(s.target.img, bbox, g, bbox.Min)
	s.drawn++
}

// gouraud is an image.Image whose color at each pixel center is the
// barycentric blend of the triangle's vertex colors.
type gouraud struct {
	x, y    [3]float32
	c       [3]vertex.Vec4
	q       [3]float32 // per-vertex 1/w
	invArea float32
	rect    image.Rectangle
}

// newGouraud returns false for zero-area or non-finite triangles.
func newGouraud(v0, v1, v2 *vertex.Vertex) (*gouraud, bool) {
	g := &gouraud{}
	perspective := true
	for i, v := range [3]*vertex.Vertex{v0, v1, v2} {
		p := v.Position()
		if !finite(p.X) || !finite(p.Y) {
			return g, false
		}
		g.x[i], g.y[i] = p.X, p.Y
		g.c[i] = v.ColorValue()
		g.q[i] = p.W
		if !(p.W > 0) || !finite(p.W) {
			perspective = false
		}
	}
	if !perspective {
		g.q = [3]float32{1, 1, 1}
	}

	area := edge(g.x[0], g.y[0], g.x[1], g.y[1], g.x[2], g.y[2])
	if area == 0 || !finite(area) {
		return g, false
	}
	g.invArea = 1 / area
	return g, true
}

// bounds returns the pixel bounding box, clamped to one pixel around
// clip so that huge coordinates convert to int safely.
func (g *gouraud) bounds(clip image.Rectangle) image.Rectangle {
	minX := math32.Min(g.x[0], math32.Min(g.x[1], g.x[2]))
	minY := math32.Min(g.y[0], math32.Min(g.y[1], g.y[2]))
	maxX := math32.Max(g.x[0], math32.Max(g.x[1], g.x[2]))
	maxY := math32.Max(g.y[0], math32.Max(g.y[1], g.y[2]))

	g.rect = image.Rect(
		clampPixel(math32.Floor(minX), clip.Min.X, clip.Max.X),
		clampPixel(math32.Floor(minY), clip.Min.Y, clip.Max.Y),
		clampPixel(math32.Ceil(maxX), clip.Min.X, clip.Max.X),
		clampPixel(math32.Ceil(maxY), clip.Min.Y, clip.Max.Y),
	)
	return g.rect
}

func clampPixel(v float32, lo, hi int) int {
	return int(math32.Min(math32.Max(v, float32(lo-1)), float32(hi+1)))
}

func (g *gouraud) ColorModel() color.Model { return color.NRGBA64Model }

func (g *gouraud) Bounds() image.Rectangle { return g.rect }

func (g *gouraud) At(px, py int) color.Color {
	fx, fy := float32(px)+0.5, float32(py)+0.5
	w := [3]float32{
		edge(g.x[1], g.y[1], g.x[2], g.y[2], fx, fy) * g.invArea,
		edge(g.x[2], g.y[2], g.x[0], g.y[0], fx, fy) * g.invArea,
	}
	w[2] = 1 - w[0] - w[1]

	// Anti-aliased edge pixels have centers slightly outside the
	// triangle; clamp to the nearest point inside.
	var sum float32
	for i := range w {
		w[i] = math32.Max(w[i], 0) * g.q[i]
		sum += w[i]
	}
	if sum == 0 {
		return color.NRGBA64{}
	}

	var c vertex.Vec4
	for i := range w {
		k := w[i] / sum
		c.X += k * g.c[i].X
		c.Y += k * g.c[i].Y
		c.Z += k * g.c[i].Z
		c.W += k * g.c[i].W
	}
	return color.NRGBA64{R: unorm16(c.X), G: unorm16(c.Y), B: unorm16(c.Z), A: unorm16(c.W)}
}

// edge is twice the signed area of triangle a, b, p.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func unorm16(f float32) uint16 {
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 0xffff
	}
	return uint16(f*0xffff + 0.5)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

var _ swr.Rasterizer = (*Software)(nil)
