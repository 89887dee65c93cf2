// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/vertex"
)

// Passthrough is a shading stage that leaves vertices untouched.
type Passthrough struct{}

// ProcessVertex does nothing.
func (Passthrough) ProcessVertex(*swr.Context, *vertex.Vertex) {}

// ProcessTriangle does nothing.
func (Passthrough) ProcessTriangle(*swr.Context, *vertex.Vertex, *vertex.Vertex, *vertex.Vertex) {}

// Transform is a shading stage that projects vertices to window
// coordinates.
//
// The vertex stage multiplies the position by MVP and, when the vertex
// carries a normal, multiplies the normal by NormalMatrix and normalizes
// it. The triangle stage divides each position by w and maps it through
// Viewport. The resulting W holds 1/w for perspective-correct
// interpolation.
type Transform struct {
	MVP          Mat4
	NormalMatrix Mat4
	Viewport     Viewport
}

// NewTransform creates a transform stage with an identity normal matrix.
func NewTransform(mvp Mat4, vp Viewport) *Transform {
	return &Transform{MVP: mvp, NormalMatrix: Identity(), Viewport: vp}
}

// ProcessVertex transforms the position to clip space and the normal by
// the normal matrix.
func (t *Transform) ProcessVertex(_ *swr.Context, v *vertex.Vertex) {
	v.Attribs[vertex.Pos] = t.MVP.Apply(v.Attribs[vertex.Pos])

	if !v.Used.Has(vertex.FlagNormal) {
		return
	}
	n := v.Attribs[vertex.Normal]
	n.W = 0
	v.Attribs[vertex.Normal] = normalize(t.NormalMatrix.Apply(n))
}

// ProcessTriangle performs the perspective divide and viewport mapping
// on each corner.
func (t *Transform) ProcessTriangle(_ *swr.Context, v0, v1, v2 *vertex.Vertex) {
	t.project(v0)
	t.project(v1)
	t.project(v2)
}

// project leaves vertices with w == 0 or non-finite w in clip space.
func (t *Transform) project(v *vertex.Vertex) {
	p := v.Attribs[vertex.Pos]
	if p.W == 0 || math32.IsNaN(p.W) || math32.IsInf(p.W, 0) {
		return
	}
	inv := 1 / p.W
	x, y, z := t.Viewport.Map(p.X*inv, p.Y*inv, p.Z*inv)
	v.Attribs[vertex.Pos] = vertex.Vec4{X: x, Y: y, Z: z, W: inv}
}

// normalize scales the xyz part of n to unit length. Zero vectors are
// returned unchanged.
func normalize(n vertex.Vec4) vertex.Vec4 {
	l := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 {
		return n
	}
	return vertex.Vec4{X: n.X / l, Y: n.Y / l, Z: n.Z / l}
}

// Chain runs shading stages in order.
type Chain []swr.Shader

// ProcessVertex runs each stage's vertex step.
func (c Chain) ProcessVertex(ctx *swr.Context, v *vertex.Vertex) {
	for _, s := range c {
		s.ProcessVertex(ctx, v)
	}
}

// ProcessTriangle runs each stage's triangle step.
func (c Chain) ProcessTriangle(ctx *swr.Context, v0, v1, v2 *vertex.Vertex) {
	for _, s := range c {
		s.ProcessTriangle(ctx, v0, v1, v2)
	}
}

var (
	_ swr.Shader = Passthrough{}
	_ swr.Shader = (*Transform)(nil)
	_ swr.Shader = Chain(nil)
)
