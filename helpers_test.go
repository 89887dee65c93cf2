// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"testing"

	"github.com/gogpu/swr/vertex"
)

// stageRecorder is a Shader and Rasterizer that logs every call and keeps
// the triangles it was handed.
type stageRecorder struct {
	calls     []string
	triangles [][3]vertex.Vertex
}

func (r *stageRecorder) ProcessVertex(_ *Context, _ *vertex.Vertex) {
	r.calls = append(r.calls, "vertex")
}

func (r *stageRecorder) ProcessTriangle(_ *Context, _, _, _ *vertex.Vertex) {
	r.calls = append(r.calls, "triangle")
}

func (r *stageRecorder) RasterizeTriangle(_ *Context, v0, v1, v2 *vertex.Vertex) {
	r.calls = append(r.calls, "raster")
	r.triangles = append(r.triangles, [3]vertex.Vertex{*v0, *v1, *v2})
}

// newRecordingContext returns a context whose shader and rasterizer are
// the same recorder.
func newRecordingContext(opts ...ContextOption) (*Context, *stageRecorder) {
	rec := &stageRecorder{}
	opts = append([]ContextOption{WithShader(rec), WithRasterizer(rec)}, opts...)
	return NewContext(opts...), rec
}

// packPositions packs n vertices whose position X is the vertex number.
func packPositions(f vertex.Format, n int) []byte {
	verts := make([]vertex.Vertex, n)
	for i := range verts {
		verts[i] = vertex.New()
		verts[i].Set(vertex.Pos, vertex.V4(float32(i), 0, 0, 1))
	}
	return vertex.Pack(f, verts...)
}

// triangleXs returns the position X of each corner.
func triangleXs(tri [3]vertex.Vertex) [3]float32 {
	return [3]float32{tri[0].Position().X, tri[1].Position().X, tri[2].Position().X}
}

func wantTriangles(t *testing.T, rec *stageRecorder, want int) {
	t.Helper()
	if len(rec.triangles) != want {
		t.Fatalf("dispatched %d triangles, want %d", len(rec.triangles), want)
	}
}
