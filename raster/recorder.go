// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"github.com/gogpu/swr"
	"github.com/gogpu/swr/vertex"
)

// Triangle is a copy of the three vertices a rasterizer received.
type Triangle [3]vertex.Vertex

// Recorder is a rasterization stage that keeps a copy of every triangle.
type Recorder struct {
	Triangles []Triangle
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RasterizeTriangle records the triangle.
func (r *Recorder) RasterizeTriangle(_ *swr.Context, v0, v1, v2 *vertex.Vertex) {
	r.Triangles = append(r.Triangles, Triangle{*v0, *v1, *v2})
}

// Len returns the number of recorded triangles.
func (r *Recorder) Len() int {
	return len(r.Triangles)
}

// Reset drops all recorded triangles and keeps the storage.
func (r *Recorder) Reset() {
	r.Triangles = r.Triangles[:0]
}

// Discard is a rasterization stage that drops every triangle.
type Discard struct{}

// RasterizeTriangle does nothing.
func (Discard) RasterizeTriangle(*swr.Context, *vertex.Vertex, *vertex.Vertex, *vertex.Vertex) {}

var (
	_ swr.Rasterizer = (*Recorder)(nil)
	_ swr.Rasterizer = Discard{}
)
