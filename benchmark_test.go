// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"testing"

	"github.com/gogpu/swr/vertex"
)

var benchFormat = vertex.Format{
	Position: vertex.PositionF3,
	Normal:   true,
	Color:    vertex.ColorUB4,
	Tex0:     true,
}

func BenchmarkDrawTriangles(b *testing.B) {
	const n = 3 * 1024
	ctx := NewContext(WithFormat(benchFormat))
	ctx.SetVertexBuffer(packPositions(benchFormat, n))

	b.ReportAllocs()
	b.SetBytes(int64(n * benchFormat.Stride()))
	for b.Loop() {
		if err := ctx.DrawTriangles(n); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDrawTrianglesIndexed(b *testing.B) {
	const n = 1024
	ctx := NewContext(WithFormat(benchFormat))
	ctx.SetVertexBuffer(packPositions(benchFormat, n))
	indices := make(Uint32Indices, 3*n)
	for i := range indices {
		indices[i] = uint32((i * 7) % n)
	}
	ctx.SetIndexBuffer(indices)

	b.ReportAllocs()
	for b.Loop() {
		if err := ctx.DrawTrianglesIndexed(n, len(indices)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkImmediate(b *testing.B) {
	ctx := NewContext()
	b.ReportAllocs()
	for b.Loop() {
		ctx.Begin()
		for i := range 300 {
			ctx.Color(1, 0, 0, 1)
			ctx.Vertex(float32(i), 0, 0, 1)
		}
		ctx.End()
	}
}
