// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/swr/vertex"
)

var posF3 = vertex.Format{Position: vertex.PositionF3}

func TestDrawTriangles_TruncatesToWholeTriangles(t *testing.T) {
	tests := []struct {
		count         int
		wantTriangles int
		wantDiscarded int
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{9, 3, 0},
		{10, 3, 1},
		{11, 3, 2},
	}
	for _, tt := range tests {
		ctx, rec := newRecordingContext(WithFormat(posF3))
		ctx.SetVertexBuffer(packPositions(posF3, 12))

		if err := ctx.DrawTriangles(tt.count); err != nil {
			t.Fatalf("DrawTriangles(%d) = %v", tt.count, err)
		}
		if len(rec.triangles) != tt.wantTriangles {
			t.Errorf("DrawTriangles(%d) dispatched %d triangles, want %d",
				tt.count, len(rec.triangles), tt.wantTriangles)
		}
		st := ctx.Stats()
		if st.Vertices != 3*tt.wantTriangles || st.Discarded != tt.wantDiscarded {
			t.Errorf("DrawTriangles(%d) stats = %+v", tt.count, st)
		}
	}
}

func TestDrawTriangles_SequentialOrder(t *testing.T) {
	f := vertex.Format{Position: vertex.PositionF2, Color: vertex.ColorUB3}
	ctx, rec := newRecordingContext(WithFormat(f))
	ctx.SetVertexBuffer(packPositions(f, 6))

	if err := ctx.DrawTriangles(6); err != nil {
		t.Fatalf("DrawTriangles() = %v", err)
	}
	wantTriangles(t, rec, 2)
	if got := triangleXs(rec.triangles[0]); got != [3]float32{0, 1, 2} {
		t.Errorf("triangle 0 = %v", got)
	}
	if got := triangleXs(rec.triangles[1]); got != [3]float32{3, 4, 5} {
		t.Errorf("triangle 1 = %v", got)
	}
	if used := rec.triangles[1][2].Used; used != vertex.FlagPos|vertex.FlagColor {
		t.Errorf("Used = %#x, want pos|color", used)
	}
}

func TestDrawTriangles_RemainderNeedNotBeInBuffer(t *testing.T) {
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 9))

	if err := ctx.DrawTriangles(10); err != nil {
		t.Fatalf("DrawTriangles(10) with 9 packed vertices = %v", err)
	}
	wantTriangles(t, rec, 3)
}

func TestDrawTriangles_BufferTooShort(t *testing.T) {
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 5))

	err := ctx.DrawTriangles(6)
	if !errors.Is(err, ErrBufferTooShort) {
		t.Fatalf("DrawTriangles() = %v, want ErrBufferTooShort", err)
	}
	var short *vertex.BufferTooShortError
	if !errors.As(err, &short) || short.Need != 6*posF3.Stride() || short.Have != 5*posF3.Stride() {
		t.Errorf("error = %#v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("stages called %d times before the bounds failure", len(rec.calls))
	}
}

func TestDrawTriangles_HugeCountFailsBeforeDispatch(t *testing.T) {
	posF4 := vertex.Format{Position: vertex.PositionF4}
	for _, count := range []int{math.MaxInt, math.MaxInt/posF4.Stride() + 3} {
		ctx, rec := newRecordingContext(WithFormat(posF4))
		ctx.SetVertexBuffer(packPositions(posF4, 3))

		err := ctx.DrawTriangles(count)
		var short *vertex.BufferTooShortError
		if !errors.As(err, &short) {
			t.Fatalf("DrawTriangles(%d) = %v, want *BufferTooShortError", count, err)
		}
		if short.Offset != 0 || short.Need <= short.Have {
			t.Errorf("DrawTriangles(%d) error = %+v", count, short)
		}
		if len(rec.calls) != 0 {
			t.Errorf("DrawTriangles(%d) dispatched %d triangles before failing", count, len(rec.triangles))
		}
	}
}

func TestDrawTrianglesIndexed_HugeVertexCountFailsBeforeDispatch(t *testing.T) {
	posF4 := vertex.Format{Position: vertex.PositionF4}
	for _, count := range []int{math.MaxInt, math.MaxInt/posF4.Stride() + 1} {
		ctx, rec := newRecordingContext(WithFormat(posF4))
		ctx.SetVertexBuffer(packPositions(posF4, 3))
		ctx.SetIndexBuffer(Uint32Indices{0, 1, 2, 2, 1, 0})

		err := ctx.DrawTrianglesIndexed(count, 6)
		var short *vertex.BufferTooShortError
		if !errors.As(err, &short) {
			t.Fatalf("DrawTrianglesIndexed(%d, 6) = %v, want *BufferTooShortError", count, err)
		}
		if short.Offset != 0 || short.Need != math.MaxInt {
			t.Errorf("DrawTrianglesIndexed(%d, 6) error = %+v, want saturated Need", count, short)
		}
		if len(rec.calls) != 0 {
			t.Errorf("DrawTrianglesIndexed(%d, 6) dispatched %d triangles before failing", count, len(rec.triangles))
		}
	}
}

func TestDrawTriangles_NegativeCount(t *testing.T) {
	ctx, _ := newRecordingContext()
	if err := ctx.DrawTriangles(-3); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("DrawTriangles(-3) = %v, want ErrNegativeCount", err)
	}
}

func TestDrawTriangles_IgnoredDuringImmediateMode(t *testing.T) {
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 3))
	ctx.SetIndexBuffer(Uint32Indices{0, 1, 2})

	ctx.Begin()
	if err := ctx.DrawTriangles(3); err != nil {
		t.Errorf("DrawTriangles() = %v", err)
	}
	if err := ctx.DrawTrianglesIndexed(3, 3); err != nil {
		t.Errorf("DrawTrianglesIndexed() = %v", err)
	}
	// Even an impossible request is ignored.
	if err := ctx.DrawTriangles(300); err != nil {
		t.Errorf("DrawTriangles(300) = %v", err)
	}
	wantTriangles(t, rec, 0)

	ctx.End()
	if err := ctx.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles() after End = %v", err)
	}
	wantTriangles(t, rec, 1)
}

func TestDrawTrianglesIndexed_SkipsOutOfRange(t *testing.T) {
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 4))
	ctx.SetIndexBuffer(Uint32Indices{
		0, 1, 2,
		1, 2, 4, // 4 == vertexCount
		3, 2, 1,
	})

	if err := ctx.DrawTrianglesIndexed(4, 9); err != nil {
		t.Fatalf("DrawTrianglesIndexed() = %v", err)
	}
	wantTriangles(t, rec, 2)
	if got := triangleXs(rec.triangles[0]); got != [3]float32{0, 1, 2} {
		t.Errorf("triangle 0 = %v", got)
	}
	if got := triangleXs(rec.triangles[1]); got != [3]float32{3, 2, 1} {
		t.Errorf("triangle 1 = %v", got)
	}
	if st := ctx.Stats(); st.Skipped != 1 || st.Triangles != 2 {
		t.Errorf("stats = %+v", st)
	}
}

func TestDrawTrianglesIndexed_VertexCountBoundsIndices(t *testing.T) {
	// The buffer holds four vertices but the draw only admits three.
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 4))
	ctx.SetIndexBuffer(Uint16Indices{0, 1, 3, 2, 1, 0})

	if err := ctx.DrawTrianglesIndexed(3, 6); err != nil {
		t.Fatalf("DrawTrianglesIndexed() = %v", err)
	}
	wantTriangles(t, rec, 1)
	if got := triangleXs(rec.triangles[0]); got != [3]float32{2, 1, 0} {
		t.Errorf("triangle = %v", got)
	}
}

func TestDrawTrianglesIndexed_RandomAccess(t *testing.T) {
	f := vertex.Format{Position: vertex.PositionF4, Normal: true, Color: vertex.ColorUB4, Tex0: true}
	verts := make([]vertex.Vertex, 5)
	for i := range verts {
		verts[i] = vertex.New()
		verts[i].Set(vertex.Pos, vertex.V4(float32(i), float32(10*i), 0, 1))
		verts[i].Set(vertex.Color, vertex.V4(1, 0, 0, 1))
		verts[i].Set(vertex.Normal, vertex.V4(0, 0, 1, 0))
		verts[i].Set(vertex.Tex0, vertex.V4(0.5, 0.5, 0, 0))
	}

	ctx, rec := newRecordingContext(WithFormat(f))
	ctx.SetVertexBuffer(vertex.Pack(f, verts...))
	ctx.SetIndexBuffer(Uint32Indices{4, 0, 2, 2, 2, 2, 1})

	if err := ctx.DrawTrianglesIndexed(5, 7); err != nil {
		t.Fatalf("DrawTrianglesIndexed() = %v", err)
	}
	wantTriangles(t, rec, 2)
	if got := triangleXs(rec.triangles[0]); got != [3]float32{4, 0, 2} {
		t.Errorf("triangle 0 = %v", got)
	}
	for i, v := range rec.triangles[0] {
		if v != verts[int(v.Position().X)] {
			t.Errorf("corner %d = %+v, want %+v", i, v, verts[int(v.Position().X)])
		}
	}
	if st := ctx.Stats(); st.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", st.Discarded)
	}
}

func TestDrawTrianglesIndexed_Errors(t *testing.T) {
	tests := []struct {
		name        string
		vertices    int
		indices     IndexBuffer
		vertexCount int
		indexCount  int
		wantErr     error
	}{
		{"vertex buffer short", 3, Uint32Indices{0, 1, 2}, 4, 3, ErrBufferTooShort},
		{"index buffer short", 3, Uint32Indices{0, 1, 2}, 3, 6, ErrIndexBufferTooShort},
		{"no index buffer", 3, nil, 3, 3, ErrIndexBufferTooShort},
		{"negative index count", 3, nil, 3, -1, ErrNegativeCount},
		{"negative vertex count", 3, nil, -1, 0, ErrNegativeCount},
		{"remainder beyond buffer", 3, Uint32Indices{0, 1, 2, 0}, 3, 5, nil},
		{"nothing to draw", 0, nil, 0, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newRecordingContext(WithFormat(posF3))
			ctx.SetVertexBuffer(packPositions(posF3, tt.vertices))
			ctx.SetIndexBuffer(tt.indices)

			err := ctx.DrawTrianglesIndexed(tt.vertexCount, tt.indexCount)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("DrawTrianglesIndexed() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DrawTrianglesIndexed() = %v, want %v", err, tt.wantErr)
			}
			if len(rec.calls) != 0 {
				t.Errorf("stages called on error")
			}
		})
	}
}

func TestDispatch_Order(t *testing.T) {
	ctx, rec := newRecordingContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 3))

	if err := ctx.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles() = %v", err)
	}
	want := []string{"vertex", "vertex", "vertex", "triangle", "raster"}
	if len(rec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", rec.calls, want)
			break
		}
	}
}

func TestDispatch_ShaderMutationsReachRasterizer(t *testing.T) {
	var order []float32
	shader := ShaderFuncs{
		Vertex: func(_ *Context, v *vertex.Vertex) {
			order = append(order, v.Position().X)
			v.Attribs[vertex.Pos].Y = 42
		},
		Triangle: func(_ *Context, v0, _, _ *vertex.Vertex) {
			v0.Attribs[vertex.Color] = vertex.V4(0, 0, 0, 1)
		},
	}
	var got [3]vertex.Vertex
	raster := RasterizerFunc(func(_ *Context, v0, v1, v2 *vertex.Vertex) {
		got = [3]vertex.Vertex{*v0, *v1, *v2}
	})

	ctx := NewContext(WithFormat(posF3), WithShader(shader), WithRasterizer(raster))
	ctx.SetVertexBuffer(packPositions(posF3, 3))
	if err := ctx.DrawTriangles(3); err != nil {
		t.Fatalf("DrawTriangles() = %v", err)
	}

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("vertex stage order = %v, want [0 1 2]", order)
	}
	for i, v := range got {
		if v.Position().Y != 42 {
			t.Errorf("corner %d Y = %v, want 42", i, v.Position().Y)
		}
	}
	if got[0].ColorValue() != vertex.V4(0, 0, 0, 1) {
		t.Errorf("triangle stage change lost: %v", got[0].ColorValue())
	}
}

func TestDrawTriangles_DefaultStagesDiscard(t *testing.T) {
	ctx := NewContext(WithFormat(posF3))
	ctx.SetVertexBuffer(packPositions(posF3, 6))
	if err := ctx.DrawTriangles(6); err != nil {
		t.Fatalf("DrawTriangles() = %v", err)
	}
	if st := ctx.Stats(); st.Triangles != 2 {
		t.Errorf("Triangles = %d, want 2", st.Triangles)
	}
}
