// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"fmt"
	"math"

	"github.com/gogpu/swr/vertex"
)

// DrawTriangles assembles triangles from the first vertexCount vertices of
// the bound vertex buffer, three consecutive vertices per triangle.
//
// Trailing vertices that do not fill a triangle are dropped. The call does
// nothing while immediate mode is active.
//
// The buffer must hold at least (vertexCount rounded down to a multiple of
// three) * Stride bytes; otherwise DrawTriangles returns a
// *vertex.BufferTooShortError before dispatching anything.
func (c *Context) DrawTriangles(vertexCount int) error {
	if c.imm.active {
		c.logger().Debug("swr: DrawTriangles ignored during immediate mode")
		return nil
	}
	if vertexCount < 0 {
		return fmt.Errorf("%w: vertexCount %d", ErrNegativeCount, vertexCount)
	}

	f := c.format
	stride := f.Stride()
	n := vertexCount - vertexCount%3
	if !fits(n, stride, len(c.vertices)) {
		return &vertex.BufferTooShortError{Offset: 0, Need: byteSize(n, stride), Have: len(c.vertices)}
	}

	c.logger().Debug("swr: draw triangles",
		"vertices", vertexCount, "triangles", n/3, "format", f.String(), "stride", stride)

	cur := vertex.NewCursor(c.vertices)
	var v0, v1, v2 vertex.Vertex
	for i := 0; i < n; i += 3 {
		if err := cur.Next(&v0, f); err != nil {
			return err
		}
		if err := cur.Next(&v1, f); err != nil {
			return err
		}
		if err := cur.Next(&v2, f); err != nil {
			return err
		}
		c.stats.Vertices += 3
		c.dispatch(&v0, &v1, &v2)
	}
	c.stats.Discarded += vertexCount - n
	return nil
}

// DrawTrianglesIndexed assembles triangles from the first indexCount
// entries of the bound index buffer, three indices per triangle, fetching
// each vertex at byte offset index*Stride.
//
// A triangle with any index >= vertexCount is skipped and the draw carries
// on with the next one. Trailing indices that do not fill a triangle are
// dropped. The call does nothing while immediate mode is active.
//
// The vertex buffer must hold vertexCount*Stride bytes and the index
// buffer at least indexCount (rounded down to a multiple of three)
// entries; both are checked before anything is dispatched.
func (c *Context) DrawTrianglesIndexed(vertexCount, indexCount int) error {
	if c.imm.active {
		c.logger().Debug("swr: DrawTrianglesIndexed ignored during immediate mode")
		return nil
	}
	if vertexCount < 0 || indexCount < 0 {
		return fmt.Errorf("%w: vertexCount %d, indexCount %d", ErrNegativeCount, vertexCount, indexCount)
	}

	f := c.format
	stride := f.Stride()
	if !fits(vertexCount, stride, len(c.vertices)) {
		return &vertex.BufferTooShortError{Offset: 0, Need: byteSize(vertexCount, stride), Have: len(c.vertices)}
	}

	n := indexCount - indexCount%3
	have := 0
	if c.indices != nil {
		have = c.indices.Len()
	}
	if n > have {
		return &IndexRangeError{Need: n, Have: have}
	}

	c.logger().Debug("swr: draw triangles indexed",
		"vertices", vertexCount, "indices", indexCount, "format", f.String(), "stride", stride)

	limit := uint64(vertexCount)
	cur := vertex.NewCursor(c.vertices)
	var v0, v1, v2 vertex.Vertex
	for i := 0; i < n; i += 3 {
		i0 := c.indices.At(i)
		i1 := c.indices.At(i + 1)
		i2 := c.indices.At(i + 2)

		if uint64(i0) >= limit || uint64(i1) >= limit || uint64(i2) >= limit {
			c.stats.Skipped++
			c.logger().Debug("swr: skipping triangle with out-of-range index",
				"first", i, "i0", i0, "i1", i1, "i2", i2, "vertexCount", vertexCount)
			continue
		}

		if err := cur.At(&v0, int(i0)*stride, f); err != nil {
			return err
		}
		if err := cur.At(&v1, int(i1)*stride, f); err != nil {
			return err
		}
		if err := cur.At(&v2, int(i2)*stride, f); err != nil {
			return err
		}
		c.stats.Vertices += 3
		c.dispatch(&v0, &v1, &v2)
	}
	c.stats.Discarded += indexCount - n
	return nil
}

// dispatch runs one triangle through the downstream stages: the vertex
// stage on each corner in order, then the triangle stage, then the
// rasterizer.
func (c *Context) dispatch(v0, v1, v2 *vertex.Vertex) {
	c.shader.ProcessVertex(c, v0)
	c.shader.ProcessVertex(c, v1)
	c.shader.ProcessVertex(c, v2)
	c.shader.ProcessTriangle(c, v0, v1, v2)

	c.rasterizer.RasterizeTriangle(c, v0, v1, v2)
	c.stats.Triangles++
}

// fits reports whether count vertices of stride bytes fit in have bytes.
func fits(count, stride, have int) bool {
	return stride == 0 || count <= have/stride
}

// byteSize returns count*stride, saturating at math.MaxInt.
func byteSize(count, stride int) int {
	if stride != 0 && count > math.MaxInt/stride {
		return math.MaxInt
	}
	return count * stride
}
