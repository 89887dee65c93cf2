// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/swr/vertex"
)

// Context is the rendering context the input assembler works against.
// It owns the bound vertex and index buffers, the vertex format, the
// immediate-mode accumulator and the downstream stages.
//
// A Context has a single writer: it is not safe for concurrent use, and
// every draw or immediate-mode call must be serialized by the caller.
// Buffers bound to a context must not be modified during a draw.
type Context struct {
	vertices []byte
	indices  IndexBuffer
	format   vertex.Format

	shader     Shader
	rasterizer Rasterizer

	imm   immediate
	carry AttributeCarry

	log   *slog.Logger
	stats Stats
}

// Stats counts the work a context has done since creation or ResetStats.
type Stats struct {
	// Triangles is the number of triangles dispatched.
	Triangles int
	// Skipped is the number of indexed triangles dropped because an index
	// was out of range.
	Skipped int
	// Vertices is the number of vertices decoded or submitted.
	Vertices int
	// Discarded is the number of trailing vertices or indices dropped
	// because a count was not a multiple of three.
	Discarded int
}

// NewContext creates a rendering context.
//
//	ctx := swr.NewContext(swr.WithRasterizer(r))
//	ctx.SetVertexBuffer(buf)
//	err := ctx.DrawTriangles(n)
func NewContext(opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	c := &Context{
		format:     options.format,
		shader:     options.shader,
		rasterizer: options.rasterizer,
		carry:      options.carry,
		log:        options.logger,
	}
	c.imm.next.Reset()
	return c
}

// SetVertexBuffer binds the packed vertex data. The slice is used
// directly, not copied.
func (c *Context) SetVertexBuffer(buf []byte) {
	c.vertices = buf
}

// VertexBuffer returns the bound vertex data.
func (c *Context) VertexBuffer() []byte {
	return c.vertices
}

// SetIndexBuffer binds the index buffer used by DrawTrianglesIndexed.
func (c *Context) SetIndexBuffer(ib IndexBuffer) {
	c.indices = ib
}

// IndexBuffer returns the bound index buffer, or nil.
func (c *Context) IndexBuffer() IndexBuffer {
	return c.indices
}

// SetFormat sets the format of the bound vertex buffer.
func (c *Context) SetFormat(f vertex.Format) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %+v", vertex.ErrInvalidFormat, f)
	}
	c.format = f
	return nil
}

// SetFormatBits sets the format from a descriptor word. Contradictory
// words are resolved by vertex.Bits precedence rather than rejected.
func (c *Context) SetFormatBits(b vertex.Bits) {
	c.format = b.Format()
	if b.Ambiguous() {
		c.logger().Debug("swr: ambiguous vertex format bits resolved by precedence",
			"bits", uint32(b), "format", c.format.String())
	}
}

// Format returns the current vertex format.
func (c *Context) Format() vertex.Format {
	return c.format
}

// SetShader replaces the shading stage. Nil restores the pass-through
// default.
func (c *Context) SetShader(s Shader) {
	if s == nil {
		c.logger().Warn("swr: nil shader, using pass-through")
		s = passthroughShader{}
	}
	c.shader = s
}

// Shader returns the current shading stage.
func (c *Context) Shader() Shader {
	return c.shader
}

// SetRasterizer replaces the rasterization stage. Nil restores the
// default, which discards triangles.
func (c *Context) SetRasterizer(r Rasterizer) {
	if r == nil {
		c.logger().Warn("swr: nil rasterizer, triangles will be discarded")
		r = discardRasterizer{}
	}
	c.rasterizer = r
}

// Rasterizer returns the current rasterization stage.
func (c *Context) Rasterizer() Rasterizer {
	return c.rasterizer
}

// Topology reports the primitive topology the assembler produces.
// Only triangle lists are assembled.
func (c *Context) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// Stats returns the work counters.
func (c *Context) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the work counters.
func (c *Context) ResetStats() {
	c.stats = Stats{}
}

// logger returns the context logger, falling back to the package logger.
func (c *Context) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return Logger()
}
