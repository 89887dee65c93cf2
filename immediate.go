// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import "github.com/gogpu/swr/vertex"

// AttributeCarry selects what happens to the pending immediate-mode vertex
// once a Vertex call closes it.
type AttributeCarry uint8

const (
	// CarryReset restores every attribute of the pending vertex to its
	// default after each close, and on Begin and End. A vertex only
	// carries the attributes set since the previous Vertex call.
	CarryReset AttributeCarry = iota

	// CarrySticky keeps attribute values across vertices, like a current
	// color: a Color call applies to every following vertex until changed.
	// Begin and End only clear the presence flags.
	CarrySticky
)

// String returns the carry policy name.
func (c AttributeCarry) String() string {
	switch c {
	case CarryReset:
		return "reset"
	case CarrySticky:
		return "sticky"
	default:
		return "unknown"
	}
}

// immediate accumulates vertices submitted one call at a time.
type immediate struct {
	next    vertex.Vertex    // vertex being built by attribute calls
	ring    [3]vertex.Vertex // closed vertices awaiting a full triangle
	current int              // next ring slot, 0..2
	active  bool
}

// Begin starts immediate-mode drawing. Partially built vertices and
// triangles are dropped. Calling Begin while already active restarts
// accumulation.
//
// While immediate mode is active, DrawTriangles and DrawTrianglesIndexed
// do nothing.
func (c *Context) Begin() {
	c.clearPending()
	c.imm.current = 0
	c.imm.active = true
}

// End stops immediate-mode drawing. Vertices that have not completed a
// triangle are dropped.
func (c *Context) End() {
	c.clearPending()
	c.imm.current = 0
	c.imm.active = false
}

// Immediate reports whether immediate mode is active.
func (c *Context) Immediate() bool {
	return c.imm.active
}

// Vertex sets the position of the pending vertex and closes it. Every
// third closed vertex completes a triangle, which is dispatched at once.
// Vertex does nothing outside Begin/End.
func (c *Context) Vertex(x, y, z, w float32) {
	if !c.imm.active {
		return
	}

	c.imm.next.Set(vertex.Pos, vertex.V4(x, y, z, w))
	c.imm.ring[c.imm.current] = c.imm.next
	c.imm.current++
	c.stats.Vertices++
	if c.carry == CarryReset {
		c.imm.next.Reset()
	}

	if c.imm.current < 3 {
		return
	}

	c.imm.current = 0
	c.dispatch(&c.imm.ring[0], &c.imm.ring[1], &c.imm.ring[2])
}

// Color sets the color of the pending vertex.
func (c *Context) Color(r, g, b, a float32) {
	c.imm.next.Set(vertex.Color, vertex.V4(r, g, b, a))
}

// Normal sets the surface normal of the pending vertex.
func (c *Context) Normal(x, y, z float32) {
	c.imm.next.Set(vertex.Normal, vertex.V4(x, y, z, 0))
}

// TexCoord sets texture coordinates for a layer of the pending vertex.
// Layers outside [0, vertex.MaxTextureLayers) are ignored.
func (c *Context) TexCoord(layer int, s, t float32) {
	if layer < 0 || layer >= vertex.MaxTextureLayers {
		c.logger().Warn("swr: texture layer out of range",
			"layer", layer, "max", vertex.MaxTextureLayers)
		return
	}
	c.imm.next.Set(vertex.Tex0+vertex.Attrib(layer), vertex.V4(s, t, 0, 1))
}

// clearPending applies the carry policy to the pending vertex on Begin
// and End.
func (c *Context) clearPending() {
	if c.carry == CarrySticky {
		c.imm.next.Used = 0
		return
	}
	c.imm.next.Reset()
}
