// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import "github.com/gogpu/swr/vertex"

// Shader is the shading stage the input assembler hands triangles to.
//
// ProcessVertex runs once per triangle corner and may modify the vertex in
// place. ProcessTriangle runs after all three corners have been processed.
// Implementations own their failure handling; the assembler neither
// inspects nor retries.
type Shader interface {
	ProcessVertex(ctx *Context, v *vertex.Vertex)
	ProcessTriangle(ctx *Context, v0, v1, v2 *vertex.Vertex)
}

// Rasterizer is the stage that turns a shaded triangle into fragments.
type Rasterizer interface {
	RasterizeTriangle(ctx *Context, v0, v1, v2 *vertex.Vertex)
}

// ShaderFuncs adapts plain functions to the Shader interface.
// Nil fields are skipped.
type ShaderFuncs struct {
	Vertex   func(ctx *Context, v *vertex.Vertex)
	Triangle func(ctx *Context, v0, v1, v2 *vertex.Vertex)
}

// ProcessVertex calls s.Vertex if set.
func (s ShaderFuncs) ProcessVertex(ctx *Context, v *vertex.Vertex) {
	if s.Vertex != nil {
		s.Vertex(ctx, v)
	}
}

// ProcessTriangle calls s.Triangle if set.
func (s ShaderFuncs) ProcessTriangle(ctx *Context, v0, v1, v2 *vertex.Vertex) {
	if s.Triangle != nil {
		s.Triangle(ctx, v0, v1, v2)
	}
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(ctx *Context, v0, v1, v2 *vertex.Vertex)

// RasterizeTriangle calls f.
func (f RasterizerFunc) RasterizeTriangle(ctx *Context, v0, v1, v2 *vertex.Vertex) {
	f(ctx, v0, v1, v2)
}

// passthroughShader leaves vertices untouched.
type passthroughShader struct{}

func (passthroughShader) ProcessVertex(*Context, *vertex.Vertex)                            {}
func (passthroughShader) ProcessTriangle(*Context, *vertex.Vertex, *vertex.Vertex, *vertex.Vertex) {}

// discardRasterizer drops every triangle.
type discardRasterizer struct{}

func (discardRasterizer) RasterizeTriangle(*Context, *vertex.Vertex, *vertex.Vertex, *vertex.Vertex) {}
