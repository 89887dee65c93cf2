// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package swr is the input assembler of a software 3D rendering pipeline.
//
// # Overview
//
// The input assembler turns packed vertex bytes, optionally addressed
// through an index buffer, into decoded vertex records, groups them into
// triangles and hands each triangle to a shading stage and then a
// rasterization stage. Vertices can also be submitted one call at a time
// in immediate mode.
//
// # Quick Start
//
//	f := vertex.Format{Position: vertex.PositionF3, Color: vertex.ColorUB4}
//
//	ctx := swr.NewContext(
//	    swr.WithFormat(f),
//	    swr.WithRasterizer(raster.NewSoftware(target)),
//	)
//	ctx.SetVertexBuffer(buf)
//	if err := ctx.DrawTriangles(vertexCount); err != nil {
//	    return err
//	}
//
//	// Immediate mode
//	ctx.Begin()
//	ctx.Color(1, 0, 0, 1)
//	ctx.Vertex(0, 0, 0, 1)
//	ctx.Vertex(1, 0, 0, 1)
//	ctx.Vertex(0, 1, 0, 1)
//	ctx.End()
//
// # Draw paths
//
//   - DrawTriangles walks the vertex buffer sequentially.
//   - DrawTrianglesIndexed fetches vertices at index*Stride and skips
//     triangles whose indices reach past the vertex count.
//   - Begin, Vertex, Color, Normal, TexCoord and End accumulate vertices
//     into a three-slot ring and dispatch each completed triangle.
//
// All three converge on the same dispatch: Shader.ProcessVertex for each
// corner in order, Shader.ProcessTriangle, then Rasterizer.RasterizeTriangle.
// Only triangle lists are assembled; there is no clipping and no vertex
// cache.
//
// # Errors
//
// Degenerate input degrades quietly: counts are truncated to whole
// triangles, out-of-range index triples are skipped and draw calls made
// during immediate mode do nothing. Reading past the end of a bound buffer
// is the one hard failure, reported before any triangle is dispatched.
//
// # Concurrency
//
// A Context is single-threaded. Serialize all calls against one context;
// separate contexts may be used from separate goroutines.
//
// # Packages
//
//   - vertex: formats, decoding, stride, encoding and GPU layout export
//   - shader: reference shading stages (pass-through, transform)
//   - raster: reference rasterizers (software, recorder) and their registry
package swr
