// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader provides reference shading stages for the swr input
// assembler.
//
// Passthrough leaves vertices untouched. Transform applies a
// model-view-projection matrix to positions and a normal matrix to
// normals in the vertex stage, then divides by w and maps the result into
// a Viewport in the triangle stage, leaving window coordinates for the
// rasterizer. Chain runs several stages in order.
//
//	mvp := shader.Perspective(math.Pi/3, 4.0/3, 0.1, 100).Mul(shader.Translate(0, 0, -3))
//	ctx := swr.NewContext(
//	    swr.WithShader(shader.NewTransform(mvp, shader.Viewport{Width: 640, Height: 480})),
//	)
package shader
