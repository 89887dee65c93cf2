// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"log/slog"

	"github.com/gogpu/swr/vertex"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := swr.NewContext(
//	    swr.WithFormat(vertex.Format{Position: vertex.PositionF3, Color: vertex.ColorUB4}),
//	    swr.WithShader(shader.NewTransform(mvp, viewport)),
//	    swr.WithRasterizer(raster.NewSoftware(target)),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	shader     Shader
	rasterizer Rasterizer
	format     vertex.Format
	carry      AttributeCarry
	logger     *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		shader:     passthroughShader{},
		rasterizer: discardRasterizer{},
		carry:      CarryReset,
	}
}

// WithShader sets the shading stage. Nil keeps the pass-through default.
func WithShader(s Shader) ContextOption {
	return func(o *contextOptions) {
		if s != nil {
			o.shader = s
		}
	}
}

// WithRasterizer sets the rasterization stage. Nil keeps the default,
// which discards triangles.
func WithRasterizer(r Rasterizer) ContextOption {
	return func(o *contextOptions) {
		if r != nil {
			o.rasterizer = r
		}
	}
}

// WithFormat sets the initial vertex format. Invalid formats are ignored;
// use Context.SetFormat to get an error instead.
func WithFormat(f vertex.Format) ContextOption {
	return func(o *contextOptions) {
		if f.Valid() {
			o.format = f
		}
	}
}

// WithAttributeCarry selects what happens to immediate-mode attributes
// after a vertex is closed. The default is CarryReset.
func WithAttributeCarry(c AttributeCarry) ContextOption {
	return func(o *contextOptions) {
		o.carry = c
	}
}

// WithLogger gives the context its own logger instead of the package
// logger set by SetLogger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
