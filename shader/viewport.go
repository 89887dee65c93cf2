// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

// Viewport maps normalized device coordinates to window coordinates.
// The origin is the top-left corner and y grows downward, matching
// image.Image. Depth in [-1, 1] maps to [MinDepth, MaxDepth].
type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// NewViewport returns a viewport covering a width x height target with
// the full [0, 1] depth range.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height), MaxDepth: 1}
}

// Map converts normalized device coordinates to window coordinates.
func (vp Viewport) Map(x, y, z float32) (wx, wy, wz float32) {
	wx = vp.X + (x+1)*0.5*vp.Width
	wy = vp.Y + (1-y)*0.5*vp.Height
	wz = vp.MinDepth + (z+1)*0.5*(vp.MaxDepth-vp.MinDepth)
	return wx, wy, wz
}
