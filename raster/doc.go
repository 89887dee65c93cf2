// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides reference rasterization stages for the swr
// input assembler.
//
// Software fills triangles into a PixmapTarget with anti-aliased coverage
// and Gouraud-interpolated vertex colors. It expects positions already in
// window coordinates, as produced by shader.Transform. Recorder keeps
// every triangle it receives, which is useful for tests and tooling.
// Discard drops everything.
//
// Rasterizers are also available by name through a registry:
//
//	target := raster.NewPixmapTarget(640, 480)
//	r, err := raster.New("software", target)
//	if err != nil {
//	    return err
//	}
//	ctx := swr.NewContext(swr.WithRasterizer(r))
//
// GPUPipeline builds the WebGPU render pipeline that draws the same packed
// vertex buffers on a wgpu HAL device. It is left out with the nogpu
// build tag.
package raster
