// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package raster

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/swr"
	"github.com/gogpu/swr/vertex"
)

// fragmentEntryPoint is the entry point of fragmentShaderSource.
const fragmentEntryPoint = "fs_main"

// fragmentShaderSource writes the interpolated vertex color. Its input
// matches the VertexOutput of generated vertex stages.
const fragmentShaderSource = `struct FragmentInput {
    @location(0) color: vec4<f32>,
}

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// GPUPipeline is a WebGPU render pipeline that consumes the same packed
// vertex buffers as a swr.Context with the same format. The vertex stage
// is the generated pass-through shader, so a buffer drawn on the GPU gets
// the attribute defaults the software decoder would inject.
type GPUPipeline struct {
	device hal.Device
	format vertex.Format
	layout gputypes.VertexBufferLayout

	vertexShader   hal.ShaderModule
	fragmentShader hal.ShaderModule
	pipeLayout     hal.PipelineLayout
	pipeline       hal.RenderPipeline
}

// NewGPUPipeline builds a triangle-list render pipeline for f on device,
// drawing into color targets of the given texture format.
//
// Formats without a GPU vertex format (3-byte colors) return an error
// wrapping vertex.ErrNoGPUFormat. Partially created objects are released
// on failure.
func NewGPUPipeline(device hal.Device, f vertex.Format, target gputypes.TextureFormat) (*GPUPipeline, error) {
	layout, err := f.Layout()
	if err != nil {
		return nil, err
	}
	spirv, err := vertex.CompileVertexShader(f)
	if err != nil {
		return nil, err
	}
	words, err := spirvWords(spirv)
	if err != nil {
		return nil, err
	}

	p := &GPUPipeline{device: device, format: f, layout: layout}
	if err := p.create(words, target); err != nil {
		p.Destroy()
		return nil, err
	}

	swr.Logger().Debug("raster: created GPU pipeline",
		"format", f.String(), "stride", layout.ArrayStride, "attributes", len(layout.Attributes))
	return p, nil
}

func (p *GPUPipeline) create(spirv []uint32, target gputypes.TextureFormat) error {
	vs, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "swr_vertex_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create vertex shader: %w", err)
	}
	p.vertexShader = vs

	fs, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "swr_fragment_shader",
		Source: hal.ShaderSource{WGSL: fragmentShaderSource},
	})
	if err != nil {
		return fmt.Errorf("create fragment shader: %w", err)
	}
	p.fragmentShader = fs

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "swr_pipe_layout",
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "swr_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vertexShader,
			EntryPoint: vertex.VertexEntryPoint,
			Buffers:    []gputypes.VertexBufferLayout{p.layout},
		},
		Fragment: &hal.FragmentState{
			Module:     p.fragmentShader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    target,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// Pipeline returns the render pipeline, or nil after Destroy.
func (p *GPUPipeline) Pipeline() hal.RenderPipeline { return p.pipeline }

// Format returns the vertex format the pipeline reads.
func (p *GPUPipeline) Format() vertex.Format { return p.format }

// VertexLayout returns the vertex buffer layout bound at slot 0.
func (p *GPUPipeline) VertexLayout() gputypes.VertexBufferLayout { return p.layout }

// Destroy releases the GPU objects. Safe to call more than once.
func (p *GPUPipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.fragmentShader != nil {
		p.device.DestroyShaderModule(p.fragmentShader)
		p.fragmentShader = nil
	}
	if p.vertexShader != nil {
		p.device.DestroyShaderModule(p.vertexShader)
		p.vertexShader = nil
	}
}

// spirvWords reinterprets little-endian SPIR-V bytes as 32-bit words.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("raster: SPIR-V length %d is not a multiple of 4", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return words, nil
}
