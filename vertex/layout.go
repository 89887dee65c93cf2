// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Layout describes the packed format as a WebGPU vertex buffer layout, so
// the same bytes can be uploaded to a GPU pipeline unchanged.
//
// Each attribute's shader location is its Attrib slot index:
//
//	@location(0) position  @location(1) color
//	@location(2) normal    @location(3) tex0
//
// ColorUB3 has no WebGPU equivalent and yields ErrNoGPUFormat.
func (f Format) Layout() (gputypes.VertexBufferLayout, error) {
	if !f.Valid() {
		return gputypes.VertexBufferLayout{}, fmt.Errorf("%w: %+v", ErrInvalidFormat, f)
	}

	off := f.Offsets()
	attrs := make([]gputypes.VertexAttribute, 0, 4)

	if f.Position != PositionNone {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         positionGPUFormat(f.Position),
			Offset:         uint64(off.Position),
			ShaderLocation: uint32(Pos),
		})
	}
	if f.Normal {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x3,
			Offset:         uint64(off.Normal),
			ShaderLocation: uint32(Normal),
		})
	}
	if f.Color != ColorNone {
		cf, err := colorGPUFormat(f.Color)
		if err != nil {
			return gputypes.VertexBufferLayout{}, err
		}
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         cf,
			Offset:         uint64(off.Color),
			ShaderLocation: uint32(Color),
		})
	}
	if f.Tex0 {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32x2,
			Offset:         uint64(off.Tex0),
			ShaderLocation: uint32(Tex0),
		})
	}

	return gputypes.VertexBufferLayout{
		ArrayStride: uint64(f.Stride()),
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}

func positionGPUFormat(e PositionEncoding) gputypes.VertexFormat {
	switch e {
	case PositionF2:
		return gputypes.VertexFormatFloat32x2
	case PositionF3:
		return gputypes.VertexFormatFloat32x3
	case PositionF4:
		return gputypes.VertexFormatFloat32x4
	default:
		return gputypes.VertexFormatUndefined
	}
}

func colorGPUFormat(e ColorEncoding) (gputypes.VertexFormat, error) {
	switch e {
	case ColorF3:
		return gputypes.VertexFormatFloat32x3, nil
	case ColorF4:
		return gputypes.VertexFormatFloat32x4, nil
	case ColorUB4:
		return gputypes.VertexFormatUnorm8x4, nil
	default:
		return gputypes.VertexFormatUndefined, fmt.Errorf("%w: color %s", ErrNoGPUFormat, e)
	}
}
