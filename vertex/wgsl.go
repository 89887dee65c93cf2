// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/swr/internal/cache"
)

// VertexEntryPoint is the entry point name of generated vertex shaders.
const VertexEntryPoint = "vs_main"

// VertexShaderWGSL returns a pass-through WGSL vertex stage whose inputs
// match Layout. Absent attributes are filled with the same defaults Decode
// injects, so a GPU pipeline built from the layout sees the values the
// software pipeline would.
func (f Format) VertexShaderWGSL() (string, error) {
	if _, err := f.Layout(); err != nil {
		return "", err
	}

	var b strings.Builder
	hasInput := f.Used() != 0

	if hasInput {
		b.WriteString("struct VertexInput {\n")
		if f.Position != PositionNone {
			fmt.Fprintf(&b, "    @location(%d) position: vec%d<f32>,\n", Pos, f.Position.Size()/float32Size)
		}
		if f.Color != ColorNone {
			fmt.Fprintf(&b, "    @location(%d) color: %s,\n", Color, colorWGSLType(f.Color))
		}
		if f.Normal {
			fmt.Fprintf(&b, "    @location(%d) normal: vec3<f32>,\n", Normal)
		}
		if f.Tex0 {
			fmt.Fprintf(&b, "    @location(%d) tex0: vec2<f32>,\n", Tex0)
		}
		b.WriteString("}\n\n")
	}

	b.WriteString(`struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
    @location(1) normal: vec4<f32>,
    @location(2) tex0: vec4<f32>,
}

@vertex
`)
	if hasInput {
		fmt.Fprintf(&b, "fn %s(in: VertexInput) -> VertexOutput {\n", VertexEntryPoint)
	} else {
		fmt.Fprintf(&b, "fn %s() -> VertexOutput {\n", VertexEntryPoint)
	}
	b.WriteString("    var out: VertexOutput;\n")

	switch f.Position {
	case PositionF2:
		b.WriteString("    out.position = vec4<f32>(in.position, 0.0, 1.0);\n")
	case PositionF3:
		b.WriteString("    out.position = vec4<f32>(in.position, 1.0);\n")
	case PositionF4:
		b.WriteString("    out.position = in.position;\n")
	default:
		b.WriteString("    out.position = vec4<f32>(0.0, 0.0, 0.0, 1.0);\n")
	}

	switch f.Color {
	case ColorF3:
		b.WriteString("    out.color = vec4<f32>(in.color, 1.0);\n")
	case ColorF4, ColorUB4:
		b.WriteString("    out.color = in.color;\n")
	default:
		b.WriteString("    out.color = vec4<f32>(1.0, 1.0, 1.0, 1.0);\n")
	}

	if f.Normal {
		b.WriteString("    out.normal = vec4<f32>(in.normal, 0.0);\n")
	} else {
		b.WriteString("    out.normal = vec4<f32>(0.0, 0.0, 0.0, 0.0);\n")
	}

	if f.Tex0 {
		b.WriteString("    out.tex0 = vec4<f32>(in.tex0, 0.0, 0.0);\n")
	} else {
		b.WriteString("    out.tex0 = vec4<f32>(0.0, 0.0, 0.0, 1.0);\n")
	}

	b.WriteString("    return out;\n}\n")
	return b.String(), nil
}

// colorWGSLType returns the shader-side type of a color encoding.
// Unorm8x4 data arrives in the shader as vec4<f32>.
func colorWGSLType(e ColorEncoding) string {
	if e == ColorF3 {
		return "vec3<f32>"
	}
	return "vec4<f32>"
}

// compiled holds SPIR-V per format. There are only a few hundred valid
// formats, so the bound is rarely reached.
var compiled = cache.New[Format, []byte](64)

// CompileVertexShader generates the pass-through vertex stage for f and
// compiles it to SPIR-V. Results are cached per format; the returned
// slice is the caller's to modify.
func CompileVertexShader(f Format) ([]byte, error) {
	spirv, err := compiled.GetOrCreate(f, func() ([]byte, error) {
		src, err := f.VertexShaderWGSL()
		if err != nil {
			return nil, err
		}
		out, err := naga.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("vertex: compile %s vertex shader: %w", f, err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(spirv), nil
}
