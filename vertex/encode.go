// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"encoding/binary"
	"fmt"
	"math"
)

// AppendVertex packs v in format f and appends the f.Stride() bytes to dst.
// Byte colors are clamped to [0, 1] and rounded to the nearest step.
// Attributes the format does not carry are skipped.
func AppendVertex(dst []byte, v *Vertex, f Format) []byte {
	switch f.Position {
	case PositionF2:
		dst = appendF32(dst, v.Attribs[Pos].X, v.Attribs[Pos].Y)
	case PositionF3:
		dst = appendF32(dst, v.Attribs[Pos].X, v.Attribs[Pos].Y, v.Attribs[Pos].Z)
	case PositionF4:
		p := v.Attribs[Pos]
		dst = appendF32(dst, p.X, p.Y, p.Z, p.W)
	}

	if f.Normal {
		n := v.Attribs[Normal]
		dst = appendF32(dst, n.X, n.Y, n.Z)
	}

	c := v.Attribs[Color]
	switch f.Color {
	case ColorF3:
		dst = appendF32(dst, c.X, c.Y, c.Z)
	case ColorF4:
		dst = appendF32(dst, c.X, c.Y, c.Z, c.W)
	case ColorUB3:
		dst = append(dst, toUnorm8(c.X), toUnorm8(c.Y), toUnorm8(c.Z))
	case ColorUB4:
		dst = append(dst, toUnorm8(c.X), toUnorm8(c.Y), toUnorm8(c.Z), toUnorm8(c.W))
	}

	if f.Tex0 {
		dst = appendF32(dst, v.Attribs[Tex0].X, v.Attribs[Tex0].Y)
	}
	return dst
}

// Encode packs v in format f into the start of dst and returns the number
// of bytes written. It fails without writing if dst is shorter than
// f.Stride().
func Encode(dst []byte, v *Vertex, f Format) (int, error) {
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidFormat, f)
	}
	stride := f.Stride()
	if len(dst) < stride {
		return 0, &BufferTooShortError{Offset: 0, Need: stride, Have: len(dst)}
	}
	AppendVertex(dst[:0:stride], v, f)
	return stride, nil
}

// Pack encodes a sequence of vertices into a new buffer.
func Pack(f Format, verts ...Vertex) []byte {
	buf := make([]byte, 0, len(verts)*f.Stride())
	for i := range verts {
		buf = AppendVertex(buf, &verts[i], f)
	}
	return buf
}

func appendF32(dst []byte, vals ...float32) []byte {
	for _, x := range vals {
		dst = binary.NativeEndian.AppendUint32(dst, math.Float32bits(x))
	}
	return dst
}

func toUnorm8(c float32) byte {
	switch {
	case c <= 0 || c != c:
		return 0
	case c >= 1:
		return 255
	}
	return byte(c*255 + 0.5)
}
