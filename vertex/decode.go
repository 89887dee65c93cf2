// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode reads one packed vertex from the start of buf into v and returns
// the number of bytes consumed, which is always f.Stride().
//
// v is reset to the default attribute values before anything is read, so
// categories the format does not carry keep their defaults. Floats are
// native-endian and may sit at any byte offset; byte colors are divided by
// 255 to land in [0, 1]. Texture coordinates decode as (s, t, 0, 0).
//
// If buf holds fewer than f.Stride() bytes, Decode returns a
// *BufferTooShortError and reads nothing.
func Decode(v *Vertex, buf []byte, f Format) (int, error) {
	return decodeAt(v, buf, 0, f)
}

func decodeAt(v *Vertex, buf []byte, off int, f Format) (int, error) {
	v.Reset()
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidFormat, f)
	}

	if off < 0 || off > len(buf) {
		return 0, &OffsetRangeError{Offset: off, Len: len(buf)}
	}
	stride := f.Stride()
	if len(buf)-off < stride {
		return 0, &BufferTooShortError{Offset: off, Need: stride, Have: len(buf)}
	}
	p := buf[off : off+stride]

	// position
	switch f.Position {
	case PositionF2:
		v.Attribs[Pos] = Vec4{readF32(p, 0), readF32(p, 4), 0, 1}
	case PositionF3:
		v.Attribs[Pos] = Vec4{readF32(p, 0), readF32(p, 4), readF32(p, 8), 1}
	case PositionF4:
		v.Attribs[Pos] = Vec4{readF32(p, 0), readF32(p, 4), readF32(p, 8), readF32(p, 12)}
	}
	if f.Position != PositionNone {
		v.Used |= FlagPos
		p = p[f.Position.Size():]
	}

	// surface normal
	if f.Normal {
		v.Attribs[Normal] = Vec4{readF32(p, 0), readF32(p, 4), readF32(p, 8), 0}
		v.Used |= FlagNormal
		p = p[normalSize:]
	}

	// color
	switch f.Color {
	case ColorF3:
		v.Attribs[Color] = Vec4{readF32(p, 0), readF32(p, 4), readF32(p, 8), 1}
	case ColorF4:
		v.Attribs[Color] = Vec4{readF32(p, 0), readF32(p, 4), readF32(p, 8), readF32(p, 12)}
	case ColorUB3:
		v.Attribs[Color] = Vec4{unorm8(p[0]), unorm8(p[1]), unorm8(p[2]), 1}
	case ColorUB4:
		v.Attribs[Color] = Vec4{unorm8(p[0]), unorm8(p[1]), unorm8(p[2]), unorm8(p[3])}
	}
	if f.Color != ColorNone {
		v.Used |= FlagColor
		p = p[f.Color.Size():]
	}

	// texture coordinates
	if f.Tex0 {
		v.Attribs[Tex0] = Vec4{readF32(p, 0), readF32(p, 4), 0, 0}
		v.Used |= FlagTex0
	}

	return stride, nil
}

func readF32(b []byte, off int) float32 {
	return math.Float32frombits(binary.NativeEndian.Uint32(b[off:]))
}

func unorm8(c byte) float32 {
	return float32(c) / 255.0
}

// Cursor walks a vertex buffer, decoding one packed vertex per call.
// It tracks its offset explicitly and never reads past the end of the
// buffer.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Next decodes the vertex at the current offset into v and advances past
// it. On error the offset is unchanged.
func (c *Cursor) Next(v *Vertex, f Format) error {
	n, err := decodeAt(v, c.buf, c.off, f)
	if err != nil {
		return err
	}
	c.off += n
	return nil
}

// At decodes the vertex at byte offset off without moving the cursor.
func (c *Cursor) At(v *Vertex, off int, f Format) error {
	_, err := decodeAt(v, c.buf, off, f)
	return err
}

// Seek moves the cursor to byte offset off. An offset outside
// [0, Len()] returns an *OffsetRangeError and leaves the cursor in place.
func (c *Cursor) Seek(off int) error {
	if off < 0 || off > len(c.buf) {
		return &OffsetRangeError{Offset: off, Len: len(c.buf)}
	}
	c.off = off
	return nil
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of bytes after the current offset.
func (c *Cursor) Remaining() int { return len(c.buf) - c.off }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }
