// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
)

// IndexBuffer is a sequence of vertex indices. Values are not range
// checked here; DrawTrianglesIndexed skips triangles that reference
// vertices past its vertex count.
type IndexBuffer interface {
	Len() int
	At(i int) uint32
}

// Uint32Indices is an IndexBuffer of 32-bit indices.
type Uint32Indices []uint32

// Len returns the number of indices.
func (b Uint32Indices) Len() int { return len(b) }

// At returns index i.
func (b Uint32Indices) At(i int) uint32 { return b[i] }

// Uint16Indices is an IndexBuffer of 16-bit indices.
type Uint16Indices []uint16

// Len returns the number of indices.
func (b Uint16Indices) Len() int { return len(b) }

// At returns index i.
func (b Uint16Indices) At(i int) uint32 { return uint32(b[i]) }

// NewIndexBuffer decodes native-endian packed index data.
// Only gputypes.IndexFormatUint16 and gputypes.IndexFormatUint32 are
// accepted, and the data length must be a whole number of indices.
func NewIndexBuffer(data []byte, format gputypes.IndexFormat) (IndexBuffer, error) {
	size := int(format.Size())
	if size == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedIndexFormat, format)
	}
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes of %v", ErrMisalignedIndexData, len(data), format)
	}

	n := len(data) / size
	switch format {
	case gputypes.IndexFormatUint16:
		out := make(Uint16Indices, n)
		for i := range out {
			out[i] = binary.NativeEndian.Uint16(data[i*2:])
		}
		return out, nil
	default:
		out := make(Uint32Indices, n)
		for i := range out {
			out[i] = binary.NativeEndian.Uint32(data[i*4:])
		}
		return out, nil
	}
}
