// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package swr

import (
	"errors"
	"fmt"

	"github.com/gogpu/swr/vertex"
)

// Sentinel errors for swr package.
var (
	// ErrBufferTooShort is returned when a draw would read past the end of
	// the vertex buffer. It is the same value as vertex.ErrBufferTooShort.
	ErrBufferTooShort = vertex.ErrBufferTooShort

	// ErrIndexBufferTooShort is returned when an indexed draw asks for more
	// indices than the index buffer holds.
	ErrIndexBufferTooShort = errors.New("swr: index buffer too short")

	// ErrNegativeCount is returned for negative vertex or index counts.
	ErrNegativeCount = errors.New("swr: negative count")

	// ErrUnsupportedIndexFormat is returned by NewIndexBuffer for index
	// formats other than Uint16 and Uint32.
	ErrUnsupportedIndexFormat = errors.New("swr: unsupported index format")

	// ErrMisalignedIndexData is returned by NewIndexBuffer when the data
	// length is not a multiple of the index size.
	ErrMisalignedIndexData = errors.New("swr: index data length is not a multiple of the index size")
)

// IndexRangeError reports an indexed draw that needs more indices than
// the bound index buffer holds.
type IndexRangeError struct {
	Need int
	Have int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("swr: index buffer too short: need %d indices, have %d", e.Need, e.Have)
}

// Unwrap lets errors.Is match ErrIndexBufferTooShort.
func (e *IndexRangeError) Unwrap() error {
	return ErrIndexBufferTooShort
}
