// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"errors"
	"fmt"
)

// Sentinel errors for vertex package.
var (
	// ErrBufferTooShort is returned when a packed vertex extends past the
	// end of its buffer.
	ErrBufferTooShort = errors.New("vertex: buffer too short")

	// ErrInvalidFormat is returned for formats with out-of-range encodings
	// or contradictory textual forms.
	ErrInvalidFormat = errors.New("vertex: invalid format")

	// ErrUnknownFormatToken is returned by ParseFormat for unrecognized tokens.
	ErrUnknownFormatToken = errors.New("vertex: unknown format token")

	// ErrNoGPUFormat is returned when an encoding has no GPU vertex format
	// equivalent (3-byte colors).
	ErrNoGPUFormat = errors.New("vertex: encoding has no GPU vertex format")
)

// BufferTooShortError reports a read that would run past the end of a
// vertex buffer.
type BufferTooShortError struct {
	Offset int // byte offset the read started at
	Need   int // bytes required from Offset
	Have   int // total buffer length
}

func (e *BufferTooShortError) Error() string {
	return fmt.Sprintf("vertex: buffer too short: need %d bytes at offset %d, have %d",
		e.Need, e.Offset, e.Have)
}

// Unwrap lets errors.Is match ErrBufferTooShort.
func (e *BufferTooShortError) Unwrap() error {
	return ErrBufferTooShort
}

// OffsetRangeError reports a cursor offset outside [0, Len].
type OffsetRangeError struct {
	Offset int
	Len    int
}

func (e *OffsetRangeError) Error() string {
	return fmt.Sprintf("vertex: offset %d out of range [0, %d]", e.Offset, e.Len)
}

// Unwrap lets errors.Is match ErrBufferTooShort.
func (e *OffsetRangeError) Unwrap() error {
	return ErrBufferTooShort
}
