// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vertex decodes packed vertex records for the swr input assembler.
//
// A [Format] names, per attribute category, which encoding a packed vertex
// uses. Categories are stored back to back in a fixed order with no
// padding:
//
//	position (f2|f3|f4) | normal (f3) | color (f3|f4|ub3|ub4) | tex0 (f2)
//
// [Decode] reads one record into a [Vertex], injecting defaults for absent
// attributes, and [Format.Stride] reports the record size without decoding.
// The two always agree, which is what lets indexed draws address vertex i
// at byte offset i*Stride.
//
// # Descriptor words
//
// [Bits] is the one-bit-per-variant descriptor word. It can express
// contradictory formats (two position encodings at once); [Bits.Format]
// resolves them by a fixed precedence instead of failing.
//
// # GPU export
//
// [Format.Layout] describes the same bytes as a gputypes vertex buffer
// layout and [CompileVertexShader] builds a matching WGSL vertex stage, so
// a buffer assembled for the software pipeline can also feed a GPU one.
package vertex
