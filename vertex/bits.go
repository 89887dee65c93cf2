// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

// Bits is the packed descriptor word form of a vertex format: one bit per
// category variant. Nothing stops a caller from setting two variants of the
// same category; Format resolves that by precedence.
type Bits uint32

// Descriptor bits.
const (
	BitPositionF2 Bits = 1 << iota
	BitPositionF3
	BitPositionF4
	BitNormalF3
	BitColorF3
	BitColorF4
	BitColorUB3
	BitColorUB4
	BitTex0

	// BitsMask covers every defined bit.
	BitsMask = BitTex0<<1 - 1
)

// Format converts the descriptor word to a Format.
//
// When several variants of one category are set, the first in check order
// wins without error: position F2, F3, F4; color F3, F4, UB3, UB4.
// Undefined bits are ignored.
func (b Bits) Format() Format {
	var f Format
	switch {
	case b&BitPositionF2 != 0:
		f.Position = PositionF2
	case b&BitPositionF3 != 0:
		f.Position = PositionF3
	case b&BitPositionF4 != 0:
		f.Position = PositionF4
	}

	f.Normal = b&BitNormalF3 != 0

	switch {
	case b&BitColorF3 != 0:
		f.Color = ColorF3
	case b&BitColorF4 != 0:
		f.Color = ColorF4
	case b&BitColorUB3 != 0:
		f.Color = ColorUB3
	case b&BitColorUB4 != 0:
		f.Color = ColorUB4
	}

	f.Tex0 = b&BitTex0 != 0
	return f
}

// Ambiguous reports whether more than one variant of a category is set,
// i.e. whether Format has to apply precedence.
func (b Bits) Ambiguous() bool {
	pos := b & (BitPositionF2 | BitPositionF3 | BitPositionF4)
	col := b & (BitColorF3 | BitColorF4 | BitColorUB3 | BitColorUB4)
	return pos&(pos-1) != 0 || col&(col-1) != 0
}

// Bits returns the descriptor word for the format.
func (f Format) Bits() Bits {
	var b Bits
	switch f.Position {
	case PositionF2:
		b |= BitPositionF2
	case PositionF3:
		b |= BitPositionF3
	case PositionF4:
		b |= BitPositionF4
	}
	if f.Normal {
		b |= BitNormalF3
	}
	switch f.Color {
	case ColorF3:
		b |= BitColorF3
	case ColorF4:
		b |= BitColorF4
	case ColorUB3:
		b |= BitColorUB3
	case ColorUB4:
		b |= BitColorUB4
	}
	if f.Tex0 {
		b |= BitTex0
	}
	return b
}
