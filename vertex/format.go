// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

import (
	"fmt"
	"strings"
)

const float32Size = 4

// PositionEncoding selects how the position attribute is packed.
type PositionEncoding uint8

// Position encodings.
const (
	PositionNone PositionEncoding = iota
	PositionF2                    // 2 x float32, z=0 w=1
	PositionF3                    // 3 x float32, w=1
	PositionF4                    // 4 x float32
)

// Size returns the packed byte size of the encoding.
func (e PositionEncoding) Size() int {
	switch e {
	case PositionF2:
		return 2 * float32Size
	case PositionF3:
		return 3 * float32Size
	case PositionF4:
		return 4 * float32Size
	default:
		return 0
	}
}

// String returns the token used by ParseFormat.
func (e PositionEncoding) String() string {
	switch e {
	case PositionNone:
		return "none"
	case PositionF2:
		return "f2"
	case PositionF3:
		return "f3"
	case PositionF4:
		return "f4"
	default:
		return "unknown"
	}
}

// ColorEncoding selects how the color attribute is packed.
type ColorEncoding uint8

// Color encodings.
const (
	ColorNone ColorEncoding = iota
	ColorF3                 // 3 x float32, a=1
	ColorF4                 // 4 x float32
	ColorUB3                // 3 x uint8 normalized by 255, a=1
	ColorUB4                // 4 x uint8 normalized by 255
)

// Size returns the packed byte size of the encoding.
func (e ColorEncoding) Size() int {
	switch e {
	case ColorF3:
		return 3 * float32Size
	case ColorF4:
		return 4 * float32Size
	case ColorUB3:
		return 3
	case ColorUB4:
		return 4
	default:
		return 0
	}
}

// String returns the token used by ParseFormat.
func (e ColorEncoding) String() string {
	switch e {
	case ColorNone:
		return "none"
	case ColorF3:
		return "f3"
	case ColorF4:
		return "f4"
	case ColorUB3:
		return "ub3"
	case ColorUB4:
		return "ub4"
	default:
		return "unknown"
	}
}

// Packed sizes of the fixed-encoding categories.
const (
	normalSize = 3 * float32Size
	tex0Size   = 2 * float32Size
)

// Format describes which attributes a packed vertex carries and how each
// one is encoded. Each category holds at most one encoding, so the packed
// layout is unambiguous.
//
// Packed records store the categories in a fixed order with no padding:
//
//	position | normal | color | tex0
type Format struct {
	Position PositionEncoding
	Normal   bool
	Color    ColorEncoding
	Tex0     bool
}

// Valid reports whether every encoding is a known value.
func (f Format) Valid() bool {
	return f.Position <= PositionF4 && f.Color <= ColorUB4
}

// Stride returns the size in bytes of one packed vertex. It always equals
// the number of bytes Decode consumes for the same format.
func (f Format) Stride() int {
	n := f.Position.Size() + f.Color.Size()
	if f.Normal {
		n += normalSize
	}
	if f.Tex0 {
		n += tex0Size
	}
	return n
}

// Offsets holds the byte offset of each category inside a packed record.
// Absent categories report -1.
type Offsets struct {
	Position, Normal, Color, Tex0 int
}

// Offsets returns the byte offset of each present category.
func (f Format) Offsets() Offsets {
	o := Offsets{Position: -1, Normal: -1, Color: -1, Tex0: -1}
	off := 0
	if f.Position != PositionNone {
		o.Position = off
		off += f.Position.Size()
	}
	if f.Normal {
		o.Normal = off
		off += normalSize
	}
	if f.Color != ColorNone {
		o.Color = off
		off += f.Color.Size()
	}
	if f.Tex0 {
		o.Tex0 = off
	}
	return o
}

// Used returns the attribute flags a decode with this format sets.
func (f Format) Used() AttribFlags {
	var used AttribFlags
	if f.Position != PositionNone {
		used |= FlagPos
	}
	if f.Normal {
		used |= FlagNormal
	}
	if f.Color != ColorNone {
		used |= FlagColor
	}
	if f.Tex0 {
		used |= FlagTex0
	}
	return used
}

// String returns the textual form accepted by ParseFormat,
// for example "pos=f3,normal,color=ub4,tex0".
func (f Format) String() string {
	parts := make([]string, 0, 4)
	if f.Position != PositionNone {
		parts = append(parts, "pos="+f.Position.String())
	}
	if f.Normal {
		parts = append(parts, "normal")
	}
	if f.Color != ColorNone {
		parts = append(parts, "color="+f.Color.String())
	}
	if f.Tex0 {
		parts = append(parts, "tex0")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseFormat parses the textual form produced by Format.String.
// Tokens are comma separated and may appear in any order:
//
//	pos=f2|f3|f4  normal  color=f3|f4|ub3|ub4  tex0  none
//
// Naming a category twice is an error.
func ParseFormat(s string) (Format, error) {
	var f Format
	var seen AttribFlags
	claim := func(flag AttribFlags, tok string) error {
		if seen.Has(flag) {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidFormat, tok)
		}
		seen |= flag
		return nil
	}

	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		key, val, _ := strings.Cut(tok, "=")
		switch key {
		case "", "none":
			continue
		case "pos", "position":
			if err := claim(FlagPos, tok); err != nil {
				return Format{}, err
			}
			switch val {
			case "f2":
				f.Position = PositionF2
			case "f3":
				f.Position = PositionF3
			case "f4":
				f.Position = PositionF4
			default:
				return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormatToken, tok)
			}
		case "normal":
			if val != "" {
				return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormatToken, tok)
			}
			if err := claim(FlagNormal, tok); err != nil {
				return Format{}, err
			}
			f.Normal = true
		case "color":
			if err := claim(FlagColor, tok); err != nil {
				return Format{}, err
			}
			switch val {
			case "f3":
				f.Color = ColorF3
			case "f4":
				f.Color = ColorF4
			case "ub3":
				f.Color = ColorUB3
			case "ub4":
				f.Color = ColorUB4
			default:
				return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormatToken, tok)
			}
		case "tex0":
			if val != "" {
				return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormatToken, tok)
			}
			if err := claim(FlagTex0, tok); err != nil {
				return Format{}, err
			}
			f.Tex0 = true
		default:
			return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormatToken, tok)
		}
	}
	return f, nil
}
