// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vertex

// Vec4 is a four-component attribute value.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Attrib identifies an attribute slot in a Vertex.
type Attrib uint8

// Attribute slots. The texture coordinate slots are contiguous so that
// Tex0+layer addresses a texture layer.
const (
	Pos Attrib = iota
	Color
	Normal
	Tex0
	Tex1

	// NumAttribs is the number of attribute slots in a Vertex.
	NumAttribs
)

// MaxTextureLayers is the number of texture coordinate slots.
const MaxTextureLayers = int(NumAttribs - Tex0)

// String returns a human-readable name for the attribute.
func (a Attrib) String() string {
	switch a {
	case Pos:
		return "Pos"
	case Color:
		return "Color"
	case Normal:
		return "Normal"
	case Tex0:
		return "Tex0"
	case Tex1:
		return "Tex1"
	default:
		return "Unknown"
	}
}

// Flag returns the presence flag for the attribute.
func (a Attrib) Flag() AttribFlags {
	return 1 << a
}

// AttribFlags is a bitset of attribute slots populated by a decode or by
// immediate-mode calls.
type AttribFlags uint8

// Presence flags, one per attribute slot.
const (
	FlagPos    = AttribFlags(1 << Pos)
	FlagColor  = AttribFlags(1 << Color)
	FlagNormal = AttribFlags(1 << Normal)
	FlagTex0   = AttribFlags(1 << Tex0)
	FlagTex1   = AttribFlags(1 << Tex1)
)

// Has reports whether every flag in mask is set.
func (f AttribFlags) Has(mask AttribFlags) bool {
	return f&mask == mask
}

// Default attribute values injected before decoding.
var (
	DefaultPosition = Vec4{0, 0, 0, 1}
	DefaultColor    = Vec4{1, 1, 1, 1}
	DefaultNormal   = Vec4{0, 0, 0, 0}
	DefaultTexCoord = Vec4{0, 0, 0, 1}
)

// Vertex is a decoded vertex record: one Vec4 per attribute slot plus a
// bitset marking which slots were populated.
//
// Vertex is a plain value. The pipeline builds a fresh one for every
// triangle corner and never keeps it past the dispatch.
type Vertex struct {
	Attribs [NumAttribs]Vec4
	Used    AttribFlags
}

// New returns a vertex holding the default attribute values.
func New() Vertex {
	var v Vertex
	v.Reset()
	return v
}

// Reset restores every attribute to its default and clears Used.
func (v *Vertex) Reset() {
	v.Attribs[Pos] = DefaultPosition
	v.Attribs[Color] = DefaultColor
	v.Attribs[Normal] = DefaultNormal
	for l := Tex0; l < NumAttribs; l++ {
		v.Attribs[l] = DefaultTexCoord
	}
	v.Used = 0
}

// Set writes an attribute slot and marks it used.
func (v *Vertex) Set(a Attrib, val Vec4) {
	v.Attribs[a] = val
	v.Used |= a.Flag()
}

// Position returns the position slot.
func (v *Vertex) Position() Vec4 { return v.Attribs[Pos] }

// ColorValue returns the color slot.
func (v *Vertex) ColorValue() Vec4 { return v.Attribs[Color] }

// NormalValue returns the normal slot.
func (v *Vertex) NormalValue() Vec4 { return v.Attribs[Normal] }

// TexCoord returns the texture coordinate slot for a layer.
// It panics if layer is outside [0, MaxTextureLayers).
func (v *Vertex) TexCoord(layer int) Vec4 { return v.Attribs[Tex0+Attrib(layer)] }
