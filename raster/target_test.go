// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixmapTarget(t *testing.T) {
	target := NewPixmapTarget(4, 3)

	if target.Width() != 4 || target.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.Stride() != 16 || len(target.Pixels()) != 48 {
		t.Errorf("Stride() = %d, len(Pixels()) = %d", target.Stride(), len(target.Pixels()))
	}
	if target.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", target.Bounds())
	}
}

func TestPixmapTarget_Clear(t *testing.T) {
	target := NewPixmapTarget(2, 2)
	target.Clear(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	for y := range 2 {
		for x := range 2 {
			if got := target.Image().RGBAAt(x, y); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
				t.Errorf("pixel (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestPixmapTarget_FromImageSharesMemory(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	target := NewPixmapTargetFromImage(img)
	target.Clear(color.White)
	if img.Pix[0] != 255 {
		t.Error("target does not share memory with the image")
	}

	target.Resize(5, 6)
	if target.Width() != 5 || target.Height() != 6 {
		t.Errorf("size after Resize = %dx%d", target.Width(), target.Height())
	}
	if target.Image() == img {
		t.Error("Resize kept the old image")
	}
}
