// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "errors"

// Sentinel errors for raster package.
var (
	// ErrUnknownRasterizer is returned by New for names that are not
	// registered.
	ErrUnknownRasterizer = errors.New("raster: unknown rasterizer")

	// ErrNilTarget is returned when a rasterizer that draws pixels is
	// created without a target.
	ErrNilTarget = errors.New("raster: nil target")
)
