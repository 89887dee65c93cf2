// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/swr"
)

// Rasterizer names registered by this package.
const (
	NameSoftware = "software"
	NameRecorder = "recorder"
	NameDiscard  = "discard"
)

// Factory creates a rasterizer drawing into target. Factories that do not
// produce pixels ignore the target.
type Factory func(target *PixmapTarget) (swr.Rasterizer, error)

// Priority order for Default (first registered wins).
var registry = gpucontext.NewRegistry[Factory](
	gpucontext.WithPriority(NameSoftware, NameRecorder, NameDiscard),
)

func init() {
	Register(NameSoftware, func(target *PixmapTarget) (swr.Rasterizer, error) {
		if target == nil {
			return nil, ErrNilTarget
		}
		return NewSoftware(target), nil
	})
	Register(NameRecorder, func(*PixmapTarget) (swr.Rasterizer, error) {
		return NewRecorder(), nil
	})
	Register(NameDiscard, func(*PixmapTarget) (swr.Rasterizer, error) {
		return Discard{}, nil
	})
}

// Register registers a rasterizer factory with the given name.
// If a factory with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registry.Register(name, func() Factory { return factory })
}

// Unregister removes a rasterizer from the registry.
// This is useful for testing.
func Unregister(name string) {
	registry.Unregister(name)
}

// IsRegistered checks if a rasterizer with the given name is registered.
func IsRegistered(name string) bool {
	return registry.Has(name)
}

// Available returns the registered rasterizer names in sorted order.
func Available() []string {
	names := registry.Available()
	slices.Sort(names)
	return names
}

// New creates the rasterizer registered under name.
func New(name string, target *PixmapTarget) (swr.Rasterizer, error) {
	factory := registry.Get(name)
	if factory == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownRasterizer, name, Available())
	}
	r, err := factory(target)
	if err != nil {
		return nil, fmt.Errorf("raster: create %q: %w", name, err)
	}
	swr.Logger().Info("raster: created rasterizer", "name", name)
	return r, nil
}

// Default creates the highest-priority registered rasterizer and returns
// it with its name.
func Default(target *PixmapTarget) (swr.Rasterizer, string, error) {
	name := registry.BestName()
	if name == "" {
		return nil, "", ErrUnknownRasterizer
	}
	r, err := New(name, target)
	return r, name, err
}
