// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[vertex.Format, []byte](64)
//	spirv, err := c.GetOrCreate(f, func() ([]byte, error) {
//	    return compile(f)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
