// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, *Doc](64)
//	doc, ok := c.Get("key")
//	c.Set("key", doc)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
