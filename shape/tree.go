// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/google/uuid"

// Tree resolves shape ids. Implementations must not change while a
// traversal that reads them is in progress.
type Tree interface {
	Lookup(id uuid.UUID) (*Shape, bool)
}

// Map is an in-memory Tree.
type Map map[uuid.UUID]*Shape

// Lookup implements Tree.
func (m Map) Lookup(id uuid.UUID) (*Shape, bool) {
	s, ok := m[id]
	return s, ok
}

// Add stores shapes by id, replacing existing entries.
func (m Map) Add(shapes ...*Shape) {
	for _, s := range shapes {
		m[s.ID] = s
	}
}
