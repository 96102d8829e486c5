// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape defines the read-only scene graph consumed by the renderer.
//
// Shapes reference their children by id and are resolved through a Tree.
// The renderer never mutates shapes; Map is the in-memory Tree used by
// tests and scene files.
package shape
