// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides layered raster targets on top of gg.
//
// A Surface owns a gg.Pixmap and a gg.Context drawing into it, plus a
// save/restore stack in the Skia style:
//
//   - Save pushes the transform and clip.
//   - SaveLayer additionally redirects drawing into an offscreen layer.
//   - Restore pops one entry. Popping a layer applies its Paint filter and
//     composites it into the parent with the paint's blend mode and alpha.
//
// Vector drawing goes through Context, which returns the gg context of the
// active target with the current transform and clip installed. Image blits
// use golang.org/x/image/draw samplers under the current transform.
//
// # Backends
//
// Drawing contexts are created by a Factory chosen from a Registry. The
// built-in "software" backend wraps gg's CPU rasterizer; other backends can
// register with a higher priority:
//
//	surface.Register("gpu", 100, gpuFactory, gpuAvailable)
//	s, err := surface.New(800, 600) // best available backend
//
// Surfaces are not safe for concurrent use.
package surface
