// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vrender incrementally rasterizes a vector scene graph.
//
// # Overview
//
// A Renderer walks a shape.Tree depth first and composites every visible
// shape into a final surface. Work is split into ticks: RenderAll processes
// nodes until its time budget (16ms by default) is spent and returns true
// while more work remains, so a host can call it once per animation frame.
//
//	r, err := vrender.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	r.StartRendering(rootID)
//	for r.RenderAll(tree, false) {
//	    // yield to the host until the next frame
//	}
//	img := r.FinalImage()
//
// # Surfaces
//
// The renderer owns four surfaces of the same device size:
//   - final: the composited frame, one layer per open shape
//   - drawing: the geometry of the shape being rendered
//   - shadow: scratch space for shadow filters
//   - debug: culling and visibility outlines
//
// # Camera
//
// Shapes are in world coordinates. The viewbox maps them to device pixels
// through pan, zoom and the device pixel ratio. Shapes outside the visible
// area are skipped. After a completed render the final image is cached;
// RenderAllFromCache replays it under a new pan and zoom without walking the
// tree.
//
// # Logging
//
// vrender is silent by default. Call SetLogger to receive diagnostics.
package vrender
