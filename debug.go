// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image"
	"image/color"
	"slices"

	"github.com/google/uuid"
	"github.com/gogpu/gg"

	"github.com/gogpu/vrender/assets"
	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/shape"
	"github.com/gogpu/vrender/surface"
)

// debugLabel is stamped on the final image when DebugLabel is set.
const debugLabel = "VRENDER"

var (
	debugVisibleColor = color.NRGBA{G: 200, A: 255}
	debugCulledColor  = color.NRGBA{R: 220, A: 255}
	debugLabelColor   = color.NRGBA{R: 255, G: 105, B: 180, A: 255}
)

// Annotation records the culling decision for one shape.
type Annotation struct {
	ID uuid.UUID
	// Bounds is the shape's world-space bounds.
	Bounds  geom.Rect
	Visible bool
}

// DebugAnnotations returns the culling decisions of the current traversal
// in visiting order.
func (r *Renderer) DebugAnnotations() []Annotation { return slices.Clone(r.annotations) }

// DebugImage returns a copy of the debug surface.
func (r *Renderer) DebugImage() *image.RGBA { return r.surfaces.debug.Snapshot() }

func (r *Renderer) annotate(sh *shape.Shape, visible bool) {
	a := Annotation{ID: sh.ID, Bounds: sh.Bounds(), Visible: visible}
	r.annotations = append(r.annotations, a)
	if !r.opts.render.IsDebugVisible() {
		return
	}

	c := debugCulledColor
	if visible {
		c = debugVisibleColor
	}
	dev := a.Bounds.Transform(r.camera.Transform(r.dpr()))
	dc := r.surfaces.debug.Context()
	dc.SetStrokeBrush(gg.Solid(rgba(c)))
	dc.SetLineWidth(1)
	dc.ClearDash()
	dc.DrawRectangle(dev.Left, dev.Top, dev.Width(), dev.Height())
	if err := dc.Stroke(); err != nil {
		Logger().Debug("vrender: debug outline failed", "id", sh.ID, "err", err)
	}
}

// drawOverlays composites the debug surface and label onto the final
// surface. It runs only when no layers are open.
func (r *Renderer) drawOverlays() {
	flags := r.opts.render.DebugFlags
	if flags.Has(DebugVisible) {
		r.surfaces.final.DrawSurface(r.surfaces.debug, 0, 0, surface.SamplingNearest, nil)
	}
	if flags.Has(DebugLabel) {
		r.drawLabel()
	}
}

func (r *Renderer) drawLabel() {
	dpr := r.dpr()
	face := r.fonts.Face(assets.DefaultFamily, 12*dpr)
	if face == nil {
		return
	}
	dc := r.surfaces.final.Context()
	dc.Push()
	dc.Identity()
	dc.SetFont(face)
	dc.SetFillBrush(gg.Solid(rgba(debugLabelColor)))
	dc.DrawString(debugLabel, 6*dpr, 18*dpr)
	dc.Pop()
}
