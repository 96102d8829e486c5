// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/surface"
	"github.com/gogpu/vrender/view"
)

// CachedSurfaceImage is a captured final image together with the camera
// it was rendered under. It is never modified after capture.
type CachedSurfaceImage struct {
	Image   *image.RGBA
	Viewbox view.Viewbox
	// HasAllShapes is true if the traversal had completed at capture.
	HasAllShapes bool
}

func (r *Renderer) capture(complete bool) {
	r.cached = &CachedSurfaceImage{
		Image:        r.surfaces.final.Snapshot(),
		Viewbox:      r.camera,
		HasAllShapes: complete,
	}
	Logger().Debug("vrender: cached surface image captured",
		"complete", complete, "zoom", r.camera.Zoom)
}

// CachedImage returns the last captured image, or nil.
func (r *Renderer) CachedImage() *CachedSurfaceImage { return r.cached }

// RenderAllFromCache redraws the final surface from the cached image,
// moved and scaled from the camera it was captured under to the current
// one. It returns ErrUninitialized if nothing has been captured yet.
// A traversal in progress is canceled.
func (r *Renderer) RenderAllFromCache() error {
	cached := r.cached
	if cached == nil {
		return ErrUninitialized
	}
	r.Cancel()
	r.surfaces.reset(r.opts.background)

	final := r.surfaces.final
	final.Save()
	final.SetMatrix(ReplayTransform(r.viewbox, cached.Viewbox, r.dpr()))
	final.DrawImage(cached.Image, 0, 0, surface.SamplingLinear, nil)
	final.Restore()

	return wrap("flush", final.Flush())
}

// ReplayTransform maps device pixels of an image rendered under cached to
// device pixels under cur: scale by the zoom ratio after translating by
// the pan difference in cached device units.
func ReplayTransform(cur, cached view.Viewbox, dpr float64) geom.Matrix {
	cz, z := zoomOf(cached), zoomOf(cur)
	nz := z / cz
	tx := cz * (cur.PanX - cached.PanX) * dpr
	ty := cz * (cur.PanY - cached.PanY) * dpr
	return geom.Scale(nz, nz).Concat(geom.Translate(tx, ty))
}

func zoomOf(v view.Viewbox) float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}
