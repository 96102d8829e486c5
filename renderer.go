// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"errors"
	"image"
	"image/color"

	"github.com/google/uuid"

	"github.com/gogpu/vrender/assets"
	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/internal/svgdoc"
	"github.com/gogpu/vrender/view"
)

// Renderer rasterizes a shape tree into its surfaces over one or more
// ticks. A Renderer is not safe for concurrent use.
type Renderer struct {
	opts    options
	viewbox view.Viewbox

	surfaces *surfaceSet
	fonts    *assets.FontStore
	images   *assets.ImageStore
	svgs     *svgdoc.Cache

	// camera is the viewbox the current traversal was started with.
	camera view.Viewbox
	stack  []frame
	root   uuid.UUID
	state  State

	cached      *CachedSurfaceImage
	annotations []Annotation
}

// New creates a renderer for a viewport of width x height logical pixels.
func New(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fonts, err := assets.NewFontStore()
	if err != nil {
		return nil, wrap("new", err)
	}

	r := &Renderer{
		opts:    o,
		viewbox: view.New(float64(width), float64(height)),
		fonts:   fonts,
		images:  assets.NewImageStore(),
		svgs:    svgdoc.NewCache(o.svgCacheSize),
	}
	set, err := r.newSurfaces(r.viewbox, r.dpr())
	if err != nil {
		return nil, wrap("new", err)
	}
	r.surfaces = set
	r.surfaces.reset(r.opts.background)
	return r, nil
}

func (r *Renderer) dpr() float64 { return r.opts.render.DPR() }

func (r *Renderer) newSurfaces(vb view.Viewbox, dpr float64) (*surfaceSet, error) {
	w, h := deviceSize(vb.Width, vb.Height, dpr)
	set, err := newSurfaceSet(r.opts.registry, r.opts.backend, w, h)
	if err != nil {
		return nil, err
	}
	Logger().Debug("vrender: surfaces created",
		"width", w, "height", h, "dpr", dpr, "backend", set.final.Backend())
	return set, nil
}

// Resize changes the logical viewport size and recreates all surfaces.
// A traversal in progress is canceled. On error the renderer is unchanged.
func (r *Renderer) Resize(width, height int) error {
	vb := r.viewbox
	vb.SetWH(float64(width), float64(height))
	set, err := r.newSurfaces(vb, r.dpr())
	if err != nil {
		return wrap("resize", err)
	}
	r.Cancel()
	r.viewbox = vb
	r.surfaces = set
	r.surfaces.reset(r.opts.background)
	return nil
}

// SetDevicePixelRatio changes the device pixel ratio and recreates all
// surfaces. Setting the current ratio again does nothing.
func (r *Renderer) SetDevicePixelRatio(dpr float64) error {
	if !(dpr > 0) {
		return wrap("set device pixel ratio", ErrInvalidDevicePixelRatio)
	}
	if cur := r.opts.render.DevicePixelRatio; cur != nil && *cur == dpr {
		return nil
	}
	set, err := r.newSurfaces(r.viewbox, dpr)
	if err != nil {
		return wrap("set device pixel ratio", err)
	}
	r.Cancel()
	r.opts.render.DevicePixelRatio = &dpr
	r.surfaces = set
	r.surfaces.reset(r.opts.background)
	return nil
}

// DevicePixelRatio returns the device pixel ratio.
func (r *Renderer) DevicePixelRatio() float64 { return r.dpr() }

// Options returns the output settings.
func (r *Renderer) Options() RenderOptions { return r.opts.render }

// SetBackgroundColor changes the color the final surface is cleared to and
// redraws the cached image, if any, over it. A traversal in progress is
// canceled in that case.
func (r *Renderer) SetBackgroundColor(c color.Color) {
	r.opts.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	if err := r.RenderAllFromCache(); err != nil && !errors.Is(err, ErrUninitialized) {
		Logger().Warn("vrender: redraw after background change failed", "err", err)
	}
}

// SetDebugFlags replaces the debug overlay flags.
func (r *Renderer) SetDebugFlags(f DebugFlags) { r.opts.render.DebugFlags = f }

// AddFont registers font data under a family name.
func (r *Renderer) AddFont(family string, data []byte) error {
	return wrap("add font", r.fonts.Add(family, data))
}

// AddImage decodes and stores an image asset for image fills.
func (r *Renderer) AddImage(id uuid.UUID, data []byte) error {
	return wrap("add image", r.images.Add(id, data))
}

// HasImage reports whether an image asset is stored under id.
func (r *Renderer) HasImage(id uuid.UUID) bool { return r.images.Has(id) }

// SetView replaces zoom and pan. It takes effect on the next
// StartRendering or RenderAllFromCache; a traversal in progress keeps
// culling and drawing with the camera it started with.
func (r *Renderer) SetView(zoom, panX, panY float64) { r.viewbox.SetAll(zoom, panX, panY) }

// Pan moves the camera by a delta in logical screen pixels. Like SetView it
// does not affect a traversal in progress.
func (r *Renderer) Pan(dx, dy float64) { r.viewbox.Pan(dx, dy) }

// ZoomTo zooms about an anchor in logical screen pixels.
func (r *Renderer) ZoomTo(zoom float64, anchor geom.Point) { r.viewbox.ZoomTo(zoom, anchor) }

// Viewbox returns the camera state.
func (r *Renderer) Viewbox() view.Viewbox { return r.viewbox }

// State returns the traversal state.
func (r *Renderer) State() State { return r.state }

// IsRunning reports whether the traversal has frames left.
func (r *Renderer) IsRunning() bool {
	return r.state == Running || r.state == CompletePartial
}

// FinalImage returns a copy of the composited frame. Layers that are still
// open during a partial traversal are not included.
func (r *Renderer) FinalImage() *image.RGBA { return r.surfaces.final.Snapshot() }

// Flush completes pending work on the final surface.
func (r *Renderer) Flush() error {
	return wrap("flush", r.surfaces.final.Flush())
}
