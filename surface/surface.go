// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/gogpu/vrender/geom"
)

// target is one pixel buffer on the layer stack.
type target struct {
	pm    *gg.Pixmap
	dc    *gg.Context
	paint Paint
}

// state is a save-stack entry: the values to restore, and whether the
// entry opened a layer.
type state struct {
	matrix  geom.Matrix
	clip    geom.Rect
	clipped bool
	layer   bool
}

// Surface is a raster target with a transform, a rectangular device clip
// and a stack of offscreen layers.
type Surface struct {
	width, height int
	backend       string
	factory       Factory

	base   *target
	layers []*target
	spare  []*target
	states []state

	matrix  geom.Matrix
	clip    geom.Rect
	clipped bool
}

func newSurface(backend string, factory Factory, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, dimensionsError(width, height)
	}
	s := &Surface{
		width:   width,
		height:  height,
		backend: backend,
		factory: factory,
		matrix:  geom.Identity(),
	}
	s.base = s.newTarget()
	return s, nil
}

func (s *Surface) newTarget() *target {
	pm := gg.NewPixmap(s.width, s.height)
	return &target{pm: pm, dc: s.factory(pm), paint: DefaultPaint()}
}

// layerTarget returns a cleared target for a new layer, reusing one
// released by an earlier Restore when possible.
func (s *Surface) layerTarget() *target {
	n := len(s.spare)
	if n == 0 {
		return s.newTarget()
	}
	t := s.spare[n-1]
	s.spare = s.spare[:n-1]
	t.pm.Clear(gg.Transparent)
	return t
}

// Width returns the width in device pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in device pixels.
func (s *Surface) Height() int { return s.height }

// Backend returns the name of the backend that created s.
func (s *Surface) Backend() string { return s.backend }

// Bounds returns the device rectangle of s.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

func (s *Surface) active() *target {
	if n := len(s.layers); n > 0 {
		return s.layers[n-1]
	}
	return s.base
}

// Context returns the gg context of the active target with the current
// transform and clip installed. Callers may Push and Pop around their
// drawing but must not change the clip.
func (s *Surface) Context() *gg.Context {
	return s.active().dc
}

// Clear fills the active target with c, ignoring the clip.
func (s *Surface) Clear(c color.Color) {
	s.active().pm.Clear(toGG(c))
}

// Save pushes the transform and clip.
func (s *Surface) Save() {
	s.states = append(s.states, s.snapshotState(false))
}

// SaveLayer pushes the transform and clip and redirects drawing into a new
// transparent layer. The matching Restore composites the layer with p.
func (s *Surface) SaveLayer(p *Paint) {
	s.states = append(s.states, s.snapshotState(true))
	t := s.layerTarget()
	t.paint = p.orDefault()
	s.layers = append(s.layers, t)
	s.sync()
}

// Restore pops the most recent Save or SaveLayer. It is a no-op when
// nothing is saved.
func (s *Surface) Restore() {
	n := len(s.states)
	if n == 0 {
		return
	}
	st := s.states[n-1]
	s.states = s.states[:n-1]

	if st.layer {
		top := s.layers[len(s.layers)-1]
		s.layers = s.layers[:len(s.layers)-1]
		// The parent is drawn under the clip that was active before the layer.
		s.clip, s.clipped = st.clip, st.clipped
		s.composite(readPixmap(top.pm, top.pm.Bounds()), top.paint)
		s.spare = append(s.spare, top)
	}

	s.matrix, s.clip, s.clipped = st.matrix, st.clip, st.clipped
	s.sync()
}

// RestoreToCount pops entries until SaveCount equals count.
func (s *Surface) RestoreToCount(count int) {
	for len(s.states) > count && len(s.states) > 0 {
		s.Restore()
	}
}

// SaveCount returns the depth of the save stack.
func (s *Surface) SaveCount() int { return len(s.states) }

// LayerDepth returns the number of open layers.
func (s *Surface) LayerDepth() int { return len(s.layers) }

// Matrix returns the current transform.
func (s *Surface) Matrix() geom.Matrix { return s.matrix }

// SetMatrix replaces the current transform.
func (s *Surface) SetMatrix(m geom.Matrix) {
	s.matrix = m
	s.active().dc.SetTransform(m.ToGG())
}

// ResetMatrix sets the current transform to identity.
func (s *Surface) ResetMatrix() { s.SetMatrix(geom.Identity()) }

// Concat pre-multiplies the current transform by m, so m applies first.
func (s *Surface) Concat(m geom.Matrix) { s.SetMatrix(s.matrix.Concat(m)) }

// Translate concatenates a translation.
func (s *Surface) Translate(dx, dy float64) { s.Concat(geom.Translate(dx, dy)) }

// Scale concatenates a scale.
func (s *Surface) Scale(sx, sy float64) { s.Concat(geom.Scale(sx, sy)) }

// ClipRect intersects the clip with r mapped through the current
// transform. Like gg, the clip is the device-space bounding box of r.
func (s *Surface) ClipRect(r geom.Rect) {
	dev := r.Transform(s.matrix)
	if s.clipped {
		dev = s.clip.Intersect(dev)
	}
	s.clip, s.clipped = dev, true
	s.sync()
}

// DeviceClip returns the device clip and whether one is set.
func (s *Surface) DeviceClip() (geom.Rect, bool) { return s.clip, s.clipped }

// Flush completes pending GPU work on the base target.
func (s *Surface) Flush() error {
	return s.base.dc.FlushGPU()
}

// Snapshot returns a premultiplied copy of the base target. Open layers
// are not included.
func (s *Surface) Snapshot() *image.RGBA {
	return readPixmap(s.base.pm, s.Bounds())
}

// Reset discards layers and saved state, clears the base target to
// transparent and restores the identity transform.
func (s *Surface) Reset() {
	s.spare = append(s.spare, s.layers...)
	s.layers = s.layers[:0]
	s.states = s.states[:0]
	s.matrix = geom.Identity()
	s.clip, s.clipped = geom.Rect{}, false
	s.base.pm.Clear(gg.Transparent)
	s.sync()
}

func (s *Surface) snapshotState(layer bool) state {
	return state{matrix: s.matrix, clip: s.clip, clipped: s.clipped, layer: layer}
}

// sync installs the current transform and clip on the active context.
func (s *Surface) sync() {
	dc := s.active().dc
	dc.ResetClip()
	if s.clipped {
		dc.Identity()
		c := s.clip
		if c.IsEmpty() {
			c = geom.Rect{}
		}
		dc.ClipRect(c.Left, c.Top, c.Width(), c.Height())
	}
	dc.SetTransform(s.matrix.ToGG())
}

func toGG(c color.Color) gg.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return gg.RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}
