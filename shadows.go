// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image/color"

	"github.com/gogpu/gg/scene"

	"github.com/gogpu/vrender/shape"
	"github.com/gogpu/vrender/surface"
)

// shadowStrategy composites one shadow of the shape currently on the
// drawing surface.
type shadowStrategy interface {
	render(s *surfaceSet, sh shape.Shadow, scale float64)
}

var shadowStrategies = map[shape.ShadowStyle]shadowStrategy{
	shape.ShadowDrop:  dropShadow{},
	shape.ShadowInner: innerShadow{},
}

// renderShadows draws the visible drop shadows into the final layer and
// the visible inner shadows onto the drawing surface, bottommost first.
func (r *Renderer) renderShadows(sh *shape.Shape, scale float64) {
	drops, inners := sh.DropShadows(), sh.InnerShadows()
	if len(drops) == 0 && len(inners) == 0 {
		return
	}
	if err := r.surfaces.drawing.Flush(); err != nil {
		Logger().Warn("vrender: flush failed", "id", sh.ID, "err", err)
	}
	for _, list := range [][]shape.Shadow{drops, inners} {
		for i := len(list) - 1; i >= 0; i-- {
			shadowStrategies[list[i].Style].render(r.surfaces, list[i], scale)
		}
	}
}

// castShadow renders the drawing surface through the shadow's filter into
// the shadow surface.
func castShadow(s *surfaceSet, sh shape.Shadow, scale float64) {
	s.shadow.DrawImage(s.drawing.Snapshot(), 0, 0, surface.SamplingNearest, &surface.Paint{
		Blend:  scene.BlendNormal,
		Alpha:  1,
		Filter: sh.Filter(scale),
	})
}

// dropShadow paints the shadow beneath the shape, in the current final
// layer.
type dropShadow struct{}

func (dropShadow) render(s *surfaceSet, sh shape.Shadow, scale float64) {
	castShadow(s, sh, scale)
	s.final.DrawSurface(s.shadow, 0, 0, surface.SamplingLinear, nil)
	s.shadow.Clear(color.Transparent)
}

// innerShadow paints the shadow over the shape's own pixels with
// source-atop, so it travels with the shape into the final layer.
type innerShadow struct{}

func (innerShadow) render(s *surfaceSet, sh shape.Shadow, scale float64) {
	castShadow(s, sh, scale)
	d := s.drawing
	d.Save()
	d.ResetMatrix()
	d.DrawSurface(s.shadow, 0, 0, surface.SamplingNearest, &surface.Paint{
		Blend: scene.BlendSourceAtop,
		Alpha: 1,
	})
	d.Restore()
	s.shadow.Clear(color.Transparent)
}
