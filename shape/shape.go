// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"github.com/google/uuid"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/surface"
)

// Shape is a node of the scene graph.
//
// Selrect is the untransformed selection rectangle in world coordinates.
// Transform is applied about the center of Selrect.
type Shape struct {
	ID        uuid.UUID
	Kind      Kind
	Selrect   geom.Rect
	Transform geom.Matrix
	Children  []uuid.UUID

	Fills   []Fill
	Strokes []Stroke
	Shadows []Shadow
	Blur    Blur

	BlendMode BlendMode
	Opacity   float64
	Hidden    bool
	// Clip restricts children to Selrect.
	Clip bool

	CornerRadius float64
	Path         []Segment
	// SVGContent is the markup of an SVGRaw shape.
	SVGContent string
}

// New returns an opaque, visible shape with the identity transform.
func New(id uuid.UUID, kind Kind, selrect geom.Rect) *Shape {
	return &Shape{
		ID:        id,
		Kind:      kind,
		Selrect:   selrect,
		Transform: geom.Identity(),
		Opacity:   1,
	}
}

// IsRecursive reports whether the shape renders children.
func (s *Shape) IsRecursive() bool { return s.Kind.IsRecursive() }

// Matrix returns Transform applied about the center of Selrect. A zero
// Transform counts as identity.
func (s *Shape) Matrix() geom.Matrix {
	m := s.Transform
	if m == (geom.Matrix{}) {
		m = geom.Identity()
	}
	if m.IsIdentity() {
		return m
	}
	return m.About(s.Selrect.Center())
}

// Bounds returns the world-space area the shape may paint: the transformed
// selection rectangle grown by strokes, drop shadows and layer blur.
func (s *Shape) Bounds() geom.Rect {
	var grow float64
	for _, st := range s.Strokes {
		grow = max(grow, st.Width/2)
	}
	for _, sh := range s.Shadows {
		grow = max(grow, sh.extent())
	}
	if !s.Blur.Hidden && s.Blur.Value > 0 {
		grow += 3 * s.Blur.Value
	}
	return s.Selrect.Transform(s.Matrix()).Outset(grow)
}

// DropShadows returns the visible drop shadows, topmost first.
func (s *Shape) DropShadows() []Shadow { return s.shadows(ShadowDrop) }

// InnerShadows returns the visible inner shadows, topmost first.
func (s *Shape) InnerShadows() []Shadow { return s.shadows(ShadowInner) }

func (s *Shape) shadows(style ShadowStyle) []Shadow {
	var out []Shadow
	for _, sh := range s.Shadows {
		if !sh.Hidden && sh.Style == style {
			out = append(out, sh)
		}
	}
	return out
}

// ImageFilter returns the layer filter for the shape at the given world to
// device scale, or nil.
func (s *Shape) ImageFilter(scale float64) surface.ImageFilter {
	if s.Blur.Hidden || s.Blur.Value <= 0 {
		return nil
	}
	return surface.BlurFilter{Sigma: s.Blur.Value * scale}
}
