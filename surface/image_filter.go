// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"

	"github.com/gogpu/vrender/internal/filter"
)

// ImageFilter transforms premultiplied layer content before it is
// composited. Implementations return an image with the same bounds.
type ImageFilter interface {
	Apply(src *image.RGBA) *image.RGBA
}

// FilterFunc adapts a function to ImageFilter.
type FilterFunc func(src *image.RGBA) *image.RGBA

// Apply calls f.
func (f FilterFunc) Apply(src *image.RGBA) *image.RGBA { return f(src) }

// BlurFilter is a Gaussian layer blur.
type BlurFilter struct {
	Sigma float64
}

// Apply implements ImageFilter.
func (f BlurFilter) Apply(src *image.RGBA) *image.RGBA {
	if f.Sigma <= 0 {
		return src
	}
	return blur.Gaussian(src, f.Sigma)
}

// DropShadowFilter replaces the source with the shadow it casts.
type DropShadowFilter struct {
	OffsetX, OffsetY float64
	Sigma, Spread    float64
	Color            color.NRGBA
}

// Apply implements ImageFilter.
func (f DropShadowFilter) Apply(src *image.RGBA) *image.RGBA {
	return filter.DropShadow(src, filter.Shadow(f))
}

// InnerShadowFilter replaces the source with the shadow falling inside it.
type InnerShadowFilter struct {
	OffsetX, OffsetY float64
	Sigma, Spread    float64
	Color            color.NRGBA
}

// Apply implements ImageFilter.
func (f InnerShadowFilter) Apply(src *image.RGBA) *image.RGBA {
	return filter.InnerShadow(src, filter.Shadow(f))
}

// Compose returns a filter applying inner first, then outer. Nil operands
// are skipped; Compose(nil, nil) is nil.
func Compose(outer, inner ImageFilter) ImageFilter {
	switch {
	case outer == nil:
		return inner
	case inner == nil:
		return outer
	}
	return FilterFunc(func(src *image.RGBA) *image.RGBA {
		return outer.Apply(inner.Apply(src))
	})
}
