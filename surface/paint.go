// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gg/scene"
	"golang.org/x/image/draw"
)

// Paint controls how a layer or image is composited into its parent.
// A nil *Paint means DefaultPaint.
type Paint struct {
	Blend scene.BlendMode

	// Alpha scales the source before blending. The zero value is fully
	// transparent.
	Alpha float64

	// Filter, if set, runs over the source before blending.
	Filter ImageFilter
}

// DefaultPaint returns an opaque source-over paint without a filter.
func DefaultPaint() Paint {
	return Paint{Blend: scene.BlendNormal, Alpha: 1}
}

func (p *Paint) orDefault() Paint {
	if p == nil {
		return DefaultPaint()
	}
	return *p
}

// keepsTransparent reports whether a fully transparent source leaves the
// destination untouched under this blend mode.
func keepsTransparent(m scene.BlendMode) bool {
	switch m {
	case scene.BlendSourceOver, scene.BlendSourceAtop, scene.BlendDestination,
		scene.BlendDestinationOver, scene.BlendXor, scene.BlendPlus:
		return true
	}
	return m <= scene.BlendLuminosity
}

// Sampling selects the image resampling filter.
type Sampling uint8

const (
	// SamplingNearest picks the nearest source pixel.
	SamplingNearest Sampling = iota
	// SamplingLinear interpolates bilinearly.
	SamplingLinear
)

func (s Sampling) transformer() draw.Transformer {
	if s == SamplingLinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

// String implements fmt.Stringer.
func (s Sampling) String() string {
	if s == SamplingLinear {
		return "linear"
	}
	return "nearest"
}
