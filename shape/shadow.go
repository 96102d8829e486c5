// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"image/color"
	"math"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/surface"
)

// ShadowStyle distinguishes shadows cast outside from shadows inside.
type ShadowStyle uint8

const (
	ShadowDrop ShadowStyle = iota
	ShadowInner
)

// ShadowStyleFromByte decodes a wire value. Unknown values mean a drop
// shadow.
func ShadowStyleFromByte(b uint8) ShadowStyle {
	if b == uint8(ShadowInner) {
		return ShadowInner
	}
	return ShadowDrop
}

// String implements fmt.Stringer.
func (s ShadowStyle) String() string {
	if s == ShadowInner {
		return "inner"
	}
	return "drop"
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShadowStyle) UnmarshalText(b []byte) error {
	if string(b) == "inner" || string(b) == "inner-shadow" {
		*s = ShadowInner
	} else {
		*s = ShadowDrop
	}
	return nil
}

// Shadow is a drop or inner shadow. Blur, Spread and Offset are in world
// units.
type Shadow struct {
	Color  color.NRGBA
	Blur   float64
	Spread float64
	Offset geom.Point
	Style  ShadowStyle
	Hidden bool
}

// Filter returns the image filter producing this shadow at the given
// world to device scale.
func (sh Shadow) Filter(scale float64) surface.ImageFilter {
	if sh.Style == ShadowInner {
		return surface.InnerShadowFilter{
			OffsetX: sh.Offset.X * scale,
			OffsetY: sh.Offset.Y * scale,
			Sigma:   sh.Blur * scale,
			Spread:  sh.Spread * scale,
			Color:   sh.Color,
		}
	}
	return surface.DropShadowFilter{
		OffsetX: sh.Offset.X * scale,
		OffsetY: sh.Offset.Y * scale,
		Sigma:   sh.Blur * scale,
		Spread:  sh.Spread * scale,
		Color:   sh.Color,
	}
}

// extent is how far a drop shadow reaches past the shape's bounds.
func (sh Shadow) extent() float64 {
	if sh.Hidden || sh.Style != ShadowDrop {
		return 0
	}
	return math.Max(math.Abs(sh.Offset.X), math.Abs(sh.Offset.Y)) + sh.Spread + 3*sh.Blur
}
