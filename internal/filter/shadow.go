// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"image/color"
	"math"
)

// Shadow describes a shadow in device pixels.
type Shadow struct {
	OffsetX, OffsetY float64
	// Sigma is the Gaussian blur standard deviation.
	Sigma  float64
	Spread float64
	Color  color.NRGBA
}

// DropShadow renders only the shadow cast by src: coverage is dilated by
// Spread, blurred, offset and colorized. The source itself is not included.
func DropShadow(src *image.RGBA, s Shadow) *image.RGBA {
	m := AlphaMask(src).
		Dilate(s.Spread).
		Blur(s.Sigma).
		Offset(round(s.OffsetX), round(s.OffsetY), 0)
	return m.Colorize(s.Color)
}

// InnerShadow renders the shadow falling inside src's coverage. The area
// outside the shape casts onto the inside, and the result is clipped to
// the source coverage.
func InnerShadow(src *image.RGBA, s Shadow) *image.RGBA {
	coverage := AlphaMask(src)
	m := coverage.Invert().
		Dilate(s.Spread).
		Blur(s.Sigma)
	// Pixels shifted in from outside the buffer count as outside the shape.
	m = m.Offset(round(s.OffsetX), round(s.OffsetY), 1)
	return m.Multiply(coverage).Colorize(s.Color)
}

func round(v float64) int { return int(math.Round(v)) }
