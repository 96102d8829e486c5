// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"image/color"
	"image/draw"
)

// Test helper functions shared across filter tests.

// squareImage returns a w x h transparent image with an opaque square.
func squareImage(w, h int, square image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, square, image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	return img
}

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
