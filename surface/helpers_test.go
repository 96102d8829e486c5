// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"
)

// Test helper functions shared across surface tests.

func newTestSurface(t *testing.T, w, h int) *Surface {
	t.Helper()
	s, err := NewRegistry().withSoftware().NewSurface(w, h)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d): %v", w, h, err)
	}
	return s
}

func (r *Registry) withSoftware() *Registry {
	r.Register("software", 10, SoftwareFactory, nil)
	return r
}

// fillRect fills a user-space rectangle on the active target.
func fillRect(t *testing.T, s *Surface, x, y, w, h float64, c color.NRGBA) {
	t.Helper()
	dc := s.Context()
	dc.SetColor(c)
	dc.DrawRectangle(x, y, w, h)
	if err := dc.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
}

func pixel(s *Surface, x, y int) color.RGBA {
	return s.Snapshot().RGBAAt(x, y)
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d <= tol && d >= -tol
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)
