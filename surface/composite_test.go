// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"

	"github.com/gogpu/vrender/geom"
)

func TestCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(3, 4, color.RGBA{A: 1})
	img.SetRGBA(6, 2, color.RGBA{R: 9, A: 9})

	tests := []struct {
		name string
		area image.Rectangle
		want image.Rectangle
	}{
		{"whole image", img.Bounds(), image.Rect(3, 2, 7, 5)},
		{"one pixel", image.Rect(0, 3, 5, 10), image.Rect(3, 4, 4, 5)},
		{"nothing covered", image.Rect(7, 7, 10, 10), image.Rectangle{}},
		{"empty area", image.Rectangle{}, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverage(img, tt.area); got != tt.want {
				t.Errorf("coverage(%v) = %v, want %v", tt.area, got, tt.want)
			}
		})
	}
}

func TestPixmapRoundTrip(t *testing.T) {
	pm := gg.NewPixmap(4, 4)
	src := image.NewRGBA(image.Rect(1, 1, 3, 3))
	src.SetRGBA(1, 1, color.RGBA{R: 128, A: 128})
	src.SetRGBA(2, 2, color.RGBA{G: 255, B: 64, A: 255})
	writePixmap(pm, src, src.Bounds())

	if got := pm.Data()[(1*4+1)*4:][:4]; got[0] != 255 || got[3] != 128 {
		t.Errorf("stored pixel = %v, want straight red at half alpha", got)
	}
	got := readPixmap(pm, pm.Bounds())
	if px := got.RGBAAt(1, 1); !near(px.R, 128, 1) || px.A != 128 {
		t.Errorf("read back (1,1) = %+v, want premultiplied half red", px)
	}
	if px := got.RGBAAt(2, 2); px != (color.RGBA{G: 255, B: 64, A: 255}) {
		t.Errorf("read back (2,2) = %+v", px)
	}
	if px := got.RGBAAt(0, 0); px.A != 0 {
		t.Errorf("untouched pixel = %+v, want transparent", px)
	}
}

func TestLayerTargetsReused(t *testing.T) {
	s := newTestSurface(t, 8, 8)
	s.SaveLayer(nil)
	first := s.active()
	fillRect(t, s, 0, 0, 8, 8, red)
	s.Restore()

	s.SaveLayer(&Paint{Blend: scene.BlendNormal, Alpha: 1})
	if s.active() != first {
		t.Error("SaveLayer allocated a new target instead of reusing the released one")
	}
	if px := s.active().pm.GetPixel(4, 4); px.A != 0 {
		t.Errorf("reused layer pixel = %+v, want cleared", px)
	}
	fillRect(t, s, 0, 0, 2, 2, blue)
	s.Restore()

	if px := pixel(s, 1, 1); px != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("pixel (1,1) = %+v, want blue", px)
	}
	if px := pixel(s, 5, 5); px != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (5,5) = %+v, want red from the first layer", px)
	}
}

func TestDrawImageRectBoundsBlend(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.Clear(white)
	// DestinationIn keeps the destination only where the source covers it,
	// and only inside the drawn rectangle.
	s.DrawImageRect(solidImage(2, 2, color.RGBA{A: 255}), geom.XYWH(2, 2, 4, 4), SamplingNearest,
		&Paint{Blend: scene.BlendDestinationIn, Alpha: 1})
	if px := pixel(s, 3, 3); px.A != 255 {
		t.Errorf("inside = %+v, want kept", px)
	}
	if px := pixel(s, 8, 8); px != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside = %+v, want untouched white", px)
	}
}
