// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// Mask is a single-channel coverage buffer with values in [0, 1].
type Mask struct {
	Width, Height int
	A             []float32
}

// NewMask allocates a transparent mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, A: make([]float32, width*height)}
}

// AlphaMask extracts the alpha channel of img.
func AlphaMask(img *image.RGBA) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < m.Width; x++ {
			m.A[y*m.Width+x] = float32(row[x*4+3]) / 255
		}
	}
	return m
}

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.A[y*m.Width+x]
}

// Offset returns m shifted by (dx, dy) pixels. Uncovered pixels take fill.
func (m *Mask) Offset(dx, dy int, fill float32) *Mask {
	out := NewMask(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		sy := y - dy
		for x := 0; x < m.Width; x++ {
			sx := x - dx
			v := fill
			if sx >= 0 && sy >= 0 && sx < m.Width && sy < m.Height {
				v = m.A[sy*m.Width+sx]
			}
			out.A[y*m.Width+x] = v
		}
	}
	return out
}

// Invert returns 1-m.
func (m *Mask) Invert() *Mask {
	out := NewMask(m.Width, m.Height)
	for i, v := range m.A {
		out.A[i] = 1 - v
	}
	return out
}

// Multiply returns the product of m and o, which must have equal size.
func (m *Mask) Multiply(o *Mask) *Mask {
	out := NewMask(m.Width, m.Height)
	for i, v := range m.A {
		out.A[i] = v * o.A[i]
	}
	return out
}

// Blur applies a separable Gaussian blur. Edge pixels extend outward.
func (m *Mask) Blur(sigma float64) *Mask {
	if sigma <= 0 || m.Width == 0 || m.Height == 0 {
		return m.clone()
	}
	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2
	w, h := m.Width, m.Height

	temp := make([]float32, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, kv := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				sum += m.A[y*w+kx] * kv
			}
			temp[y*w+x] = sum
		}
	}

	out := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, kv := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				sum += temp[ky*w+x] * kv
			}
			out.A[y*w+x] = sum
		}
	}
	return out
}

// Dilate grows covered regions by radius pixels.
func (m *Mask) Dilate(radius float64) *Mask {
	if radius <= 0 {
		return m.clone()
	}
	dilated := effect.Dilate(m.gray(), radius)
	return AlphaMask(dilated)
}

// Colorize paints c through the mask, producing premultiplied pixels.
func (m *Mask) Colorize(c color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	ca := float32(c.A) / 255
	for i, v := range m.A {
		a := clamp01(v) * ca
		if a == 0 {
			continue
		}
		p := img.Pix[i*4 : i*4+4 : i*4+4]
		p[0] = toByte(float32(c.R) * a)
		p[1] = toByte(float32(c.G) * a)
		p[2] = toByte(float32(c.B) * a)
		p[3] = toByte(255 * a)
	}
	return img
}

// gray renders m as opaque-white coverage for the bild operators.
func (m *Mask) gray() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.A {
		b := toByte(clamp01(v) * 255)
		img.Pix[i*4+0] = b
		img.Pix[i*4+1] = b
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = b
	}
	return img
}

func (m *Mask) clone() *Mask {
	out := NewMask(m.Width, m.Height)
	copy(out.A, m.A)
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
