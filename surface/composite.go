// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/vrender/geom"
)

// DrawImage draws img with its top-left corner at (x, y) in user space.
func (s *Surface) DrawImage(img image.Image, x, y float64, sampling Sampling, p *Paint) {
	b := img.Bounds()
	s.DrawImageRect(img, geom.XYWH(x, y, float64(b.Dx()), float64(b.Dy())), sampling, p)
}

// DrawImageRect draws img scaled into dst, given in user space, under the
// current transform and clip. Without a filter the blend only touches the
// device bounds of dst.
func (s *Surface) DrawImageRect(img image.Image, dst geom.Rect, sampling Sampling, p *Paint) {
	sb := img.Bounds()
	if sb.Empty() || dst.IsEmpty() {
		return
	}
	paint := p.orDefault()
	m := s.matrix.
		Concat(geom.Translate(dst.Left, dst.Top)).
		Concat(geom.Scale(dst.Width()/float64(sb.Dx()), dst.Height()/float64(sb.Dy()))).
		Concat(geom.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))

	// Filters may move pixels anywhere, so they get the whole surface.
	area := s.Bounds()
	if paint.Filter == nil {
		area = area.Intersect(dst.Transform(s.matrix).Outset(1).Pixels())
		if s.clipped {
			area = area.Intersect(s.clip.Pixels())
		}
		if area.Empty() {
			return
		}
	}

	src := image.NewRGBA(area)
	if m.IsIdentity() {
		draw.Draw(src, sb, img, sb.Min, draw.Src)
	} else {
		sampling.transformer().Transform(src, m.Aff3(), img, sb, draw.Src, nil)
	}
	s.composite(src, paint)
}

// DrawSurface draws the base target of src onto s at (x, y).
func (s *Surface) DrawSurface(src *Surface, x, y float64, sampling Sampling, p *Paint) {
	s.DrawImage(src.Snapshot(), x, y, sampling, p)
}

// composite blends a premultiplied source into the active target inside
// the current clip. Only the pixels the source covers are read back and
// written when the blend mode leaves the destination alone elsewhere.
func (s *Surface) composite(src *image.RGBA, p Paint) {
	if p.Filter != nil {
		src = p.Filter.Apply(src)
	}
	area := s.Bounds().Intersect(src.Bounds())
	if s.clipped {
		area = area.Intersect(s.clip.Pixels())
	}
	skipClear := keepsTransparent(p.Blend)
	if skipClear {
		area = coverage(src, area)
	}
	if area.Empty() || p.Alpha <= 0 {
		return
	}

	dt := s.active()
	dst := readPixmap(dt.pm, area)
	blendFn := p.Blend.GetBlendFunc()
	alpha := p.Alpha
	if alpha > 1 {
		alpha = 1
	}

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			si := src.PixOffset(x, y)
			sr, sg, sb, sa := src.Pix[si], src.Pix[si+1], src.Pix[si+2], src.Pix[si+3]
			if alpha < 1 {
				sr, sg, sb, sa = scale(sr, alpha), scale(sg, alpha), scale(sb, alpha), scale(sa, alpha)
			}
			if sa == 0 && skipClear {
				continue
			}
			di := dst.PixOffset(x, y)
			d := dst.Pix[di : di+4 : di+4]
			d[0], d[1], d[2], d[3] = blendFn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		}
	}
	writePixmap(dt.pm, dst, area)
}

func scale(v uint8, a float64) uint8 {
	return uint8(float64(v)*a + 0.5)
}

// coverage returns the bounds of the pixels in area with non-zero alpha.
// The result is empty when there are none.
func coverage(img *image.RGBA, area image.Rectangle) image.Rectangle {
	out := image.Rectangle{Min: area.Max, Max: area.Min}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		i := img.PixOffset(area.Min.X, y) + 3
		for x := area.Min.X; x < area.Max.X; x, i = x+1, i+4 {
			if img.Pix[i] == 0 {
				continue
			}
			out.Min.X = min(out.Min.X, x)
			out.Max.X = max(out.Max.X, x+1)
			out.Min.Y = min(out.Min.Y, y)
			out.Max.Y = y + 1
		}
	}
	if out.Empty() {
		return image.Rectangle{}
	}
	return out
}

// pixmapImage views the straight-alpha bytes of pm as an image.
func pixmapImage(pm *gg.Pixmap) *image.NRGBA {
	return &image.NRGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// readPixmap copies the area of pm into a premultiplied image.
func readPixmap(pm *gg.Pixmap, area image.Rectangle) *image.RGBA {
	img := image.NewRGBA(area)
	draw.Draw(img, area, pixmapImage(pm), area.Min, draw.Src)
	return img
}

// writePixmap stores the area of a premultiplied image back into pm.
func writePixmap(pm *gg.Pixmap, img *image.RGBA, area image.Rectangle) {
	data, stride := pm.Data(), 4*pm.Width()
	for y := area.Min.Y; y < area.Max.Y; y++ {
		si := img.PixOffset(area.Min.X, y)
		di := y*stride + 4*area.Min.X
		for x := area.Min.X; x < area.Max.X; x, si, di = x+1, si+4, di+4 {
			d := data[di : di+4 : di+4]
			a := uint32(img.Pix[si+3])
			if a == 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				continue
			}
			d[0] = unpremultiply(img.Pix[si], a)
			d[1] = unpremultiply(img.Pix[si+1], a)
			d[2] = unpremultiply(img.Pix[si+2], a)
			d[3] = uint8(a)
		}
	}
}

func unpremultiply(c uint8, a uint32) uint8 {
	return uint8(min(uint32(c)*255/a, 255))
}
