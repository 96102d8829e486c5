// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/scene"

	"github.com/gogpu/vrender/shape"
	"github.com/gogpu/vrender/surface"
)

// maxSVGRaster bounds the raster size of an embedded SVG document.
const maxSVGRaster = 8192

// renderShape draws sh into the drawing surface, composites its shadows
// and transfers the result into the current final layer.
func (r *Renderer) renderShape(sh *shape.Shape, scale float64) {
	d := r.surfaces.drawing
	d.Save()
	d.Concat(sh.Matrix())

	switch sh.Kind {
	case shape.KindSVGRaw:
		r.drawSVG(sh)
	default:
		// Fills and strokes are listed topmost first.
		for i := len(sh.Fills) - 1; i >= 0; i-- {
			r.drawFill(sh, sh.Fills[i])
		}
		for i := len(sh.Strokes) - 1; i >= 0; i-- {
			r.drawStroke(sh, sh.Strokes[i])
		}
	}
	d.Restore()

	r.renderShadows(sh, scale)

	if err := r.surfaces.applyDrawingToFinal(); err != nil {
		Logger().Warn("vrender: flush failed", "id", sh.ID, "err", err)
	}
}

func (r *Renderer) drawFill(sh *shape.Shape, f shape.Fill) {
	dc := r.surfaces.drawing.Context()
	switch f.Kind {
	case shape.FillImage:
		r.drawImageFill(sh, f)
		return
	case shape.FillLinearGradient:
		if f.Gradient == nil || len(f.Gradient.Stops) == 0 {
			return
		}
		dc.SetFillBrush(gradientBrush(sh, f.Gradient))
	default:
		dc.SetFillBrush(gg.Solid(rgba(f.Color)))
	}
	if !tracePath(dc, sh) {
		return
	}
	if err := dc.Fill(); err != nil {
		Logger().Warn("vrender: fill failed", "id", sh.ID, "err", err)
	}
}

func (r *Renderer) drawStroke(sh *shape.Shape, st shape.Stroke) {
	if st.Width <= 0 {
		return
	}
	dc := r.surfaces.drawing.Context()
	dc.SetStrokeBrush(gg.Solid(rgba(st.Color)))
	dc.SetLineWidth(st.Width)
	if len(st.Dash) > 0 {
		dc.SetDash(st.Dash...)
	} else {
		dc.ClearDash()
	}
	if !tracePath(dc, sh) {
		return
	}
	if err := dc.Stroke(); err != nil {
		Logger().Warn("vrender: stroke failed", "id", sh.ID, "err", err)
	}
}

// drawImageFill stretches the image asset over the selection rectangle.
func (r *Renderer) drawImageFill(sh *shape.Shape, f shape.Fill) {
	img, ok := r.images.Get(f.ImageID)
	if !ok {
		Logger().Warn("vrender: missing image", "id", sh.ID, "image", f.ImageID)
		return
	}
	d := r.surfaces.drawing
	d.Save()
	d.ClipRect(sh.Selrect)
	d.DrawImageRect(img, sh.Selrect, surface.SamplingLinear, &surface.Paint{
		Blend: scene.BlendNormal,
		Alpha: f.Opacity,
	})
	d.Restore()
}

// drawSVG rasterizes the embedded document at the device resolution of the
// selection rectangle. Unparsable markup draws nothing.
func (r *Renderer) drawSVG(sh *shape.Shape) {
	doc, err := r.svgs.Get(sh.ID, sh.SVGContent)
	if err != nil {
		Logger().Warn("vrender: svg content skipped", "id", sh.ID, "err", err)
		return
	}
	d := r.surfaces.drawing
	m := d.Matrix()
	sx, sy := math.Hypot(m.A, m.B), math.Hypot(m.C, m.D)
	w := min(int(math.Ceil(sh.Selrect.Width()*sx)), maxSVGRaster)
	h := min(int(math.Ceil(sh.Selrect.Height()*sy)), maxSVGRaster)
	if w <= 0 || h <= 0 {
		return
	}
	d.DrawImageRect(doc.Rasterize(w, h), sh.Selrect, surface.SamplingLinear, nil)
}

// tracePath adds the outline of sh to the current path. It reports false
// if there is nothing to paint.
func tracePath(dc *gg.Context, sh *shape.Shape) bool {
	r := sh.Selrect
	switch sh.Kind {
	case shape.KindCircle:
		c := r.Center()
		dc.DrawEllipse(c.X, c.Y, r.Width()/2, r.Height()/2)
	case shape.KindPath:
		if len(sh.Path) == 0 {
			return false
		}
		for _, seg := range sh.Path {
			p := seg.Points
			switch seg.Op {
			case shape.MoveTo:
				dc.MoveTo(p[0].X, p[0].Y)
			case shape.LineTo:
				dc.LineTo(p[0].X, p[0].Y)
			case shape.QuadTo:
				dc.QuadraticTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
			case shape.CubicTo:
				dc.CubicTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
			case shape.Close:
				dc.ClosePath()
			}
		}
	default:
		if r.IsEmpty() {
			return false
		}
		if sh.CornerRadius > 0 {
			dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), sh.CornerRadius)
		} else {
			dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
		}
	}
	return true
}

// gradientBrush maps a gradient relative to the selection rectangle into
// shape coordinates.
func gradientBrush(sh *shape.Shape, g *shape.Gradient) gg.Brush {
	r := sh.Selrect
	at := func(x, y float64) (float64, float64) {
		return r.Left + x*r.Width(), r.Top + y*r.Height()
	}
	x0, y0 := at(g.Start.X, g.Start.Y)
	x1, y1 := at(g.End.X, g.End.Y)
	b := gg.NewLinearGradientBrush(x0, y0, x1, y1)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, rgba(s.Color))
	}
	return b
}

// rgba converts a straight-alpha color to gg's float representation.
func rgba(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
