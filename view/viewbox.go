// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package view holds the camera state used to map world coordinates onto
// device pixels.
package view

import (
	"github.com/gogpu/vrender/geom"
)

// MinZoom is the smallest accepted zoom factor.
const MinZoom = 0.01

// Viewbox is the camera: a logical viewport size plus pan and zoom.
//
// A world point p lands on device pixel (p + pan) * zoom * dpr. The
// visible area is derived from the fields on every call, so literals and
// direct field writes stay consistent.
type Viewbox struct {
	Width, Height float64
	PanX, PanY    float64
	Zoom          float64
}

// New returns a viewbox of the given logical size at zoom 1 with no pan.
func New(width, height float64) Viewbox {
	return Viewbox{Width: width, Height: height, Zoom: 1}
}

// SetWH changes the logical viewport size.
func (v *Viewbox) SetWH(width, height float64) {
	v.Width, v.Height = width, height
}

// SetPanXY replaces the pan offset.
func (v *Viewbox) SetPanXY(x, y float64) {
	v.PanX, v.PanY = x, y
}

// SetZoom replaces the zoom factor, clamped to MinZoom.
func (v *Viewbox) SetZoom(zoom float64) {
	v.Zoom = clampZoom(zoom)
}

// SetAll replaces zoom and pan in one step.
func (v *Viewbox) SetAll(zoom, panX, panY float64) {
	v.Zoom = clampZoom(zoom)
	v.PanX, v.PanY = panX, panY
}

// Pan moves the camera by a delta given in logical screen pixels.
func (v *Viewbox) Pan(dx, dy float64) {
	z := v.zoom()
	v.PanX += dx / z
	v.PanY += dy / z
}

// ZoomTo sets the zoom factor while keeping the world point under anchor,
// given in logical screen pixels, fixed on screen.
func (v *Viewbox) ZoomTo(zoom float64, anchor geom.Point) {
	world := v.ToWorld(anchor, 1)
	v.Zoom = clampZoom(zoom)
	v.PanX = anchor.X/v.Zoom - world.X
	v.PanY = anchor.Y/v.Zoom - world.Y
}

// Area returns the visible region in world coordinates.
func (v Viewbox) Area() geom.Rect {
	z := v.zoom()
	return geom.XYWH(-v.PanX, -v.PanY, v.Width/z, v.Height/z)
}

// Transform returns the world to device transform for the given
// device pixel ratio.
func (v Viewbox) Transform(dpr float64) geom.Matrix {
	s := v.zoom() * dpr
	return geom.Scale(s, s).Concat(geom.Translate(v.PanX, v.PanY))
}

// ToDevice maps a world point to device pixels.
func (v Viewbox) ToDevice(p geom.Point, dpr float64) geom.Point {
	return v.Transform(dpr).TransformPoint(p)
}

// ToWorld maps a device point back to world coordinates.
func (v Viewbox) ToWorld(p geom.Point, dpr float64) geom.Point {
	s := v.zoom() * dpr
	return geom.Pt(p.X/s-v.PanX, p.Y/s-v.PanY)
}

func (v Viewbox) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	return z
}
