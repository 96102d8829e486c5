// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/gogpu/vrender/geom"
)

// FillKind selects how a Fill is painted.
type FillKind uint8

const (
	FillSolid FillKind = iota
	FillLinearGradient
	FillImage
)

// Fill is one paint layer of a shape's interior. Fills are listed topmost
// first.
type Fill struct {
	Kind     FillKind
	Color    color.NRGBA
	Gradient *Gradient
	// ImageID names an asset registered with AddImage.
	ImageID uuid.UUID
	// Opacity multiplies image fills.
	Opacity float64
}

// Solid returns a solid color fill.
func Solid(c color.NRGBA) Fill {
	return Fill{Kind: FillSolid, Color: c, Opacity: 1}
}

// Gradient is a linear gradient. Start and End are relative to the
// shape's selection rectangle, (0,0) top-left and (1,1) bottom-right.
type Gradient struct {
	Start, End geom.Point
	Stops      []GradientStop
}

// GradientStop is a color at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Stroke outlines a shape. Strokes are listed topmost first.
type Stroke struct {
	Width float64
	Color color.NRGBA
	// Dash holds alternating dash and gap lengths; empty means solid.
	Dash []float64
}

// Blur is a layer blur applied to the whole shape.
type Blur struct {
	Value  float64
	Hidden bool
}

// SegmentOp is a path command.
type SegmentOp uint8

const (
	MoveTo SegmentOp = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Segment is a path command with its points, in shape coordinates.
// QuadTo uses Points[0] as control point and Points[1] as end point;
// CubicTo uses all three.
type Segment struct {
	Op     SegmentOp
	Points [3]geom.Point
}
