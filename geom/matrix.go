// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
)

// MatrixSize is the length of a serialized Matrix.
const MatrixSize = 24

// ErrMatrixSize is returned when decoding a buffer that is not MatrixSize bytes.
var ErrMatrixSize = errors.New("geom: matrix buffer must be 24 bytes")

// Matrix is a 2x3 affine transform in SVG order:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// The zero value is not the identity; use Identity.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix { return Matrix{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{A: sx, D: sy} }

// Rotate returns a rotation by angle radians.
func Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Concat returns m*o: the transform that applies o first, then m.
func (m Matrix) Concat(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.C*o.B,
		B: m.B*o.A + m.D*o.B,
		C: m.A*o.C + m.C*o.D,
		D: m.B*o.C + m.D*o.D,
		E: m.A*o.E + m.C*o.F + m.E,
		F: m.B*o.E + m.D*o.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool { return m == Identity() }

// Invert returns the inverse of m, or false if m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) {
		return Matrix{}, false
	}
	inv := 1 / det
	return Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
		E: (m.C*m.F - m.D*m.E) * inv,
		F: (m.B*m.E - m.A*m.F) * inv,
	}, true
}

// About returns m applied about the pivot point:
// translate(pivot) * m * translate(-pivot).
func (m Matrix) About(pivot Point) Matrix {
	return Translate(pivot.X, pivot.Y).Concat(m).Concat(Translate(-pivot.X, -pivot.Y))
}

// ToGG converts m to the gg row-major layout.
func (m Matrix) ToGG() gg.Matrix {
	return gg.Matrix{A: m.A, B: m.C, C: m.E, D: m.B, E: m.D, F: m.F}
}

// FromGG converts a gg matrix to SVG order.
func FromGG(g gg.Matrix) Matrix {
	return Matrix{A: g.A, B: g.D, C: g.B, D: g.E, E: g.C, F: g.F}
}

// Aff3 returns m in the layout used by golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.C, m.E, m.B, m.D, m.F}
}

// MarshalBinary encodes m as six little-endian float32 values in A..F order.
func (m Matrix) MarshalBinary() ([]byte, error) {
	buf := make([]byte, MatrixSize)
	for i, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
	return buf, nil
}

// UnmarshalBinary decodes the layout written by MarshalBinary.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	if len(data) != MatrixSize {
		return ErrMatrixSize
	}
	var v [6]float64
	for i := range v {
		v[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:])))
	}
	*m = Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}
	return nil
}
