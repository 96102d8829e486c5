// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/shape"
)

var pathOps = map[string]struct {
	op     shape.SegmentOp
	points int
}{
	"M": {shape.MoveTo, 1},
	"L": {shape.LineTo, 1},
	"Q": {shape.QuadTo, 2},
	"C": {shape.CubicTo, 3},
	"Z": {shape.Close, 0},
}

// ParsePath parses absolute M, L, Q, C and Z commands separated by spaces
// or commas.
func ParsePath(s string) ([]shape.Segment, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	})
	var segs []shape.Segment
	for i := 0; i < len(fields); {
		cmd := strings.ToUpper(fields[i])
		spec, ok := pathOps[cmd]
		if !ok {
			return nil, fmt.Errorf("%w: path command %q", ErrInvalidValue, fields[i])
		}
		i++
		if i+2*spec.points > len(fields) {
			return nil, fmt.Errorf("%w: path command %s needs %d numbers", ErrInvalidValue, cmd, 2*spec.points)
		}
		seg := shape.Segment{Op: spec.op}
		for p := 0; p < spec.points; p++ {
			x, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: path number %q", ErrInvalidValue, fields[i])
			}
			y, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: path number %q", ErrInvalidValue, fields[i+1])
			}
			seg.Points[p] = geom.Pt(x, y)
			i += 2
		}
		segs = append(segs, seg)
	}
	return segs, nil
}
