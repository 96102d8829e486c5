// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image/color"
	"math"

	"github.com/gogpu/vrender/surface"
)

// surfaceSet is the four equally sized surfaces a Renderer draws with.
type surfaceSet struct {
	// final holds the composited frame and one layer per open shape.
	final *surface.Surface
	// drawing holds the geometry of the shape being rendered, under the
	// viewbox transform.
	drawing *surface.Surface
	// shadow is scratch space for shadow filters.
	shadow *surface.Surface
	// debug collects shape outlines.
	debug *surface.Surface
}

// deviceSize converts a logical size to device pixels.
func deviceSize(width, height, dpr float64) (int, int) {
	return int(math.Floor(width * dpr)), int(math.Floor(height * dpr))
}

func newSurfaceSet(reg *surface.Registry, backend string, width, height int) (*surfaceSet, error) {
	create := func() (*surface.Surface, error) {
		if backend != "" {
			return reg.NewSurfaceByName(backend, width, height)
		}
		return reg.NewSurface(width, height)
	}

	set := &surfaceSet{}
	for _, dst := range []**surface.Surface{&set.final, &set.drawing, &set.shadow, &set.debug} {
		s, err := create()
		if err != nil {
			return nil, err
		}
		*dst = s
	}
	return set, nil
}

func (s *surfaceSet) all() [4]*surface.Surface {
	return [4]*surface.Surface{s.final, s.drawing, s.shadow, s.debug}
}

// reset drops all layers and transforms, clears final to bg and the rest to
// transparent.
func (s *surfaceSet) reset(bg color.NRGBA) {
	for _, sf := range s.all() {
		sf.Reset()
	}
	s.final.Clear(bg)
}

// applyDrawingToFinal moves the drawing surface into the current final
// layer and clears the scratch surfaces.
func (s *surfaceSet) applyDrawingToFinal() error {
	err := s.drawing.Flush()
	s.final.DrawSurface(s.drawing, 0, 0, surface.SamplingLinear, nil)
	s.shadow.Clear(color.Transparent)
	s.drawing.Clear(color.Transparent)
	return err
}
