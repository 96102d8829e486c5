// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/shape"
)

var (
	// ErrNoShapes is returned for a scene without shapes.
	ErrNoShapes = errors.New("scenefile: scene has no shapes")

	// ErrMissingID is returned for a shape without an id.
	ErrMissingID = errors.New("scenefile: shape has no id")

	// ErrDuplicateID is returned when two shapes share an id.
	ErrDuplicateID = errors.New("scenefile: duplicate shape id")

	// ErrInvalidValue is returned for malformed rectangles, points,
	// matrices and paths.
	ErrInvalidValue = errors.New("scenefile: invalid value")
)

// Scene is a decoded scene file.
type Scene struct {
	Width            int       `yaml:"width"`
	Height           int       `yaml:"height"`
	DevicePixelRatio float64   `yaml:"dpr"`
	Background       Color     `yaml:"background"`
	Root             uuid.UUID `yaml:"root"`

	Fonts  []FontRef    `yaml:"fonts"`
	Images []ImageRef   `yaml:"images"`
	Shapes []ShapeEntry `yaml:"shapes"`

	// Dir is the directory asset paths are relative to.
	Dir string `yaml:"-"`
}

// FontRef names a font file to register under a family.
type FontRef struct {
	Family string `yaml:"family"`
	Path   string `yaml:"path"`
}

// ImageRef names an image file to register under an id.
type ImageRef struct {
	ID   uuid.UUID `yaml:"id"`
	Path string    `yaml:"path"`
}

// ShapeEntry is one shape as written in the file.
type ShapeEntry struct {
	ID        uuid.UUID       `yaml:"id"`
	Kind      shape.Kind      `yaml:"kind"`
	Rect      []float64       `yaml:"rect"`
	Transform []float64       `yaml:"transform"`
	Children  []uuid.UUID     `yaml:"children"`
	Fills     []FillEntry     `yaml:"fills"`
	Strokes   []StrokeEntry   `yaml:"strokes"`
	Shadows   []ShadowEntry   `yaml:"shadows"`
	Blur      *BlurEntry      `yaml:"blur"`
	BlendMode shape.BlendMode `yaml:"blend-mode"`
	Opacity   *float64        `yaml:"opacity"`
	Hidden    bool            `yaml:"hidden"`
	Clip      bool            `yaml:"clip"`
	Radius    float64         `yaml:"radius"`
	Path      string          `yaml:"path"`
	SVG       string          `yaml:"svg"`
}

// FillEntry is a fill. Image wins over Gradient, and Gradient over Color.
type FillEntry struct {
	Color    *Color         `yaml:"color"`
	Gradient *GradientEntry `yaml:"gradient"`
	Image    uuid.UUID      `yaml:"image"`
	Opacity  *float64       `yaml:"opacity"`
}

// GradientEntry is a linear gradient in selection-rectangle units.
type GradientEntry struct {
	Start []float64   `yaml:"start"`
	End   []float64   `yaml:"end"`
	Stops []StopEntry `yaml:"stops"`
}

// StopEntry is a gradient stop.
type StopEntry struct {
	Offset float64 `yaml:"offset"`
	Color  Color   `yaml:"color"`
}

// StrokeEntry is a stroke.
type StrokeEntry struct {
	Width float64   `yaml:"width"`
	Color Color     `yaml:"color"`
	Dash  []float64 `yaml:"dash"`
}

// ShadowEntry is a drop or inner shadow.
type ShadowEntry struct {
	Color  Color             `yaml:"color"`
	Blur   float64           `yaml:"blur"`
	Spread float64           `yaml:"spread"`
	Offset []float64         `yaml:"offset"`
	Style  shape.ShadowStyle `yaml:"style"`
	Hidden bool              `yaml:"hidden"`
}

// BlurEntry is a layer blur.
type BlurEntry struct {
	Value  float64 `yaml:"value"`
	Hidden bool    `yaml:"hidden"`
}

// Parse decodes a scene. Unknown fields are errors.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	if len(s.Shapes) == 0 {
		return nil, ErrNoShapes
	}
	if s.Root == uuid.Nil {
		s.Root = s.Shapes[0].ID
	}
	return &s, nil
}

// Load reads and decodes a scene file. Asset paths resolve against the
// file's directory.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// AssetPath resolves an asset path against Dir.
func (s *Scene) AssetPath(p string) string {
	if filepath.IsAbs(p) || s.Dir == "" {
		return p
	}
	return filepath.Join(s.Dir, p)
}

// Tree builds the shape map. Children that name no shape are kept; the
// renderer reports them when it reaches them.
func (s *Scene) Tree() (shape.Map, error) {
	tree := make(shape.Map, len(s.Shapes))
	for i := range s.Shapes {
		e := &s.Shapes[i]
		if e.ID == uuid.Nil {
			return nil, fmt.Errorf("shape %d: %w", i, ErrMissingID)
		}
		if _, dup := tree[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		sh, err := e.shape()
		if err != nil {
			return nil, fmt.Errorf("shape %s: %w", e.ID, err)
		}
		tree.Add(sh)
	}
	return tree, nil
}

func (e *ShapeEntry) shape() (*shape.Shape, error) {
	if len(e.Rect) != 4 {
		return nil, fmt.Errorf("%w: rect needs 4 numbers, got %d", ErrInvalidValue, len(e.Rect))
	}
	sh := shape.New(e.ID, e.Kind, geom.XYWH(e.Rect[0], e.Rect[1], e.Rect[2], e.Rect[3]))

	switch len(e.Transform) {
	case 0:
	case 6:
		t := e.Transform
		sh.Transform = geom.Matrix{A: t[0], B: t[1], C: t[2], D: t[3], E: t[4], F: t[5]}
	default:
		return nil, fmt.Errorf("%w: transform needs 6 numbers", ErrInvalidValue)
	}

	sh.Children = e.Children
	sh.BlendMode = e.BlendMode
	if e.Opacity != nil {
		sh.Opacity = *e.Opacity
	}
	sh.Hidden = e.Hidden
	sh.Clip = e.Clip
	sh.CornerRadius = e.Radius
	sh.SVGContent = e.SVG
	if e.Blur != nil {
		sh.Blur = shape.Blur{Value: e.Blur.Value, Hidden: e.Blur.Hidden}
	}

	for _, f := range e.Fills {
		fill, err := f.fill()
		if err != nil {
			return nil, err
		}
		sh.Fills = append(sh.Fills, fill)
	}
	for _, st := range e.Strokes {
		sh.Strokes = append(sh.Strokes, shape.Stroke{Width: st.Width, Color: st.Color.NRGBA(), Dash: st.Dash})
	}
	for _, sd := range e.Shadows {
		off, err := point(sd.Offset, geom.Point{})
		if err != nil {
			return nil, fmt.Errorf("shadow offset: %w", err)
		}
		sh.Shadows = append(sh.Shadows, shape.Shadow{
			Color:  sd.Color.NRGBA(),
			Blur:   sd.Blur,
			Spread: sd.Spread,
			Offset: off,
			Style:  sd.Style,
			Hidden: sd.Hidden,
		})
	}

	if e.Path != "" {
		segs, err := ParsePath(e.Path)
		if err != nil {
			return nil, err
		}
		sh.Path = segs
	}
	return sh, nil
}

func (f FillEntry) fill() (shape.Fill, error) {
	opacity := 1.0
	if f.Opacity != nil {
		opacity = *f.Opacity
	}
	switch {
	case f.Image != uuid.Nil:
		return shape.Fill{Kind: shape.FillImage, ImageID: f.Image, Opacity: opacity}, nil
	case f.Gradient != nil:
		g := f.Gradient
		start, err := point(g.Start, geom.Pt(0, 0))
		if err != nil {
			return shape.Fill{}, fmt.Errorf("gradient start: %w", err)
		}
		end, err := point(g.End, geom.Pt(1, 0))
		if err != nil {
			return shape.Fill{}, fmt.Errorf("gradient end: %w", err)
		}
		grad := &shape.Gradient{Start: start, End: end}
		for _, s := range g.Stops {
			grad.Stops = append(grad.Stops, shape.GradientStop{Offset: s.Offset, Color: s.Color.NRGBA()})
		}
		return shape.Fill{Kind: shape.FillLinearGradient, Gradient: grad, Opacity: opacity}, nil
	case f.Color != nil:
		fill := shape.Solid(f.Color.NRGBA())
		fill.Opacity = opacity
		return fill, nil
	default:
		return shape.Fill{}, fmt.Errorf("%w: fill needs color, gradient or image", ErrInvalidValue)
	}
}

func point(v []float64, def geom.Point) (geom.Point, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 2:
		return geom.Pt(v[0], v[1]), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: point needs 2 numbers, got %d", ErrInvalidValue, len(v))
	}
}
