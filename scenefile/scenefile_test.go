// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenefile

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/shape"
)

const sample = `
width: 320
height: 200
dpr: 2
background: "#ffffff"
fonts:
  - family: Inter
    path: fonts/inter.ttf
images:
  - id: 7d444840-9dc0-11d1-b245-5ffdce74fad2
    path: logo.png
shapes:
  - id: 00000000-0000-0000-0000-000000000001
    kind: frame
    rect: [0, 0, 320, 200]
    clip: true
    children:
      - 00000000-0000-0000-0000-000000000002
      - 00000000-0000-0000-0000-000000000003
  - id: 00000000-0000-0000-0000-000000000002
    kind: rect
    rect: [20, 20, 100, 60]
    radius: 8
    opacity: 0.5
    blend-mode: multiply
    transform: [1, 0, 0, 1, 5, 0]
    fills:
      - color: "#ff0000"
      - gradient:
          start: [0, 0]
          end: [0, 1]
          stops:
            - {offset: 0, color: "#000"}
            - {offset: 1, color: "#ffffff80"}
      - image: 7d444840-9dc0-11d1-b245-5ffdce74fad2
        opacity: 0.25
    strokes:
      - {width: 2, color: "#00ff00", dash: [4, 2]}
    shadows:
      - color: "#00000080"
        offset: [4, 4]
        blur: 6
      - color: "#000000"
        style: inner
        hidden: true
    blur: {value: 2}
  - id: 00000000-0000-0000-0000-000000000003
    kind: path
    rect: [0, 0, 10, 10]
    hidden: true
    path: "M 0 0 L 10 0 Q 10 5, 5 10 C 0 10 0 5 0 0 Z"
`

var (
	rootID  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	rectID  = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	pathID  = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	imageID = uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")
)

func TestParseSample(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Width != 320 || s.Height != 200 || s.DevicePixelRatio != 2 {
		t.Errorf("viewport = %dx%d@%v", s.Width, s.Height, s.DevicePixelRatio)
	}
	if s.Background.NRGBA() != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Background = %v", s.Background)
	}
	if s.Root != rootID {
		t.Errorf("Root = %v, want first shape", s.Root)
	}
	if len(s.Fonts) != 1 || s.Fonts[0].Family != "Inter" {
		t.Errorf("Fonts = %+v", s.Fonts)
	}
	if len(s.Images) != 1 || s.Images[0].ID != imageID {
		t.Errorf("Images = %+v", s.Images)
	}

	tree, err := s.Tree()
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if len(tree) != 3 {
		t.Fatalf("tree has %d shapes, want 3", len(tree))
	}

	root, _ := tree.Lookup(rootID)
	if root.Kind != shape.KindFrame || !root.Clip || len(root.Children) != 2 {
		t.Errorf("root = %+v", root)
	}
	if root.Opacity != 1 || !root.Transform.IsIdentity() {
		t.Errorf("root defaults: opacity %v transform %+v", root.Opacity, root.Transform)
	}

	r, _ := tree.Lookup(rectID)
	if r.Selrect != geom.XYWH(20, 20, 100, 60) || r.CornerRadius != 8 {
		t.Errorf("rect geometry = %+v radius %v", r.Selrect, r.CornerRadius)
	}
	if r.Opacity != 0.5 || r.BlendMode != shape.BlendMultiply {
		t.Errorf("rect paint: opacity %v blend %v", r.Opacity, r.BlendMode)
	}
	if r.Transform != geom.Translate(5, 0) {
		t.Errorf("rect transform = %+v", r.Transform)
	}
	if len(r.Fills) != 3 {
		t.Fatalf("fills = %d, want 3", len(r.Fills))
	}
	if f := r.Fills[0]; f.Kind != shape.FillSolid || f.Color != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("fill 0 = %+v", f)
	}
	if f := r.Fills[1]; f.Kind != shape.FillLinearGradient || f.Gradient.End != geom.Pt(0, 1) ||
		len(f.Gradient.Stops) != 2 || f.Gradient.Stops[1].Color.A != 0x80 {
		t.Errorf("fill 1 = %+v", f)
	}
	if f := r.Fills[2]; f.Kind != shape.FillImage || f.ImageID != imageID || f.Opacity != 0.25 {
		t.Errorf("fill 2 = %+v", f)
	}
	if len(r.Strokes) != 1 || r.Strokes[0].Width != 2 || len(r.Strokes[0].Dash) != 2 {
		t.Errorf("strokes = %+v", r.Strokes)
	}
	if len(r.Shadows) != 2 {
		t.Fatalf("shadows = %d, want 2", len(r.Shadows))
	}
	if sd := r.Shadows[0]; sd.Style != shape.ShadowDrop || sd.Offset != geom.Pt(4, 4) || sd.Blur != 6 || sd.Color.A != 0x80 {
		t.Errorf("shadow 0 = %+v", sd)
	}
	if sd := r.Shadows[1]; sd.Style != shape.ShadowInner || !sd.Hidden {
		t.Errorf("shadow 1 = %+v", sd)
	}
	if r.Blur.Value != 2 {
		t.Errorf("blur = %+v", r.Blur)
	}

	p, _ := tree.Lookup(pathID)
	if !p.Hidden || len(p.Path) != 5 {
		t.Errorf("path shape = hidden %v, %d segments", p.Hidden, len(p.Path))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no shapes", "width: 10\nheight: 10\n", ErrNoShapes},
		{"bad color", "background: \"#12\"\nshapes: [{id: 00000000-0000-0000-0000-000000000001, kind: rect, rect: [0,0,1,1]}]\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	src := "shapes:\n  - id: 00000000-0000-0000-0000-000000000001\n    kind: rect\n    rect: [0, 0, 1, 1]\n    colour: red\n"
	if _, err := Parse([]byte(src)); err == nil {
		t.Error("Parse() accepted an unknown field")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	src := "shapes:\n  - id: 00000000-0000-0000-0000-000000000001\n    kind: hexagon\n    rect: [0, 0, 1, 1]\n"
	if _, err := Parse([]byte(src)); err == nil {
		t.Error("Parse() accepted an unknown kind")
	}
}

func TestTreeErrors(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name   string
		shapes []ShapeEntry
		want   error
	}{
		{"missing id", []ShapeEntry{{Rect: []float64{0, 0, 1, 1}}}, ErrMissingID},
		{"duplicate id", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1, 1}}, {ID: id, Rect: []float64{0, 0, 1, 1}}}, ErrDuplicateID},
		{"short rect", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1}}}, ErrInvalidValue},
		{"bad transform", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1, 1}, Transform: []float64{1, 0}}}, ErrInvalidValue},
		{"empty fill", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1, 1}, Fills: []FillEntry{{}}}}, ErrInvalidValue},
		{"bad offset", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1, 1}, Shadows: []ShadowEntry{{Offset: []float64{1}}}}}, ErrInvalidValue},
		{"bad path", []ShapeEntry{{ID: id, Rect: []float64{0, 0, 1, 1}, Path: "M 0"}}, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Scene{Shapes: tt.shapes}
			if _, err := s.Tree(); !errors.Is(err, tt.want) {
				t.Errorf("Tree() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Dir != dir {
		t.Errorf("Dir = %q, want %q", s.Dir, dir)
	}
	if got := s.AssetPath("logo.png"); got != filepath.Join(dir, "logo.png") {
		t.Errorf("AssetPath = %q", got)
	}
	abs := filepath.Join(dir, "x", "abs.png")
	if got := s.AssetPath(abs); got != abs {
		t.Errorf("AssetPath(abs) = %q", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}, false},
		{"#00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"0000ff80", color.NRGBA{B: 255, A: 0x80}, false},
		{" #FFFFFF ", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	b, _ := Color{R: 1, G: 2, B: 3, A: 4}.MarshalText()
	if string(b) != "#01020304" {
		t.Errorf("MarshalText = %q", b)
	}
}

func TestParsePath(t *testing.T) {
	segs, err := ParsePath("M 0,0 L 10 0 q 10 5 5 10 C 0 10 0 5 0 0 Z")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	wantOps := []shape.SegmentOp{shape.MoveTo, shape.LineTo, shape.QuadTo, shape.CubicTo, shape.Close}
	if len(segs) != len(wantOps) {
		t.Fatalf("segments = %d, want %d", len(segs), len(wantOps))
	}
	for i, op := range wantOps {
		if segs[i].Op != op {
			t.Errorf("segment %d op = %v, want %v", i, segs[i].Op, op)
		}
	}
	if segs[2].Points[1] != geom.Pt(5, 10) {
		t.Errorf("quad end = %v", segs[2].Points[1])
	}

	for _, bad := range []string{"X 1 2", "L 1", "M a b"} {
		if _, err := ParsePath(bad); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ParsePath(%q) error = %v", bad, err)
		}
	}
}
