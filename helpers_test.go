// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/shape"
)

// Test helper functions shared across renderer tests.

// fakeClock advances by step on every reading.
type fakeClock struct {
	now  time.Duration
	step time.Duration
}

func (c *fakeClock) Now() time.Duration {
	t := c.now
	c.now += c.step
	return t
}

type layerEvent struct {
	id    uuid.UUID
	depth int
	open  bool
}

// recordingObserver keeps every event in order.
type recordingObserver struct {
	entered, culled, missing []uuid.UUID
	opened, closed           []layerEvent
	// layers holds opens and closes in call order.
	layers []layerEvent
	ticks  []TickStats
}

func (o *recordingObserver) NodeEntered(id uuid.UUID) { o.entered = append(o.entered, id) }
func (o *recordingObserver) NodeCulled(id uuid.UUID)  { o.culled = append(o.culled, id) }
func (o *recordingObserver) NodeMissing(id uuid.UUID) { o.missing = append(o.missing, id) }
func (o *recordingObserver) LayerOpened(id uuid.UUID, depth int) {
	ev := layerEvent{id: id, depth: depth, open: true}
	o.opened = append(o.opened, ev)
	o.layers = append(o.layers, ev)
}
func (o *recordingObserver) LayerClosed(id uuid.UUID, depth int) {
	ev := layerEvent{id: id, depth: depth}
	o.closed = append(o.closed, ev)
	o.layers = append(o.layers, ev)
}
func (o *recordingObserver) TickFinished(s TickStats) { o.ticks = append(o.ticks, s) }

func newTestRenderer(t *testing.T, w, h int, opts ...Option) *Renderer {
	t.Helper()
	opts = append([]Option{WithClock(&fakeClock{})}, opts...)
	r, err := New(w, h, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return r
}

// renderFully runs ticks until the traversal completes.
func renderFully(t *testing.T, r *Renderer, tree shape.Tree, root uuid.UUID) {
	t.Helper()
	r.StartRendering(root)
	for i := 0; r.RenderAll(tree, false); i++ {
		if i > 10000 {
			t.Fatal("traversal did not finish")
		}
	}
}

func addShape(tree shape.Map, sh *shape.Shape) *shape.Shape {
	tree.Add(sh)
	return sh
}

func addChild(tree shape.Map, parent, child *shape.Shape) *shape.Shape {
	parent.Children = append(parent.Children, child.ID)
	tree.Add(child)
	return child
}

func rootFrame(w, h float64) *shape.Shape {
	return shape.New(uuid.New(), shape.KindFrame, geom.XYWH(0, 0, w, h))
}

func rectShape(x, y, w, h float64, c color.NRGBA) *shape.Shape {
	sh := shape.New(uuid.New(), shape.KindRect, geom.XYWH(x, y, w, h))
	sh.Fills = []shape.Fill{shape.Solid(c)}
	return sh
}

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d <= tol && d >= -tol
}

func nearColor(a, b color.RGBA, tol int) bool {
	return near(a.R, b.R, tol) && near(a.G, b.G, tol) && near(a.B, b.B, tol) && near(a.A, b.A, tol)
}

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}

	transparent = color.NRGBA{}

	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
