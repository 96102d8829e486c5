// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command vrender renders a YAML scene file to PNG.
//
// Rendering runs in budgeted ticks, like a host calling RenderAll once per
// animation frame. With -zoom or -pan the finished render is replayed from
// the surface cache under the new camera instead of being drawn again.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/vrender"
	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/scenefile"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML)")
		output    = flag.String("output", "scene.png", "output file")
		budget    = flag.Duration("budget", vrender.DefaultBudget, "time budget per tick")
		dpr       = flag.Float64("dpr", 0, "device pixel ratio (overrides the scene)")
		zoom      = flag.Float64("zoom", 0, "replay the cached render at this zoom")
		panX      = flag.Float64("pan-x", 0, "replay the cached render panned by this many pixels")
		panY      = flag.Float64("pan-y", 0, "replay the cached render panned by this many pixels")
		debug     = flag.Bool("debug", false, "outline visible and culled shapes")
		label     = flag.Bool("label", false, "stamp the renderer label")
		verbose   = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *scenePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	vrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene, err := scenefile.Load(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	tree, err := scene.Tree()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	opts := []vrender.Option{
		vrender.WithBudget(*budget),
		vrender.WithBackgroundColor(scene.Background.NRGBA()),
	}
	if ratio := firstPositive(*dpr, scene.DevicePixelRatio); ratio > 0 {
		opts = append(opts, vrender.WithDevicePixelRatio(ratio))
	}
	var flags vrender.DebugFlags
	if *debug {
		flags |= vrender.DebugVisible
	}
	if *label {
		flags |= vrender.DebugLabel
	}
	opts = append(opts, vrender.WithDebugFlags(flags))

	width, height := scene.Width, scene.Height
	if width == 0 || height == 0 {
		width, height = 800, 600
	}
	r, err := vrender.New(width, height, opts...)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	if err := loadAssets(r, scene); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	start := time.Now()
	ticks := 1
	r.StartRendering(scene.Root)
	for r.RenderAll(tree, false) {
		ticks++
	}
	log.Printf("Rendered %d shapes in %d ticks (%v)", len(tree), ticks, time.Since(start))

	if *zoom > 0 || *panX != 0 || *panY != 0 {
		r.Pan(*panX, *panY)
		if *zoom > 0 {
			r.ZoomTo(*zoom, geom.Pt(float64(width)/2, float64(height)/2))
		}
		if err := r.RenderAllFromCache(); err != nil {
			log.Fatalf("Failed to replay cache: %v", err)
		}
	}

	if err := writePNG(*output, r); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s", *output)
}

// loadAssets reads asset files concurrently and registers them in scene
// order. The renderer itself is used from this goroutine only.
func loadAssets(r *vrender.Renderer, scene *scenefile.Scene) error {
	fonts := make([][]byte, len(scene.Fonts))
	images := make([][]byte, len(scene.Images))

	var g errgroup.Group
	for i, f := range scene.Fonts {
		g.Go(func() error {
			data, err := os.ReadFile(scene.AssetPath(f.Path))
			fonts[i] = data
			return err
		})
	}
	for i, img := range scene.Images {
		g.Go(func() error {
			data, err := os.ReadFile(scene.AssetPath(img.Path))
			images[i] = data
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, f := range scene.Fonts {
		if err := r.AddFont(f.Family, fonts[i]); err != nil {
			return err
		}
	}
	for i, img := range scene.Images {
		if err := r.AddImage(img.ID, images[i]); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, r *vrender.Renderer) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.FinalImage()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func firstPositive(vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
