// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"image/color"
	"time"

	"github.com/gogpu/vrender/surface"
)

// DebugFlags select debug overlays.
type DebugFlags uint32

const (
	// DebugVisible outlines every entered shape, green when drawn and red
	// when culled.
	DebugVisible DebugFlags = 1 << iota
	// DebugLabel stamps the renderer name in the top-left corner.
	DebugLabel
)

// Has reports whether all bits of f2 are set in f.
func (f DebugFlags) Has(f2 DebugFlags) bool { return f&f2 == f2 }

// DefaultBudget is the time a tick may spend before yielding.
const DefaultBudget = 16 * time.Millisecond

// DefaultSVGCacheSize bounds the number of parsed SVG documents kept.
const DefaultSVGCacheSize = 64

// RenderOptions holds the renderer settings that change the output.
type RenderOptions struct {
	// DevicePixelRatio is nil until set; DPR reports 1 in that case.
	DevicePixelRatio *float64
	DebugFlags       DebugFlags
}

// DPR returns the device pixel ratio.
func (o RenderOptions) DPR() float64 {
	if o.DevicePixelRatio == nil {
		return 1
	}
	return *o.DevicePixelRatio
}

// IsDebugVisible reports whether shape outlines are drawn.
func (o RenderOptions) IsDebugVisible() bool { return o.DebugFlags.Has(DebugVisible) }

// options holds configuration for a Renderer.
type options struct {
	render       RenderOptions
	clock        Clock
	budget       time.Duration
	backend      string
	registry     *surface.Registry
	background   color.NRGBA
	observer     Observer
	svgCacheSize int
}

func defaultOptions() options {
	return options{
		clock:        newMonotonicClock(),
		budget:       DefaultBudget,
		registry:     surface.DefaultRegistry(),
		background:   color.NRGBA{},
		observer:     NopObserver{},
		svgCacheSize: DefaultSVGCacheSize,
	}
}

// Option configures a Renderer.
type Option func(*options)

// WithDevicePixelRatio sets the initial device pixel ratio. Values that are
// not positive are ignored.
func WithDevicePixelRatio(dpr float64) Option {
	return func(o *options) {
		if dpr > 0 {
			o.render.DevicePixelRatio = &dpr
		}
	}
}

// WithDebugFlags enables debug overlays.
func WithDebugFlags(f DebugFlags) Option {
	return func(o *options) {
		o.render.DebugFlags = f
	}
}

// WithClock replaces the monotonic clock used to measure tick budgets.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithBudget sets how long a tick may run. Zero or negative budgets make
// every tick process exactly one node.
func WithBudget(d time.Duration) Option {
	return func(o *options) {
		o.budget = d
	}
}

// WithBackend selects a surface backend by name instead of the best
// available one.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithRegistry sets the backend registry surfaces are created from.
func WithRegistry(r *surface.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithBackgroundColor sets the color the final surface is cleared to.
func WithBackgroundColor(c color.Color) Option {
	return func(o *options) {
		o.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}

// WithObserver receives traversal events.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithSVGCacheSize bounds the parsed SVG document cache.
func WithSVGCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.svgCacheSize = n
		}
	}
}
