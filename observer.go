// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"time"

	"github.com/google/uuid"
)

// TickStats summarizes one RenderAll call.
type TickStats struct {
	// Frames is the number of traversal frames processed.
	Frames int
	// Elapsed is the clock time the tick took.
	Elapsed time.Duration
	// Complete is true if the traversal finished in this tick.
	Complete bool
	// Pending is the number of frames left on the stack.
	Pending int
}

// Observer receives traversal events. Methods are called synchronously
// from RenderAll and must not call back into the Renderer.
type Observer interface {
	NodeEntered(id uuid.UUID)
	NodeCulled(id uuid.UUID)
	NodeMissing(id uuid.UUID)
	LayerOpened(id uuid.UUID, depth int)
	LayerClosed(id uuid.UUID, depth int)
	TickFinished(stats TickStats)
}

// NopObserver ignores all events. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) NodeEntered(uuid.UUID)      {}
func (NopObserver) NodeCulled(uuid.UUID)       {}
func (NopObserver) NodeMissing(uuid.UUID)      {}
func (NopObserver) LayerOpened(uuid.UUID, int) {}
func (NopObserver) LayerClosed(uuid.UUID, int) {}
func (NopObserver) TickFinished(TickStats)     {}
