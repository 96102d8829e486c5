// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/vrender/shape"
	"github.com/gogpu/vrender/surface"
)

// StartRendering begins a new traversal at root. A traversal in progress
// is canceled and its partial output discarded.
//
// The root shape itself is never culled and draws no geometry; it only
// contributes its layer paint and clip.
func (r *Renderer) StartRendering(root uuid.UUID) {
	r.Cancel()
	r.surfaces.reset(r.opts.background)
	r.annotations = r.annotations[:0]
	r.camera = r.viewbox
	r.surfaces.drawing.SetMatrix(r.camera.Transform(r.dpr()))

	r.root = root
	r.stack = append(r.stack[:0], enter(root))
	r.state = Running
}

// RenderAll runs one tick of the traversal and reports whether work
// remains. The tick ends once the stack is empty or, after any frame, the
// elapsed time exceeds the budget.
//
// The final image is captured into the surface cache when the traversal
// completes in this tick, or on every call when captureCache is set.
func (r *Renderer) RenderAll(tree shape.Tree, captureCache bool) bool {
	if !r.IsRunning() {
		return false
	}

	clock := r.opts.clock
	start := clock.Now()
	frames := 0
	for len(r.stack) > 0 {
		f := r.pop()
		r.process(tree, f)
		frames++
		if len(r.stack) > 0 && r.overBudget(clock.Now()-start) {
			break
		}
	}

	complete := len(r.stack) == 0
	if complete {
		r.state = CompleteFull
	} else {
		r.state = CompletePartial
	}
	if complete || captureCache {
		r.capture(complete)
	}
	if err := r.surfaces.final.Flush(); err != nil {
		Logger().Warn("vrender: flush failed", "err", err)
	}
	if complete {
		r.drawOverlays()
	}

	stats := TickStats{
		Frames:   frames,
		Elapsed:  clock.Now() - start,
		Complete: complete,
		Pending:  len(r.stack),
	}
	Logger().Debug("vrender: tick",
		"frames", stats.Frames, "elapsed", stats.Elapsed,
		"pending", stats.Pending, "state", r.state.String())
	r.opts.observer.TickFinished(stats)
	return r.IsRunning()
}

// Cancel abandons the traversal in progress. Open layers are closed in
// order, so the final surface keeps whatever was composited so far.
func (r *Renderer) Cancel() {
	for len(r.stack) > 0 {
		if f := r.pop(); f.phase == phaseExit {
			r.exit(f)
		}
	}
	if r.IsRunning() {
		r.state = Idle
	}
}

func (r *Renderer) overBudget(elapsed time.Duration) bool {
	return r.opts.budget <= 0 || elapsed > r.opts.budget
}

func (r *Renderer) pop() frame {
	n := len(r.stack) - 1
	f := r.stack[n]
	r.stack = r.stack[:n]
	return f
}

func (r *Renderer) process(tree shape.Tree, f frame) {
	if f.phase == phaseExit {
		r.exit(f)
		return
	}

	sh, ok := tree.Lookup(f.id)
	if !ok || sh == nil {
		Logger().Warn("vrender: missing node", "id", f.id, "err", ErrMissingNode)
		r.opts.observer.NodeMissing(f.id)
		return
	}

	isRoot := f.id == r.root
	if !isRoot {
		visible := !sh.Hidden && sh.Bounds().Intersects(r.camera.Area())
		r.annotate(sh, visible)
		if !visible {
			r.opts.observer.NodeCulled(f.id)
			return
		}
	}
	r.opts.observer.NodeEntered(f.id)

	scale := r.camera.Zoom * r.dpr()
	final, drawing := r.surfaces.final, r.surfaces.drawing

	final.SaveLayer(&surface.Paint{
		Blend:  sh.BlendMode.Scene(),
		Alpha:  sh.Opacity,
		Filter: sh.ImageFilter(scale),
	})
	r.opts.observer.LayerOpened(f.id, final.LayerDepth())

	drawing.Save()
	if isRoot {
		if err := r.surfaces.applyDrawingToFinal(); err != nil {
			Logger().Warn("vrender: flush failed", "id", f.id, "err", err)
		}
	} else {
		r.renderShape(sh, scale)
	}
	drawing.Restore()

	exit := frame{id: f.id, phase: phaseExit}
	if sh.Clip {
		// Children stay inside the transformed bounds until the exit frame,
		// on both surfaces so their shadows and layer filters are cut too.
		m := drawing.Matrix()
		drawing.Save()
		drawing.Concat(sh.Matrix())
		drawing.ClipRect(sh.Selrect)
		drawing.SetMatrix(m)

		final.Save()
		final.SetMatrix(m.Concat(sh.Matrix()))
		final.ClipRect(sh.Selrect)
		final.ResetMatrix()
		exit.clipped = true
	}
	r.stack = append(r.stack, exit)

	if sh.IsRecursive() {
		for i := len(sh.Children) - 1; i >= 0; i-- {
			r.stack = append(r.stack, enter(sh.Children[i]))
		}
	}
}

func (r *Renderer) exit(f frame) {
	depth := r.surfaces.final.LayerDepth()
	if f.clipped {
		r.surfaces.final.Restore()
		r.surfaces.drawing.Restore()
	}
	r.surfaces.final.Restore()
	r.opts.observer.LayerClosed(f.id, depth)
}
