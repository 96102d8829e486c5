// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import "github.com/google/uuid"

// State is the progress of the current traversal.
type State uint8

const (
	// Idle means no traversal was started or the last one was canceled.
	Idle State = iota
	// Running means frames are pending.
	Running
	// CompleteFull means the last tick drained the traversal.
	CompleteFull
	// CompletePartial means the last tick ran out of budget.
	CompletePartial
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case CompleteFull:
		return "CompleteFull"
	case CompletePartial:
		return "CompletePartial"
	default:
		return "Unknown"
	}
}

type phase uint8

const (
	phaseEnter phase = iota
	phaseExit
)

// frame is one pending step of the depth-first traversal. An enter frame
// is either dropped or replaced by exactly one exit frame.
type frame struct {
	id      uuid.UUID
	phase   phase
	clipped bool
}

func enter(id uuid.UUID) frame { return frame{id: id, phase: phaseEnter} }
