// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import "time"

// Clock reports elapsed time. Only differences between readings matter.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

func newMonotonicClock() monotonicClock {
	return monotonicClock{start: time.Now()}
}

func (c monotonicClock) Now() time.Duration { return time.Since(c.start) }
