// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrender

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitialized is returned by RenderAllFromCache before any render
	// has been captured.
	ErrUninitialized = errors.New("vrender: uninitialized cached surface image")

	// ErrMissingNode is logged when the tree has no shape for a child id.
	// The subtree is skipped.
	ErrMissingNode = errors.New("vrender: node not found in tree")

	// ErrInvalidDevicePixelRatio is returned for ratios that are not
	// positive.
	ErrInvalidDevicePixelRatio = errors.New("vrender: device pixel ratio must be positive")
)

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("vrender: %s: %w", op, err)
}
