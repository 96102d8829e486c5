// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import "errors"

var (
	// ErrEmptyData is returned when an asset has no bytes.
	ErrEmptyData = errors.New("assets: empty data")

	// ErrUnsupportedFormat is returned for image data of an unknown format.
	ErrUnsupportedFormat = errors.New("assets: unsupported format")
)

// DecodeError reports an asset that could not be decoded.
type DecodeError struct {
	// Kind is "font" or "image".
	Kind string
	// Key is the font family or image id.
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return "assets: decode " + e.Kind + " " + e.Key + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
