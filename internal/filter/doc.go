// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filter builds shadow images from rendered coverage.
//
// Sources and results are premultiplied *image.RGBA values of equal size.
// Coverage is handled as a single-channel float32 Mask:
//   - drop shadow: spread (dilate), blur, offset, colorize
//   - inner shadow: invert, spread, blur, offset, colorize, clip to the source
//
// Blur uses a cached separable Gaussian kernel; blur radii are sigmas.
package filter
