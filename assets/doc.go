// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assets stores the fonts and images referenced by a scene.
//
// Decoding happens once, when an asset is added. Malformed data is reported
// as a *DecodeError and leaves the store unchanged.
package assets
