// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg/scene"
)

// BlendMode is a layer blend mode, numbered in the order used by the
// design file format.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendDarken
	BlendMultiply
	BlendColorBurn
	BlendLighten
	BlendScreen
	BlendColorDodge
	BlendOverlay
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModes = [...]struct {
	name  string
	scene scene.BlendMode
}{
	BlendNormal:     {"normal", scene.BlendNormal},
	BlendDarken:     {"darken", scene.BlendDarken},
	BlendMultiply:   {"multiply", scene.BlendMultiply},
	BlendColorBurn:  {"color-burn", scene.BlendColorBurn},
	BlendLighten:    {"lighten", scene.BlendLighten},
	BlendScreen:     {"screen", scene.BlendScreen},
	BlendColorDodge: {"color-dodge", scene.BlendColorDodge},
	BlendOverlay:    {"overlay", scene.BlendOverlay},
	BlendSoftLight:  {"soft-light", scene.BlendSoftLight},
	BlendHardLight:  {"hard-light", scene.BlendHardLight},
	BlendDifference: {"difference", scene.BlendDifference},
	BlendExclusion:  {"exclusion", scene.BlendExclusion},
	BlendHue:        {"hue", scene.BlendHue},
	BlendSaturation: {"saturation", scene.BlendSaturation},
	BlendColor:      {"color", scene.BlendColor},
	BlendLuminosity: {"luminosity", scene.BlendLuminosity},
}

// BlendModeFromByte decodes a wire value. Unknown values map to normal.
func BlendModeFromByte(b uint8) BlendMode {
	if int(b) < len(blendModes) {
		return BlendMode(b)
	}
	return BlendNormal
}

// Scene returns the equivalent compositing mode.
func (m BlendMode) Scene() scene.BlendMode {
	if int(m) < len(blendModes) {
		return blendModes[m].scene
	}
	return scene.BlendNormal
}

// String implements fmt.Stringer.
func (m BlendMode) String() string {
	if int(m) < len(blendModes) {
		return blendModes[m].name
	}
	return fmt.Sprintf("BlendMode(%d)", m)
}

// ParseBlendMode parses a CSS-style blend mode name.
func ParseBlendMode(s string) (BlendMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, b := range blendModes {
		if b.name == s {
			return BlendMode(m), nil
		}
	}
	return BlendNormal, fmt.Errorf("shape: unknown blend mode %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *BlendMode) UnmarshalText(b []byte) error {
	v, err := ParseBlendMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m BlendMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
