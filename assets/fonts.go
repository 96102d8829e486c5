// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"bytes"
	"sort"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/text/cases"
)

// DefaultFamily is the family registered by NewFontStore.
const DefaultFamily = "gomono"

// Font is a parsed font family.
type Font struct {
	Family string
	// Source rasterizes glyphs through gg.
	Source *text.FontSource
	// Shaping is the go-text view of the same data.
	Shaping *font.Font
}

// FontStore maps case-insensitive family names to fonts.
type FontStore struct {
	mu    sync.RWMutex
	fonts map[string]*Font
}

// NewFontStore returns a store holding the default monospace font.
func NewFontStore() (*FontStore, error) {
	s := &FontStore{fonts: make(map[string]*Font)}
	if err := s.Add(DefaultFamily, gomono.TTF); err != nil {
		return nil, err
	}
	return s, nil
}

// Add parses data and registers it under family, replacing any previous
// font of that family.
func (s *FontStore) Add(family string, data []byte) error {
	if len(data) == 0 {
		return &DecodeError{Kind: "font", Key: family, Err: ErrEmptyData}
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return &DecodeError{Kind: "font", Key: family, Err: err}
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return &DecodeError{Kind: "font", Key: family, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fonts[familyKey(family)] = &Font{Family: family, Source: src, Shaping: face.Font}
	return nil
}

// Has reports whether family is registered.
func (s *FontStore) Has(family string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.fonts[familyKey(family)]
	return ok
}

// Get returns the font for family.
func (s *FontStore) Get(family string) (*Font, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.fonts[familyKey(family)]
	return f, ok
}

// Face returns a face of family at size, falling back to DefaultFamily.
func (s *FontStore) Face(family string, size float64) text.Face {
	f, ok := s.Get(family)
	if !ok {
		f, _ = s.Get(DefaultFamily)
	}
	return f.Source.Face(size)
}

// Families returns the registered family names, sorted.
func (s *FontStore) Families() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.fonts))
	for _, f := range s.fonts {
		names = append(names, f.Family)
	}
	sort.Strings(names)
	return names
}

// familyKey folds case. Casers are stateful, so each call gets its own.
func familyKey(family string) string {
	return cases.Fold().String(family)
}
