// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgdoc parses and rasterizes SVG markup embedded in shapes.
package svgdoc

import (
	"errors"
	"fmt"
	"hash/maphash"
	"image"
	"strings"

	"github.com/google/uuid"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/vrender/geom"
	"github.com/gogpu/vrender/internal/cache"
)

// ErrParse is returned for markup that is not a usable SVG document.
var ErrParse = errors.New("svgdoc: parse")

// Document is a parsed SVG document.
type Document struct {
	icon *oksvg.SvgIcon
}

// Parse parses SVG markup.
func Parse(markup string) (*Document, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &Document{icon: icon}, nil
}

// ViewBox returns the document's view box.
func (d *Document) ViewBox() geom.Rect {
	vb := d.icon.ViewBox
	return geom.XYWH(vb.X, vb.Y, vb.W, vb.H)
}

// Rasterize renders the document stretched to a width x height image.
func (d *Document) Rasterize(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	d.icon.SetTarget(0, 0, float64(width), float64(height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	d.icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return img
}

type cacheKey struct {
	id   uuid.UUID
	hash uint64
}

type cacheEntry struct {
	doc *Document
	err error
}

// Cache memoizes parsed documents per shape. An entry is keyed by the shape
// id and a hash of its markup, so edited markup is parsed again.
type Cache struct {
	seed    maphash.Seed
	entries *cache.Cache[cacheKey, cacheEntry]
}

// NewCache returns a cache holding at most capacity documents.
func NewCache(capacity int) *Cache {
	return &Cache{
		seed:    maphash.MakeSeed(),
		entries: cache.New[cacheKey, cacheEntry](capacity),
	}
}

// Get returns the parsed document for a shape. Parse failures are cached
// too and returned on every call.
func (c *Cache) Get(id uuid.UUID, markup string) (*Document, error) {
	key := cacheKey{id: id, hash: maphash.String(c.seed, markup)}
	e := c.entries.GetOrCreate(key, func() cacheEntry {
		doc, err := Parse(markup)
		return cacheEntry{doc: doc, err: err}
	})
	return e.doc, e.err
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return c.entries.Len() }

// Stats returns the underlying cache counters.
func (c *Cache) Stats() cache.Stats { return c.entries.Stats() }
