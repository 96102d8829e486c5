// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"bytes"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"sync"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/webp" // register decoder
)

// ImageStore holds decoded images by id.
type ImageStore struct {
	mu     sync.RWMutex
	images map[uuid.UUID]image.Image
}

// NewImageStore returns an empty store.
func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[uuid.UUID]image.Image)}
}

// Add decodes data and stores it under id. The format is sniffed from the
// content; png, jpeg, gif and webp are supported.
func (s *ImageStore) Add(id uuid.UUID, data []byte) error {
	if len(data) == 0 {
		return &DecodeError{Kind: "image", Key: id.String(), Err: ErrEmptyData}
	}
	if !filetype.IsImage(data) {
		return &DecodeError{Kind: "image", Key: id.String(), Err: ErrUnsupportedFormat}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if kind, _ := filetype.Match(data); kind != filetype.Unknown {
			err = &formatError{format: kind.Extension, err: err}
		}
		return &DecodeError{Kind: "image", Key: id.String(), Err: err}
	}

	s.mu.Lock()
	s.images[id] = img
	s.mu.Unlock()
	return nil
}

// Has reports whether id is stored.
func (s *ImageStore) Has(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.images[id]
	return ok
}

// Get returns the image stored under id.
func (s *ImageStore) Get(id uuid.UUID) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}

// Len returns the number of stored images.
func (s *ImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// formatError names the sniffed format of data that failed to decode.
type formatError struct {
	format string
	err    error
}

func (e *formatError) Error() string { return e.format + ": " + e.err.Error() }

func (e *formatError) Unwrap() error { return e.err }
