// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/image/font/gofont/gomono"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestImageStoreAdd(t *testing.T) {
	s := NewImageStore()
	tests := []struct {
		name string
		data []byte
	}{
		{"png", encodePNG(t, 3, 2)},
		{"jpeg", encodeJPEG(t)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			if err := s.Add(id, tt.data); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if !s.Has(id) {
				t.Error("Has() = false after Add")
			}
			if img, ok := s.Get(id); !ok || img.Bounds().Empty() {
				t.Errorf("Get() = %v, %v", img, ok)
			}
		})
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestImageStoreErrors(t *testing.T) {
	truncated := encodePNG(t, 8, 8)
	truncated = truncated[:len(truncated)/2]

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyData},
		{"not an image", []byte("hello, this is plain text"), ErrUnsupportedFormat},
		{"truncated png", truncated, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageStore()
			id := uuid.New()
			err := s.Add(id, tt.data)
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Add err = %v, want *DecodeError", err)
			}
			if de.Kind != "image" || de.Key != id.String() {
				t.Errorf("DecodeError = %+v", de)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if s.Has(id) {
				t.Error("failed decode stored an image")
			}
		})
	}
}

func TestFontStoreDefault(t *testing.T) {
	s, err := NewFontStore()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Has(DefaultFamily) {
		t.Fatalf("default family %q missing", DefaultFamily)
	}
	if f := s.Face("missing family", 12); f == nil {
		t.Error("Face() fallback returned nil")
	}
}

func TestFontStoreAddCaseInsensitive(t *testing.T) {
	s, err := NewFontStore()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Add("Source Code", gomono.TTF); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !s.Has("source code") || !s.Has("SOURCE CODE") {
		t.Error("family lookup is case sensitive")
	}
	f, ok := s.Get("source code")
	if !ok || f.Family != "Source Code" || f.Source == nil || f.Shaping == nil {
		t.Errorf("Get() = %+v, %v", f, ok)
	}
	got := s.Families()
	if len(got) != 2 || got[0] != "Source Code" || got[1] != DefaultFamily {
		t.Errorf("Families() = %v", got)
	}
}

func TestFontStoreErrors(t *testing.T) {
	s, err := NewFontStore()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not a font file")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Add("Broken", tt.data)
			var de *DecodeError
			if !errors.As(err, &de) || de.Kind != "font" || de.Key != "Broken" {
				t.Errorf("Add err = %v, want font *DecodeError", err)
			}
			if s.Has("broken") {
				t.Error("broken font registered")
			}
		})
	}
}
