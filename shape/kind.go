// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import (
	"fmt"
	"strings"
)

// Kind is the geometry type of a shape.
type Kind uint8

const (
	KindRect Kind = iota
	KindCircle
	KindPath
	KindGroup
	KindFrame
	KindSVGRaw
	KindImage
)

var kindNames = [...]string{
	KindRect:   "rect",
	KindCircle: "circle",
	KindPath:   "path",
	KindGroup:  "group",
	KindFrame:  "frame",
	KindSVGRaw: "svg-raw",
	KindImage:  "image",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsRecursive reports whether shapes of this kind render children.
func (k Kind) IsRecursive() bool {
	return k == KindGroup || k == KindFrame
}

// ParseKind parses the lowercase name of a kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("shape: unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
