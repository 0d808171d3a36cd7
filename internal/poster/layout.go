// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package poster

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned when a string is not one of the five layouts.
var ErrUnknownLayout = errors.New("poster: unknown layout style")

// LayoutStyle selects which of the five studio templates renders a poster.
// The zero value means "no layout chosen" and is never valid on a Content.
type LayoutStyle string

const (
	LayoutAutomotive LayoutStyle = "automotive"
	LayoutMinimal    LayoutStyle = "minimal"
	LayoutTypography LayoutStyle = "typography"
	LayoutRetro      LayoutStyle = "retro"
	LayoutArtDeco    LayoutStyle = "art-deco"
)

// layouts is the closed enumeration in display order.
var layouts = []LayoutStyle{
	LayoutAutomotive,
	LayoutMinimal,
	LayoutTypography,
	LayoutRetro,
	LayoutArtDeco,
}

var layoutLabels = map[LayoutStyle]string{
	LayoutAutomotive: "Automotive",
	LayoutMinimal:    "Minimal",
	LayoutTypography: "Typography",
	LayoutRetro:      "Retro",
	LayoutArtDeco:    "Art Deco",
}

// Layouts returns every layout style in display order. The slice is a copy.
func Layouts() []LayoutStyle {
	out := make([]LayoutStyle, len(layouts))
	copy(out, layouts)
	return out
}

// LayoutNames returns the layout identifiers as plain strings, in display order.
func LayoutNames() []string {
	out := make([]string, len(layouts))
	for i, l := range layouts {
		out[i] = string(l)
	}
	return out
}

// ParseLayoutStyle converts s into a LayoutStyle, rejecting anything outside
// the enumeration. Matching is exact.
func ParseLayoutStyle(s string) (LayoutStyle, error) {
	l := LayoutStyle(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
	}
	return l, nil
}

// Valid reports whether l is one of the five layouts.
func (l LayoutStyle) Valid() bool {
	_, ok := layoutLabels[l]
	return ok
}

// Label returns the human-readable name, or the raw value for unknown layouts.
func (l LayoutStyle) Label() string {
	if label, ok := layoutLabels[l]; ok {
		return label
	}
	return string(l)
}

func (l LayoutStyle) String() string { return string(l) }

// UnmarshalText makes JSON decoding reject layouts outside the enumeration.
func (l *LayoutStyle) UnmarshalText(text []byte) error {
	parsed, err := ParseLayoutStyle(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (l LayoutStyle) MarshalText() ([]byte, error) {
	return []byte(l), nil
}
