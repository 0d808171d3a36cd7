// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"kogaine/internal/poster"
)

// Validation limits for studio form fields.
const (
	maxBrandNameLen = 80
	maxBrandTypeLen = 120
)

// posterRequest is the studio form, decoded from either a form post or a
// JSON body.
type posterRequest struct {
	BrandName   string `json:"brandName"`
	BrandType   string `json:"brandType"`
	LayoutStyle string `json:"layoutStyle"`
}

// normalize trims surrounding whitespace from every field.
func (p *posterRequest) normalize() {
	p.BrandName = strings.TrimSpace(p.BrandName)
	p.BrandType = strings.TrimSpace(p.BrandType)
	p.LayoutStyle = strings.TrimSpace(p.LayoutStyle)
}

// validatePosterRequest checks studio inputs and returns the parsed layout
// hint plus the first user-facing error found. An empty layout means no hint.
func validatePosterRequest(p posterRequest) (poster.LayoutStyle, string) {
	if p.BrandName == "" {
		return "", "Brand name is required."
	}
	if utf8.RuneCountInString(p.BrandName) > maxBrandNameLen {
		return "", "Brand name is too long (max 80 characters)."
	}
	if p.BrandType == "" {
		return "", "Industry / type is required."
	}
	if utf8.RuneCountInString(p.BrandType) > maxBrandTypeLen {
		return "", "Industry / type is too long (max 120 characters)."
	}
	if p.LayoutStyle == "" {
		return "", ""
	}
	style, err := poster.ParseLayoutStyle(p.LayoutStyle)
	if err != nil {
		return "", "Unknown layout style. Choose one of: " + strings.Join(poster.LayoutNames(), ", ") + "."
	}
	return style, ""
}
