// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import (
	"strings"

	"kogaine/internal/poster"
)

// Placeholder copy used when the backend cannot be used.
const (
	FallbackEstablishedDate = "ESTD 2024"
	FallbackTagline         = "QUALITY GOODS FOR QUALITY FOLKS"
	FallbackDescription     = "We provide the finest services in the region. Trusted by locals for over a century, our commitment to excellence is unwavering."
	DefaultLayout           = poster.LayoutTypography
)

// Fallback builds the deterministic poster for the given inputs. The layout
// is hint when it is a valid style, DefaultLayout otherwise.
func Fallback(brandName, brandType string, hint poster.LayoutStyle) poster.Content {
	layout := DefaultLayout
	if hint.Valid() {
		layout = hint
	}
	return poster.Content{
		Headline:        strings.ToUpper(brandName),
		Subhead:         strings.ToUpper(brandType),
		EstablishedDate: FallbackEstablishedDate,
		Tagline:         FallbackTagline,
		Description:     FallbackDescription,
		LayoutStyle:     layout,
	}
}
