// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package poster defines the content contract shared by the poster generator
// and the studio templates: the Content value, the closed set of layout
// styles, and the declarative schema handed to generative backends.
package poster

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is returned by Validate when a required field is blank.
var ErrMissingField = errors.New("poster: missing required field")

// Content is the copy rendered onto a studio poster. Every field is required.
type Content struct {
	Headline        string      `json:"headline"`
	Subhead         string      `json:"subhead"`
	EstablishedDate string      `json:"establishedDate"`
	Tagline         string      `json:"tagline"`
	Description     string      `json:"description"`
	LayoutStyle     LayoutStyle `json:"layoutStyle"`
}

// Validate returns an error wrapping ErrMissingField or ErrUnknownLayout for
// the first field that breaks the contract, or nil.
func (c Content) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{FieldHeadline, c.Headline},
		{FieldSubhead, c.Subhead},
		{FieldEstablishedDate, c.EstablishedDate},
		{FieldTagline, c.Tagline},
		{FieldDescription, c.Description},
		{FieldLayoutStyle, string(c.LayoutStyle)},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if !c.LayoutStyle.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, string(c.LayoutStyle))
	}
	return nil
}

// Demo returns the poster shown in the studio before any generation request.
func Demo() Content {
	return Content{
		Headline:        "IRON CLAD",
		Subhead:         "HEAVY INDUSTRIES",
		EstablishedDate: "ESTD 1904",
		Tagline:         "Forged in Fire.",
		Description:     "Providing the nation with structural steel and unwavering strength. Quality you can trust.",
		LayoutStyle:     LayoutAutomotive,
	}
}
