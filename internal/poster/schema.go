// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package poster

import "encoding/json"

// JSON field names of Content.
const (
	FieldHeadline        = "headline"
	FieldSubhead         = "subhead"
	FieldEstablishedDate = "establishedDate"
	FieldTagline         = "tagline"
	FieldDescription     = "description"
	FieldLayoutStyle     = "layoutStyle"
)

// FieldSpec describes one property of the poster schema.
type FieldSpec struct {
	Name        string
	Type        string // always "string"
	Description string
	Enum        []string // legal values; empty means free text
}

// ContentSchema is the declarative description of Content given to
// generative backends so they can constrain their output.
type ContentSchema struct {
	Fields []FieldSpec
}

// Schema returns the poster schema. Field order matches Content.
func Schema() ContentSchema {
	return ContentSchema{Fields: []FieldSpec{
		{
			Name:        FieldHeadline,
			Type:        "string",
			Description: "A short, punchy, vintage-style headline (1-3 words). All uppercase.",
		},
		{
			Name:        FieldSubhead,
			Type:        "string",
			Description: "A secondary line describing the business (e.g., 'AUTOMOTIVE REPAIR' or 'CLAY CERAMIC STUDIO').",
		},
		{
			Name:        FieldEstablishedDate,
			Type:        "string",
			Description: "A fictional founding year (e.g., 'ESTD 1927').",
		},
		{
			Name:        FieldTagline,
			Type:        "string",
			Description: "A short, catchy slogan (e.g., 'Solve it all with us!').",
		},
		{
			Name:        FieldDescription,
			Type:        "string",
			Description: "A short paragraph (20-30 words) of marketing copy in a vintage tone.",
		},
		{
			Name:        FieldLayoutStyle,
			Type:        "string",
			Description: "The best layout style for this type of business.",
			Enum:        LayoutNames(),
		},
	}}
}

// Required returns the names of all required fields. Every field is required.
func (s ContentSchema) Required() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// JSONSchema renders the schema as a JSON Schema object, for backends that
// accept one directly or need it spelled out in the prompt.
func (s ContentSchema) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		prop := map[string]any{
			"type":        f.Type,
			"description": f.Description,
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		props[f.Name] = prop
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             s.Required(),
		"additionalProperties": false,
	}
}

// String returns the JSON Schema as indented JSON.
func (s ContentSchema) String() string {
	b, err := json.MarshalIndent(s.JSONSchema(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
