// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator turns a brand name and type into poster copy. It asks an
// external text-generation backend for content matching poster.Schema and,
// when that fails for any reason, synthesizes a deterministic fallback so
// callers always receive a valid poster.Content.
package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kogaine/internal/poster"
)

// ErrEmptyPayload is returned internally when the backend answers with no text.
var ErrEmptyPayload = errors.New("generator: empty payload")

// errNoSubmitter marks a service built without a backend (no credentials).
var errNoSubmitter = errors.New("generator: no backend configured")

// Submitter is the narrow view of a text-generation backend. Implementations
// must return output constrained to schema, as raw JSON text.
type Submitter interface {
	Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error)
}

// rawPoster is the backend payload as sent. layoutStyle stays a plain
// string so a hint can replace it before it is checked.
type rawPoster struct {
	Headline        string `json:"headline"`
	Subhead         string `json:"subhead"`
	EstablishedDate string `json:"establishedDate"`
	Tagline         string `json:"tagline"`
	Description     string `json:"description"`
	LayoutStyle     string `json:"layoutStyle"`
}

// Failure categories recorded in the diagnostic log.
const (
	failureTransport = "transport"
	failureEmpty     = "empty"
	failureMalformed = "malformed"
	failureSchema    = "schema"
)

// Service generates poster content. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	backend Submitter
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for the failure diagnostic.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New creates a Service. backend may be nil, in which case every call
// returns the fallback.
func New(backend Submitter, opts ...Option) *Service {
	s := &Service{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns poster copy for the brand. It never fails: any backend
// error, empty or malformed payload yields Fallback(brandName, brandType, hint).
// A non-empty hint pins the returned layout style; a hint outside the
// enumeration is ignored.
func (s *Service) Generate(ctx context.Context, brandName, brandType string, hint poster.LayoutStyle) poster.Content {
	if hint != "" && !hint.Valid() {
		s.logger.Warn("ignoring unknown layout hint", "hint", string(hint))
		hint = ""
	}

	content, category, err := s.generate(ctx, brandName, brandType, hint)
	if err != nil {
		s.logger.Error("poster generation failed, using fallback",
			"error", err,
			"category", category,
			"brand", brandName,
		)
		return Fallback(brandName, brandType, hint)
	}
	return content
}

// generate runs the primary path and reports which failure category applies.
func (s *Service) generate(ctx context.Context, brandName, brandType string, hint poster.LayoutStyle) (poster.Content, string, error) {
	if s.backend == nil {
		return poster.Content{}, failureTransport, errNoSubmitter
	}

	raw, err := s.backend.Submit(ctx, BuildInstruction(brandName, brandType, hint), poster.Schema())
	if err != nil {
		return poster.Content{}, failureTransport, fmt.Errorf("submit: %w", err)
	}

	payload := extractJSON(raw)
	if payload == "" {
		return poster.Content{}, failureEmpty, ErrEmptyPayload
	}

	var wire rawPoster
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return poster.Content{}, failureMalformed, fmt.Errorf("decode payload: %w", err)
	}

	content := poster.Content{
		Headline:        wire.Headline,
		Subhead:         wire.Subhead,
		EstablishedDate: wire.EstablishedDate,
		Tagline:         wire.Tagline,
		Description:     wire.Description,
	}

	// A hint wins over whatever layout the backend picked, valid or not.
	switch {
	case hint != "":
		content.LayoutStyle = hint
	case wire.LayoutStyle != "":
		layout, err := poster.ParseLayoutStyle(wire.LayoutStyle)
		if err != nil {
			return poster.Content{}, failureSchema, fmt.Errorf("decode payload: %w", err)
		}
		content.LayoutStyle = layout
	}

	if err := content.Validate(); err != nil {
		return poster.Content{}, failureSchema, err
	}
	return content, "", nil
}

// extractJSON strips surrounding whitespace and Markdown code fences that
// some models wrap around JSON output.
func extractJSON(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```") {
		if firstNewline := strings.Index(response, "\n"); firstNewline != -1 {
			response = response[firstNewline+1:]
		} else {
			response = strings.TrimPrefix(response, "```")
		}
		if idx := strings.LastIndex(response, "```"); idx != -1 {
			response = response[:idx]
		}
	}

	return strings.TrimSpace(response)
}
