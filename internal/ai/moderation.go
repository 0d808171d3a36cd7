// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ModerationResult contains the outcome of a brand input safety check.
type ModerationResult struct {
	Safe       bool     // true if the input passes moderation
	Categories []string // flagged category names, sorted (empty when safe)
}

// Moderator screens studio inputs before they are sent to a generator.
type Moderator interface {
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// errModerationAuth marks credential failures so the fallback moderator can
// switch to its secondary backend.
var errModerationAuth = errors.New("moderation: unauthorized")

// httpModerator talks to an OpenAI-style moderation endpoint. OpenAI and
// Mistral share the request shape and differ in path, model and whether a
// top-level "flagged" is reported.
type httpModerator struct {
	name   string
	apiKey string
	url    string
	model  string
	client *http.Client
}

// newOpenAIModerator uses OpenAI's free moderation API.
func newOpenAIModerator(apiKey, baseURL string) *httpModerator {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &httpModerator{
		name:   "openai",
		apiKey: apiKey,
		url:    baseURL + "/moderations",
		model:  "omni-moderation-latest",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// newMistralModerator uses Mistral's classification endpoint.
func newMistralModerator(apiKey, baseURL string) *httpModerator {
	if baseURL == "" {
		baseURL = "https://api.mistral.ai/v1"
	}
	return &httpModerator{
		name:   "mistral",
		apiKey: apiKey,
		url:    baseURL + "/moderations",
		model:  "mistral-moderation-latest",
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckSafety posts text to the moderation endpoint.
func (m *httpModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	payload, err := json.Marshal(moderationRequest{Model: m.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("%s moderation marshal: %w", m.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%s moderation request: %w", m.name, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s moderation http: %w", m.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s moderation read body: %w", m.name, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s (status %d)", errModerationAuth, m.name, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%s moderation API error (status %d): %s", m.name, resp.StatusCode, string(respBody))
	}

	var result moderationResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%s moderation unmarshal: %w", m.name, err)
	}

	if len(result.Results) == 0 {
		return &ModerationResult{Safe: true}, nil
	}

	var flagged []string
	for cat, isFlagged := range result.Results[0].Categories {
		if isFlagged {
			flagged = append(flagged, categoryLabel(cat))
		}
	}
	sort.Strings(flagged)

	return &ModerationResult{
		Safe:       len(flagged) == 0 && !result.Results[0].Flagged,
		Categories: flagged,
	}, nil
}

// categoryLabel converts "hate/threatening" into "hate (threatening)" and
// underscores into spaces.
func categoryLabel(cat string) string {
	display := strings.ReplaceAll(cat, "/", " (")
	if strings.Contains(cat, "/") {
		display += ")"
	}
	return strings.ReplaceAll(display, "_", " ")
}

// fallbackModerator tries primary and switches to secondary when the
// primary rejects its credentials (e.g. project-scoped OpenAI keys).
type fallbackModerator struct {
	primary   Moderator
	secondary Moderator
}

func newFallbackModerator(primary, secondary Moderator) *fallbackModerator {
	return &fallbackModerator{primary: primary, secondary: secondary}
}

func (f *fallbackModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	res, err := f.primary.CheckSafety(ctx, text)
	if errors.Is(err, errModerationAuth) {
		return f.secondary.CheckSafety(ctx, text)
	}
	return res, err
}

// --- Request/Response types ---

type moderationRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type moderationResponse struct {
	Results []moderationResult `json:"results"`
}

type moderationResult struct {
	Flagged    bool            `json:"flagged"`
	Categories map[string]bool `json:"categories"`
}
