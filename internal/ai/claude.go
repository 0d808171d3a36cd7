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
	"strings"
	"time"

	"kogaine/internal/poster"
)

const (
	claudeDefaultBaseURL = "https://api.anthropic.com"
	claudeDefaultModel   = "claude-sonnet-4-5"
	claudeAPIVersion     = "2023-06-01"

	// Poster copy is six short strings; 1024 tokens leaves ample room.
	claudeMaxTokens = 1024

	// claudeMaxResponse caps how much of a response body is read.
	claudeMaxResponse = 1 << 20
)

// errClaudeTruncated means the model hit max_tokens mid-poster.
var errClaudeTruncated = errors.New("claude: response truncated at max_tokens")

// claudeProvider talks to the Anthropic Messages API. Messages has no
// response schema option, so the poster schema travels in the system prompt.
type claudeProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func newClaude(cfg ProviderConfig) *claudeProvider {
	base := cfg.BaseURL
	if base == "" {
		base = claudeDefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = claudeDefaultModel
	}
	return &claudeProvider{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: strings.TrimRight(base, "/") + "/v1/messages",
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *claudeProvider) Name() string { return "claude" }

// Submit asks for one poster and returns the concatenated text blocks.
func (p *claudeProvider) Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error) {
	payload, err := json.Marshal(claudeRequest{
		Model:     p.model,
		MaxTokens: claudeMaxTokens,
		System:    systemPrompt(schema),
		Messages:  []claudeMessage{{Role: "user", Content: instruction}},
	})
	if err != nil {
		return "", fmt.Errorf("claude encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("claude build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude http: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, claudeMaxResponse))
	if err != nil {
		return "", fmt.Errorf("claude read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, claudeErrorMessage(raw))
	}

	var out claudeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("claude decode response: %w", err)
	}
	if out.StopReason == "max_tokens" {
		return "", errClaudeTruncated
	}
	return out.text()
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content    []claudeContentBlock `json:"content"`
	StopReason string               `json:"stop_reason,omitempty"`
}

// text joins every text block; the model occasionally splits JSON across two.
func (r claudeResponse) text() (string, error) {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("claude: no text content in response")
	}
	return b.String(), nil
}

// claudeErrorMessage pulls the message out of Anthropic's error envelope,
// falling back to the raw body.
func claudeErrorMessage(body []byte) string {
	var env struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Message == "" {
		return string(body)
	}
	return env.Error.Type + ": " + env.Error.Message
}
