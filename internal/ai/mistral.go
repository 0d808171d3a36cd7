// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"net/http"
	"time"

	"kogaine/internal/poster"
)

// mistralProvider implements the Provider interface using Mistral's
// chat completions API, which is OpenAI-compatible. Mistral only offers a
// generic JSON mode, so the schema travels in the system prompt.
type mistralProvider struct {
	inner *openAIProvider
}

// newMistral creates a new Mistral provider.
func newMistral(cfg ProviderConfig) *mistralProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mistral.ai/v1"
	}
	return &mistralProvider{
		inner: &openAIProvider{
			config: cfg,
			client: &http.Client{Timeout: 60 * time.Second},
		},
	}
}

func (p *mistralProvider) Name() string { return "mistral" }

// Submit sends a chat completion request in JSON mode.
func (p *mistralProvider) Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error) {
	body := openAIRequest{
		Model: p.inner.config.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt(schema)},
			{Role: "user", Content: instruction},
		},
		ResponseFormat: &openAIResponseFormat{Type: "json_object"},
	}

	return p.inner.doChat(ctx, body)
}
