// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"kogaine/internal/poster"
)

const defaultGeminiModel = "gemini-2.5-flash"

// geminiProvider implements the Provider interface using the Google GenAI
// SDK. The poster schema is passed as a native response schema, so the API
// itself guarantees JSON output of the right shape.
type geminiProvider struct {
	config ProviderConfig
	client *genai.Client
}

// newGemini creates a new Google Gemini provider.
func newGemini(cfg ProviderConfig) (*geminiProvider, error) {
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &geminiProvider{config: cfg, client: client}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

// Submit sends a generateContent request constrained to schema.
func (p *geminiProvider) Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, genai.Text(instruction), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiSchema(schema),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return text, nil
}

// geminiSchema converts the poster schema into the SDK's schema type.
func geminiSchema(schema poster.ContentSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(schema.Fields))
	order := make([]string, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: f.Description,
			Enum:        f.Enum,
		}
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         schema.Required(),
		PropertyOrdering: order,
	}
}
