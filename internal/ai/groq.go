// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"

	"github.com/conneroisu/groq-go"

	"kogaine/internal/poster"
)

const defaultGroqModel = "llama-3.3-70b-versatile"

// groqProvider implements the Provider interface with the groq-go client in
// JSON object mode.
type groqProvider struct {
	client *groq.Client
	model  groq.ChatModel
}

// newGroq creates a new Groq provider. BaseURL is not supported.
func newGroq(cfg ProviderConfig) (*groqProvider, error) {
	client, err := groq.NewClient(cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultGroqModel
	}

	return &groqProvider{
		client: client,
		model:  groq.ChatModel(model),
	}, nil
}

func (p *groqProvider) Name() string { return "groq" }

// Submit sends a chat completion request in JSON object mode.
func (p *groqProvider) Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error) {
	resp, err := p.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model: p.model,
		Messages: []groq.ChatCompletionMessage{
			{Role: groq.RoleSystem, Content: systemPrompt(schema)},
			{Role: groq.RoleUser, Content: instruction},
		},
		ResponseFormat: &groq.ChatResponseFormat{
			Type: "json_object",
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq: no choices returned")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("groq: empty response")
	}
	return content, nil
}
