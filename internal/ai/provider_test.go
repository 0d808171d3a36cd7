// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"kogaine/internal/poster"
)

// TestProvidersLive submits a real poster instruction to every provider whose
// key is present in the environment. Providers without a key are skipped.
func TestProvidersLive(t *testing.T) {
	cases := []struct {
		name     string
		keyEnv   string
		modelEnv string
	}{
		{"gemini", "GEMINI_API_KEY", "GEMINI_MODEL"},
		{"openai", "OPENAI_API_KEY", "OPENAI_MODEL"},
		{"claude", "CLAUDE_API_KEY", "CLAUDE_MODEL"},
		{"mistral", "MISTRAL_API_KEY", "MISTRAL_MODEL"},
		{"groq", "GROQ_API_KEY", "GROQ_MODEL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key := os.Getenv(tc.keyEnv)
			if key == "" {
				t.Skipf("%s not set", tc.keyEnv)
			}

			reg := NewRegistry(tc.name, map[string]ProviderConfig{
				tc.name: {APIKey: key, Model: os.Getenv(tc.modelEnv)},
			})

			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			raw, err := reg.Submit(ctx, "Create a vintage poster for a bakery named Rusty Anchor.", poster.Schema())
			if err != nil {
				t.Fatalf("Submit failed: %v", err)
			}

			var c poster.Content
			if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &c); err != nil {
				t.Fatalf("response is not poster JSON: %v\n%s", err, raw)
			}
			t.Logf("%s response: %+v", tc.name, c)
		})
	}
}

func TestSystemPromptEmbedsSchema(t *testing.T) {
	got := systemPrompt(poster.Schema())

	for _, want := range []string{
		"exactly one JSON object",
		`"additionalProperties": false`,
		`"layoutStyle"`,
		`"art-deco"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
