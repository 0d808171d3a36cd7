// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"kogaine/internal/poster"
)

// noProviders blanks every provider key so generation takes the fallback path.
func noProviders(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "CLAUDE_API_KEY",
		"MISTRAL_API_KEY", "GROQ_API_KEY", "PAGE_CACHE_TTL", "GENERATE_RATE_LIMIT",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "development")
}

func runPoster(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newPosterCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPosterCommandFallback(t *testing.T) {
	noProviders(t)

	out, err := runPoster(t, "--name", "Rusty Anchor", "--type", "Seafood", "--style", "retro")
	if err != nil {
		t.Fatalf("poster command: %v", err)
	}

	var got poster.Content
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not poster JSON: %v\n%s", err, out)
	}
	if got.Headline != "RUSTY ANCHOR" {
		t.Errorf("Headline = %q, want RUSTY ANCHOR", got.Headline)
	}
	if got.LayoutStyle != poster.LayoutRetro {
		t.Errorf("LayoutStyle = %q, want retro", got.LayoutStyle)
	}
	if !strings.Contains(out, "\n  \"headline\"") {
		t.Error("output should be indented")
	}
}

func TestPosterCommandRejectsBadInput(t *testing.T) {
	noProviders(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing type", []string{"--name", "Flux"}},
		{"blank name", []string{"--name", "  ", "--type", "Bikes"}},
		{"unknown style", []string{"--name", "Flux", "--type", "Bikes", "--style", "baroque"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runPoster(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
