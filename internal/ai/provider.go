// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides the text-generation backends behind the poster studio
// (Gemini, OpenAI, Claude, Mistral, Groq). Each provider implements the
// Provider interface and returns JSON constrained to the poster schema; the
// Registry selects the active one by name.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"kogaine/internal/poster"
)

// Provider defines the interface that all AI providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Submit sends the instruction to the LLM, asking for a single JSON object
	// that satisfies schema, and returns the raw JSON text.
	Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error)

	// Name returns the provider identifier (e.g., "openai", "gemini").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Registry manages available AI providers and selects the active one.
// It implements generator.Submitter by delegating to the active provider.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
	moderator Moderator // nil when no moderation API is available
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped;
// providers whose client cannot be built are skipped with a warning.
// A Moderator is configured from the OpenAI key (free endpoint), falling back
// to Mistral's when OpenAI rejects the key.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			p, err := newGemini(cfg)
			if err != nil {
				slog.Warn("gemini provider disabled", "error", err)
				continue
			}
			r.providers[name] = p
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		case "groq":
			p, err := newGroq(cfg)
			if err != nil {
				slog.Warn("groq provider disabled", "error", err)
				continue
			}
			r.providers[name] = p
		}
	}

	r.resolveActive()

	openaiCfg := configs["openai"]
	mistralCfg := configs["mistral"]
	switch {
	case openaiCfg.APIKey != "" && mistralCfg.APIKey != "":
		r.moderator = newFallbackModerator(
			newOpenAIModerator(openaiCfg.APIKey, openaiCfg.BaseURL),
			newMistralModerator(mistralCfg.APIKey, mistralCfg.BaseURL),
		)
	case openaiCfg.APIKey != "":
		r.moderator = newOpenAIModerator(openaiCfg.APIKey, openaiCfg.BaseURL)
	case mistralCfg.APIKey != "":
		r.moderator = newMistralModerator(mistralCfg.APIKey, mistralCfg.BaseURL)
	}

	return r
}

// providerPreference orders the built-in providers for resolveActive.
var providerPreference = []string{"gemini", "openai", "claude", "mistral", "groq"}

// resolveActive switches to the first configured provider in preference
// order when the requested one has no key. With no providers at all the
// requested name is kept and Submit reports the error.
func (r *Registry) resolveActive() {
	if _, ok := r.providers[r.active]; ok || len(r.providers) == 0 {
		return
	}
	for _, name := range providerPreference {
		if _, ok := r.providers[name]; ok {
			slog.Warn("configured ai provider has no key, switching",
				"configured", r.active,
				"active", name,
			)
			r.active = name
			return
		}
	}
}

// Submit calls the active provider's Submit method.
func (r *Registry) Submit(ctx context.Context, instruction string, schema poster.ContentSchema) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Submit(ctx, instruction, schema)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the sorted names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider in the registry.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// CheckInput runs studio input through the moderation API. When no
// moderator is configured every input is reported safe.
func (r *Registry) CheckInput(ctx context.Context, text string) (*ModerationResult, error) {
	if r.moderator == nil {
		return &ModerationResult{Safe: true}, nil
	}
	return r.moderator.CheckSafety(ctx, text)
}

// systemPrompt is shared by providers that cannot enforce a response schema
// natively; it spells the schema out and forbids anything but JSON.
func systemPrompt(schema poster.ContentSchema) string {
	return fmt.Sprintf(`You write copy for vintage typographic posters at a type foundry.

Rules:
- Respond with exactly one JSON object and nothing else.
- Do NOT wrap the output in code fences.
- The object must match this JSON Schema; every property is required:

%s`, schema.String())
}
