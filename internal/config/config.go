// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables, optionally seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset or empty.
const (
	DefaultAIProvider        = "gemini"
	DefaultPageCacheTTL      = 5 * time.Minute
	DefaultGenerateRateLimit = 10
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Valkey (Redis-compatible cache). An empty host disables the page cache.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// AI provider settings
	AIProvider string // "gemini", "openai", "claude", "mistral", "groq"

	GeminiKey     string
	GeminiModel   string
	GeminiBaseURL string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string

	ClaudeKey     string
	ClaudeModel   string
	ClaudeBaseURL string

	MistralKey     string
	MistralModel   string
	MistralBaseURL string

	GroqKey   string
	GroqModel string

	// Studio
	PageCacheTTL      time.Duration
	GenerateRateLimit int // requests per minute per client IP

	// TrustedProxies may set X-Forwarded-For / X-Real-IP for rate limiting.
	TrustedProxies []netip.Prefix
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on environment variables")
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		AIProvider: envOrDefault("AI_PROVIDER", DefaultAIProvider),

		GeminiKey:     envOrDefault("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envOrDefault("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		ClaudeKey:     os.Getenv("CLAUDE_API_KEY"),
		ClaudeModel:   envOrDefault("CLAUDE_MODEL", "claude-sonnet-4-5"),
		ClaudeBaseURL: os.Getenv("CLAUDE_BASE_URL"),

		MistralKey:     os.Getenv("MISTRAL_API_KEY"),
		MistralModel:   envOrDefault("MISTRAL_MODEL", "mistral-large-latest"),
		MistralBaseURL: os.Getenv("MISTRAL_BASE_URL"),

		GroqKey:   os.Getenv("GROQ_API_KEY"),
		GroqModel: os.Getenv("GROQ_MODEL"),

		PageCacheTTL:      DefaultPageCacheTTL,
		GenerateRateLimit: DefaultGenerateRateLimit,
	}

	if v := os.Getenv("PAGE_CACHE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse PAGE_CACHE_TTL: %w", err)
		}
		cfg.PageCacheTTL = ttl
	}

	if v := os.Getenv("GENERATE_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse GENERATE_RATE_LIMIT: %w", err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("GENERATE_RATE_LIMIT must be positive, got %d", n)
		}
		cfg.GenerateRateLimit = n
	}

	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		proxies, err := parseProxies(v)
		if err != nil {
			return nil, fmt.Errorf("parse TRUSTED_PROXIES: %w", err)
		}
		cfg.TrustedProxies = proxies
	}

	if cfg.Env == "production" && !cfg.HasAnyKey() {
		slog.Warn("no AI provider key configured, posters will use fallback copy")
	}

	return cfg, nil
}

// ActiveKey returns the API key configured for the active provider.
func (c *Config) ActiveKey() string {
	switch c.AIProvider {
	case "gemini":
		return c.GeminiKey
	case "openai":
		return c.OpenAIKey
	case "claude":
		return c.ClaudeKey
	case "mistral":
		return c.MistralKey
	case "groq":
		return c.GroqKey
	}
	return ""
}

// HasAnyKey reports whether at least one provider has an API key. The
// registry switches to a keyed provider when AIProvider has none.
func (c *Config) HasAnyKey() bool {
	return c.GeminiKey != "" || c.OpenAIKey != "" || c.ClaudeKey != "" ||
		c.MistralKey != "" || c.GroqKey != ""
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host was configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseProxies reads a comma-separated list of CIDRs or bare addresses.
func parseProxies(v string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.Contains(part, "/") {
			p, err := netip.ParsePrefix(part)
			if err != nil {
				return nil, err
			}
			out = append(out, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(part)
		if err != nil {
			return nil, err
		}
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}
