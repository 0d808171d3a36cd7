// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Kogaine site server and the
// poster generation CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"kogaine/internal/ai"
	"kogaine/internal/config"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "kogaine",
		Short: "Kogaine Type Foundry site and poster studio",
		Long:  "Serves the foundry landing page and generates brand identity posters with an LLM.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			// Logs go to stderr so the poster command can print clean JSON.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPosterCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRegistry builds the AI provider registry from every configured key.
func newRegistry(cfg *config.Config) *ai.Registry {
	registry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"gemini":  {APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, BaseURL: cfg.GeminiBaseURL},
		"openai":  {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIBaseURL},
		"claude":  {APIKey: cfg.ClaudeKey, Model: cfg.ClaudeModel, BaseURL: cfg.ClaudeBaseURL},
		"mistral": {APIKey: cfg.MistralKey, Model: cfg.MistralModel, BaseURL: cfg.MistralBaseURL},
		"groq":    {APIKey: cfg.GroqKey, Model: cfg.GroqModel},
	})

	slog.Info("ai providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)
	if len(registry.Available()) == 0 {
		slog.Warn("no ai provider configured, posters will use fallback copy")
	}
	return registry
}
