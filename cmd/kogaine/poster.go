// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"kogaine/internal/config"
	"kogaine/internal/generator"
	"kogaine/internal/poster"
)

func newPosterCmd() *cobra.Command {
	var (
		name    string
		kind    string
		style   string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Generate one poster and print it as JSON",
		Example: `  kogaine poster --name "Rusty Anchor" --type "Seafood restaurant"
  kogaine poster --name Flux --type "Electric bikes" --style art-deco`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name = strings.TrimSpace(name)
			kind = strings.TrimSpace(kind)
			if name == "" || kind == "" {
				return fmt.Errorf("--name and --type must not be blank")
			}

			var hint poster.LayoutStyle
			if style != "" {
				l, err := poster.ParseLayoutStyle(style)
				if err != nil {
					return fmt.Errorf("--style: %w (choose one of %s)", err, strings.Join(poster.LayoutNames(), ", "))
				}
				hint = l
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			content := generator.New(newRegistry(cfg)).Generate(ctx, name, kind, hint)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(content)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "brand name (required)")
	cmd.Flags().StringVar(&kind, "type", "", "industry or brand type (required)")
	cmd.Flags().StringVar(&style, "style", "", "layout style hint")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "generation deadline")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
