// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kogaine/internal/cache"
	"kogaine/internal/config"
	"kogaine/internal/generator"
	"kogaine/internal/handlers"
	"kogaine/internal/middleware"
	"kogaine/internal/render"
	"kogaine/internal/router"
	"kogaine/internal/site"
	"kogaine/web"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"page_cache", cfg.CacheEnabled(),
	)

	// Valkey is optional; without it every landing page render is fresh.
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return fmt.Errorf("connect valkey: %w", err)
	}
	if valkeyClient != nil {
		defer valkeyClient.Close()
	}

	pageCache := cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	pageCache.InvalidateAll(ctx)

	siteCopy, err := site.Default()
	if err != nil {
		return fmt.Errorf("load site copy: %w", err)
	}

	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		return fmt.Errorf("initialize template renderer: %w", err)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("open static assets: %w", err)
	}

	registry := newRegistry(cfg)
	gen := generator.New(registry)

	siteHandlers := handlers.NewSite(renderer, siteCopy, gen, registry, pageCache)

	limiter := middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
	limiter.TrustProxies(cfg.TrustedProxies...)
	defer limiter.Stop()

	r := router.New(siteHandlers, limiter, static)

	// WriteTimeout must cover the LLM round trip on POST /studio/posters.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
