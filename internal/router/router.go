// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// foundry site and poster studio.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kogaine/internal/handlers"
	"kogaine/internal/middleware"
)

// New creates and returns the configured Chi router. limiter guards the
// generation route only; static is served under /static/.
func New(site *handlers.Site, limiter *middleware.RateLimiter, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. RequestID runs first so
	// the logger and recoverer can tag records with it.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(static)))

	r.Get("/", site.Home)

	r.Route("/studio", func(r chi.Router) {
		r.Get("/layouts", site.Layouts)
		r.With(limiter.Middleware).Post("/posters", site.GeneratePoster)
	})

	return r
}

// staticHandler serves embedded assets with a long-lived cache header.
func staticHandler(static fs.FS) http.Handler {
	files := http.FileServerFS(static)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
