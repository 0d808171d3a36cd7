// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers for the foundry landing page
// and the poster studio.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"kogaine/internal/ai"
	"kogaine/internal/cache"
	"kogaine/internal/middleware"
	"kogaine/internal/poster"
	"kogaine/internal/render"
	"kogaine/internal/site"
)

// maxPosterBody caps studio request bodies.
const maxPosterBody = 16 << 10

const pageTitle = "Kogaine Type Foundry"

// PosterGenerator produces poster copy. It never fails; *generator.Service
// satisfies it.
type PosterGenerator interface {
	Generate(ctx context.Context, brandName, brandType string, hint poster.LayoutStyle) poster.Content
}

// InputChecker screens studio input before generation; *ai.Registry
// satisfies it.
type InputChecker interface {
	CheckInput(ctx context.Context, text string) (*ai.ModerationResult, error)
}

// Site groups the landing page and poster studio handlers. The rendered
// landing page is served from the Valkey page cache when one is configured.
type Site struct {
	renderer  *render.Renderer
	copy      *site.Copy
	generator PosterGenerator
	checker   InputChecker
	pageCache *cache.PageCache
}

// NewSite creates the Site handler group. checker and pageCache may be nil.
func NewSite(renderer *render.Renderer, siteCopy *site.Copy, gen PosterGenerator, checker InputChecker, pageCache *cache.PageCache) *Site {
	return &Site{
		renderer:  renderer,
		copy:      siteCopy,
		generator: gen,
		checker:   checker,
		pageCache: pageCache,
	}
}

// posterResponse is the JSON body returned by GeneratePoster.
type posterResponse struct {
	RequestID string         `json:"requestId"`
	Poster    poster.Content `json:"poster"`
}

// layoutInfo is one entry of the Layouts listing.
type layoutInfo struct {
	ID    poster.LayoutStyle `json:"id"`
	Label string             `json:"label"`
}

// Home renders the landing page with the demonstration poster.
func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := cache.LandingKey(s.copy.Version())

	if cached, ok := s.pageCache.Get(ctx, key); ok {
		writeHTML(w, http.StatusOK, cached)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, s.pageData(posterRequest{}, render.PosterView{Content: poster.Demo()}, "")); err != nil {
		slog.Error("render landing page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.pageCache.Set(ctx, key, buf.Bytes())
	writeHTML(w, http.StatusOK, buf.Bytes())
}

// GeneratePoster handles the studio form. It accepts a form post or a JSON
// body, screens the brand inputs, and always answers with a poster: the
// generator substitutes deterministic copy when the LLM call fails.
//
// HTMX requests get the poster fragment, JSON clients get
// {"requestId", "poster"}, and plain form posts get the full page.
func (s *Site) GeneratePoster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodePosterRequest(w, r)
	if err != nil {
		slog.Warn("decode poster request failed", "error", err)
		s.studioError(w, r, posterRequest{}, http.StatusBadRequest, "Could not read the studio form.")
		return
	}
	req.normalize()

	style, msg := validatePosterRequest(req)
	if msg != "" {
		s.studioError(w, r, req, http.StatusUnprocessableEntity, msg)
		return
	}

	if msg := s.checkInputSafety(ctx, req); msg != "" {
		s.studioError(w, r, req, http.StatusUnprocessableEntity, msg)
		return
	}

	content := s.generator.Generate(ctx, req.BrandName, req.BrandType, style)

	requestID := middleware.RequestIDFromCtx(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
		w.Header().Set(middleware.RequestIDHeader, requestID)
	}

	slog.Info("poster generated",
		"request_id", requestID,
		"brand", req.BrandName,
		"layout", content.LayoutStyle,
	)

	view := render.PosterView{Content: content, RequestID: requestID}

	switch {
	case wantsJSON(r):
		writeJSON(w, http.StatusOK, posterResponse{RequestID: requestID, Poster: content})
	case render.IsHTMX(r):
		var buf bytes.Buffer
		if err := s.renderer.Poster(&buf, view); err != nil {
			slog.Error("render poster fragment failed", "error", err, "request_id", requestID)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		writeHTML(w, http.StatusOK, buf.Bytes())
	default:
		s.writePage(w, http.StatusOK, s.pageData(req, view, ""))
	}
}

// Layouts lists the layout styles in display order.
func (s *Site) Layouts(w http.ResponseWriter, r *http.Request) {
	layouts := poster.Layouts()
	out := make([]layoutInfo, len(layouts))
	for i, l := range layouts {
		out[i] = layoutInfo{ID: l, Label: l.Label()}
	}
	writeJSON(w, http.StatusOK, out)
}

// checkInputSafety runs the brand inputs through moderation. It returns a
// user-facing message when the input is flagged, and "" otherwise. Moderation
// failures let the request through; providers have their own safety filters.
func (s *Site) checkInputSafety(ctx context.Context, req posterRequest) string {
	if s.checker == nil {
		return ""
	}

	result, err := s.checker.CheckInput(ctx, req.BrandName+"\n"+req.BrandType)
	if err != nil {
		slog.Warn("moderation check failed, allowing input", "error", err)
		return ""
	}
	if result.Safe {
		return ""
	}

	categories := strings.Join(result.Categories, ", ")
	slog.Warn("studio input flagged by moderation", "categories", categories)
	if categories == "" {
		return "Your brand details were flagged by moderation. Please try different wording."
	}
	return fmt.Sprintf("Your brand details were flagged for: %s. Please try different wording.", categories)
}

// studioError answers in the format the client asked for.
func (s *Site) studioError(w http.ResponseWriter, r *http.Request, req posterRequest, status int, msg string) {
	switch {
	case wantsJSON(r):
		writeJSON(w, status, map[string]string{"error": msg})
	case render.IsHTMX(r):
		var buf bytes.Buffer
		if err := s.renderer.StudioError(&buf, msg); err != nil {
			slog.Error("render studio error failed", "error", err)
			http.Error(w, msg, status)
			return
		}
		writeHTML(w, status, buf.Bytes())
	default:
		s.writePage(w, status, s.pageData(req, render.PosterView{Content: poster.Demo()}, msg))
	}
}

func (s *Site) pageData(req posterRequest, view render.PosterView, errMsg string) *render.PageData {
	selected := s.copy.Studio.DefaultStyle
	if l, err := poster.ParseLayoutStyle(req.LayoutStyle); err == nil {
		selected = l
	}
	return &render.PageData{
		Title:   pageTitle,
		Copy:    s.copy,
		Poster:  view,
		Form:    render.StudioForm{BrandName: req.BrandName, BrandType: req.BrandType, Error: errMsg},
		Layouts: render.LayoutOptions(selected),
	}
}

func (s *Site) writePage(w http.ResponseWriter, status int, data *render.PageData) {
	var buf bytes.Buffer
	if err := s.renderer.Page(&buf, data); err != nil {
		slog.Error("render page failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// decodePosterRequest reads a JSON body or a URL-encoded/multipart form.
func decodePosterRequest(w http.ResponseWriter, r *http.Request) (posterRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPosterBody)

	var req posterRequest
	if isJSONBody(r) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("decode json: %w", err)
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, fmt.Errorf("form too large: %w", err)
		}
		return req, fmt.Errorf("parse form: %w", err)
	}
	req.BrandName = r.PostFormValue("brandName")
	req.BrandType = r.PostFormValue("brandType")
	req.LayoutStyle = r.PostFormValue("layoutStyle")
	return req, nil
}

func isJSONBody(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}

// wantsJSON reports whether the client asked for a JSON response, either
// explicitly through Accept or implicitly by sending JSON.
func wantsJSON(r *http.Request) bool {
	if render.IsHTMX(r) {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") || isJSONBody(r)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
