// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the landing page and
// the poster studio. Full pages use the base layout; HTMX requests (detected
// via the HX-Request header) receive only the poster fragment.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"kogaine/internal/poster"
	"kogaine/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds everything the landing page template needs.
type PageData struct {
	Title   string
	Copy    *site.Copy
	Poster  PosterView
	Form    StudioForm
	Layouts []LayoutOption
}

// PosterView is a poster plus the request that produced it. RequestID is
// empty for the demonstration poster.
type PosterView struct {
	poster.Content
	RequestID string
}

// StudioForm echoes the submitted form back into a full-page render.
type StudioForm struct {
	BrandName string
	BrandType string
	Error     string
}

// LayoutOption is one radio button of the layout picker.
type LayoutOption struct {
	ID       poster.LayoutStyle
	Label    string
	Selected bool
}

// LayoutOptions lists every layout in display order, marking selected.
func LayoutOptions(selected poster.LayoutStyle) []LayoutOption {
	layouts := poster.Layouts()
	opts := make([]LayoutOption, 0, len(layouts))
	for _, l := range layouts {
		opts = append(opts, LayoutOption{ID: l, Label: l.Label(), Selected: l == selected})
	}
	return opts
}

// Renderer executes the embedded site templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses all embedded templates into a single set. When devMode is true
// the page loads the unminified htmx build.
func New(devMode bool) (*Renderer, error) {
	funcMap := template.FuncMap{
		"isDev": func() bool {
			return devMode
		},
		// lines joins display lines with <br>, escaping each one.
		"lines": func(parts []string) template.HTML {
			escaped := make([]string, len(parts))
			for i, p := range parts {
				escaped[i] = template.HTMLEscapeString(p)
			}
			return template.HTML(strings.Join(escaped, "<br>"))
		},
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			return s
		},
	}

	tmpl, err := template.New("site").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page renders the complete landing page.
func (rn *Renderer) Page(w io.Writer, data *PageData) error {
	return rn.tmpl.ExecuteTemplate(w, "base", data)
}

// Poster renders a single poster fragment.
func (rn *Renderer) Poster(w io.Writer, v PosterView) error {
	return rn.tmpl.ExecuteTemplate(w, "poster", v)
}

// StudioError renders the inline error shown in place of the poster.
func (rn *Renderer) StudioError(w io.Writer, msg string) error {
	return rn.tmpl.ExecuteTemplate(w, "studio-error", msg)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
