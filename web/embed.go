// Package web provides the embedded static assets for the site. Templates
// load HTMX from a CDN; the stylesheet is embedded here and served at
// /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS
