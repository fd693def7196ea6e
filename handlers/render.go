// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/crowdcheck/templates"
)

var tmpl = template.Must(template.ParseFS(templates.FS, "*.html"))

// render executes a page template. Execution errors are logged rather
// than surfaced: by the time execution fails, part of the page may
// already be written.
func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}
