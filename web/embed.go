// Package web embeds the browser front end.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"svw.info/minesweeper/internal/domain"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

var templates = template.Must(template.ParseFS(Assets, "templates/*.tmpl"))

// Static serves the files under static/ with the given URL prefix stripped.
func Static(prefix string) http.Handler {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

// Index serves the single page, offering one button per preset. Any path
// other than "/" is a 404.
func Index(presets []domain.Preset) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, "index.tmpl", map[string]any{"Presets": presets}); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	})
}
