// Package web holds the public site's templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Funcs is the helper set available to every page template.
var Funcs = template.FuncMap{
	"year":       func() int { return time.Now().Year() },
	"paragraphs": Paragraphs,
	"join":       strings.Join,
}

// Templates parses every embedded page. Pages are addressed by file name,
// e.g. "home.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html")
}

// Static serves the stylesheet and other assets under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Paragraphs splits free text on blank lines, dropping empty blocks.
func Paragraphs(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, block := range strings.Split(s, "\n\n") {
		if b := strings.TrimSpace(block); b != "" {
			out = append(out, b)
		}
	}
	return out
}
