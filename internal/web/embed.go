// Package web carries the embedded HTML templates and static assets so the
// binary serves its pages without an on-disk views directory.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed public/*
var publicFiles embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}

// PublicFS returns the embedded static assets rooted at the public folder.
func PublicFS() (fs.FS, error) {
	return fs.Sub(publicFiles, "public")
}
