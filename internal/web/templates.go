// Package web holds the embedded HTML templates for the admin screens.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded template set. Panics on a malformed
// template, which only a bad build can produce.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"add1": func(n int) int { return n + 1 },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}
