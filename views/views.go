// Package views holds the embedded page templates shared by the form
// handlers and the live socket.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"contentguard/gauge"
	"contentguard/models"
	"contentguard/services"
)

const PageTemplate = "page"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page is the data rendered by PageTemplate.
type Page struct {
	State services.State
}

var funcs = template.FuncMap{
	"gauge":  gauge.New,
	"radius": func() float64 { return gauge.Radius },
}

// Load parses every embedded template.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// RenderReport renders only the report panels, for pushing over the live socket.
func RenderReport(tmpl *template.Template, report *models.AnalysisReport) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "report", report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
