// Package html renders resolved deed sections into a single self-contained
// HTML page suited for print and registration-office preview.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
	rendertemplate "github.com/Kongudocument-57316/document-creator-sub003/pkg/render/template"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate page template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads page templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full page. Every visible text node comes from the
// resolved sections so the output stays text-equivalent with the other
// render targets.
func (r *Renderer) Render(_ context.Context, doc render.ResolvedDocument, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	sections := make([]map[string]any, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		sections = append(sections, map[string]any{
			"id":        section.ID,
			"kind":      string(section.Kind),
			"title":     section.Title,
			"lines":     section.Lines,
			"pageBreak": section.PageBreak,
		})
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":      doc.Title,
		"lang":       options.Lang(),
		"font":       options.Font(),
		"fontURL":    options.FontURL,
		"themeStyle": themeStyle(options.Theme),
		"sections":   sections,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// themeStyle flattens the resolved CSS variables into a deterministic
// declaration list for the :root block.
func themeStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
