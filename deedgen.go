// Package deedgen generates Tamil registration documents (sale deeds,
// agreements, mortgages, settlements and partition releases) from structured
// form input. The root package re-exports the orchestrator entry points so
// most callers never need to import the pipeline packages directly.
package deedgen

import (
	"context"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/orchestrator"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
)

// RawForm is the untyped form submission accepted by the pipeline.
type RawForm = deed.RawForm

// Document is the structured deed model built from a form.
type Document = deed.Document

// DocumentType selects one of the supported deed templates.
type DocumentType = deed.DocumentType

// Request describes one generation run.
type Request = orchestrator.Request

// RenderOptions carries per-request render instructions such as font
// selection or theme variables.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to reuse one configured pipeline.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML validates the form, builds the document and renders the
// self-contained HTML page. It is the simplest entry point.
func GenerateHTML(ctx context.Context, docType DocumentType, form RawForm, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		DocumentType: docType,
		Form:         form,
	})
}

// GenerateTree renders the word-processor paragraph tree as JSON for editor
// integrations.
func GenerateTree(ctx context.Context, docType DocumentType, form RawForm, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		DocumentType: docType,
		Form:         form,
		Renderer:     "doctree",
	})
}

// GenerateFromDocument renders an already-built document with the named
// renderer, bypassing validation and form building.
func GenerateFromDocument(ctx context.Context, doc Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		DocumentType: doc.Type,
		Document:     &doc,
		Renderer:     rendererName,
	})
}
