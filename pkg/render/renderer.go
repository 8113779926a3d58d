// Package render defines the renderer-facing contracts of the pipeline: the
// Renderer interface, the registry renderers are looked up from, and the
// per-request options. Every renderer consumes the same resolved section
// list from pkg/prose, which is what keeps the output targets in lock-step.
package render

import (
	"context"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/prose"
)

// Renderer converts resolved prose sections into a byte representation
// (HTML, a serialized paragraph tree, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc ResolvedDocument, options RenderOptions) ([]byte, error)
}

// ResolvedDocument is the render input: the document title plus the resolved
// sections in display order. It carries no unresolved template state.
type ResolvedDocument struct {
	Title    string
	Sections []prose.ResolvedSection
}

// PlainText returns the visible text content of the document: the contract
// every render target must reproduce exactly.
func (d ResolvedDocument) PlainText() string {
	return prose.PlainText(d.Sections)
}
