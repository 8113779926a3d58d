package doctree

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
)

type Renderer struct{}

// New constructs the paragraph tree renderer. It has no configuration: the
// tree shape is fully determined by the resolved sections.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "doctree"
}

func (r *Renderer) ContentType() string {
	return "application/json; charset=utf-8"
}

// Render serializes the paragraph tree as indented JSON. Use Build when the
// caller wants the tree itself rather than bytes.
func (r *Renderer) Render(_ context.Context, doc render.ResolvedDocument, options render.RenderOptions) ([]byte, error) {
	tree := Build(doc, options)
	payload, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("doctree renderer: marshal tree: %w", err)
	}
	return payload, nil
}

// Build converts resolved sections into the paragraph tree. A section
// requesting a page break contributes a pageBreak node before its first
// paragraph; section titles become heading nodes.
func Build(doc render.ResolvedDocument, options render.RenderOptions) *Tree {
	tree := &Tree{
		Title:      doc.Title,
		FontFamily: options.Font(),
		Sections:   make([]*SectionNode, 0, len(doc.Sections)),
	}
	for _, section := range doc.Sections {
		node := &SectionNode{
			ID:   section.ID,
			Kind: string(section.Kind),
		}
		if section.PageBreak {
			node.Nodes = append(node.Nodes, &Node{Kind: NodePageBreak})
		}
		if section.Title != "" {
			node.Nodes = append(node.Nodes, &Node{Kind: NodeHeading, Text: section.Title})
		}
		for _, line := range section.Lines {
			node.Nodes = append(node.Nodes, &Node{Kind: NodeParagraph, Text: line})
		}
		tree.Sections = append(tree.Sections, node)
	}
	return tree
}
