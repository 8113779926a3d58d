// Package doctree renders resolved deed sections into a word-processor
// paragraph tree: a flat, ordered list of typed nodes a downstream editor
// integration can walk without re-parsing markup.
package doctree

import "strings"

// NodeKind classifies a paragraph tree node.
type NodeKind string

const (
	NodeHeading   NodeKind = "heading"
	NodeParagraph NodeKind = "paragraph"
	NodePageBreak NodeKind = "pageBreak"
)

// Node is one entry in a section's paragraph list. Page breaks carry no
// text; headings and paragraphs always do.
type Node struct {
	Kind NodeKind `json:"kind"`
	Text string   `json:"text,omitempty"`
}

// SectionNode groups the nodes of one resolved section, preserving the
// section identity so editors can address a clause by stable ID.
type SectionNode struct {
	ID    string  `json:"id"`
	Kind  string  `json:"kind"`
	Nodes []*Node `json:"nodes"`
}

// Tree is the root of the paragraph tree for one document.
type Tree struct {
	Title      string         `json:"title"`
	FontFamily string         `json:"fontFamily"`
	Sections   []*SectionNode `json:"sections"`
}

// PlainText flattens the tree back into visible text, one line per heading
// or paragraph. It is the equivalence contract with the HTML target.
func (t *Tree) PlainText() string {
	var out []string
	for _, section := range t.Sections {
		for _, node := range section.Nodes {
			if node.Kind == NodePageBreak {
				continue
			}
			out = append(out, node.Text)
		}
	}
	return strings.Join(out, "\n")
}
