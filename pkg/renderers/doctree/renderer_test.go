package doctree_test

import (
	"encoding/json"
	"testing"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/prose"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/renderers/doctree"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/testsupport"
)

func resolvedSample(t *testing.T) render.ResolvedDocument {
	t.Helper()

	engine, err := prose.NewEngine()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	sections, err := engine.Resolve(testsupport.SampleSaleDeed())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return render.ResolvedDocument{Title: "கிரைய ஆவணம்", Sections: sections}
}

func TestBuild_TreeShape(t *testing.T) {
	doc := resolvedSample(t)
	tree := doctree.Build(doc, render.RenderOptions{})

	if tree.Title != doc.Title {
		t.Errorf("tree title = %q, want %q", tree.Title, doc.Title)
	}
	if tree.FontFamily != render.DefaultFontFamily {
		t.Errorf("tree font = %q, want %q", tree.FontFamily, render.DefaultFontFamily)
	}
	if len(tree.Sections) != len(doc.Sections) {
		t.Fatalf("tree has %d sections, want %d", len(tree.Sections), len(doc.Sections))
	}

	for i, section := range doc.Sections {
		got := tree.Sections[i]
		if got.ID != section.ID {
			t.Errorf("section %d id = %q, want %q", i, got.ID, section.ID)
		}
		if section.PageBreak {
			if len(got.Nodes) == 0 || got.Nodes[0].Kind != doctree.NodePageBreak {
				t.Errorf("section %q should start with a pageBreak node", section.ID)
			}
		}
		var paragraphs int
		for _, node := range got.Nodes {
			if node.Kind == doctree.NodeParagraph {
				paragraphs++
			}
			if node.Kind == doctree.NodePageBreak && node.Text != "" {
				t.Errorf("pageBreak node carries text %q", node.Text)
			}
		}
		if paragraphs != len(section.Lines) {
			t.Errorf("section %q has %d paragraphs, want %d", section.ID, paragraphs, len(section.Lines))
		}
	}
}

func TestRender_JSONRoundTrip(t *testing.T) {
	doc := resolvedSample(t)
	renderer := doctree.New()

	payload, err := renderer.Render(testsupport.Context(), doc, render.RenderOptions{FontFamily: "Catamaran"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var tree doctree.Tree
	if err := json.Unmarshal(payload, &tree); err != nil {
		t.Fatalf("unmarshal tree: %v", err)
	}
	if tree.FontFamily != "Catamaran" {
		t.Errorf("font = %q, want Catamaran", tree.FontFamily)
	}
	if tree.PlainText() != doc.PlainText() {
		t.Error("round-tripped tree text diverges from resolved sections")
	}
}

func TestPlainText_MatchesResolvedSections(t *testing.T) {
	doc := resolvedSample(t)
	tree := doctree.Build(doc, render.RenderOptions{})

	if diff := testsupport.CompareGolden(doc.PlainText(), tree.PlainText()); diff != "" {
		t.Fatalf("tree text diverges from resolved sections (-want +got):\n%s", diff)
	}
}
