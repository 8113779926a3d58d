package render_test

import (
	"context"
	"testing"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, render.ResolvedDocument, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "doctree"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("duplicate registration should fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("empty renderer name should fail")
	}

	if _, err := registry.Get("html"); err != nil {
		t.Fatalf("get html: %v", err)
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatal("unknown renderer should fail")
	}

	names := registry.List()
	if len(names) != 2 || names[0] != "doctree" || names[1] != "html" {
		t.Fatalf("List() = %v, want sorted [doctree html]", names)
	}
	if !registry.Has("doctree") || registry.Has("pdf") {
		t.Fatal("Has reported wrong membership")
	}
}

func TestExtractText(t *testing.T) {
	input := `<html><body><h1>கிரைய ஆவணம்</h1><p>முதல் பத்தி</p><div class="sig"><p>இரண்டாம் &amp; பத்தி</p></div></body></html>`
	want := "கிரைய ஆவணம்\nமுதல் பத்தி\nஇரண்டாம் & பத்தி"
	if got := render.ExtractText(input); got != want {
		t.Errorf("ExtractText = %q, want %q", got, want)
	}
}

func TestExtractTextDropsHead(t *testing.T) {
	input := `<html><head><title>தலைப்பு</title><style>body { color: red; }</style></head><body><p>உடல் உரை</p></body></html>`
	if got := render.ExtractText(input); got != "உடல் உரை" {
		t.Errorf("ExtractText = %q, want %q", got, "உடல் உரை")
	}
}

func TestRenderOptionsFontDefault(t *testing.T) {
	if got := (render.RenderOptions{}).Font(); got != render.DefaultFontFamily {
		t.Errorf("default font = %q, want %q", got, render.DefaultFontFamily)
	}
	if got := (render.RenderOptions{FontFamily: "Catamaran"}).Font(); got != "Catamaran" {
		t.Errorf("font override = %q, want Catamaran", got)
	}
	if got := (render.RenderOptions{}).Lang(); got != render.DefaultLanguage {
		t.Errorf("default lang = %q, want %q", got, render.DefaultLanguage)
	}
}
