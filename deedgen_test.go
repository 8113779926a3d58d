package deedgen_test

import (
	"strings"
	"testing"

	deedgen "github.com/Kongudocument-57316/document-creator-sub003"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/testsupport"
)

func TestGenerateHTML(t *testing.T) {
	output, err := deedgen.GenerateHTML(testsupport.Context(), deed.SaleDeed, testsupport.SampleRawForm())
	if err != nil {
		t.Fatalf("generate html: %v", err)
	}
	if !strings.Contains(string(output), "<!DOCTYPE html>") {
		t.Error("output is not an HTML page")
	}
}

func TestGenerateTree(t *testing.T) {
	output, err := deedgen.GenerateTree(testsupport.Context(), deed.SaleDeed, testsupport.SampleRawForm())
	if err != nil {
		t.Fatalf("generate tree: %v", err)
	}
	if !strings.Contains(string(output), `"sections"`) {
		t.Error("output is not a paragraph tree")
	}
}

func TestGenerateFromDocument(t *testing.T) {
	doc := testsupport.SampleSaleDeed()
	output, err := deedgen.GenerateFromDocument(testsupport.Context(), doc, "html")
	if err != nil {
		t.Fatalf("generate from document: %v", err)
	}
	if !strings.Contains(string(output), "வள்ளி") {
		t.Error("output missing seller name")
	}
}
