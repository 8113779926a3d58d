package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"gopkg.in/yaml.v3"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/orchestrator"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/records"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
)

func main() {
	docType := flag.String("type", "", "document type (prompted when omitted)")
	renderer := flag.String("renderer", "", "render target: html or doctree (prompted when omitted)")
	formPath := flag.String("form", "", "form submission JSON file")
	output := flag.String("output", "", "output file (stdout if empty)")
	font := flag.String("font", "", "font family for the rendered document")
	dbPath := flag.String("db", "", "SQLite reference database (optional)")
	save := flag.Bool("save", false, "save the form as a record in the database")
	flag.Parse()

	ctx := context.Background()

	if *formPath == "" {
		log.Fatal("a -form file is required")
	}
	raw, err := loadForm(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	selectedType, err := chooseDocumentType(*docType)
	if err != nil {
		log.Fatalf("Failed to select document type: %v", err)
	}
	selectedRenderer, err := chooseRenderer(*renderer)
	if err != nil {
		log.Fatalf("Failed to select renderer: %v", err)
	}

	var options []orchestrator.Option
	var store *records.Store
	if *dbPath != "" {
		store, err = records.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
		if err := store.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if err := store.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		options = append(options, orchestrator.WithResolver(store.Resolver()))
	}

	gen := orchestrator.New(options...)

	result, err := gen.Generate(ctx, orchestrator.Request{
		DocumentType:  selectedType,
		Form:          raw,
		Renderer:      selectedRenderer,
		RenderOptions: render.RenderOptions{FontFamily: *font},
	})
	if err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	if *save {
		if store == nil {
			log.Fatal("-save requires -db")
		}
		payload, err := json.Marshal(map[string]any(raw))
		if err != nil {
			log.Fatalf("Failed to marshal form for saving: %v", err)
		}
		id, err := store.SaveRecord(ctx, selectedType, payload)
		if err != nil {
			log.Fatalf("Failed to save record: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Saved record %d\n", id)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Document written to %s\n", *output)
	} else {
		fmt.Println(string(result))
	}
}

func loadForm(path string) (deed.RawForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw deed.RawForm
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

func chooseDocumentType(flagValue string) (deed.DocumentType, error) {
	if flagValue != "" {
		return deed.ParseDocumentType(flagValue)
	}

	names := make([]string, 0, len(deed.DocumentTypes()))
	for _, dt := range deed.DocumentTypes() {
		names = append(names, string(dt))
	}

	var selected string
	prompt := &survey.Select{
		Message: "Document type:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return deed.ParseDocumentType(selected)
}

func chooseRenderer(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Render target:",
		Options: []string{"html", "doctree"},
		Default: "html",
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
