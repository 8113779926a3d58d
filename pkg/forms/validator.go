// Package forms validates raw deed form payloads against the per-type form
// schemas before model construction. Validation here is structural (types,
// enums, bounds); data completeness is a render-time concern handled by the
// substitution engine's marker policy.
package forms

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

//go:embed schemas/*.yaml
var embeddedSchemas embed.FS

const schemaDocumentPath = "schemas/forms.yaml"

// Option customises validator construction.
type Option func(*config)

type config struct {
	schemaFS fs.FS
}

// WithSchemaFS supplies an alternate schema bundle via fs.FS, mirroring the
// template override hooks elsewhere in the pipeline.
func WithSchemaFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.schemaFS = files
		}
	}
}

// Validator checks raw form payloads against the schema for their document
// type. Construct once and share; validation itself is stateless.
type Validator struct {
	schemas map[deed.DocumentType]*openapi3.Schema
}

// NewValidator loads and validates the embedded schema document, resolving
// one schema per supported document type.
func NewValidator(options ...Option) (*Validator, error) {
	cfg := config{schemaFS: embeddedSchemas}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	raw, err := fs.ReadFile(cfg.schemaFS, schemaDocumentPath)
	if err != nil {
		return nil, fmt.Errorf("forms: read schema document: %w", err)
	}

	ctx := context.Background()
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("forms: load schema document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("forms: invalid schema document: %w", err)
	}

	schemas := make(map[deed.DocumentType]*openapi3.Schema, len(deed.DocumentTypes()))
	for _, docType := range deed.DocumentTypes() {
		ref, ok := spec.Components.Schemas[string(docType)]
		if !ok || ref.Value == nil {
			return nil, fmt.Errorf("forms: schema for document type %q missing", docType)
		}
		schemas[docType] = ref.Value
	}

	return &Validator{schemas: schemas}, nil
}

// Validate checks raw against the schema for docType. A nil return means the
// payload is structurally sound; the builder still performs its own enum
// parsing so programming errors surface even for callers that skip
// validation.
func (v *Validator) Validate(docType deed.DocumentType, raw deed.RawForm) error {
	schema, ok := v.schemas[docType]
	if !ok {
		return fmt.Errorf("forms: unknown document type %q", docType)
	}
	if err := schema.VisitJSON(map[string]any(raw)); err != nil {
		return fmt.Errorf("forms: %s form data invalid: %w", docType, err)
	}
	return nil
}
