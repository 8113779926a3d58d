// Package orchestrator coordinates the full deed pipeline: form validation,
// document building, prose resolution and rendering. It applies sensible
// defaults (embedded templates, HTML renderer) while remaining open to
// dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/forms"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/prose"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/render"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/renderers/doctree"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithValidator injects a custom form validator.
func WithValidator(validator *forms.Validator) Option {
	return func(o *Orchestrator) {
		o.validator = validator
	}
}

// WithResolver supplies the reference-data resolver passed to the document
// builder for *Id form fields.
func WithResolver(resolver deed.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithProseEngine injects a custom prose engine, typically one configured
// with an alternate template bundle.
func WithProseEngine(engine *prose.Engine) Option {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator runs the validate → build → resolve → render sequence.
type Orchestrator struct {
	validator       *forms.Validator
	resolver        deed.Resolver
	engine          *prose.Engine
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate one document.
type Request struct {
	// DocumentType selects the deed template. Required.
	DocumentType deed.DocumentType

	// Form holds the raw submission to validate and build. Optional when
	// Document is supplied.
	Form deed.RawForm

	// Document allows callers to bypass validation and building when they
	// already hold a structured document.
	Document *deed.Document

	// Renderer names the render target. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as font selection
	// or theme variables.
	RenderOptions render.RenderOptions
}

// Generate executes the pipeline and returns the rendered bytes (HTML for
// the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	resolved, err := o.Resolve(req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, resolved, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Resolve runs the pipeline up to (but not including) rendering, returning
// the resolved document shared by every render target.
func (o *Orchestrator) Resolve(req Request) (render.ResolvedDocument, error) {
	if err := o.initialiseErr; err != nil {
		return render.ResolvedDocument{}, err
	}
	if req.DocumentType == "" {
		return render.ResolvedDocument{}, errors.New("orchestrator: document type is required")
	}

	doc, err := o.resolveInput(req)
	if err != nil {
		return render.ResolvedDocument{}, err
	}

	tpl, ok := o.engine.Template(req.DocumentType)
	if !ok {
		return render.ResolvedDocument{}, fmt.Errorf("orchestrator: no template for document type %q", req.DocumentType)
	}

	sections, err := o.engine.Resolve(doc)
	if err != nil {
		return render.ResolvedDocument{}, fmt.Errorf("orchestrator: resolve sections: %w", err)
	}

	return render.ResolvedDocument{Title: tpl.Title, Sections: sections}, nil
}

func (o *Orchestrator) resolveInput(req Request) (deed.Document, error) {
	if req.Document != nil {
		if req.Document.Type != req.DocumentType {
			return deed.Document{}, fmt.Errorf("orchestrator: document type %q does not match request type %q",
				req.Document.Type, req.DocumentType)
		}
		return *req.Document, nil
	}
	if req.Form == nil {
		return deed.Document{}, errors.New("orchestrator: form or document is required")
	}

	if err := o.validator.Validate(req.DocumentType, req.Form); err != nil {
		return deed.Document{}, fmt.Errorf("orchestrator: validate form: %w", err)
	}

	var buildOptions []deed.BuildOption
	if o.resolver != nil {
		buildOptions = append(buildOptions, deed.WithResolver(o.resolver))
	}
	doc, err := deed.BuildDocument(req.DocumentType, req.Form, buildOptions...)
	if err != nil {
		return deed.Document{}, fmt.Errorf("orchestrator: build document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}
	o.defaultsApplied = true

	if o.validator == nil {
		validator, err := forms.NewValidator()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise validator: %w", err)
			return
		}
		o.validator = validator
	}
	if o.engine == nil {
		engine, err := prose.NewEngine()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise prose engine: %w", err)
			return
		}
		o.engine = engine
	}
	if o.registry == nil {
		registry := render.NewRegistry()

		htmlRenderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise html renderer: %w", err)
			return
		}
		registry.MustRegister(htmlRenderer)
		registry.MustRegister(doctree.New())

		o.registry = registry
	}
}
