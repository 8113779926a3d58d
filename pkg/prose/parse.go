package prose

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// templateFile mirrors the YAML template definition layout.
type templateFile struct {
	DocumentType string              `yaml:"documentType"`
	Title        string              `yaml:"title"`
	RoleNouns    map[string]RoleNoun `yaml:"roleNouns"`
	Sections     []sectionFile       `yaml:"sections"`
}

type sectionFile struct {
	ID          string           `yaml:"id"`
	Kind        string           `yaml:"kind"`
	Title       string           `yaml:"title"`
	Body        string           `yaml:"body"`
	PageBreak   bool             `yaml:"pageBreak"`
	Conditional *conditionalFile `yaml:"conditional"`
}

type conditionalFile struct {
	Selector string            `yaml:"selector"`
	Variants map[string]string `yaml:"variants"`
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.]+)\s*\}\}`)

// ParseTemplate decodes and validates one template definition. Validation is
// strict: unknown section kinds, out-of-order sections, unknown selectors or
// variant keys, and unknown placeholder tokens are all definition errors and
// fail here rather than surfacing at render time.
func ParseTemplate(raw []byte) (*Template, error) {
	var file templateFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("prose: decode template: %w", err)
	}

	docType, err := deed.ParseDocumentType(file.DocumentType)
	if err != nil {
		return nil, fmt.Errorf("prose: template: %w", err)
	}
	if strings.TrimSpace(file.Title) == "" {
		return nil, fmt.Errorf("prose: template %s: title is required", docType)
	}
	if len(file.Sections) == 0 {
		return nil, fmt.Errorf("prose: template %s: no sections", docType)
	}

	nouns := make(map[deed.Role]RoleNoun, len(file.RoleNouns))
	for rawRole, noun := range file.RoleNouns {
		role, roleErr := deed.ParseRole(rawRole)
		if roleErr != nil {
			return nil, fmt.Errorf("prose: template %s: roleNouns: %w", docType, roleErr)
		}
		if noun.Singular == "" || noun.Plural == "" {
			return nil, fmt.Errorf("prose: template %s: roleNouns[%s]: singular and plural are both required", docType, role)
		}
		nouns[role] = noun
	}

	tpl := &Template{
		DocumentType: docType,
		Title:        strings.TrimSpace(file.Title),
		RoleNouns:    nouns,
		Sections:     make([]Section, 0, len(file.Sections)),
	}

	lastOrder := -1
	seenIDs := make(map[string]struct{}, len(file.Sections))
	for i, sec := range file.Sections {
		section, secErr := parseSection(docType, i, sec)
		if secErr != nil {
			return nil, secErr
		}
		order := sectionOrder[section.Kind]
		if order < lastOrder {
			return nil, fmt.Errorf("prose: template %s: section %q out of canonical order", docType, section.ID)
		}
		lastOrder = order
		if _, dup := seenIDs[section.ID]; dup {
			return nil, fmt.Errorf("prose: template %s: duplicate section id %q", docType, section.ID)
		}
		seenIDs[section.ID] = struct{}{}
		tpl.Sections = append(tpl.Sections, section)
	}

	return tpl, nil
}

func parseSection(docType deed.DocumentType, index int, sec sectionFile) (Section, error) {
	id := strings.TrimSpace(sec.ID)
	if id == "" {
		return Section{}, fmt.Errorf("prose: template %s: sections[%d]: id is required", docType, index)
	}

	kind := SectionKind(strings.TrimSpace(sec.Kind))
	if _, known := sectionOrder[kind]; !known {
		return Section{}, fmt.Errorf("prose: template %s: section %q: unknown kind %q", docType, id, sec.Kind)
	}

	section := Section{
		ID:        id,
		Kind:      kind,
		Title:     strings.TrimSpace(sec.Title),
		Body:      sec.Body,
		PageBreak: sec.PageBreak,
	}

	hasBody := strings.TrimSpace(sec.Body) != ""
	if hasBody && sec.Conditional != nil {
		return Section{}, fmt.Errorf("prose: template %s: section %q: body and conditional are mutually exclusive", docType, id)
	}
	if !hasBody && sec.Conditional == nil {
		return Section{}, fmt.Errorf("prose: template %s: section %q: needs a body or a conditional", docType, id)
	}

	if sec.Conditional != nil {
		conditional, err := parseConditional(docType, id, *sec.Conditional)
		if err != nil {
			return Section{}, err
		}
		section.Conditional = &conditional
		section.Body = ""
		for _, body := range conditional.Variants {
			if err := validateTokens(docType, id, body); err != nil {
				return Section{}, err
			}
		}
		return section, nil
	}

	if err := validateTokens(docType, id, sec.Body); err != nil {
		return Section{}, err
	}
	return section, nil
}

func parseConditional(docType deed.DocumentType, id string, file conditionalFile) (Conditional, error) {
	selector := Selector(strings.TrimSpace(file.Selector))
	if len(file.Variants) == 0 {
		return Conditional{}, fmt.Errorf("prose: template %s: section %q: conditional has no variants", docType, id)
	}

	var allowed func(key string) bool
	switch selector {
	case SelectPaymentMethod:
		allowed = func(key string) bool {
			_, err := deed.ParsePaymentMethod(key)
			return err == nil
		}
	case SelectPriorDocument:
		allowed = func(key string) bool {
			return key == VariantPresent || key == VariantAbsent
		}
	case SelectWitnessCount:
		allowed = func(key string) bool {
			return key == VariantNone || key == VariantOne || key == VariantMany
		}
	default:
		return Conditional{}, fmt.Errorf("prose: template %s: section %q: unknown selector %q", docType, id, file.Selector)
	}

	variants := make(map[string]string, len(file.Variants))
	for key, body := range file.Variants {
		if !allowed(key) {
			return Conditional{}, fmt.Errorf("prose: template %s: section %q: variant %q not valid for selector %q", docType, id, key, selector)
		}
		variants[key] = body
	}

	return Conditional{Selector: selector, Variants: variants}, nil
}

func validateTokens(docType deed.DocumentType, id, body string) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		token := match[1]
		if !knownToken(token) {
			return fmt.Errorf("prose: template %s: section %q: unknown placeholder token %q", docType, id, token)
		}
	}
	return nil
}
