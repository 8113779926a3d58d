// Package prose turns a deed document into fully-resolved legal prose. Each
// document type has a template definition (embedded YAML) parsed once into a
// small section AST: ordered sections that are either unconditional bodies or
// conditional groups whose variants are mutually exclusive. Evaluating the
// AST against a deed.Document yields the resolved section list that every
// render target consumes, so the targets can never drift apart.
package prose

import (
	"strings"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// SectionKind names a structural slot in the document. The slots have a
// fixed canonical order which parsing enforces.
type SectionKind string

const (
	KindTitle         SectionKind = "title"
	KindParties       SectionKind = "parties"
	KindPriorDocument SectionKind = "priorDocument"
	KindPayment       SectionKind = "payment"
	KindCovenants     SectionKind = "covenants"
	KindSchedule      SectionKind = "schedule"
	KindSignatures    SectionKind = "signatures"
	KindWitnesses     SectionKind = "witnesses"
	KindTypist        SectionKind = "typist"
)

// sectionOrder is the canonical slot ordering: title, parties recital,
// prior-document recital, payment recital, covenants, property schedule,
// signature blocks, witness block, typist block.
var sectionOrder = map[SectionKind]int{
	KindTitle:         0,
	KindParties:       1,
	KindPriorDocument: 2,
	KindPayment:       3,
	KindCovenants:     4,
	KindSchedule:      5,
	KindSignatures:    6,
	KindWitnesses:     7,
	KindTypist:        8,
}

// Selector names the model field a conditional group switches on.
type Selector string

const (
	SelectPaymentMethod Selector = "paymentMethod"
	SelectPriorDocument Selector = "priorDocument"
	SelectWitnessCount  Selector = "witnessCount"
)

// Variant keys for the presence and count selectors. Payment-method variants
// use the deed.PaymentMethod values directly.
const (
	VariantPresent = "present"
	VariantAbsent  = "absent"
	VariantNone    = "none"
	VariantOne     = "one"
	VariantMany    = "many"
)

// RoleNoun is the singular/plural pair for one role's noun in this
// template's prose, used by the pluralization pass.
type RoleNoun struct {
	Singular string `yaml:"singular"`
	Plural   string `yaml:"plural"`
}

// Conditional is a group of mutually exclusive prose variants. Exactly one
// variant is emitted per render; the others are structurally absent from the
// output, not hidden.
type Conditional struct {
	Selector Selector
	Variants map[string]string
}

// Section is one slot of the template: either an unconditional Body or a
// Conditional group, never both.
type Section struct {
	ID          string
	Kind        SectionKind
	Title       string
	Body        string
	Conditional *Conditional
	PageBreak   bool
}

// Template is the parsed, immutable definition for one document type.
type Template struct {
	DocumentType deed.DocumentType
	Title        string
	RoleNouns    map[deed.Role]RoleNoun
	Sections     []Section
}

// ResolvedSection is one fully-substituted section of output prose. Lines
// are paragraphs in display order; markup is a renderer concern.
type ResolvedSection struct {
	ID        string
	Kind      SectionKind
	Title     string
	Lines     []string
	PageBreak bool
}

// PlainText flattens resolved sections into the visible text content both
// render targets must agree on: titles and lines joined by newlines.
func PlainText(sections []ResolvedSection) string {
	var out []string
	for _, section := range sections {
		if section.Title != "" {
			out = append(out, section.Title)
		}
		out = append(out, section.Lines...)
	}
	return strings.Join(out, "\n")
}
