package prose

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/numwords"
)

// Marker is substituted for a field the selected clause variant requires but
// the model does not carry. The clause renders visibly incomplete for manual
// correction instead of inventing a value that could pass for real data.
const Marker = "—"

// Option configures the engine.
type Option func(*config)

type config struct {
	templateFS fs.FS
	language   numwords.Language
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithLanguage selects the wording language for amount clauses. The default
// is Tamil; the choice is explicit configuration, never ambient state.
func WithLanguage(lang numwords.Language) Option {
	return func(cfg *config) {
		if lang != "" {
			cfg.language = lang
		}
	}
}

// Engine resolves deed documents into prose sections. Construct once; every
// Resolve call is a pure function of the document, so concurrent renders are
// safe without coordination.
type Engine struct {
	templates map[deed.DocumentType]*Template
	language  numwords.Language
}

// NewEngine parses every template in the bundle up front so definition
// errors surface at startup, not mid-render.
func NewEngine(options ...Option) (*Engine, error) {
	cfg := config{templateFS: TemplatesFS(), language: numwords.Tamil}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	entries, err := fs.Glob(cfg.templateFS, "templates/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("prose: list templates: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("prose: template bundle is empty")
	}

	engine := &Engine{
		templates: make(map[deed.DocumentType]*Template, len(entries)),
		language:  cfg.language,
	}
	for _, entry := range entries {
		raw, readErr := fs.ReadFile(cfg.templateFS, entry)
		if readErr != nil {
			return nil, fmt.Errorf("prose: read template %s: %w", entry, readErr)
		}
		tpl, parseErr := ParseTemplate(raw)
		if parseErr != nil {
			return nil, fmt.Errorf("prose: parse %s: %w", entry, parseErr)
		}
		if _, dup := engine.templates[tpl.DocumentType]; dup {
			return nil, fmt.Errorf("prose: duplicate template for %s", tpl.DocumentType)
		}
		engine.templates[tpl.DocumentType] = tpl
	}

	return engine, nil
}

// Template returns the parsed template for a document type.
func (e *Engine) Template(docType deed.DocumentType) (*Template, bool) {
	tpl, ok := e.templates[docType]
	return tpl, ok
}

// Resolve substitutes the document into its template and returns the
// resolved section list. Sections whose selected body resolves to nothing
// are omitted entirely, never emitted with blanks.
func (e *Engine) Resolve(doc deed.Document) ([]ResolvedSection, error) {
	tpl, ok := e.templates[doc.Type]
	if !ok {
		return nil, fmt.Errorf("prose: no template for document type %q", doc.Type)
	}

	var out []ResolvedSection
	for _, section := range tpl.Sections {
		body, conditional, err := selectBody(section, doc)
		if err != nil {
			return nil, err
		}

		resolved := e.substitute(body, tpl, doc, conditional)
		resolved = pluralizeRoles(resolved, tpl.RoleNouns, doc)
		title := pluralizeRoles(section.Title, tpl.RoleNouns, doc)

		lines := splitLines(resolved)
		if len(lines) == 0 {
			continue
		}
		out = append(out, ResolvedSection{
			ID:        section.ID,
			Kind:      section.Kind,
			Title:     title,
			Lines:     lines,
			PageBreak: section.PageBreak,
		})
	}
	return out, nil
}

// selectBody picks the section's prose: the unconditional body, or exactly
// one conditional variant. The second return reports whether a conditional
// variant was selected, which switches the missing-field policy from "empty"
// to "visible marker".
func selectBody(section Section, doc deed.Document) (string, bool, error) {
	if section.Conditional == nil {
		return section.Body, false, nil
	}

	cond := section.Conditional
	switch cond.Selector {
	case SelectPaymentMethod:
		key := string(doc.Payment.Method)
		body, ok := cond.Variants[key]
		if !ok {
			return "", false, fmt.Errorf("prose: section %q has no variant for payment method %q", section.ID, key)
		}
		return body, true, nil
	case SelectPriorDocument:
		if doc.PriorDocument != nil {
			return cond.Variants[VariantPresent], true, nil
		}
		return cond.Variants[VariantAbsent], true, nil
	case SelectWitnessCount:
		switch len(doc.Witnesses) {
		case 0:
			return cond.Variants[VariantNone], true, nil
		case 1:
			return cond.Variants[VariantOne], true, nil
		default:
			return cond.Variants[VariantMany], true, nil
		}
	default:
		return "", false, fmt.Errorf("prose: section %q: unknown selector %q", section.ID, cond.Selector)
	}
}

func (e *Engine) substitute(body string, tpl *Template, doc deed.Document, conditional bool) string {
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		token := placeholderPattern.FindStringSubmatch(match)[1]
		value := e.resolveToken(token, tpl, doc)
		if value == "" && conditional {
			if _, optional := optionalTokens[token]; optional {
				return ""
			}
			return Marker
		}
		return value
	})
}

func splitLines(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// scalar token table; list and block tokens are handled separately.
var listRoles = map[string]deed.Role{
	"buyers":     deed.RoleBuyer,
	"sellers":    deed.RoleSeller,
	"donors":     deed.RoleDonor,
	"recipients": deed.RoleRecipient,
	"witnesses":  deed.RoleWitness,
}

var blockRoles = map[string]deed.Role{
	"buyersBlock":     deed.RoleBuyer,
	"sellersBlock":    deed.RoleSeller,
	"donorsBlock":     deed.RoleDonor,
	"recipientsBlock": deed.RoleRecipient,
	"witnessesBlock":  deed.RoleWitness,
}

var primaryNameTokens = map[string]deed.Role{
	"buyerName":     deed.RoleBuyer,
	"sellerName":    deed.RoleSeller,
	"donorName":     deed.RoleDonor,
	"recipientName": deed.RoleRecipient,
}

var scalarTokens = map[string]struct{}{
	"documentTitle":         {},
	"amount":                {},
	"amountWords":           {},
	"referenceNumber":       {},
	"transactionDate":       {},
	"transactionDateClause": {},
	"payerBankName":         {},
	"payerBankBranch":       {},
	"payerAccountType":      {},
	"payerAccountNumber":    {},
	"payeeBankName":         {},
	"payeeBankBranch":       {},
	"payeeAccountType":      {},
	"payeeAccountNumber":    {},
	"documentNumber":        {},
	"registrationDate":      {},
	"subRegistrarOffice":    {},
	"bookNumber":            {},
	"submissionType":        {},
	"priorDocumentNumber":   {},
	"priorDocumentDate":     {},
	"priorBookNumber":       {},
	"priorRegistrationYear": {},
	"priorDocumentType":     {},
	"priorRegistrarOffice":  {},
	"priorCopyType":         {},
	"propertySchedule":      {},
	"typistName":            {},
	"typistPhone":           {},
	"typistAddress":         {},
}

// optionalTokens may legitimately resolve to nothing inside a selected
// conditional variant; they vanish instead of becoming the omission marker.
var optionalTokens = map[string]struct{}{
	"transactionDateClause": {},
}

func knownToken(token string) bool {
	if _, ok := listRoles[token]; ok {
		return true
	}
	if _, ok := blockRoles[token]; ok {
		return true
	}
	if _, ok := primaryNameTokens[token]; ok {
		return true
	}
	_, ok := scalarTokens[token]
	return ok
}

func (e *Engine) resolveToken(token string, tpl *Template, doc deed.Document) string {
	if role, ok := listRoles[token]; ok {
		return inlinePartyList(partiesFor(doc, role))
	}
	if role, ok := blockRoles[token]; ok {
		return blockPartyList(partiesFor(doc, role))
	}
	if role, ok := primaryNameTokens[token]; ok {
		if party, found := doc.PrimaryParty(role); found {
			return party.Name
		}
		return ""
	}

	switch token {
	case "documentTitle":
		return tpl.Title
	case "amount":
		return formatAmount(doc.Payment.Amount)
	case "amountWords":
		// Always recomputed from the live amount; templates never receive a
		// precomputed words string that could go stale.
		return numwords.Rupees(doc.Payment.Amount, e.language)
	case "referenceNumber":
		return doc.Payment.ReferenceNumber
	case "transactionDate":
		return doc.Payment.TransactionDate
	case "transactionDateClause":
		// The transaction date is optional for every payment method. The
		// clause carries its own label so an omitted date drops the whole
		// phrase instead of leaving a dangling "தேதி".
		if doc.Payment.TransactionDate == "" {
			return ""
		}
		return ", தேதி " + doc.Payment.TransactionDate
	case "payerBankName":
		return doc.Payment.PayerBank.BankName
	case "payerBankBranch":
		return doc.Payment.PayerBank.Branch
	case "payerAccountType":
		return doc.Payment.PayerBank.AccountType
	case "payerAccountNumber":
		return doc.Payment.PayerBank.AccountNumber
	case "payeeBankName":
		return doc.Payment.PayeeBank.BankName
	case "payeeBankBranch":
		return doc.Payment.PayeeBank.Branch
	case "payeeAccountType":
		return doc.Payment.PayeeBank.AccountType
	case "payeeAccountNumber":
		return doc.Payment.PayeeBank.AccountNumber
	case "documentNumber":
		return doc.Meta.DocumentNumber
	case "registrationDate":
		return doc.Meta.RegistrationDate
	case "subRegistrarOffice":
		return doc.Meta.SubRegistrarOffice
	case "bookNumber":
		return doc.Meta.BookNumber
	case "submissionType":
		return doc.Meta.SubmissionType
	case "propertySchedule":
		return propertySchedule(doc.Properties)
	case "typistName":
		if doc.Typist != nil {
			return doc.Typist.Name
		}
		return ""
	case "typistPhone":
		if doc.Typist != nil {
			return doc.Typist.Phone
		}
		return ""
	case "typistAddress":
		if doc.Typist != nil {
			return doc.Typist.Address.Display()
		}
		return ""
	}

	if doc.PriorDocument != nil {
		switch token {
		case "priorDocumentNumber":
			return doc.PriorDocument.DocumentNumber
		case "priorDocumentDate":
			return doc.PriorDocument.DocumentDate
		case "priorBookNumber":
			return doc.PriorDocument.BookNumber
		case "priorRegistrationYear":
			return doc.PriorDocument.RegistrationYear
		case "priorDocumentType":
			return doc.PriorDocument.DocumentType
		case "priorRegistrarOffice":
			return doc.PriorDocument.RegistrarOffice
		case "priorCopyType":
			return copyTypeWord(doc.PriorDocument.CopyType)
		}
	}
	return ""
}

func partiesFor(doc deed.Document, role deed.Role) []deed.Party {
	if role == deed.RoleWitness {
		return doc.Witnesses
	}
	return doc.PartiesByRole(role)
}

// inlinePartyList renders "1. A, 2. B, 3. C" for prose positions.
func inlinePartyList(parties []deed.Party) string {
	entries := make([]string, 0, len(parties))
	for i, party := range parties {
		entries = append(entries, fmt.Sprintf("%d. %s", i+1, party.Name))
	}
	return strings.Join(entries, ", ")
}

/// blockPartyList renders one full recital per line for enumerated blocks:
// name, relation, age and address, omitting whatever the party lacks.
func blockPartyList(parties []deed.Party) string {
	entries := make([]string, 0, len(parties))
	for i, party := range parties {
		entries = append(entries, fmt.Sprintf("%d. %s", i+1, partyRecital(party)))
	}
	return strings.Join(entries, "\n")
}

func partyRecital(party deed.Party) string {
	segments := []string{party.Name}
	if party.RelationName != "" {
		word := party.RelationType.TamilWord()
		if word == "" {
			segments = append(segments, party.RelationName)
		} else {
			segments = append(segments, word+" "+party.RelationName)
		}
	}
	if party.Age > 0 {
		segments = append(segments, "வயது "+strconv.Itoa(party.Age))
	}
	if addr := party.Address.Display(); addr != "" {
		segments = append(segments, addr)
	}
	if party.GovernmentID != "" {
		segments = append(segments, party.GovernmentID)
	}
	return strings.Join(segments, ", ")
}

// propertySchedule renders the parcel list, one parcel per line. An empty
// parcel list yields an empty schedule, which omits the section.
func propertySchedule(properties []deed.PropertyDescriptor) string {
	entries := make([]string, 0, len(properties))
	for i, prop := range properties {
		segments := make([]string, 0, 6)
		if prop.SurveyNumber != "" {
			survey := "சர்வே எண் " + prop.SurveyNumber
			if prop.SubDivisionNumber != "" {
				survey += "/" + prop.SubDivisionNumber
			}
			segments = append(segments, survey)
		}
		if loc := prop.Location(); loc != "" {
			segments = append(segments, loc)
		}
		if prop.Area != "" {
			area := prop.Area
			if prop.AreaUnit != "" {
				area += " " + prop.AreaUnit
			}
			segments = append(segments, area)
		}
		if prop.DeclaredValue > 0 {
			segments = append(segments, "மதிப்பு ரூ."+formatAmount(prop.DeclaredValue))
		}
		if prop.Details != "" {
			segments = append(segments, prop.Details)
		}
		entries = append(entries, fmt.Sprintf("%d. %s", i+1, strings.Join(segments, ", ")))
	}
	return strings.Join(entries, "\n")
}

func copyTypeWord(ct deed.CopyType) string {
	switch ct {
	case deed.CopyOriginal:
		return "அசல்"
	case deed.CopyCertified:
		return "சான்றளிக்கப்பட்ட நகல்"
	default:
		return ""
	}
}

// formatAmount renders an amount with Indian digit grouping (15,00,000) and
// two decimals only when a fractional part exists.
func formatAmount(amount float64) string {
	if amount == 0 {
		return "0"
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	text := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(text, ".")
	frac = strings.TrimRight(frac, "0")

	grouped := groupIndian(whole)
	if frac != "" {
		grouped += "." + frac
	}
	if negative {
		grouped = "-" + grouped
	}
	return grouped
}

// groupIndian inserts commas per the Indian system: last three digits, then
// pairs (1234567 -> 12,34,567).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
