package deed

import (
	"fmt"
	"strconv"
	"strings"
)

// RawForm is the decoded form payload for one document: a JSON/YAML object
// keyed by the field names declared in the per-type form schemas. Values may
// be denormalized display strings, lookup-table IDs, or partially-filled
// nested objects; BuildDocument normalizes all of them into the canonical
// model.
type RawForm map[string]any

// Resolver translates a lookup-table reference into its display name. Tables
// follow the record-store naming: "districts", "taluks", "villages",
// "offices", "documentTypes". Resolution happens synchronously during the
// build so the renderer only ever sees resolved strings.
type Resolver func(table string, id any) (string, bool)

// BuildOption customises document construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	resolver Resolver
}

// WithResolver supplies the reference-data resolver used for *Id fields.
// Without one, unresolved references normalize to empty strings.
func WithResolver(resolver Resolver) BuildOption {
	return func(cfg *buildConfig) {
		if resolver != nil {
			cfg.resolver = resolver
		}
	}
}

// BuildDocument normalizes raw form data into a Document. Optional fields
// default to explicit empty values so the render stages never see nil or
// "undefined" text. Unknown enum values (role, payment method, relation,
// document type) are programming errors and fail here, never at render time.
func BuildDocument(docType DocumentType, raw RawForm, opts ...BuildOption) (Document, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	parsed, err := ParseDocumentType(string(docType))
	if err != nil {
		return Document{}, err
	}

	doc := Document{Type: parsed}

	doc.Meta = buildMeta(asObject(raw["meta"]), cfg)

	parties, witnesses, typist, err := buildParties(asList(raw["parties"]))
	if err != nil {
		return Document{}, err
	}
	doc.Parties = parties
	doc.Witnesses = witnesses
	doc.Typist = typist

	doc.Properties = buildProperties(asList(raw["properties"]), cfg)

	payment, err := buildPayment(asObject(raw["payment"]))
	if err != nil {
		return Document{}, err
	}
	doc.Payment = payment

	prior, err := buildPriorDocument(asObject(raw["priorDocument"]), cfg)
	if err != nil {
		return Document{}, err
	}
	doc.PriorDocument = prior

	return doc, nil
}

func buildMeta(obj map[string]any, cfg buildConfig) DocumentMeta {
	return DocumentMeta{
		DocumentNumber:     str(obj, "documentNumber"),
		RegistrationDate:   str(obj, "registrationDate"),
		SubRegistrarOffice: resolved(obj, "subRegistrarOffice", "offices", cfg),
		BookNumber:         str(obj, "bookNumber"),
		SubmissionType:     str(obj, "submissionType"),
	}
}

func buildParties(items []any) (parties, witnesses []Party, typist *Party, err error) {
	for i, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}

		role, roleErr := ParseRole(str(obj, "role"))
		if roleErr != nil {
			return nil, nil, nil, fmt.Errorf("deed: parties[%d]: %w", i, roleErr)
		}
		relation, relErr := ParseRelationType(str(obj, "relationType"))
		if relErr != nil {
			return nil, nil, nil, fmt.Errorf("deed: parties[%d]: %w", i, relErr)
		}

		party := Party{
			Name:         str(obj, "name"),
			Role:         role,
			RelationType: relation,
			RelationName: str(obj, "relationName"),
			Age:          nonNegativeInt(obj, "age"),
			GovernmentID: str(obj, "governmentId"),
			Phone:        str(obj, "phone"),
			Address:      buildAddress(asObject(obj["address"])),
		}

		switch role {
		case RoleWitness:
			witnesses = append(witnesses, party)
		case RoleTypist:
			if typist == nil {
				copied := party
				typist = &copied
			}
		default:
			parties = append(parties, party)
		}
	}
	return parties, witnesses, typist, nil
}

func buildAddress(obj map[string]any) Address {
	return Address{
		DoorNumber: str(obj, "doorNumber"),
		Line1:      str(obj, "line1"),
		Line2:      str(obj, "line2"),
		Line3:      str(obj, "line3"),
		Taluk:      str(obj, "taluk"),
		District:   str(obj, "district"),
		PostalCode: str(obj, "postalCode"),
	}
}

func buildProperties(items []any, cfg buildConfig) []PropertyDescriptor {
	var out []PropertyDescriptor
	for _, item := range items {
		obj := asObject(item)
		if obj == nil {
			continue
		}
		out = append(out, PropertyDescriptor{
			SurveyNumber:      str(obj, "surveyNumber"),
			SubDivisionNumber: str(obj, "subDivisionNumber"),
			Village:           resolved(obj, "village", "villages", cfg),
			Taluk:             resolved(obj, "taluk", "taluks", cfg),
			District:          resolved(obj, "district", "districts", cfg),
			State:             str(obj, "state"),
			Area:              str(obj, "area"),
			AreaUnit:          str(obj, "areaUnit"),
			DeclaredValue:     number(obj, "declaredValue"),
			Details:           str(obj, "details"),
		})
	}
	return out
}

func buildPayment(obj map[string]any) (PaymentClause, error) {
	method, err := ParsePaymentMethod(str(obj, "method"))
	if err != nil {
		return PaymentClause{}, fmt.Errorf("deed: payment: %w", err)
	}
	return PaymentClause{
		Method:          method,
		Amount:          number(obj, "amount"),
		ReferenceNumber: str(obj, "referenceNumber"),
		TransactionDate: str(obj, "transactionDate"),
		PayerBank:       buildBank(asObject(obj["payerBank"])),
		PayeeBank:       buildBank(asObject(obj["payeeBank"])),
	}, nil
}

func buildBank(obj map[string]any) BankDetails {
	return BankDetails{
		BankName:      str(obj, "bankName"),
		Branch:        str(obj, "branch"),
		AccountType:   str(obj, "accountType"),
		AccountNumber: str(obj, "accountNumber"),
	}
}

func buildPriorDocument(obj map[string]any, cfg buildConfig) (*PriorDocumentReference, error) {
	if len(obj) == 0 {
		return nil, nil
	}
	copyType, err := ParseCopyType(str(obj, "copyType"))
	if err != nil {
		return nil, fmt.Errorf("deed: priorDocument: %w", err)
	}
	ref := PriorDocumentReference{
		DocumentNumber:   str(obj, "documentNumber"),
		DocumentDate:     str(obj, "documentDate"),
		BookNumber:       str(obj, "bookNumber"),
		RegistrationYear: str(obj, "registrationYear"),
		DocumentType:     resolved(obj, "documentType", "documentTypes", cfg),
		RegistrarOffice:  resolved(obj, "registrarOffice", "offices", cfg),
		CopyType:         copyType,
	}
	if ref == (PriorDocumentReference{}) {
		return nil, nil
	}
	return &ref, nil
}

// resolved reads a display string, falling back to resolving the matching
// "<key>Id" reference when only an ID was submitted.
func resolved(obj map[string]any, key, table string, cfg buildConfig) string {
	if value := str(obj, key); value != "" {
		return value
	}
	id, ok := obj[key+"Id"]
	if !ok || cfg.resolver == nil {
		return ""
	}
	if name, found := cfg.resolver(table, id); found {
		return strings.TrimSpace(name)
	}
	return ""
}

func asObject(value any) map[string]any {
	obj, _ := value.(map[string]any)
	return obj
}

func asList(value any) []any {
	list, _ := value.([]any)
	return list
}

func str(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

func number(obj map[string]any, key string) float64 {
	if obj == nil {
		return 0
	}
	switch v := obj[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func nonNegativeInt(obj map[string]any, key string) int {
	n := int(number(obj, key))
	if n < 0 {
		return 0
	}
	return n
}
