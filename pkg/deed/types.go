// Package deed defines the canonical in-memory model for one legal document
// instance: parties, property schedule, payment, prior-title citation, and
// registration metadata. A Document is built once per render from raw form
// data and never mutated afterwards, so rendering stays a pure function of
// the model.
package deed

import (
	"fmt"
	"strings"
)

// DocumentType identifies one of the supported deed families. Each type has
// its own form field set and prose template but shares this model.
type DocumentType string

const (
	SaleDeed         DocumentType = "saleDeed"
	SaleAgreement    DocumentType = "saleAgreement"
	MortgageDocument DocumentType = "mortgageDocument"
	SettlementDeed   DocumentType = "settlementDeed"
	PartitionRelease DocumentType = "partitionRelease"
)

// DocumentTypes lists every supported type in a stable order.
func DocumentTypes() []DocumentType {
	return []DocumentType{SaleDeed, SaleAgreement, MortgageDocument, SettlementDeed, PartitionRelease}
}

// ParseDocumentType validates a raw document-type string. Unknown values are
// programming errors and fail loudly at build time.
func ParseDocumentType(raw string) (DocumentType, error) {
	dt := DocumentType(strings.TrimSpace(raw))
	for _, known := range DocumentTypes() {
		if dt == known {
			return dt, nil
		}
	}
	return "", fmt.Errorf("deed: unknown document type %q", raw)
}

// Role classifies a party's function within the document.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleSeller    Role = "seller"
	RoleDonor     Role = "donor"
	RoleRecipient Role = "recipient"
	RoleWitness   Role = "witness"
	RoleTypist    Role = "typist"
)

func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.TrimSpace(raw)); r {
	case RoleBuyer, RoleSeller, RoleDonor, RoleRecipient, RoleWitness, RoleTypist:
		return r, nil
	default:
		return "", fmt.Errorf("deed: unknown party role %q", raw)
	}
}

// RelationType names the relationship used to identify a party ("S/o", "W/o"
// style recitals).
type RelationType string

const (
	RelationFather   RelationType = "father"
	RelationMother   RelationType = "mother"
	RelationSon      RelationType = "son"
	RelationDaughter RelationType = "daughter"
	RelationBrother  RelationType = "brother"
	RelationSister   RelationType = "sister"
	RelationHusband  RelationType = "husband"
	RelationWife     RelationType = "wife"
	RelationGuardian RelationType = "guardian"
	RelationOther    RelationType = "other"
)

func ParseRelationType(raw string) (RelationType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	switch r := RelationType(trimmed); r {
	case RelationFather, RelationMother, RelationSon, RelationDaughter,
		RelationBrother, RelationSister, RelationHusband, RelationWife,
		RelationGuardian, RelationOther:
		return r, nil
	default:
		return "", fmt.Errorf("deed: unknown relation type %q", raw)
	}
}

// tamilRelationWords maps relation types to the possessive recital word used
// in Tamil prose ("… என்பவரின் மகன்").
var tamilRelationWords = map[RelationType]string{
	RelationFather:   "தந்தை",
	RelationMother:   "தாய்",
	RelationSon:      "மகன்",
	RelationDaughter: "மகள்",
	RelationBrother:  "சகோதரர்",
	RelationSister:   "சகோதரி",
	RelationHusband:  "கணவர்",
	RelationWife:     "மனைவி",
	RelationGuardian: "பாதுகாவலர்",
	RelationOther:    "உறவினர்",
}

// TamilWord returns the Tamil recital word for the relation, or empty when
// the relation is unset.
func (r RelationType) TamilWord() string {
	return tamilRelationWords[r]
}

// Address is a structured postal address. Every segment is optional; Display
// composes the populated segments in order, joined with ", ".
type Address struct {
	DoorNumber string
	Line1      string
	Line2      string
	Line3      string
	Taluk      string
	District   string
	PostalCode string
}

func (a Address) Display() string {
	segments := []string{a.DoorNumber, a.Line1, a.Line2, a.Line3, a.Taluk, a.District, a.PostalCode}
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ", ")
}

// Party is one named participant. Field ordering within a role list is
// insertion order and significant: clause generation uses the first party of
// a role (the "primary" party), never an aggregate.
type Party struct {
	Name         string
	Role         Role
	RelationType RelationType
	RelationName string
	Age          int
	GovernmentID string
	Phone        string
	Address      Address
}

// PropertyDescriptor describes one parcel in the property schedule. The
// location hierarchy resolves each level independently; absent levels render
// as empty strings, never placeholders.
type PropertyDescriptor struct {
	SurveyNumber      string
	SubDivisionNumber string
	Village           string
	Taluk             string
	District          string
	State             string
	Area              string
	AreaUnit          string
	DeclaredValue     float64
	Details           string
}

// Location composes the populated hierarchy levels for display.
func (p PropertyDescriptor) Location() string {
	segments := []string{p.Village, p.Taluk, p.District, p.State}
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ", ")
}

// PaymentMethod enumerates how consideration was transferred.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCheque      PaymentMethod = "cheque"
	PaymentDemandDraft PaymentMethod = "demandDraft"
	PaymentUPI         PaymentMethod = "upi"
	PaymentNEFT        PaymentMethod = "neft"
	PaymentRTGS        PaymentMethod = "rtgs"
	PaymentIMPS        PaymentMethod = "imps"
)

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.TrimSpace(raw)); m {
	case PaymentCash, PaymentCheque, PaymentDemandDraft, PaymentUPI,
		PaymentNEFT, PaymentRTGS, PaymentIMPS:
		return m, nil
	default:
		return "", fmt.Errorf("deed: unknown payment method %q", raw)
	}
}

// Electronic reports whether the method is one of the four electronic
// transfers, which additionally require payee bank details.
func (m PaymentMethod) Electronic() bool {
	switch m {
	case PaymentUPI, PaymentNEFT, PaymentRTGS, PaymentIMPS:
		return true
	default:
		return false
	}
}

// BankDetails identifies one side of a non-cash transfer.
type BankDetails struct {
	BankName      string
	Branch        string
	AccountType   string
	AccountNumber string
}

func (b BankDetails) IsZero() bool {
	return b.BankName == "" && b.Branch == "" && b.AccountType == "" && b.AccountNumber == ""
}

// PaymentClause describes the consideration transfer. AmountInWords is never
// stored on the model: the substitution engine recomputes it from Amount at
// render time so an edited amount can never go stale.
type PaymentClause struct {
	Method          PaymentMethod
	Amount          float64
	ReferenceNumber string
	TransactionDate string
	PayerBank       BankDetails
	PayeeBank       BankDetails
}

// CopyType distinguishes an original prior instrument from a certified copy.
type CopyType string

const (
	CopyOriginal  CopyType = "original"
	CopyCertified CopyType = "certifiedCopy"
)

func ParseCopyType(raw string) (CopyType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	switch c := CopyType(trimmed); c {
	case CopyOriginal, CopyCertified:
		return c, nil
	default:
		return "", fmt.Errorf("deed: unknown copy type %q", raw)
	}
}

// PriorDocumentReference cites the earlier registered instrument that
// establishes the signer's title. A nil reference omits the clause entirely.
type PriorDocumentReference struct {
	DocumentNumber   string
	DocumentDate     string
	BookNumber       string
	RegistrationYear string
	DocumentType     string
	RegistrarOffice  string
	CopyType         CopyType
}

// DocumentMeta carries registration-book metadata for the instrument itself.
type DocumentMeta struct {
	DocumentNumber     string
	RegistrationDate   string
	SubRegistrarOffice string
	BookNumber         string
	SubmissionType     string
}

// Document is the aggregate root fed to the substitution engine. Witnesses
// and the typist are kept apart from the transacting parties because their
// blocks render separately.
type Document struct {
	Type          DocumentType
	Meta          DocumentMeta
	Parties       []Party
	Properties    []PropertyDescriptor
	Payment       PaymentClause
	PriorDocument *PriorDocumentReference
	Witnesses     []Party
	Typist        *Party
}

// PartiesByRole returns the ordered sub-list of parties holding role.
func (d Document) PartiesByRole(role Role) []Party {
	var out []Party
	for _, p := range d.Parties {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out
}

// PrimaryParty returns the first party holding role, when one exists.
func (d Document) PrimaryParty(role Role) (Party, bool) {
	for _, p := range d.Parties {
		if p.Role == role {
			return p, true
		}
	}
	return Party{}, false
}
