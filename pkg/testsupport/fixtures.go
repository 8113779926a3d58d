// Package testsupport provides golden-file helpers and shared deed fixtures
// for contract tests across the module.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// SampleSaleDeed returns a fully populated sale deed document: two buyers,
// one seller, two witnesses, a cheque payment and a prior document
// reference. Renderer and orchestrator tests share it so cross-target
// assertions compare the same source model.
func SampleSaleDeed() deed.Document {
	return deed.Document{
		Type: deed.SaleDeed,
		Meta: deed.DocumentMeta{
			DocumentNumber:     "1234/2025",
			RegistrationDate:   "12-03-2025",
			SubRegistrarOffice: "கோயம்புத்தூர் சார்பதிவாளர் அலுவலகம்",
			BookNumber:         "1",
			SubmissionType:     "நேரில்",
		},
		Parties: []deed.Party{
			{
				Name:         "குமார்",
				Role:         deed.RoleBuyer,
				RelationType: deed.RelationFather,
				RelationName: "கந்தசாமி",
				Age:          42,
				GovernmentID: "ABCDE1234F",
				Address:      deed.Address{DoorNumber: "12/4", Line1: "காந்தி தெரு", District: "கோயம்புத்தூர்"},
			},
			{
				Name:         "ரவி",
				Role:         deed.RoleBuyer,
				RelationType: deed.RelationFather,
				RelationName: "கந்தசாமி",
				Age:          38,
				Address:      deed.Address{DoorNumber: "12/4", Line1: "காந்தி தெரு", District: "கோயம்புத்தூர்"},
			},
			{
				Name:         "வள்ளி",
				Role:         deed.RoleSeller,
				RelationType: deed.RelationHusband,
				RelationName: "முருகன்",
				Age:          55,
				Address:      deed.Address{DoorNumber: "7", Line1: "பஜார் தெரு", District: "கோயம்புத்தூர்"},
			},
		},
		Properties: []deed.PropertyDescriptor{
			{
				SurveyNumber:  "117/2B",
				Village:       "அன்னூர்",
				Taluk:         "பொள்ளாச்சி",
				District:      "கோயம்புத்தூர்",
				State:         "தமிழ்நாடு",
				Area:          "2400",
				AreaUnit:      "சதுர அடி",
				DeclaredValue: 1500000,
				Details:       "வடக்கு எல்லை ஓடை, தெற்கு எல்லை சாலை.",
			},
		},
		Payment: deed.PaymentClause{
			Method:          deed.PaymentCheque,
			Amount:          1500000,
			ReferenceNumber: "553412",
			TransactionDate: "10-03-2025",
			PayerBank: deed.BankDetails{
				BankName:      "இந்தியன் வங்கி",
				Branch:        "கோயம்புத்தூர்",
				AccountType:   "சேமிப்பு",
				AccountNumber: "1234567890",
			},
		},
		PriorDocument: &deed.PriorDocumentReference{
			DocumentNumber:   "887/2001",
			DocumentDate:     "05-06-2001",
			BookNumber:       "1",
			RegistrationYear: "2001",
			DocumentType:     "கிரைய ஆவணம்",
			RegistrarOffice:  "கோயம்புத்தூர் சார்பதிவாளர் அலுவலகம்",
			CopyType:         deed.CopyOriginal,
		},
		Witnesses: []deed.Party{
			{Name: "ராமு", Role: deed.RoleWitness, Age: 45},
			{Name: "சோமு", Role: deed.RoleWitness, Age: 50},
		},
		Typist: &deed.Party{Name: "தட்டச்சர் குமார்", Role: deed.RoleTypist},
	}
}

// SampleRawForm returns form input equivalent to a minimal sale deed. All
// references are inline so no resolver is required.
func SampleRawForm() deed.RawForm {
	return deed.RawForm{
		"meta": map[string]any{
			"documentNumber":   "1234/2025",
			"registrationDate": "12-03-2025",
			"bookNumber":       "1",
		},
		"parties": []any{
			map[string]any{
				"name":         "குமார்",
				"role":         "buyer",
				"relationType": "father",
				"relationName": "கந்தசாமி",
				"age":          42,
			},
			map[string]any{
				"name": "வள்ளி",
				"role": "seller",
			},
			map[string]any{
				"name": "ராமு",
				"role": "witness",
			},
		},
		"properties": []any{
			map[string]any{
				"surveyNumber":  "117/2B",
				"village":       "அன்னூர்",
				"district":      "கோயம்புத்தூர்",
				"area":          "2400",
				"areaUnit":      "சதுர அடி",
				"declaredValue": 1500000,
			},
		},
		"payment": map[string]any{
			"method": "cash",
			"amount": 1500000,
		},
	}
}
