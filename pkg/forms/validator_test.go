package forms_test

import (
	"strings"
	"testing"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
	"github.com/Kongudocument-57316/document-creator-sub003/pkg/forms"
)

func validForm() deed.RawForm {
	return deed.RawForm{
		"meta": map[string]any{
			"documentNumber": "1234/2025",
		},
		"parties": []any{
			map[string]any{"name": "முருகன்", "role": "buyer"},
			map[string]any{"name": "வள்ளி", "role": "seller"},
		},
		"payment": map[string]any{
			"method": "cash",
			"amount": 250000.0,
		},
	}
}

func TestValidator_AcceptsEveryDocumentType(t *testing.T) {
	validator, err := forms.NewValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	for _, docType := range deed.DocumentTypes() {
		if err := validator.Validate(docType, validForm()); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", docType, err)
		}
	}
}

func TestValidator_RejectsBadPayloads(t *testing.T) {
	validator, err := forms.NewValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(deed.RawForm)
	}{
		{
			name: "missing payment",
			mutate: func(raw deed.RawForm) {
				delete(raw, "payment")
			},
		},
		{
			name: "unknown payment method",
			mutate: func(raw deed.RawForm) {
				raw["payment"] = map[string]any{"method": "barter"}
			},
		},
		{
			name: "negative amount",
			mutate: func(raw deed.RawForm) {
				raw["payment"] = map[string]any{"method": "cash", "amount": -1.0}
			},
		},
		{
			name: "party without name",
			mutate: func(raw deed.RawForm) {
				raw["parties"] = []any{map[string]any{"role": "buyer"}}
			},
		},
		{
			name: "unknown role",
			mutate: func(raw deed.RawForm) {
				raw["parties"] = []any{map[string]any{"name": "x", "role": "guarantor"}}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validForm()
			tc.mutate(raw)
			err := validator.Validate(deed.SaleDeed, raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "saleDeed form data invalid") {
				t.Fatalf("error = %q, want the document-type prefix", err)
			}
		})
	}
}

func TestValidator_UnknownDocumentType(t *testing.T) {
	validator, err := forms.NewValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	if err := validator.Validate("leaseDeed", validForm()); err == nil {
		t.Fatal("expected unknown document type error")
	}
}
