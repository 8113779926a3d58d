// Package records persists deed form submissions and the registration
// reference data (districts, taluks, villages, registrar offices) that form
// inputs refer to by ID.
package records

import (
	"context"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// District is a top-level registration region.
type District struct {
	ID   int64
	Name string
}

// Taluk is a subdivision of a district.
type Taluk struct {
	ID         int64
	DistrictID int64
	Name       string
}

// Village is a subdivision of a taluk.
type Village struct {
	ID      int64
	TalukID int64
	Name    string
}

// Office is a sub-registrar office within a district.
type Office struct {
	ID         int64
	DistrictID int64
	Name       string
}

// Record is a saved form submission. Form holds the raw submission JSON so
// a record can be reloaded, edited and regenerated later.
type Record struct {
	ID           int64
	DocumentType deed.DocumentType
	Form         []byte
	CreatedAt    string
	UpdatedAt    string
}

// ReferenceStore reads the registration reference tables.
type ReferenceStore interface {
	Districts(ctx context.Context) ([]District, error)
	Taluks(ctx context.Context, districtID int64) ([]Taluk, error)
	Villages(ctx context.Context, talukID int64) ([]Village, error)
	Offices(ctx context.Context, districtID int64) ([]Office, error)
	// Resolver bridges the reference tables into the form builder's
	// ID-to-name lookups.
	Resolver() deed.Resolver
}

// RecordStore persists and reloads form submissions.
type RecordStore interface {
	SaveRecord(ctx context.Context, docType deed.DocumentType, form []byte) (int64, error)
	UpdateRecord(ctx context.Context, id int64, form []byte) error
	GetRecord(ctx context.Context, id int64) (Record, error)
	ListRecords(ctx context.Context, docType deed.DocumentType) ([]Record, error)
	DeleteRecord(ctx context.Context, id int64) error
}
