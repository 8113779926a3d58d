package records

import (
	"context"
	"fmt"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

type districtDef struct {
	name    string
	taluks  []talukDef
	offices []string
}

type talukDef struct {
	name     string
	villages []string
}

var defaultDistricts = []districtDef{
	{
		name: "கோயம்புத்தூர்",
		taluks: []talukDef{
			{name: "பொள்ளாச்சி", villages: []string{"அன்னூர்", "கிணத்துக்கடவு"}},
			{name: "மேட்டுப்பாளையம்", villages: []string{"கரமடை", "சீலியூர்"}},
		},
		offices: []string{"கோயம்புத்தூர் சார்பதிவாளர் அலுவலகம்", "பொள்ளாச்சி சார்பதிவாளர் அலுவலகம்"},
	},
	{
		name: "திருப்பூர்",
		taluks: []talukDef{
			{name: "அவினாசி", villages: []string{"கொளத்தூர்", "சேவூர்"}},
		},
		offices: []string{"அவினாசி சார்பதிவாளர் அலுவலகம்"},
	},
	{
		name: "ஈரோடு",
		taluks: []talukDef{
			{name: "பெருந்துறை", villages: []string{"செங்கப்பள்ளி", "விஜயமங்கலம்"}},
		},
		offices: []string{"ஈரோடு சார்பதிவாளர் அலுவலகம்"},
	},
}

var documentTypeNames = map[deed.DocumentType]string{
	deed.SaleDeed:         "கிரைய ஆவணம்",
	deed.SaleAgreement:    "கிரைய ஒப்பந்தம்",
	deed.MortgageDocument: "அடமான ஆவணம்",
	deed.SettlementDeed:   "தான செட்டில்மென்ட் ஆவணம்",
	deed.PartitionRelease: "பாக பிரிவினை விடுதலை ஆவணம்",
}

// Seed inserts the default reference data if the tables are still empty.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM districts`).Scan(&count); err != nil {
		return fmt.Errorf("records: count districts: %w", err)
	}
	if count == 0 {
		for _, dd := range defaultDistricts {
			result, err := s.db.ExecContext(ctx, `INSERT INTO districts (name) VALUES (?)`, dd.name)
			if err != nil {
				return fmt.Errorf("records: insert district %s: %w", dd.name, err)
			}
			districtID, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("records: district id: %w", err)
			}

			for _, td := range dd.taluks {
				result, err := s.db.ExecContext(ctx,
					`INSERT INTO taluks (district_id, name) VALUES (?, ?)`, districtID, td.name)
				if err != nil {
					return fmt.Errorf("records: insert taluk %s: %w", td.name, err)
				}
				talukID, err := result.LastInsertId()
				if err != nil {
					return fmt.Errorf("records: taluk id: %w", err)
				}
				for _, village := range td.villages {
					if _, err := s.db.ExecContext(ctx,
						`INSERT INTO villages (taluk_id, name) VALUES (?, ?)`, talukID, village); err != nil {
						return fmt.Errorf("records: insert village %s: %w", village, err)
					}
				}
			}

			for _, office := range dd.offices {
				if _, err := s.db.ExecContext(ctx,
					`INSERT INTO offices (district_id, name) VALUES (?, ?)`, districtID, office); err != nil {
					return fmt.Errorf("records: insert office %s: %w", office, err)
				}
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM document_types`).Scan(&count); err != nil {
		return fmt.Errorf("records: count document types: %w", err)
	}
	if count == 0 {
		for _, docType := range deed.DocumentTypes() {
			if _, err := s.db.ExecContext(ctx,
				`INSERT INTO document_types (code, name) VALUES (?, ?)`,
				string(docType), documentTypeNames[docType]); err != nil {
				return fmt.Errorf("records: insert document type %s: %w", docType, err)
			}
		}
	}

	return nil
}
