package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Kongudocument-57316/document-creator-sub003/pkg/deed"
)

// Store implements ReferenceStore and RecordStore over SQLite.
type Store struct {
	db *sql.DB
}

var (
	_ ReferenceStore = (*Store)(nil)
	_ RecordStore    = (*Store)(nil)
)

// Open opens a SQLite database at the given DSN and configures it for
// production use: WAL mode, foreign keys enabled, busy timeout of 5s.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("records: open database: %w", err)
	}

	// Single connection for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("records: exec %q: %w", p, err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

var migrations = [][]string{
	{
		`CREATE TABLE districts (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE taluks (
			id INTEGER PRIMARY KEY,
			district_id INTEGER NOT NULL REFERENCES districts(id),
			name TEXT NOT NULL
		)`,
		`CREATE TABLE villages (
			id INTEGER PRIMARY KEY,
			taluk_id INTEGER NOT NULL REFERENCES taluks(id),
			name TEXT NOT NULL
		)`,
		`CREATE TABLE offices (
			id INTEGER PRIMARY KEY,
			district_id INTEGER NOT NULL REFERENCES districts(id),
			name TEXT NOT NULL
		)`,
		`CREATE TABLE document_types (
			id INTEGER PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL
		)`,
	},
	{
		`CREATE TABLE records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			document_type TEXT NOT NULL,
			form BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX idx_records_document_type ON records(document_type)`,
	},
}

// Migrate runs all pending schema migrations inside a transaction. Migrations
// are tracked in the schema_migrations table by version number.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("records: create schema_migrations: %w", err)
	}

	for i, stmts := range migrations {
		version := i + 1

		var exists int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("records: check migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("records: begin migration %d: %w", version, err)
		}

		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				_ = tx.Rollback()
				return fmt.Errorf("records: migration %d: %w", version, err)
			}
		}

		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("records: record migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("records: commit migration %d: %w", version, err)
		}
	}

	return nil
}

func (s *Store) Districts(ctx context.Context) ([]District, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM districts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("records: list districts: %w", err)
	}
	defer rows.Close()

	var out []District
	for rows.Next() {
		var d District
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("records: scan district: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) Taluks(ctx context.Context, districtID int64) ([]Taluk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, district_id, name FROM taluks WHERE district_id = ? ORDER BY name`, districtID)
	if err != nil {
		return nil, fmt.Errorf("records: list taluks: %w", err)
	}
	defer rows.Close()

	var out []Taluk
	for rows.Next() {
		var t Taluk
		if err := rows.Scan(&t.ID, &t.DistrictID, &t.Name); err != nil {
			return nil, fmt.Errorf("records: scan taluk: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Villages(ctx context.Context, talukID int64) ([]Village, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, taluk_id, name FROM villages WHERE taluk_id = ? ORDER BY name`, talukID)
	if err != nil {
		return nil, fmt.Errorf("records: list villages: %w", err)
	}
	defer rows.Close()

	var out []Village
	for rows.Next() {
		var v Village
		if err := rows.Scan(&v.ID, &v.TalukID, &v.Name); err != nil {
			return nil, fmt.Errorf("records: scan village: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) Offices(ctx context.Context, districtID int64) ([]Office, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, district_id, name FROM offices WHERE district_id = ? ORDER BY name`, districtID)
	if err != nil {
		return nil, fmt.Errorf("records: list offices: %w", err)
	}
	defer rows.Close()

	var out []Office
	for rows.Next() {
		var o Office
		if err := rows.Scan(&o.ID, &o.DistrictID, &o.Name); err != nil {
			return nil, fmt.Errorf("records: scan office: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// referenceTables maps resolver table names to their SQL table. Only tables
// listed here are reachable from form lookups.
var referenceTables = map[string]string{
	"districts":     "districts",
	"taluks":        "taluks",
	"villages":      "villages",
	"offices":       "offices",
	"documentTypes": "document_types",
}

// Resolver returns a deed.Resolver backed by the reference tables. Lookups
// that miss return ok=false so the builder falls back to inline values.
func (s *Store) Resolver() deed.Resolver {
	return func(table string, id any) (string, bool) {
		sqlTable, ok := referenceTables[table]
		if !ok {
			return "", false
		}
		var name string
		err := s.db.QueryRow(`SELECT name FROM `+sqlTable+` WHERE id = ?`, id).Scan(&name)
		if err != nil {
			return "", false
		}
		return name, true
	}
}

func (s *Store) SaveRecord(ctx context.Context, docType deed.DocumentType, form []byte) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO records (document_type, form) VALUES (?, ?)`, string(docType), form)
	if err != nil {
		return 0, fmt.Errorf("records: save record: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("records: save record id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateRecord(ctx context.Context, id int64, form []byte) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE records SET form = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, form, id)
	if err != nil {
		return fmt.Errorf("records: update record %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("records: update record %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("records: record %d not found", id)
	}
	return nil
}

func (s *Store) GetRecord(ctx context.Context, id int64) (Record, error) {
	var r Record
	var docType string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, document_type, form, created_at, updated_at FROM records WHERE id = ?`, id).
		Scan(&r.ID, &docType, &r.Form, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("records: record %d not found", id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("records: get record %d: %w", id, err)
	}
	r.DocumentType = deed.DocumentType(docType)
	return r, nil
}

func (s *Store) ListRecords(ctx context.Context, docType deed.DocumentType) ([]Record, error) {
	query := `SELECT id, document_type, form, created_at, updated_at FROM records ORDER BY id`
	args := []any{}
	if docType != "" {
		query = `SELECT id, document_type, form, created_at, updated_at FROM records WHERE document_type = ? ORDER BY id`
		args = append(args, string(docType))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("records: list records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var dt string
		if err := rows.Scan(&r.ID, &dt, &r.Form, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("records: scan record: %w", err)
		}
		r.DocumentType = deed.DocumentType(dt)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("records: delete record %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("records: delete record %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("records: record %d not found", id)
	}
	return nil
}
