// Package store is the SQLite adapter behind the resolution engine. The
// engine treats it as a single long-lived read-only handle; the write path
// exists only for corpus ingestion and test fixtures.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/juristika/zakon/pkg/types"
)

// Store wraps the corpus database. Safe for concurrent use; the engine
// never writes through it.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the corpus database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite",
		path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentByID looks up a document by its corpus identifier. Returns
// (nil, nil) when absent.
func (s *Store) DocumentByID(ctx context.Context, id string) (*types.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, type, title, status, date_issued, date_in_force, description
		FROM documents WHERE id = ?`, id)

	var doc types.Document
	err := row.Scan(&doc.ID, &doc.Type, &doc.Title, &doc.Status,
		&doc.DateIssued, &doc.DateInForce, &doc.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying document %q: %w", id, err)
	}
	return &doc, nil
}

// ProvisionByRef looks up the current text of a provision. Returns
// (nil, nil) when absent.
func (s *Store) ProvisionByRef(ctx context.Context, docID, ref string) (*types.Provision, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT document_id, ref, chapter, section, title, text
		FROM provisions WHERE document_id = ? AND ref = ?`, docID, ref)

	var prov types.Provision
	err := row.Scan(&prov.DocumentID, &prov.Ref, &prov.Chapter,
		&prov.Section, &prov.Title, &prov.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying provision %s/%s: %w", docID, ref, err)
	}
	return &prov, nil
}

// VersionAt returns the version with the latest valid_from whose half-open
// interval contains date. Empty bounds are unbounded.
func (s *Store) VersionAt(ctx context.Context, docID, ref, date string) (*types.ProvisionVersion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT document_id, ref, text, valid_from, valid_to
		FROM provision_versions
		WHERE document_id = ? AND ref = ?
		  AND (valid_from = '' OR valid_from <= ?)
		  AND (valid_to = '' OR valid_to > ?)
		ORDER BY valid_from DESC
		LIMIT 1`, docID, ref, date, date)
	return scanVersion(row, docID, ref)
}

// FirstVersionAfter returns the version with the earliest valid_from
// strictly after date.
func (s *Store) FirstVersionAfter(ctx context.Context, docID, ref, date string) (*types.ProvisionVersion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT document_id, ref, text, valid_from, valid_to
		FROM provision_versions
		WHERE document_id = ? AND ref = ?
		  AND valid_from != '' AND valid_from > ?
		ORDER BY valid_from ASC
		LIMIT 1`, docID, ref, date)
	return scanVersion(row, docID, ref)
}

func scanVersion(row *sql.Row, docID, ref string) (*types.ProvisionVersion, error) {
	var v types.ProvisionVersion
	err := row.Scan(&v.DocumentID, &v.Ref, &v.Text, &v.ValidFrom, &v.ValidTo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying versions of %s/%s: %w", docID, ref, err)
	}
	return &v, nil
}

// AmendingReferences returns cross-references of type amended_by targeting
// the given provision, or the whole document when the edge carries no
// target provision.
func (s *Store) AmendingReferences(ctx context.Context, docID, ref string) ([]types.CrossReference, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_doc, source_provision, target_doc, target_provision, type
		FROM cross_references
		WHERE target_doc = ? AND (target_provision = ? OR target_provision = '')
		  AND type = ?`, docID, ref, string(types.CrossRefAmendedBy))
	if err != nil {
		return nil, fmt.Errorf("querying amendment references for %s/%s: %w", docID, ref, err)
	}
	defer rows.Close()

	var refs []types.CrossReference
	for rows.Next() {
		var cr types.CrossReference
		if err := rows.Scan(&cr.SourceDoc, &cr.SourceProvision,
			&cr.TargetDoc, &cr.TargetProvision, &cr.Type); err != nil {
			return nil, fmt.Errorf("scanning cross-reference: %w", err)
		}
		refs = append(refs, cr)
	}
	return refs, rows.Err()
}

// SearchProvisions runs a full-text query over provision bodies. Quoting
// the query keeps FTS5 operators in user input inert.
func (s *Store) SearchProvisions(ctx context.Context, query string, limit int) ([]types.Provision, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.document_id, p.ref, p.chapter, p.section, p.title, p.text
		FROM provision_fts f
		JOIN provisions p ON p.document_id = f.document_id AND p.ref = f.ref
		WHERE provision_fts MATCH '"' || replace(?, '"', '""') || '"'
		ORDER BY rank
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching provisions for %q: %w", query, err)
	}
	defer rows.Close()

	var provisions []types.Provision
	for rows.Next() {
		var p types.Provision
		if err := rows.Scan(&p.DocumentID, &p.Ref, &p.Chapter,
			&p.Section, &p.Title, &p.Text); err != nil {
			return nil, fmt.Errorf("scanning provision: %w", err)
		}
		provisions = append(provisions, p)
	}
	return provisions, rows.Err()
}
