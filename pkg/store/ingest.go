package store

import (
	"context"
	"fmt"

	"github.com/juristika/zakon/pkg/types"
)

// The ingest path. The resolution engine never calls these; they serve the
// corpus-loading CLI commands and test fixtures.

// PutDocument inserts or replaces a document.
func (s *Store) PutDocument(ctx context.Context, doc types.Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, type, title, status, date_issued, date_in_force, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type, title = excluded.title, status = excluded.status,
			date_issued = excluded.date_issued, date_in_force = excluded.date_in_force,
			description = excluded.description`,
		doc.ID, string(doc.Type), doc.Title, string(doc.Status),
		doc.DateIssued, doc.DateInForce, doc.Description)
	if err != nil {
		return fmt.Errorf("storing document %q: %w", doc.ID, err)
	}
	return nil
}

// PutProvision inserts or replaces a provision's current text and refreshes
// its full-text index row.
func (s *Store) PutProvision(ctx context.Context, prov types.Provision) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO provisions (document_id, ref, chapter, section, title, text)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document_id, ref) DO UPDATE SET
			chapter = excluded.chapter, section = excluded.section,
			title = excluded.title, text = excluded.text`,
		prov.DocumentID, prov.Ref, prov.Chapter, prov.Section, prov.Title, prov.Text); err != nil {
		return fmt.Errorf("storing provision %s/%s: %w", prov.DocumentID, prov.Ref, err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM provision_fts WHERE document_id = ? AND ref = ?`,
		prov.DocumentID, prov.Ref); err != nil {
		return fmt.Errorf("clearing provision index %s/%s: %w", prov.DocumentID, prov.Ref, err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO provision_fts (document_id, ref, text) VALUES (?, ?, ?)`,
		prov.DocumentID, prov.Ref, prov.Text); err != nil {
		return fmt.Errorf("indexing provision %s/%s: %w", prov.DocumentID, prov.Ref, err)
	}

	return tx.Commit()
}

// PutVersion inserts or replaces one historical version. Interval overlap
// is the ingestion pipeline's invariant to keep; the store only persists.
func (s *Store) PutVersion(ctx context.Context, v types.ProvisionVersion) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO provision_versions (document_id, ref, text, valid_from, valid_to)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(document_id, ref, valid_from) DO UPDATE SET
			text = excluded.text, valid_to = excluded.valid_to`,
		v.DocumentID, v.Ref, v.Text, v.ValidFrom, v.ValidTo)
	if err != nil {
		return fmt.Errorf("storing version %s/%s@%s: %w", v.DocumentID, v.Ref, v.ValidFrom, err)
	}
	return nil
}

// PutCrossReference inserts a cross-reference edge; duplicates are ignored.
func (s *Store) PutCrossReference(ctx context.Context, cr types.CrossReference) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO cross_references
			(source_doc, source_provision, target_doc, target_provision, type)
		VALUES (?, ?, ?, ?, ?)`,
		cr.SourceDoc, cr.SourceProvision, cr.TargetDoc, cr.TargetProvision, string(cr.Type))
	if err != nil {
		return fmt.Errorf("storing cross-reference %s -> %s: %w", cr.SourceDoc, cr.TargetDoc, err)
	}
	return nil
}
