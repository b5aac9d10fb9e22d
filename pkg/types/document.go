// Package types provides the core domain types for the statutory corpus:
// documents, provisions, historical provision versions and cross-reference
// edges between them.
package types

// DocumentType classifies the kind of legal document in the corpus.
type DocumentType string

const (
	DocumentTypeStatute             DocumentType = "statute"
	DocumentTypeConstitution        DocumentType = "constitution"
	DocumentTypeParliamentaryRecord DocumentType = "parliamentary_record"
	DocumentTypeRegulation          DocumentType = "regulation"
	DocumentTypeDecree              DocumentType = "decree"
	DocumentTypeCourtDecision       DocumentType = "court_decision"
)

// DocumentStatus tracks the life stage of a document. Transitions are driven
// by ingestion; the resolution engine only reads them.
type DocumentStatus string

const (
	StatusInForce  DocumentStatus = "in_force"
	StatusAmended  DocumentStatus = "amended"
	StatusRepealed DocumentStatus = "repealed"
	StatusPending  DocumentStatus = "pending"
)

// Document is a corpus-level legal document. ID is corpus-unique (the
// register identifier, e.g. "ZAKO4291", or a synthesized identifier such as
// "directive:2016/680" for foreign instruments tracked alongside statutes).
type Document struct {
	ID          string         `json:"id"`
	Type        DocumentType   `json:"type"`
	Title       string         `json:"title"`
	Status      DocumentStatus `json:"status"`
	DateIssued  string         `json:"date_issued,omitempty"`   // ISO YYYY-MM-DD
	DateInForce string         `json:"date_in_force,omitempty"` // ISO YYYY-MM-DD
	Description string         `json:"description,omitempty"`
}
