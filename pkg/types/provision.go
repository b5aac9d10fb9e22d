package types

// Provision is an article-level unit of a document. Ref is the article
// number as printed ("14", "3a"), unique within its document. The current
// table always holds the latest known text.
type Provision struct {
	DocumentID string `json:"document_id"`
	Ref        string `json:"ref"`
	Chapter    string `json:"chapter,omitempty"`
	Section    string `json:"section,omitempty"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
}

// ProvisionVersion is one historical text of a provision with its half-open
// validity interval [ValidFrom, ValidTo). Either bound may be empty, meaning
// unbounded. Intervals for one (document, ref) pair never overlap.
type ProvisionVersion struct {
	DocumentID string `json:"document_id"`
	Ref        string `json:"ref"`
	Text       string `json:"text"`
	ValidFrom  string `json:"valid_from,omitempty"` // ISO YYYY-MM-DD, "" = -inf
	ValidTo    string `json:"valid_to,omitempty"`   // ISO YYYY-MM-DD, "" = +inf
}

// ValidAt reports whether the version's interval contains the given ISO
// date. ISO dates compare correctly as strings.
func (v ProvisionVersion) ValidAt(date string) bool {
	if v.ValidFrom != "" && date < v.ValidFrom {
		return false
	}
	if v.ValidTo != "" && date >= v.ValidTo {
		return false
	}
	return true
}

// CrossRefType classifies a cross-reference edge.
type CrossRefType string

const (
	CrossRefReference CrossRefType = "reference"
	CrossRefAmendedBy CrossRefType = "amended_by"
	CrossRefImplement CrossRefType = "implements"
	CrossRefSeeAlso   CrossRefType = "see_also"
)

// CrossReference is a directed edge between provisions. Provision fields may
// be empty when the edge targets or originates from a whole document.
type CrossReference struct {
	SourceDoc       string       `json:"source_doc"`
	SourceProvision string       `json:"source_provision,omitempty"`
	TargetDoc       string       `json:"target_doc"`
	TargetProvision string       `json:"target_provision,omitempty"`
	Type            CrossRefType `json:"type"`
}
