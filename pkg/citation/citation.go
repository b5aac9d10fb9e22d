// Package citation parses free-text Slovenian legal citations into typed
// references, renders them back into canonical display strings, and
// validates them against the statute store.
package citation

// Kind classifies the reference a citation resolves to.
type Kind string

const (
	KindStatute    Kind = "statute"
	KindCase       Kind = "case"
	KindDirective  Kind = "directive"
	KindRegulation Kind = "regulation"
)

// ParsedCitation is the result of parsing one raw citation string. It is
// always derived per call and never persisted.
type ParsedCitation struct {
	Raw          string `json:"raw"`
	Kind         Kind   `json:"kind,omitempty"`
	DocumentID   string `json:"document_id,omitempty"`
	Article      string `json:"article,omitempty"`
	Paragraph    string `json:"paragraph,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	CaseNumber   string `json:"case_number,omitempty"`
	Valid        bool   `json:"valid"`
	Error        string `json:"error,omitempty"`
}

// ValidationResult reports whether a cited document and provision exist in
// the corpus, with human-readable warnings in Slovenian.
type ValidationResult struct {
	Citation        ParsedCitation `json:"citation"`
	DocumentExists  bool           `json:"document_exists"`
	ProvisionExists bool           `json:"provision_exists"`
	Warnings        []string       `json:"warnings,omitempty"`
}
