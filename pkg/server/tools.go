package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/juristika/zakon/pkg/citation"
	"github.com/juristika/zakon/pkg/extract"
	"github.com/juristika/zakon/pkg/temporal"
	"github.com/juristika/zakon/pkg/types"
)

// CitationInput is the input for the citation tools.
type CitationInput struct {
	Citation string `json:"citation" jsonschema:"the raw citation string, e.g. '14. člen ZGD-1'"`
}

// FormatInput adds a rendering style to a citation.
type FormatInput struct {
	Citation string `json:"citation" jsonschema:"the raw citation string"`
	Style    string `json:"style,omitempty" jsonschema:"rendering style: full, short or pinpoint (default full)"`
}

// FormatOutput carries the rendered citation.
type FormatOutput struct {
	Formatted string `json:"formatted"`
}

// TextInput is the input for the extraction tools.
type TextInput struct {
	Text string `json:"text" jsonschema:"provision text to scan"`
}

// CrossRefsOutput lists extracted intra-corpus references.
type CrossRefsOutput struct {
	References []extract.CrossRef `json:"references"`
	Count      int                `json:"count"`
}

// ForeignRefsOutput lists extracted EU-instrument references.
type ForeignRefsOutput struct {
	References []extract.ForeignReference `json:"references"`
	Count      int                        `json:"count"`
}

// AmendmentsOutput lists extracted amendment annotations.
type AmendmentsOutput struct {
	Amendments []extract.AmendmentReference `json:"amendments"`
	Count      int                          `json:"count"`
}

// ProvisionAtInput identifies a provision and a query date.
type ProvisionAtInput struct {
	DocumentID        string `json:"document_id" jsonschema:"corpus document identifier"`
	Provision         string `json:"provision" jsonschema:"article reference, e.g. '14' or '3a'"`
	Date              string `json:"date,omitempty" jsonschema:"ISO date YYYY-MM-DD; empty means today"`
	IncludeAmendments bool   `json:"include_amendments,omitempty" jsonschema:"attach amended_by edges to the result"`
}

// CurrencyInput identifies an EU instrument.
type CurrencyInput struct {
	Type   string `json:"type" jsonschema:"instrument type: directive or regulation"`
	Year   int    `json:"year" jsonschema:"publication year"`
	Number int    `json:"number" jsonschema:"sequence number"`
}

// SearchInput is the input for full-text provision search.
type SearchInput struct {
	Query string `json:"query" jsonschema:"full-text query over provision bodies"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
}

// SearchOutput lists matched provisions.
type SearchOutput struct {
	Provisions []types.Provision `json:"provisions"`
	Count      int               `json:"count"`
}

// registerTools registers every engine operation as a named tool.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_citation",
		Description: "Parse a legal citation string into a typed reference",
	}, s.handleParseCitation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "format_citation",
		Description: "Render a citation in full, short or pinpoint style",
	}, s.handleFormatCitation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_citation",
		Description: "Check a citation against the corpus and report warnings",
	}, s.handleValidateCitation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_cross_references",
		Description: "Extract article cross-references from provision text",
	}, s.handleExtractCrossRefs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_eu_references",
		Description: "Extract EU directive/regulation references from provision text",
	}, s.handleExtractForeignRefs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_amendment_references",
		Description: "Extract amendment annotations from provision text",
	}, s.handleExtractAmendments)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_provision_at_date",
		Description: "Resolve a provision's text as it stood on a given date",
	}, s.handleProvisionAt)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_provision_in_force",
		Description: "Check whether a provision was in force on a given date",
	}, s.handleProvisionInForce)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_implementation_currency",
		Description: "Check whether the national implementation of an EU instrument is current",
	}, s.handleImplementationCurrency)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_provisions",
		Description: "Full-text search over provision bodies",
	}, s.handleSearchProvisions)
}

func (s *Server) handleParseCitation(_ context.Context, _ *mcp.CallToolRequest, input CitationInput) (*mcp.CallToolResult, citation.ParsedCitation, error) {
	return nil, citation.Parse(input.Citation), nil
}

func (s *Server) handleFormatCitation(_ context.Context, _ *mcp.CallToolRequest, input FormatInput) (*mcp.CallToolResult, FormatOutput, error) {
	style := citation.Style(input.Style)
	if style == "" {
		style = citation.StyleFull
	}
	return nil, FormatOutput{Formatted: citation.Format(input.Citation, style)}, nil
}

func (s *Server) handleValidateCitation(ctx context.Context, _ *mcp.CallToolRequest, input CitationInput) (*mcp.CallToolResult, citation.ValidationResult, error) {
	result, err := citation.Validate(ctx, s.store, input.Citation)
	if err != nil {
		s.log.Warn("citation validation failed", zap.Error(err))
		return nil, citation.ValidationResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleExtractCrossRefs(_ context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, CrossRefsOutput, error) {
	refs := extract.ExtractCrossRefs(input.Text)
	return nil, CrossRefsOutput{References: refs, Count: len(refs)}, nil
}

func (s *Server) handleExtractForeignRefs(_ context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, ForeignRefsOutput, error) {
	refs := extract.ExtractForeignRefs(input.Text)
	return nil, ForeignRefsOutput{References: refs, Count: len(refs)}, nil
}

func (s *Server) handleExtractAmendments(_ context.Context, _ *mcp.CallToolRequest, input TextInput) (*mcp.CallToolResult, AmendmentsOutput, error) {
	refs := extract.ExtractAmendments(input.Text)
	return nil, AmendmentsOutput{Amendments: refs, Count: len(refs)}, nil
}

func (s *Server) handleProvisionAt(ctx context.Context, _ *mcp.CallToolRequest, input ProvisionAtInput) (*mcp.CallToolResult, temporal.ResolvedProvision, error) {
	resolved, err := temporal.ResolveAt(ctx, s.store, input.DocumentID, input.Provision, input.Date, input.IncludeAmendments)
	if err != nil {
		s.log.Warn("provision resolution failed", zap.Error(err))
		return nil, temporal.ResolvedProvision{}, err
	}
	return nil, *resolved, nil
}

func (s *Server) handleProvisionInForce(ctx context.Context, _ *mcp.CallToolRequest, input ProvisionAtInput) (*mcp.CallToolResult, temporal.ForceStatus, error) {
	status, err := temporal.ProvisionInForce(ctx, s.store, input.DocumentID, input.Provision, input.Date)
	if err != nil {
		s.log.Warn("in-force check failed", zap.Error(err))
		return nil, temporal.ForceStatus{}, err
	}
	return nil, *status, nil
}

func (s *Server) handleImplementationCurrency(ctx context.Context, _ *mcp.CallToolRequest, input CurrencyInput) (*mcp.CallToolResult, temporal.CurrencyReport, error) {
	instrumentType := extract.InstrumentType(input.Type)
	report, err := temporal.ImplementationCurrency(ctx, s.store, instrumentType, input.Year, input.Number)
	if err != nil {
		s.log.Warn("implementation currency check failed", zap.Error(err))
		return nil, temporal.CurrencyReport{}, err
	}
	return nil, *report, nil
}

func (s *Server) handleSearchProvisions(ctx context.Context, _ *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	provisions, err := s.store.SearchProvisions(ctx, input.Query, input.Limit)
	if err != nil {
		s.log.Warn("provision search failed", zap.Error(err))
		return nil, SearchOutput{}, err
	}
	return nil, SearchOutput{Provisions: provisions, Count: len(provisions)}, nil
}
