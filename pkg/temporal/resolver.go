// Package temporal resolves statutory provisions as they stood at an
// arbitrary date and answers in-force and implementation-currency questions
// on top of that resolution.
package temporal

import (
	"context"
	"fmt"

	"github.com/juristika/zakon/pkg/dates"
	"github.com/juristika/zakon/pkg/types"
)

// VersionStatus classifies the temporal position of a resolved provision.
type VersionStatus string

const (
	StatusCurrent    VersionStatus = "current"
	StatusHistorical VersionStatus = "historical"
	StatusFuture     VersionStatus = "future"
	StatusNotFound   VersionStatus = "not_found"
)

// VersionSource is the read-only store access the resolver needs. Version
// lookups return (nil, nil) when no row matches. All date parameters are
// ISO YYYY-MM-DD.
type VersionSource interface {
	DocumentByID(ctx context.Context, id string) (*types.Document, error)
	ProvisionByRef(ctx context.Context, docID, ref string) (*types.Provision, error)

	// VersionAt returns the version with the latest valid_from whose
	// interval [valid_from, valid_to) contains date; open bounds are
	// treated as unbounded.
	VersionAt(ctx context.Context, docID, ref, date string) (*types.ProvisionVersion, error)

	// FirstVersionAfter returns the version with the earliest valid_from
	// strictly after date.
	FirstVersionAfter(ctx context.Context, docID, ref, date string) (*types.ProvisionVersion, error)

	// AmendingReferences returns cross-references of type amended_by
	// targeting the given provision.
	AmendingReferences(ctx context.Context, docID, ref string) ([]types.CrossReference, error)
}

// AmendmentRecord is one amendment edge attached to a resolved provision.
// EffectiveDate stays empty: the amendment extractor can derive dates from
// text, but that output is not wired into cross-reference rows yet.
type AmendmentRecord struct {
	AmendingDoc       string `json:"amending_doc"`
	AmendingProvision string `json:"amending_provision,omitempty"`
	EffectiveDate     string `json:"effective_date,omitempty"`
}

// ResolvedProvision is the outcome of a point-in-time lookup. Text is empty
// when Status is not_found.
type ResolvedProvision struct {
	DocumentID string            `json:"document_id"`
	Ref        string            `json:"ref"`
	Text       string            `json:"text"`
	ValidFrom  string            `json:"valid_from,omitempty"`
	ValidTo    string            `json:"valid_to,omitempty"`
	Status     VersionStatus     `json:"status"`
	Amendments []AmendmentRecord `json:"amendments,omitempty"`
}

// ResolveAt selects the historical version of (docID, ref) applicable on
// date and classifies its temporal status. An empty date means today. When
// includeAmendments is set, amended_by edges targeting the provision are
// attached as amendment records.
func ResolveAt(ctx context.Context, src VersionSource, docID, ref, date string, includeAmendments bool) (*ResolvedProvision, error) {
	queryDate, err := dates.Normalize(date)
	if err != nil {
		return nil, err
	}
	if queryDate == "" {
		queryDate = dates.Today()
	}

	resolved, err := resolveVersion(ctx, src, docID, ref, queryDate)
	if err != nil {
		return nil, err
	}

	if includeAmendments && resolved.Status != StatusNotFound {
		edges, err := src.AmendingReferences(ctx, docID, ref)
		if err != nil {
			return nil, fmt.Errorf("loading amendment references for %s/%s: %w", docID, ref, err)
		}
		for _, edge := range edges {
			resolved.Amendments = append(resolved.Amendments, AmendmentRecord{
				AmendingDoc:       edge.SourceDoc,
				AmendingProvision: edge.SourceProvision,
			})
		}
	}

	return resolved, nil
}

// AmendmentHistory returns the amendment edges targeting a provision
// without resolving any version text.
func AmendmentHistory(ctx context.Context, src VersionSource, docID, ref string) ([]AmendmentRecord, error) {
	edges, err := src.AmendingReferences(ctx, docID, ref)
	if err != nil {
		return nil, fmt.Errorf("loading amendment references for %s/%s: %w", docID, ref, err)
	}
	records := make([]AmendmentRecord, 0, len(edges))
	for _, edge := range edges {
		records = append(records, AmendmentRecord{
			AmendingDoc:       edge.SourceDoc,
			AmendingProvision: edge.SourceProvision,
		})
	}
	return records, nil
}

// resolveVersion runs the two-step interval query: the containing version
// first, then the earliest later one.
func resolveVersion(ctx context.Context, src VersionSource, docID, ref, queryDate string) (*ResolvedProvision, error) {
	version, err := src.VersionAt(ctx, docID, ref, queryDate)
	if err != nil {
		return nil, fmt.Errorf("resolving %s/%s at %s: %w", docID, ref, queryDate, err)
	}
	if version != nil {
		return &ResolvedProvision{
			DocumentID: version.DocumentID,
			Ref:        version.Ref,
			Text:       version.Text,
			ValidFrom:  version.ValidFrom,
			ValidTo:    version.ValidTo,
			Status:     classify(*version),
		}, nil
	}

	future, err := src.FirstVersionAfter(ctx, docID, ref, queryDate)
	if err != nil {
		return nil, fmt.Errorf("resolving %s/%s at %s: %w", docID, ref, queryDate, err)
	}
	if future != nil {
		return &ResolvedProvision{
			DocumentID: future.DocumentID,
			Ref:        future.Ref,
			Text:       future.Text,
			ValidFrom:  future.ValidFrom,
			ValidTo:    future.ValidTo,
			Status:     StatusFuture,
		}, nil
	}

	return &ResolvedProvision{
		DocumentID: docID,
		Ref:        ref,
		Status:     StatusNotFound,
	}, nil
}

// classify compares today against the version's interval: an upper bound
// that has already passed means historical, anything else still counts as
// current. The future status is only reachable through the later-version
// branch of resolveVersion.
func classify(version types.ProvisionVersion) VersionStatus {
	if version.ValidTo != "" && version.ValidTo <= dates.Today() {
		return StatusHistorical
	}
	return StatusCurrent
}
