package temporal

import (
	"context"
	"fmt"

	"github.com/juristika/zakon/pkg/dates"
	"github.com/juristika/zakon/pkg/extract"
	"github.com/juristika/zakon/pkg/types"
)

// ForceStatus answers whether a provision was in force on a given date.
type ForceStatus struct {
	DocumentID string        `json:"document_id"`
	Ref        string        `json:"ref"`
	Date       string        `json:"date"`
	InForce    bool          `json:"in_force"`
	Status     VersionStatus `json:"status"`
	Reason     string        `json:"reason,omitempty"`
}

// SearchSource extends VersionSource with the store's full-text search,
// which the implementation-currency check uses to find citing provisions.
type SearchSource interface {
	VersionSource
	SearchProvisions(ctx context.Context, query string, limit int) ([]types.Provision, error)
}

// ProvisionInForce combines document status with version resolution: a
// repealed document is never in force, otherwise the provision is in force
// exactly when a version interval contains the date and has not yet closed.
func ProvisionInForce(ctx context.Context, src VersionSource, docID, ref, date string) (*ForceStatus, error) {
	queryDate, err := dates.Normalize(date)
	if err != nil {
		return nil, err
	}
	if queryDate == "" {
		queryDate = dates.Today()
	}

	status := &ForceStatus{DocumentID: docID, Ref: ref, Date: queryDate}

	doc, err := src.DocumentByID(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("looking up document %q: %w", docID, err)
	}
	if doc == nil {
		status.Status = StatusNotFound
		status.Reason = "dokument ne obstaja v korpusu"
		return status, nil
	}
	if doc.Status == types.StatusRepealed {
		if repealDate := dates.ExtractRepealDate(doc.Description); repealDate == "" || repealDate <= queryDate {
			status.Status = StatusHistorical
			status.Reason = "predpis je razveljavljen"
			return status, nil
		}
	}

	resolved, err := resolveVersion(ctx, src, docID, ref, queryDate)
	if err != nil {
		return nil, err
	}
	status.Status = resolved.Status
	switch resolved.Status {
	case StatusCurrent, StatusHistorical:
		// A containing interval existed on the query date.
		status.InForce = true
	case StatusFuture:
		status.Reason = "določba na ta dan še ni veljala"
	case StatusNotFound:
		status.Reason = "določba ne obstaja"
	}
	return status, nil
}

// ImplementingProvision is one national provision found to implement a
// foreign instrument, with its current temporal status.
type ImplementingProvision struct {
	DocumentID string        `json:"document_id"`
	Ref        string        `json:"ref"`
	Relation   string        `json:"relation"`
	Status     VersionStatus `json:"status"`
}

// CurrencyReport summarizes whether the national implementation of a
// foreign instrument is current.
type CurrencyReport struct {
	Instrument string                  `json:"instrument"`
	Current    bool                    `json:"current"`
	Provisions []ImplementingProvision `json:"provisions"`
}

// searchLimit bounds the full-text candidate set per currency check.
const searchLimit = 50

// ImplementationCurrency finds provisions citing the given instrument via
// full-text search, keeps those whose surrounding text classifies as an
// implements relation, and resolves each at today. The implementation is
// current when at least one implementing provision resolves as current.
// Old-style citations write the year in two digits ("Direktiva 95/46/ES"),
// so the search runs over both the expanded and the two-digit form.
func ImplementationCurrency(ctx context.Context, src SearchSource, instrumentType extract.InstrumentType, year, number int) (*CurrencyReport, error) {
	report := &CurrencyReport{
		Instrument: fmt.Sprintf("%s:%d/%d", instrumentType, year, number),
	}

	queries := []string{fmt.Sprintf("%d/%d", year, number)}
	if short, ok := shortYear(year); ok {
		queries = append(queries, fmt.Sprintf("%02d/%d", short, number))
	}

	seenProv := make(map[string]bool)
	var candidates []types.Provision
	for _, query := range queries {
		hits, err := src.SearchProvisions(ctx, query, searchLimit)
		if err != nil {
			return nil, fmt.Errorf("searching provisions for %s: %w", report.Instrument, err)
		}
		for _, prov := range hits {
			key := prov.DocumentID + "/" + prov.Ref
			if seenProv[key] {
				continue
			}
			seenProv[key] = true
			candidates = append(candidates, prov)
		}
	}

	for _, prov := range candidates {
		for _, ref := range extract.ExtractForeignRefs(prov.Text) {
			if ref.Type != instrumentType || ref.Year != year || ref.Number != number {
				continue
			}
			if ref.Relation != extract.RelationImplements {
				continue
			}

			resolved, err := resolveVersion(ctx, src, prov.DocumentID, prov.Ref, dates.Today())
			if err != nil {
				return nil, err
			}
			report.Provisions = append(report.Provisions, ImplementingProvision{
				DocumentID: prov.DocumentID,
				Ref:        prov.Ref,
				Relation:   string(ref.Relation),
				Status:     resolved.Status,
			})
			if resolved.Status == StatusCurrent {
				report.Current = true
			}
			break
		}
	}

	return report, nil
}

// shortYear returns the two-digit year the extractor's 50-pivot expansion
// would have produced the given year from; false outside the pivot's range.
func shortYear(year int) (int, bool) {
	if year >= 1950 && year <= 1999 {
		return year - 1900, true
	}
	if year >= 2000 && year <= 2049 {
		return year - 2000, true
	}
	return 0, false
}
