package citation

import (
	"context"
	"fmt"

	"github.com/juristika/zakon/pkg/types"
)

// DocumentSource is the read-only store access the validator needs. Lookups
// return (nil, nil) when the entity does not exist; absence is an expected
// outcome, not an error.
type DocumentSource interface {
	DocumentByID(ctx context.Context, id string) (*types.Document, error)
	ProvisionByRef(ctx context.Context, docID, ref string) (*types.Provision, error)
}

// Validate parses a raw citation and confirms the cited document and
// provision against the store. An unparseable citation short-circuits with
// the parse error as the sole warning. Repealed or amended documents
// validate with a warning naming the document and its status.
func Validate(ctx context.Context, src DocumentSource, raw string) (*ValidationResult, error) {
	parsed := Parse(raw)
	if !parsed.Valid {
		return &ValidationResult{
			Citation: parsed,
			Warnings: []string{parsed.Error},
		}, nil
	}

	result := &ValidationResult{Citation: parsed}

	doc, err := src.DocumentByID(ctx, parsed.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("looking up document %q: %w", parsed.DocumentID, err)
	}
	if doc == nil {
		return result, nil
	}
	result.DocumentExists = true

	name := doc.Title
	if name == "" {
		name = doc.ID
	}
	switch doc.Status {
	case types.StatusRepealed:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Predpis %s je razveljavljen in ne velja več.", name))
	case types.StatusAmended:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Predpis %s je bil spremenjen; preverite veljavno besedilo.", name))
	}

	if parsed.Article == "" {
		result.ProvisionExists = result.DocumentExists
		return result, nil
	}

	prov, err := src.ProvisionByRef(ctx, parsed.DocumentID, parsed.Article)
	if err != nil {
		return nil, fmt.Errorf("looking up provision %s/%s: %w", parsed.DocumentID, parsed.Article, err)
	}
	result.ProvisionExists = prov != nil

	return result, nil
}
