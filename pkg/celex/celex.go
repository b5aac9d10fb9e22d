// Package celex builds CELEX identifiers for EU instruments referenced by
// the corpus, so extracted references can be linked to EUR-Lex.
package celex

import (
	"fmt"

	"github.com/juristika/zakon/pkg/extract"
)

// Sector is the CELEX sector code. Only sector 3 (legislation) appears in
// extractor output.
type Sector string

// SectorLegislation covers directives and regulations.
const SectorLegislation Sector = "3"

// TypeCode is the CELEX document-type indicator within a sector.
type TypeCode string

const (
	TypeRegulation TypeCode = "R"
	TypeDirective  TypeCode = "L"
)

// Number is a structured CELEX identifier.
// Format: {Sector}{Year}{TypeCode}{PaddedNumber}, e.g. "32016R0679".
type Number struct {
	Sector   Sector   `json:"sector"`
	Year     int      `json:"year"`
	TypeCode TypeCode `json:"type_code"`
	Number   int      `json:"number"`
}

// String renders the canonical CELEX string with the number padded to four
// digits.
func (n Number) String() string {
	return fmt.Sprintf("%s%04d%s%04d", n.Sector, n.Year, n.TypeCode, n.Number)
}

// FromForeignReference builds a CELEX number for an extracted EU reference.
// The extractor already expands two-digit years, so the year arrives
// four-digit.
func FromForeignReference(ref extract.ForeignReference) (Number, error) {
	var typeCode TypeCode
	switch ref.Type {
	case extract.InstrumentRegulation:
		typeCode = TypeRegulation
	case extract.InstrumentDirective:
		typeCode = TypeDirective
	default:
		return Number{}, fmt.Errorf("unsupported instrument type %q", ref.Type)
	}
	if ref.Year < 1000 {
		return Number{}, fmt.Errorf("implausible instrument year %d", ref.Year)
	}
	if ref.Number <= 0 {
		return Number{}, fmt.Errorf("missing instrument number")
	}

	return Number{
		Sector:   SectorLegislation,
		Year:     ref.Year,
		TypeCode: typeCode,
		Number:   ref.Number,
	}, nil
}
