package celex

import (
	"testing"

	"github.com/juristika/zakon/pkg/extract"
)

func TestFromForeignReference(t *testing.T) {
	cases := []struct {
		name     string
		ref      extract.ForeignReference
		expected string
	}{
		{
			"GDPR regulation",
			extract.ForeignReference{Type: extract.InstrumentRegulation, Year: 2016, Number: 679},
			"32016R0679",
		},
		{
			"data protection directive",
			extract.ForeignReference{Type: extract.InstrumentDirective, Year: 1995, Number: 46},
			"31995L0046",
		},
		{
			"short number pads to four digits",
			extract.ForeignReference{Type: extract.InstrumentDirective, Year: 2019, Number: 1},
			"32019L0001",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := FromForeignReference(tc.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := n.String(); got != tc.expected {
				t.Errorf("CELEX = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestFromForeignReferenceErrors(t *testing.T) {
	cases := []struct {
		name string
		ref  extract.ForeignReference
	}{
		{"unknown type", extract.ForeignReference{Type: "treaty", Year: 2016, Number: 1}},
		{"implausible year", extract.ForeignReference{Type: extract.InstrumentDirective, Year: 95, Number: 46}},
		{"missing number", extract.ForeignReference{Type: extract.InstrumentRegulation, Year: 2016}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromForeignReference(tc.ref); err == nil {
				t.Errorf("expected error for %+v", tc.ref)
			}
		})
	}
}

func TestExtractedReferenceRoundTrip(t *testing.T) {
	refs := extract.ExtractForeignRefs("Uredba (EU) 2016/679 o varstvu podatkov")
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1", len(refs))
	}
	n, err := FromForeignReference(refs[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "32016R0679" {
		t.Errorf("CELEX = %q, want 32016R0679", n.String())
	}
}
