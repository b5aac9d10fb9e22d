package extract

import "testing"

func TestExtractForeignRegulationModern(t *testing.T) {
	refs := ExtractForeignRefs("Uredba (EU) 2016/679")
	if len(refs) != 1 {
		t.Fatalf("got %d references, want exactly 1: %+v", len(refs), refs)
	}
	ref := refs[0]
	if ref.Type != InstrumentRegulation {
		t.Errorf("type = %q, want regulation", ref.Type)
	}
	if ref.Year != 2016 || ref.Number != 679 {
		t.Errorf("year/number = %d/%d, want 2016/679", ref.Year, ref.Number)
	}
	if ref.Community != "EU" {
		t.Errorf("community = %q, want EU", ref.Community)
	}
	if ref.Relation != RelationReferences {
		t.Errorf("relation = %q, want references (no classifying keyword)", ref.Relation)
	}
}

func TestExtractForeignDirectiveOldStyle(t *testing.T) {
	refs := ExtractForeignRefs("skladno z Direktivo 95/46/ES o varstvu posameznikov")
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
	}
	ref := refs[0]
	if ref.Type != InstrumentDirective {
		t.Errorf("type = %q, want directive", ref.Type)
	}
	if ref.Year != 1995 || ref.Number != 46 {
		t.Errorf("year/number = %d/%d, want 1995/46", ref.Year, ref.Number)
	}
	if ref.Community != "ES" {
		t.Errorf("community = %q, want ES", ref.Community)
	}
}

func TestExtractForeignWithArticle(t *testing.T) {
	refs := ExtractForeignRefs("v skladu s 13. členom Direktive (EU) 2016/680")
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
	}
	if refs[0].Article != "13" {
		t.Errorf("article = %q, want 13", refs[0].Article)
	}
}

func TestRelationClassification(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected RelationType
	}{
		{
			"implements",
			"Ta zakon prenaša v slovenski pravni red Direktivo (EU) 2016/680.",
			RelationImplements,
		},
		{
			"supplements",
			"Ta člen dopolnjuje Uredbo (EU) 2016/679.",
			RelationSupplements,
		},
		{
			"applies",
			"Za postopek se uporablja Uredba (EU) 2016/679.",
			RelationApplies,
		},
		{
			"implements wins over applies",
			"Zakon prenaša in se uporablja za Direktivo (EU) 2016/680.",
			RelationImplements,
		},
		{
			"no keyword",
			"Glej Uredbo (EU) 2016/679.",
			RelationReferences,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refs := ExtractForeignRefs(tc.text)
			if len(refs) != 1 {
				t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
			}
			if refs[0].Relation != tc.expected {
				t.Errorf("relation = %q, want %q", refs[0].Relation, tc.expected)
			}
		})
	}
}

func TestForeignDeduplication(t *testing.T) {
	// Same instrument twice, no new article information: one entry.
	refs := ExtractForeignRefs("Uredba (EU) 2016/679 velja; glej Uredbo (EU) 2016/679.")
	if len(refs) != 1 {
		t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
	}

	// A different article on the repeat mention yields a separate entry.
	refs = ExtractForeignRefs("Uredba (EU) 2016/679 in 6. člen Uredbe (EU) 2016/679")
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2 (distinct article keys): %+v", len(refs), refs)
	}
}

func TestSplitYearNumber(t *testing.T) {
	cases := []struct {
		name         string
		first        int
		second       int
		year, number int
	}{
		{"four-digit year first", 2016, 679, 2016, 679},
		{"number first", 45, 2001, 2001, 45},
		{"two-digit year expands to 1900s", 95, 46, 1995, 46},
		{"two-digit year expands to 2000s", 16, 679, 2016, 679},
		{"fallback assumes first is year", 3000, 5000, 3000, 5000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			year, number := SplitYearNumber(tc.first, tc.second)
			if year != tc.year || number != tc.number {
				t.Errorf("SplitYearNumber(%d, %d) = (%d, %d), want (%d, %d)",
					tc.first, tc.second, year, number, tc.year, tc.number)
			}
		})
	}
}
