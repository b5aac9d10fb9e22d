package extract

import (
	"strings"
	"testing"
)

func TestExtractAmendmentKinds(t *testing.T) {
	cases := []struct {
		name string
		text string
		kind AmendmentKind
	}{
		{"modified", "Člen je bil spremenjen (Uradni list RS, št. 63/13).", AmendmentModified},
		{"repealed", "Določba je razveljavljena (Ur. l. RS, št. 40/12).", AmendmentRepealed},
		{"repealed phrase", "Ta člen preneha veljati (Ur. l. RS, št. 21/18).", AmendmentRepealed},
		{"deleted", "Drugi odstavek je črtan (Ur. l. RS, št. 17/15).", AmendmentDeleted},
		{"added", "Odstavek je bil dodan (Ur. l. RS, št. 92/21).", AmendmentAdded},
		{"new article", "nov člen, uveljavljen z novelo (Ur. l. RS, št. 30/18)", AmendmentNew},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			refs := ExtractAmendments(tc.text)
			if len(refs) != 1 {
				t.Fatalf("got %d references, want 1: %+v", len(refs), refs)
			}
			if refs[0].Kind != tc.kind {
				t.Errorf("kind = %q, want %q", refs[0].Kind, tc.kind)
			}
			if refs[0].GazetteRef == "" {
				t.Errorf("gazette reference not captured from %q", tc.text)
			}
		})
	}
}

func TestAmendmentKeywordInsideWordIgnored(t *testing.T) {
	cases := []string{
		"Besedilo tega člena ostane nespremenjeno.",
		"Obnova člena se financira iz proračuna.",
		"Prečrtano besedilo ne velja.",
	}

	for _, text := range cases {
		if refs := ExtractAmendments(text); len(refs) != 0 {
			t.Errorf("ExtractAmendments(%q) = %+v, want none (keyword inside a longer word)", text, refs)
		}
	}
}

func TestAmendmentGazetteDeduplication(t *testing.T) {
	text := "spremenjen (Ur. l. RS, št. 63/13); besedilo spremenjeno (Ur. l. RS, št. 63/13)"
	refs := ExtractAmendments(text)
	if len(refs) != 1 {
		t.Fatalf("two notes citing the same gazette number should collapse, got %d: %+v", len(refs), refs)
	}
	if refs[0].GazetteRef != "63/13" {
		t.Errorf("gazette = %q, want 63/13", refs[0].GazetteRef)
	}
}

func TestAmendmentDistinctGazettesKept(t *testing.T) {
	text := "spremenjen (Ur. l. RS, št. 63/13) in nato spremenjen (Ur. l. RS, št. 92/21)"
	refs := ExtractAmendments(text)
	if len(refs) != 2 {
		t.Fatalf("got %d references, want 2: %+v", len(refs), refs)
	}
}

func TestAmendmentPosition(t *testing.T) {
	header := "spremenjen (Ur. l. RS, št. 63/13)\n" + strings.Repeat("Besedilo člena. ", 20)
	refs := ExtractAmendments(header)
	if len(refs) != 1 || refs[0].Position != PositionHeader {
		t.Fatalf("early-offset match should be header, got %+v", refs)
	}

	inline := strings.Repeat("Besedilo člena sega daleč v vsebino. ", 5) +
		"Določba je bila spremenjena (Ur. l. RS, št. 63/13) in velja naprej."
	refs = ExtractAmendments(inline)
	if len(refs) != 1 || refs[0].Position != PositionInline {
		t.Fatalf("mid-text match on a long line should be inline, got %+v", refs)
	}

	suffix := strings.Repeat("Besedilo člena sega daleč v vsebino. ", 5) + "\nčrtan"
	refs = ExtractAmendments(suffix)
	if len(refs) != 1 || refs[0].Position != PositionSuffix {
		t.Fatalf("short trailing line should be suffix, got %+v", refs)
	}
}

func TestExtractEffectiveDate(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected string
	}{
		{"numeric", "velja od 15.6.2020", "2020-06-15"},
		{"numeric spaced", "velja od 1. 10. 2019 dalje", "2019-10-01"},
		{"month name", "uporablja se od 15. junija 2020", "2020-06-15"},
		{"month name declined", "od 3. marca 2021", "2021-03-03"},
		{"unknown month", "od 3. xyzmeseca 2021", ""},
		{"no date", "spremenjen brez datuma", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractEffectiveDate(tc.text); got != tc.expected {
				t.Errorf("ExtractEffectiveDate(%q) = %q, want %q", tc.text, got, tc.expected)
			}
		})
	}
}

func TestIsValidGazetteRef(t *testing.T) {
	cases := []struct {
		ref   string
		valid bool
	}{
		{"63/13", true},
		{"30/18-ZKZaš", true},
		{"abc", false},
		{"", false},
		{"Ur. l. RS, št. 63/13", false},
	}

	for _, tc := range cases {
		if got := IsValidGazetteRef(tc.ref); got != tc.valid {
			t.Errorf("IsValidGazetteRef(%q) = %v, want %v", tc.ref, got, tc.valid)
		}
	}
}

func TestNormalizeGazetteRef(t *testing.T) {
	cases := []struct {
		ref      string
		expected string
	}{
		{"Ur. l. 63/13", "Ur. l. RS, št. 63/13"},
		{"Uradni list RS, št. 63/13", "Ur. l. RS, št. 63/13"},
		{"63/13", "Ur. l. RS, št. 63/13"},
		{"30/18-ZKZaš", "Ur. l. RS, št. 30/18-ZKZaš"},
		{"brez številke", ""},
	}

	for _, tc := range cases {
		if got := NormalizeGazetteRef(tc.ref); got != tc.expected {
			t.Errorf("NormalizeGazetteRef(%q) = %q, want %q", tc.ref, got, tc.expected)
		}
	}
}
