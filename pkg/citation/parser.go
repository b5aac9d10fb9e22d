package citation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/juristika/zakon/pkg/extract"
)

// The parser is an ordered list of matcher/constructor pairs; the first
// pattern that matches wins. There is no scoring or ambiguity resolution:
// order is the disambiguation policy, so keep more specific shapes first.

var (
	// Court decisions: constitutional-court file numbers ("U-I-123/15",
	// "Up-120/97") and court-of-record decisions ("VSRS sodba II Ips 24/2018").
	caseLawPattern = regexp.MustCompile(
		`(?:(?:VSRS|VSL|VSM|VSK|VSC|UPRS)\s+(?:[Ss]odba\s+|[Ss]klep\s+)?[IVX]+\s+(?:Ips|Cp|Cpg|Kp|Pdp|U)\s+\d+/\d{2,4}(?:-\d+)?|\b(?:U-I|Up|Mp|Rm)-\d+/\d{2,4}(?:-\d+)?)`)

	// Official gazette: "Uradni list RS, št. 63/13", "Ur. l. RS, št. 94/07".
	gazettePattern = regexp.MustCompile(
		`(?i)(?:uradni\s+list|ur\.?\s*l\.?)\s*(?:rs)?\s*,?\s*(?:št\.?\s*)?(\d+/\d+(?:-[A-Za-z0-9]+)?)`)

	// Foreign instruments, new style with the community code in parentheses
	// ("Direktiva (EU) 2016/680") and old style with a trailing community
	// suffix ("Direktiva 95/46/ES").
	directiveNewPattern = regexp.MustCompile(`(?i)direktiv\w*\s+\((EU|ES|EGS)\)\s+(?:št\.?\s*)?(\d+)/(\d+)`)
	directiveOldPattern = regexp.MustCompile(`(?i)direktiv\w*\s+(?:št\.?\s*)?(\d+)/(\d+)/(EU|ES|EGS)`)

	regulationNewPattern = regexp.MustCompile(`(?i)uredb\w*\s+\((EU|ES|EGS)\)\s+(?:št\.?\s*)?(\d+)/(\d+)`)
	regulationOldPattern = regexp.MustCompile(`(?i)uredb\w*\s+(?:št\.?\s*)?(\d+)/(\d+)/(EU|ES|EGS)`)

	// Statute provisions: "14. člen ZGD-1", "2. odstavek 14. člena ZGD-1"
	// and the reversed "ZGD-1, 14. člen". Article identifiers keep an
	// optional lower-case letter suffix ("3a") and stay strings.
	articleForwardPattern = regexp.MustCompile(
		`(?:(\d+)\.\s*odst(?:\.|avek|avka|avku)?\s+)?(\d+[a-zčšž]?)\.\s*člen(?:a|u|om|i|ih)?\s+([A-ZČŠŽ][A-Za-z0-9ČŠŽčšž-]*)`)
	articleReversedPattern = regexp.MustCompile(
		`([A-ZČŠŽ][A-Za-z0-9ČŠŽčšž-]*)\s*,\s*(?:(\d+)\.\s*odst(?:\.|avek|avka|avku)?\s+)?(\d+[a-zčšž]?)\.\s*člen`)
)

// Parse classifies and decomposes a raw citation string into a typed
// reference. A string no pattern recognizes yields an invalid result, never
// an error: absence of structure is an expected outcome.
func Parse(raw string) ParsedCitation {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParsedCitation{Raw: raw, Error: "empty citation string"}
	}

	if m := caseLawPattern.FindString(trimmed); m != "" {
		caseNumber := strings.TrimSpace(m)
		return ParsedCitation{
			Raw:        raw,
			Kind:       KindCase,
			DocumentID: caseNumber,
			CaseNumber: caseNumber,
			Valid:      true,
		}
	}

	if m := gazettePattern.FindStringSubmatch(trimmed); m != nil {
		return ParsedCitation{
			Raw:        raw,
			Kind:       KindStatute,
			DocumentID: "gazette:" + m[1],
			Valid:      true,
		}
	}

	if cit, ok := matchForeign(raw, trimmed, KindDirective, directiveNewPattern, directiveOldPattern); ok {
		return cit
	}
	if cit, ok := matchForeign(raw, trimmed, KindRegulation, regulationNewPattern, regulationOldPattern); ok {
		return cit
	}

	if m := articleForwardPattern.FindStringSubmatch(trimmed); m != nil {
		return statuteCitation(raw, m[3], m[2], m[1])
	}
	if m := articleReversedPattern.FindStringSubmatch(trimmed); m != nil {
		return statuteCitation(raw, m[1], m[3], m[2])
	}

	return ParsedCitation{
		Raw:   raw,
		Error: fmt.Sprintf("unrecognized citation format: %q", trimmed),
	}
}

// matchForeign tries the new-style pattern (community code before the
// year/number pair) and then the old-style pattern (trailing suffix).
func matchForeign(raw, trimmed string, kind Kind, newStyle, oldStyle *regexp.Regexp) (ParsedCitation, bool) {
	var first, second string
	if m := newStyle.FindStringSubmatch(trimmed); m != nil {
		first, second = m[2], m[3]
	} else if m := oldStyle.FindStringSubmatch(trimmed); m != nil {
		first, second = m[1], m[2]
	} else {
		return ParsedCitation{}, false
	}

	year, number := extract.SplitYearNumber(atoi(first), atoi(second))
	return ParsedCitation{
		Raw:        raw,
		Kind:       kind,
		DocumentID: fmt.Sprintf("%s:%d/%d", kind, year, number),
		Valid:      true,
	}, true
}

// statuteCitation resolves the abbreviation against the register table,
// falling back to the lower-cased abbreviation for unknown statutes.
func statuteCitation(raw, abbr, article, paragraph string) ParsedCitation {
	documentID, known := RegisterID(abbr)
	if !known {
		documentID = strings.ToLower(abbr)
	}
	return ParsedCitation{
		Raw:          raw,
		Kind:         KindStatute,
		DocumentID:   documentID,
		Article:      article,
		Paragraph:    paragraph,
		Abbreviation: abbr,
		Valid:        true,
	}
}

// atoi parses a base-10 integer, returning 0 for malformed input. Captures
// feeding it are digit-only by construction.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
