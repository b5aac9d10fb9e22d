package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// InstrumentType is the kind of EU legal instrument referenced.
type InstrumentType string

const (
	InstrumentDirective  InstrumentType = "directive"
	InstrumentRegulation InstrumentType = "regulation"
)

// RelationType classifies how the surrounding text relates the provision to
// the instrument.
type RelationType string

const (
	RelationImplements  RelationType = "implements"
	RelationSupplements RelationType = "supplements"
	RelationApplies     RelationType = "applies"
	RelationReferences  RelationType = "references"
)

// ForeignReference is one EU directive/regulation reference found in
// provision text. Reconciling it against a persisted EU-document catalog is
// an ingestion concern; the extractor only emits the tuple.
type ForeignReference struct {
	Type      InstrumentType `json:"type"`
	Year      int            `json:"year"`
	Number    int            `json:"number"`
	Community string         `json:"community"`
	Article   string         `json:"article,omitempty"`
	RawText   string         `json:"raw_text"`
	Relation  RelationType   `json:"relation"`
}

// relationWindow is how far back (in bytes) the classifier looks for
// relationship keywords before a match.
const relationWindow = 160

var (
	// New style: community code in parentheses before the year/number pair,
	// e.g. "Uredba (EU) 2016/679", "Direktiva (EU) 2016/680", optionally
	// preceded by an article clause ("13. člen Direktive (EU) 2016/680").
	foreignNewPattern = regexp.MustCompile(
		`(?i)(?:(\d+[a-zčšž]?)\.\s*člen(?:a|u|om)?\s+)?(direktiv|uredb)\w*\s+\((EU|ES|EGS)\)\s+(?:št\.?\s*)?(\d+)/(\d+)`)

	// Old style: trailing community suffix after the year/number pair,
	// e.g. "Direktiva 95/46/ES", "Uredba št. 45/2001/ES".
	foreignOldPattern = regexp.MustCompile(
		`(?i)(?:(\d+[a-zčšž]?)\.\s*člen(?:a|u|om)?\s+)?(direktiv|uredb)\w*\s+(?:št\.?\s*)?(\d+)/(\d+)/(EU|ES|EGS)`)
)

// Relationship keyword sets, checked in priority order. The first set that
// matches the preceding window decides the relation.
var (
	implementsKeywords  = []string{"prenaša", "prenos", "implementira", "usklajen", "v slovenski pravni red"}
	supplementsKeywords = []string{"dopolnjuje", "dopolnitv", "podrobneje ureja"}
	appliesKeywords     = []string{"uporablja", "uporabo", "izvaja", "izvajanje"}
)

// ExtractForeignRefs scans provision text for EU directive and regulation
// references. Both pattern families run over the whole text; entries are
// deduplicated by (type, year/number, article). A repeat mention with the
// same article (or none) is dropped, while a different article yields a
// separate entry.
func ExtractForeignRefs(text string) []ForeignReference {
	var refs []ForeignReference
	seen := make(map[string]bool)

	collect := func(pattern *regexp.Regexp, newStyle bool) {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			ref := buildForeignRef(text, m, newStyle)
			key := fmt.Sprintf("%s:%d/%d:%s", ref.Type, ref.Year, ref.Number, ref.Article)
			if seen[key] {
				continue
			}
			seen[key] = true
			refs = append(refs, ref)
		}
	}

	collect(foreignNewPattern, true)
	collect(foreignOldPattern, false)

	return refs
}

// buildForeignRef assembles one reference from submatch indices. Capture
// layout: 1 article, 2 keyword root, then community/first/second (new style)
// or first/second/community (old style).
func buildForeignRef(text string, m []int, newStyle bool) ForeignReference {
	group := func(i int) string {
		if m[2*i] == -1 {
			return ""
		}
		return text[m[2*i]:m[2*i+1]]
	}

	var community, first, second string
	if newStyle {
		community, first, second = group(3), group(4), group(5)
	} else {
		first, second, community = group(3), group(4), group(5)
	}

	instrumentType := InstrumentRegulation
	if strings.HasPrefix(strings.ToLower(group(2)), "direktiv") {
		instrumentType = InstrumentDirective
	}

	firstNum, _ := strconv.Atoi(first)
	secondNum, _ := strconv.Atoi(second)
	year, number := SplitYearNumber(firstNum, secondNum)

	return ForeignReference{
		Type:      instrumentType,
		Year:      year,
		Number:    number,
		Community: strings.ToUpper(community),
		Article:   group(1),
		RawText:   text[m[0]:m[1]],
		Relation:  classifyRelation(text, m[0]),
	}
}

// SplitYearNumber disambiguates the two integers of a year/number pair. A
// value in [1950, 2040] is taken as the year; two-digit values are expanded
// with a 50/50 pivot (>= 50 is 1900s, < 50 is 2000s) before the test. When
// neither value is plausible either way, the first is assumed to be the
// year. That fallback can mislabel unusual input; it is a documented
// accuracy limitation, not a guarantee.
func SplitYearNumber(first, second int) (year, number int) {
	if plausible, expanded := plausibleYear(first); plausible {
		return expanded, second
	}
	if plausible, expanded := plausibleYear(second); plausible {
		return expanded, first
	}
	return first, second
}

// plausibleYear reports whether v can be a publication year, expanding
// two-digit values first. Returns the (possibly expanded) year.
func plausibleYear(v int) (bool, int) {
	expanded := v
	if v >= 0 && v < 100 {
		if v >= 50 {
			expanded = 1900 + v
		} else {
			expanded = 2000 + v
		}
	}
	return expanded >= 1950 && expanded <= 2040, expanded
}

// classifyRelation inspects the window of text immediately preceding a
// match for relationship keywords, in priority order.
func classifyRelation(text string, offset int) RelationType {
	start := offset - relationWindow
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(text[start:offset])

	for _, kw := range implementsKeywords {
		if strings.Contains(window, kw) {
			return RelationImplements
		}
	}
	for _, kw := range supplementsKeywords {
		if strings.Contains(window, kw) {
			return RelationSupplements
		}
	}
	for _, kw := range appliesKeywords {
		if strings.Contains(window, kw) {
			return RelationApplies
		}
	}
	return RelationReferences
}
