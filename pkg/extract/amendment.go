package extract

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/juristika/zakon/pkg/dates"
)

// AmendmentKind is the kind of change an annotation records.
type AmendmentKind string

const (
	AmendmentModified AmendmentKind = "modified"
	AmendmentRepealed AmendmentKind = "repealed"
	AmendmentDeleted  AmendmentKind = "deleted"
	AmendmentAdded    AmendmentKind = "added"
	AmendmentNew      AmendmentKind = "new"
)

// AmendmentPosition classifies where in the provision text the annotation
// sits.
type AmendmentPosition string

const (
	PositionHeader AmendmentPosition = "header"
	PositionInline AmendmentPosition = "inline"
	PositionSuffix AmendmentPosition = "suffix"
)

// AmendmentReference is one amendment annotation found in provision text.
// Several may attach to the same provision.
type AmendmentReference struct {
	Kind          AmendmentKind     `json:"kind"`
	GazetteRef    string            `json:"gazette_ref,omitempty"`
	EffectiveDate string            `json:"effective_date,omitempty"`
	Position      AmendmentPosition `json:"position"`
	RawText       string            `json:"raw_text"`
}

// headerOffset is the byte offset below which a match counts as a header
// annotation; suffixLineLen is the trimmed-line length below which it counts
// as a trailing marker.
const (
	headerOffset  = 100
	suffixLineLen = 10
)

// gazetteTail optionally captures a trailing official-gazette reference
// after the keyword, e.g. "(Uradni list RS, št. 63/13)".
const gazetteTail = `(?:[^)\n]*?(?:uradni\s+list|ur\.?\s*l\.?)\s*(?:rs)?\s*,?\s*(?:št\.?\s*)?(\d+/\d+(?:-[A-Za-z0-9ČŠŽčšž]+)?))?`

// amendmentPatterns anchor on the annotation keyword; order determines only
// output order, not precedence; the four kinds do not overlap.
var amendmentPatterns = []struct {
	kind    AmendmentKind
	pattern *regexp.Regexp
}{
	{AmendmentModified, regexp.MustCompile(`(?i)spremenjen[aio]?` + gazetteTail)},
	{AmendmentRepealed, regexp.MustCompile(`(?i)(?:razveljavljen[aio]?|preneha(?:l|la)?\s+veljati)` + gazetteTail)},
	{AmendmentDeleted, regexp.MustCompile(`(?i)črtan[aio]?` + gazetteTail)},
	{AmendmentAdded, regexp.MustCompile(`(?i)(dodan[aio]?|nov[aio]?\s+člen)` + gazetteTail)},
}

// ExtractAmendments scans provision text for amendment annotations.
// Duplicates within one kind collapse on the gazette reference (or, absent
// one, the raw matched text): two "spremenjen" notes citing the same gazette
// number are one amendment.
func ExtractAmendments(text string) []AmendmentReference {
	var refs []AmendmentReference

	for _, entry := range amendmentPatterns {
		seen := make(map[string]bool)
		for _, m := range entry.pattern.FindAllStringSubmatchIndex(text, -1) {
			if startsInsideWord(text, m[0]) {
				continue
			}
			raw := text[m[0]:m[1]]

			kind := entry.kind
			gazetteIdx := 2
			if kind == AmendmentAdded {
				// The added pattern captures the keyword too: "nov člen"
				// marks a newly inserted article, not a later addition.
				if strings.HasPrefix(strings.ToLower(text[m[2]:m[3]]), "nov") {
					kind = AmendmentNew
				}
				gazetteIdx = 4
			}

			gazette := ""
			if m[gazetteIdx] != -1 {
				gazette = text[m[gazetteIdx]:m[gazetteIdx+1]]
			}

			key := gazette
			if key == "" {
				key = raw
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			refs = append(refs, AmendmentReference{
				Kind:          kind,
				GazetteRef:    gazette,
				EffectiveDate: ExtractEffectiveDate(raw),
				Position:      classifyPosition(text, m[0]),
				RawText:       raw,
			})
		}
	}

	return refs
}

// startsInsideWord reports whether the byte offset sits immediately after a
// letter. A keyword embedded in a longer word ("nespremenjeno", "prečrtan")
// is not an annotation. RE2 word boundaries are ASCII-only, so they cannot
// guard keywords starting with č; this check covers the whole alphabet.
func startsInsideWord(text string, offset int) bool {
	if offset == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[:offset])
	return unicode.IsLetter(r)
}

// classifyPosition decides header/suffix/inline from the match offset and
// the line it sits on.
func classifyPosition(text string, offset int) AmendmentPosition {
	if offset < headerOffset {
		return PositionHeader
	}
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}
	if len(strings.TrimSpace(text[lineStart:lineEnd])) < suffixLineLen {
		return PositionSuffix
	}
	return PositionInline
}

var (
	// "15.6.2020" or "15. 6. 2020"
	numericDatePattern = regexp.MustCompile(`(\d{1,2})\.\s*(\d{1,2})\.\s*(\d{4})`)

	// "15. junija 2020": day, Slovenian month name, year.
	namedDatePattern = regexp.MustCompile(`(\d{1,2})\.\s*([a-zčšž]+)\s+(\d{4})`)
)

// ExtractEffectiveDate finds the date an amendment takes effect, trying the
// numeric d.m.yyyy form first, then a day + Slovenian month name + year
// form. Month names match by their first three letters. Returns "" when
// neither form is present or the month name is not a Slovenian month.
func ExtractEffectiveDate(text string) string {
	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s-%02d-%02d", m[3], atoiSmall(m[2]), atoiSmall(m[1]))
	}
	if m := namedDatePattern.FindStringSubmatch(text); m != nil {
		month := dates.MonthNumber(m[2])
		if month == 0 {
			return ""
		}
		return fmt.Sprintf("%s-%02d-%02d", m[3], month, atoiSmall(m[1]))
	}
	return ""
}

// atoiSmall parses the short digit-only captures used above.
func atoiSmall(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
