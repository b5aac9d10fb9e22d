// Package dates validates and canonicalizes the ISO dates used at every
// engine boundary, and recovers dates embedded in Slovenian legal prose.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

var (
	isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// "preneha veljati 15.6.2020", "razveljavljen dne 15. 6. 2020"
	repealPhrasePattern = regexp.MustCompile(
		`(?i)(?:preneha(?:l|la)?\s+veljati|razveljavljen[ao]?|prenehanje\s+veljavnosti)(?:\s+dne)?\s+(\d{1,2})\.\s*(\d{1,2})\.\s*(\d{4})`)

	// An ISO date already present in the description.
	embeddedISOPattern = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// monthNames lists Slovenian month names in calendar order. Matching is by
// the first three letters, so declined forms ("januarja") match too.
var monthNames = [12]string{
	"januar", "februar", "marec", "april", "maj", "junij",
	"julij", "avgust", "september", "oktober", "november", "december",
}

// Normalize trims and validates an ISO calendar date. Empty input returns
// ("", nil); the caller substitutes today. Anything that does not match
// YYYY-MM-DD, or does not survive a calendar round-trip (e.g. 2021-02-30),
// is rejected.
func Normalize(date string) (string, error) {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return "", nil
	}
	if !isoPattern.MatchString(trimmed) {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", trimmed)
	}
	parsed, err := time.Parse(isoLayout, trimmed)
	if err != nil || parsed.Format(isoLayout) != trimmed {
		return "", fmt.Errorf("invalid date %q: not a real calendar date", trimmed)
	}
	return trimmed, nil
}

// Today returns the current date in ISO form.
func Today() string {
	return time.Now().Format(isoLayout)
}

// ExtractRepealDate searches free text for repeal phrasing followed by a
// d.m.yyyy date, or for an ISO date anywhere in the text, and returns the
// date in ISO form. First match wins. Returns "" when nothing matches.
// The extracted date is not re-validated against the calendar.
func ExtractRepealDate(description string) string {
	if description == "" {
		return ""
	}
	if m := repealPhrasePattern.FindStringSubmatch(description); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}
	if m := embeddedISOPattern.FindStringSubmatch(description); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
	}
	return ""
}

// MonthNumber returns the 1-based month for a Slovenian month name, matched
// case-insensitively by its first three letters. Returns 0 for no match.
func MonthNumber(name string) int {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if len(lowered) < 3 {
		return 0
	}
	prefix := lowered[:3]
	for i, month := range monthNames {
		if strings.HasPrefix(month, prefix) {
			return i + 1
		}
	}
	return 0
}

// pad2 left-pads a one- or two-digit string to two digits.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
