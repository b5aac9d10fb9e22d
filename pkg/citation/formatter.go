package citation

import (
	"fmt"
	"strings"
)

// Style selects the rendering of a formatted citation.
type Style string

const (
	StyleFull     Style = "full"     // article, full statute name, abbreviation
	StyleShort    Style = "short"    // article and abbreviation only
	StylePinpoint Style = "pinpoint" // article/paragraph fragment only
)

// Format parses the input and renders it back in the requested style.
// Formatting is best-effort and never fails: input that does not parse is
// returned unchanged, as are reference kinds with no canonical rendering
// (case law, EU instruments, gazette references).
func Format(raw string, style Style) string {
	parsed := Parse(raw)
	if !parsed.Valid {
		return raw
	}

	switch parsed.Kind {
	case KindCase:
		return parsed.CaseNumber
	case KindDirective, KindRegulation:
		return raw
	}

	// Statute references without an article (gazette-keyed) have nothing to
	// pinpoint; leave them verbatim.
	if parsed.Article == "" {
		return raw
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. člen", parsed.Article)

	switch style {
	case StyleShort:
		fmt.Fprintf(&b, " %s", parsed.Abbreviation)
	case StylePinpoint:
		// Article/paragraph fragment only.
	default:
		if name, ok := FullName(parsed.Abbreviation); ok {
			fmt.Fprintf(&b, " %s (%s)", name, parsed.Abbreviation)
		} else {
			fmt.Fprintf(&b, " %s", parsed.Abbreviation)
		}
	}

	if parsed.Paragraph != "" {
		fmt.Fprintf(&b, ", %s. odstavek", parsed.Paragraph)
	}

	return b.String()
}
