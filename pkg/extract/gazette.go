package extract

import "regexp"

// gazettePrefix is the canonical display prefix for official-gazette
// references.
const gazettePrefix = "Ur. l. RS, št. "

var (
	// Strict issue/year core: "<number>/<number>" with an optional suffix,
	// e.g. "63/13", "30/18-ZKZaš".
	gazetteCorePattern = regexp.MustCompile(`^\d+/\d+(?:-[A-Za-z0-9ČŠŽčšž]+)?$`)

	// The numeric core anywhere inside a loosely written reference.
	gazetteLoosePattern = regexp.MustCompile(`\d+/\d+(?:-[A-Za-z0-9ČŠŽčšž]+)?`)
)

// IsValidGazetteRef reports whether ref is a bare, well-formed gazette core
// ("63/13", optionally with a statute suffix).
func IsValidGazetteRef(ref string) bool {
	return gazetteCorePattern.MatchString(ref)
}

// NormalizeGazetteRef extracts the numeric core of a loosely written
// gazette reference ("Ur. l. 63/13", "Uradni list RS, št. 63/13") and
// re-wraps it in the canonical display prefix. Returns "" when no core is
// present.
func NormalizeGazetteRef(ref string) string {
	core := gazetteLoosePattern.FindString(ref)
	if core == "" {
		return ""
	}
	return gazettePrefix + core
}
