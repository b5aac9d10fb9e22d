package citation

// statuteRegisterIDs maps common statute abbreviations to their register
// identifiers in the corpus. Built once at init; read-only afterwards.
var statuteRegisterIDs = map[string]string{
	"URS":     "USTA1",    // Ustava Republike Slovenije
	"ZGD-1":   "ZAKO4291", // Zakon o gospodarskih družbah
	"ZDR-1":   "ZAKO5944", // Zakon o delovnih razmerjih
	"ZUP":     "ZAKO1603", // Zakon o splošnem upravnem postopku
	"ZPP":     "ZAKO1212", // Zakon o pravdnem postopku
	"ZKP":     "ZAKO362",  // Zakon o kazenskem postopku
	"KZ-1":    "ZAKO5050", // Kazenski zakonik
	"OZ":      "ZAKO1263", // Obligacijski zakonik
	"SPZ":     "ZAKO3242", // Stvarnopravni zakonik
	"ZDavP-2": "ZAKO4703", // Zakon o davčnem postopku
	"ZVOP-2":  "ZAKO8610", // Zakon o varstvu osebnih podatkov
	"ZJN-3":   "ZAKO7086", // Zakon o javnem naročanju
	"SZ-1":    "ZAKO2008", // Stanovanjski zakon
	"ZUS-1":   "ZAKO4732", // Zakon o upravnem sporu
	"ZFPPIPP": "ZAKO4735", // Zakon o finančnem poslovanju
	"ZDoh-2":  "ZAKO4697", // Zakon o dohodnini
	"ZDDV-1":  "ZAKO4701", // Zakon o davku na dodano vrednost
	"ZIZ":     "ZAKO1008", // Zakon o izvršbi in zavarovanju
	"ZVPot-1": "ZAKO8734", // Zakon o varstvu potrošnikov
	"ZEKom-2": "ZAKO8611", // Zakon o elektronskih komunikacijah
}

// statuteFullNames maps abbreviations to full statute names for display.
var statuteFullNames = map[string]string{
	"URS":     "Ustava Republike Slovenije",
	"ZGD-1":   "Zakon o gospodarskih družbah",
	"ZDR-1":   "Zakon o delovnih razmerjih",
	"ZUP":     "Zakon o splošnem upravnem postopku",
	"ZPP":     "Zakon o pravdnem postopku",
	"ZKP":     "Zakon o kazenskem postopku",
	"KZ-1":    "Kazenski zakonik",
	"OZ":      "Obligacijski zakonik",
	"SPZ":     "Stvarnopravni zakonik",
	"ZDavP-2": "Zakon o davčnem postopku",
	"ZVOP-2":  "Zakon o varstvu osebnih podatkov",
	"ZJN-3":   "Zakon o javnem naročanju",
	"SZ-1":    "Stanovanjski zakon",
	"ZUS-1":   "Zakon o upravnem sporu",
	"ZFPPIPP": "Zakon o finančnem poslovanju, postopkih zaradi insolventnosti in prisilnem prenehanju",
	"ZDoh-2":  "Zakon o dohodnini",
	"ZDDV-1":  "Zakon o davku na dodano vrednost",
	"ZIZ":     "Zakon o izvršbi in zavarovanju",
	"ZVPot-1": "Zakon o varstvu potrošnikov",
	"ZEKom-2": "Zakon o elektronskih komunikacijah",
}

// RegisterID looks up the register identifier for a statute abbreviation.
// The second return is false for unknown abbreviations; callers choose their
// own fallback policy.
func RegisterID(abbr string) (string, bool) {
	id, ok := statuteRegisterIDs[abbr]
	return id, ok
}

// FullName looks up the full statute name for an abbreviation.
func FullName(abbr string) (string, bool) {
	name, ok := statuteFullNames[abbr]
	return name, ok
}
