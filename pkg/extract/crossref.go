// Package extract recovers structured references from unstructured
// Slovenian provision text: intra-corpus article cross-references, EU
// directive/regulation references and amendment annotations. All extractors
// are pure functions over the input text; results are ephemeral and
// recomputed on every call.
package extract

import (
	"regexp"
	"strings"
)

// selfReference marks a cross-reference whose target statute is the source
// document itself (no explicit statute named in the text).
const selfReference = "SELF"

// CrossRef is one intra-corpus article reference found in provision text.
// TargetStatute is the raw abbreviation as matched; empty for
// self-references. Resolution to a document identifier is the caller's
// concern via ResolveAbbreviation.
type CrossRef struct {
	TargetArticle   string `json:"target_article"`
	TargetParagraph string `json:"target_paragraph,omitempty"`
	TargetStatute   string `json:"target_statute,omitempty"`
	RawText         string `json:"raw_text"`
}

var (
	// "2. odstavek 14. člena": paragraph-qualified article reference.
	paragraphArticlePattern = regexp.MustCompile(
		`(\d+)\.\s*odst(?:\.|avek|avka|avku)?\s+(\d+[a-zčšž]?)\.\s*člen(?:a|u|om|i|ih)?`)

	// "42. člen ZGD-1": article followed by an abbreviation token. A real
	// abbreviation carries a second upper-case letter or digit ("ZUP",
	// "KZ-1", "ZDavP-2"), which keeps the first word of a spelled-out title
	// ("Zakona o ...") out of this class.
	articleStatutePattern = regexp.MustCompile(
		`(\d+[a-zčšž]?)\.\s*člen(?:a|u|om|i|ih)?\s+([A-ZČŠŽ][a-zčšž]*[A-Z0-9ČŠŽ][A-Za-z0-9ČŠŽčšž-]*)`)

	// "v skladu z 42. členom": bare article reference. RE2 has no negative
	// lookahead, so the trailing-abbreviation exclusion is a post-match
	// check in ExtractCrossRefs.
	bareArticlePattern = regexp.MustCompile(
		`(\d+[a-zčšž]?)\.\s*člen(?:a|u|om|i|ih)?`)

	upperCaseTokenPattern = regexp.MustCompile(`^\s+[A-ZČŠŽ]`)
)

// abbreviationDocuments resolves statute abbreviations appearing in running
// text to canonical document identifiers. Unknown abbreviations resolve to
// nothing; guessing a target would create a wrong edge.
var abbreviationDocuments = map[string]string{
	"URS":     "USTA1",
	"ZGD-1":   "ZAKO4291",
	"ZDR-1":   "ZAKO5944",
	"ZUP":     "ZAKO1603",
	"ZPP":     "ZAKO1212",
	"ZKP":     "ZAKO362",
	"KZ-1":    "ZAKO5050",
	"OZ":      "ZAKO1263",
	"SPZ":     "ZAKO3242",
	"ZDavP-2": "ZAKO4703",
	"ZVOP-2":  "ZAKO8610",
	"ZJN-3":   "ZAKO7086",
	"SZ-1":    "ZAKO2008",
	"ZUS-1":   "ZAKO4732",
	"ZFPPIPP": "ZAKO4735",
	"ZDoh-2":  "ZAKO4697",
	"ZDDV-1":  "ZAKO4701",
	"ZIZ":     "ZAKO1008",
	"ZVPot-1": "ZAKO8734",
	"ZEKom-2": "ZAKO8611",
}

// ResolveAbbreviation resolves a statute abbreviation to its canonical
// document identifier. The second return is false for unknown abbreviations,
// signaling the caller to skip the edge rather than guess.
func ResolveAbbreviation(abbr string) (string, bool) {
	id, ok := abbreviationDocuments[abbr]
	return id, ok
}

// ExtractCrossRefs scans provision text for article references. Three
// pattern classes run independently, each emitting at most one entry per
// unique target key within the text.
func ExtractCrossRefs(text string) []CrossRef {
	var refs []CrossRef
	seen := make(map[string]bool)

	// Class 1: paragraph-qualified article, implicitly the current document.
	for _, m := range paragraphArticlePattern.FindAllStringSubmatchIndex(text, -1) {
		paragraph := text[m[2]:m[3]]
		article := text[m[4]:m[5]]
		key := paragraph + ":" + article
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, CrossRef{
			TargetArticle:   article,
			TargetParagraph: paragraph,
			RawText:         text[m[0]:m[1]],
		})
	}

	// Class 2: article + statute abbreviation. Record match positions so the
	// bare-article class does not re-match the same span.
	statuteMatched := make(map[int]bool)
	for _, m := range articleStatutePattern.FindAllStringSubmatchIndex(text, -1) {
		statuteMatched[m[0]] = true
		article := text[m[2]:m[3]]
		statute := text[m[4]:m[5]]
		key := statute + ":" + article
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, CrossRef{
			TargetArticle: article,
			TargetStatute: statute,
			RawText:       text[m[0]:m[1]],
		})
	}

	// Class 3: bare article, self-referential. Skip spans the statute class
	// claimed and spans followed by a capitalized token (that token is an
	// abbreviation candidate, not a self-reference).
	for _, m := range bareArticlePattern.FindAllStringSubmatchIndex(text, -1) {
		if statuteMatched[m[0]] {
			continue
		}
		if upperCaseTokenPattern.MatchString(text[m[1]:]) {
			continue
		}
		article := text[m[2]:m[3]]
		key := selfReference + ":" + article
		if seen[key] {
			continue
		}
		seen[key] = true
		refs = append(refs, CrossRef{
			TargetArticle: article,
			RawText:       strings.TrimSpace(text[m[0]:m[1]]),
		})
	}

	return refs
}
