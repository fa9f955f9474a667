// Package termextract pulls candidate domain terms (drug names, dosages,
// clinical concepts) out of free marketing text using pattern heuristics.
// It is intentionally not an NLP model: false positives and negatives are
// tolerated as long as extraction is deterministic for identical input.
package termextract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ─────────────────────────────────────────────────────────────────────────────
// Patterns
// ─────────────────────────────────────────────────────────────────────────────

var (
	// reCapPhrase matches capitalized multi-word phrases, optionally
	// followed by a parenthetical acronym: "Myocardial Infarction (MI)".
	reCapPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+\b(?:\s*\(([A-Z]{2,6})\))?`)

	// reDosage matches dosage expressions: "50 mg", "2.5ml", "200mcg".
	reDosage = regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:mg|mcg|ml)\b`)

	// rePharmaSuffix matches words carrying common pharmacological
	// suffixes.  The minimum stem length keeps everyday words out.
	rePharmaSuffix = regexp.MustCompile(`(?i)\b[a-z]{3,}(?:ine|oid|ase|ide|ate)\b`)
)

// clinicalWhitelist holds clinical nouns and lay phrases extracted verbatim
// when present in the text, regardless of capitalization.
var clinicalWhitelist = []string{
	"efficacy",
	"safety",
	"bioavailability",
	"pharmacokinetics",
	"contraindications",
	"heart attack",
	"blood pressure",
	"side effects",
	"adverse events",
	"dosage",
}

// stopWords are dropped from extraction output.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {},
	"from": {}, "your": {}, "have": {}, "has": {}, "are": {}, "was": {},
	"new": {}, "now": {}, "our": {}, "all": {}, "its": {}, "into": {},
	"more": {}, "most": {}, "than": {}, "when": {}, "where": {},
}

const minTermLength = 3

// ─────────────────────────────────────────────────────────────────────────────
// Extractor
// ─────────────────────────────────────────────────────────────────────────────

// Extractor extracts candidate terminology from free text.  The zero value
// is not usable; construct with NewExtractor.
type Extractor struct{}

// NewExtractor returns the heuristic term extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the deduplicated candidate terms of text, in order of
// first appearance.  Output is deterministic for identical input.
func (e *Extractor) Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	normalized := normalizeText(text)
	lower := strings.ToLower(normalized)

	var candidates []string

	// Whitelisted clinical nouns and phrases, located in reading order.
	type hit struct {
		pos  int
		term string
	}
	var hits []hit
	for _, w := range clinicalWhitelist {
		if idx := strings.Index(lower, w); idx >= 0 && idx+len(w) <= len(normalized) {
			hits = append(hits, hit{pos: idx, term: normalized[idx : idx+len(w)]})
		}
	}

	for _, m := range reCapPhrase.FindAllStringSubmatchIndex(normalized, -1) {
		phrase := normalized[m[0]:m[1]]
		// Strip a trailing parenthetical acronym; it is emitted separately.
		if m[2] >= 0 {
			acronym := normalized[m[2]:m[3]]
			phrase = strings.TrimSpace(strings.Split(phrase, "(")[0])
			hits = append(hits, hit{pos: m[2], term: acronym})
		}
		hits = append(hits, hit{pos: m[0], term: phrase})
	}
	for _, m := range reDosage.FindAllStringIndex(normalized, -1) {
		hits = append(hits, hit{pos: m[0], term: normalized[m[0]:m[1]]})
	}
	for _, m := range rePharmaSuffix.FindAllStringIndex(normalized, -1) {
		hits = append(hits, hit{pos: m[0], term: normalized[m[0]:m[1]]})
	}

	// Stable ordering: by first-occurrence position, preserving the
	// insertion order above for identical positions.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	for _, h := range hits {
		candidates = append(candidates, h.term)
	}

	return filterTerms(candidates)
}

// filterTerms drops short terms and stop words and deduplicates
// case-insensitively, preserving first-occurrence order.
func filterTerms(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		term := strings.TrimSpace(c)
		if len(term) < minTermLength {
			continue
		}
		key := strings.ToLower(term)
		if _, stop := stopWords[key]; stop {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, term)
	}
	return out
}

// normalizeText applies Unicode NFC normalization and collapses whitespace
// runs into single spaces.
func normalizeText(text string) string {
	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteRune(' ')
				prevSpace = true
			}
		} else {
			b.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}
