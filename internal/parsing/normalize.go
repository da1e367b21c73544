// Package parsing provides canonicalization of technology and skill terms
// ahead of set comparisons.
package parsing

import "strings"

// techSynonyms maps common technology name variants to canonical forms.
// Applied to tech/skill lists only, never to free-text fields.
var techSynonyms = map[string]string{
	"postgresql": "postgres",
	"javascript": "js",
	"typescript": "ts",
	"node.js":    "nodejs",
	"react.js":   "react",
	"vue.js":     "vue",
}

// NormalizeTech trims, lower-cases and canonicalizes a list of technology
// terms, dropping empty entries and deduplicating while preserving
// first-occurrence order. Empty input yields an empty, non-nil list.
func NormalizeTech(terms []string) []string {
	normalized := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))

	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if canonical, ok := techSynonyms[t]; ok {
			t = canonical
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		normalized = append(normalized, t)
	}

	return normalized
}
