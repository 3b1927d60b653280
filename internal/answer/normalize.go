// Package answer decides which typed answers count as correct.
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// dropped holds the sentence and list punctuation removed before comparison.
const dropped = "、。，．,."

// Normalize canonicalizes s for equivalence comparison. It folds case
// and width, removes all whitespace and the punctuation in 、。，．,. and
// maps the full-width colon to ":". Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	// A few compatibility characters only settle after a second round
	// of folding, so run until the string stops changing.
	for range 4 {
		next := normalizeOnce(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func normalizeOnce(s string) string {
	s = norm.NFKC.String(s)
	s = cases.Fold().String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || strings.ContainsRune(dropped, r) {
			return -1
		}
		if r == '：' {
			return ':'
		}
		return r
	}, s)
	return norm.NFKC.String(s)
}
