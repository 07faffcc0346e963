// Package textproc implements the text analysis pipeline shared by
// indexing and querying: normalization, tokenization, heuristic
// suffix-table stemming, and stop-word filtering for Spanish and
// English content.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so
// "camión" folds to "camion" and "señor" to "senor".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize case-folds s, strips diacritics, replaces non-alphanumeric
// runes with spaces, and collapses whitespace. Idempotent and total:
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
