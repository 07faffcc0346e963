package textproc

import "github.com/talentohub/search/internal/domain/content"

// minStemLength is the shortest token the stemmer touches. Shorter
// tokens pass through unchanged.
const minStemLength = 4

// minStemRemainder is the shortest root a suffix strip may leave.
const minStemRemainder = 2

// Suffix tables are ordered rule lists: the FIRST matching suffix in
// list order wins. The order is part of the behavior contract — this
// is a compatibility heuristic, not a morphological analyzer, so
// entries must not be reordered or "corrected".
var spanishSuffixes = []string{
	"amientos", "imientos", "amiento", "imiento",
	"aciones", "uciones", "adoras", "adores",
	"encias", "ancias", "amente", "acion", "ucion",
	"encia", "ancia", "mente", "idades", "idad",
	"istas", "ista", "ables", "ibles", "able", "ible",
	"anza", "ando", "iendo", "oso", "osa",
	"ar", "er", "ir", "as", "es", "os", "a", "e", "o", "s",
}

var englishSuffixes = []string{
	"ization", "ational", "fulness", "ousness", "iveness",
	"tional", "ation", "ingly", "ments", "ment",
	"ness", "tion", "able", "ible", "ance", "ence",
	"ers", "ing", "ed", "ly", "ies", "er", "es", "s",
}

// Stem strips the first matching suffix from the table for lang.
// Tokens shorter than minStemLength are never stemmed, and a suffix
// is skipped when stripping it would leave fewer than
// minStemRemainder characters. Input is expected to be normalized.
func Stem(token string, lang content.Language) string {
	if len(token) < minStemLength {
		return token
	}
	table := englishSuffixes
	if lang == content.Spanish {
		table = spanishSuffixes
	}
	for _, suf := range table {
		if len(token)-len(suf) < minStemRemainder {
			continue
		}
		if token[len(token)-len(suf):] == suf {
			return token[:len(token)-len(suf)]
		}
	}
	return token
}
