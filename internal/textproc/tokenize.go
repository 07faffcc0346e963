package textproc

import (
	"strings"

	"github.com/talentohub/search/internal/domain/content"
)

// Tokenize normalizes text, splits it on whitespace, drops tokens of
// length <= 1, and stems the survivors. Stop words are kept — index
// token streams retain them so phrase and substring matches still
// work; callers that need content words only use QueryTerms.
func Tokenize(text string, lang content.Language) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 {
			continue
		}
		tokens = append(tokens, Stem(f, lang))
	}
	return tokens
}

// QueryTerms extracts the content-word term set of a query fragment:
// tokenization plus stop-word filtering and order-preserving
// deduplication. Stop words are filtered before stemming.
func QueryTerms(text string, lang content.Language) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	fields := strings.Fields(normalized)
	terms := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if len(f) <= 1 || IsStopWord(f, lang) {
			continue
		}
		t := Stem(f, lang)
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	return terms
}
