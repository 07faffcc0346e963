package search

import (
	"strconv"
	"strings"
	"time"

	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/domain/query"
	"github.com/talentohub/search/internal/syntax"
	"github.com/talentohub/search/internal/textproc"
)

// proximityClause is a parsed proximity constraint with stemmed terms.
type proximityClause struct {
	terms  []string
	window int
}

// compiledQuery is the scoring-ready form of a parsed query: every
// term stemmed in the query language, syntax buckets resolved.
type compiledQuery struct {
	terms     []string // effective term set: free text ∪ phrases ∪ required
	required  []string
	excluded  []string
	phrases   []string // normalized, for substring matching
	wildcards []string // normalized prefixes
	proximity []proximityClause
	lang      content.Language
}

// compile stems and assembles the effective query term set. Phrases
// and required terms are unioned into the terms used for scoring.
func compile(syn *syntax.Syntax, lang content.Language) compiledQuery {
	cq := compiledQuery{lang: lang}

	seen := make(map[string]struct{})
	addTerms := func(terms []string) {
		for _, t := range terms {
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			cq.terms = append(cq.terms, t)
		}
	}

	addTerms(textproc.QueryTerms(syn.Remainder, lang))
	for _, p := range syn.Phrases {
		cq.phrases = append(cq.phrases, textproc.Normalize(p))
		addTerms(textproc.QueryTerms(p, lang))
	}
	for _, r := range syn.Required {
		t := stemOne(r, lang)
		if t == "" {
			continue
		}
		cq.required = append(cq.required, t)
		addTerms([]string{t})
	}
	for _, e := range syn.Excluded {
		if t := stemOne(e, lang); t != "" {
			cq.excluded = append(cq.excluded, t)
		}
	}
	for _, w := range syn.Wildcards {
		if n := textproc.Normalize(w); n != "" {
			cq.wildcards = append(cq.wildcards, n)
		}
	}
	for _, p := range syn.Proximity {
		clause := proximityClause{window: p.MaxDistance}
		for _, t := range p.Terms {
			if st := stemOne(t, lang); st != "" {
				clause.terms = append(clause.terms, st)
			}
		}
		if len(clause.terms) >= 2 {
			cq.proximity = append(cq.proximity, clause)
			addTerms(clause.terms)
		}
	}
	return cq
}

// stemOne normalizes and stems a single bare term.
func stemOne(raw string, lang content.Language) string {
	n := textproc.Normalize(raw)
	if n == "" {
		return ""
	}
	// A multi-word value collapses to its first token.
	if i := strings.IndexByte(n, ' '); i >= 0 {
		n = n[:i]
	}
	return textproc.Stem(n, lang)
}

// applyFieldFilters folds recognized field:value clauses into the
// structured filters. Unrecognized field names are dropped silently
// (fail-soft: they were already removed from the free text).
func applyFieldFilters(filters query.Filters, fields map[string]string) query.Filters {
	for key, value := range fields {
		switch key {
		case "type":
			t := content.Type(value)
			if t.IsValid() {
				filters.ContentTypes = append(filters.ContentTypes, t)
			}
		case "tag":
			filters.Tags = append(filters.Tags, value)
		case "category":
			filters.Categories = append(filters.Categories, value)
		case "lang", "language":
			l := content.Language(strings.ToLower(value))
			if l.IsValid() {
				filters.Language = l
			}
		case "since":
			// since:<days> narrows to records newer than N days.
			if days, err := strconv.Atoi(value); err == nil && days > 0 {
				from := time.Now().AddDate(0, 0, -days)
				filters.DateFrom = &from
			}
		}
	}
	return filters
}
