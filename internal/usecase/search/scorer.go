package search

import (
	"math"
	"strings"
	"time"

	"github.com/talentohub/search/internal/fuzzy"
	"github.com/talentohub/search/internal/index"
)

// scorer computes one relevance score per candidate document. All
// fields are read-only during a query, so a single scorer is shared
// by the worker pool.
type scorer struct {
	idx       *index.Index
	params    Params
	q         compiledQuery
	fuzzyOn   bool
	now       time.Time
	totalDocs float64
}

func newScorer(idx *index.Index, params Params, q compiledQuery, fuzzyOn bool) *scorer {
	return &scorer{
		idx:       idx,
		params:    params,
		q:         q,
		fuzzyOn:   fuzzyOn,
		now:       time.Now(),
		totalDocs: float64(idx.TotalDocs()),
	}
}

// score produces the final relevance score for doc. Zero means the
// document is excluded, either by a hard +/- constraint or by simply
// matching nothing.
func (s *scorer) score(doc *index.Document) float64 {
	// Hard constraints first: a missing required token or a present
	// excluded token disqualifies the document outright.
	for _, r := range s.q.required {
		if !doc.HasToken(r) {
			return 0
		}
	}
	for _, e := range s.q.excluded {
		if doc.HasToken(e) {
			return 0
		}
	}

	var score float64

	// TF-IDF base over the effective term set.
	for _, term := range s.q.terms {
		if tf := doc.TermFreq[term]; tf > 0 {
			score += float64(tf) * math.Log(s.totalDocs/float64(s.idx.DocFreq(term)))
		}
	}

	// Per-field bonuses: title > tags > description.
	p := s.params
	for _, term := range s.q.terms {
		if _, ok := doc.TitleTokens[term]; ok {
			score += p.TitleWeight * p.TitleBoost
		}
		if _, ok := doc.TagTokens[term]; ok {
			score += p.TagWeight * p.TagBoost
		}
		if _, ok := doc.DescTokens[term]; ok {
			score += p.DescriptionWeight * p.DescriptionBoost
		}
	}

	// Raw substring bonus catches matches normalization hides.
	for _, term := range s.q.terms {
		if strings.Contains(doc.NormSearchable, term) {
			score += p.ExactBonus
		}
	}
	for _, phrase := range s.q.phrases {
		if phrase != "" && strings.Contains(doc.NormSearchable, phrase) {
			score += p.ExactBonus
		}
	}

	for _, prefix := range s.q.wildcards {
		if hasTokenWithPrefix(doc, prefix) {
			score += p.WildcardBonus
		}
	}

	if s.fuzzyOn {
		score += s.fuzzyBonus(doc)
	}

	for _, clause := range s.q.proximity {
		if withinWindow(doc.Tokens, clause.terms, clause.window) {
			score += p.ProximityBonus
		}
	}

	// Recency: up to +RecencyBonus, linearly decaying to zero at the
	// window edge. Only matching documents get it — freshness alone
	// must not push a non-match past the score threshold.
	if score > 0 {
		days := s.now.Sub(doc.Record.CreatedAt).Hours() / 24
		window := float64(p.RecencyWindowDays)
		if days >= 0 && days < window {
			score += p.RecencyBonus * (1 - days/window)
		}
	}

	return score * doc.Record.Boost
}

func (s *scorer) fuzzyBonus(doc *index.Document) float64 {
	var bonus float64
	for _, term := range s.q.terms {
		if len(term) < s.params.FuzzyPrefixLength {
			continue
		}
		for token := range doc.TermFreq {
			d, ok := fuzzy.Match(term, token, s.params.FuzzyMaxDistance, s.params.FuzzyPrefixLength)
			if !ok {
				continue
			}
			if b := 1 - float64(d)/float64(len(term)); b > 0 {
				bonus += b
			}
		}
	}
	return bonus
}

func hasTokenWithPrefix(doc *index.Document, prefix string) bool {
	for token := range doc.TermFreq {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// withinWindow reports whether every term occurs in tokens with all
// occurrences anchored within maxDistance positions of some
// occurrence of the first term.
func withinWindow(tokens, terms []string, maxDistance int) bool {
	positions := make(map[string][]int, len(terms))
	want := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		want[t] = struct{}{}
	}
	for i, tok := range tokens {
		if _, ok := want[tok]; ok {
			positions[tok] = append(positions[tok], i)
		}
	}
	if len(positions) < len(want) {
		return false
	}

	for _, anchor := range positions[terms[0]] {
		all := true
		for _, term := range terms[1:] {
			if !anyWithin(positions[term], anchor, maxDistance) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func anyWithin(positions []int, anchor, maxDistance int) bool {
	for _, p := range positions {
		if d := p - anchor; d >= -maxDistance && d <= maxDistance {
			return true
		}
	}
	return false
}
