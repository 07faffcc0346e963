package index

import (
	"strings"
	"time"

	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/textproc"
)

// Build constructs an immutable Index from the given records. The
// document frequency table is recomputed from scratch over the whole
// batch — there are no incremental updates. Inactive records are
// skipped here so they can never reach a live index; boosts are
// clamped into bounds before storage.
func Build(records []content.Content) *Index {
	idx := &Index{
		docs:       make([]Document, 0, len(records)),
		df:         make(map[string]int),
		typeCounts: make(map[content.Type]int, len(content.AllTypes)),
		builtAt:    time.Now(),
	}
	for _, t := range content.AllTypes {
		idx.typeCounts[t] = 0
	}

	for _, rec := range records {
		if !rec.IsActive {
			continue
		}
		rec.Boost = rec.ClampedBoost()
		doc := buildDocument(rec)
		for token := range doc.TermFreq {
			idx.df[token]++
		}
		idx.typeCounts[rec.Type]++
		idx.docs = append(idx.docs, doc)
	}
	return idx
}

func buildDocument(rec content.Content) Document {
	searchable := rec.SearchableText
	if searchable == "" {
		searchable = composeSearchable(&rec)
	}

	tokens := textproc.Tokenize(searchable, rec.Language)
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}

	normTags := make([]string, 0, len(rec.Tags))
	tagTokens := make(map[string]struct{}, len(rec.Tags))
	for _, tag := range rec.Tags {
		normTags = append(normTags, textproc.Normalize(tag))
		for _, t := range textproc.Tokenize(tag, rec.Language) {
			tagTokens[t] = struct{}{}
		}
	}

	return Document{
		Record:         rec,
		Tokens:         tokens,
		TermFreq:       tf,
		TitleTokens:    tokenSet(rec.Title, rec.Language),
		DescTokens:     tokenSet(rec.Description, rec.Language),
		TagTokens:      tagTokens,
		NormTitle:      textproc.Normalize(rec.Title),
		NormSearchable: textproc.Normalize(searchable),
		NormTags:       normTags,
	}
}

// composeSearchable is the fallback for collectors that did not
// precompute a searchable text: weighted fields joined in relevance
// order, title first.
func composeSearchable(rec *content.Content) string {
	parts := make([]string, 0, 4+len(rec.Tags)+len(rec.Keywords))
	parts = append(parts, rec.Title, rec.Description, rec.Body)
	parts = append(parts, rec.Tags...)
	parts = append(parts, rec.Keywords...)
	return strings.Join(parts, " ")
}

func tokenSet(text string, lang content.Language) map[string]struct{} {
	tokens := textproc.Tokenize(text, lang)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
