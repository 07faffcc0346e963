package result

import (
	"time"

	"github.com/talentohub/search/internal/domain/content"
)

// Span marks a matched range inside a snippet, in runes.
type Span struct {
	Start int
	End   int
}

// Highlight is one matched snippet of a result field.
type Highlight struct {
	Field   string // title, description, content
	Snippet string
	Spans   []Span
}

// Item is a single search hit: a denormalized projection of the
// matched record plus its computed score.
type Item struct {
	ID          string
	Type        content.Type
	Title       string
	Description string
	Body        string // blanked when includeContent is off
	Tags        []string
	Language    content.Language
	Category    string
	Author      string
	Score       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Highlights  []Highlight
}

// Facets aggregates counts over the filtered candidate set.
type Facets struct {
	Types      map[content.Type]int // all known types, zero counts included
	Categories []Bucket             // top categories by count
	Tags       []Bucket             // top tags by count
}

// Bucket is one facet value with its count.
type Bucket struct {
	Value string
	Count int
}

// SuggestionKind distinguishes suggestion sources.
type SuggestionKind string

// Suggestion kinds.
const (
	SuggestTitle SuggestionKind = "title"
	SuggestTag   SuggestionKind = "tag"
)

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Text  string
	Kind  SuggestionKind
	Score float64
}

// Response is a full search answer: one result page plus aggregates.
type Response struct {
	Results     []Item
	Total       int
	Page        int
	TotalPages  int
	Facets      Facets
	Suggestions []Suggestion
	Query       string
	SearchTime  int64 // milliseconds
	HasMore     bool
}

// EmptyResponse returns the fail-soft answer for queries that match
// nothing or carry no usable terms.
func EmptyResponse(queryText string) *Response {
	f := Facets{Types: make(map[content.Type]int, len(content.AllTypes))}
	for _, t := range content.AllTypes {
		f.Types[t] = 0
	}
	return &Response{
		Results:     []Item{},
		Facets:      f,
		Suggestions: []Suggestion{},
		Query:       queryText,
	}
}
