// Package index holds the in-memory search index: precomputed
// per-document token structures plus the corpus-wide document
// frequency table. An Index is immutable once built; rebuilds create
// a fresh instance and swap it in through a Handle.
package index

import (
	"time"

	"github.com/talentohub/search/internal/domain/content"
)

// Document is one indexed record with its precomputed token views.
type Document struct {
	Record content.Content

	// Tokens is the stemmed token stream of the searchable text,
	// positions preserved for proximity checks.
	Tokens []string
	// TermFreq maps each distinct token to its in-document count.
	TermFreq map[string]int

	TitleTokens map[string]struct{}
	DescTokens  map[string]struct{}
	TagTokens   map[string]struct{}

	// NormTitle and NormSearchable are normalized forms kept for
	// substring matches and suggestions.
	NormTitle      string
	NormSearchable string
	NormTags       []string
}

// HasToken reports whether the stemmed token occurs in the document.
func (d *Document) HasToken(token string) bool {
	_, ok := d.TermFreq[token]
	return ok
}

// Index is an immutable snapshot of the searchable corpus.
type Index struct {
	docs       []Document
	df         map[string]int
	typeCounts map[content.Type]int
	builtAt    time.Time
}

// Docs returns the indexed documents. Callers must not mutate.
func (x *Index) Docs() []Document { return x.docs }

// TotalDocs returns the number of indexed documents.
func (x *Index) TotalDocs() int { return len(x.docs) }

// DocFreq returns the number of documents containing the token,
// floored at 1 so IDF division is always defined.
func (x *Index) DocFreq(token string) int {
	if n := x.df[token]; n > 0 {
		return n
	}
	return 1
}

// TermCount returns the number of distinct indexed tokens.
func (x *Index) TermCount() int { return len(x.df) }

// TypeCounts returns the indexed document count per content type,
// including zero entries for every known type.
func (x *Index) TypeCounts() map[content.Type]int { return x.typeCounts }

// BuiltAt returns the snapshot build time.
func (x *Index) BuiltAt() time.Time { return x.builtAt }
