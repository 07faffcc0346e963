package search

import (
	"strings"

	"github.com/talentohub/search/internal/domain/result"
	"github.com/talentohub/search/internal/index"
)

// snippetRadius is the rune window kept on each side of the first
// matched term when cutting a snippet.
const snippetRadius = 60

// buildHighlights produces up to one snippet per matching field.
// Matching is a case-insensitive substring check of the stemmed query
// terms — a stem like "engine" still lands inside "Engineering".
func buildHighlights(doc *index.Document, terms []string) []result.Highlight {
	if len(terms) == 0 {
		return nil
	}
	fields := []struct {
		name string
		text string
	}{
		{"title", doc.Record.Title},
		{"description", doc.Record.Description},
		{"content", doc.Record.Body},
	}

	var highlights []result.Highlight
	for _, f := range fields {
		if h, ok := highlightField(f.name, f.text, terms); ok {
			highlights = append(highlights, h)
		}
	}
	return highlights
}

func highlightField(field, text string, terms []string) (result.Highlight, bool) {
	if text == "" {
		return result.Highlight{}, false
	}
	lower := strings.ToLower(text)

	first := -1
	for _, term := range terms {
		if i := strings.Index(lower, term); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first < 0 {
		return result.Highlight{}, false
	}

	snippet := cutSnippet(text, first)
	lowerSnippet := strings.ToLower(snippet)

	var spans []result.Span
	for _, term := range terms {
		from := 0
		for {
			i := strings.Index(lowerSnippet[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, result.Span{
				Start: len([]rune(snippet[:start])),
				End:   len([]rune(snippet[:start+len(term)])),
			})
			from = start + len(term)
		}
	}
	return result.Highlight{Field: field, Snippet: snippet, Spans: spans}, true
}

// cutSnippet trims text to snippetRadius runes on each side of the
// byte offset at, snapping to rune boundaries.
func cutSnippet(text string, at int) string {
	runes := []rune(text)
	if len(runes) <= 2*snippetRadius {
		return text
	}
	center := len([]rune(text[:at]))
	start := center - snippetRadius
	if start < 0 {
		start = 0
	}
	end := center + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
