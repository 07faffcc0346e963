package search

import (
	"sort"
	"strings"

	"github.com/talentohub/search/internal/domain/result"
	"github.com/talentohub/search/internal/index"
	"github.com/talentohub/search/internal/textproc"
)

// suggestion scores.
const (
	titleSuggestionScore = 1.0
	tagSuggestionScore   = 0.8
)

// buildSuggestions produces autocomplete candidates from the live
// index for the raw query: title matches first (prefix matches
// preferred over substring), then tag matches, merged by score.
func buildSuggestions(idx *index.Index, rawQuery string, params Params) []result.Suggestion {
	q := textproc.Normalize(rawQuery)
	if q == "" {
		return []result.Suggestion{}
	}

	suggestions := make([]result.Suggestion, 0, params.TitleSuggestions+params.TagSuggestions)
	suggestions = append(suggestions, titleSuggestions(idx, q, params.TitleSuggestions)...)
	suggestions = append(suggestions, tagSuggestions(idx, q, params.TagSuggestions)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

func titleSuggestions(idx *index.Index, q string, limit int) []result.Suggestion {
	var prefix, substring []result.Suggestion
	docs := idx.Docs()
	for i := range docs {
		doc := &docs[i]
		if doc.NormTitle == "" || !strings.Contains(doc.NormTitle, q) {
			continue
		}
		s := result.Suggestion{
			Text:  doc.Record.Title,
			Kind:  result.SuggestTitle,
			Score: titleSuggestionScore,
		}
		if strings.HasPrefix(doc.NormTitle, q) {
			prefix = append(prefix, s)
		} else {
			substring = append(substring, s)
		}
		if len(prefix) >= limit {
			break
		}
	}
	out := append(prefix, substring...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func tagSuggestions(idx *index.Index, q string, limit int) []result.Suggestion {
	seen := make(map[string]struct{})
	var out []result.Suggestion
	docs := idx.Docs()
	for i := range docs {
		doc := &docs[i]
		for j, normTag := range doc.NormTags {
			if !strings.Contains(normTag, q) {
				continue
			}
			raw := doc.Record.Tags[j]
			if _, dup := seen[normTag]; dup {
				continue
			}
			seen[normTag] = struct{}{}
			out = append(out, result.Suggestion{
				Text:  raw,
				Kind:  result.SuggestTag,
				Score: tagSuggestionScore,
			})
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}
