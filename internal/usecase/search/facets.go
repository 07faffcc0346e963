package search

import (
	"sort"

	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/domain/result"
	"github.com/talentohub/search/internal/index"
)

// buildFacets aggregates counts over the filtered (pre-score)
// candidate set. Every known content type is listed, zero counts
// included; categories and tags are capped to the configured top-N.
func buildFacets(candidates []*index.Document, params Params) result.Facets {
	f := result.Facets{Types: make(map[content.Type]int, len(content.AllTypes))}
	for _, t := range content.AllTypes {
		f.Types[t] = 0
	}

	categories := make(map[string]int)
	tags := make(map[string]int)
	for _, doc := range candidates {
		f.Types[doc.Record.Type]++
		if c := doc.Record.Category(); c != "" {
			categories[c]++
		}
		for _, tag := range doc.Record.Tags {
			if tag != "" {
				tags[tag]++
			}
		}
	}

	f.Categories = topBuckets(categories, params.MaxFacetCategories)
	f.Tags = topBuckets(tags, params.MaxFacetTags)
	return f
}

// topBuckets sorts by count descending, value ascending on ties for a
// deterministic order, and keeps the first limit entries.
func topBuckets(counts map[string]int, limit int) []result.Bucket {
	buckets := make([]result.Bucket, 0, len(counts))
	for v, c := range counts {
		buckets = append(buckets, result.Bucket{Value: v, Count: c})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Value < buckets[j].Value
	})
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}
