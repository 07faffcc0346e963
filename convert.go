package search

import (
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/domain/query"
	"github.com/talentohub/search/internal/domain/result"
	searchuc "github.com/talentohub/search/internal/usecase/search"
)

// Tuning overrides scoring parameters. Zero-valued fields keep their
// defaults, so a partial Tuning only changes the knobs it names.
type Tuning struct {
	TitleWeight       float64
	TitleBoost        float64
	DescriptionWeight float64
	DescriptionBoost  float64
	TagWeight         float64
	TagBoost          float64

	ExactBonus     float64
	WildcardBonus  float64
	ProximityBonus float64

	FuzzyMaxDistance  int
	FuzzyPrefixLength int

	// DefaultMinScore applies when the query sets no threshold of its
	// own. Negative disables the default threshold entirely.
	DefaultMinScore float64

	RecencyWindowDays int
	RecencyBonus      float64

	MaxFacetCategories int
	MaxFacetTags       int
	TitleSuggestions   int
	TagSuggestions     int

	DefaultLanguage Language
}

func (t Tuning) apply(p searchuc.Params) searchuc.Params {
	setF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	setI := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}

	setF(&p.TitleWeight, t.TitleWeight)
	setF(&p.TitleBoost, t.TitleBoost)
	setF(&p.DescriptionWeight, t.DescriptionWeight)
	setF(&p.DescriptionBoost, t.DescriptionBoost)
	setF(&p.TagWeight, t.TagWeight)
	setF(&p.TagBoost, t.TagBoost)
	setF(&p.ExactBonus, t.ExactBonus)
	setF(&p.WildcardBonus, t.WildcardBonus)
	setF(&p.ProximityBonus, t.ProximityBonus)
	setI(&p.FuzzyMaxDistance, t.FuzzyMaxDistance)
	setI(&p.FuzzyPrefixLength, t.FuzzyPrefixLength)
	setF(&p.DefaultMinScore, t.DefaultMinScore)
	setI(&p.RecencyWindowDays, t.RecencyWindowDays)
	setF(&p.RecencyBonus, t.RecencyBonus)
	setI(&p.MaxFacetCategories, t.MaxFacetCategories)
	setI(&p.MaxFacetTags, t.MaxFacetTags)
	setI(&p.TitleSuggestions, t.TitleSuggestions)
	setI(&p.TagSuggestions, t.TagSuggestions)
	if t.DefaultLanguage != "" {
		p.DefaultLanguage = content.Language(t.DefaultLanguage)
	}
	return p
}

func contentsToDomain(records []Content) []content.Content {
	out := make([]content.Content, 0, len(records))
	for _, r := range records {
		out = append(out, content.Content{
			ID:             r.ID,
			Type:           content.Type(r.Type),
			Title:          r.Title,
			Description:    r.Description,
			Body:           r.Content,
			Tags:           r.Tags,
			SearchableText: r.SearchableText,
			Keywords:       r.Keywords,
			Language:       content.Language(r.Language),
			Details:        detailsToDomain(r.Details),
			Boost:          r.Boost,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
			IsActive:       r.IsActive,
		})
	}
	return out
}

func detailsToDomain(d Details) content.Details {
	switch v := d.(type) {
	case JobDetails:
		return content.JobDetails{
			Company:      v.Company,
			Location:     v.Location,
			SalaryRange:  v.SalaryRange,
			Remote:       v.Remote,
			CategoryName: v.Category,
		}
	case EventDetails:
		return content.EventDetails{
			Venue:        v.Venue,
			City:         v.City,
			StartsAt:     v.StartsAt,
			Organizer:    v.Organizer,
			CategoryName: v.Category,
		}
	case ForumDetails:
		return content.ForumDetails{
			AuthorName:   v.Author,
			Replies:      v.Replies,
			Views:        v.Views,
			CategoryName: v.Category,
		}
	case MemberDetails:
		return content.MemberDetails{
			Headline: v.Headline,
			Skills:   v.Skills,
			Location: v.Location,
		}
	case MentorDetails:
		return content.MentorDetails{
			Expertise:    v.Expertise,
			Available:    v.Available,
			CategoryName: v.Category,
		}
	case NewsDetails:
		return content.NewsDetails{
			AuthorName:   v.Author,
			Source:       v.Source,
			CategoryName: v.Category,
		}
	}
	return nil
}

func requestToDomain(req Request) (query.Query, error) {
	types := make([]content.Type, 0, len(req.Filters.ContentTypes))
	for _, t := range req.Filters.ContentTypes {
		if t == ContentAll {
			types = nil
			break
		}
		types = append(types, content.Type(t))
	}
	filters := query.Filters{
		ContentTypes: types,
		DateFrom:     req.Filters.DateFrom,
		DateTo:       req.Filters.DateTo,
		Language:     content.Language(req.Filters.Language),
		Tags:         req.Filters.Tags,
		Categories:   req.Filters.Categories,
	}

	opts := DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	return query.New(
		req.Query,
		filters,
		query.Sort{
			Field:     query.SortField(req.Sort.Field),
			Direction: query.SortDirection(req.Sort.Direction),
		},
		req.Page,
		req.PageSize,
		query.Options{
			MinScore:       opts.MinScore,
			Fuzzy:          opts.FuzzyMatching,
			Highlight:      opts.HighlightResults,
			IncludeContent: opts.IncludeContent,
		},
	)
}

func responseFromDomain(resp *result.Response) *Response {
	results := make([]Result, 0, len(resp.Results))
	for i := range resp.Results {
		results = append(results, resultFromDomain(&resp.Results[i]))
	}

	types := make(map[ContentType]int, len(resp.Facets.Types))
	for t, n := range resp.Facets.Types {
		types[ContentType(t)] = n
	}

	return &Response{
		Results:    results,
		Total:      resp.Total,
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
		Facets: Facets{
			Types:      types,
			Categories: bucketsFromDomain(resp.Facets.Categories),
			Tags:       bucketsFromDomain(resp.Facets.Tags),
		},
		Suggestions: suggestionsFromDomain(resp.Suggestions),
		Query:       resp.Query,
		SearchTime:  resp.SearchTime,
		HasMore:     resp.HasMore,
	}
}

func resultFromDomain(item *result.Item) Result {
	r := Result{
		ID:          item.ID,
		Type:        ContentType(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Body,
		Tags:        item.Tags,
		Language:    Language(item.Language),
		Category:    item.Category,
		Author:      item.Author,
		Score:       item.Score,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	for _, h := range item.Highlights {
		spans := make([]Span, 0, len(h.Spans))
		for _, sp := range h.Spans {
			spans = append(spans, Span{Start: sp.Start, End: sp.End})
		}
		r.Highlights = append(r.Highlights, Highlight{
			Field:   h.Field,
			Snippet: h.Snippet,
			Spans:   spans,
		})
	}
	return r
}

func bucketsFromDomain(buckets []result.Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Bucket{Value: b.Value, Count: b.Count})
	}
	return out
}

func suggestionsFromDomain(suggestions []result.Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, Suggestion{
			Text:  s.Text,
			Kind:  SuggestionKind(s.Kind),
			Score: s.Score,
		})
	}
	return out
}
