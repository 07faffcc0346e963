package chi

import (
	"time"

	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/domain/query"
	"github.com/talentohub/search/internal/domain/result"
)

type errorResponse struct {
	Error string `json:"error"`
}

// --- search ---

type searchRequest struct {
	Query    string         `json:"query"`
	Filters  *filtersDTO    `json:"filters,omitempty"`
	Sort     *sortDTO       `json:"sort,omitempty"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Options  *searchOptsDTO `json:"options,omitempty"`
}

type filtersDTO struct {
	ContentTypes []string   `json:"contentTypes,omitempty"` // "all" or absent = unrestricted
	DateFrom     *time.Time `json:"dateFrom,omitempty"`
	DateTo       *time.Time `json:"dateTo,omitempty"`
	Language     string     `json:"language,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Categories   []string   `json:"categories,omitempty"`
}

type sortDTO struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type searchOptsDTO struct {
	MinScore         float64 `json:"minScore"`
	FuzzyMatching    *bool   `json:"fuzzyMatching,omitempty"` // default true
	HighlightResults bool    `json:"highlightResults"`
	IncludeContent   *bool   `json:"includeContent,omitempty"` // default true
}

func (r *searchRequest) toQuery() (query.Query, error) {
	var filters query.Filters
	if r.Filters != nil {
		for _, t := range r.Filters.ContentTypes {
			if t == "all" {
				filters.ContentTypes = nil
				break
			}
			filters.ContentTypes = append(filters.ContentTypes, content.Type(t))
		}
		filters.DateFrom = r.Filters.DateFrom
		filters.DateTo = r.Filters.DateTo
		filters.Language = content.Language(r.Filters.Language)
		filters.Tags = r.Filters.Tags
		filters.Categories = r.Filters.Categories
	}

	var sort query.Sort
	if r.Sort != nil {
		sort = query.Sort{
			Field:     query.SortField(r.Sort.Field),
			Direction: query.SortDirection(r.Sort.Direction),
		}
	}

	opts := query.Options{Fuzzy: true, IncludeContent: true}
	if r.Options != nil {
		opts.MinScore = r.Options.MinScore
		opts.Highlight = r.Options.HighlightResults
		if r.Options.FuzzyMatching != nil {
			opts.Fuzzy = *r.Options.FuzzyMatching
		}
		if r.Options.IncludeContent != nil {
			opts.IncludeContent = *r.Options.IncludeContent
		}
	}

	return query.New(r.Query, filters, sort, r.Page, r.PageSize, opts)
}

type searchResponseDTO struct {
	Results     []itemDTO       `json:"results"`
	Total       int             `json:"total"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"totalPages"`
	Facets      facetsDTO       `json:"facets"`
	Suggestions []suggestionDTO `json:"suggestions"`
	Query       string          `json:"query"`
	SearchTime  int64           `json:"searchTime"`
	HasMore     bool            `json:"hasMore"`
}

type itemDTO struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Language    string         `json:"language"`
	Category    string         `json:"category,omitempty"`
	Author      string         `json:"author,omitempty"`
	Score       float64        `json:"score"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Highlights  []highlightDTO `json:"highlights,omitempty"`
}

type highlightDTO struct {
	Field   string    `json:"field"`
	Snippet string    `json:"snippet"`
	Spans   []spanDTO `json:"spans,omitempty"`
}

type spanDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type facetsDTO struct {
	Types      map[string]int `json:"types"`
	Categories []bucketDTO    `json:"categories"`
	Tags       []bucketDTO    `json:"tags"`
}

type bucketDTO struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type suggestionDTO struct {
	Text  string  `json:"text"`
	Kind  string  `json:"kind"`
	Score float64 `json:"score"`
}

type suggestResponse struct {
	Suggestions []suggestionDTO `json:"suggestions"`
}

func responseToDTO(resp *result.Response) searchResponseDTO {
	items := make([]itemDTO, 0, len(resp.Results))
	for i := range resp.Results {
		items = append(items, itemToDTO(&resp.Results[i]))
	}

	types := make(map[string]int, len(resp.Facets.Types))
	for t, n := range resp.Facets.Types {
		types[string(t)] = n
	}

	return searchResponseDTO{
		Results:     items,
		Total:       resp.Total,
		Page:        resp.Page,
		TotalPages:  resp.TotalPages,
		Facets: facetsDTO{
			Types:      types,
			Categories: bucketsToDTO(resp.Facets.Categories),
			Tags:       bucketsToDTO(resp.Facets.Tags),
		},
		Suggestions: suggestionsToDTO(resp.Suggestions),
		Query:       resp.Query,
		SearchTime:  resp.SearchTime,
		HasMore:     resp.HasMore,
	}
}

func itemToDTO(item *result.Item) itemDTO {
	dto := itemDTO{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		Description: item.Description,
		Content:     item.Body,
		Tags:        item.Tags,
		Language:    string(item.Language),
		Category:    item.Category,
		Author:      item.Author,
		Score:       item.Score,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	for _, h := range item.Highlights {
		spans := make([]spanDTO, 0, len(h.Spans))
		for _, sp := range h.Spans {
			spans = append(spans, spanDTO{Start: sp.Start, End: sp.End})
		}
		dto.Highlights = append(dto.Highlights, highlightDTO{
			Field:   h.Field,
			Snippet: h.Snippet,
			Spans:   spans,
		})
	}
	return dto
}

func bucketsToDTO(buckets []result.Bucket) []bucketDTO {
	out := make([]bucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucketDTO{Value: b.Value, Count: b.Count})
	}
	return out
}

func suggestionsToDTO(suggestions []result.Suggestion) []suggestionDTO {
	out := make([]suggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionDTO{Text: s.Text, Kind: string(s.Kind), Score: s.Score})
	}
	return out
}

// --- reindex ---

type reindexRequest struct {
	// Source labels the submitting collector; each source's batch
	// replaces its previous one.
	Source  string      `json:"source,omitempty"`
	Records []recordDTO `json:"records"`
}

type recordDTO struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	SearchableText string    `json:"searchableText"`
	Keywords       []string  `json:"keywords"`
	Language       string    `json:"language"`
	Boost          float64   `json:"boost"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	IsActive       bool      `json:"isActive"`

	// Per-type details: exactly one should be set, matching Type.
	Job    *jobDetailsDTO    `json:"job,omitempty"`
	Event  *eventDetailsDTO  `json:"event,omitempty"`
	Forum  *forumDetailsDTO  `json:"forum,omitempty"`
	Member *memberDetailsDTO `json:"member,omitempty"`
	Mentor *mentorDetailsDTO `json:"mentor,omitempty"`
	News   *newsDetailsDTO   `json:"news,omitempty"`
}

type jobDetailsDTO struct {
	Company     string `json:"company"`
	Location    string `json:"location"`
	SalaryRange string `json:"salaryRange"`
	Remote      bool   `json:"remote"`
	Category    string `json:"category"`
}

type eventDetailsDTO struct {
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	StartsAt  time.Time `json:"startsAt"`
	Organizer string    `json:"organizer"`
	Category  string    `json:"category"`
}

type forumDetailsDTO struct {
	Author   string `json:"author"`
	Replies  int    `json:"replies"`
	Views    int    `json:"views"`
	Category string `json:"category"`
}

type memberDetailsDTO struct {
	Headline string   `json:"headline"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
}

type mentorDetailsDTO struct {
	Expertise []string `json:"expertise"`
	Available bool     `json:"available"`
	Category  string   `json:"category"`
}

type newsDetailsDTO struct {
	Author   string `json:"author"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

func (r *recordDTO) toContent() content.Content {
	return content.Content{
		ID:             r.ID,
		Type:           content.Type(r.Type),
		Title:          r.Title,
		Description:    r.Description,
		Body:           r.Content,
		Tags:           r.Tags,
		SearchableText: r.SearchableText,
		Keywords:       r.Keywords,
		Language:       content.Language(r.Language),
		Details:        r.details(),
		Boost:          r.Boost,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		IsActive:       r.IsActive,
	}
}

func (r *recordDTO) details() content.Details {
	switch {
	case r.Job != nil:
		return content.JobDetails{
			Company:      r.Job.Company,
			Location:     r.Job.Location,
			SalaryRange:  r.Job.SalaryRange,
			Remote:       r.Job.Remote,
			CategoryName: r.Job.Category,
		}
	case r.Event != nil:
		return content.EventDetails{
			Venue:        r.Event.Venue,
			City:         r.Event.City,
			StartsAt:     r.Event.StartsAt,
			Organizer:    r.Event.Organizer,
			CategoryName: r.Event.Category,
		}
	case r.Forum != nil:
		return content.ForumDetails{
			AuthorName:   r.Forum.Author,
			Replies:      r.Forum.Replies,
			Views:        r.Forum.Views,
			CategoryName: r.Forum.Category,
		}
	case r.Member != nil:
		return content.MemberDetails{
			Headline: r.Member.Headline,
			Skills:   r.Member.Skills,
			Location: r.Member.Location,
		}
	case r.Mentor != nil:
		return content.MentorDetails{
			Expertise:    r.Mentor.Expertise,
			Available:    r.Mentor.Available,
			CategoryName: r.Mentor.Category,
		}
	case r.News != nil:
		return content.NewsDetails{
			AuthorName:   r.News.Author,
			Source:       r.News.Source,
			CategoryName: r.News.Category,
		}
	}
	return nil
}

type reindexResponse struct {
	Staged   bool  `json:"staged,omitempty"`
	Indexed  int   `json:"indexed"`
	Dropped  int   `json:"dropped"`
	Inactive int   `json:"inactive"`
	TookMs   int64 `json:"tookMs"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Ready     bool   `json:"ready"`
	Documents int    `json:"documents"`
	Terms     int    `json:"terms"`
}
