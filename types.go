package search

import "time"

// ContentType tags the origin domain of a record.
type ContentType string

// Known content types. ContentAll is only valid inside
// Filters.ContentTypes, where it lifts the type restriction.
const (
	ContentAll        ContentType = "all"
	ContentJob        ContentType = "job"
	ContentEvent      ContentType = "event"
	ContentForumTopic ContentType = "forumTopic"
	ContentForumPost  ContentType = "forumPost"
	ContentMember     ContentType = "member"
	ContentMentor     ContentType = "mentor"
	ContentNews       ContentType = "news"
)

// Language is a supported content language.
type Language string

// Supported languages.
const (
	Spanish Language = "es"
	English Language = "en"
)

// Content is one searchable record in the collector-normalized shape.
// SearchableText may be left empty; the engine then composes it from
// the other text fields. Boost is clamped to [0.1, 3.0] at indexing
// time, zero meaning 1.0. Records with IsActive=false are never
// indexed.
type Content struct {
	ID             string
	Type           ContentType
	Title          string
	Description    string
	Content        string
	Tags           []string
	SearchableText string
	Keywords       []string
	Language       Language
	Details        Details
	Boost          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsActive       bool
}

// Details is the per-content-type structured metadata variant.
type Details interface {
	isDetails()
}

// JobDetails describes a job posting.
type JobDetails struct {
	Company     string
	Location    string
	SalaryRange string
	Remote      bool
	Category    string
}

func (JobDetails) isDetails() {}

// EventDetails describes a community event.
type EventDetails struct {
	Venue     string
	City      string
	StartsAt  time.Time
	Organizer string
	Category  string
}

func (EventDetails) isDetails() {}

// ForumDetails describes a forum topic or post.
type ForumDetails struct {
	Author   string
	Replies  int
	Views    int
	Category string
}

func (ForumDetails) isDetails() {}

// MemberDetails describes a member profile.
type MemberDetails struct {
	Headline string
	Skills   []string
	Location string
}

func (MemberDetails) isDetails() {}

// MentorDetails describes a mentor profile.
type MentorDetails struct {
	Expertise []string
	Available bool
	Category  string
}

func (MentorDetails) isDetails() {}

// NewsDetails describes a published article.
type NewsDetails struct {
	Author   string
	Source   string
	Category string
}

func (NewsDetails) isDetails() {}

// SortField selects the result ordering key.
type SortField string

// Supported sort fields.
const (
	SortRelevance SortField = "relevance"
	SortDate      SortField = "date"
	SortTitle     SortField = "title"
)

// SortDirection is ascending or descending.
type SortDirection string

// Sort directions.
const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// Sort combines a field with a direction. The zero value means
// relevance, descending.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// Filters restricts the candidate set before scoring. Zero values
// mean unrestricted.
type Filters struct {
	ContentTypes []ContentType
	DateFrom     *time.Time // inclusive
	DateTo       *time.Time // inclusive
	Language     Language
	Tags         []string // any-match
	Categories   []string
}

// Options tunes scoring and response shaping.
type Options struct {
	// MinScore drops results below the threshold. Zero uses the
	// engine default; negative disables the threshold.
	MinScore         float64
	FuzzyMatching    bool
	HighlightResults bool
	IncludeContent   bool
}

// DefaultOptions returns the options applied when a request carries
// none: fuzzy matching on, content included, no highlighting.
func DefaultOptions() Options {
	return Options{FuzzyMatching: true, IncludeContent: true}
}

// Request is one search call.
type Request struct {
	Query    string
	Filters  Filters
	Sort     Sort
	Page     int // zero-based
	PageSize int // 0 = default (20), capped at 100
	Options  *Options
}

// Span marks a matched range inside a snippet, in runes.
type Span struct {
	Start int
	End   int
}

// Highlight is one matched snippet of a result field.
type Highlight struct {
	Field   string
	Snippet string
	Spans   []Span
}

// Result is a single search hit.
type Result struct {
	ID          string
	Type        ContentType
	Title       string
	Description string
	Content     string
	Tags        []string
	Language    Language
	Category    string
	Author      string
	Score       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Highlights  []Highlight
}

// Bucket is one facet value with its count.
type Bucket struct {
	Value string
	Count int
}

// Facets aggregates counts over the filtered candidate set.
type Facets struct {
	Types      map[ContentType]int
	Categories []Bucket
	Tags       []Bucket
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

// Response is a full search answer.
type Response struct {
	Results     []Result
	Total       int
	Page        int
	TotalPages  int
	Facets      Facets
	Suggestions []Suggestion
	Query       string
	SearchTime  int64 // milliseconds
	HasMore     bool
}

// RebuildStats summarizes one index rebuild.
type RebuildStats struct {
	Indexed  int
	Dropped  int
	Inactive int
	Took     time.Duration
}

// Stats describes the live index.
type Stats struct {
	Ready      bool
	Documents  int
	Terms      int
	TypeCounts map[ContentType]int
	BuiltAt    time.Time
}
