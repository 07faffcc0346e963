package query

import (
	"fmt"
	"time"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
)

// Query parameter limits.
const (
	// MaxQueryLength is the maximum allowed query string length.
	MaxQueryLength  = 1024
	DefaultPageSize = 20
	MaxPageSize     = 100
)

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

// Sort combines a sort field with a direction.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// Filters restricts the candidate set before scoring.
// Zero values mean "unrestricted" for every field.
type Filters struct {
	ContentTypes []content.Type // empty = all types
	DateFrom     *time.Time     // inclusive
	DateTo       *time.Time     // inclusive
	Language     content.Language
	Tags         []string // any-match
	Categories   []string // membership test against record category
}

// Options tunes scoring and response shaping.
type Options struct {
	// MinScore drops results below the threshold. Zero means "use the
	// engine default"; a negative value disables the threshold.
	MinScore       float64
	Fuzzy          bool
	Highlight      bool
	IncludeContent bool
}

// Query is a validated search request.
type Query struct {
	text     string
	filters  Filters
	sort     Sort
	page     int
	pageSize int
	opts     Options
}

// New validates and normalizes search parameters.
// Page is zero-based. A zero page size falls back to DefaultPageSize;
// sizes above MaxPageSize are clamped. Negative page or page size is
// an input-contract violation and returns ErrInvalidPagination.
func New(text string, filters Filters, sort Sort, page, pageSize int, opts Options) (Query, error) {
	if len(text) > MaxQueryLength {
		return Query{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if page < 0 {
		return Query{}, fmt.Errorf("%w: page must be >= 0, got %d", domain.ErrInvalidPagination, page)
	}
	if pageSize < 0 {
		return Query{}, fmt.Errorf("%w: page size must be > 0, got %d", domain.ErrInvalidPagination, pageSize)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	switch sort.Field {
	case SortRelevance, SortDate, SortTitle:
	case "":
		sort.Field = SortRelevance
	default:
		return Query{}, fmt.Errorf("unsupported sort field %q", sort.Field)
	}
	if sort.Direction == "" {
		sort.Direction = Desc
	}
	if sort.Direction != Asc && sort.Direction != Desc {
		return Query{}, fmt.Errorf("unsupported sort direction %q", sort.Direction)
	}
	for _, t := range filters.ContentTypes {
		if !t.IsValid() {
			return Query{}, fmt.Errorf("unknown content type filter %q", t)
		}
	}
	if filters.Language != "" && !filters.Language.IsValid() {
		return Query{}, fmt.Errorf("unsupported language filter %q", filters.Language)
	}

	return Query{
		text:     text,
		filters:  filters,
		sort:     sort,
		page:     page,
		pageSize: pageSize,
		opts:     opts,
	}, nil
}

// Text returns the raw query string.
func (q *Query) Text() string { return q.text }

// Filters returns the pre-score filters.
func (q *Query) Filters() Filters { return q.filters }

// Sort returns the result ordering.
func (q *Query) Sort() Sort { return q.sort }

// Page returns the zero-based page number.
func (q *Query) Page() int { return q.page }

// PageSize returns the page size.
func (q *Query) PageSize() int { return q.pageSize }

// Options returns the scoring and shaping options.
func (q *Query) Options() Options { return q.opts }
