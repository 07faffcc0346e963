package content

import (
	"fmt"
	"time"

	"github.com/talentohub/search/internal/domain"
)

// Type tags the origin domain of an indexed record.
type Type string

// Known content types. All seven are always reported in type facets.
const (
	TypeJob        Type = "job"
	TypeEvent      Type = "event"
	TypeForumTopic Type = "forumTopic"
	TypeForumPost  Type = "forumPost"
	TypeMember     Type = "member"
	TypeMentor     Type = "mentor"
	TypeNews       Type = "news"
)

// AllTypes lists every content type in facet display order.
var AllTypes = []Type{
	TypeJob, TypeEvent, TypeForumTopic, TypeForumPost,
	TypeMember, TypeMentor, TypeNews,
}

// IsValid reports whether t is a known content type.
func (t Type) IsValid() bool {
	for _, k := range AllTypes {
		if t == k {
			return true
		}
	}
	return false
}

// Language is the content language.
type Language string

// Supported languages.
const (
	Spanish Language = "es"
	English Language = "en"
)

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool { return l == Spanish || l == English }

// Boost bounds. Caller-assigned boosts are clamped into this range
// before a record enters the index.
const (
	MinBoost = 0.1
	MaxBoost = 3.0
)

// Content is one searchable record in the collector-normalized shape.
// Collectors for each source domain (jobs, events, forum, members,
// mentors, news) produce these wholesale on every rebuild.
type Content struct {
	ID             string
	Type           Type
	Title          string
	Description    string
	Body           string
	Tags           []string // insertion order preserved for display
	SearchableText string   // weighted-field concatenation, token source
	Keywords       []string // bounded set of precomputed significant words
	Language       Language
	Details        Details // per-type structured fields, nil allowed
	Boost          float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsActive       bool
}

// Validate checks the fields a record must carry to be indexable.
func (c *Content) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidContent)
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", domain.ErrInvalidContent, c.Type)
	}
	if !c.Language.IsValid() {
		return fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidContent, c.Language)
	}
	if c.Title == "" && c.SearchableText == "" {
		return fmt.Errorf("%w: record %s has no searchable text", domain.ErrInvalidContent, c.ID)
	}
	return nil
}

// ClampedBoost returns the boost bounded to [MinBoost, MaxBoost].
// A zero boost means "unset" and maps to 1.0.
func (c *Content) ClampedBoost() float64 {
	b := c.Boost
	if b == 0 {
		return 1.0
	}
	if b < MinBoost {
		return MinBoost
	}
	if b > MaxBoost {
		return MaxBoost
	}
	return b
}

// Category returns the facet category of the record, empty when the
// details variant carries none.
func (c *Content) Category() string {
	if c.Details == nil {
		return ""
	}
	return c.Details.Category()
}

// Author returns the display author of the record, empty when the
// details variant carries none.
func (c *Content) Author() string {
	if c.Details == nil {
		return ""
	}
	return c.Details.Author()
}
