package search

import (
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/fuzzy"
)

// Params are the scoring and response-shaping knobs. Field bonus =
// weight × boost, so with the defaults title (3.0) outranks tags
// (1.8) which outrank description (1.1).
type Params struct {
	TitleWeight       float64
	TitleBoost        float64
	DescriptionWeight float64
	DescriptionBoost  float64
	TagWeight         float64
	TagBoost          float64

	// ExactBonus is added per query term found as a raw substring of
	// the searchable text; it catches matches the stemmer would
	// normalize away.
	ExactBonus     float64
	WildcardBonus  float64
	ProximityBonus float64

	FuzzyMaxDistance  int
	FuzzyPrefixLength int

	// DefaultMinScore applies when the query does not set a
	// threshold of its own.
	DefaultMinScore float64

	RecencyWindowDays int
	RecencyBonus      float64

	MaxFacetCategories int
	MaxFacetTags       int
	TitleSuggestions   int
	TagSuggestions     int

	// DefaultLanguage stems the query when no language filter is set.
	DefaultLanguage content.Language
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		TitleWeight:       2.0,
		TitleBoost:        1.5,
		DescriptionWeight: 1.0,
		DescriptionBoost:  1.1,
		TagWeight:         1.5,
		TagBoost:          1.2,

		ExactBonus:     2.0,
		WildcardBonus:  1.5,
		ProximityBonus: 2.0,

		FuzzyMaxDistance:  fuzzy.DefaultMaxDistance,
		FuzzyPrefixLength: fuzzy.DefaultPrefixLength,

		DefaultMinScore: 0.1,

		RecencyWindowDays: 365,
		RecencyBonus:      0.1,

		MaxFacetCategories: 10,
		MaxFacetTags:       20,
		TitleSuggestions:   5,
		TagSuggestions:     3,

		DefaultLanguage: content.Spanish,
	}
}
