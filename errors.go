package search

import "github.com/talentohub/search/internal/domain"

// Sentinel errors returned by the engine. Match with errors.Is.
var (
	// ErrIndexNotReady means Search or Suggest ran before the first
	// successful RebuildIndex.
	ErrIndexNotReady = domain.ErrIndexNotReady
	// ErrRebuildInProgress means a rebuild was rejected because one is
	// already running; callers coalesce instead of retrying.
	ErrRebuildInProgress = domain.ErrRebuildInProgress
	// ErrInvalidPagination means the request carried a negative page
	// or page size.
	ErrInvalidPagination = domain.ErrInvalidPagination
	// ErrInvalidContent marks a record that failed validation.
	ErrInvalidContent = domain.ErrInvalidContent
)
