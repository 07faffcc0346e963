package domain

import "errors"

var (
	// ErrIndexNotReady signals a search before the first successful rebuild.
	ErrIndexNotReady = errors.New("index not ready")
	// ErrRebuildInProgress signals a rebuild request while another is running.
	ErrRebuildInProgress = errors.New("rebuild in progress")
	// ErrInvalidPagination signals a negative page or non-positive page size.
	ErrInvalidPagination = errors.New("invalid pagination")
	// ErrInvalidContent signals a content record that cannot be indexed.
	ErrInvalidContent = errors.New("invalid content")
)
