package rebuild

import (
	"sort"
	"sync"

	"github.com/talentohub/search/internal/domain/content"
)

// DefaultSource names batches submitted without a source label.
const DefaultSource = "default"

// Staging accumulates per-collector record batches between rebuilds.
// Each collector (jobs, events, forum, …) replaces its own batch
// wholesale; the merged snapshot of all batches is what a rebuild
// indexes. Batches that arrive while a rebuild is running stay dirty
// and are applied on the next cycle.
type Staging struct {
	mu      sync.Mutex
	batches map[string][]content.Content
	dirty   bool
}

// NewStaging creates an empty staging area.
func NewStaging() *Staging {
	return &Staging{batches: make(map[string][]content.Content)}
}

// Put replaces the batch for source and marks the staging dirty.
func (s *Staging) Put(source string, records []content.Content) {
	if source == "" {
		source = DefaultSource
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[source] = records
	s.dirty = true
}

// Merged returns all staged batches as one record set, sources in
// name order so the rebuild input is deterministic.
func (s *Staging) Merged() []content.Content {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources := make([]string, 0, len(s.batches))
	total := 0
	for name, batch := range s.batches {
		sources = append(sources, name)
		total += len(batch)
	}
	sort.Strings(sources)

	merged := make([]content.Content, 0, total)
	for _, name := range sources {
		merged = append(merged, s.batches[name]...)
	}
	return merged
}

// Dirty reports whether batches arrived since the last MarkClean.
func (s *Staging) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkClean records that the current staged state has been indexed.
func (s *Staging) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}
