package index

import "sync/atomic"

// Handle is the swappable owner of the live index. Readers grab the
// current snapshot with Current and keep using it for the whole
// query; a concurrent swap never invalidates an in-flight read.
// Rebuilds are single-writer: BeginRebuild admits one rebuild at a
// time and concurrent requests are rejected for the caller to coalesce.
type Handle struct {
	current    atomic.Pointer[Index]
	rebuilding atomic.Bool
}

// NewHandle creates an empty handle with no index yet.
func NewHandle() *Handle { return &Handle{} }

// Current returns the live snapshot, or false before the first
// successful rebuild. An index built from zero records is still
// "ready" — emptiness is not the same as absence.
func (h *Handle) Current() (*Index, bool) {
	idx := h.current.Load()
	return idx, idx != nil
}

// Swap atomically replaces the live snapshot.
func (h *Handle) Swap(idx *Index) { h.current.Store(idx) }

// BeginRebuild claims the single rebuild slot. Returns false when a
// rebuild is already running.
func (h *Handle) BeginRebuild() bool {
	return h.rebuilding.CompareAndSwap(false, true)
}

// EndRebuild releases the rebuild slot.
func (h *Handle) EndRebuild() { h.rebuilding.Store(false) }
