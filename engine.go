// Package search is the in-process full-text search and relevance
// engine of the talentohub community platform. It indexes normalized
// content records from every source domain (jobs, events, forum,
// members, mentors, news) and answers bilingual, typo-tolerant
// queries with ranked, faceted, paginated results and suggestions.
//
// The engine exposes two operations: RebuildIndex replaces the live
// index wholesale and atomically, and Search runs one query against
// whichever snapshot is live. Searches are pure reads and run in
// parallel with each other and with a concurrent rebuild.
package search

import (
	"context"
	"fmt"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/talentohub/search/internal/index"
	rebuilduc "github.com/talentohub/search/internal/usecase/rebuild"
	searchuc "github.com/talentohub/search/internal/usecase/search"
)

// Engine is the search engine entry point.
type Engine struct {
	handle     *index.Handle
	pool       *ants.Pool
	searchSvc  *searchuc.Service
	rebuildSvc *rebuilduc.Service
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger  *zap.Logger
	params  searchuc.Params
	workers int
}

// WithLogger sets the engine logger. Default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// WithWorkers sets the scoring pool size. Default is NumCPU.
func WithWorkers(n int) Option {
	return func(c *engineConfig) { c.workers = n }
}

// WithTuning overrides scoring parameters. Zero-valued fields keep
// their defaults.
func WithTuning(t Tuning) Option {
	return func(c *engineConfig) { c.params = t.apply(c.params) }
}

// New creates an engine. The index starts unbuilt: Search returns an
// "index not ready" error until the first successful RebuildIndex.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{
		logger:  zap.NewNop(),
		params:  searchuc.DefaultParams(),
		workers: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	pool, err := ants.NewPool(cfg.workers)
	if err != nil {
		return nil, fmt.Errorf("create scoring pool: %w", err)
	}

	handle := index.NewHandle()
	return &Engine{
		handle:     handle,
		pool:       pool,
		searchSvc:  searchuc.New(handle, cfg.params, pool, cfg.logger),
		rebuildSvc: rebuilduc.New(handle, cfg.logger),
		logger:     cfg.logger,
	}, nil
}

// Close releases the scoring pool. In-flight searches finish scoring
// inline.
func (e *Engine) Close() {
	e.pool.Release()
}

// RebuildIndex replaces the live index atomically with one built from
// records. Malformed records are dropped individually and counted in
// the returned stats; inactive records are skipped. A rebuild
// arriving while another runs returns ErrRebuildInProgress.
func (e *Engine) RebuildIndex(ctx context.Context, records []Content) (RebuildStats, error) {
	stats, err := e.rebuildSvc.Rebuild(ctx, contentsToDomain(records))
	if err != nil {
		return RebuildStats{}, fmt.Errorf("rebuild index: %w", err)
	}
	return RebuildStats{
		Indexed:  stats.Indexed,
		Dropped:  stats.Dropped,
		Inactive: stats.Inactive,
		Took:     stats.Took,
	}, nil
}

// Search executes one query. Empty or unusable queries return an
// empty response, never an error; ErrIndexNotReady and invalid
// pagination are the only failures. Context cancellation aborts
// scoring early and returns the partial result.
func (e *Engine) Search(ctx context.Context, req Request) (*Response, error) {
	q, err := requestToDomain(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	resp, err := e.searchSvc.Search(ctx, &q)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return responseFromDomain(resp), nil
}

// Suggest returns autocomplete candidates for a raw prefix without
// running a full search.
func (e *Engine) Suggest(prefix string) ([]Suggestion, error) {
	suggestions, err := e.searchSvc.Suggest(prefix)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return suggestionsFromDomain(suggestions), nil
}

// Stats reports the state of the live index.
func (e *Engine) Stats() Stats {
	s := e.searchSvc.Stats()
	counts := make(map[ContentType]int, len(s.TypeCounts))
	for t, n := range s.TypeCounts {
		counts[ContentType(t)] = n
	}
	return Stats{
		Ready:      s.Ready,
		Documents:  s.Documents,
		Terms:      s.Terms,
		TypeCounts: counts,
		BuiltAt:    s.BuiltAt,
	}
}
