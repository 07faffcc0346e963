// Package rebuild implements wholesale index reconstruction: validate
// the incoming batch, build a fresh immutable snapshot, swap it in.
package rebuild

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/index"
	"github.com/talentohub/search/internal/metrics"
)

// Service rebuilds the live index. Single-writer: a rebuild arriving
// while one runs is rejected with ErrRebuildInProgress so callers
// coalesce instead of doing duplicate work.
type Service struct {
	handle *index.Handle
	logger *zap.Logger
}

// New creates a rebuild service.
func New(handle *index.Handle, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{handle: handle, logger: logger}
}

// Stats summarizes one rebuild.
type Stats struct {
	Indexed  int
	Dropped  int
	Inactive int
	Took     time.Duration
}

// Rebuild replaces the live index atomically. Malformed records are
// dropped individually and logged — a partial index beats no index.
// In-flight searches keep reading the previous snapshot until they
// finish; only the swap is atomic.
func (s *Service) Rebuild(ctx context.Context, records []content.Content) (Stats, error) {
	if !s.handle.BeginRebuild() {
		return Stats{}, domain.ErrRebuildInProgress
	}
	defer s.handle.EndRebuild()

	started := time.Now()

	valid := make([]content.Content, 0, len(records))
	var dropped, inactive int
	for i := range records {
		rec := records[i]
		if err := rec.Validate(); err != nil {
			dropped++
			s.logger.Warn("dropping record from rebuild",
				zap.String("id", rec.ID),
				zap.String("type", string(rec.Type)),
				zap.Error(err),
			)
			continue
		}
		if !rec.IsActive {
			inactive++
			continue
		}
		valid = append(valid, rec)
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	idx := index.Build(valid)
	s.handle.Swap(idx)

	stats := Stats{
		Indexed:  idx.TotalDocs(),
		Dropped:  dropped,
		Inactive: inactive,
		Took:     time.Since(started),
	}

	metrics.ObserveRebuild(stats.Took, stats.Dropped)
	metrics.SetIndexedDocuments(typeCountsByName(idx))

	s.logger.Info("index rebuilt",
		zap.Int("indexed", stats.Indexed),
		zap.Int("dropped", stats.Dropped),
		zap.Int("inactive", stats.Inactive),
		zap.Int("terms", idx.TermCount()),
		zap.Duration("took", stats.Took),
	)
	return stats, nil
}

func typeCountsByName(idx *index.Index) map[string]int {
	counts := make(map[string]int, len(idx.TypeCounts()))
	for t, n := range idx.TypeCounts() {
		counts[string(t)] = n
	}
	return counts
}
