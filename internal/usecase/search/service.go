// Package search implements the query orchestrator: parse, filter,
// score, sort, facet, suggest, paginate.
package search

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/domain/query"
	"github.com/talentohub/search/internal/domain/result"
	"github.com/talentohub/search/internal/index"
	"github.com/talentohub/search/internal/metrics"
	"github.com/talentohub/search/internal/syntax"
	"github.com/talentohub/search/internal/textproc"
)

// minParallel is the candidate count below which scoring stays on the
// calling goroutine — pool dispatch overhead beats the win for tiny sets.
const minParallel = 64

// Service answers search queries against whichever index snapshot is
// live at call time. Queries are pure reads and run fully in parallel
// with each other and with rebuilds.
type Service struct {
	handle *index.Handle
	params Params
	pool   *ants.Pool
	logger *zap.Logger
}

// New creates a search service. A nil pool scores serially.
func New(handle *index.Handle, params Params, pool *ants.Pool, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{handle: handle, params: params, pool: pool, logger: logger}
}

// Stats describes the live index.
type Stats struct {
	Ready      bool
	Documents  int
	Terms      int
	TypeCounts map[content.Type]int
	BuiltAt    time.Time
}

// Stats reports the state of the live snapshot.
func (s *Service) Stats() Stats {
	idx, ok := s.handle.Current()
	if !ok {
		return Stats{TypeCounts: map[content.Type]int{}}
	}
	counts := make(map[content.Type]int, len(idx.TypeCounts()))
	for t, n := range idx.TypeCounts() {
		counts[t] = n
	}
	return Stats{
		Ready:      true,
		Documents:  idx.TotalDocs(),
		Terms:      idx.TermCount(),
		TypeCounts: counts,
		BuiltAt:    idx.BuiltAt(),
	}
}

// Suggest returns autocomplete candidates for a raw prefix, without
// running a full search.
func (s *Service) Suggest(prefix string) ([]result.Suggestion, error) {
	idx, ok := s.handle.Current()
	if !ok {
		return nil, domain.ErrIndexNotReady
	}
	return buildSuggestions(idx, prefix, s.params), nil
}

// Search executes one query against the current snapshot. A query
// with no usable terms returns an empty response, never an error;
// the only hard failures are an unbuilt index and invalid input
// (caught earlier by query.New). Context cancellation aborts scoring
// early and returns what was scored so far.
func (s *Service) Search(ctx context.Context, q *query.Query) (*result.Response, error) {
	started := time.Now()

	idx, ok := s.handle.Current()
	if !ok {
		return nil, domain.ErrIndexNotReady
	}

	resp := result.EmptyResponse(q.Text())
	resp.Page = q.Page()

	syn := syntax.Parse(q.Text())
	if syn.IsEmpty() {
		resp.SearchTime = time.Since(started).Milliseconds()
		return resp, nil
	}

	filters := applyFieldFilters(q.Filters(), syn.Fields)
	lang := filters.Language
	if lang == "" {
		lang = s.params.DefaultLanguage
	}
	cq := compile(&syn, lang)

	// Pre-score filtering: never score a document that cannot qualify.
	docs := idx.Docs()
	candidates := make([]*index.Document, 0, len(docs))
	for i := range docs {
		if matchesFilters(&docs[i], &filters) {
			candidates = append(candidates, &docs[i])
		}
	}

	resp.Facets = buildFacets(candidates, s.params)
	resp.Suggestions = buildSuggestions(idx, q.Text(), s.params)

	scores := s.scoreAll(ctx, idx, candidates, cq, q.Options().Fuzzy)

	minScore := s.resolveMinScore(q.Options().MinScore)
	type scoredDoc struct {
		doc   *index.Document
		score float64
	}
	kept := make([]scoredDoc, 0, len(candidates))
	for i, doc := range candidates {
		if scores[i] > 0 && scores[i] >= minScore {
			kept = append(kept, scoredDoc{doc: doc, score: scores[i]})
		}
	}

	// Relevance order is the default; ties keep encounter order for
	// reproducibility, hence the stable sorts throughout.
	switch q.Sort().Field {
	case query.SortDate:
		asc := q.Sort().Direction == query.Asc
		sort.SliceStable(kept, func(i, j int) bool {
			if asc {
				return kept[i].doc.Record.CreatedAt.Before(kept[j].doc.Record.CreatedAt)
			}
			return kept[i].doc.Record.CreatedAt.After(kept[j].doc.Record.CreatedAt)
		})
	case query.SortTitle:
		asc := q.Sort().Direction == query.Asc
		sort.SliceStable(kept, func(i, j int) bool {
			if asc {
				return kept[i].doc.NormTitle < kept[j].doc.NormTitle
			}
			return kept[i].doc.NormTitle > kept[j].doc.NormTitle
		})
	default: // relevance: score descending, direction ignored
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].score > kept[j].score
		})
	}

	total := len(kept)
	pageSize := q.PageSize()
	start := q.Page() * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	opts := q.Options()
	items := make([]result.Item, 0, end-start)
	for _, sd := range kept[start:end] {
		items = append(items, buildItem(sd.doc, sd.score, cq.terms, opts))
	}

	resp.Results = items
	resp.Total = total
	resp.TotalPages = (total + pageSize - 1) / pageSize
	resp.HasMore = q.Page()*pageSize+pageSize < total
	resp.SearchTime = time.Since(started).Milliseconds()

	metrics.ObserveSearch(time.Since(started), total)
	s.logger.Debug("search executed",
		zap.String("query", q.Text()),
		zap.Int("candidates", len(candidates)),
		zap.Int("total", total),
		zap.Int64("took_ms", resp.SearchTime),
	)
	return resp, nil
}

// scoreAll computes one score per candidate. Documents score
// independently, so the work fans out over the ants pool; context
// cancellation stops further dispatch and leaves the tail at zero.
func (s *Service) scoreAll(
	ctx context.Context, idx *index.Index,
	candidates []*index.Document, cq compiledQuery, fuzzyOn bool,
) []float64 {
	sc := newScorer(idx, s.params, cq, fuzzyOn)
	scores := make([]float64, len(candidates))

	if s.pool == nil || len(candidates) < minParallel {
		for i, doc := range candidates {
			if ctx.Err() != nil {
				break
			}
			scores[i] = sc.score(doc)
		}
		return scores
	}

	var wg sync.WaitGroup
	for i := range candidates {
		if ctx.Err() != nil {
			break
		}
		i := i
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			scores[i] = sc.score(candidates[i])
		})
		if err != nil {
			// Pool unavailable: score inline.
			scores[i] = sc.score(candidates[i])
			wg.Done()
		}
	}
	wg.Wait()
	return scores
}

func (s *Service) resolveMinScore(requested float64) float64 {
	if requested < 0 {
		return 0
	}
	if requested == 0 {
		return s.params.DefaultMinScore
	}
	return requested
}

func matchesFilters(doc *index.Document, f *query.Filters) bool {
	rec := &doc.Record
	if len(f.ContentTypes) > 0 {
		ok := false
		for _, t := range f.ContentTypes {
			if rec.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.Language != "" && rec.Language != f.Language {
		return false
	}
	if f.DateFrom != nil && rec.CreatedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && rec.CreatedAt.After(*f.DateTo) {
		return false
	}
	if len(f.Tags) > 0 && !anyTagMatch(doc, f.Tags) {
		return false
	}
	if len(f.Categories) > 0 {
		cat := textproc.Normalize(rec.Category())
		ok := false
		for _, c := range f.Categories {
			if cat != "" && cat == textproc.Normalize(c) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func anyTagMatch(doc *index.Document, want []string) bool {
	for _, w := range want {
		n := textproc.Normalize(w)
		if n == "" {
			continue
		}
		for _, have := range doc.NormTags {
			if have == n {
				return true
			}
		}
	}
	return false
}

func buildItem(doc *index.Document, score float64, terms []string, opts query.Options) result.Item {
	rec := &doc.Record
	item := result.Item{
		ID:          rec.ID,
		Type:        rec.Type,
		Title:       rec.Title,
		Description: rec.Description,
		Tags:        rec.Tags,
		Language:    rec.Language,
		Category:    rec.Category(),
		Author:      rec.Author(),
		Score:       score,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
	if opts.IncludeContent {
		item.Body = rec.Body
	}
	if opts.Highlight {
		item.Highlights = buildHighlights(doc, terms)
	}
	return item
}
