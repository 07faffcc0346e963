// Package chi exposes the engine over HTTP: search, suggestions,
// reindex trigger, health, and metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/metrics"
	rebuilduc "github.com/talentohub/search/internal/usecase/rebuild"
	searchuc "github.com/talentohub/search/internal/usecase/search"
)

// Server routes HTTP requests to the search and rebuild services.
type Server struct {
	search  *searchuc.Service
	rebuild *rebuilduc.Service
	staging *rebuilduc.Staging
	logger  *zap.Logger
}

// NewServer creates the HTTP server.
func NewServer(
	search *searchuc.Service, rebuild *rebuilduc.Service,
	staging *rebuilduc.Staging, logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{search: search, rebuild: rebuild, staging: staging, logger: logger}
}

// Router assembles the chi router with middleware and all routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Post("/search", s.handleSearch)
	r.Get("/suggest", s.handleSuggest)
	r.Post("/reindex", s.handleReindex)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	q, err := req.toQuery()
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp, err := s.search.Search(r.Context(), &q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, responseToDTO(resp))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("q")
	suggestions, err := s.search.Suggest(prefix)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestionsToDTO(suggestions)})
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	var req reindexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	records := make([]content.Content, 0, len(req.Records))
	for i := range req.Records {
		records = append(records, req.Records[i].toContent())
	}
	s.staging.Put(req.Source, records)

	stats, err := s.rebuild.Rebuild(r.Context(), s.staging.Merged())
	if errors.Is(err, domain.ErrRebuildInProgress) {
		// The batch stays staged; the rebuild scheduler applies it
		// on its next cycle.
		writeJSON(w, http.StatusAccepted, reindexResponse{Staged: true})
		return
	}
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.staging.MarkClean()
	writeJSON(w, http.StatusOK, reindexResponse{
		Indexed:  stats.Indexed,
		Dropped:  stats.Dropped,
		Inactive: stats.Inactive,
		TookMs:   stats.Took.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.search.Stats()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Ready:     stats.Ready,
		Documents: stats.Documents,
		Terms:     stats.Terms,
	})
}

// statusByError maps domain sentinels to HTTP statuses.
var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrIndexNotReady, http.StatusServiceUnavailable},
	{domain.ErrInvalidPagination, http.StatusBadRequest},
	{domain.ErrRebuildInProgress, http.StatusConflict},
	{domain.ErrInvalidContent, http.StatusBadRequest},
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			writeError(w, m.status, err.Error())
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
