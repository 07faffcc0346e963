package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talentohub/search/internal/config"
	"github.com/talentohub/search/internal/domain"
	"github.com/talentohub/search/internal/domain/content"
	"github.com/talentohub/search/internal/index"
	logpkg "github.com/talentohub/search/internal/logger"
	"github.com/talentohub/search/internal/metrics"
	chiTransport "github.com/talentohub/search/internal/transport/chi"
	rebuilduc "github.com/talentohub/search/internal/usecase/rebuild"
	searchuc "github.com/talentohub/search/internal/usecase/search"
	"github.com/talentohub/search/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting searchd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("workers", cfg.Engine.Workers),
	)

	// Register engine metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	pool, err := ants.NewPool(cfg.Engine.Workers)
	if err != nil {
		logger.Fatal("Failed to create scoring pool", zap.Error(err))
	}
	defer pool.Release()

	// Composition root: one index handle shared by both services.
	handle := index.NewHandle()
	searchSvc := searchuc.New(handle, paramsFromConfig(cfg.Engine), pool, logger)
	rebuildSvc := rebuilduc.New(handle, logger)
	staging := rebuilduc.NewStaging()

	// Periodic rebuild: applies batches that were staged while a
	// rebuild was already running.
	var scheduler *cron.Cron
	if cfg.Rebuild.Schedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Rebuild.Schedule, func() {
			applyStaged(rebuildSvc, staging, cfg.Rebuild.SourceTimeoutSec, logger)
		})
		if err != nil {
			logger.Fatal("Invalid rebuild schedule",
				zap.String("schedule", cfg.Rebuild.Schedule), zap.Error(err))
		}
		scheduler.Start()
		logger.Info("Rebuild scheduler started", zap.String("schedule", cfg.Rebuild.Schedule))
	}

	server := chiTransport.NewServer(searchSvc, rebuildSvc, staging, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger)(server.Router()),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// applyStaged rebuilds from the staged batches if any arrived since
// the last successful rebuild. A rebuild already in flight is fine:
// the batches stay dirty and the next tick retries.
func applyStaged(
	rebuildSvc *rebuilduc.Service, staging *rebuilduc.Staging,
	timeoutSec int, logger *zap.Logger,
) {
	if !staging.Dirty() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	stats, err := rebuildSvc.Rebuild(ctx, staging.Merged())
	if errors.Is(err, domain.ErrRebuildInProgress) {
		logger.Debug("Scheduled rebuild skipped, one already running")
		return
	}
	if err != nil {
		logger.Error("Scheduled rebuild failed", zap.Error(err))
		return
	}
	staging.MarkClean()
	logger.Info("Scheduled rebuild applied staged batches",
		zap.Int("indexed", stats.Indexed),
		zap.Int("dropped", stats.Dropped),
		zap.Duration("took", stats.Took),
	)
}

func paramsFromConfig(ec config.EngineConfig) searchuc.Params {
	p := searchuc.DefaultParams()
	p.TitleWeight = ec.TitleWeight
	p.TitleBoost = ec.TitleBoost
	p.DescriptionWeight = ec.DescriptionWeight
	p.DescriptionBoost = ec.DescriptionBoost
	p.TagWeight = ec.TagWeight
	p.TagBoost = ec.TagBoost
	p.FuzzyMaxDistance = ec.FuzzyMaxDistance
	p.FuzzyPrefixLength = ec.FuzzyPrefixLength
	p.DefaultMinScore = ec.DefaultMinScore
	p.DefaultLanguage = content.Language(ec.DefaultLanguage)
	p.MaxFacetCategories = ec.MaxFacetCategories
	p.MaxFacetTags = ec.MaxFacetTags
	p.TitleSuggestions = ec.TitleSuggestions
	p.TagSuggestions = ec.TagSuggestions
	return p
}

// requestLogger emits a canonical log line per request and propagates
// the per-request logger through the context.
func requestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			ctx := logpkg.ContextWithLogger(r.Context(), logger)
			next.ServeHTTP(ww, r.WithContext(ctx))

			logger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
