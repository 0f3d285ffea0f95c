package analyzer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mohamedkhairy/stock-analyzer/internal/analysis"
	"github.com/mohamedkhairy/stock-analyzer/internal/config"
	"github.com/mohamedkhairy/stock-analyzer/internal/data"
	"github.com/mohamedkhairy/stock-analyzer/internal/models"
	"github.com/mohamedkhairy/stock-analyzer/internal/report"
	"github.com/mohamedkhairy/stock-analyzer/pkg/indicator"
	"github.com/mohamedkhairy/stock-analyzer/pkg/logger"
)

// SnapshotSink receives the latest indicator values for a symbol after each run
type SnapshotSink interface {
	Publish(ctx context.Context, symbol string, snap models.Snapshot) error
}

// RunStats holds counters for the health endpoint
type RunStats struct {
	RunsCompleted   int64     `json:"runs_completed"`
	SymbolsAnalyzed int64     `json:"symbols_analyzed"`
	SymbolsFailed   int64     `json:"symbols_failed"`
	LastRunAt       time.Time `json:"last_run_at"`
	LastRunDuration string    `json:"last_run_duration"`
}

// Runner executes the analysis pipeline for all configured symbols:
// fetch history, compute the indicator series, derive the latest
// snapshot and price trends, log the report and publish the snapshot.
type Runner struct {
	provider data.Provider
	engine   *indicator.Engine
	sink     SnapshotSink
	cfg      config.AnalyzerConfig
	symbols  []string

	mu      sync.RWMutex
	running bool
	stats   RunStats
}

// NewRunner creates a runner over the given provider, engine and sink
func NewRunner(provider data.Provider, engine *indicator.Engine, sink SnapshotSink, cfg config.AnalyzerConfig, symbols []string) *Runner {
	return &Runner{
		provider: provider,
		engine:   engine,
		sink:     sink,
		cfg:      cfg,
		symbols:  symbols,
	}
}

// RunAll analyzes every configured symbol. Failures are logged and
// counted per symbol; a failing symbol does not stop the run.
func (r *Runner) RunAll(ctx context.Context) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		logger.Warn("Analysis run already in progress, skipping")
		return
	}
	r.running = true
	r.mu.Unlock()

	start := time.Now()
	logger.Info("Starting analysis run",
		logger.Int("symbols", len(r.symbols)),
		logger.Int("history_days", r.cfg.HistoryDays),
	)

	var analyzed, failed int64
	for _, symbol := range r.symbols {
		if ctx.Err() != nil {
			logger.Warn("Analysis run cancelled",
				logger.ErrorField(ctx.Err()),
			)
			break
		}
		if err := r.runSymbol(ctx, symbol, start); err != nil {
			failed++
			logger.ComputeTotal.WithLabelValues(symbol, "error").Inc()
			logger.Error("Symbol analysis failed",
				logger.ErrorField(err),
				logger.String("symbol", symbol),
			)
			continue
		}
		analyzed++
		logger.ComputeTotal.WithLabelValues(symbol, "success").Inc()
	}

	duration := time.Since(start)

	r.mu.Lock()
	r.running = false
	r.stats.RunsCompleted++
	r.stats.SymbolsAnalyzed += analyzed
	r.stats.SymbolsFailed += failed
	r.stats.LastRunAt = start.UTC()
	r.stats.LastRunDuration = duration.String()
	r.mu.Unlock()

	logger.Info("Analysis run completed",
		logger.Int64("analyzed", analyzed),
		logger.Int64("failed", failed),
		logger.Duration("duration", duration),
	)
}

func (r *Runner) runSymbol(ctx context.Context, symbol string, now time.Time) error {
	fetchCtx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout)
	defer cancel()

	from := now.AddDate(0, 0, -r.cfg.HistoryDays)

	fetchStart := time.Now()
	series, err := r.provider.FetchDaily(fetchCtx, symbol, from, now)
	logger.FetchDuration.WithLabelValues(r.provider.GetName(), symbol).Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		return fmt.Errorf("fetch history for %s: %w", symbol, err)
	}

	computeStart := time.Now()
	indicators, err := r.engine.Compute(series)
	logger.ComputeDuration.WithLabelValues(symbol).Observe(time.Since(computeStart).Seconds())
	if err != nil {
		return fmt.Errorf("compute indicators for %s: %w", symbol, err)
	}

	snap, err := r.engine.Snapshot(indicators)
	if err != nil {
		return fmt.Errorf("snapshot for %s: %w", symbol, err)
	}

	trends, err := analysis.ComputeTrends(series)
	if err != nil {
		return fmt.Errorf("trends for %s: %w", symbol, err)
	}

	logger.Info("Symbol analyzed",
		logger.String("symbol", symbol),
		logger.Int("bars", len(series)),
		logger.String("snapshot", report.FormatSnapshot(snap)),
		logger.String("trends", report.FormatTrends(trends)),
	)

	if r.sink != nil {
		if err := r.sink.Publish(ctx, symbol, *snap); err != nil {
			logger.SnapshotsPublished.WithLabelValues(symbol, "error").Inc()
			return fmt.Errorf("publish snapshot for %s: %w", symbol, err)
		}
		logger.SnapshotsPublished.WithLabelValues(symbol, "success").Inc()
	}

	return nil
}

// IsRunning reports whether an analysis run is in progress
func (r *Runner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

// GetStats returns a copy of the run counters
func (r *Runner) GetStats() RunStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}
