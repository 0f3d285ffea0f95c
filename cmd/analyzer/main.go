package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/mohamedkhairy/stock-analyzer/internal/analyzer"
	"github.com/mohamedkhairy/stock-analyzer/internal/config"
	"github.com/mohamedkhairy/stock-analyzer/internal/data"
	"github.com/mohamedkhairy/stock-analyzer/internal/pubsub"
	"github.com/mohamedkhairy/stock-analyzer/pkg/indicator"
	"github.com/mohamedkhairy/stock-analyzer/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting analyzer service",
		logger.String("health_port", fmt.Sprintf("%d", cfg.Analyzer.HealthCheckPort)),
		logger.String("schedule", cfg.Analyzer.Schedule),
		logger.Int("symbols", len(cfg.MarketData.Symbols)),
	)

	// Initialize Redis client and snapshot publisher
	redisClient, err := pubsub.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis client",
			logger.ErrorField(err),
		)
	}
	defer redisClient.Close()

	publisher := pubsub.NewSnapshotPublisher(redisClient, cfg.Analyzer.SnapshotStream)

	// Initialize market data provider
	providerFactory := data.NewProviderFactory()
	provider, err := providerFactory.CreateProvider(cfg.MarketData.Provider, data.ProviderConfig{
		APIKey:  cfg.MarketData.APIKey,
		BaseURL: cfg.MarketData.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to create market data provider",
			logger.ErrorField(err),
			logger.String("provider", cfg.MarketData.Provider),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := provider.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect market data provider",
			logger.ErrorField(err),
			logger.String("provider", provider.GetName()),
		)
	}
	defer provider.Close()

	// Initialize indicator engine
	engine, err := indicator.NewEngine(engineConfig(cfg.Engine))
	if err != nil {
		logger.Fatal("Failed to initialize indicator engine",
			logger.ErrorField(err),
		)
	}

	runner := analyzer.NewRunner(provider, engine, publisher, cfg.Analyzer, cfg.MarketData.Symbols)

	// Schedule analysis runs
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Analyzer.Schedule, func() {
		runner.RunAll(ctx)
	}); err != nil {
		logger.Fatal("Failed to schedule analysis runs",
			logger.ErrorField(err),
			logger.String("schedule", cfg.Analyzer.Schedule),
		)
	}
	scheduler.Start()

	var wg sync.WaitGroup

	if cfg.Analyzer.RunOnStart {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.RunAll(ctx)
		}()
	}

	// Setup health and metrics server
	healthRouter := setupHealthAndMetricsServer(provider, runner)
	healthServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Analyzer.HealthCheckPort),
		Handler:      healthRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting health and metrics server",
			logger.Int("port", cfg.Analyzer.HealthCheckPort),
		)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Health and metrics server failed",
				logger.ErrorField(err),
			)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down analyzer service")

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health server shutdown failed", logger.ErrorField(err))
	}

	wg.Wait()

	logger.Info("Analyzer service stopped")
}

// engineConfig maps the environment-driven settings onto the engine config
func engineConfig(cfg config.EngineConfig) indicator.Config {
	return indicator.Config{
		ShortMAPeriod:       cfg.ShortMAPeriod,
		MidMAPeriod:         cfg.MidMAPeriod,
		LongMAPeriod:        cfg.LongMAPeriod,
		FastEMASpan:         cfg.FastEMASpan,
		SlowEMASpan:         cfg.SlowEMASpan,
		MACDSignalSpan:      cfg.MACDSignalSpan,
		RSIPeriod:           cfg.RSIPeriod,
		ATRPeriod:           cfg.ATRPeriod,
		BollingerPeriod:     cfg.BollingerPeriod,
		BollingerMultiplier: cfg.BollingerMultiplier,
	}
}

// setupHealthAndMetricsServer sets up HTTP endpoints for health checks and metrics
func setupHealthAndMetricsServer(provider data.Provider, runner *analyzer.Runner) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		healthStatus := map[string]interface{}{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"checks": map[string]interface{}{
				"provider": map[string]interface{}{
					"status":    "ok",
					"name":      provider.GetName(),
					"connected": provider.IsConnected(),
				},
				"runner": map[string]interface{}{
					"status":  "ok",
					"running": runner.IsRunning(),
					"stats":   runner.GetStats(),
				},
			},
		}

		if !provider.IsConnected() {
			status = http.StatusServiceUnavailable
			healthStatus["status"] = "DOWN"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(healthStatus)
	}).Methods("GET")

	// Readiness probe
	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if provider.IsConnected() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("READY"))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
		}
	}).Methods("GET")

	// Liveness probe
	router.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("LIVE"))
	}).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	return router
}
