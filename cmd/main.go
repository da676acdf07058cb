package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/fastbreak/internal/adapters/http/api"
	"github.com/okian/fastbreak/internal/adapters/recorder"
	"github.com/okian/fastbreak/internal/adapters/scheduler"
	app "github.com/okian/fastbreak/internal/app"
	"github.com/okian/fastbreak/internal/config"
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/pkg/logger"
	"github.com/okian/fastbreak/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 10 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Game and season results persist to SQLite when a database path is
	// configured; otherwise recording is a no-op.
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.DBPath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(ctx, cfg.DBPath)
		if err != nil {
			os.Stderr.WriteString("failed to open recorder database: " + err.Error() + "\n")
			return
		}
		rec = sqlRec
	}

	// Create and start the league service with configuration options.
	// The service owns the recorder and closes it on Stop.
	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.FixtureQueueSize),
		app.WithDedupeSize(cfg.DedupeSize),
		app.WithLeagueShape(cfg.TeamCount, cfg.RosterSize),
		app.WithProspectPoolSize(cfg.ProspectPoolSize),
		app.WithPossessionRange(game.PossessionRange{Min: cfg.PossessionMin, Max: cfg.PossessionMax}),
		app.WithCoachBonus(cfg.CoachBonus),
		app.WithRecorder(rec),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Matchdays and season boundaries run on cron schedules.
	sched := scheduler.New(ctx, svc)
	if err := sched.Register(cfg.MatchdayCron, cfg.SeasonCron); err != nil {
		os.Stderr.WriteString("failed to register schedules: " + err.Error() + "\n")
		return
	}
	sched.Start()
	defer sched.Stop()

	// Start service metrics updater
	go startServiceMetricsUpdater(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// startServiceMetricsUpdater starts a background goroutine that refreshes
// gauges derived from service state.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateServiceMetrics updates service-level metrics.
func updateServiceMetrics(svc *app.Service) {
	stats := svc.GetStats()

	if queueLen, ok := stats["queueLength"].(int); ok {
		metrics.UpdateQueueSize(queueLen)
	}

	if workerCount, ok := stats["workerCount"].(int); ok {
		metrics.UpdateWorkerCount(workerCount)
	}

	if activePlayers, ok := stats["activePlayers"].(int); ok {
		metrics.UpdateActivePlayers(activePlayers)
	}

	if season, ok := stats["season"].(int); ok {
		metrics.UpdateSeasonNumber(season)
	}
}
