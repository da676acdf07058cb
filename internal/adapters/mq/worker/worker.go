// Package worker defines worker contracts for asynchronous game simulation.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/fastbreak/internal/adapters/mq/queue"
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/pkg/logger"
	"github.com/okian/fastbreak/pkg/metrics"
)

// Default worker configuration constants.
const (
	workerShutdownTimeout = 5 * time.Second
	poolShutdownTimeout   = 30 * time.Second
)

// Fixture abstracts what workers read off the queue.
// Using the model.Fixture type for consistency.
type Fixture = model.Fixture

// Simulator runs one game between two rosters.
type Simulator interface {
	SimulateGame(home, away []*model.Player, pr game.PossessionRange) (model.Score, model.BoxScore, error)
}

// SimulatorFactory builds one Simulator per worker so each worker owns an
// independent random source.
type SimulatorFactory func() Simulator

// Rosters resolves a fixture's team name to its current lineup.
type Rosters interface {
	Roster(ctx context.Context, team string) ([]*model.Player, error)
}

// ResultSink consumes finished games. Implementations award development
// experience and persist the result.
type ResultSink interface {
	RecordResult(ctx context.Context, res *model.GameResult) error
}

// Queue defines how workers receive fixtures.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Fixture
}

// Worker processes fixtures and hands finished games to the sink.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	// It will process any in-flight fixture before stopping.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing fixtures.
type InMemoryWorker struct {
	queue   Queue
	sim     Simulator
	rosters Rosters
	sink    ResultSink
	pr      game.PossessionRange
	name    string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(q Queue, sim Simulator, rosters Rosters, sink ResultSink, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		sim:      sim,
		rosters:  rosters,
		sink:     sink,
		pr:       game.DefaultPossessionRange(),
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	fixtures := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case f, ok := <-fixtures:
			if !ok {
				// Channel closed, worker should stop.
				return
			}

			if err := w.processFixture(ctx, f); err != nil {
				w.logger.Error(ctx, "error processing fixture", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processFixture simulates a single fixture end to end.
func (w *InMemoryWorker) processFixture(ctx context.Context, f queue.Fixture) error {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordWorkerProcessingLatency(float64(latency))
	}()

	home, err := w.rosters.Roster(ctx, f.Home)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "roster_error")
		return fmt.Errorf("resolving home roster %q: %w", f.Home, err)
	}
	away, err := w.rosters.Roster(ctx, f.Away)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "roster_error")
		return fmt.Errorf("resolving away roster %q: %w", f.Away, err)
	}

	simStart := time.Now()
	score, box, err := w.sim.SimulateGame(home, away, w.pr)
	metrics.RecordSimulationLatency(float64(time.Since(simStart).Milliseconds()))
	if err != nil {
		metrics.RecordSimulationError()
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "simulation_error")
		w.logger.Error(ctx, "simulation failed for fixture",
			logger.String("fixtureID", f.ID),
			logger.Error(err),
		)
		return fmt.Errorf("failed to simulate fixture %s: %w", f.ID, err)
	}

	metrics.RecordGameSimulated(possessionCount(box), score.Home+score.Away)

	res := &model.GameResult{Fixture: f, Score: score, Box: box}
	if err := w.sink.RecordResult(ctx, res); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "sink_error")
		w.logger.Error(ctx, "recording result failed for fixture",
			logger.String("fixtureID", f.ID),
			logger.Error(err),
		)
		return fmt.Errorf("recording result failed: %w", err)
	}

	return nil
}

// possessionCount reconstructs the possession total from the box score.
// Every possession ends in exactly one field goal attempt or one turnover.
func possessionCount(box model.BoxScore) int {
	n := 0
	for _, l := range box {
		n += l.FieldGoalsAttempted() + l.Turnovers
	}
	return n
}

// Pool manages multiple workers. Callers stop it with either Stop or
// Shutdown, not both.
type Pool struct {
	workers []*InMemoryWorker
	queue   Queue

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool. workerCount < 1 sizes the pool to the
// machine. Each worker gets its own Simulator from the factory.
func NewPool(workerCount int, q Queue, newSim SimulatorFactory, rosters Rosters, sink ResultSink, opts ...Option) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	pool := &Pool{
		workers: make([]*InMemoryWorker, workerCount),
		queue:   q,
		logger:  logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		workerOpts := append([]Option{WithName("worker-" + strconv.Itoa(i))}, opts...)
		pool.workers[i] = NewInMemoryWorker(q, newSim(), rosters, sink, workerOpts...)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers without touching the queue.
func (p *Pool) Stop() {
	for _, w := range p.workers {
		close(w.shutdown)
	}
	for _, w := range p.workers {
		select {
		case <-w.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// First close the queue to stop new fixtures.
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
