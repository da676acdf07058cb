// Package worker defines worker contracts for asynchronous game simulation.
package worker

import (
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/pkg/logger"
)

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(logger logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithPossessionRange sets the possession range used for simulated games.
func WithPossessionRange(pr game.PossessionRange) Option {
	return func(w *InMemoryWorker) {
		w.pr = pr
	}
}
