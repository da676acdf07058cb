package recorder

import (
	"context"

	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

// NewNoopRecorder creates a recorder that drops everything.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordGame(_ context.Context, _ *model.GameResult) error { return nil }
func (n *NoopRecorder) RecordSeasonOutcome(_ context.Context, _ int, _ *aging.Outcome) error {
	return nil
}
func (n *NoopRecorder) RecordGeneratedPlayer(_ context.Context, _ int, _ *model.Player) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }
