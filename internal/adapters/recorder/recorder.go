// Package recorder persists career history for offline analysis. The rest of
// the service treats persistence as optional: the noop implementation is used
// when no database path is configured.
package recorder

import (
	"context"

	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
)

// Recorder persists historical simulation data.
type Recorder interface {
	// RecordGame stores a finished game with its per-player box score lines.
	RecordGame(ctx context.Context, res *model.GameResult) error

	// RecordSeasonOutcome stores one player's aging result for a season
	// boundary, including retirement if it happened.
	RecordSeasonOutcome(ctx context.Context, season int, out *aging.Outcome) error

	// RecordGeneratedPlayer stores a newly generated player's starting state.
	RecordGeneratedPlayer(ctx context.Context, season int, p *model.Player) error

	Close() error
}
