package service

import (
	"math/rand"

	"github.com/okian/fastbreak/internal/adapters/recorder"
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of simulation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the fixture queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the fixture deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithLeagueShape sets the number of teams and the roster size.
func WithLeagueShape(teams, rosterSize int) Option {
	return func(s *Service) {
		if teams >= 2 {
			s.teamCount = teams
		}
		if rosterSize >= 5 {
			s.rosterSize = rosterSize
		}
	}
}

// WithProspectPoolSize sets the regeneration pool target size.
func WithProspectPoolSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.poolSize = size
		}
	}
}

// WithPossessionRange sets the possessions simulated per game.
func WithPossessionRange(pr game.PossessionRange) Option {
	return func(s *Service) {
		s.possessionRange = pr
	}
}

// WithCoachBonus sets the league-wide coaching adjustment applied to earned
// experience. The development engine clamps it to its legal range.
func WithCoachBonus(bonus float64) Option {
	return func(s *Service) {
		s.coachBonus = bonus
	}
}

// WithTrainingIntensity sets the per-matchday training intensity.
func WithTrainingIntensity(intensity int) Option {
	return func(s *Service) {
		if intensity > 0 {
			s.trainingIntensity = intensity
		}
	}
}

// WithRecorder sets the career archive sink.
func WithRecorder(rec recorder.Recorder) Option {
	return func(s *Service) {
		if rec != nil {
			s.rec = rec
		}
	}
}

// WithRand sets the league random source. Tests inject seeded sources.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
