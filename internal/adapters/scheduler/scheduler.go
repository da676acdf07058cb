// Package scheduler drives the league clock: matchdays fire on one cron
// spec, season boundaries on another.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/okian/fastbreak/pkg/logger"
)

// League is the slice of the application service the scheduler drives.
type League interface {
	// RunMatchday schedules and simulates the next round of fixtures.
	RunMatchday(ctx context.Context) error

	// AdvanceSeason ages every player, processes retirements and regenerates
	// rosters from the prospect pool.
	AdvanceSeason(ctx context.Context) error
}

// Scheduler manages the cron jobs for a running league.
type Scheduler struct {
	cron   *cron.Cron
	league League
	ctx    context.Context
	log    logger.Logger
}

// New creates a scheduler bound to the given league service. The context is
// passed through to triggered jobs.
func New(ctx context.Context, league League) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		league: league,
		ctx:    ctx,
		log:    logger.Get().Named("scheduler"),
	}
}

// Register installs the matchday and season-boundary jobs. Specs use the
// six-field cron format with seconds.
func (s *Scheduler) Register(matchdaySpec, seasonSpec string) error {
	if _, err := s.cron.AddFunc(matchdaySpec, s.matchdayTask); err != nil {
		return fmt.Errorf("register matchday task: %w", err)
	}
	if _, err := s.cron.AddFunc(seasonSpec, s.seasonTask); err != nil {
		return fmt.Errorf("register season task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info(s.ctx, "scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info(s.ctx, "scheduler stopped")
}

// RunMatchdayNow executes the matchday task immediately (manual trigger).
func (s *Scheduler) RunMatchdayNow() {
	s.matchdayTask()
}

// RunSeasonNow executes the season-boundary task immediately.
func (s *Scheduler) RunSeasonNow() {
	s.seasonTask()
}

func (s *Scheduler) matchdayTask() {
	s.log.Info(s.ctx, "running matchday")
	if err := s.league.RunMatchday(s.ctx); err != nil {
		s.log.Error(s.ctx, "matchday failed", logger.Error(err))
	}
}

func (s *Scheduler) seasonTask() {
	s.log.Info(s.ctx, "running season boundary")
	if err := s.league.AdvanceSeason(s.ctx); err != nil {
		s.log.Error(s.ctx, "season boundary failed", logger.Error(err))
	}
}
