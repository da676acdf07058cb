package careercheck

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	service "github.com/okian/fastbreak/internal/app"
	"github.com/okian/fastbreak/pkg/logger"
)

// Run executes the complete career invariant check: a standalone game
// reconciliation pass, then a multi-season league run with roster and
// prospect verification after every round and every season boundary.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting career check",
		logger.Int("seasons", config.Seasons),
		logger.Int("matchdays", config.Matchdays),
		logger.Int("teams", config.Teams),
		logger.Int("rosterSize", config.RosterSize),
		logger.Int("games", config.Games),
		logger.Any("seed", config.Seed),
		logger.Any("verbose", config.Verbose))

	// Step 1: Reconcile standalone game simulations against their box scores.
	if err := reconcileGames(ctx, config, stats); err != nil {
		return fmt.Errorf("game reconciliation failed: %w", err)
	}

	// Step 2: Build and start the league.
	rng := rand.New(rand.NewSource(config.Seed))
	league := service.New(
		service.WithRand(rng),
		service.WithLeagueShape(config.Teams, config.RosterSize),
		service.WithWorkerCount(config.Workers),
		service.WithProspectPoolSize(config.PoolSize),
	)
	if err := league.Start(ctx); err != nil {
		return fmt.Errorf("league start failed: %w", err)
	}
	defer league.Stop()

	// Step 3: Run the seasons, verifying after every step.
	for season := 0; season < config.Seasons; season++ {
		if err := runSeason(ctx, config, league, stats); err != nil {
			return fmt.Errorf("season %d failed: %w", season+1, err)
		}
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	if stats.Violations > 0 {
		return fmt.Errorf("check completed with %d invariant violations", stats.Violations)
	}

	logger.Get().Info(ctx, "career check completed successfully")
	return nil
}

// runSeason plays one season of matchdays and advances the boundary,
// verifying rosters, experience monotonicity, and the prospect pool.
func runSeason(ctx context.Context, config *Config, league *service.Service, stats *Stats) error {
	for day := 0; day < config.Matchdays; day++ {
		before, err := snapshotExperience(ctx, league)
		if err != nil {
			return fmt.Errorf("experience snapshot failed: %w", err)
		}

		if err := league.RunMatchday(ctx); err != nil {
			return fmt.Errorf("matchday failed: %w", err)
		}
		stats.MatchdaysRun++

		verifyRosters(ctx, league, stats)
		verifyExperienceGrowth(ctx, league, before, stats)
		verifyProspects(ctx, league, config.PoolSize, stats)
	}

	sizesBefore, err := rosterSizes(ctx, league)
	if err != nil {
		return fmt.Errorf("roster size snapshot failed: %w", err)
	}

	if err := league.AdvanceSeason(ctx); err != nil {
		return fmt.Errorf("season advance failed: %w", err)
	}
	stats.SeasonsAdvanced++

	verifyRosters(ctx, league, stats)
	verifySeasonBoundary(ctx, league, sizesBefore, stats)
	verifyProspects(ctx, league, config.PoolSize, stats)

	return nil
}

// snapshotExperience records lifetime experience per rostered player.
func snapshotExperience(ctx context.Context, league *service.Service) (map[string]int, error) {
	out := make(map[string]int)
	for _, team := range league.Teams(ctx) {
		roster, err := league.Roster(ctx, team.Name)
		if err != nil {
			return nil, err
		}
		for _, p := range roster {
			out[p.ID] = p.Development.TotalXP
		}
	}
	return out, nil
}

// rosterSizes records the roster size per team.
func rosterSizes(ctx context.Context, league *service.Service) (map[string]int, error) {
	out := make(map[string]int)
	for _, team := range league.Teams(ctx) {
		roster, err := league.Roster(ctx, team.Name)
		if err != nil {
			return nil, err
		}
		out[team.Name] = len(roster)
	}
	return out, nil
}

// displayFinalStats prints the final check statistics.
func displayFinalStats(stats *Stats) {
	var checksPerSecond float64
	if stats.Duration > 0 {
		checksPerSecond = float64(stats.PlayersChecked) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("matchdaysRun", stats.MatchdaysRun),
		logger.Int("seasonsAdvanced", stats.SeasonsAdvanced),
		logger.Int("gamesReconciled", stats.GamesReconciled),
		logger.Int("playersChecked", stats.PlayersChecked),
		logger.Int("violations", stats.Violations),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("checksPerSecond", checksPerSecond))
}
