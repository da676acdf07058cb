package careercheck

import (
	"context"
	"log"
	"math/rand"

	service "github.com/okian/fastbreak/internal/app"
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	"github.com/okian/fastbreak/internal/domain/talent"
)

// reconcileGames simulates standalone games and checks every box score
// against the final score and the possession accounting.
func reconcileGames(_ context.Context, config *Config, stats *Stats) error {
	log.Printf("🔍 Reconciling %d standalone games...", config.Games)

	rng := rand.New(rand.NewSource(config.Seed))
	dist := talent.New(talent.WithRand(rng))
	sim := game.New(game.WithSource(rng))
	pr := game.DefaultPossessionRange()

	home := sampleRoster(dist, config.RosterSize)
	away := sampleRoster(dist, config.RosterSize)

	for i := 0; i < config.Games; i++ {
		score, box, err := sim.SimulateGame(home, away, pr)
		if err != nil {
			return err
		}
		stats.GamesReconciled++
		verifyBoxScore(score, box, home, away, pr, stats)
	}

	if stats.Violations == 0 {
		log.Println("✅ Game reconciliation passed")
	}
	return nil
}

// sampleRoster generates one roster cycling through the five roles.
func sampleRoster(dist *talent.Distribution, size int) []*model.Player {
	roster := make([]*model.Player, 0, size)
	for i := 0; i < size; i++ {
		roster = append(roster, dist.NewRookie(model.Role(i%int(model.RoleCount))))
	}
	return roster
}

// verifyBoxScore checks score and stat consistency for one game. The two
// sides alternate over a single drawn possession count, and every
// possession ends in exactly one attempt or one turnover, so the total
// must land inside the configured range.
func verifyBoxScore(score model.Score, box model.BoxScore, home, away []*model.Player, pr game.PossessionRange, stats *Stats) {
	if got := box.TeamPoints(home); got != score.Home {
		violation(stats, "home box points %d do not match final score %d", got, score.Home)
	}
	if got := box.TeamPoints(away); got != score.Away {
		violation(stats, "away box points %d do not match final score %d", got, score.Away)
	}

	possessions := 0
	for _, l := range box {
		possessions += l.FieldGoalsAttempted() + l.Turnovers

		if l.FieldGoalsMade() > l.FieldGoalsAttempted() {
			violation(stats, "player %s made %d on %d attempts", l.PlayerID, l.FieldGoalsMade(), l.FieldGoalsAttempted())
		}
		wantPoints := 2*(l.InsideMade+l.MidMade) + 3*l.ThreeMade
		if l.Points != wantPoints {
			violation(stats, "player %s points %d do not match shot values %d", l.PlayerID, l.Points, wantPoints)
		}
	}

	if possessions < pr.Min || possessions > pr.Max {
		violation(stats, "possession count %d outside [%d, %d]", possessions, pr.Min, pr.Max)
	}
}

// verifyRosters checks every rostered player against the rating, rate, and
// retirement invariants.
func verifyRosters(ctx context.Context, league *service.Service, stats *Stats) {
	for _, team := range league.Teams(ctx) {
		roster, err := league.Roster(ctx, team.Name)
		if err != nil {
			violation(stats, "roster read for %s failed: %v", team.Name, err)
			continue
		}
		for _, p := range roster {
			stats.PlayersChecked++
			verifyPlayer(p, team.Name, stats)
		}
	}
}

// verifyPlayer checks one player's invariants.
func verifyPlayer(p *model.Player, team string, stats *Stats) {
	if p.Retired {
		violation(stats, "retired player %s still rostered on %s", p.ID, team)
	}
	// Retirement becomes mandatory two seasons past the curve's age.
	if p.Age <= 0 || p.Age > p.Curve.RetirementAge+2 {
		violation(stats, "player %s age %d outside playable range", p.ID, p.Age)
	}
	if p.Development.Rate < model.MinDevelopmentRate || p.Development.Rate > model.MaxDevelopmentRate {
		violation(stats, "player %s development rate %.2f out of bounds", p.ID, p.Development.Rate)
	}
	for _, s := range skill.All() {
		v := p.Ratings.Get(s)
		if v < skill.MinRating || v > skill.MaxRating {
			violation(stats, "player %s skill %s rating %d out of bounds", p.ID, s, v)
		}
		if xp := p.Development.SkillXP[s]; xp < 0 {
			violation(stats, "player %s skill %s has negative balance %d", p.ID, s, xp)
		}
	}
}

// verifyExperienceGrowth checks that no surviving player lost lifetime
// experience across a round, and that at least one player gained some.
func verifyExperienceGrowth(ctx context.Context, league *service.Service, before map[string]int, stats *Stats) {
	grew := false
	for _, team := range league.Teams(ctx) {
		roster, err := league.Roster(ctx, team.Name)
		if err != nil {
			continue
		}
		for _, p := range roster {
			prev, ok := before[p.ID]
			if !ok {
				continue
			}
			if p.Development.TotalXP < prev {
				violation(stats, "player %s lifetime experience fell from %d to %d", p.ID, prev, p.Development.TotalXP)
			}
			if p.Development.TotalXP > prev {
				grew = true
			}
		}
	}
	if !grew {
		violation(stats, "no player gained experience over a full round")
	}
}

// verifySeasonBoundary checks that regeneration restored every roster to
// its pre-boundary size.
func verifySeasonBoundary(ctx context.Context, league *service.Service, sizesBefore map[string]int, stats *Stats) {
	for _, team := range league.Teams(ctx) {
		roster, err := league.Roster(ctx, team.Name)
		if err != nil {
			violation(stats, "roster read for %s failed: %v", team.Name, err)
			continue
		}
		if want, ok := sizesBefore[team.Name]; ok && len(roster) != want {
			violation(stats, "team %s roster size %d changed from %d across the boundary", team.Name, len(roster), want)
		}
	}
}

// verifyProspects checks the prospect leaderboard is densely ranked and
// sorted by non-increasing score.
func verifyProspects(ctx context.Context, league *service.Service, n int, stats *Stats) {
	entries, err := league.TopProspects(ctx, n)
	if err != nil {
		violation(stats, "prospect read failed: %v", err)
		return
	}
	for i, e := range entries {
		if e.Rank != i+1 {
			violation(stats, "prospect %s has rank %d at position %d", e.PlayerID, e.Rank, i+1)
		}
		if i > 0 && e.Score > entries[i-1].Score {
			violation(stats, "prospect leaderboard not sorted at position %d", i+1)
		}
	}
}

// violation logs one invariant failure and counts it.
func violation(stats *Stats, format string, args ...any) {
	stats.Violations++
	log.Printf("❌ "+format, args...)
}
