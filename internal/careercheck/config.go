// Package careercheck drives a full in-process league run and verifies the
// career-economy invariants hold across matchdays and season boundaries.
package careercheck

import "time"

// Config holds the check run configuration.
type Config struct {
	Seasons    int
	Matchdays  int
	Teams      int
	RosterSize int
	PoolSize   int
	Workers    int
	Games      int
	Seed       int64
	LogFile    string
	Verbose    bool
}

// Stats tracks run statistics.
type Stats struct {
	MatchdaysRun    int
	SeasonsAdvanced int
	GamesReconciled int
	PlayersChecked  int
	Violations      int

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
