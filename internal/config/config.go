// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; file and env layers override them in Load.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FixtureQueueSize bounds the in-memory fixture queue.
	FixtureQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of simulation workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the fixture deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// TeamCount and RosterSize shape the league at startup.
	TeamCount  int `koanf:"team_count"`
	RosterSize int `koanf:"roster_size"`

	// PossessionMin and PossessionMax bound possessions per simulated game.
	PossessionMin int `koanf:"possession_min"`
	PossessionMax int `koanf:"possession_max"`

	// ProspectPoolSize is the number of prospects kept ready for regeneration.
	ProspectPoolSize int `koanf:"prospect_pool_size"`

	// MaxLeaderboardLimit caps GET /prospects?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// CoachBonus adjusts game experience for every roster, [-0.2, 0.3].
	CoachBonus float64 `koanf:"coach_bonus"`

	// MatchdayCron and SeasonCron drive the league clock (six-field specs).
	MatchdayCron string `koanf:"matchday_cron"`
	SeasonCron   string `koanf:"season_cron"`

	// DBPath enables the SQLite recorder when non-empty.
	DBPath string `koanf:"db_path"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		FixtureQueueSize:    10_000,
		WorkerCount:         runtime.NumCPU(),
		DedupeSize:          50_000,
		TeamCount:           8,
		RosterSize:          10,
		PossessionMin:       180,
		PossessionMax:       220,
		ProspectPoolSize:    40,
		MaxLeaderboardLimit: 100,
		CoachBonus:          0.0,
		MatchdayCron:        "0 0 */6 * * *",
		SeasonCron:          "0 0 0 * * 0",
		DBPath:              "",
	}
}
