package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/fastbreak/internal/careercheck"
)

// Default configuration constants.
const (
	defaultSeasons    = 5
	defaultMatchdays  = 10
	defaultTeams      = 8
	defaultRosterSize = 10
	defaultPoolSize   = 40
	defaultGames      = 200
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		seasons    = flag.Int("seasons", defaultSeasons, "Number of seasons to simulate")
		matchdays  = flag.Int("matchdays", defaultMatchdays, "Number of matchdays per season")
		teams      = flag.Int("teams", defaultTeams, "Number of teams in the league")
		rosterSize = flag.Int("roster", defaultRosterSize, "Roster size per team")
		poolSize   = flag.Int("pool", defaultPoolSize, "Prospect pool size")
		workers    = flag.Int("workers", runtime.NumCPU(), "Number of simulation workers")
		games      = flag.Int("games", defaultGames, "Number of standalone games to reconcile")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		logFile    = flag.String("log", "", "Log file for check output (default: career_check_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		careercheck.ShowHelp()
		return
	}

	// Setup logging
	if err := careercheck.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create check configuration
	config := &careercheck.Config{
		Seasons:    *seasons,
		Matchdays:  *matchdays,
		Teams:      *teams,
		RosterSize: *rosterSize,
		PoolSize:   *poolSize,
		Workers:    *workers,
		Games:      *games,
		Seed:       *seed,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	// Run the check
	if err := careercheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
