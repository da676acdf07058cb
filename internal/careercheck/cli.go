package careercheck

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/fastbreak/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "career_check_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the career check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Fastbreak Career Check Tool
===========================

Runs an in-process league across multiple seasons and verifies the
career-economy invariants: rating bounds, experience monotonicity,
retirement boundaries, roster regeneration, and box score reconciliation.

Usage:
  go run cmd/career-check/main.go [options]

Options:
  -seasons int
        Number of seasons to simulate (default 5)
  -matchdays int
        Number of matchdays per season (default 10)
  -teams int
        Number of teams in the league (default 8)
  -roster int
        Roster size per team (default 10)
  -pool int
        Prospect pool size (default 40)
  -workers int
        Number of simulation workers (default CPU cores)
  -games int
        Number of standalone games to reconcile (default 200)
  -seed int
        Random seed (default: current time)
  -log string
        Log file for check output (default: career_check_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Check with default settings
  go run cmd/career-check/main.go

  # Long deterministic run
  go run cmd/career-check/main.go -seasons 20 -seed 42

  # Stress the simulator reconciliation
  go run cmd/career-check/main.go -games 5000 -seasons 1
`)
}
