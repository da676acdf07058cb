package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // database/sql driver

	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/pkg/logger"
)

// SQLiteRecorder persists career history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log logger.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(ctx context.Context, dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so analysis queries can read while the service writes.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger.Get().Named("recorder")}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info(ctx, "sqlite recorder opened", logger.String("path", dbPath))
	return r, nil
}

func (r *SQLiteRecorder) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			fixture_id  TEXT NOT NULL,
			matchday    INTEGER,
			home        TEXT,
			away        TEXT,
			home_points INTEGER,
			away_points INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_fixture ON games(fixture_id)`,

		`CREATE TABLE IF NOT EXISTS box_lines (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			fixture_id TEXT NOT NULL,
			player_id  TEXT NOT NULL,
			name       TEXT,
			points     INTEGER,
			rebounds   INTEGER,
			assists    INTEGER,
			steals     INTEGER,
			blocks     INTEGER,
			turnovers  INTEGER,
			inside_m   INTEGER,
			inside_a   INTEGER,
			mid_m      INTEGER,
			mid_a      INTEGER,
			three_m    INTEGER,
			three_a    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_box_fixture ON box_lines(fixture_id)`,
		`CREATE INDEX IF NOT EXISTS idx_box_player ON box_lines(player_id)`,

		`CREATE TABLE IF NOT EXISTS season_outcomes (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			season       INTEGER NOT NULL,
			player_id    TEXT NOT NULL,
			name         TEXT,
			previous_age INTEGER,
			new_age      INTEGER,
			skill_loss   INTEGER,
			retired      INTEGER,
			reason       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_season ON season_outcomes(season)`,
		`CREATE INDEX IF NOT EXISTS idx_outcomes_player ON season_outcomes(player_id)`,

		`CREATE TABLE IF NOT EXISTS generated_players (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			season      INTEGER NOT NULL,
			player_id   TEXT NOT NULL,
			name        TEXT,
			nationality TEXT,
			age         INTEGER,
			role        TEXT,
			tier        TEXT,
			archetype   TEXT,
			overall     REAL,
			dev_rate    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_generated_season ON generated_players(season)`,
	}

	for _, s := range stmts {
		if _, err := r.db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordGame stores the game row plus one box line per participating player.
func (r *SQLiteRecorder) RecordGame(ctx context.Context, res *model.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `INSERT INTO games
		(timestamp, fixture_id, matchday, home, away, home_points, away_points)
		VALUES (?,?,?,?,?,?,?)`,
		now, res.Fixture.ID, res.Fixture.Matchday,
		res.Fixture.Home, res.Fixture.Away,
		res.Score.Home, res.Score.Away,
	); err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for _, l := range res.Box {
		if _, err := tx.ExecContext(ctx, `INSERT INTO box_lines
			(fixture_id, player_id, name, points, rebounds, assists, steals, blocks, turnovers,
			 inside_m, inside_a, mid_m, mid_a, three_m, three_a)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			res.Fixture.ID, l.PlayerID, l.Name,
			l.Points, l.Rebounds, l.Assists, l.Steals, l.Blocks, l.Turnovers,
			l.InsideMade, l.InsideAtt, l.MidMade, l.MidAtt, l.ThreeMade, l.ThreeAtt,
		); err != nil {
			return fmt.Errorf("insert box line: %w", err)
		}
	}

	return tx.Commit()
}

// RecordSeasonOutcome stores one player's aging result.
func (r *SQLiteRecorder) RecordSeasonOutcome(ctx context.Context, season int, out *aging.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	totalLoss := 0
	for _, c := range out.Skills {
		totalLoss += c.Delta
	}

	_, err := r.db.ExecContext(ctx, `INSERT INTO season_outcomes
		(timestamp, season, player_id, name, previous_age, new_age, skill_loss, retired, reason)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), season, out.PlayerID, out.Name,
		out.PreviousAge, out.NewAge, totalLoss, out.Retired, string(out.Reason),
	)
	return err
}

// RecordGeneratedPlayer stores the starting state of a regenerated player.
func (r *SQLiteRecorder) RecordGeneratedPlayer(ctx context.Context, season int, p *model.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `INSERT INTO generated_players
		(timestamp, season, player_id, name, nationality, age, role, tier, archetype, overall, dev_rate)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), season, p.ID, p.Name, p.Nationality, p.Age,
		p.Role.String(), p.Tier.String(), p.Archetype.String(),
		p.Overall(), p.Development.Rate,
	)
	return err
}

// Close flushes and closes the database.
func (r *SQLiteRecorder) Close() error {
	r.log.Info(context.Background(), "closing sqlite recorder")
	return r.db.Close()
}
