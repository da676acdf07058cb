package recorder_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/fastbreak/internal/adapters/recorder"
	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	"github.com/okian/fastbreak/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
	_ "modernc.org/sqlite"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func sampleResult() *model.GameResult {
	home := &model.Player{ID: "h-1", Name: "Home One"}
	away := &model.Player{ID: "a-1", Name: "Away One"}
	box := model.BoxScore{}
	hl := box.Line(home)
	hl.Points = 24
	hl.Rebounds = 6
	hl.InsideMade, hl.InsideAtt = 6, 9
	hl.MidMade, hl.MidAtt = 6, 10
	al := box.Line(away)
	al.Points = 18
	al.ThreeMade, al.ThreeAtt = 6, 12

	return &model.GameResult{
		Fixture: model.Fixture{ID: "fix-1", Matchday: 3, Home: "Hawks", Away: "Comets"},
		Score:   model.Score{Home: 102, Away: 96},
		Box:     box,
	}
}

func TestSQLiteRecorder(t *testing.T) {
	Convey("Given a sqlite recorder on a fresh database", t, func() {
		ctx := context.Background()
		dbPath := filepath.Join(t.TempDir(), "career.db")

		rec, err := recorder.NewSQLiteRecorder(ctx, dbPath)
		So(err, ShouldBeNil)

		count := func(query string, args ...any) int {
			db, err := sql.Open("sqlite", dbPath)
			So(err, ShouldBeNil)
			defer db.Close()
			var n int
			So(db.QueryRow(query, args...).Scan(&n), ShouldBeNil)
			return n
		}

		Convey("When recording a game", func() {
			So(rec.RecordGame(ctx, sampleResult()), ShouldBeNil)
			So(rec.Close(), ShouldBeNil)

			Convey("Then the game and its box lines are persisted", func() {
				So(count("SELECT COUNT(*) FROM games WHERE fixture_id = ?", "fix-1"), ShouldEqual, 1)
				So(count("SELECT COUNT(*) FROM box_lines WHERE fixture_id = ?", "fix-1"), ShouldEqual, 2)
				So(count("SELECT points FROM box_lines WHERE player_id = ?", "h-1"), ShouldEqual, 24)
			})
		})

		Convey("When recording a season outcome with retirement", func() {
			out := &aging.Outcome{
				PlayerID:    "h-1",
				Name:        "Home One",
				PreviousAge: 38,
				NewAge:      39,
				Skills: map[skill.Skill]aging.SkillChange{
					skill.Shooting: {Old: 70, New: 68, Delta: 2},
					skill.Passing:  {Old: 60, New: 59, Delta: 1},
				},
				Retired: true,
				Reason:  model.RetiredAge,
			}
			So(rec.RecordSeasonOutcome(ctx, 4, out), ShouldBeNil)
			So(rec.Close(), ShouldBeNil)

			Convey("Then the outcome row carries the aggregate loss and reason", func() {
				So(count("SELECT COUNT(*) FROM season_outcomes WHERE season = 4 AND retired = 1"), ShouldEqual, 1)
				So(count("SELECT skill_loss FROM season_outcomes WHERE player_id = ?", "h-1"), ShouldEqual, 3)
			})
		})

		Convey("When recording a generated player", func() {
			p := &model.Player{
				ID:          "gen-1",
				Name:        "Fresh Prospect",
				Nationality: "USA",
				Age:         20,
				Role:        model.PointGuard,
				Tier:        model.Starter,
			}
			So(rec.RecordGeneratedPlayer(ctx, 2, p), ShouldBeNil)
			So(rec.Close(), ShouldBeNil)

			Convey("Then the starting state is persisted", func() {
				So(count("SELECT COUNT(*) FROM generated_players WHERE season = 2 AND player_id = ?", "gen-1"), ShouldEqual, 1)
			})
		})

		Convey("When reopening the same database", func() {
			So(rec.RecordGame(ctx, sampleResult()), ShouldBeNil)
			So(rec.Close(), ShouldBeNil)

			rec2, err := recorder.NewSQLiteRecorder(ctx, dbPath)
			So(err, ShouldBeNil)

			Convey("Then migrations are idempotent and data survives", func() {
				So(rec2.RecordGame(ctx, sampleResult()), ShouldBeNil)
				So(rec2.Close(), ShouldBeNil)
				So(count("SELECT COUNT(*) FROM games"), ShouldEqual, 2)
			})
		})
	})
}
