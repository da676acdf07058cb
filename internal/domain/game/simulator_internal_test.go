package game

import (
	"testing"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	. "github.com/smartystreets/goconvey/convey"
)

// feed replays a fixed sequence of draws, then repeats the final value.
type feed struct {
	vals []int
	i    int
}

func (f *feed) Intn(n int) int {
	v := f.vals[f.i]
	if f.i < len(f.vals)-1 {
		f.i++
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func lineup(prefix string, rating int) []*model.Player {
	players := make([]*model.Player, 5)
	for i := range players {
		p := &model.Player{ID: prefix + string(rune('a'+i)), Name: prefix}
		for _, s := range skill.All() {
			p.Ratings.Set(s, rating)
		}
		players[i] = p
	}
	return players
}

func TestForcedThreePointPossessions(t *testing.T) {
	Convey("Given a scripted source that always produces made threes", t, func() {
		// Per possession: shooter, shot type (2=three), turnover roll
		// (high, no turnover), quality (high, make), assist roll (high,
		// none). 99 repeats for every remaining draw.
		src := &feed{vals: []int{0, 2, 99}}
		sim := New(WithSource(src))

		home := lineup("home-", 50)
		away := lineup("away-", 50)
		box := model.BoxScore{}

		Convey("When the home team plays 10 straight possessions", func() {
			total := 0
			for i := 0; i < 10; i++ {
				src.i = 0 // restart the script each possession
				out := sim.playPossession(home, away, box)
				total += out.points
			}

			Convey("Then the home side scores exactly 30", func() {
				So(total, ShouldEqual, 30)
			})

			Convey("And the away side never touches the scoreboard", func() {
				for _, p := range away {
					if l, ok := box[p.ID]; ok {
						So(l.Points, ShouldEqual, 0)
					}
				}
			})

			Convey("And the shooter's counters reconcile", func() {
				l := box[home[0].ID]
				So(l.ThreeMade, ShouldEqual, 10)
				So(l.ThreeAtt, ShouldEqual, 10)
				So(l.Points, ShouldEqual, 30)
			})
		})
	})
}

func TestReboundPolicy(t *testing.T) {
	Convey("Given a missed three-pointer", t, func() {
		home := lineup("home-", 50)
		away := lineup("away-", 50)

		Convey("When the offensive contester wins the board", func() {
			// shooter 0, shot three, no turnover, quality miss,
			// contester 1, board won.
			src := &feed{vals: []int{0, 2, 99, 0, 1, 99}}
			sim := New(WithSource(src))
			box := model.BoxScore{}
			out := sim.playPossession(home, away, box)

			Convey("Then possession stays and the contester is credited", func() {
				So(out.flip, ShouldBeFalse)
				So(out.points, ShouldEqual, 0)
				So(box[home[1].ID].Rebounds, ShouldEqual, 1)
			})
		})

		Convey("When the offensive contester loses the board", func() {
			// Same script but the board roll fails and defender 2 collects.
			src := &feed{vals: []int{0, 2, 99, 0, 1, 0, 2}}
			sim := New(WithSource(src))
			box := model.BoxScore{}
			out := sim.playPossession(home, away, box)

			Convey("Then possession flips and a defender is credited", func() {
				So(out.flip, ShouldBeTrue)
				So(box[away[2].ID].Rebounds, ShouldEqual, 1)
			})

			Convey("And exactly one rebound was credited in total", func() {
				total := 0
				for _, l := range box {
					total += l.Rebounds
				}
				So(total, ShouldEqual, 1)
			})
		})
	})
}

func TestTurnoverPath(t *testing.T) {
	Convey("Given a scripted turnover", t, func() {
		home := lineup("home-", 50)
		away := lineup("away-", 50)
		// shooter 0, shot 0, turnover roll 0 (below chance), steal roll 0
		// (credited), thief 3.
		src := &feed{vals: []int{0, 0, 0, 0, 3}}
		sim := New(WithSource(src))
		box := model.BoxScore{}

		Convey("When the possession is played", func() {
			out := sim.playPossession(home, away, box)

			Convey("Then possession flips scorelessly", func() {
				So(out.flip, ShouldBeTrue)
				So(out.points, ShouldEqual, 0)
			})

			Convey("And the turnover and steal are booked", func() {
				So(box[home[0].ID].Turnovers, ShouldEqual, 1)
				So(box[away[3].ID].Steals, ShouldEqual, 1)
			})
		})
	})
}
