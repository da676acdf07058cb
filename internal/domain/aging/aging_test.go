package aging_test

import (
	"math/rand"
	"testing"

	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	. "github.com/smartystreets/goconvey/convey"
)

func veteran(age int, rating int) *model.Player {
	p := &model.Player{
		ID:   "vet-1",
		Name: "Veteran",
		Age:  age,
		Role: model.Center,
		Curve: model.AgingCurve{
			PeakAge:         25,
			DeclineStartAge: 28,
			RetirementAge:   36,
			PeakMultiplier:  1.0,
			DeclineRate:     0.08,
		},
	}
	for _, s := range skill.All() {
		p.Ratings.Set(s, rating)
	}
	return p
}

func TestAdvanceSeason(t *testing.T) {
	Convey("Given an aging engine with a seeded random source", t, func() {
		eng := aging.New(
			aging.WithRand(rand.New(rand.NewSource(7))),
			aging.WithRetirementChances(1e-9, 1e-9),
		)

		Convey("When advancing a player before the decline start", func() {
			p := veteran(24, 80)
			out := eng.AdvanceSeason(p)

			Convey("Then age increments and no skill moves", func() {
				So(out.PreviousAge, ShouldEqual, 24)
				So(out.NewAge, ShouldEqual, 25)
				So(p.Age, ShouldEqual, 25)
				for _, ch := range out.Skills {
					So(ch.Delta, ShouldEqual, 0)
				}
			})
		})

		Convey("When advancing a player deep into decline", func() {
			p := veteran(33, 85)
			out := eng.AdvanceSeason(p)

			Convey("Then every skill stays in bounds and loses at most 3 points", func() {
				for _, s := range skill.All() {
					ch := out.Skills[s]
					So(ch.New, ShouldBeLessThanOrEqualTo, ch.Old)
					So(ch.Old-ch.New, ShouldBeLessThanOrEqualTo, 3)
					So(ch.New, ShouldBeBetweenOrEqual, 0, 99)
				}
			})
		})

		Convey("When skills already sit at the aging floor", func() {
			p := veteran(35, skill.AgingFloor)
			eng.AdvanceSeason(p)

			Convey("Then decay never pushes them below 30", func() {
				for _, s := range skill.All() {
					So(p.Ratings.Get(s), ShouldEqual, skill.AgingFloor)
				}
			})
		})

		Convey("When a player reaches retirement age + 2", func() {
			p := veteran(37, 95) // increments to 38 == 36+2
			out := eng.AdvanceSeason(p)

			Convey("Then retirement is forced with reason age regardless of skill", func() {
				So(out.Retired, ShouldBeTrue)
				So(out.Reason, ShouldEqual, model.RetiredAge)
				So(p.Retired, ShouldBeTrue)
			})
		})

		Convey("When an old player's overall collapses", func() {
			p := veteran(30, 35) // increments to 31 == declineStart+3, overall < 45
			out := eng.AdvanceSeason(p)

			Convey("Then the performance condition retires them", func() {
				So(out.Retired, ShouldBeTrue)
				So(out.Reason, ShouldEqual, model.RetiredPerformance)
			})
		})

		Convey("When advancing an already-retired player", func() {
			p := veteran(38, 70)
			p.Retired = true
			p.RetirementReason = model.RetiredAge
			out := eng.AdvanceSeason(p)

			Convey("Then nothing changes", func() {
				So(p.Age, ShouldEqual, 38)
				So(out.Retired, ShouldBeTrue)
				So(out.Reason, ShouldEqual, model.RetiredAge)
			})
		})

		Convey("When advancing a roster", func() {
			roster := []*model.Player{veteran(24, 70), veteran(33, 70), veteran(37, 70)}
			outs := eng.AdvanceRoster(roster)

			Convey("Then outcomes come back in input order", func() {
				So(len(outs), ShouldEqual, 3)
				So(outs[0].PreviousAge, ShouldEqual, 24)
				So(outs[1].PreviousAge, ShouldEqual, 33)
				So(outs[2].PreviousAge, ShouldEqual, 37)
			})
		})
	})
}

func TestStochasticRetirement(t *testing.T) {
	Convey("Given an engine with injury chance forced to certainty", t, func() {
		eng := aging.New(
			aging.WithRand(rand.New(rand.NewSource(1))),
			aging.WithRetirementChances(1.0, 1e-9),
		)

		Convey("When a healthy player enters the injury window", func() {
			p := veteran(33, 90) // increments to 34 == 36-2
			out := eng.AdvanceSeason(p)

			Convey("Then they retire with reason injury", func() {
				So(out.Retired, ShouldBeTrue)
				So(out.Reason, ShouldEqual, model.RetiredInjury)
			})
		})
	})

	Convey("Given an engine with voluntary chance forced to certainty", t, func() {
		eng := aging.New(
			aging.WithRand(rand.New(rand.NewSource(1))),
			aging.WithRetirementChances(1e-9, 1.0),
		)

		Convey("When a fading player enters the voluntary window", func() {
			p := veteran(34, 50) // increments to 35 == 36-1, overall < 60
			out := eng.AdvanceSeason(p)

			Convey("Then they retire voluntarily", func() {
				So(out.Retired, ShouldBeTrue)
				So(out.Reason, ShouldEqual, model.RetiredVoluntary)
			})
		})
	})
}

func TestDeriveCurve(t *testing.T) {
	Convey("Given curve derivation", t, func() {
		Convey("When deriving for different roles", func() {
			pg := aging.DeriveCurve(model.PointGuard, 22, 70)
			c := aging.DeriveCurve(model.Center, 22, 70)

			Convey("Then centers age soonest and point guards latest", func() {
				So(c.RetirementAge, ShouldBeLessThan, pg.RetirementAge)
				So(c.PeakAge, ShouldBeLessThan, pg.PeakAge)
			})
		})

		Convey("When the player is elite overall", func() {
			base := aging.DeriveCurve(model.SmallForward, 22, 70)
			elite := aging.DeriveCurve(model.SmallForward, 22, 90)

			Convey("Then retirement extends by two years and decline slows", func() {
				So(elite.RetirementAge, ShouldEqual, base.RetirementAge+2)
				So(elite.DeclineRate, ShouldBeLessThan, base.DeclineRate)
			})
		})

		Convey("When the player is weak overall", func() {
			base := aging.DeriveCurve(model.SmallForward, 22, 70)
			weak := aging.DeriveCurve(model.SmallForward, 22, 50)

			Convey("Then the career shortens and decline accelerates", func() {
				So(weak.RetirementAge, ShouldEqual, base.RetirementAge-2)
				So(weak.DeclineRate, ShouldBeGreaterThan, base.DeclineRate)
			})
		})

		Convey("When creating a curve for an already-old player", func() {
			old := aging.DeriveCurve(model.Center, 38, 55)

			Convey("Then retirement is never earlier than age+1", func() {
				So(old.RetirementAge, ShouldBeGreaterThanOrEqualTo, 39)
			})
		})
	})
}
