package development_test

import (
	"testing"

	"github.com/okian/fastbreak/internal/domain/development"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	. "github.com/smartystreets/goconvey/convey"
)

func prospect() *model.Player {
	p := &model.Player{
		ID:   "dev-1",
		Name: "Prospect",
		Age:  22,
		Role: model.PointGuard,
		Curve: model.AgingCurve{
			PeakAge:         28,
			DeclineStartAge: 31,
			RetirementAge:   39,
			PeakMultiplier:  1.0,
			DeclineRate:     0.08,
		},
	}
	p.Development.Rate = 1.0
	for _, s := range skill.All() {
		p.Ratings.Set(s, 60)
		p.Potential.Ceilings.Set(s, 85)
	}
	return p
}

func TestGameExperience(t *testing.T) {
	Convey("Given a development engine", t, func() {
		eng := development.New()

		Convey("When a statline is absurdly productive", func() {
			line := &model.BoxScoreLine{Points: 500}

			Convey("Then base experience clamps to exactly 200", func() {
				So(eng.GameExperience(line), ShouldEqual, 200)
			})
		})

		Convey("When a statline is empty", func() {
			line := &model.BoxScoreLine{}

			Convey("Then the floor of 10 never drops further and no division by zero occurs", func() {
				So(eng.GameExperience(line), ShouldEqual, 20)
				So(line.FieldGoalPct(), ShouldEqual, 0)
			})
		})

		Convey("When shooting is poor on real volume", func() {
			line := &model.BoxScoreLine{
				Points:  2,
				MidMade: 1, MidAtt: 8,
			}
			// 20 + 2*2 + 2*1 = 26, minus the 10-point penalty.
			So(eng.GameExperience(line), ShouldEqual, 16)
		})

		Convey("When shooting is poor on trivial volume", func() {
			line := &model.BoxScoreLine{MidAtt: 2}

			Convey("Then the penalty does not apply", func() {
				So(eng.GameExperience(line), ShouldEqual, 20)
			})
		})
	})
}

func TestAwardPerformanceExperience(t *testing.T) {
	Convey("Given a point guard and a distributing engine", t, func() {
		eng := development.New()
		p := prospect()

		Convey("When awarding a playmaking-heavy game", func() {
			line := &model.BoxScoreLine{
				Points:  10,
				Assists: 12,
				MidMade: 5, MidAtt: 9,
			}
			eng.AwardPerformanceExperience(p, line, 0)

			Convey("Then passing and ball handling lead the ledger", func() {
				So(p.Development.SkillXP[skill.Passing], ShouldBeGreaterThan, 0)
				So(p.Development.SkillXP[skill.BallHandling], ShouldBeGreaterThan, p.Development.SkillXP[skill.Passing]-1)
				So(p.Development.SkillXP[skill.Passing], ShouldBeGreaterThan, p.Development.SkillXP[skill.Rebounding])
			})

			Convey("And the defensive skills still earn their baseline", func() {
				So(p.Development.SkillXP[skill.PerimeterDefense], ShouldBeGreaterThan, 0)
				So(p.Development.SkillXP[skill.PostDefense], ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the statline contributes nothing and the baseline is disabled", func() {
			zero := development.New(development.WithDefensiveBaseline(0))
			line := &model.BoxScoreLine{}
			zero.AwardPerformanceExperience(p, line, 0)

			Convey("Then experience falls back to an even split", func() {
				first := p.Development.SkillXP[skill.Shooting]
				So(first, ShouldBeGreaterThan, 0)
				for _, s := range skill.All() {
					So(p.Development.SkillXP[s], ShouldEqual, first)
				}
			})
		})

		Convey("When a coach bonus is supplied", func() {
			line := &model.BoxScoreLine{Points: 20, MidMade: 8, MidAtt: 12}
			plain := prospect()
			coached := prospect()
			eng.AwardPerformanceExperience(plain, line, 0)
			eng.AwardPerformanceExperience(coached, line, 0.3)

			Convey("Then the coached player earns more", func() {
				So(coached.Development.TotalXP, ShouldBeGreaterThan, plain.Development.TotalXP)
			})

			Convey("And an out-of-range bonus is clamped, not rejected", func() {
				wild := prospect()
				eng.AwardPerformanceExperience(wild, line, 5.0)
				So(wild.Development.TotalXP, ShouldEqual, coached.Development.TotalXP)
			})
		})
	})
}

func TestAwardTrainingExperience(t *testing.T) {
	Convey("Given a training session", t, func() {
		eng := development.New()
		p := prospect()

		Convey("When training shooting at intensity 10", func() {
			eng.AwardTrainingExperience(p, skill.Shooting, 10, 0)

			Convey("Then the focus takes roughly 70% and related skills split the rest", func() {
				focus := p.Development.SkillXP[skill.Shooting]
				inside := p.Development.SkillXP[skill.InsideShooting]
				handle := p.Development.SkillXP[skill.BallHandling]
				So(focus, ShouldBeGreaterThan, inside)
				So(inside, ShouldEqual, handle)
				So(focus, ShouldAlmostEqual, float64(inside+handle)*7.0/3.0, 3)
			})

			Convey("And unrelated skills earn nothing", func() {
				So(p.Development.SkillXP[skill.Rebounding], ShouldEqual, 0)
			})
		})

		Convey("When the inputs are invalid", func() {
			eng.AwardTrainingExperience(p, skill.Skill(99), 10, 0)
			eng.AwardTrainingExperience(p, skill.Shooting, 0, 0)

			Convey("Then nothing is credited", func() {
				So(p.Development.TotalXP, ShouldEqual, 0)
			})
		})
	})
}

func TestProcessSkillUpgrades(t *testing.T) {
	Convey("Given accumulated experience", t, func() {
		eng := development.New()

		Convey("When a fresh skill holds 250 experience", func() {
			p := prospect()
			p.Ratings.Set(skill.Shooting, 10)
			p.Development.SkillXP[skill.Shooting] = 250

			upgraded := eng.ProcessSkillUpgrades(p)

			Convey("Then it upgrades exactly twice (100 then 150) leaving zero", func() {
				count := 0
				for _, s := range upgraded {
					if s == skill.Shooting {
						count++
					}
				}
				So(count, ShouldEqual, 2)
				So(p.Ratings.Get(skill.Shooting), ShouldEqual, 12)
				So(p.Development.SkillXP[skill.Shooting], ShouldEqual, 0)
			})
		})

		Convey("When the skill already sits at its ceiling", func() {
			p := prospect()
			p.Ratings.Set(skill.Passing, 85) // ceiling is 85
			p.Development.SkillXP[skill.Passing] = 1000

			upgraded := eng.ProcessSkillUpgrades(p)

			Convey("Then no upgrade happens and no experience is consumed", func() {
				So(len(upgraded), ShouldEqual, 0)
				So(p.Ratings.Get(skill.Passing), ShouldEqual, 85)
				So(p.Development.SkillXP[skill.Passing], ShouldEqual, 1000)
			})
		})

		Convey("When no skill holds qualifying experience", func() {
			p := prospect()
			p.Development.SkillXP[skill.Shooting] = 99
			before := *p

			upgraded := eng.ProcessSkillUpgrades(p)

			Convey("Then the call is a no-op", func() {
				So(len(upgraded), ShouldEqual, 0)
				So(p.Ratings, ShouldResemble, before.Ratings)
				So(p.Development.SkillXP[skill.Shooting], ShouldEqual, 99)
			})
		})

		Convey("When costs escalate with purchase history", func() {
			So(development.UpgradeCost(0), ShouldEqual, 100)
			So(development.UpgradeCost(1), ShouldEqual, 150)
			So(development.UpgradeCost(4), ShouldEqual, 300)
			So(development.UpgradeCost(-3), ShouldEqual, 100)
		})
	})
}
