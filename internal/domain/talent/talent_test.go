package talent_test

import (
	"math/rand"
	"testing"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	"github.com/okian/fastbreak/internal/domain/talent"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTalentTierDistribution(t *testing.T) {
	Convey("Given a distribution with a seeded source", t, func() {
		d := talent.New(talent.WithRand(rand.New(rand.NewSource(42))))

		Convey("When sampling the veteran pool 100000 times", func() {
			const samples = 100000
			counts := make(map[model.TalentTier]int)
			for i := 0; i < samples; i++ {
				counts[d.TalentTier(false)]++
			}

			Convey("Then the superstar rate is close to 2%", func() {
				rate := float64(counts[model.Superstar]) / samples
				So(rate, ShouldAlmostEqual, 0.02, 0.005)
			})

			Convey("And the bench rate is close to 30%", func() {
				rate := float64(counts[model.Bench]) / samples
				So(rate, ShouldAlmostEqual, 0.30, 0.01)
			})
		})

		Convey("When sampling the rookie pool 100000 times", func() {
			const samples = 100000
			superstars := 0
			for i := 0; i < samples; i++ {
				if d.TalentTier(true) == model.Superstar {
					superstars++
				}
			}

			Convey("Then the rookie superstar rate skews upward toward 5%", func() {
				So(float64(superstars)/samples, ShouldAlmostEqual, 0.05, 0.005)
			})
		})
	})
}

func TestPotentialTier(t *testing.T) {
	Convey("Given a distribution", t, func() {
		d := talent.New(talent.WithRand(rand.New(rand.NewSource(11))))

		Convey("When drawing potential for superstars vs bench players", func() {
			const samples = 20000
			eliteSuperstar, eliteBench := 0, 0
			for i := 0; i < samples; i++ {
				if d.PotentialTier(model.Superstar, 27, false) == model.Elite {
					eliteSuperstar++
				}
				if d.PotentialTier(model.Bench, 27, false) == model.Elite {
					eliteBench++
				}
			}

			Convey("Then elite ceilings are far more common for superstars", func() {
				So(eliteSuperstar, ShouldBeGreaterThan, eliteBench*10)
			})
		})

		Convey("When the young nudge is forced to certainty", func() {
			forced := talent.New(
				talent.WithRand(rand.New(rand.NewSource(11))),
				talent.WithPotentialNudges(1.0, 0),
			)

			Convey("Then a young bench player never stays at bronze", func() {
				for i := 0; i < 1000; i++ {
					p := forced.PotentialTier(model.Bench, 20, false)
					So(p, ShouldNotEqual, model.Bronze)
				}
			})
		})
	})
}

func TestArchetype(t *testing.T) {
	Convey("Given a distribution", t, func() {
		d := talent.New(talent.WithRand(rand.New(rand.NewSource(3))))

		Convey("When drawing archetypes for a center many times", func() {
			const samples = 20000
			none := 0
			seen := make(map[model.Archetype]bool)
			for i := 0; i < samples; i++ {
				a := d.Archetype(model.Center)
				if a == model.ArchetypeNone {
					none++
					continue
				}
				seen[a] = true
			}

			Convey("Then roughly 85% of draws assign nothing", func() {
				So(float64(none)/samples, ShouldAlmostEqual, 0.85, 0.02)
			})

			Convey("And only role-valid archetypes appear", func() {
				So(seen[model.EliteShooter], ShouldBeFalse)
				So(seen[model.FloorGeneral], ShouldBeFalse)
				So(seen[model.AthleticFinisher], ShouldBeTrue)
			})
		})
	})
}

func TestCeilingsAndPlayers(t *testing.T) {
	Convey("Given a distribution", t, func() {
		d := talent.New(talent.WithRand(rand.New(rand.NewSource(9))))

		Convey("When generating ceilings for every role and tier", func() {
			for role := model.Role(0); role < model.RoleCount; role++ {
				for tier := model.TalentTier(0); tier < model.TalentTierCount; tier++ {
					caps := d.Ceilings(role, tier, model.Silver)
					for _, s := range skill.All() {
						So(caps.Get(s), ShouldBeBetweenOrEqual, 30, 99)
					}
				}
			}
		})

		Convey("When generating full players", func() {
			for i := 0; i < 500; i++ {
				role := model.Role(i % int(model.RoleCount))
				p := d.NewPlayer(role, 19+i%18, false)

				for _, s := range skill.All() {
					So(p.Ratings.Get(s), ShouldBeBetweenOrEqual, 0, 99)
					So(p.Ratings.Get(s), ShouldBeLessThanOrEqualTo, p.Potential.Ceilings.Get(s))
				}
				So(p.ID, ShouldNotBeEmpty)
				So(p.Development.Rate, ShouldBeBetweenOrEqual, model.MinDevelopmentRate, model.MaxDevelopmentRate)
				So(p.Curve.RetirementAge, ShouldBeGreaterThan, p.Curve.DeclineStartAge)
				So(p.Curve.DeclineStartAge, ShouldBeGreaterThan, p.Curve.PeakAge)
			}
		})

		Convey("When generating players with colliding names", func() {
			d.ResetNames()
			names := make(map[string]bool)
			for i := 0; i < 300; i++ {
				p := d.NewRookie(model.PointGuard)
				So(names[p.Name], ShouldBeFalse)
				names[p.Name] = true
			}
		})
	})
}
