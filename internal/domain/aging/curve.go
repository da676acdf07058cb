// Package aging advances players across season boundaries: age increment,
// skill degradation and retirement evaluation.
package aging

import (
	"github.com/okian/fastbreak/internal/domain/model"
)

// Curve derivation constants.
const (
	eliteOverallThreshold = 85
	weakOverallThreshold  = 60
	oldAtCreationAge      = 30

	baseDeclineRate    = 0.08
	basePeakMultiplier = 1.0
)

// roleCurveBase biases peak, decline-start and retirement ages by position.
// Centers age soonest, point guards latest.
var roleCurveBase = [model.RoleCount]struct {
	peak, decline, retire int
}{
	model.PointGuard:    {28, 31, 39},
	model.ShootingGuard: {27, 30, 38},
	model.SmallForward:  {26, 29, 37},
	model.PowerForward:  {26, 29, 37},
	model.Center:        {25, 28, 36},
}

// DeriveCurve builds the aging curve for a player of the given role, current
// age and overall rating. Called once at creation; recalculation is an
// explicit caller decision.
func DeriveCurve(role model.Role, age int, overall float64) model.AgingCurve {
	if !role.Valid() {
		role = model.SmallForward
	}
	base := roleCurveBase[role]
	c := model.AgingCurve{
		PeakAge:         base.peak,
		DeclineStartAge: base.decline,
		RetirementAge:   base.retire,
		PeakMultiplier:  basePeakMultiplier,
		DeclineRate:     baseDeclineRate,
	}

	switch {
	case overall > eliteOverallThreshold:
		// Elite players hold on longer and fade slower.
		c.RetirementAge += 2
		c.DeclineRate *= 0.9
	case overall < weakOverallThreshold:
		c.RetirementAge -= 2
		c.DeclineRate *= 1.1
	}

	if age > oldAtCreationAge {
		// Late entrants decline faster but always get at least one season.
		c.DeclineRate *= 1.25
		if c.RetirementAge < age+1 {
			c.RetirementAge = age + 1
		}
	}
	return c
}
