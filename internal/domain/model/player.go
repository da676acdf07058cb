// Package model contains domain entities passed between layers.
package model

import (
	"strconv"

	"github.com/okian/fastbreak/internal/domain/skill"
)

// Role identifies one of the five position categories.
type Role int

// Position categories.
const (
	PointGuard Role = iota
	ShootingGuard
	SmallForward
	PowerForward
	Center

	RoleCount
)

var roleNames = [RoleCount]string{
	PointGuard:    "point_guard",
	ShootingGuard: "shooting_guard",
	SmallForward:  "small_forward",
	PowerForward:  "power_forward",
	Center:        "center",
}

// String returns the snake_case role name used in serialization.
func (r Role) String() string {
	if r < 0 || r >= RoleCount {
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r >= 0 && r < RoleCount }

// DevelopmentRate bounds for the per-player rate scalar.
const (
	MinDevelopmentRate = 0.1
	MaxDevelopmentRate = 3.0
)

// Potential holds a player's hidden ceilings. Ceilings gate how far
// development can push each skill; they are fixed at generation time.
type Potential struct {
	Tier     PotentialTier
	Ceilings skill.Ratings
	Overall  int
	// Scouted controls visibility to external consumers; the engines read
	// ceilings regardless.
	Scouted bool
}

// DevelopmentTracker is the per-player experience ledger.
type DevelopmentTracker struct {
	// SkillXP is the unspent experience balance per skill.
	SkillXP [skill.Count]int
	// Purchased counts upgrades already bought per skill; it drives the
	// tiered upgrade cost.
	Purchased [skill.Count]int
	// TotalXP is the lifetime experience earned across all skills.
	TotalXP int
	// Rate scales all earned experience, bounded to
	// [MinDevelopmentRate, MaxDevelopmentRate].
	Rate float64
}

// AddXP credits xp to s, keeping balances non-negative.
func (d *DevelopmentTracker) AddXP(s skill.Skill, xp int) {
	if !s.Valid() || xp <= 0 {
		return
	}
	d.SkillXP[s] += xp
	d.TotalXP += xp
}

// ClampRate forces Rate back into its legal range.
func (d *DevelopmentTracker) ClampRate() {
	if d.Rate < MinDevelopmentRate {
		d.Rate = MinDevelopmentRate
	}
	if d.Rate > MaxDevelopmentRate {
		d.Rate = MaxDevelopmentRate
	}
}

// AgingCurve holds the per-player parameters governing development rate by
// age and degradation rate by age. Derived once at creation from role and
// current age; immutable afterwards except by explicit recalculation.
type AgingCurve struct {
	PeakAge         int
	DeclineStartAge int
	RetirementAge   int
	PeakMultiplier  float64
	DeclineRate     float64
}

// DevelopmentModifier maps age to the experience multiplier. Young players
// learn fastest; past DeclineStartAge the modifier is non-increasing in age.
func (c AgingCurve) DevelopmentModifier(age int) float64 {
	switch {
	case age < c.PeakAge:
		m := c.PeakMultiplier + 0.05*float64(c.PeakAge-age)
		if m > 1.5 {
			m = 1.5
		}
		return m
	case age <= c.DeclineStartAge:
		return c.PeakMultiplier
	default:
		m := c.PeakMultiplier - c.DeclineRate*float64(age-c.DeclineStartAge)
		if m < 0.2 {
			m = 0.2
		}
		return m
	}
}

// Player is the mutable career entity: identity, current skills, hidden
// potential, experience ledger and aging parameters. Composition replaces
// the layered base/enhanced entity split of older designs.
type Player struct {
	ID          string
	Name        string
	Nationality string
	Age         int
	Role        Role

	Ratings     skill.Ratings
	Potential   Potential
	Development DevelopmentTracker
	Curve       AgingCurve

	Archetype Archetype
	Tier      TalentTier

	Retired          bool
	RetirementReason RetirementReason
}

// Overall returns the mean of the seven current ratings.
func (p *Player) Overall() float64 { return p.Ratings.Average() }

// Snapshot returns the flat serialization consumed by external persistence.
// All values are stringified; keys are stable snake_case names.
func (p *Player) Snapshot() map[string]string {
	m := map[string]string{
		"id":          p.ID,
		"name":        p.Name,
		"nationality": p.Nationality,
		"age":         strconv.Itoa(p.Age),
		"role":        p.Role.String(),
		"tier":        p.Tier.String(),
		"archetype":   p.Archetype.String(),
		"retired":     strconv.FormatBool(p.Retired),
		"dev_rate":    strconv.FormatFloat(p.Development.Rate, 'f', 2, 64),
		"total_xp":    strconv.Itoa(p.Development.TotalXP),
		"peak_age":    strconv.Itoa(p.Curve.PeakAge),
		"decline_age": strconv.Itoa(p.Curve.DeclineStartAge),
		"retire_age":  strconv.Itoa(p.Curve.RetirementAge),
	}
	if p.Retired {
		m["retirement_reason"] = string(p.RetirementReason)
	}
	for _, s := range skill.All() {
		m[s.String()] = strconv.Itoa(p.Ratings.Get(s))
		m["xp_"+s.String()] = strconv.Itoa(p.Development.SkillXP[s])
	}
	if p.Potential.Scouted {
		m["potential_tier"] = p.Potential.Tier.String()
		m["potential_overall"] = strconv.Itoa(p.Potential.Overall)
		for _, s := range skill.All() {
			m["cap_"+s.String()] = strconv.Itoa(p.Potential.Ceilings.Get(s))
		}
	}
	return m
}

// RetirementReason codes the condition that ended a career.
type RetirementReason string

// Retirement reasons, in evaluation priority order.
const (
	RetiredAge         RetirementReason = "age"
	RetiredPerformance RetirementReason = "performance"
	RetiredInjury      RetirementReason = "injury"
	RetiredVoluntary   RetirementReason = "voluntary"
)
