package talent

import (
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
)

// Talent tier population weights, in tier order (superstar..bench).
// Percentages; each row sums to 100.
var (
	veteranTierWeights = [model.TalentTierCount]int{2, 8, 25, 35, 30}
	rookieTierWeights  = [model.TalentTierCount]int{5, 15, 30, 35, 15}
)

// potentialWeights is the potential-tier distribution conditional on talent
// tier, in potential order (bronze, silver, gold, elite). Rows sum to 100.
var potentialWeights = [model.TalentTierCount][model.PotentialTierCount]int{
	model.Superstar: {3, 12, 35, 50},
	model.AllStar:   {10, 25, 45, 20},
	model.Starter:   {20, 45, 30, 5},
	model.Rotation:  {35, 48, 15, 2},
	model.Bench:     {55, 36, 8, 1},
}

// tierCapRange is the base ceiling range per talent tier before role
// emphasis is applied.
var tierCapRange = [model.TalentTierCount]struct{ lo, hi int }{
	model.Superstar: {82, 95},
	model.AllStar:   {75, 88},
	model.Starter:   {68, 82},
	model.Rotation:  {60, 75},
	model.Bench:     {50, 68},
}

// potentialCeilingBonus lifts all ceilings by potential tier.
var potentialCeilingBonus = [model.PotentialTierCount]int{
	model.Bronze: 0,
	model.Silver: 3,
	model.Gold:   6,
	model.Elite:  10,
}

// Role emphasis boosts for ceiling generation.
const (
	primaryBoost   = 8
	secondaryBoost = 4
	weakPenalty    = -6
)

type roleEmphasis struct {
	primary   []skill.Skill
	secondary []skill.Skill
	weak      []skill.Skill
}

var emphasisByRole = [model.RoleCount]roleEmphasis{
	model.PointGuard: {
		primary:   []skill.Skill{skill.BallHandling, skill.Passing},
		secondary: []skill.Skill{skill.Shooting, skill.PerimeterDefense},
		weak:      []skill.Skill{skill.PostDefense, skill.InsideShooting},
	},
	model.ShootingGuard: {
		primary:   []skill.Skill{skill.Shooting, skill.PerimeterDefense},
		secondary: []skill.Skill{skill.BallHandling, skill.Passing},
		weak:      []skill.Skill{skill.PostDefense, skill.Rebounding},
	},
	model.SmallForward: {
		primary:   []skill.Skill{skill.Shooting, skill.PerimeterDefense},
		secondary: []skill.Skill{skill.Rebounding, skill.InsideShooting},
		weak:      []skill.Skill{skill.PostDefense},
	},
	model.PowerForward: {
		primary:   []skill.Skill{skill.Rebounding, skill.PostDefense},
		secondary: []skill.Skill{skill.InsideShooting, skill.Shooting},
		weak:      []skill.Skill{skill.BallHandling},
	},
	model.Center: {
		primary:   []skill.Skill{skill.InsideShooting, skill.PostDefense},
		secondary: []skill.Skill{skill.Rebounding},
		weak:      []skill.Skill{skill.BallHandling, skill.PerimeterDefense},
	},
}

// archetypeShift moves one skill's current value and ceiling.
type archetypeShift struct {
	s       skill.Skill
	value   int
	ceiling int
}

type archetypeProfile struct {
	weight int
	roles  []model.Role
	shifts []archetypeShift
}

// archetypeProfiles drives rare-archetype selection and application.
// Boosted skills carry compensating penalties elsewhere.
var archetypeProfiles = map[model.Archetype]archetypeProfile{
	model.EliteShooter: {
		weight: 20,
		roles:  []model.Role{model.ShootingGuard, model.SmallForward},
		shifts: []archetypeShift{
			{skill.Shooting, 10, 15},
			{skill.InsideShooting, -5, -10},
		},
	},
	model.DefensiveSpecialist: {
		weight: 15,
		roles:  []model.Role{model.ShootingGuard, model.SmallForward, model.PowerForward},
		shifts: []archetypeShift{
			{skill.PerimeterDefense, 8, 12},
			{skill.PostDefense, 5, 8},
			{skill.Shooting, -5, -8},
		},
	},
	model.Playmaker: {
		weight: 15,
		roles:  []model.Role{model.PointGuard, model.ShootingGuard},
		shifts: []archetypeShift{
			{skill.Passing, 10, 14},
			{skill.BallHandling, 8, 10},
			{skill.InsideShooting, -5, -8},
		},
	},
	model.AthleticFinisher: {
		weight: 15,
		roles:  []model.Role{model.SmallForward, model.PowerForward, model.Center},
		shifts: []archetypeShift{
			{skill.InsideShooting, 10, 14},
			{skill.Rebounding, 4, 6},
			{skill.Shooting, -6, -10},
		},
	},
	model.StretchBig: {
		weight: 10,
		roles:  []model.Role{model.PowerForward, model.Center},
		shifts: []archetypeShift{
			{skill.Shooting, 10, 14},
			{skill.PostDefense, -4, -8},
		},
	},
	model.LockdownDefender: {
		weight: 10,
		roles:  []model.Role{model.PointGuard, model.ShootingGuard, model.SmallForward},
		shifts: []archetypeShift{
			{skill.PerimeterDefense, 12, 15},
			{skill.Passing, -4, -8},
		},
	},
	model.FloorGeneral: {
		weight: 8,
		roles:  []model.Role{model.PointGuard},
		shifts: []archetypeShift{
			{skill.Passing, 12, 15},
			{skill.BallHandling, 6, 8},
			{skill.Rebounding, -5, -8},
		},
	},
	model.Energizer: {
		weight: 7,
		roles:  []model.Role{model.SmallForward, model.PowerForward, model.Center},
		shifts: []archetypeShift{
			{skill.Rebounding, 8, 10},
			{skill.PerimeterDefense, 4, 6},
			{skill.PostDefense, 4, 6},
			{skill.Shooting, -6, -10},
		},
	},
}
