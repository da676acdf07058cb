// Package talent generates talent tiers, potential tiers, rare archetypes
// and complete players from configured probability tables.
package talent

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
)

// Default generation constants.
const (
	defaultArchetypeNoneChance = 0.85
	defaultYoungBumpChance     = 0.15
	defaultRookieBumpChance    = 0.10
	youngAgeCutoff             = 23

	minCeiling = 30
	maxCeiling = 99
)

// devRateByPotential seeds the development-rate scalar from the ceiling tier.
var devRateByPotential = [model.PotentialTierCount]float64{
	model.Bronze: 0.8,
	model.Silver: 1.0,
	model.Gold:   1.2,
	model.Elite:  1.5,
}

// Option applies a configuration option to the Distribution.
type Option func(*Distribution)

// WithRand sets the random source. Tests inject seeded sources here.
func WithRand(rng *rand.Rand) Option {
	return func(d *Distribution) {
		if rng != nil {
			d.rng = rng
		}
	}
}

// WithArchetypeNoneChance overrides how often no archetype is assigned.
func WithArchetypeNoneChance(chance float64) Option {
	return func(d *Distribution) {
		if chance >= 0 && chance <= 1 {
			d.archetypeNoneChance = chance
		}
	}
}

// WithPotentialNudges overrides the young-age and rookie upward tier bumps.
func WithPotentialNudges(young, rookie float64) Option {
	return func(d *Distribution) {
		if young >= 0 && young <= 1 {
			d.youngBumpChance = young
		}
		if rookie >= 0 && rookie <= 1 {
			d.rookieBumpChance = rookie
		}
	}
}

// Distribution draws tiers, archetypes and whole players from the fixed
// categorical tables. Stateless apart from its random source and the
// per-batch name registry.
type Distribution struct {
	rng                 *rand.Rand
	archetypeNoneChance float64
	youngBumpChance     float64
	rookieBumpChance    float64

	usedNames map[string]int
}

// New creates a Distribution with configuration options.
func New(opts ...Option) *Distribution {
	d := &Distribution{
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // game simulation, not crypto
		archetypeNoneChance: defaultArchetypeNoneChance,
		youngBumpChance:     defaultYoungBumpChance,
		rookieBumpChance:    defaultRookieBumpChance,
		usedNames:           make(map[string]int),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// TalentTier draws a talent tier. Rookie pools skew upward to model
// draft-class variance.
func (d *Distribution) TalentTier(isRookie bool) model.TalentTier {
	weights := veteranTierWeights
	if isRookie {
		weights = rookieTierWeights
	}
	return model.TalentTier(d.weightedIndex(weights[:]))
}

// PotentialTier draws a ceiling tier conditional on the talent tier, with an
// upward nudge for young players and a separate one for rookies.
func (d *Distribution) PotentialTier(tier model.TalentTier, age int, isRookie bool) model.PotentialTier {
	if tier < 0 || tier >= model.TalentTierCount {
		tier = model.Bench
	}
	p := model.PotentialTier(d.weightedIndex(potentialWeights[tier][:]))
	if age <= youngAgeCutoff && d.rng.Float64() < d.youngBumpChance {
		p = p.Bump()
	}
	if isRookie && d.rng.Float64() < d.rookieBumpChance {
		p = p.Bump()
	}
	return p
}

// Archetype draws a rare specialization valid for the role, or
// ArchetypeNone most of the time.
func (d *Distribution) Archetype(role model.Role) model.Archetype {
	if d.rng.Float64() < d.archetypeNoneChance {
		return model.ArchetypeNone
	}
	type candidate struct {
		arch   model.Archetype
		weight int
	}
	var cands []candidate
	total := 0
	// Fixed iteration order keeps draws reproducible under a seeded source.
	for arch := model.EliteShooter; arch < model.ArchetypeCount; arch++ {
		profile := archetypeProfiles[arch]
		for _, r := range profile.roles {
			if r == role {
				cands = append(cands, candidate{arch, profile.weight})
				total += profile.weight
				break
			}
		}
	}
	if total == 0 {
		return model.ArchetypeNone
	}
	roll := d.rng.Intn(total)
	for _, c := range cands {
		roll -= c.weight
		if roll < 0 {
			return c.arch
		}
	}
	return model.ArchetypeNone
}

// Ceilings generates per-skill potential ceilings for a (role, talent tier,
// potential tier) combination: tier base range, role emphasis, potential
// bonus, re-clamped into [30,99].
func (d *Distribution) Ceilings(role model.Role, tier model.TalentTier, p model.PotentialTier) skill.Ratings {
	if !role.Valid() {
		role = model.SmallForward
	}
	base := tierCapRange[tier]
	emphasis := emphasisByRole[role]
	bonus := potentialCeilingBonus[p]

	var caps skill.Ratings
	for _, s := range skill.All() {
		v := base.lo + d.rng.Intn(base.hi-base.lo+1) + bonus
		v += emphasisBoost(emphasis, s)
		caps[s] = skill.Clamp(v, minCeiling, maxCeiling)
	}
	return caps
}

func emphasisBoost(e roleEmphasis, s skill.Skill) int {
	for _, p := range e.primary {
		if p == s {
			return primaryBoost
		}
	}
	for _, sec := range e.secondary {
		if sec == s {
			return secondaryBoost
		}
	}
	for _, w := range e.weak {
		if w == s {
			return weakPenalty
		}
	}
	return 0
}

// NewPlayer generates a complete player: tiers, archetype, ceilings, initial
// ratings inside the ceilings, development rate and aging curve.
func (d *Distribution) NewPlayer(role model.Role, age int, isRookie bool) *model.Player {
	tier := d.TalentTier(isRookie)
	pTier := d.PotentialTier(tier, age, isRookie)
	caps := d.Ceilings(role, tier, pTier)
	arch := d.Archetype(role)

	// Archetype shifts move ceilings first so value shifts stay bounded.
	if arch != model.ArchetypeNone {
		for _, shift := range archetypeProfiles[arch].shifts {
			caps[shift.s] = skill.Clamp(caps[shift.s]+shift.ceiling, minCeiling, maxCeiling)
		}
	}

	// Initial values sit below the ceiling; the younger the player, the
	// more unrealized headroom remains.
	youthGap := 0
	if age < 25 {
		youthGap = 2 * (25 - age)
	}
	var ratings skill.Ratings
	for _, s := range skill.All() {
		gap := 3 + d.rng.Intn(6) + youthGap
		ratings[s] = skill.Clamp(caps[s]-gap, minCeiling, caps[s])
	}
	if arch != model.ArchetypeNone {
		for _, shift := range archetypeProfiles[arch].shifts {
			ratings[shift.s] = skill.Clamp(ratings[shift.s]+shift.value, minCeiling, caps[shift.s])
		}
	}

	overallCap := 0
	for _, v := range caps {
		overallCap += v
	}

	p := &model.Player{
		ID:          uuid.NewString(),
		Name:        d.uniqueName(),
		Nationality: nationalities[d.rng.Intn(len(nationalities))],
		Age:         age,
		Role:        role,
		Ratings:     ratings,
		Tier:        tier,
		Archetype:   arch,
		Potential: model.Potential{
			Tier:     pTier,
			Ceilings: caps,
			Overall:  int(math.Round(float64(overallCap) / float64(skill.Count))),
		},
	}

	rate := devRateByPotential[pTier] + (d.rng.Float64()-0.5)*0.4
	p.Development.Rate = rate
	p.Development.ClampRate()

	p.Curve = aging.DeriveCurve(role, age, p.Overall())
	return p
}

// NewRookie generates a draft-age player for the given role.
func (d *Distribution) NewRookie(role model.Role) *model.Player {
	age := 19 + d.rng.Intn(4) // 19..22
	return d.NewPlayer(role, age, true)
}

// ResetNames clears the per-batch name uniqueness registry.
func (d *Distribution) ResetNames() {
	d.usedNames = make(map[string]int)
}

func (d *Distribution) uniqueName() string {
	name := firstNames[d.rng.Intn(len(firstNames))] + " " + lastNames[d.rng.Intn(len(lastNames))]
	n := d.usedNames[name]
	d.usedNames[name] = n + 1
	if n == 0 {
		return name
	}
	// Collision inside the batch: suffix with a generation numeral.
	return name + " " + strings.Repeat("I", n+1)
}

func (d *Distribution) weightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	roll := d.rng.Intn(total)
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}
