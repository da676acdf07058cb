package aging

import (
	"math"
	"math/rand"
	"time"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
)

// Degradation constants.
const (
	maxPreRetirementRate  = 0.1
	postRetirementRate    = 0.25
	ratePerYearPastStart  = 0.03
	degradationPointScale = 10.0
	maxPointsLostPerSkill = 3.0
	jitterSpread          = 0.25 // +/-25%

	defaultInjuryChance    = 0.05
	defaultVoluntaryChance = 0.15

	mandatoryRetireSlack   = 2  // retirementAge+2 forces retirement
	performanceDeclineLag  = 3  // declineStart+3 opens the performance check
	performanceOverallBar  = 45.0
	injuryWindowLead       = 2 // retirementAge-2 opens the injury check
	voluntaryWindowLead    = 1 // retirementAge-1 opens the voluntary check
	voluntaryOverallBar    = 60.0
)

// skillDeclineMultiplier: physical and perimeter skills fade faster than
// touch skills.
var skillDeclineMultiplier = [skill.Count]float64{
	skill.Shooting:         0.7,
	skill.Rebounding:       1.2,
	skill.Passing:          0.8,
	skill.BallHandling:     1.1,
	skill.PerimeterDefense: 1.3,
	skill.PostDefense:      1.0,
	skill.InsideShooting:   1.1,
}

func valueDeclineMultiplier(v int) float64 {
	switch {
	case v > 80:
		return 1.3
	case v > 70:
		return 1.15
	case v > 60:
		return 1.0
	default:
		return 0.85
	}
}

func ageDeclineMultiplier(age int) float64 {
	switch {
	case age > 35:
		return 1.5
	case age > 32:
		return 1.25
	case age > 30:
		return 1.1
	default:
		return 1.0
	}
}

// SkillChange records one skill's movement during a season advance.
type SkillChange struct {
	Old   int
	New   int
	Delta int
}

// Outcome is the per-player result of one season boundary.
type Outcome struct {
	PlayerID    string
	Name        string
	PreviousAge int
	NewAge      int
	Skills      map[skill.Skill]SkillChange
	Retired     bool
	Reason      model.RetirementReason
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRand sets the random source used for jitter and stochastic
// retirement. Tests inject seeded sources here.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithRetirementChances overrides the injury and voluntary retirement
// probabilities. Values outside (0,1] are ignored.
func WithRetirementChances(injury, voluntary float64) Option {
	return func(e *Engine) {
		if injury > 0 && injury <= 1 {
			e.injuryChance = injury
		}
		if voluntary > 0 && voluntary <= 1 {
			e.voluntaryChance = voluntary
		}
	}
}

// Engine advances players one season at a time.
type Engine struct {
	rng             *rand.Rand
	injuryChance    float64
	voluntaryChance float64
}

// New creates an aging engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // game simulation, not crypto
		injuryChance:    defaultInjuryChance,
		voluntaryChance: defaultVoluntaryChance,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AdvanceSeason moves p across one season boundary: age +1, degradation if
// past the decline start, then retirement evaluation in priority order.
// Already-retired players come back unchanged.
func (e *Engine) AdvanceSeason(p *model.Player) Outcome {
	out := Outcome{
		PlayerID:    p.ID,
		Name:        p.Name,
		PreviousAge: p.Age,
		Skills:      make(map[skill.Skill]SkillChange, skill.Count),
	}
	if p.Retired {
		out.NewAge = p.Age
		out.Retired = true
		out.Reason = p.RetirementReason
		return out
	}

	p.Age++
	out.NewAge = p.Age

	rate := e.degradationRate(p.Curve, p.Age)
	for _, s := range skill.All() {
		old := p.Ratings.Get(s)
		next := old
		if rate > 0 {
			next = e.degradeSkill(old, s, p.Age, rate)
		}
		p.Ratings.Set(s, next)
		out.Skills[s] = SkillChange{Old: old, New: next, Delta: next - old}
	}

	if reason, retired := e.evaluateRetirement(p); retired {
		p.Retired = true
		p.RetirementReason = reason
		out.Retired = true
		out.Reason = reason
	}
	return out
}

// AdvanceRoster applies AdvanceSeason player-wise, collecting outcomes in
// input order.
func (e *Engine) AdvanceRoster(roster []*model.Player) []Outcome {
	outcomes := make([]Outcome, 0, len(roster))
	for _, p := range roster {
		outcomes = append(outcomes, e.AdvanceSeason(p))
	}
	return outcomes
}

// degradationRate is zero before the decline start, grows with years past
// it up to a small cap, and jumps once past retirement age.
func (e *Engine) degradationRate(c model.AgingCurve, age int) float64 {
	if age <= c.DeclineStartAge {
		return 0
	}
	if age > c.RetirementAge {
		return postRetirementRate
	}
	rate := float64(age-c.DeclineStartAge) * c.DeclineRate * ratePerYearPastStart
	return math.Min(rate, maxPreRetirementRate)
}

// degradeSkill computes the new value for one skill. The loss is clamped to
// [0, maxPointsLostPerSkill] per year and never drops a skill below the
// aging floor.
func (e *Engine) degradeSkill(value int, s skill.Skill, age int, rate float64) int {
	if value <= skill.AgingFloor {
		return value
	}
	base := rate * skillDeclineMultiplier[s] * valueDeclineMultiplier(value) *
		ageDeclineMultiplier(age) * degradationPointScale
	jitter := 1 - jitterSpread + e.rng.Float64()*2*jitterSpread
	loss := base * jitter
	if loss < 0 {
		loss = 0
	}
	if loss > maxPointsLostPerSkill {
		loss = maxPointsLostPerSkill
	}
	next := value - int(math.Round(loss))
	if next < skill.AgingFloor {
		next = skill.AgingFloor
	}
	return next
}

// evaluateRetirement checks the retirement conditions in priority order and
// short-circuits on the first match. It never fails; no match simply means
// the career continues.
func (e *Engine) evaluateRetirement(p *model.Player) (model.RetirementReason, bool) {
	c := p.Curve
	overall := p.Overall()

	if p.Age >= c.RetirementAge+mandatoryRetireSlack {
		return model.RetiredAge, true
	}
	if p.Age >= c.DeclineStartAge+performanceDeclineLag && overall < performanceOverallBar {
		return model.RetiredPerformance, true
	}
	if p.Age >= c.RetirementAge-injuryWindowLead && e.rng.Float64() < e.injuryChance {
		return model.RetiredInjury, true
	}
	if p.Age >= c.RetirementAge-voluntaryWindowLead && overall < voluntaryOverallBar &&
		e.rng.Float64() < e.voluntaryChance {
		return model.RetiredVoluntary, true
	}
	return "", false
}
