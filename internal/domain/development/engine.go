// Package development converts game and training performance into skill
// experience and accumulated experience into bounded skill upgrades.
package development

import (
	"math"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
)

// Experience constants.
const (
	baseGameXP = 20
	minGameXP  = 10
	maxGameXP  = 200

	pointsXPWeight  = 2
	reboundXPWeight = 3
	assistXPWeight  = 4
	fgmXPWeight     = 2
	threeXPWeight   = 3

	poorShootingPenalty     = 10
	poorShootingPct         = 0.30
	poorShootingMinAttempts = 5

	// Upgrade cost tiers: the k-th purchase of a skill costs
	// upgradeBaseCost + k*upgradeCostStep experience.
	upgradeBaseCost = 100
	upgradeCostStep = 50

	defaultDefensiveBaseline = 1.0
	defaultTrainingFocus     = 0.70
	trainingPoolPerIntensity = 10

	minCoachBonus = -0.2
	maxCoachBonus = 0.3
)

// relatedSkills is the static adjacency used by training: 30% of a training
// pool spills evenly into the focused skill's related set.
var relatedSkills = [skill.Count][]skill.Skill{
	skill.Shooting:         {skill.InsideShooting, skill.BallHandling},
	skill.Rebounding:       {skill.PostDefense},
	skill.Passing:          {skill.BallHandling},
	skill.BallHandling:     {skill.Passing, skill.Shooting},
	skill.PerimeterDefense: {skill.PostDefense},
	skill.PostDefense:      {skill.Rebounding, skill.PerimeterDefense},
	skill.InsideShooting:   {skill.Shooting, skill.PostDefense},
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithDefensiveBaseline sets the flat per-game participation weight credited
// to the defensive skills even without a box-score signal.
func WithDefensiveBaseline(w float64) Option {
	return func(e *Engine) {
		if w >= 0 {
			e.defensiveBaseline = w
		}
	}
}

// WithTrainingFocusShare sets the share of a training pool granted to the
// focused skill; the remainder divides across its related set.
func WithTrainingFocusShare(share float64) Option {
	return func(e *Engine) {
		if share > 0 && share <= 1 {
			e.trainingFocus = share
		}
	}
}

// Engine turns performance signals into experience and experience into
// upgrades. Purely deterministic; all randomness lives upstream in the
// game simulation.
type Engine struct {
	defensiveBaseline float64
	trainingFocus     float64
}

// New creates a development engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		defensiveBaseline: defaultDefensiveBaseline,
		trainingFocus:     defaultTrainingFocus,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GameExperience computes the clamped base experience for one statline:
// 20 + 2*points + 3*rebounds + 4*assists + 2*FGM + 3*3PM, with a -10
// penalty for sub-30% shooting on non-trivial volume, clamped to [10,200].
func (e *Engine) GameExperience(line *model.BoxScoreLine) int {
	xp := baseGameXP +
		pointsXPWeight*line.Points +
		reboundXPWeight*line.Rebounds +
		assistXPWeight*line.Assists +
		fgmXPWeight*line.FieldGoalsMade() +
		threeXPWeight*line.ThreeMade

	// Percentage check only applies when there were attempts at all.
	if att := line.FieldGoalsAttempted(); att >= poorShootingMinAttempts &&
		line.FieldGoalPct() < poorShootingPct {
		xp -= poorShootingPenalty
	}
	return skill.Clamp(xp, minGameXP, maxGameXP)
}

// AwardPerformanceExperience credits the statline's experience to the
// player, split across skills by the categories that produced it. The age
// modifier comes from the player's aging curve, the coach bonus from an
// optional coaching collaborator (clamped to its observed range).
func (e *Engine) AwardPerformanceExperience(p *model.Player, line *model.BoxScoreLine, coachBonus float64) {
	p.Development.ClampRate()
	base := float64(e.GameExperience(line))
	total := base * p.Curve.DevelopmentModifier(p.Age) * p.Development.Rate * (1 + clampCoachBonus(coachBonus))
	if total <= 0 {
		return
	}

	weights := e.statWeights(p.Role, line)
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		// No contributing category: distribute evenly.
		for i := range weights {
			weights[i] = 1
		}
		sum = float64(skill.Count)
	}

	for _, s := range skill.All() {
		share := int(math.Round(total * weights[s] / sum))
		p.Development.AddXP(s, share)
	}
}

// AwardTrainingExperience credits a training session: intensity drives the
// pool, the focused skill takes the focus share and the related set splits
// the remainder evenly.
func (e *Engine) AwardTrainingExperience(p *model.Player, focus skill.Skill, intensity int, coachBonus float64) {
	if !focus.Valid() || intensity <= 0 {
		return
	}
	p.Development.ClampRate()
	pool := float64(intensity*trainingPoolPerIntensity) *
		p.Curve.DevelopmentModifier(p.Age) * p.Development.Rate * (1 + clampCoachBonus(coachBonus))
	if pool <= 0 {
		return
	}

	p.Development.AddXP(focus, int(math.Round(pool*e.trainingFocus)))
	related := relatedSkills[focus]
	if len(related) == 0 {
		return
	}
	spill := pool * (1 - e.trainingFocus) / float64(len(related))
	for _, s := range related {
		p.Development.AddXP(s, int(math.Round(spill)))
	}
}

// ProcessSkillUpgrades converts accumulated experience into +1 skill
// increments. A skill upgrades only while it can afford the next tiered
// cost and sits strictly below its potential ceiling. Returns one entry per
// upgrade applied, in skill order. Calling with no affordable experience is
// a no-op.
func (e *Engine) ProcessSkillUpgrades(p *model.Player) []skill.Skill {
	var upgraded []skill.Skill
	for _, s := range skill.All() {
		ceiling := p.Potential.Ceilings.Get(s)
		for {
			cost := UpgradeCost(p.Development.Purchased[s])
			if p.Development.SkillXP[s] < cost {
				break
			}
			if p.Ratings.Get(s) >= ceiling {
				break
			}
			p.Ratings.Set(s, p.Ratings.Get(s)+1)
			p.Development.SkillXP[s] -= cost
			p.Development.Purchased[s]++
			upgraded = append(upgraded, s)
		}
	}
	return upgraded
}

// UpgradeCost returns the experience price of the next increment for a
// skill that has already been upgraded purchased times.
func UpgradeCost(purchased int) int {
	if purchased < 0 {
		purchased = 0
	}
	return upgradeBaseCost + purchased*upgradeCostStep
}

// statWeights derives the per-skill distribution weights from the statline.
// Scoring feeds the shooting skills, boards feed rebounding, assists feed
// passing and ball handling (amplified for point guards), and the defensive
// skills always receive a small participation baseline.
func (e *Engine) statWeights(role model.Role, line *model.BoxScoreLine) [skill.Count]float64 {
	var w [skill.Count]float64
	w[skill.Shooting] = float64(2*line.MidMade + 3*line.ThreeMade)
	w[skill.InsideShooting] = float64(2 * line.InsideMade)
	w[skill.Rebounding] = float64(2 * line.Rebounds)
	w[skill.Passing] = float64(2 * line.Assists)
	w[skill.BallHandling] = float64(line.Assists)
	if role == model.PointGuard {
		w[skill.BallHandling] *= 2
	}
	w[skill.PerimeterDefense] = float64(2*line.Steals) + e.defensiveBaseline
	w[skill.PostDefense] = float64(2*line.Blocks) + e.defensiveBaseline
	return w
}

func clampCoachBonus(b float64) float64 {
	if b < minCoachBonus {
		return minCoachBonus
	}
	if b > maxCoachBonus {
		return maxCoachBonus
	}
	return b
}
