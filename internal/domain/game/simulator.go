// Package game simulates full games possession-by-possession, producing a
// final score and a per-player box score from two rosters.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
)

// Default simulation constants.
const (
	DefaultMinPossessions = 180
	DefaultMaxPossessions = 220

	insideBaseChance    = 30
	insideSkillWeight   = 2
	midrangeBaseChance  = 25
	midrangeSkillWeight = 2
	threeBaseChance     = 25
	threeSkillWeight    = 1

	insidePoints = 2
	midPoints    = 2
	threePoints  = 3

	// Secondary event chances, rolled against Intn(100).
	turnoverBaseChance = 8
	stealOnTurnover    = 60
	assistBaseChance   = 55
	blockOnInsideMiss  = 20
)

// Source is the random source the simulator draws from. *rand.Rand
// satisfies it; tests inject scripted sources.
type Source interface {
	Intn(n int) int
}

// PossessionRange bounds the inclusive random possession-count draw.
type PossessionRange struct {
	Min int
	Max int
}

// DefaultPossessionRange returns the standard 180-220 range.
func DefaultPossessionRange() PossessionRange {
	return PossessionRange{Min: DefaultMinPossessions, Max: DefaultMaxPossessions}
}

func (r PossessionRange) valid() bool {
	return r.Min > 0 && r.Max >= r.Min
}

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithSource sets the random source. Each concurrently running game must
// own an independent source.
func WithSource(src Source) Option {
	return func(s *Simulator) {
		if src != nil {
			s.rng = src
		}
	}
}

// Simulator plays games. It never mutates input player skills; its only
// output is the returned score and box score.
type Simulator struct {
	rng Source
}

// New creates a game simulator with configuration options.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // game simulation, not crypto
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type shotType int

const (
	shotInside shotType = iota
	shotMidrange
	shotThree
)

// SimulateGame plays one game between the two rosters. Rosters smaller than
// a full lineup are still simulatable; empty rosters are a configuration
// error. Ties are permitted.
func (s *Simulator) SimulateGame(home, away []*model.Player, possessions PossessionRange) (model.Score, model.BoxScore, error) {
	if len(home) == 0 || len(away) == 0 {
		return model.Score{}, nil, fmt.Errorf("simulate game: %w", ErrEmptyRoster)
	}
	if !possessions.valid() {
		possessions = DefaultPossessionRange()
	}

	n := possessions.Min + s.rng.Intn(possessions.Max-possessions.Min+1)
	box := model.BoxScore{}
	score := model.Score{}

	// Single possession flag, initialized randomly.
	homeBall := s.rng.Intn(2) == 0
	for i := 0; i < n; i++ {
		offense, defense := home, away
		if !homeBall {
			offense, defense = away, home
		}
		outcome := s.playPossession(offense, defense, box)
		if homeBall {
			score.Home += outcome.points
		} else {
			score.Away += outcome.points
		}
		if outcome.flip {
			homeBall = !homeBall
		}
	}
	return score, box, nil
}

type possessionOutcome struct {
	points int
	flip   bool
}

// playPossession resolves one offensive opportunity: optional turnover,
// a shot, and on a miss the rebound battle. Draw order against the source
// is fixed: turnover roll, shot quality, then the sub-event rolls.
func (s *Simulator) playPossession(offense, defense []*model.Player, box model.BoxScore) possessionOutcome {
	shooter := offense[s.rng.Intn(len(offense))]
	shot := shotType(s.rng.Intn(3))

	// Turnover check before the shot goes up; ball handling suppresses it.
	toChance := turnoverBaseChance - shooter.Ratings.Get(skill.BallHandling)/20
	if toChance > 0 && s.rng.Intn(100) < toChance {
		box.Line(shooter).Turnovers++
		if s.rng.Intn(100) < stealOnTurnover {
			thief := defense[s.rng.Intn(len(defense))]
			box.Line(thief).Steals++
		}
		return possessionOutcome{flip: true}
	}

	quality := s.rng.Intn(100)
	made, points := s.resolveShot(shooter, shot, quality, box)
	if made {
		// A made shot may have been created by a teammate.
		if len(offense) > 1 && s.rng.Intn(100) < assistBaseChance {
			idx := s.rng.Intn(len(offense) - 1)
			for _, p := range offense {
				if p.ID == shooter.ID {
					continue
				}
				if idx == 0 {
					box.Line(p).Assists++
					break
				}
				idx--
			}
		}
		return possessionOutcome{points: points, flip: true}
	}

	// Missed inside shots can be credited as blocks.
	if shot == shotInside && s.rng.Intn(100) < blockOnInsideMiss {
		blocker := defense[s.rng.Intn(len(defense))]
		box.Line(blocker).Blocks++
	}

	return possessionOutcome{flip: s.resolveRebound(offense, defense, box)}
}

// resolveShot rolls the linear success test for the shot type, updating the
// shooter's counters. All attempts count regardless of outcome.
func (s *Simulator) resolveShot(shooter *model.Player, shot shotType, quality int, box model.BoxScore) (bool, int) {
	line := box.Line(shooter)
	switch shot {
	case shotInside:
		line.InsideAtt++
		if quality >= 100-(insideBaseChance+insideSkillWeight*shooter.Ratings.Get(skill.InsideShooting)) {
			line.InsideMade++
			line.Points += insidePoints
			return true, insidePoints
		}
	case shotMidrange:
		line.MidAtt++
		if quality >= 100-(midrangeBaseChance+midrangeSkillWeight*shooter.Ratings.Get(skill.Shooting)) {
			line.MidMade++
			line.Points += midPoints
			return true, midPoints
		}
	case shotThree:
		line.ThreeAtt++
		if quality >= 100-(threeBaseChance+threeSkillWeight*shooter.Ratings.Get(skill.Shooting)) {
			line.ThreeMade++
			line.Points += threePoints
			return true, threePoints
		}
	}
	return false, 0
}

// resolveRebound settles the board after a miss. The offense contests first
// under the pre-flip flag; a won board keeps possession and credits the
// contester, a lost one credits a random defender. Every missed shot
// credits exactly one rebound to someone.
func (s *Simulator) resolveRebound(offense, defense []*model.Player, box model.BoxScore) (flip bool) {
	contester := offense[s.rng.Intn(len(offense))]
	quality := s.rng.Intn(100)
	if quality >= 100-contester.Ratings.Get(skill.Rebounding) {
		box.Line(contester).Rebounds++
		return false
	}
	defender := defense[s.rng.Intn(len(defense))]
	box.Line(defender).Rebounds++
	return true
}
