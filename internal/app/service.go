// Package service provides the league orchestrator that implements the
// dependencies required by the HTTP API and the scheduler.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	fixturequeue "github.com/okian/fastbreak/internal/adapters/mq/queue"
	workerpool "github.com/okian/fastbreak/internal/adapters/mq/worker"
	"github.com/okian/fastbreak/internal/adapters/recorder"
	repository "github.com/okian/fastbreak/internal/adapters/repository"
	"github.com/okian/fastbreak/internal/domain/aging"
	"github.com/okian/fastbreak/internal/domain/dedupe"
	"github.com/okian/fastbreak/internal/domain/development"
	"github.com/okian/fastbreak/internal/domain/game"
	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/internal/domain/skill"
	"github.com/okian/fastbreak/internal/domain/talent"
	"github.com/okian/fastbreak/pkg/logger"
	"github.com/okian/fastbreak/pkg/metrics"
)

// Default league configuration.
const (
	defaultTeamCount         = 8
	defaultRosterSize        = 10
	defaultPoolSize          = 40
	defaultQueueSize         = 10000
	defaultDedupeSize        = 50000
	defaultTrainingIntensity = 5

	minRosterAge = 19
	maxRosterAge = 34
)

// teamNamePool seeds league team names. Extra teams get a numeric suffix.
var teamNamePool = []string{
	"Hawks", "Comets", "Pioneers", "Monarchs",
	"Ironclads", "Breakers", "Voyagers", "Sentinels",
	"Stampede", "Cyclones", "Harbor Cats", "Summit",
	"Night Owls", "Rivermen", "Blizzard", "Outlaws",
}

// Service owns the league: teams, rosters, the simulation pipeline and the
// career engines. All matchday and season operations are serialized.
type Service struct {
	mu sync.RWMutex

	// runMu serializes matchday and season-boundary runs so development and
	// aging never interleave with live simulations.
	runMu sync.Mutex

	// League state
	teams       map[string][]*model.Player
	teamNames   []string
	playersByID map[string]*model.Player
	season      int
	matchday    int

	// Core components
	pool         *repository.MemoryPool
	deduper      dedupe.Deduper
	fixtureQueue fixturequeue.Queue
	workerPool   *workerpool.Pool
	devEngine    *development.Engine
	ageEngine    *aging.Engine
	dist         *talent.Distribution
	rec          recorder.Recorder
	results      chan *model.GameResult
	rng          *rand.Rand

	// Configuration
	workerCount       int
	queueSize         int
	dedupeSize        int
	teamCount         int
	rosterSize        int
	poolSize          int
	possessionRange   game.PossessionRange
	coachBonus        float64
	trainingIntensity int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:       runtime.NumCPU(),
		queueSize:         defaultQueueSize,
		dedupeSize:        defaultDedupeSize,
		teamCount:         defaultTeamCount,
		rosterSize:        defaultRosterSize,
		poolSize:          defaultPoolSize,
		possessionRange:   game.DefaultPossessionRange(),
		coachBonus:        0,
		trainingIntensity: defaultTrainingIntensity,
		rec:               recorder.NewNoopRecorder(),
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not crypto
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the league and the simulation pipeline.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("league")
	}

	s.logger.Info(ctx, "starting league service...")

	s.dist = talent.New(talent.WithRand(s.rng))
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.fixtureQueue = fixturequeue.NewInMemoryQueue(
		fixturequeue.WithCapacity(s.queueSize),
		fixturequeue.WithBufferSize(s.queueSize),
	)
	s.pool = repository.NewMemoryPool()
	s.devEngine = development.New()
	s.ageEngine = aging.New(aging.WithRand(s.rng))
	s.results = make(chan *model.GameResult, s.queueSize)

	s.buildLeague(ctx)
	s.replenishPool(ctx)

	// Each worker gets its own seeded source so simulations are independent.
	newSim := func() workerpool.Simulator {
		return game.New(game.WithSource(rand.New(rand.NewSource(s.rng.Int63())))) //nolint:gosec // simulation randomness
	}
	s.workerPool = workerpool.NewPool(s.workerCount, s.fixtureQueue, newSim, s, s,
		workerpool.WithPossessionRange(s.possessionRange),
	)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "league service started",
		logger.Int("teams", len(s.teamNames)),
		logger.Int("players", len(s.playersByID)),
		logger.Int("workers", s.workerCount),
		logger.Int("prospects", s.pool.Count(ctx)),
	)

	metrics.UpdateActivePlayers(len(s.playersByID))
	metrics.UpdateSeasonNumber(s.season)

	return nil
}

// Stop gracefully shuts down the pipeline.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping league service...")

	if s.workerPool != nil {
		_ = s.workerPool.Shutdown(ctx)
	}
	if err := s.rec.Close(); err != nil {
		s.logger.Error(ctx, "closing recorder", logger.Error(err))
	}

	s.started = false
	s.logger.Info(ctx, "league service stopped")
}

// buildLeague generates the initial teams and rosters. Roles rotate so every
// lineup covers all five positions.
func (s *Service) buildLeague(ctx context.Context) {
	s.teams = make(map[string][]*model.Player, s.teamCount)
	s.teamNames = make([]string, 0, s.teamCount)
	s.playersByID = make(map[string]*model.Player, s.teamCount*s.rosterSize)

	for i := 0; i < s.teamCount; i++ {
		name := teamNamePool[i%len(teamNamePool)]
		if i >= len(teamNamePool) {
			name = fmt.Sprintf("%s %d", name, i/len(teamNamePool)+1)
		}

		roster := make([]*model.Player, 0, s.rosterSize)
		for j := 0; j < s.rosterSize; j++ {
			role := model.Role(j % int(model.RoleCount))
			age := minRosterAge + s.rng.Intn(maxRosterAge-minRosterAge+1)
			p := s.dist.NewPlayer(role, age, false)
			roster = append(roster, p)
			s.playersByID[p.ID] = p
			s.recordGenerated(ctx, p)
		}
		s.teams[name] = roster
		s.teamNames = append(s.teamNames, name)
	}
}

// RunMatchday pairs the teams, enqueues the fixtures and waits for every
// game to finish, then applies development serially.
func (s *Service) RunMatchday(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.matchday++
	matchday := s.matchday
	fixtures := s.pairings(matchday)
	s.mu.Unlock()

	expected := 0
	for _, f := range fixtures {
		if s.deduper.SeenAndRecord(ctx, f.ID) {
			s.logger.Debug(ctx, "duplicate fixture skipped", logger.String("fixtureID", f.ID))
			continue
		}
		if !s.fixtureQueue.Enqueue(ctx, f) {
			s.deduper.Unrecord(ctx, f.ID)
			s.logger.Warn(ctx, "fixture rejected by queue", logger.String("fixtureID", f.ID))
			continue
		}
		expected++
	}

	results := make([]*model.GameResult, 0, expected)
	for len(results) < expected {
		select {
		case res := <-s.results:
			results = append(results, res)
		case <-ctx.Done():
			return fmt.Errorf("matchday %d interrupted: %w", matchday, ctx.Err())
		}
	}

	// Development is applied only after the whole round is simulated.
	s.mu.Lock()
	for _, res := range results {
		s.applyGameDevelopment(res)
	}
	s.trainRosters()
	s.mu.Unlock()

	s.logger.Info(ctx, "matchday complete",
		logger.Int("matchday", matchday),
		logger.Int("games", len(results)),
	)
	return nil
}

// pairings shuffles the teams and pairs neighbors. An odd team sits out.
// Fixture IDs are deterministic per season and matchday so a replayed round
// dedupes instead of double-simulating.
func (s *Service) pairings(matchday int) []model.Fixture {
	order := make([]string, len(s.teamNames))
	copy(order, s.teamNames)
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	fixtures := make([]model.Fixture, 0, len(order)/2)
	for i := 0; i+1 < len(order); i += 2 {
		fixtures = append(fixtures, model.Fixture{
			ID:       fmt.Sprintf("s%d-m%d-%s-vs-%s", s.season, matchday, order[i], order[i+1]),
			Matchday: matchday,
			Home:     order[i],
			Away:     order[i+1],
		})
	}
	return fixtures
}

// Roster resolves a team name for the simulation workers.
func (s *Service) Roster(_ context.Context, team string) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster, ok := s.teams[team]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, team)
	}
	return roster, nil
}

// RecordResult receives one finished game from a worker. The result is
// archived immediately; development waits for the matchday to complete.
func (s *Service) RecordResult(ctx context.Context, res *model.GameResult) error {
	if err := s.rec.RecordGame(ctx, res); err != nil {
		s.logger.Error(ctx, "archiving game failed",
			logger.String("fixtureID", res.Fixture.ID),
			logger.Error(err),
		)
	}

	select {
	case s.results <- res:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("delivering result %s: %w", res.Fixture.ID, ctx.Err())
	}
}

// applyGameDevelopment awards performance experience and buys upgrades for
// every player on the box score. Callers hold s.mu.
func (s *Service) applyGameDevelopment(res *model.GameResult) {
	for _, line := range res.Box {
		p, ok := s.playersByID[line.PlayerID]
		if !ok {
			continue
		}
		metrics.RecordExperienceAwarded(s.devEngine.GameExperience(line))
		s.devEngine.AwardPerformanceExperience(p, line, s.coachBonus)
		upgrades := s.devEngine.ProcessSkillUpgrades(p)
		metrics.RecordSkillUpgrades(len(upgrades))
	}
}

// trainRosters runs one training session per player, focused on the weakest
// skill. Callers hold s.mu.
func (s *Service) trainRosters() {
	for _, name := range s.teamNames {
		for _, p := range s.teams[name] {
			s.devEngine.AwardTrainingExperience(p, weakestSkill(p), s.trainingIntensity, s.coachBonus)
			upgrades := s.devEngine.ProcessSkillUpgrades(p)
			metrics.RecordSkillUpgrades(len(upgrades))
			metrics.RecordTrainingSession()
		}
	}
}

func weakestSkill(p *model.Player) skill.Skill {
	weakest := skill.Shooting
	for _, sk := range skill.All() {
		if p.Ratings.Get(sk) < p.Ratings.Get(weakest) {
			weakest = sk
		}
	}
	return weakest
}

// AdvanceSeason runs the season boundary: aging, retirement and roster
// regeneration from the prospect pool.
func (s *Service) AdvanceSeason(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	s.season++
	retired := 0

	for _, name := range s.teamNames {
		roster := s.teams[name]
		outcomes := s.ageEngine.AdvanceRoster(roster)

		survivors := make([]*model.Player, 0, len(roster))
		var vacancies []model.Role
		for i := range outcomes {
			metrics.RecordSeasonAdvance()
			if err := s.rec.RecordSeasonOutcome(ctx, s.season, &outcomes[i]); err != nil {
				s.logger.Error(ctx, "archiving season outcome failed", logger.Error(err))
			}

			p := roster[i]
			if p.Retired {
				retired++
				metrics.RecordRetirement(string(p.RetirementReason))
				delete(s.playersByID, p.ID)
				vacancies = append(vacancies, p.Role)
				continue
			}
			survivors = append(survivors, p)
		}

		for _, role := range vacancies {
			replacement, err := s.pool.TakeBest(ctx, role)
			if err != nil {
				// Pool exhausted for this role: draft a fresh rookie.
				replacement = s.dist.NewRookie(role)
				s.recordGenerated(ctx, replacement)
			}
			s.playersByID[replacement.ID] = replacement
			survivors = append(survivors, replacement)
		}

		s.teams[name] = survivors
	}

	s.replenishPool(ctx)

	metrics.UpdateActivePlayers(len(s.playersByID))
	metrics.UpdateSeasonNumber(s.season)

	s.logger.Info(ctx, "season advanced",
		logger.Int("season", s.season),
		logger.Int("retired", retired),
		logger.Int("prospects", s.pool.Count(ctx)),
	)
	return nil
}

// replenishPool tops the prospect pool back up with fresh rookies.
func (s *Service) replenishPool(ctx context.Context) {
	for s.pool.Count(ctx) < s.poolSize {
		role := model.Role(s.rng.Intn(int(model.RoleCount)))
		p := s.dist.NewRookie(role)
		if err := s.pool.Add(ctx, p); err != nil {
			s.logger.Warn(ctx, "pooling rookie failed", logger.Error(err))
			return
		}
		s.recordGenerated(ctx, p)
	}
}

func (s *Service) recordGenerated(ctx context.Context, p *model.Player) {
	metrics.RecordPlayerGenerated(p.Tier.String())
	if err := s.rec.RecordGeneratedPlayer(ctx, s.season, p); err != nil {
		s.logger.Error(ctx, "archiving generated player failed", logger.Error(err))
	}
}

// TeamView is the read model returned to the HTTP layer.
type TeamView struct {
	Name    string              `json:"name"`
	Players []map[string]string `json:"players"`
}

// Teams returns a snapshot of every roster.
func (s *Service) Teams(_ context.Context) []TeamView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]TeamView, 0, len(s.teamNames))
	for _, name := range s.teamNames {
		roster := s.teams[name]
		players := make([]map[string]string, 0, len(roster))
		for _, p := range roster {
			players = append(players, p.Snapshot())
		}
		views = append(views, TeamView{Name: name, Players: players})
	}
	return views
}

// TopProspects returns the best n pool entries.
func (s *Service) TopProspects(ctx context.Context, n int) ([]repository.Entry, error) {
	return s.pool.TopN(ctx, n)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"season":      s.season,
		"matchday":    s.matchday,
	}

	if s.started {
		stats["teams"] = len(s.teamNames)
		stats["activePlayers"] = len(s.playersByID)
		stats["queueLength"] = s.fixtureQueue.Len(ctx)
		stats["prospects"] = s.pool.Count(ctx)
	}

	return stats
}

// Season returns the current season number.
func (s *Service) Season() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.season
}
