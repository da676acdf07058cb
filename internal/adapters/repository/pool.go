package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/fastbreak/internal/domain/model"
	"github.com/okian/fastbreak/pkg/metrics"
)

// Scorer ranks a prospect. Higher scores rank earlier.
type Scorer func(p *model.Player) float64

// defaultScorer weighs scouted ceilings over current ability: prospects are
// drafted for what they can become, not what they are.
func defaultScorer(p *model.Player) float64 {
	const (
		currentWeight   = 0.4
		potentialWeight = 0.6
	)
	return currentWeight*float64(p.Overall()) + potentialWeight*float64(p.Potential.Overall)
}

// key orders the pool: score DESC, then player ID ASC (deterministic).
type key struct {
	id    string
	score float64
}

func keyLess(a, b key) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.id < b.id
}

// MemoryPool is an in-memory, mutex-guarded Pool implementation holding the
// ordered prospect list alongside a lookup map.
type MemoryPool struct {
	mu      sync.RWMutex
	players map[string]*model.Player
	order   []key
	score   Scorer
}

// NewMemoryPool creates an empty prospect pool with configuration options.
func NewMemoryPool(opts ...Option) *MemoryPool {
	p := &MemoryPool{
		players: make(map[string]*model.Player),
		score:   defaultScorer,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add inserts a prospect keeping the ranking order intact.
func (m *MemoryPool) Add(_ context.Context, p *model.Player) error {
	if p == nil {
		return ErrNilPlayer
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.players[p.ID]; ok {
		return ErrDuplicateID
	}

	k := key{id: p.ID, score: m.score(p)}
	i := sort.Search(len(m.order), func(i int) bool {
		return !keyLess(m.order[i], k)
	})
	m.order = append(m.order, key{})
	copy(m.order[i+1:], m.order[i:])
	m.order[i] = k
	m.players[p.ID] = p

	metrics.UpdateProspectPoolSize(len(m.players))
	return nil
}

// TakeBest removes and returns the best pooled prospect for the role.
func (m *MemoryPool) TakeBest(_ context.Context, role model.Role) (*model.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, k := range m.order {
		p := m.players[k.id]
		if p.Role != role {
			continue
		}
		m.order = append(m.order[:i], m.order[i+1:]...)
		delete(m.players, p.ID)

		metrics.UpdateProspectPoolSize(len(m.players))
		metrics.RecordProspectTaken()
		return p, nil
	}
	return nil, ErrEmptyPool
}

// Rank returns the prospect's current standing in the pool.
func (m *MemoryPool) Rank(_ context.Context, playerID string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i, k := range m.order {
		if k.id == playerID {
			return m.entryAt(i), nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns the best n prospects in ranking order.
func (m *MemoryPool) TopN(_ context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > len(m.order) {
		n = len(m.order)
	}
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = m.entryAt(i)
	}
	return entries, nil
}

// Count returns the number of pooled prospects.
func (m *MemoryPool) Count(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

// entryAt builds the public row for position i. Callers hold the lock.
func (m *MemoryPool) entryAt(i int) Entry {
	k := m.order[i]
	p := m.players[k.id]
	return Entry{
		Rank:     i + 1,
		PlayerID: p.ID,
		Name:     p.Name,
		Role:     p.Role.String(),
		Tier:     p.Tier.String(),
		Age:      p.Age,
		Score:    k.score,
	}
}
