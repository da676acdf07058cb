package repository

// Option applies a configuration option to the MemoryPool.
type Option func(*MemoryPool)

// WithScorer overrides the ranking function used to order prospects.
func WithScorer(s Scorer) Option {
	return func(p *MemoryPool) {
		if s != nil {
			p.score = s
		}
	}
}
