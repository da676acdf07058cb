// Package repository defines the prospect pool interface and errors.
package repository

import (
	"context"

	"github.com/okian/fastbreak/internal/domain/model"
)

// Entry represents a ranked prospect pool row.
type Entry struct {
	Rank     int
	PlayerID string
	Name     string
	Role     string
	Tier     string
	Age      int
	Score    float64
}

// Pool provides read/write access to the ranked prospect pool that feeds
// roster regeneration.
type Pool interface {
	// Add inserts a prospect into the pool.
	// Returns ErrDuplicateID if the player is already pooled.
	Add(ctx context.Context, p *model.Player) error

	// TakeBest removes and returns the highest-ranked prospect for the role.
	// Returns ErrEmptyPool when no prospect with that role is available.
	TakeBest(ctx context.Context, role model.Role) (*model.Player, error)

	// Rank returns the current rank and score for a pooled prospect.
	// Returns ErrNotFound if the player is not pooled.
	Rank(ctx context.Context, playerID string) (Entry, error)

	// TopN returns the top-N entries ordered by score desc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of pooled prospects.
	Count(ctx context.Context) int
}
