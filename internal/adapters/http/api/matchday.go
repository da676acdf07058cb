// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/okian/fastbreak/pkg/logger"
)

// MatchdayDependencies defines the interface for triggering a round.
type MatchdayDependencies interface {
	RunMatchday(ctx context.Context) error
}

// MatchdayHandler handles manual matchday triggers.
type MatchdayHandler struct {
	deps MatchdayDependencies

	// running guards against overlapping manual triggers; the league
	// serializes rounds anyway, but rejecting early gives the caller a
	// clear signal instead of a queued run.
	mu      sync.Mutex
	running bool
}

// NewMatchdayHandler creates a new matchday handler.
func NewMatchdayHandler(deps MatchdayDependencies) *MatchdayHandler {
	return &MatchdayHandler{deps: deps}
}

// HandlePostMatchday handles POST /matchday requests. The round runs
// asynchronously; the response acknowledges the trigger.
func (h *MatchdayHandler) HandlePostMatchday(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_matchday"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	h.running = true
	h.mu.Unlock()

	go func() {
		ctx := context.Background()
		if err := h.deps.RunMatchday(ctx); err != nil {
			logger.Get().Named("api").Error(ctx, "matchday trigger failed", logger.Error(err))
		}
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
	}()

	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted"})
}
