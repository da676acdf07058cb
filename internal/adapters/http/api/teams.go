// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// TeamsDependencies defines the interface for roster reads.
type TeamsDependencies interface {
	Teams(ctx context.Context) []TeamView
}

// TeamsHandler handles roster requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeams handles GET /teams requests.
func (h *TeamsHandler) HandleGetTeams(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Teams(r.Context()))
}
