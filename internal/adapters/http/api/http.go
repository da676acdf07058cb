// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	repository "github.com/okian/fastbreak/internal/adapters/repository"
	service "github.com/okian/fastbreak/internal/app"
)

// Entry mirrors the read shape returned by prospect pool queries.
type Entry = repository.Entry

// TeamView mirrors the roster read model exposed by the league service.
type TeamView = service.TeamView

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RunMatchday schedules and simulates the next round of fixtures.
	RunMatchday(ctx context.Context) error

	// Read operations expose league data.
	Teams(ctx context.Context) []TeamView
	TopProspects(ctx context.Context, n int) ([]Entry, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	teamsHandler     *TeamsHandler
	prospectsHandler *ProspectsHandler
	matchdayHandler  *MatchdayHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxProspectLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		teamsHandler:     NewTeamsHandler(deps),
		prospectsHandler: NewProspectsHandler(deps, maxProspectLimit),
		matchdayHandler:  NewMatchdayHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleGetTeams, "teams"))
	mux.HandleFunc("/prospects", MetricsMiddleware(s.prospectsHandler.HandleGetProspects, "prospects"))
	mux.HandleFunc("/matchday", MetricsMiddleware(s.matchdayHandler.HandlePostMatchday, "matchday"))
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
