// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the read-only query layer over the embedded dataset; the
// chat handler is the one route with outbound I/O (watsonx inference).
package handler

import (
	"net/http"
	"time"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/config"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	cfg *config.Config
}

// New creates a Handler with shared dependencies.
func New(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Root serves the welcome message and endpoint map at /.
// @Summary API root info
// @Description Returns a welcome message and the map of available endpoints.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to NBA API",
		"endpoints": map[string]string{
			"/teams":                    "Get all teams",
			"/teams/{team_id}":          "Get team by ID",
			"/teams/name/{team_name}":   "Get team by name",
			"/teams/{team_id}/roster":   "Get team roster",
			"/teams/{team_id}/standing": "Get team standing",
			"/standings/eastern":        "Get Eastern Conference standings",
			"/standings/western":        "Get Western Conference standings",
			"/search/players":           "Search players by name, position, or country",
			"/games":                    "Get all scheduled games",
			"/games/search":             "Search games by team or date",
			"/chat":                     "Chat with the NBA assistant",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
