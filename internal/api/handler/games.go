package handler

import (
	"net/http"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/nba"
)

// ListGames returns all scheduled games.
// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {array} nba.Game
// @Router /games [get]
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, nba.Games)
}

// SearchGames searches the schedule by team name or date.
// @Summary Search games
// @Description Searches games by team (case-insensitive substring of both team names) and/or exact date. Zero matches is a 404.
// @Tags search
// @Produce json
// @Param team query string false "Team name substring"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Success 200 {array} nba.Game
// @Failure 404 {object} respond.ErrorResponse
// @Router /games/search [get]
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results := nba.SearchGames(q.Get("team"), q.Get("date"))

	if len(results) == 0 {
		respond.WriteError(w, http.StatusNotFound, "NO_MATCHES", "No games found matching the criteria")
		return
	}

	respond.WriteJSON(w, http.StatusOK, results)
}
