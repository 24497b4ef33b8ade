package handler

import (
	"net/http"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/nba"
)

// PlayerSearchResponse wraps player search results with a match count.
type PlayerSearchResponse struct {
	Count   int                `json:"count"`
	Results []nba.PlayerResult `json:"results"`
}

// SearchPlayers searches players across all rosters.
// @Summary Search players
// @Description Searches players by name, position, or country. Every filter is a case-insensitive substring match; omitted filters match everything. Zero matches is a 404.
// @Tags search
// @Produce json
// @Param name query string false "Name substring"
// @Param position query string false "Position substring"
// @Param country query string false "Country substring"
// @Success 200 {object} PlayerSearchResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /search/players [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results := nba.SearchPlayers(q.Get("name"), q.Get("position"), q.Get("country"))

	if len(results) == 0 {
		respond.WriteError(w, http.StatusNotFound, "NO_MATCHES", "No players found matching the criteria")
		return
	}

	respond.WriteJSON(w, http.StatusOK, PlayerSearchResponse{Count: len(results), Results: results})
}
