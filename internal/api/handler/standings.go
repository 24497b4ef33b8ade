package handler

import (
	"fmt"
	"net/http"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/nba"
)

// TeamStandingResponse pairs a team name with its Eastern Conference row.
type TeamStandingResponse struct {
	Team     string       `json:"team"`
	Standing nba.Standing `json:"standing"`
}

// GetEasternStandings returns the Eastern Conference table.
// @Summary Eastern Conference standings
// @Tags standings
// @Produce json
// @Success 200 {array} nba.Standing
// @Router /standings/eastern [get]
func (h *Handler) GetEasternStandings(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, nba.StandingsEastern)
}

// GetWesternStandings returns the Western Conference table.
// @Summary Western Conference standings
// @Tags standings
// @Produce json
// @Success 200 {array} nba.Standing
// @Router /standings/western [get]
func (h *Handler) GetWesternStandings(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, nba.StandingsWestern)
}

// GetTeamStanding returns standing info for a specific team. The join only
// consults the Eastern table, so Western teams resolve to a 404 here even
// though they appear under /standings/western.
// @Summary Get team standing
// @Description Returns the Eastern Conference standing row for a team.
// @Tags standings
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} TeamStandingResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID}/standing [get]
func (h *Handler) GetTeamStanding(w http.ResponseWriter, r *http.Request) {
	id, ok := teamID(w, r)
	if !ok {
		return
	}

	team, ok := nba.FindTeamByID(id)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "TEAM_NOT_FOUND", fmt.Sprintf("Team with ID %d not found", id))
		return
	}

	standing, ok := nba.FindEasternStanding(team.Name)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "STANDING_NOT_FOUND", fmt.Sprintf("Standing data not found for %s", team.Name))
		return
	}

	respond.WriteJSON(w, http.StatusOK, TeamStandingResponse{Team: team.Name, Standing: *standing})
}
