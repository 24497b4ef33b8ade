package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/nba-api/internal/api/respond"
	"github.com/courtside/nba-api/internal/nba"
)

// teamID parses the {teamID} path parameter, writing a 400 on failure.
func teamID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "teamID")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team ID must be an integer")
		return 0, false
	}
	return id, true
}

// ListTeams returns all teams with basic info.
// @Summary List teams
// @Description Returns all NBA teams with id and name only.
// @Tags teams
// @Produce json
// @Success 200 {array} nba.TeamSummary
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	summaries := make([]nba.TeamSummary, 0, len(nba.Teams))
	for _, team := range nba.Teams {
		summaries = append(summaries, nba.TeamSummary{ID: team.ID, Name: team.Name})
	}
	respond.WriteJSON(w, http.StatusOK, summaries)
}

// GetTeamByID returns team details by ID.
// @Summary Get team by ID
// @Description Returns full team details, including the roster.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} nba.Team
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [get]
func (h *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	id, ok := teamID(w, r)
	if !ok {
		return
	}

	team, ok := nba.FindTeamByID(id)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "TEAM_NOT_FOUND", fmt.Sprintf("Team with ID %d not found", id))
		return
	}
	respond.WriteJSON(w, http.StatusOK, team)
}

// GetTeamByName returns team details by name, ignoring case.
// @Summary Get team by name
// @Description Returns full team details by case-insensitive name match.
// @Tags teams
// @Produce json
// @Param teamName path string true "Team name"
// @Success 200 {object} nba.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/name/{teamName} [get]
func (h *Handler) GetTeamByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "teamName")

	team, ok := nba.FindTeamByName(name)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "TEAM_NOT_FOUND", fmt.Sprintf("Team '%s' not found", name))
		return
	}
	respond.WriteJSON(w, http.StatusOK, team)
}

// GetTeamRoster returns the roster for a team.
// @Summary Get team roster
// @Description Returns the list of players on a team's roster.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} nba.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID}/roster [get]
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	id, ok := teamID(w, r)
	if !ok {
		return
	}

	roster, ok := nba.Roster(id)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "TEAM_NOT_FOUND", fmt.Sprintf("Team with ID %d not found", id))
		return
	}
	respond.WriteJSON(w, http.StatusOK, roster)
}
