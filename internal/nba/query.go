package nba

import "strings"

// FindTeamByID returns the first team with a matching ID. Tables are tens of
// entries, so a linear scan is fine.
func FindTeamByID(id int) (*Team, bool) {
	for i := range Teams {
		if Teams[i].ID == id {
			return &Teams[i], true
		}
	}
	return nil, false
}

// FindTeamByName returns the team whose name matches ignoring case.
func FindTeamByName(name string) (*Team, bool) {
	for i := range Teams {
		if strings.EqualFold(Teams[i].Name, name) {
			return &Teams[i], true
		}
	}
	return nil, false
}

// Roster returns the roster for a team ID, in table order.
func Roster(teamID int) ([]Player, bool) {
	team, ok := FindTeamByID(teamID)
	if !ok {
		return nil, false
	}
	return team.Roster, true
}

// FindEasternStanding returns the Eastern Conference standing row whose Team
// field exactly equals teamName. Only the Eastern table is consulted; a team
// listed in the Western table has no standing here.
func FindEasternStanding(teamName string) (*Standing, bool) {
	for i := range StandingsEastern {
		if StandingsEastern[i].Team == teamName {
			return &StandingsEastern[i], true
		}
	}
	return nil, false
}

// SearchPlayers returns every (player, team) pair satisfying all supplied
// filters. Each filter is a case-insensitive substring test against the
// corresponding player field; an empty filter always passes. An empty result
// means no matches, not an error.
func SearchPlayers(name, position, country string) []PlayerResult {
	var results []PlayerResult
	for _, team := range Teams {
		for _, player := range team.Roster {
			if name != "" && !containsFold(player.Name, name) {
				continue
			}
			if position != "" && !containsFold(player.Position, position) {
				continue
			}
			if country != "" && !containsFold(player.Country, country) {
				continue
			}
			results = append(results, PlayerResult{Player: player, Team: team.Name})
		}
	}
	return results
}

// SearchGames returns every game satisfying the supplied filters. The team
// filter is a case-insensitive substring test against team1 and team2
// concatenated, so a search string spanning the seam between the two names
// still matches. The date filter is exact string equality.
func SearchGames(team, date string) []Game {
	var results []Game
	for _, game := range Games {
		if team != "" && !containsFold(game.Team1+game.Team2, team) {
			continue
		}
		if date != "" && date != game.Date {
			continue
		}
		results = append(results, game)
	}
	return results
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
