// Package nba holds the embedded NBA reference dataset and the read-only
// query layer over it.
//
// All tables are package-level slices populated by composite literals and
// never mutated after init, so every function here is safe for concurrent
// use without locking.
package nba

// Player is one roster entry. Players have no identity beyond their name
// and are owned by exactly one team.
type Player struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	LastAttended string `json:"last_attended"`
	Country      string `json:"country"`
}

// Team is a franchise with its current roster.
type Team struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Roster []Player `json:"roster"`
}

// TeamSummary is the id+name projection returned by the team list endpoint.
type TeamSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Standing is one conference-table row. Field names keep the scoreboard
// column headers used by the JSON payloads (Team, W, L, PCT, GB, L10, Strk).
type Standing struct {
	Team string  `json:"Team"`
	W    int     `json:"W"`
	L    int     `json:"L"`
	PCT  float64 `json:"PCT"`
	GB   string  `json:"GB"`
	L10  string  `json:"L10"`
	Strk string  `json:"Strk"`
}

// Game is a scheduled game. Team names are plain text and are not required
// to match an entry in the teams table.
type Game struct {
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// PlayerResult pairs a matched player with the name of the team that owns
// the roster entry.
type PlayerResult struct {
	Player Player `json:"player"`
	Team   string `json:"team"`
}
