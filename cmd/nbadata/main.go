// Command nbadata exports the embedded NBA dataset as JSON.
//
// Usage:
//
//	nbadata teams
//	nbadata teams --rosters
//	nbadata standings --conference western
//	nbadata games --out schedule.json
//	nbadata players --country canada
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nba-api/internal/nba"
)

func main() {
	root := &cobra.Command{
		Use:   "nbadata",
		Short: "Export the embedded NBA reference dataset",
	}

	root.AddCommand(teamsCmd())
	root.AddCommand(standingsCmd())
	root.AddCommand(gamesCmd())
	root.AddCommand(playersCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// teams command
// --------------------------------------------------------------------------

func teamsCmd() *cobra.Command {
	var rosters bool
	var out string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Export the team table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rosters {
				return writeJSON(out, nba.Teams)
			}
			summaries := make([]nba.TeamSummary, 0, len(nba.Teams))
			for _, team := range nba.Teams {
				summaries = append(summaries, nba.TeamSummary{ID: team.ID, Name: team.Name})
			}
			return writeJSON(out, summaries)
		},
	}
	cmd.Flags().BoolVar(&rosters, "rosters", false, "Include full rosters")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var conference string
	var out string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Export a conference standings table",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch conference {
			case "eastern":
				return writeJSON(out, nba.StandingsEastern)
			case "western":
				return writeJSON(out, nba.StandingsWestern)
			default:
				return fmt.Errorf("unknown conference %q (use eastern or western)", conference)
			}
		},
	}
	cmd.Flags().StringVar(&conference, "conference", "eastern", "Conference (eastern, western)")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}

// --------------------------------------------------------------------------
// games command
// --------------------------------------------------------------------------

func gamesCmd() *cobra.Command {
	var team, date, out string
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Export the schedule, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			if team == "" && date == "" {
				return writeJSON(out, nba.Games)
			}
			return writeJSON(out, nba.SearchGames(team, date))
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Team name substring filter")
	cmd.Flags().StringVar(&date, "date", "", "Exact date filter (YYYY-MM-DD)")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}

// --------------------------------------------------------------------------
// players command
// --------------------------------------------------------------------------

func playersCmd() *cobra.Command {
	var name, position, country, out string
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Export players across all rosters, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(out, nba.SearchPlayers(name, position, country))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Name substring filter")
	cmd.Flags().StringVar(&position, "position", "", "Position substring filter")
	cmd.Flags().StringVar(&country, "country", "", "Country substring filter")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}

// writeJSON renders v as indented JSON to stdout or a file.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
