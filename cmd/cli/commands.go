package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	rankOrder  string
	rankLimit  int
	rankPlayer string

	filterPlayers  int
	filterDuration int
	filterMinScore float64
)

func init() {
	rankingsCmd.Flags().StringVar(&rankOrder, "order", "DESC", "Ranking direction (ASC or DESC)")
	rankingsCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum number of rows (0 uses the server default)")
	rankingsCmd.Flags().StringVar(&rankPlayer, "player", "", "Restrict the ranking to games this player has scored")

	filterCmd.Flags().IntVar(&filterPlayers, "players", 0, "Number of players the game must support")
	filterCmd.Flags().IntVar(&filterDuration, "max-duration", 0, "Maximum play time in minutes")
	filterCmd.Flags().Float64Var(&filterMinScore, "min-avg-score", 0, "Minimum mean score")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(competitionsCmd)
	rootCmd.AddCommand(announceLeaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players with their stars",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the games on the shelf with their mean scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/games")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Rank games by mean score",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("order", rankOrder)
		if rankLimit > 0 {
			q.Set("limit", fmt.Sprint(rankLimit))
		}
		if rankPlayer != "" {
			q.Set("player_id", rankPlayer)
		}
		return performGetRequest("/rankings?" + q.Encode())
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Find games matching player count, duration and score criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if filterPlayers > 0 {
			q.Set("players", fmt.Sprint(filterPlayers))
		}
		if filterDuration > 0 {
			q.Set("max_duration", fmt.Sprint(filterDuration))
		}
		if filterMinScore > 0 {
			q.Set("min_avg_score", fmt.Sprint(filterMinScore))
		}
		return performGetRequest("/games/filter?" + q.Encode())
	},
}

var competitionsCmd = &cobra.Command{
	Use:   "competitions [id]",
	Short: "List open competitions, or show one competition's progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return performGetRequest("/competitions/" + args[0])
		}
		return performGetRequest("/competitions")
	},
}

var announceLeaderboardCmd = &cobra.Command{
	Use:   "announce-leaderboard",
	Short: "Post the current stars leaderboard to the configured channel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/leaderboard/announce")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
