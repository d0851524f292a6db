package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Leaderboard operations",
	}

	cmd.AddCommand(newLeaderboardTopCmd())
	cmd.AddCommand(newLeaderboardSubmitCmd())
	cmd.AddCommand(newLeaderboardArchivesCmd())

	return cmd
}

func newLeaderboardTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the current weekly leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HighScores
			path := fmt.Sprintf("/api/v1/highscores?limit=%d", limit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show (1-100)")

	return cmd
}

func newLeaderboardSubmitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "submit <score>",
		Short: "Submit a score for the saved account (or anonymously with --name)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("score must be an integer: %w", err)
			}

			body := map[string]any{"score": score}
			if name != "" {
				body["name"] = name
			} else {
				body["address"] = cfg.Address
			}

			if err := client.Post("/api/v1/highscores", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Score submitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Submit anonymously under this name")

	return cmd
}

func newLeaderboardArchivesCmd() *cobra.Command {
	var year, week int

	cmd := &cobra.Command{
		Use:   "archives",
		Short: "Show archived weekly leaderboards",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if year > 0 {
				query.Set("year", strconv.Itoa(year))
			}
			if week > 0 {
				query.Set("week", strconv.Itoa(week))
			}
			path := "/api/v1/highscores/archives"
			if len(query) > 0 {
				path += "?" + query.Encode()
			}

			var result Archives
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Filter by year")
	cmd.Flags().IntVar(&week, "week", 0, "Filter by ISO week number")

	return cmd
}
