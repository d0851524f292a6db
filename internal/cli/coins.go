package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newCoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Daily play-allowance operations",
	}

	cmd.AddCommand(newCoinsUseCmd())

	return cmd
}

func newCoinsUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use",
		Short: "Spend one play coin from the saved account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Address == "" {
				return errors.New("no address saved; run 'zdefense auth wallet' first")
			}

			body := map[string]any{"address": cfg.Address}

			var result CoinResult
			if err := client.Post("/api/v1/coins/use", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
