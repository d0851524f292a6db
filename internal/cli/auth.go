package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in with a wallet or Farcaster identity",
	}

	cmd.AddCommand(newAuthWalletCmd())
	cmd.AddCommand(newAuthFarcasterCmd())

	return cmd
}

func newAuthWalletCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "wallet <address>",
		Short: "Sign in with a wallet address (creates the account on first use)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"address":  args[0],
				"username": username,
			}

			var result User
			if err := client.Post("/api/v1/auth/wallet", body, &result); err != nil {
				return err
			}

			// Remember the address for later commands
			if err := cfg.SaveAddress(result.Address); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Display name for the leaderboard")

	return cmd
}

func newAuthFarcasterCmd() *cobra.Command {
	var fid int64
	var username string

	cmd := &cobra.Command{
		Use:   "farcaster <address>",
		Short: "Link a Farcaster identity to a wallet account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fid <= 0 {
				return errors.New("--fid is required and must be positive")
			}

			body := map[string]any{
				"address":  args[0],
				"fid":      fid,
				"username": username,
			}

			var result User
			if err := client.Post("/api/v1/auth/farcaster", body, &result); err != nil {
				return err
			}

			if err := cfg.SaveAddress(result.Address); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&fid, "fid", 0, "Farcaster ID")
	cmd.Flags().StringVar(&username, "username", "", "Farcaster username")

	return cmd
}
