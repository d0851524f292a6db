package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account operations",
	}

	cmd.AddCommand(newUserGetCmd())

	return cmd
}

func newUserGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [address]",
		Short: "Show an account (defaults to the saved address)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := cfg.Address
			if len(args) > 0 {
				address = args[0]
			}
			if address == "" {
				return errors.New("no address given and none saved; run 'zdefense auth wallet' first")
			}

			var result User
			if err := client.Get("/api/v1/users/"+address, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
