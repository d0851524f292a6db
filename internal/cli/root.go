package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "zdefense",
		Short: "CLI tool for the Zombie Defense API",
		Long: `zdefense is a CLI tool for interacting with the Zombie Defense JSON API.

It supports wallet sign-in, account lookups, the daily coin allowance,
and the weekly leaderboard with its archives.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the default wallet address if not provided via flag/env
			if err := cfg.LoadAddress(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: ZDEFENSE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Address, "address", cfg.Address, "Wallet address (env: ZDEFENSE_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&cfg.AddressFile, "address-file", cfg.AddressFile, "Address file path (env: ZDEFENSE_ADDRESS_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newCoinsCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
