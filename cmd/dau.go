package cmd

import (
	"github.com/augmentcode/augmetrics/core"
	"github.com/spf13/cobra"
)

// dauCmd fetches daily active user counts.
var dauCmd = &cobra.Command{
	Use:   "dau",
	Short: "Show daily active user counts for a date range.",
	Long: `Fetch daily distinct active user counts from the Augment Analytics API.

These are the same counts the export command uses to fill the
total_active_users field of the Copilot report.

Examples:
  # Counts for a range
  augmetrics dau --start-date 2026-01-01 --end-date 2026-01-28

  # A single day
  augmetrics dau --date 2026-01-15`,
	Args:    cobra.NoArgs,
	PreRunE: apiSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDAU(rootCtx, cfg); err != nil {
			exitWithHint("Cannot fetch active user counts", err)
		}
	},
}
