package cmd

import (
	"github.com/augmentcode/augmetrics/core"
	"github.com/spf13/cobra"
)

// usageCmd fetches daily usage aggregates.
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show daily edit totals across the organization.",
	Long: `Fetch daily usage aggregates from the Augment Analytics API.

Shows one row per day with the total edits and distinct users recorded,
useful for a quick adoption trend without per-user detail.

Examples:
  # Usage for one day
  augmetrics usage --date 2026-01-15

  # Usage over a range, as CSV
  augmetrics usage --start-date 2026-01-01 --end-date 2026-01-28 --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: apiSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteUsage(rootCtx, cfg); err != nil {
			exitWithHint("Cannot fetch daily usage", err)
		}
	},
}
