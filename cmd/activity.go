package cmd

import (
	"github.com/augmentcode/augmetrics/core"
	"github.com/spf13/cobra"
)

// activityCmd fetches per-user activity records.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show per-user Augment activity for a day or date range.",
	Long: `Fetch per-user activity records from the Augment Analytics API.

Walks every page of the user activity collection and shows one row per user,
helping you:
- See who is actually using completions, chat and agents
- Compare agent adoption across IDE, CLI and remote surfaces
- Spot licensed users with no recorded activity

Rows carry the raw Augment counters plus the mapped Copilot aggregates.

Examples:
  # Activity for one day
  augmetrics activity --date 2026-01-15

  # Activity over a range, as JSON
  augmetrics activity --start-date 2026-01-01 --end-date 2026-01-28 --output json

  # Export rows to CSV for tracking
  augmetrics activity --date 2026-01-15 --output csv --output-file activity.csv`,
	Args:    cobra.NoArgs,
	PreRunE: apiSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg); err != nil {
			exitWithHint("Cannot fetch user activity", err)
		}
	},
}
