package cmd

import (
	"github.com/augmentcode/augmetrics/core"
	"github.com/spf13/cobra"
)

// exportCmd runs the full fetch, transform and write pipeline.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export Copilot-schema JSON and flat CSV reports.",
	Long: `Fetch activity for a date range and write report files to the output
directory.

Produces two artifacts per run:
- copilot_metrics_*.json in the GitHub Copilot metrics schema
- augment_metrics_*.csv with one flat row per user

The JSON report fills total_active_users from the dau-count endpoint when
available and falls back to the number of user records otherwise.

Examples:
  # One report covering the whole range
  augmetrics export --start-date 2026-01-01 --end-date 2026-01-28

  # The standard 28-day window ending yesterday
  augmetrics export --last-28-days

  # One report per day, JSON only
  augmetrics export --last-28-days --daily --json-only

  # Write into a different directory
  augmetrics export --last-28-days --output-dir ./reports`,
	Args:    cobra.NoArgs,
	PreRunE: apiSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			exitWithHint("Cannot export metrics", err)
		}
	},
}
