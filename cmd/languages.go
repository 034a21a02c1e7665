package cmd

import (
	"github.com/augmentcode/augmetrics/core"
	"github.com/spf13/cobra"
)

// languagesCmd fetches the per-user editor and language breakdown.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Show edits broken down by user, editor and language.",
	Long: `Fetch the per-user editor and language breakdown from the Augment
Analytics API.

Shows one row per user, editor and language combination, helping you:
- See which editors your organization actually codes in
- Compare language mix between teams
- Feed editor adoption dashboards

Examples:
  # Breakdown for one day
  augmetrics languages --date 2026-01-15

  # Breakdown over a range, as parquet
  augmetrics languages --start-date 2026-01-01 --end-date 2026-01-28 \
    --output parquet --output-file languages.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: apiSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLanguages(rootCtx, cfg); err != nil {
			exitWithHint("Cannot fetch editor language breakdown", err)
		}
	},
}
