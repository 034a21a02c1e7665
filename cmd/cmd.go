// Package cmd defines the command-line interface for augmetrics.
package cmd

import (
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(dauCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the auth subcommands to the parent auth command
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", contract.DefaultBaseURL, "Augment Analytics API base URL")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("date", "", "Single day to query in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("end-date", "", "Last day of the range in ISO8601 or time ago")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warning or error")
	rootCmd.PersistentFlags().Int("max-retries", contract.DefaultMaxRetries, "Number of retries for retryable HTTP failures")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TableOut), "Output format: table or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-dir", contract.DefaultOutputDir, "Directory for exported report files")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("page-size", 0, "Records requested per page (0 = server default)")
	rootCmd.PersistentFlags().String("retry-backoff", contract.DefaultRetryBackoff, "Base delay between retries in seconds (e.g. 0.5)")
	rootCmd.PersistentFlags().String("start-date", "", "First day of the range in ISO8601 or time ago")
	rootCmd.PersistentFlags().Int("timeout", contract.DefaultTimeoutSecs, "HTTP request timeout in seconds")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().Bool("csv-only", false, "Write only the flat CSV artifact")
	exportCmd.Flags().Bool("daily", false, "Write one report per day instead of one for the whole range")
	exportCmd.Flags().Bool("json-only", false, "Write only the Copilot JSON artifact")
	exportCmd.Flags().Bool("last-28-days", false, "Use the complete 28-day window ending yesterday")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}
}
