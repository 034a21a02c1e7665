package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/internal/credentials"
	"github.com/augmentcode/augmetrics/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "augmetrics",
	Short:              "Export Augment usage analytics in GitHub Copilot metrics format.",
	Long:               `Augmetrics pulls per-user activity from the Augment Analytics API and reshapes it into the GitHub Copilot metrics schema for dashboards and reporting.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".augmetrics") // Name of config file (without extension)
		viper.SetConfigType("yaml")        // We'll use YAML format
		viper.AddConfigPath(".")           // Look in the current directory
		viper.AddConfigPath("$HOME")       // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AUGMENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Environment names kept from earlier releases, tried after the
	// AUGMENT_ prefixed form.
	_ = viper.BindEnv("api-token", "AUGMENT_API_TOKEN")
	_ = viper.BindEnv("enterprise-id", "AUGMENT_ENTERPRISE_ID", "ENTERPRISE_ID")
	_ = viper.BindEnv("base-url", "AUGMENT_BASE_URL", "ANALYTICS_API_BASE_URL")
	_ = viper.BindEnv("output-dir", "AUGMENT_OUTPUT_DIR", "OUTPUT_DIR")
	_ = viper.BindEnv("log-level", "AUGMENT_LOG_LEVEL", "LOG_LEVEL")
	_ = viper.BindEnv("timeout", "AUGMENT_TIMEOUT", "REQUEST_TIMEOUT_SECONDS")
	_ = viper.BindEnv("max-retries", "AUGMENT_MAX_RETRIES", "MAX_RETRIES")
	_ = viper.BindEnv("retry-backoff", "AUGMENT_RETRY_BACKOFF", "RETRY_BACKOFF_SECONDS")

	// Set defaults in Viper
	viper.SetDefault("base-url", contract.DefaultBaseURL)
	viper.SetDefault("output-dir", contract.DefaultOutputDir)
	viper.SetDefault("timeout", contract.DefaultTimeoutSecs)
	viper.SetDefault("max-retries", contract.DefaultMaxRetries)
	viper.SetDefault("retry-backoff", contract.DefaultRetryBackoff)
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("output", schema.TableOut)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Fall back to stored credentials when the environment has none.
	if input.APIToken == "" || input.EnterpriseID == "" {
		if creds, err := credentials.NewStore().Load(); err == nil && creds != nil {
			if input.APIToken == "" {
				input.APIToken = creds.APIToken
			}
			if input.EnterpriseID == "" {
				input.EnterpriseID = creds.EnterpriseID
			}
		}
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input, time.Now()); err != nil {
		return err
	}

	// 5. Configure the default logger now that the level is known.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	return nil
}

// apiSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE,
// adding the credential check that every API-backed command needs.
func apiSetupWrapper(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	return cfg.RequireCredentials()
}

// exitWithHint prints a remediation hint for known error classes before
// exiting through LogFatal.
func exitWithHint(msg string, err error) {
	var authErr *augment.AuthenticationError
	var rateErr *augment.RateLimitError
	var paramErr *contract.InvalidParameterError
	switch {
	case errors.As(err, &authErr):
		_, _ = fmt.Fprintln(os.Stderr, "Hint: check your API token and enterprise ID, or run 'augmetrics auth login'.")
	case errors.As(err, &rateErr):
		_, _ = fmt.Fprintln(os.Stderr, "Hint: the analytics API is rate limiting requests. Try again later.")
	case errors.As(err, &paramErr):
		_, _ = fmt.Fprintln(os.Stderr, "Hint: run with --help to see the accepted date flags.")
	}
	contract.LogFatal(msg, err)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
