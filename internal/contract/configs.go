package contract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/augmentcode/augmetrics/schema"
)

// Default values for configuration.
const (
	DefaultBaseURL      = "https://api.augmentcode.com"
	DefaultOutputDir    = "./data"
	DefaultTimeoutSecs  = 30
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = "0.5"
	DefaultLogLevel     = "info"
	DefaultWindowDays   = 28
)

// Bounds for HTTP settings.
const (
	MaxTimeoutSecs = 300
	MaxRetries     = 10
	MinBackoff     = 100 * time.Millisecond
	MaxBackoff     = 10 * time.Second
)

// logLevels maps accepted log level names to slog levels.
var logLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Config holds the runtime configuration for the exporter.
// This struct remains the "final, validated" config.
type Config struct {
	APIToken     string
	EnterpriseID string
	BaseURL      string
	OutputDir    string

	Timeout      time.Duration
	MaxRetries   int
	RetryBackoff time.Duration
	PageSize     int

	Date      string
	StartDate string
	EndDate   string

	Daily    bool
	CSVOnly  bool
	JSONOnly bool

	Output     schema.OutputMode
	OutputFile string
	LogLevel   slog.Level
	Verbose    bool
	UseColors  bool
	Width      int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() and the environment ---
	APIToken     string `mapstructure:"api-token"`
	EnterpriseID string `mapstructure:"enterprise-id"`
	BaseURL      string `mapstructure:"base-url"`
	OutputDir    string `mapstructure:"output-dir"`
	Timeout      int    `mapstructure:"timeout"`
	MaxRetries   int    `mapstructure:"max-retries"`
	RetryBackoff string `mapstructure:"retry-backoff"`
	PageSize     int    `mapstructure:"page-size"`
	LogLevel     string `mapstructure:"log-level"`
	Verbose      bool   `mapstructure:"verbose"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Color        string `mapstructure:"color"`
	Width        int    `mapstructure:"width"`

	// --- Window flags shared by the fetch and export commands ---
	Date       string `mapstructure:"date"`
	StartDate  string `mapstructure:"start-date"`
	EndDate    string `mapstructure:"end-date"`
	Last28Days bool   `mapstructure:"last-28-days"`

	// --- Fields from exportCmd.Flags() ---
	Daily    bool `mapstructure:"daily"`
	CSVOnly  bool `mapstructure:"csv-only"`
	JSONOnly bool `mapstructure:"json-only"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Window returns the configured reporting window as a DateQuery.
func (c *Config) Window() DateQuery {
	return DateQuery{Date: c.Date, StartDate: c.StartDate, EndDate: c.EndDate}
}

// RangeSet reports whether a full start and end range is configured.
func (c *Config) RangeSet() bool {
	return c.StartDate != "" && c.EndDate != ""
}

// RequireCredentials checks that an API token and enterprise ID are present.
func (c *Config) RequireCredentials() error {
	if c.APIToken == "" {
		return fmt.Errorf("API token is required: set AUGMENT_API_TOKEN or run 'augmetrics auth login'")
	}
	if c.EnterpriseID == "" {
		return fmt.Errorf("enterprise ID is required: set ENTERPRISE_ID or run 'augmetrics auth login'")
	}
	return nil
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct. The reference time anchors relative
// windows such as --last-28-days.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput, now time.Time) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCredentials(cfg, input); err != nil {
		return err
	}
	if err := processHTTPSettings(cfg, input); err != nil {
		return err
	}
	if err := processDateWindow(cfg, input, now); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-window related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Verbose = input.Verbose
	cfg.Width = input.Width
	cfg.Daily = input.Daily

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Output Format Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be table, csv, json, parquet", input.Output)
	}

	// --- 2. Artifact Selection Validation ---
	if input.CSVOnly && input.JSONOnly {
		return fmt.Errorf("cannot use --csv-only and --json-only together")
	}
	cfg.CSVOnly = input.CSVOnly
	cfg.JSONOnly = input.JSONOnly

	// --- 3. Log Level Validation ---
	level, ok := logLevels[strings.ToLower(input.LogLevel)]
	if !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warning, error", input.LogLevel)
	}
	cfg.LogLevel = level
	if cfg.Verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	return nil
}

// processCredentials normalizes the token, enterprise ID and base URL.
// Presence is enforced separately by RequireCredentials so commands that
// never touch the API still work without a token.
func processCredentials(cfg *Config, input *ConfigRawInput) error {
	cfg.APIToken = strings.TrimSpace(input.APIToken)
	cfg.EnterpriseID = strings.TrimSpace(input.EnterpriseID)

	cfg.BaseURL = strings.TrimSpace(input.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return nil
}

// processHTTPSettings validates the timeout, retry and page size knobs.
func processHTTPSettings(cfg *Config, input *ConfigRawInput) error {
	if input.Timeout < 1 || input.Timeout > MaxTimeoutSecs {
		return fmt.Errorf("timeout must be between 1 and %d seconds (received %d)", MaxTimeoutSecs, input.Timeout)
	}
	cfg.Timeout = time.Duration(input.Timeout) * time.Second

	if input.MaxRetries < 0 || input.MaxRetries > MaxRetries {
		return fmt.Errorf("max retries must be between 0 and %d (received %d)", MaxRetries, input.MaxRetries)
	}
	cfg.MaxRetries = input.MaxRetries

	backoff, err := ParseBackoffDuration(input.RetryBackoff)
	if err != nil {
		return err
	}
	if backoff < MinBackoff || backoff > MaxBackoff {
		return fmt.Errorf("retry backoff must be between %s and %s (received %s)", MinBackoff, MaxBackoff, backoff)
	}
	cfg.RetryBackoff = backoff

	if input.PageSize < 0 {
		return fmt.Errorf("page size must be positive (received %d)", input.PageSize)
	}
	cfg.PageSize = input.PageSize

	return nil
}

// processDateWindow resolves the reporting window flags into concrete dates.
func processDateWindow(cfg *Config, input *ConfigRawInput, now time.Time) error {
	if input.Last28Days {
		if input.Date != "" || input.StartDate != "" || input.EndDate != "" {
			return fmt.Errorf("cannot combine --last-28-days with explicit dates")
		}
		// The window ends yesterday so every reported day is complete.
		yesterday := now.AddDate(0, 0, -1)
		cfg.StartDate = schema.FormatDate(yesterday.AddDate(0, 0, -(DefaultWindowDays - 1)))
		cfg.EndDate = schema.FormatDate(yesterday)
		return nil
	}

	resolve := func(flag, s string) (string, error) {
		if s == "" {
			return "", nil
		}
		if err := schema.ValidateDate(s); err == nil {
			return s, nil
		}
		t, relErr := ParseRelativeTime(s, now)
		if relErr != nil {
			return "", fmt.Errorf("invalid %s '%s'. Expected YYYY-MM-DD or 'N [units] ago'", flag, s)
		}
		return schema.FormatDate(t), nil
	}

	var err error
	if cfg.Date, err = resolve("--date", input.Date); err != nil {
		return err
	}
	if cfg.StartDate, err = resolve("--start-date", input.StartDate); err != nil {
		return err
	}
	if cfg.EndDate, err = resolve("--end-date", input.EndDate); err != nil {
		return err
	}

	if err := cfg.Window().Validate(); err != nil {
		return err
	}

	// --- Final Validation ---
	if cfg.RangeSet() && cfg.StartDate > cfg.EndDate {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)", cfg.StartDate, cfg.EndDate)
	}

	return nil
}
