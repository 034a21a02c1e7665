package core

import (
	"context"
	"log/slog"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing the different
// fetch and export commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteActivity fetches per-user activity and writes it in the configured
// output format. It serves as the main entry point for the 'activity' command.
func ExecuteActivity(ctx context.Context, cfg *contract.Config) error {
	client := augment.NewClient(cfg, slog.Default())
	return runActivity(ctx, cfg, client)
}

func runActivity(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	records, err := client.FetchUserActivity(ctx, cfg.Window())
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteUserActivity(records, FlatRows(records), cfg)
}

// ExecuteUsage fetches daily usage aggregates and writes them in the
// configured output format. It serves as the main entry point for the
// 'usage' command.
func ExecuteUsage(ctx context.Context, cfg *contract.Config) error {
	client := augment.NewClient(cfg, slog.Default())
	return runUsage(ctx, cfg, client)
}

func runUsage(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	usage, err := client.FetchDailyUsage(ctx, cfg.Window())
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteDailyUsage(usage, cfg)
}

// ExecuteDAU fetches daily active user counts and writes them in the
// configured output format. It serves as the main entry point for the
// 'dau' command.
func ExecuteDAU(ctx context.Context, cfg *contract.Config) error {
	client := augment.NewClient(cfg, slog.Default())
	return runDAU(ctx, cfg, client)
}

func runDAU(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	// The dau-count endpoint only accepts a range, so a single --date
	// queries that one day.
	start, end := cfg.StartDate, cfg.EndDate
	if cfg.Date != "" {
		start, end = cfg.Date, cfg.Date
	}

	counts, err := client.FetchActiveUserCounts(ctx, start, end)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteActiveUserCounts(counts, cfg)
}

// ExecuteLanguages fetches the per-user editor and language breakdown and
// writes it in the configured output format. It serves as the main entry
// point for the 'languages' command.
func ExecuteLanguages(ctx context.Context, cfg *contract.Config) error {
	client := augment.NewClient(cfg, slog.Default())
	return runLanguages(ctx, cfg, client)
}

func runLanguages(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) error {
	rows, err := client.FetchEditorLanguageActivity(ctx, cfg.Window())
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteEditorLanguages(rows, cfg)
}
