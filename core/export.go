package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/internal/outwriter"
)

// ExportResult summarizes what an export run produced.
type ExportResult struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Users     int      `json:"users"`
	Files     []string `json:"files"`
}

// ExecuteExport runs the full fetch, transform and write pipeline over the
// configured date range. It serves as the main entry point for the 'export'
// command.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	client := augment.NewClient(cfg, slog.Default())
	result, err := RunExport(ctx, cfg, client)
	if err != nil {
		return err
	}
	printExportSummary(result)
	return nil
}

// RunExport fetches, transforms and writes reports over the configured date
// range using the given client. This is exposed for the MCP server.
func RunExport(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (*ExportResult, error) {
	if !cfg.RangeSet() {
		return nil, &contract.InvalidParameterError{
			Reason: "export requires --start-date and --end-date or --last-28-days",
		}
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	if cfg.Daily {
		return runDailyExport(ctx, cfg, client)
	}
	return runRangeExport(ctx, cfg, client)
}

// runRangeExport produces one report covering the whole range, dated by its
// first day.
func runRangeExport(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (*ExportResult, error) {
	records, err := client.FetchUserActivity(ctx, contract.DateRange(cfg.StartDate, cfg.EndDate))
	if err != nil {
		return nil, err
	}

	dauCount := fetchDAUOverride(ctx, cfg, client)

	transformer := NewTransformer(slog.Default())
	report, err := transformer.Transform(records, cfg.StartDate, dauCount)
	if err != nil {
		return nil, err
	}
	rows := FlatRows(records)

	result := &ExportResult{
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
		Users:     len(records),
	}

	if !cfg.CSVOnly {
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("copilot_metrics_%s_to_%s.json", cfg.StartDate, cfg.EndDate))
		if err := outwriter.WriteReportFile(path, report); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}
	if !cfg.JSONOnly {
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("augment_metrics_%s_to_%s.csv", cfg.StartDate, cfg.EndDate))
		if err := outwriter.WriteUsageRowsFile(path, rows); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}
	return result, nil
}

// runDailyExport produces one report per day in the range, matching each day
// against its own active user count.
func runDailyExport(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) (*ExportResult, error) {
	dates, err := contract.DatesBetween(cfg.StartDate, cfg.EndDate)
	if err != nil {
		return nil, err
	}

	dauByDate := make(map[string]int)
	counts, err := client.FetchActiveUserCounts(ctx, cfg.StartDate, cfg.EndDate)
	if err != nil {
		slog.Warn("cannot fetch active user counts, using record counts", "error", err)
	} else {
		for _, count := range counts {
			dauByDate[count.Date] = count.UserCount
		}
	}

	transformer := NewTransformer(slog.Default())
	result := &ExportResult{
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
	}

	for _, date := range dates {
		records, err := client.FetchUserActivity(ctx, contract.SingleDay(date))
		if err != nil {
			return nil, err
		}
		result.Users += len(records)

		var override *int
		if n, ok := dauByDate[date]; ok {
			override = &n
		}
		report, err := transformer.Transform(records, date, override)
		if err != nil {
			return nil, err
		}

		if !cfg.CSVOnly {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("copilot_metrics_%s.json", date))
			if err := outwriter.WriteReportFile(path, report); err != nil {
				return nil, err
			}
			result.Files = append(result.Files, path)
		}
		if !cfg.JSONOnly {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("augment_metrics_%s.csv", date))
			if err := outwriter.WriteUsageRowsFile(path, FlatRows(records)); err != nil {
				return nil, err
			}
			result.Files = append(result.Files, path)
		}
	}
	return result, nil
}

// fetchDAUOverride returns the range's first daily active user count, or nil
// when the endpoint has nothing usable. Export proceeds either way.
func fetchDAUOverride(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient) *int {
	counts, err := client.FetchActiveUserCounts(ctx, cfg.StartDate, cfg.EndDate)
	if err != nil {
		slog.Warn("cannot fetch active user counts, using record count", "error", err)
		return nil
	}
	if len(counts) == 0 {
		return nil
	}
	count := counts[0].UserCount
	return &count
}

func printExportSummary(result *ExportResult) {
	fmt.Printf("✅ Export complete for %s to %s (%d user records)\n", result.StartDate, result.EndDate, result.Users)
	for _, file := range result.Files {
		fmt.Printf("   %s\n", file)
	}
}
