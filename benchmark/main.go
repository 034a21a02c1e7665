// Package main provides a performance benchmarking tool for the augmetrics pipeline.
// It measures transformation and serialization times across different record volumes,
// running each stage multiple times and averaging the results,
// generating CSV output for performance analysis and documentation.
//
// The input is synthetic, so no API credentials are needed.
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated artifacts (defaults to the system temp dir)
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/augmentcode/augmetrics/core"
	"github.com/augmentcode/augmetrics/internal/outwriter"
	"github.com/augmentcode/augmetrics/internal/parquet"
	"github.com/augmentcode/augmetrics/schema"
)

// BenchmarkResult holds the averaged timing of one stage at one volume.
type BenchmarkResult struct {
	Records int
	Stage   string
	AvgTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Runs    int
	Volumes []int
}

func main() {
	workDir := os.TempDir()
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Runs:    5,
		Volumes: []int{1000, 10000, 100000},
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		fmt.Printf("Cannot prepare work dir: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks times every pipeline stage at each configured volume.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: volumes %v, %d runs per stage\n", config.Volumes, config.Runs)

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	transformer := core.NewTransformer(quiet)

	for _, volume := range config.Volumes {
		fmt.Printf("Benchmarking %d records\n", volume)
		records := syntheticRecords(volume)

		report := mustTransform(transformer, records)
		rows := core.FlatRows(records)

		stages := []struct {
			name string
			fn   func() error
		}{
			{"transform", func() error {
				_, err := transformer.Transform(records, "2026-01-15", nil)
				return err
			}},
			{"flatten", func() error {
				_ = core.FlatRows(records)
				return nil
			}},
			{"write-json", func() error {
				return outwriter.WriteReportFile(filepath.Join(config.WorkDir, "bench_report.json"), report)
			}},
			{"write-csv", func() error {
				return outwriter.WriteUsageRowsFile(filepath.Join(config.WorkDir, "bench_rows.csv"), rows)
			}},
			{"write-parquet", func() error {
				return parquet.WriteUsageRowsParquet(parquet.ConvertUsageRows(rows), filepath.Join(config.WorkDir, "bench_rows.parquet"))
			}},
		}

		for _, stage := range stages {
			avg, err := timeStage(config.Runs, stage.fn)
			if err != nil {
				fmt.Printf("  %s failed: %v\n", stage.name, err)
				continue
			}
			fmt.Printf("  %-13s: %s\n", stage.name, avg)
			results = append(results, BenchmarkResult{Records: volume, Stage: stage.name, AvgTime: avg})
		}
	}

	return results
}

// timeStage runs fn repeatedly and returns the formatted average duration.
func timeStage(runs int, fn func() error) (string, error) {
	var total time.Duration
	for run := 0; run < runs; run++ {
		start := time.Now()
		if err := fn(); err != nil {
			return "", err
		}
		total += time.Since(start)
	}
	avg := total / time.Duration(runs)
	return fmt.Sprintf("%.3fs", avg.Seconds()), nil
}

func mustTransform(transformer *core.Transformer, records []schema.UserActivity) *schema.Report {
	report, err := transformer.Transform(records, "2026-01-15", nil)
	if err != nil {
		fmt.Printf("Transform failed: %v\n", err)
		os.Exit(1)
	}
	return report
}

// syntheticRecords builds a deterministic activity set with a mix of
// engaged, idle and agent-heavy users.
func syntheticRecords(n int) []schema.UserActivity {
	records := make([]schema.UserActivity, 0, n)
	for i := 0; i < n; i++ {
		rec := schema.UserActivity{
			UserEmail:  fmt.Sprintf("user%06d@example.com", i),
			ActiveDays: i%28 + 1,
		}
		switch i % 3 {
		case 0:
			rec.Metrics = schema.UserMetrics{
				CompletionsCount:       50 + i%100,
				CompletionsAccepted:    10 + i%20,
				CompletionsLinesOfCode: 200 + i%500,
				ChatMessages:           i % 40,
			}
		case 1:
			rec.Metrics = schema.UserMetrics{
				RemoteAgentMessages:            i % 60,
				IDEAgentMessages:               i % 90,
				CLIAgentInteractiveMessages:    i % 15,
				CLIAgentNonInteractiveMessages: i % 5,
				RemoteAgentLinesOfCode:         i % 4000,
				IDEAgentLinesOfCode:            i % 6000,
				TotalModifiedLinesOfCode:       i % 12000,
			}
		}
		records = append(records, rec)
	}
	return records
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/augmetrics_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"records", "stage", "avg_time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		row := []string{fmt.Sprintf("%d", result.Records), result.Stage, result.AvgTime}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by stage.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, stage := range []string{"transform", "flatten", "write-json", "write-csv", "write-parquet"} {
		fmt.Printf("%s:\n", stage)
		for _, result := range results {
			if result.Stage == stage {
				fmt.Printf("  %8d records: %s\n", result.Records, result.AvgTime)
			}
		}
	}
}
