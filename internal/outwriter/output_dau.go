package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/internal/parquet"
	"github.com/augmentcode/augmetrics/schema"
)

// WriteActiveUserCountResults outputs daily active user counts, dispatching
// based on the output format configured.
func WriteActiveUserCountResults(counts []schema.ActiveUserCount, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, counts)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActiveUserCountsCSV(w, counts)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg, "parquet"); err != nil {
			return err
		}
		if err := parquet.WriteActiveUserCountsParquet(parquet.ConvertActiveUserCounts(counts), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActiveUserCountsTable(counts, w)
		}, "Wrote table")
	}
	return nil
}

func writeActiveUserCountsCSV(w io.Writer, counts []schema.ActiveUserCount) error {
	header := []string{"date", "active_users"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, count := range counts {
			rec := []string{
				count.Date,
				strconv.Itoa(count.UserCount),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeActiveUserCountsTable(counts []schema.ActiveUserCount, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Date", "Active Users"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	peak := 0
	for _, count := range counts {
		if count.UserCount > peak {
			peak = count.UserCount
		}
		data = append(data, []string{
			count.Date,
			strconv.Itoa(count.UserCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d days (peak active users: %d)\n", len(counts), peak); err != nil {
		return err
	}
	return nil
}
