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

// WriteDailyUsageResults outputs daily usage aggregates, dispatching based on
// the output format configured.
func WriteDailyUsageResults(usage []schema.DailyUsage, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, usage)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDailyUsageCSV(w, usage)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg, "parquet"); err != nil {
			return err
		}
		if err := parquet.WriteDailyUsageParquet(parquet.ConvertDailyUsage(usage), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDailyUsageTable(usage, w)
		}, "Wrote table")
	}
	return nil
}

func writeDailyUsageCSV(w io.Writer, usage []schema.DailyUsage) error {
	header := []string{"date", "total_edits", "total_users"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, day := range usage {
			rec := []string{
				day.Date,
				strconv.Itoa(day.TotalEdits),
				strconv.Itoa(day.TotalUsers),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeDailyUsageTable(usage []schema.DailyUsage, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Date", "Total Edits", "Total Users"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	totalEdits := 0
	for _, day := range usage {
		totalEdits += day.TotalEdits
		data = append(data, []string{
			day.Date,
			strconv.Itoa(day.TotalEdits),
			strconv.Itoa(day.TotalUsers),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d days (total edits: %d)\n", len(usage), totalEdits); err != nil {
		return err
	}
	return nil
}
