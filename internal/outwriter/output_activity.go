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

// WriteUserActivityResults outputs per-user activity, dispatching based on the
// output format configured. JSON carries the raw records as fetched; the
// tabular formats use the flattened rows.
func WriteUserActivityResults(records []schema.UserActivity, rows []schema.UsageRow, cfg *contract.Config) error {
	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeUsageRowsCSV(w, rows)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg, "parquet"); err != nil {
			return err
		}
		if err := parquet.WriteUsageRowsParquet(parquet.ConvertUsageRows(rows), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeActivityTable(rows, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeUsageRowsCSV writes the full flattened row set with its fixed header.
func writeUsageRowsCSV(w io.Writer, rows []schema.UsageRow) error {
	return writeCSVWithHeader(w, schema.UsageRowHeader, func(cw *csv.Writer) error {
		for _, row := range rows {
			if err := cw.Write(row.Strings()); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeActivityTable generates and writes the human-readable table. It shows
// a condensed column set; the CSV form carries every counter.
func writeActivityTable(rows []schema.UsageRow, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"#", "User", "Days", "Completions", "Accepted", "Chat", "Agent Msgs", "Agent LOC", "Total LOC", "Engagement"})

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxWidth := getMaxIdentityWidth(cfg)
	var data [][]string
	engaged := 0
	for i, row := range rows {
		if row.Engaged() {
			engaged++
		}
		agentLOC := row.RemoteAgentLOC + row.IDEAgentLOC + row.CLIAgentLOC
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateIdentity(row.User, maxWidth),
			strconv.Itoa(row.ActiveDays),
			strconv.Itoa(row.Completions),
			strconv.Itoa(row.AcceptedCompletions),
			strconv.Itoa(row.ChatMessages),
			strconv.Itoa(row.CopilotAgentInteractions),
			strconv.Itoa(agentLOC),
			strconv.Itoa(row.TotalModifiedLOC),
			engagementLabel(row.Engaged(), cfg),
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d users (%d engaged)\n", len(rows), engaged); err != nil {
		return err
	}
	return nil
}
