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

// WriteEditorLanguageResults outputs the per-user editor and language
// breakdown, dispatching based on the output format configured.
func WriteEditorLanguageResults(rows []schema.EditorLanguageActivity, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEditorLanguagesCSV(w, rows)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := requireOutputFile(cfg, "parquet"); err != nil {
			return err
		}
		if err := parquet.WriteEditorLanguagesParquet(parquet.ConvertEditorLanguages(rows), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEditorLanguagesTable(rows, cfg, w)
		}, "Wrote table")
	}
	return nil
}

func writeEditorLanguagesCSV(w io.Writer, rows []schema.EditorLanguageActivity) error {
	header := []string{"user", "editor", "language", "total_edits"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range rows {
			rec := []string{
				row.UserEmail,
				row.Editor,
				row.Language,
				strconv.Itoa(row.Metrics.TotalEdits),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeEditorLanguagesTable(rows []schema.EditorLanguageActivity, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"User", "Editor", "Language", "Total Edits"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxIdentityWidth(cfg)
	var data [][]string
	for _, row := range rows {
		data = append(data, []string{
			contract.TruncateIdentity(row.UserEmail, maxWidth),
			row.Editor,
			row.Language,
			strconv.Itoa(row.Metrics.TotalEdits),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing %d editor/language rows\n", len(rows)); err != nil {
		return err
	}
	return nil
}
