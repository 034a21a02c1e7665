package outwriter

import (
	"io"

	"github.com/augmentcode/augmetrics/schema"
)

// WriteReportFile writes the Copilot-shaped report as indented JSON at path.
func WriteReportFile(path string, report *schema.Report) error {
	return writeWithFile(path, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote report")
}

// WriteUsageRowsFile writes the flattened rows as CSV with the fixed header
// at path.
func WriteUsageRowsFile(path string, rows []schema.UsageRow) error {
	return writeWithFile(path, func(w io.Writer) error {
		return writeUsageRowsCSV(w, rows)
	}, "Wrote CSV")
}
