// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteUserActivity prints user activity using the configured output format.
// rows carries the flattened form of records for the tabular formats.
func (ow *OutWriter) WriteUserActivity(records []schema.UserActivity, rows []schema.UsageRow, cfg *contract.Config) error {
	return WriteUserActivityResults(records, rows, cfg)
}

// WriteDailyUsage prints daily usage aggregates using the configured output format.
func (ow *OutWriter) WriteDailyUsage(usage []schema.DailyUsage, cfg *contract.Config) error {
	return WriteDailyUsageResults(usage, cfg)
}

// WriteActiveUserCounts prints daily active user counts using the configured output format.
func (ow *OutWriter) WriteActiveUserCounts(counts []schema.ActiveUserCount, cfg *contract.Config) error {
	return WriteActiveUserCountResults(counts, cfg)
}

// WriteEditorLanguages prints the editor and language breakdown using the configured output format.
func (ow *OutWriter) WriteEditorLanguages(rows []schema.EditorLanguageActivity, cfg *contract.Config) error {
	return WriteEditorLanguageResults(rows, cfg)
}
