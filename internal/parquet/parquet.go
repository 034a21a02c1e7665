// Package parquet provides data structures and functions for exporting
// Augment analytics data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/augmentcode/augmetrics/schema"
	"github.com/parquet-go/parquet-go"
)

// UsageRow represents one user's flattened activity row. The copilot_*
// columns carry the mapped aggregates; the rest pass through the raw
// Augment counters.
type UsageRow struct {
	User                      string `parquet:"user,snappy"`
	ActiveDays                int32  `parquet:"active_days,snappy"`
	Completions               int32  `parquet:"completions,snappy"`
	AcceptedCompletions       int32  `parquet:"accepted_completions,snappy"`
	ChatMessages              int32  `parquet:"chat_messages,snappy"`
	RemoteAgentMessages       int32  `parquet:"remote_agent_messages,snappy"`
	IDEAgentMessages          int32  `parquet:"ide_agent_messages,snappy"`
	CLIInteractiveMessages    int32  `parquet:"cli_interactive_messages,snappy"`
	CLINonInteractiveMessages int32  `parquet:"cli_non_interactive_messages,snappy"`
	TotalToolCalls            int32  `parquet:"total_tool_calls,snappy"`
	TotalModifiedLOC          int32  `parquet:"total_modified_loc,snappy"`
	CompletionLOC             int32  `parquet:"completion_loc,snappy"`
	RemoteAgentLOC            int32  `parquet:"remote_agent_loc,snappy"`
	IDEAgentLOC               int32  `parquet:"ide_agent_loc,snappy"`

	// CLIAgentLOC folds interactive and non-interactive CLI lines together.
	CLIAgentLOC int32 `parquet:"cli_agent_loc,snappy"`

	CopilotCodeGeneration    int32 `parquet:"copilot_code_generation,snappy"`
	CopilotCodeAcceptance    int32 `parquet:"copilot_code_acceptance,snappy"`
	CopilotChatInteractions  int32 `parquet:"copilot_chat_interactions,snappy"`
	CopilotAgentInteractions int32 `parquet:"copilot_agent_interactions,snappy"`
}

// DailyUsage represents one day's aggregate edit volume.
type DailyUsage struct {
	// Date is the reporting day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// TotalEdits is the number of edits across all users that day
	TotalEdits int32 `parquet:"total_edits,snappy"`

	// TotalUsers is the number of users producing those edits
	TotalUsers int32 `parquet:"total_users,snappy"`
}

// ActiveUserCount represents one day's distinct active user total.
type ActiveUserCount struct {
	// Date is the reporting day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// UserCount is the number of distinct active users that day
	UserCount int32 `parquet:"user_count,snappy"`
}

// EditorLanguage represents one user, editor and language row.
type EditorLanguage struct {
	// UserEmail identifies the user for this row
	UserEmail string `parquet:"user_email,snappy"`

	// Editor is the editor surface, e.g. vscode or jetbrains
	Editor string `parquet:"editor,snappy"`

	// Language is the language being edited
	Language string `parquet:"language,snappy"`

	// TotalEdits is the edit count for this user, editor and language
	TotalEdits int32 `parquet:"total_edits,snappy"`
}

// WriteUsageRowsParquet writes a slice of UsageRow structs to a Parquet file.
func WriteUsageRowsParquet(data []UsageRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the UsageRow struct tags
	writer := parquet.NewGenericWriter[UsageRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDailyUsageParquet writes a slice of DailyUsage structs to a Parquet file.
func WriteDailyUsageParquet(data []DailyUsage, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[DailyUsage](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteActiveUserCountsParquet writes a slice of ActiveUserCount structs to a Parquet file.
func WriteActiveUserCountsParquet(data []ActiveUserCount, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ActiveUserCount](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteEditorLanguagesParquet writes a slice of EditorLanguage structs to a Parquet file.
func WriteEditorLanguagesParquet(data []EditorLanguage, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[EditorLanguage](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertUsageRows converts schema.UsageRow to UsageRow for Parquet export.
func ConvertUsageRows(rows []schema.UsageRow) []UsageRow {
	result := make([]UsageRow, len(rows))
	for i, row := range rows {
		result[i] = UsageRow{
			User:                      row.User,
			ActiveDays:                int32(row.ActiveDays),
			Completions:               int32(row.Completions),
			AcceptedCompletions:       int32(row.AcceptedCompletions),
			ChatMessages:              int32(row.ChatMessages),
			RemoteAgentMessages:       int32(row.RemoteAgentMessages),
			IDEAgentMessages:          int32(row.IDEAgentMessages),
			CLIInteractiveMessages:    int32(row.CLIInteractiveMessages),
			CLINonInteractiveMessages: int32(row.CLINonInteractiveMessages),
			TotalToolCalls:            int32(row.TotalToolCalls),
			TotalModifiedLOC:          int32(row.TotalModifiedLOC),
			CompletionLOC:             int32(row.CompletionLOC),
			RemoteAgentLOC:            int32(row.RemoteAgentLOC),
			IDEAgentLOC:               int32(row.IDEAgentLOC),
			CLIAgentLOC:               int32(row.CLIAgentLOC),
			CopilotCodeGeneration:     int32(row.CopilotCodeGeneration),
			CopilotCodeAcceptance:     int32(row.CopilotCodeAcceptance),
			CopilotChatInteractions:   int32(row.CopilotChatInteractions),
			CopilotAgentInteractions:  int32(row.CopilotAgentInteractions),
		}
	}
	return result
}

// ConvertDailyUsage converts schema.DailyUsage to DailyUsage for Parquet export.
func ConvertDailyUsage(usage []schema.DailyUsage) []DailyUsage {
	result := make([]DailyUsage, len(usage))
	for i, day := range usage {
		result[i] = DailyUsage{
			Date:       day.Date,
			TotalEdits: int32(day.TotalEdits),
			TotalUsers: int32(day.TotalUsers),
		}
	}
	return result
}

// ConvertActiveUserCounts converts schema.ActiveUserCount to ActiveUserCount for Parquet export.
func ConvertActiveUserCounts(counts []schema.ActiveUserCount) []ActiveUserCount {
	result := make([]ActiveUserCount, len(counts))
	for i, count := range counts {
		result[i] = ActiveUserCount{
			Date:      count.Date,
			UserCount: int32(count.UserCount),
		}
	}
	return result
}

// ConvertEditorLanguages converts schema.EditorLanguageActivity to EditorLanguage for Parquet export.
func ConvertEditorLanguages(rows []schema.EditorLanguageActivity) []EditorLanguage {
	result := make([]EditorLanguage, len(rows))
	for i, row := range rows {
		result[i] = EditorLanguage{
			UserEmail:  row.UserEmail,
			Editor:     row.Editor,
			Language:   row.Language,
			TotalEdits: int32(row.Metrics.TotalEdits),
		}
	}
	return result
}
