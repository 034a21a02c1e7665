// Package core has core logic for fetching, transforming and exporting
// Augment analytics.
package core

import (
	"fmt"
	"log/slog"

	"github.com/augmentcode/augmetrics/schema"
)

// TransformationError indicates that a report could not be built from the
// fetched records. Missing counters never cause it; only a malformed report
// date does.
type TransformationError struct {
	Msg string
	Err error
}

func (e *TransformationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *TransformationError) Unwrap() error { return e.Err }

// Transformer maps Augment activity records into Copilot-shaped reports.
// It holds no state beyond its logger and is safe to reuse across calls.
type Transformer struct {
	log *slog.Logger
}

// NewTransformer returns a transformer logging integrity warnings to log.
func NewTransformer(log *slog.Logger) *Transformer {
	if log == nil {
		log = slog.Default()
	}
	return &Transformer{log: log}
}

// Transform builds one report for date from the given records. dauCount,
// when non-nil, overrides the active user total; otherwise the record count
// stands in for it. Anomalous inputs are clamped or logged, never rejected.
func (t *Transformer) Transform(records []schema.UserActivity, date string, dauCount *int) (*schema.Report, error) {
	if err := schema.ValidateDate(date); err != nil {
		return nil, &TransformationError{Msg: "cannot build report", Err: err}
	}

	report := schema.NewReport(date)
	var engaged, completionsEngaged, chatEngaged int

	for _, rec := range records {
		entry := breakdownEntry(rec)

		if entry.CodeAcceptanceActivityCount > entry.CodeGenerationActivityCount {
			t.log.Warn("acceptance count exceeds generation count",
				"user", entry.UserEmail,
				"accepted", entry.CodeAcceptanceActivityCount,
				"generated", entry.CodeGenerationActivityCount)
		}

		if entry.Engaged() {
			engaged++
		}
		if entry.CodeGenerationActivityCount > 0 {
			completionsEngaged++
		}
		if entry.ChatPanel.UserInitiatedInteractionCount > 0 {
			chatEngaged++
		}

		report.Breakdown = append(report.Breakdown, entry)
	}

	report.TotalEngagedUsers = engaged
	report.IDECodeCompletions.TotalEngagedUsers = completionsEngaged
	report.IDEChat.TotalEngagedUsers = chatEngaged

	active := len(records)
	if dauCount != nil {
		active = *dauCount
	}
	if active < engaged {
		t.log.Warn("active user count below engaged count, clamping",
			"active", active, "engaged", engaged)
		active = engaged
	}
	report.TotalActiveUsers = active

	return report, nil
}

// breakdownEntry maps one activity record onto the Copilot breakdown shape.
func breakdownEntry(rec schema.UserActivity) schema.UserBreakdown {
	return schema.UserBreakdown{
		UserEmail:                   rec.Identity(),
		ActiveDays:                  rec.ActiveDays,
		CodeGenerationActivityCount: rec.Metrics.CompletionsCount,
		CodeAcceptanceActivityCount: rec.Metrics.CompletionsAccepted,
		LOCAddedSum:                 rec.Metrics.TotalModifiedLinesOfCode,
		ChatPanel: schema.ChatPanelActivity{
			UserInitiatedInteractionCount: rec.Metrics.ChatMessages,
		},
		AgentEdit: schema.AgentEditActivity{
			UserInitiatedInteractionCount: rec.Metrics.AgentInteractions(),
			LOCAddedSum:                   rec.Metrics.AgentLinesOfCode(),
		},
		CodeCompletions: schema.CodeCompletionsActivity{
			LOCAddedSum: rec.Metrics.CompletionsLinesOfCode,
		},
	}
}

// FlatRow maps one activity record onto the flat export row, combining raw
// per-channel counters with the same Copilot aggregates Transform computes.
func FlatRow(rec schema.UserActivity) schema.UsageRow {
	m := rec.Metrics
	return schema.UsageRow{
		User:                      rec.Identity(),
		ActiveDays:                rec.ActiveDays,
		Completions:               m.CompletionsCount,
		AcceptedCompletions:       m.CompletionsAccepted,
		ChatMessages:              m.ChatMessages,
		RemoteAgentMessages:       m.RemoteAgentMessages,
		IDEAgentMessages:          m.IDEAgentMessages,
		CLIInteractiveMessages:    m.CLIAgentInteractiveMessages,
		CLINonInteractiveMessages: m.CLIAgentNonInteractiveMessages,
		TotalToolCalls:            m.TotalToolCalls,
		TotalModifiedLOC:          m.TotalModifiedLinesOfCode,
		CompletionLOC:             m.CompletionsLinesOfCode,
		RemoteAgentLOC:            m.RemoteAgentLinesOfCode,
		IDEAgentLOC:               m.IDEAgentLinesOfCode,
		CLIAgentLOC:               m.CLIAgentLinesOfCode(),
		CopilotCodeGeneration:     m.CompletionsCount,
		CopilotCodeAcceptance:     m.CompletionsAccepted,
		CopilotChatInteractions:   m.ChatMessages,
		CopilotAgentInteractions:  m.AgentInteractions(),
	}
}

// FlatRows maps every record through FlatRow, preserving order.
func FlatRows(records []schema.UserActivity) []schema.UsageRow {
	rows := make([]schema.UsageRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, FlatRow(rec))
	}
	return rows
}
