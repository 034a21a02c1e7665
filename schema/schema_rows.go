package schema

import "strconv"

// UsageRow is one user's flattened export row combining the raw Augment
// counters with the mapped Copilot aggregates. Field order matches
// UsageRowHeader.
type UsageRow struct {
	User                      string
	ActiveDays                int
	Completions               int
	AcceptedCompletions       int
	ChatMessages              int
	RemoteAgentMessages       int
	IDEAgentMessages          int
	CLIInteractiveMessages    int
	CLINonInteractiveMessages int
	TotalToolCalls            int
	TotalModifiedLOC          int
	CompletionLOC             int
	RemoteAgentLOC            int
	IDEAgentLOC               int
	CLIAgentLOC               int
	CopilotCodeGeneration     int
	CopilotCodeAcceptance     int
	CopilotChatInteractions   int
	CopilotAgentInteractions  int
}

// UsageRowHeader lists the export column names in order.
var UsageRowHeader = []string{
	"User",
	"Active Days",
	"Completions",
	"Accepted Completions",
	"Chat Messages",
	"Remote Agent Messages",
	"IDE Agent Messages",
	"CLI Interactive Messages",
	"CLI Non-Interactive Messages",
	"Total Tool Calls",
	"Total Modified LOC",
	"Completion LOC",
	"Remote Agent LOC",
	"IDE Agent LOC",
	"CLI Agent LOC",
	"Copilot Code Generation",
	"Copilot Code Acceptance",
	"Copilot Chat Interactions",
	"Copilot Agent Interactions",
}

// Engaged reports whether the row shows any qualifying activity, using the
// same rule as UserBreakdown.Engaged.
func (r UsageRow) Engaged() bool {
	return r.CopilotCodeGeneration > 0 ||
		r.CopilotChatInteractions > 0 ||
		r.CopilotAgentInteractions > 0
}

// Strings renders the row's values in header order.
func (r UsageRow) Strings() []string {
	return []string{
		r.User,
		strconv.Itoa(r.ActiveDays),
		strconv.Itoa(r.Completions),
		strconv.Itoa(r.AcceptedCompletions),
		strconv.Itoa(r.ChatMessages),
		strconv.Itoa(r.RemoteAgentMessages),
		strconv.Itoa(r.IDEAgentMessages),
		strconv.Itoa(r.CLIInteractiveMessages),
		strconv.Itoa(r.CLINonInteractiveMessages),
		strconv.Itoa(r.TotalToolCalls),
		strconv.Itoa(r.TotalModifiedLOC),
		strconv.Itoa(r.CompletionLOC),
		strconv.Itoa(r.RemoteAgentLOC),
		strconv.Itoa(r.IDEAgentLOC),
		strconv.Itoa(r.CLIAgentLOC),
		strconv.Itoa(r.CopilotCodeGeneration),
		strconv.Itoa(r.CopilotCodeAcceptance),
		strconv.Itoa(r.CopilotChatInteractions),
		strconv.Itoa(r.CopilotAgentInteractions),
	}
}
