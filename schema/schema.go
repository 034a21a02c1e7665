// Package schema has models and shared constants for all parts of augmetrics.
package schema

// UserMetrics holds the activity counters the Analytics API reports for a
// single user. Counters absent from a response decode to zero.
type UserMetrics struct {
	CompletionsCount                  int `json:"completions_count"`
	CompletionsAccepted               int `json:"completions_accepted"`
	CompletionsLinesOfCode            int `json:"completions_lines_of_code"`
	ChatMessages                      int `json:"chat_messages"`
	RemoteAgentMessages               int `json:"remote_agent_messages"`
	IDEAgentMessages                  int `json:"ide_agent_messages"`
	CLIAgentInteractiveMessages       int `json:"cli_agent_interactive_messages"`
	CLIAgentNonInteractiveMessages    int `json:"cli_agent_non_interactive_messages"`
	TotalToolCalls                    int `json:"total_tool_calls"`
	TotalModifiedLinesOfCode          int `json:"total_modified_lines_of_code"`
	RemoteAgentLinesOfCode            int `json:"remote_agent_lines_of_code"`
	IDEAgentLinesOfCode               int `json:"ide_agent_lines_of_code"`
	CLIAgentInteractiveLinesOfCode    int `json:"cli_agent_interactive_lines_of_code"`
	CLIAgentNonInteractiveLinesOfCode int `json:"cli_agent_non_interactive_lines_of_code"`
}

// AgentInteractions sums user-initiated messages across every agent surface.
func (m UserMetrics) AgentInteractions() int {
	return m.RemoteAgentMessages +
		m.IDEAgentMessages +
		m.CLIAgentInteractiveMessages +
		m.CLIAgentNonInteractiveMessages
}

// AgentLinesOfCode sums lines of code written across every agent surface.
func (m UserMetrics) AgentLinesOfCode() int {
	return m.RemoteAgentLinesOfCode +
		m.IDEAgentLinesOfCode +
		m.CLIAgentInteractiveLinesOfCode +
		m.CLIAgentNonInteractiveLinesOfCode
}

// CLIAgentLinesOfCode sums the interactive and non-interactive CLI agent lines.
func (m UserMetrics) CLIAgentLinesOfCode() int {
	return m.CLIAgentInteractiveLinesOfCode + m.CLIAgentNonInteractiveLinesOfCode
}

// UserActivity is one user's record from the user-activity endpoint.
// Human users carry UserEmail; automation carries ServiceAccountName.
type UserActivity struct {
	UserEmail          string      `json:"user_email,omitempty"`
	ServiceAccountName string      `json:"service_account_name,omitempty"`
	ActiveDays         int         `json:"active_days"`
	Metrics            UserMetrics `json:"metrics"`
}

// Identity returns the user email when present, otherwise the service
// account name.
func (u UserActivity) Identity() string {
	if u.UserEmail != "" {
		return u.UserEmail
	}
	return u.ServiceAccountName
}

// DailyUsage is one day's aggregate from the daily-usage endpoint.
type DailyUsage struct {
	Date       string `json:"date"`
	TotalEdits int    `json:"total_edits"`
	TotalUsers int    `json:"total_users"`
}

// ActiveUserCount is one day's distinct active user total from the
// dau-count endpoint.
type ActiveUserCount struct {
	Date      string `json:"date"`
	UserCount int    `json:"user_count"`
}

// EditorLanguageMetrics holds the counters reported per editor and
// language pair.
type EditorLanguageMetrics struct {
	TotalEdits int `json:"total_edits"`
}

// EditorLanguageActivity is one user, editor and language row from the
// by-editor-language endpoint.
type EditorLanguageActivity struct {
	UserEmail string                `json:"user_email"`
	Editor    string                `json:"editor"`
	Language  string                `json:"language"`
	Metrics   EditorLanguageMetrics `json:"metrics"`
}
