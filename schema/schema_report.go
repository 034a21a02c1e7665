package schema

// Report is one reporting window's metrics in the GitHub Copilot Metrics
// API shape. The copilot_* sections always marshal with empty slices rather
// than null so Copilot-compatible dashboards accept the payload as-is.
type Report struct {
	Date               string              `json:"date"`
	TotalActiveUsers   int                 `json:"total_active_users"`
	TotalEngagedUsers  int                 `json:"total_engaged_users"`
	IDECodeCompletions CompletionsSummary  `json:"copilot_ide_code_completions"`
	IDEChat            ChatSummary         `json:"copilot_ide_chat"`
	DotcomChat         DotcomChatSummary   `json:"copilot_dotcom_chat"`
	DotcomPullRequests PullRequestsSummary `json:"copilot_dotcom_pull_requests"`
	Breakdown          []UserBreakdown     `json:"breakdown"`
}

// CompletionsSummary aggregates IDE completion engagement.
type CompletionsSummary struct {
	TotalEngagedUsers int             `json:"total_engaged_users"`
	Languages         []LanguageUsage `json:"languages"`
	Editors           []EditorUsage   `json:"editors"`
}

// ChatSummary aggregates IDE chat engagement.
type ChatSummary struct {
	TotalEngagedUsers int           `json:"total_engaged_users"`
	Editors           []EditorUsage `json:"editors"`
}

// DotcomChatSummary stays at zero; Augment has no dotcom chat surface.
type DotcomChatSummary struct {
	TotalEngagedUsers int          `json:"total_engaged_users"`
	Models            []ModelUsage `json:"models"`
}

// PullRequestsSummary stays at zero; Augment has no pull request surface.
type PullRequestsSummary struct {
	TotalEngagedUsers int               `json:"total_engaged_users"`
	Repositories      []RepositoryUsage `json:"repositories"`
}

// LanguageUsage is a per-language rollup inside a summary section.
type LanguageUsage struct {
	Name              string `json:"name"`
	TotalEngagedUsers int    `json:"total_engaged_users"`
}

// EditorUsage is a per-editor rollup inside a summary section.
type EditorUsage struct {
	Name              string `json:"name"`
	TotalEngagedUsers int    `json:"total_engaged_users"`
}

// ModelUsage is a per-model rollup inside a summary section.
type ModelUsage struct {
	Name              string `json:"name"`
	TotalEngagedUsers int    `json:"total_engaged_users"`
}

// RepositoryUsage is a per-repository rollup inside a summary section.
type RepositoryUsage struct {
	Name              string `json:"name"`
	TotalEngagedUsers int    `json:"total_engaged_users"`
}

// ChatPanelActivity counts chat panel interactions the user initiated.
type ChatPanelActivity struct {
	UserInitiatedInteractionCount int `json:"user_initiated_interaction_count"`
}

// AgentEditActivity rolls up every agent surface for one user.
type AgentEditActivity struct {
	UserInitiatedInteractionCount int `json:"user_initiated_interaction_count"`
	LOCAddedSum                   int `json:"loc_added_sum"`
}

// CodeCompletionsActivity counts lines added through completions.
type CodeCompletionsActivity struct {
	LOCAddedSum int `json:"loc_added_sum"`
}

// UserBreakdown is one user's mapped metrics inside a Report. UserEmail
// carries the service account name for automation accounts.
type UserBreakdown struct {
	UserEmail                   string                  `json:"user_email"`
	ActiveDays                  int                     `json:"active_days"`
	CodeGenerationActivityCount int                     `json:"code_generation_activity_count"`
	CodeAcceptanceActivityCount int                     `json:"code_acceptance_activity_count"`
	LOCAddedSum                 int                     `json:"loc_added_sum"`
	ChatPanel                   ChatPanelActivity       `json:"chat_panel"`
	AgentEdit                   AgentEditActivity       `json:"agent_edit"`
	CodeCompletions             CodeCompletionsActivity `json:"code_completions"`
}

// Engaged reports whether the user shows any qualifying activity: generated
// completions, chat panel use, or agent interactions.
func (b UserBreakdown) Engaged() bool {
	return b.CodeGenerationActivityCount > 0 ||
		b.ChatPanel.UserInitiatedInteractionCount > 0 ||
		b.AgentEdit.UserInitiatedInteractionCount > 0
}

// NewReport returns a Report for the given date with every summary section
// initialized to empty, non-nil slices and an empty breakdown.
func NewReport(date string) *Report {
	return &Report{
		Date: date,
		IDECodeCompletions: CompletionsSummary{
			Languages: []LanguageUsage{},
			Editors:   []EditorUsage{},
		},
		IDEChat: ChatSummary{
			Editors: []EditorUsage{},
		},
		DotcomChat: DotcomChatSummary{
			Models: []ModelUsage{},
		},
		DotcomPullRequests: PullRequestsSummary{
			Repositories: []RepositoryUsage{},
		},
		Breakdown: []UserBreakdown{},
	}
}
