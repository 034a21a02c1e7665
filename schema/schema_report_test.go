package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportEmptySections(t *testing.T) {
	report := NewReport("2026-01-15")

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	// The summary sections must serialize as empty arrays, never null.
	body := string(payload)
	assert.Contains(t, body, `"languages":[]`)
	assert.Contains(t, body, `"editors":[]`)
	assert.Contains(t, body, `"models":[]`)
	assert.Contains(t, body, `"repositories":[]`)
	assert.Contains(t, body, `"breakdown":[]`)
	assert.NotContains(t, body, "null", "empty report should contain no null sections")

	assert.Equal(t, "2026-01-15", report.Date)
	assert.Zero(t, report.TotalActiveUsers)
	assert.Zero(t, report.TotalEngagedUsers)
}

func TestReportJSONKeys(t *testing.T) {
	report := NewReport("2026-01-15")
	report.TotalActiveUsers = 5
	report.TotalEngagedUsers = 3
	report.IDECodeCompletions.TotalEngagedUsers = 2
	report.IDEChat.TotalEngagedUsers = 1

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, key := range []string{
		"date",
		"total_active_users",
		"total_engaged_users",
		"copilot_ide_code_completions",
		"copilot_ide_chat",
		"copilot_dotcom_chat",
		"copilot_dotcom_pull_requests",
		"breakdown",
	} {
		assert.Contains(t, decoded, key, "report must carry key %q", key)
	}
}

func TestUserBreakdownEngaged(t *testing.T) {
	tests := []struct {
		name      string
		breakdown UserBreakdown
		want      bool
	}{
		{
			name:      "no activity",
			breakdown: UserBreakdown{UserEmail: "idle@example.com", ActiveDays: 4},
			want:      false,
		},
		{
			name:      "completions only",
			breakdown: UserBreakdown{CodeGenerationActivityCount: 1},
			want:      true,
		},
		{
			name:      "chat only",
			breakdown: UserBreakdown{ChatPanel: ChatPanelActivity{UserInitiatedInteractionCount: 1}},
			want:      true,
		},
		{
			name:      "agent only",
			breakdown: UserBreakdown{AgentEdit: AgentEditActivity{UserInitiatedInteractionCount: 1}},
			want:      true,
		},
		{
			name: "acceptance and LOC alone do not count",
			breakdown: UserBreakdown{
				CodeAcceptanceActivityCount: 9,
				LOCAddedSum:                 500,
				CodeCompletions:             CodeCompletionsActivity{LOCAddedSum: 100},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.breakdown.Engaged())
		})
	}
}
