package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/contract"
	mcp_internal "github.com/augmentcode/augmetrics/internal/mcp"
	"github.com/augmentcode/augmetrics/schema"
)

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{}
	client := new(augment.MockAnalyticsClient)
	s := mcp_internal.NewMCPServer(baseCfg, client)

	t.Run("get_user_activity mixed window", func(t *testing.T) {
		res := callTool(t, s, "get_user_activity", map[string]any{
			"date":       "2026-01-15",
			"start_date": "2026-01-01",
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "cannot combine a single date with a date range")
	})

	t.Run("get_active_user_counts missing dates", func(t *testing.T) {
		res := callTool(t, s, "get_active_user_counts", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "start date and end date must be specified together")
	})

	t.Run("export_metrics missing range", func(t *testing.T) {
		res := callTool(t, s, "export_metrics", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "export requires")
	})
}

func TestMCPServerHandlers_Results(t *testing.T) {
	t.Run("get_user_activity returns records", func(t *testing.T) {
		client := new(augment.MockAnalyticsClient)
		client.On("FetchUserActivity", mock.Anything, contract.SingleDay("2026-01-15")).
			Return([]schema.UserActivity{{UserEmail: "alice@example.com", ActiveDays: 3}}, nil)

		s := mcp_internal.NewMCPServer(&contract.Config{}, client)
		res := callTool(t, s, "get_user_activity", map[string]any{"date": "2026-01-15"})
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "alice@example.com")
		client.AssertExpectations(t)
	})

	t.Run("get_active_user_counts returns counts", func(t *testing.T) {
		client := new(augment.MockAnalyticsClient)
		client.On("FetchActiveUserCounts", mock.Anything, "2026-01-01", "2026-01-02").
			Return([]schema.ActiveUserCount{{Date: "2026-01-01", UserCount: 40}}, nil)

		s := mcp_internal.NewMCPServer(&contract.Config{}, client)
		res := callTool(t, s, "get_active_user_counts", map[string]any{
			"start_date": "2026-01-01",
			"end_date":   "2026-01-02",
		})
		require.False(t, res.IsError)

		var counts []schema.ActiveUserCount
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &counts))
		require.Len(t, counts, 1)
		assert.Equal(t, 40, counts[0].UserCount)
		client.AssertExpectations(t)
	})

	t.Run("export_metrics writes files", func(t *testing.T) {
		outputDir := t.TempDir()

		client := new(augment.MockAnalyticsClient)
		client.On("FetchUserActivity", mock.Anything, contract.DateRange("2026-01-01", "2026-01-02")).
			Return([]schema.UserActivity{{UserEmail: "alice@example.com"}}, nil)
		client.On("FetchActiveUserCounts", mock.Anything, "2026-01-01", "2026-01-02").
			Return([]schema.ActiveUserCount(nil), nil)

		s := mcp_internal.NewMCPServer(&contract.Config{}, client)
		res := callTool(t, s, "export_metrics", map[string]any{
			"start_date": "2026-01-01",
			"end_date":   "2026-01-02",
			"output_dir": outputDir,
		})
		require.False(t, res.IsError, "unexpected error: %v", res.Content)

		text := res.Content[0].(mcp.TextContent).Text
		assert.Contains(t, text, "copilot_metrics_2026-01-01_to_2026-01-02.json")

		_, err := os.Stat(filepath.Join(outputDir, "augment_metrics_2026-01-01_to_2026-01-02.csv"))
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}
