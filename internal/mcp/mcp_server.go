// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Augment metrics MCP server
// without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.AnalyticsClient) *server.MCPServer {
	s := server.NewMCPServer(
		"Augment Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_user_activity ---
	s.AddTool(mcp.NewTool("get_user_activity",
		mcp.WithDescription("Fetch per-user Augment activity records for a single day or a date range."),
		mcp.WithString("date", mcp.Description("Single day to query (YYYY-MM-DD). Mutually exclusive with start_date/end_date.")),
		mcp.WithString("start_date", mcp.Description("First day of the range (YYYY-MM-DD).")),
		mcp.WithString("end_date", mcp.Description("Last day of the range (YYYY-MM-DD).")),
	), h.handleGetUserActivity)

	// --- 2. Tool: get_active_user_counts ---
	s.AddTool(mcp.NewTool("get_active_user_counts",
		mcp.WithDescription("Fetch daily distinct active user counts for a date range."),
		mcp.WithString("start_date", mcp.Description("First day of the range (YYYY-MM-DD)."), mcp.Required()),
		mcp.WithString("end_date", mcp.Description("Last day of the range (YYYY-MM-DD)."), mcp.Required()),
	), h.handleGetActiveUserCounts)

	// --- 3. Tool: export_metrics ---
	s.AddTool(mcp.NewTool("export_metrics",
		mcp.WithDescription("Export Copilot-schema JSON and flat CSV reports for a date range."),
		mcp.WithString("start_date", mcp.Description("First day of the range (YYYY-MM-DD)."), mcp.Required()),
		mcp.WithString("end_date", mcp.Description("Last day of the range (YYYY-MM-DD)."), mcp.Required()),
		mcp.WithBoolean("daily", mcp.Description("Write one report per day instead of one for the whole range.")),
		mcp.WithString("output_dir", mcp.Description("Directory for the generated files.")),
	), h.handleExportMetrics)

	return s
}

// StartMCPServer starts the Augment metrics MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.AnalyticsClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
