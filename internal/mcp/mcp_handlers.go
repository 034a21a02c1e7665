package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/augmentcode/augmetrics/core"
	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.AnalyticsClient
}

func (h *toolHandler) handleGetUserActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	// An explicit window replaces the configured one wholesale so the
	// usual exclusivity checks still apply.
	date := request.GetString("date", "")
	start := request.GetString("start_date", "")
	end := request.GetString("end_date", "")
	if date != "" || start != "" || end != "" {
		cfg.Date, cfg.StartDate, cfg.EndDate = date, start, end
	}

	records, err := h.client.FetchUserActivity(ctx, cfg.Window())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetActiveUserCounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := request.GetString("start_date", "")
	end := request.GetString("end_date", "")

	counts, err := h.client.FetchActiveUserCounts(ctx, start, end)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("count fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(counts, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExportMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Date = ""
	if s := request.GetString("start_date", ""); s != "" {
		cfg.StartDate = s
	}
	if e := request.GetString("end_date", ""); e != "" {
		cfg.EndDate = e
	}
	if d := request.GetString("output_dir", ""); d != "" {
		cfg.OutputDir = d
	}
	cfg.Daily = request.GetBool("daily", cfg.Daily)

	result, err := core.RunExport(ctx, cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
