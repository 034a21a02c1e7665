package cmd

import (
	"log/slog"

	"github.com/augmentcode/augmetrics/internal/augment"
	"github.com/augmentcode/augmetrics/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Augment metrics MCP server",
	Long:  `Launch an MCP server that allows AI agents to query Augment analytics and export metrics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Credentials are required up front because every tool call
		// goes through the shared API client.
		return apiSetupWrapper(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := augment.NewClient(cfg, slog.Default())
		return mcp.StartMCPServer(rootCtx, cfg, client)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
