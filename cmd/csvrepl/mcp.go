package main

import (
	"github.com/sandevgo/csvrepl/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the commands as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, logs stay on stderr
		ctx, flushLog := setupLogger(cmd.Context(), nil)
		defer flushLog()

		appCfg := loadConfig(ctx)
		return mcp.NewServer(newSession(appCfg, "mcp")).ServeStdio(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
