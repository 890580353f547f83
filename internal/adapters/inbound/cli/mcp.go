package cli

import (
	mcpadapter "github.com/abdidvp/wuxing/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the wuxing MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start wuxing MCP server (stdio)",
		Long:  "Start the wuxing MCP server using stdio transport. This lets AI assistants score charts, read the rule tables and check configured charts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			s := mcpadapter.NewWuxingMCPServer(projectPath, logger)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Directory containing .wuxing.yaml (defaults to current working directory)")

	return cmd
}
