package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	nextdocmcp "github.com/gorewood/nextdoc/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run nextdoc as a Model Context Protocol (MCP) server over stdio.

Application paths passed to the tools are resolved against the directory the
server was started in. --skip-reports sets the default for every call; a call
may override it with skip_reports.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "nextdoc": {
        "command": "nextdoc",
        "args": ["serve"]
      }
    }
  }

Available tools: list_files, generate_report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol; warnings stay on stderr.
			printer := newPrinter(cmd)
			server := nextdocmcp.NewServer(buildVersion(), generatorOptions(cmd, printer)...)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
