// Package mcp provides a Model Context Protocol server for nextdoc.
// It exposes report generation and the file inventory as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/nextdoc/internal/report"
)

// NewServer creates an MCP server with all nextdoc tools registered.
// opts are applied to every Generator the tools create.
func NewServer(version string, opts ...report.Option) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "nextdoc",
		Version: version,
	}, nil)
	registerTools(server, opts)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that create files but never
// replace or delete them.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, opts []report.Option) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List the source files a Next.js report would embed for an application directory, with language tag and size. Reads nothing and writes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleListFiles(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_report",
		Description: "Generate a versioned markdown report (nextjs_code_<app>_vNN.md) inside an application directory, concatenating every source file. Never overwrites an existing report.",
		Annotations: writeAnnotations(),
	}, handleGenerateReport(opts))
}
