package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server exposing groundwork's validation and
// anti-pattern scans as tools. The projectPath is the root directory of
// the project to analyze.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"groundwork",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
