package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewForgeMCPServer creates a new MCP server with all forge tools
// registered. The projectPath is the root directory of the project to
// analyze.
func NewForgeMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"forge",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
