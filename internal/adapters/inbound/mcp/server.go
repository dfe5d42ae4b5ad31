package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server with the jisconv tools registered. The
// projectPath is the root directory to scan and convert.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"jisconv",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
