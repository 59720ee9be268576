// Package mcptool exposes the tool operations over the Model Context
// Protocol: one mcp.Tool definition plus handler per operation, collected in
// an explicit registration table built once at startup.
package mcptool

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registration pairs an MCP tool definition with its handler function.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Register adds every Registration in the table to the given MCP server.
func Register(s *server.MCPServer, registrations []Registration) {
	for _, r := range registrations {
		s.AddTool(r.Tool, r.Handler)
	}
}
