package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ledcor/ledcor/pkg/controller"
	"github.com/ledcor/ledcor/pkg/schema"
)

// Server wraps the MCP server with LED device control tools
type Server struct {
	mcpServer  *server.MCPServer
	controller *controller.Controller
	validator  *schema.Validator
}

// NewServer creates a new MCP server for LED control
func NewServer(ctrl *controller.Controller, validator *schema.Validator) *Server {
	s := &Server{
		controller: ctrl,
		validator:  validator,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"ledcor",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
