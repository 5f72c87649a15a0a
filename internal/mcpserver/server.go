// Package mcpserver exposes the arithmetic service as MCP tools over stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/logger"
	"github.com/mark3labs/mcp-go/server"
)

const serverName = "mathbridge-tools"

// Server wraps an MCP server whose tools call a single arith.Service.
// Greetings and zero-divisor warnings go to the service's sink, not to the
// tool result.
type Server struct {
	svc       *arith.Service
	mcpServer *server.MCPServer
}

// New creates a server with all tools registered.
func New(svc *arith.Service, version string) *Server {
	s := &Server{
		svc: svc,
		mcpServer: server.NewMCPServer(
			serverName,
			version,
			server.WithToolCapabilities(false),
		),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Serve speaks MCP on in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	logger.Debug("Starting MCP stdio server")
	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	logger.Debug("MCP stdio server stopped")
	return nil
}
