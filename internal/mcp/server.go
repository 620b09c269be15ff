package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

const serverName = "exkit"

// Server exposes the exercise programs as MCP tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(version string) (*Server, error) {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	if err := registerTools(srv); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}
	return &Server{server: srv}, nil
}

// Serve runs the JSON-RPC loop over Stdio until the client disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Msg("MCP Server starting Stdio loop")
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
