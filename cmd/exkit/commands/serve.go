package commands

import (
	"exkit/internal/mcp"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the programs as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcp.NewServer(Version)
			if err != nil {
				return err
			}
			return server.Serve(cmd.Context())
		},
	}
}
