package main

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	sddserver "github.com/sddchat/sdd-chat/internal/server"
	"github.com/sddchat/sdd-chat/internal/workspace"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Expose the workflow over the Model Context Protocol so a chat
assistant can query status and assemble bundles directly.

Add to your assistant's MCP config:

  {
    "mcpServers": {
      "sdd-chat": {
        "command": "sdd-chat",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := workspace.Discover()
			if err != nil {
				return err
			}

			sddserver.Version = version
			s, cleanup, err := sddserver.New(ws)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			go notifyUpdates()

			return server.ServeStdio(s)
		},
	}
}
