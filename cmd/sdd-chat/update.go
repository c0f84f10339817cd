package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/updater"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update sdd-chat to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking for updates...")

			rel, ok := updater.CheckLatest(version)
			if !ok {
				fmt.Fprintf(out, "Already at the latest version (%s)\n", version)
				return nil
			}

			fmt.Fprintf(out, "New version available: %s -> %s\n", version, rel.Version)
			if err := updater.Apply(version); err != nil {
				return fmt.Errorf("update failed: %w (download manually from %s)", err, rel.URL)
			}

			fmt.Fprintf(out, "Updated to %s. Restart sdd-chat to use the new version.\n", rel.Version)
			return nil
		},
	}
}

// notifyUpdates prints a notice to stderr when a newer release exists.
// Runs in a goroutine during serve; stderr keeps it off the MCP stdio
// transport.
func notifyUpdates() {
	if rel, ok := updater.CheckLatest(version); ok {
		fmt.Fprintf(os.Stderr, "\n  Update available: %s -> %s\n  Run: sdd-chat update\n  Release: %s\n\n",
			version, rel.Version, rel.URL)
	}
}
