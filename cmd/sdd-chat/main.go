// Command sdd-chat drives a phase-gated, chat-assisted spec-driven
// development workflow from the terminal.
//
// The operator initializes a project, creates numbered features, and
// walks six phases from constitution to implementation. For each phase
// the tool assembles a context bundle the operator pastes into an
// external chat assistant; the assistant's output is saved back as the
// phase's artifact. A phase only runs once the artifacts it depends on
// exist.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const appName = "sdd-chat"

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Chat-assisted spec-driven development workflow",
		Long: `sdd-chat manages a spec-driven development workflow built around an
external chat assistant.

Projects hold a constitution and numbered features; each feature walks
six phases (Constitution, Specification, Clarification, Planning,
Task Breakdown, Implementation). For every phase sdd-chat assembles a
context bundle of prompts, templates and prior artifacts to paste into
your assistant, and gates each phase on the artifacts it depends on.

For small features the quickspec command offers a lightweight
spec/plan/build flow instead.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newSetupCmd(),
		newInitCmd(),
		newFeatureCmd(),
		newUseCmd(),
		newStatusCmd(),
		newListCmd(),
		newPhaseCmd(),
		newBundleCmd(),
		newCompleteCmd(),
		newQuickspecCmd(),
		newQuickspecStatusCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newUpdateCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	}
}
