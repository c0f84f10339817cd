// Package server wires the MCP components and creates the server
// instance used by the serve command.
//
// This is the composition root: it resolves the workspace, builds the
// concrete stores and the bundle assembler, and injects them into the
// tools. No business logic lives here, only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sddchat/sdd-chat/internal/bundle"
	"github.com/sddchat/sdd-chat/internal/history"
	"github.com/sddchat/sdd-chat/internal/prompts"
	"github.com/sddchat/sdd-chat/internal/quickspec"
	"github.com/sddchat/sdd-chat/internal/resources"
	"github.com/sddchat/sdd-chat/internal/state"
	"github.com/sddchat/sdd-chat/internal/tools"
	"github.com/sddchat/sdd-chat/internal/workspace"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates the MCP server with all tools registered over the given
// workspace.
//
// The returned cleanup function closes the bundle history database and
// must be called on shutdown (typically via defer). It is always
// non-nil and safe to call even if history init failed.
func New(ws *workspace.Workspace) (*server.MCPServer, func(), error) {
	store := state.NewFileStore(ws.StatePath())

	assembler := &bundle.Assembler{
		ProjectsRoot: ws.ProjectsPath(),
		TemplatesDir: ws.TemplatesPath(),
		PromptsDir:   ws.PromptsPath(),
	}

	s := server.NewMCPServer(
		"sdd-chat",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// Bundle history is an independent subsystem: if the database fails
	// to open, bundles still assemble. We log a warning and register the
	// bundle tool without it.
	cleanup := noop
	hist, histErr := history.Open(ws.HistoryDBPath())
	if histErr != nil {
		log.Printf("WARNING: bundle history disabled: %v", histErr)
		hist = nil
	} else {
		cleanup = func() {
			if err := hist.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	statusTool := tools.NewStatusTool(store, ws.ProjectsPath())
	s.AddTool(statusTool.Definition(), statusTool.Handle)

	bundleTool := tools.NewBundleTool(store, assembler, hist)
	s.AddTool(bundleTool.Definition(), bundleTool.Handle)

	quickspecStatusTool := tools.NewQuickspecStatusTool(store, &quickspec.Engine{ProjectsRoot: ws.ProjectsPath()})
	s.AddTool(quickspecStatusTool.Definition(), quickspecStatusTool.Handle)

	startPrompt := prompts.NewStartPrompt()
	s.AddPrompt(startPrompt.Definition(), startPrompt.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	resourceHandler := resources.NewHandler(store, ws.ProjectsPath())
	s.AddResource(resourceHandler.StateResource(), resourceHandler.HandleState)

	return s, cleanup, nil
}

// noop is the default cleanup when history is disabled.
func noop() {}

func serverInstructions() string {
	return `sdd-chat exposes a phase-gated spec-driven development workflow.

Use sdd_status to see the current project/feature selection and which
phases are ready. Use sdd_bundle to assemble the full context document
for a phase (prompt, template, and the project artifacts that phase
depends on). Use sdd_quickspec_status to review lightweight quickspec
features and their acceptance criteria progress.

Project and feature selection is managed by the sdd-chat CLI; tools
accept explicit project/feature arguments to override it.`
}
