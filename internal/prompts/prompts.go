// Package prompts implements MCP prompt handlers for the workflow.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the assistant to execute a specific sequence. Unlike tools
// (which the assistant calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// StartPrompt handles the sdd-start MCP prompt. It guides the
// assistant through running a feature from specification to
// implementation with the phase tools.
type StartPrompt struct{}

// NewStartPrompt creates a StartPrompt.
func NewStartPrompt() *StartPrompt {
	return &StartPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StartPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("sdd-start",
		mcp.WithPromptDescription(
			"Work a feature through the phase-gated workflow. "+
				"Walks from the current phase to implementation, assembling "+
				"the context bundle for each phase as it becomes ready.",
		),
		mcp.WithArgument("project",
			mcp.ArgumentDescription("Project to work on. Defaults to the current selection."),
		),
		mcp.WithArgument("feature",
			mcp.ArgumentDescription("Feature ID to work on. Defaults to the current selection."),
		),
	)
}

// Handle processes the sdd-start prompt request.
func (p *StartPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	selection := ""
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["project"]; ok && v != "" {
			selection = fmt.Sprintf(" with project='%s'", v)
			if f, ok := args["feature"]; ok && f != "" {
				selection += fmt.Sprintf(", feature='%s'", f)
			}
		}
	}

	return &mcp.GetPromptResult{
		Description: "Work a feature through the phase-gated workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to work a feature through the spec-driven workflow.\n\n"+
						"Please:\n"+
						"1. Run `sdd_status`%s to see which phases are ready\n"+
						"2. Pick the earliest phase that is ready but has no saved artifact yet\n"+
						"3. Run `sdd_bundle` for that phase and follow its instructions\n"+
						"4. Show me the artifact you produce so I can save it to the path the bundle names\n"+
						"5. Once I confirm the artifact is saved, repeat from step 1 until implementation\n\n"+
						"Never skip a phase whose prerequisites are not met.",
					selection,
				)),
			},
		},
	}, nil
}

// StatusPrompt handles the sdd-status MCP prompt. It instructs the
// assistant to read and present the current workflow state.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("sdd-status",
		mcp.WithPromptDescription(
			"Check the current workflow status: selected project and "+
				"feature, artifacts on disk, and which phases are ready.",
		),
	)
}

// Handle processes the sdd-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Workflow status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please run `sdd_status` to check my workflow state, then:\n" +
						"1. Show the selected project and feature\n" +
						"2. List which artifacts exist and which are missing\n" +
						"3. Tell me the next phase to run and why\n" +
						"4. If quickspec features exist, run `sdd_quickspec_status` and summarize their progress",
				),
			},
		},
	}, nil
}
