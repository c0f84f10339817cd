package tools

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/project"
	"github.com/sddchat/sdd-chat/internal/state"
	"github.com/sddchat/sdd-chat/internal/workflow"
)

// StatusTool handles the sdd_status MCP tool. It reports the current
// selection, the artifacts present for the selected feature, and which
// phases are ready to run.
type StatusTool struct {
	store        state.Store
	projectsRoot string
}

// NewStatusTool creates a StatusTool over the given state store and
// projects directory.
func NewStatusTool(store state.Store, projectsRoot string) *StatusTool {
	return &StatusTool{store: store, projectsRoot: projectsRoot}
}

// Definition returns the MCP tool definition for registration.
func (t *StatusTool) Definition() mcp.Tool {
	return mcp.NewTool("sdd_status",
		mcp.WithDescription(
			"Show the current workflow status: selected project and feature, "+
				"artifacts present on disk, and per-phase readiness. "+
				"Pass `project`/`feature` to inspect a different selection.",
		),
		mcp.WithString("project",
			mcp.Description("Project to inspect. Defaults to the current selection."),
		),
		mcp.WithString("feature",
			mcp.Description("Feature ID to inspect. Defaults to the current selection."),
		),
	)
}

// Handle processes the sdd_status tool call.
func (t *StatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectName, featureID, err := resolveSelection(t.store, req.GetString("project", ""), req.GetString("feature", ""))
	if err != nil {
		return nil, err
	}

	if projectName == "" {
		return mcp.NewToolResultError("No project selected. Use `sdd-chat use <project>` or pass `project`."), nil
	}
	if !project.Exists(t.projectsRoot, projectName) {
		return mcp.NewToolResultError(fmt.Sprintf("Project %q not found.", projectName)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Workflow Status\n\n")
	fmt.Fprintf(&b, "**Project:** %s\n", projectName)
	if featureID != "" {
		fmt.Fprintf(&b, "**Feature:** %s\n", featureID)
	} else {
		b.WriteString("**Feature:** (none selected)\n")
	}
	b.WriteString("\n## Artifacts\n\n")
	fmt.Fprintf(&b, "- %s constitution.md\n",
		checkMark(fileExists(project.ConstitutionPath(t.projectsRoot, projectName))))
	if featureID != "" {
		featureDir := project.FeaturePath(t.projectsRoot, projectName, featureID)
		for _, name := range []string{"spec.md", "plan.md", "data-model.md", "tasks.md"} {
			fmt.Fprintf(&b, "- %s %s\n", checkMark(fileExists(filepath.Join(featureDir, name))), name)
		}
	}

	b.WriteString("\n## Phases\n\n")
	b.WriteString("| # | Phase | Ready |\n")
	b.WriteString("|---|-------|-------|\n")
	for _, ph := range workflow.Phases() {
		ready := "✓"
		if err := workflow.CheckPrerequisites(t.projectsRoot, projectName, featureID, ph.Number); err != nil {
			ready = fmt.Sprintf("✗ %s", err)
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", ph.Number, ph.Name, ready)
	}

	return mcp.NewToolResultText(b.String()), nil
}
