package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/project"
	"github.com/sddchat/sdd-chat/internal/quickspec"
	"github.com/sddchat/sdd-chat/internal/state"
)

// QuickspecStatusTool handles the sdd_quickspec_status MCP tool. It
// lists every quickspec feature in a project with its acceptance
// criteria progress.
type QuickspecStatusTool struct {
	store  state.Store
	engine *quickspec.Engine
}

// NewQuickspecStatusTool creates a QuickspecStatusTool.
func NewQuickspecStatusTool(store state.Store, engine *quickspec.Engine) *QuickspecStatusTool {
	return &QuickspecStatusTool{store: store, engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *QuickspecStatusTool) Definition() mcp.Tool {
	return mcp.NewTool("sdd_quickspec_status",
		mcp.WithDescription(
			"List every quickspec feature in a project with spec/plan presence "+
				"and acceptance criteria progress. Pass `project` to inspect a "+
				"project other than the current selection.",
		),
		mcp.WithString("project",
			mcp.Description("Project to inspect. Defaults to the current selection."),
		),
	)
}

// Handle processes the sdd_quickspec_status tool call.
func (t *QuickspecStatusTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectName, _, err := resolveSelection(t.store, req.GetString("project", ""), "")
	if err != nil {
		return nil, err
	}

	if projectName == "" {
		return mcp.NewToolResultError("No project selected. Use `sdd-chat use <project>` or pass `project`."), nil
	}
	if !project.Exists(t.engine.ProjectsRoot, projectName) {
		return mcp.NewToolResultError(fmt.Sprintf("Project %q not found.", projectName)), nil
	}

	statuses, err := t.engine.Status(projectName)
	if err != nil {
		return nil, fmt.Errorf("reading quickspec status: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Quickspec Status: %s\n\n", projectName)
	if len(statuses) == 0 {
		b.WriteString("No quickspec features yet.\n")
		return mcp.NewToolResultText(b.String()), nil
	}

	b.WriteString("| Feature | Spec | Plan | Progress |\n")
	b.WriteString("|---------|------|------|----------|\n")
	for _, fs := range statuses {
		fmt.Fprintf(&b, "| %s | %s | %s | %d/%d |\n",
			fs.ID, checkMark(fs.HasSpec), checkMark(fs.HasPlan),
			fs.Progress.Completed, fs.Progress.Total)
	}

	return mcp.NewToolResultText(b.String()), nil
}
