package tools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/bundle"
	"github.com/sddchat/sdd-chat/internal/history"
	"github.com/sddchat/sdd-chat/internal/state"
	"github.com/sddchat/sdd-chat/internal/workflow"
)

// BundleTool handles the sdd_bundle MCP tool. It runs the prerequisite
// guard, assembles the context bundle for a phase, and records the
// result in the bundle history when a history store is configured.
type BundleTool struct {
	store     state.Store
	assembler *bundle.Assembler
	history   *history.Store // nil when history is disabled
	now       func() time.Time
}

// NewBundleTool creates a BundleTool. hist may be nil.
func NewBundleTool(store state.Store, assembler *bundle.Assembler, hist *history.Store) *BundleTool {
	return &BundleTool{store: store, assembler: assembler, history: hist, now: time.Now}
}

// Definition returns the MCP tool definition for registration.
func (t *BundleTool) Definition() mcp.Tool {
	return mcp.NewTool("sdd_bundle",
		mcp.WithDescription(
			"Assemble the context bundle for a workflow phase: the phase prompt, "+
				"template, and every project artifact the phase depends on, as one "+
				"markdown document ready to paste into a chat assistant. "+
				"Prerequisite artifacts are checked first.",
		),
		mcp.WithNumber("phase",
			mcp.Required(),
			mcp.Description("Phase number, 0 (Constitution) through 5 (Implementation)."),
		),
		mcp.WithString("project",
			mcp.Description("Project to bundle for. Defaults to the current selection."),
		),
		mcp.WithString("feature",
			mcp.Description("Feature ID to bundle for. Defaults to the current selection."),
		),
	)
}

// Handle processes the sdd_bundle tool call.
func (t *BundleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	phase := intArg(req, "phase", -1)
	if _, err := workflow.Lookup(phase); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projectName, featureID, err := resolveSelection(t.store, req.GetString("project", ""), req.GetString("feature", ""))
	if err != nil {
		return nil, err
	}

	if err := workflow.CheckPrerequisites(t.assembler.ProjectsRoot, projectName, featureID, phase); err != nil {
		var noProject *workflow.NoProjectSelectedError
		var noFeature *workflow.NoFeatureSelectedError
		var missing *workflow.MissingPrerequisiteError
		if errors.As(err, &noProject) || errors.As(err, &noFeature) || errors.As(err, &missing) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("checking prerequisites: %w", err)
	}

	text, err := t.assembler.Assemble(phase, projectName, featureID, t.now())
	if err != nil {
		return nil, fmt.Errorf("assembling bundle: %w", err)
	}

	if t.history != nil {
		if err := t.history.RecordBundle(phase, projectName, featureID, len(text)); err != nil {
			// History is best effort; the bundle itself is the product.
			log.Printf("WARNING: recording bundle history: %v", err)
		}
	}

	return mcp.NewToolResultText(text), nil
}
