// Package resources implements MCP resource handlers for the workflow.
//
// Resources provide read-only data the host can consume for context,
// addressed by sdd:// URIs per MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/state"
	"github.com/sddchat/sdd-chat/internal/workflow"
)

// Handler serves the workflow state resource.
type Handler struct {
	store        state.Store
	projectsRoot string
}

// NewHandler creates a resource Handler.
func NewHandler(store state.Store, projectsRoot string) *Handler {
	return &Handler{store: store, projectsRoot: projectsRoot}
}

// StateResource returns the MCP resource definition for workflow state.
func (h *Handler) StateResource() mcp.Resource {
	return mcp.NewResource(
		"sdd://workflow/state",
		"Workflow State",
		mcp.WithResourceDescription("Current project/feature selection and per-phase readiness"),
		mcp.WithMIMEType("application/json"),
	)
}

// phaseReadiness is one row of the readiness report.
type phaseReadiness struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Ready   bool   `json:"ready"`
	Blocker string `json:"blocker,omitempty"`
}

// stateReport is the JSON shape of the workflow state resource.
type stateReport struct {
	Project   string           `json:"project"`
	Feature   string           `json:"feature"`
	Quickspec string           `json:"quickspec"`
	Phases    []phaseReadiness `json:"phases"`
}

// HandleState returns the current selection and phase readiness as JSON.
func (h *Handler) HandleState(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	st, err := h.store.Load()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	report := stateReport{
		Project:   st.CurrentProject,
		Feature:   st.CurrentFeature,
		Quickspec: st.CurrentQuickspec,
	}
	for _, ph := range workflow.Phases() {
		row := phaseReadiness{Number: ph.Number, Name: ph.Name, Ready: true}
		if err := workflow.CheckPrerequisites(h.projectsRoot, st.CurrentProject, st.CurrentFeature, ph.Number); err != nil {
			row.Ready = false
			row.Blocker = err.Error()
		}
		report.Phases = append(report.Phases, row)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling state report: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource carrying an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
