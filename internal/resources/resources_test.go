package resources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/project"
	"github.com/sddchat/sdd-chat/internal/state"
)

func readRequest(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func TestHandleState_ReportsSelectionAndReadiness(t *testing.T) {
	root := t.TempDir()
	projects := filepath.Join(root, "projects")
	if err := project.Init(projects, "shop"); err != nil {
		t.Fatalf("setup: init project: %v", err)
	}
	if err := os.WriteFile(project.ConstitutionPath(projects, "shop"), []byte("# C\n"), 0o644); err != nil {
		t.Fatalf("setup: write constitution: %v", err)
	}
	featureID, err := project.CreateFeature(projects, "shop", "auth")
	if err != nil {
		t.Fatalf("setup: create feature: %v", err)
	}

	store := state.NewFileStore(filepath.Join(root, "state.json"))
	if err := store.Save(state.State{CurrentProject: "shop", CurrentFeature: featureID}); err != nil {
		t.Fatalf("setup: save state: %v", err)
	}

	h := NewHandler(store, projects)
	contents, err := h.HandleState(context.Background(), readRequest("sdd://workflow/state"))
	if err != nil {
		t.Fatalf("HandleState failed: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one resource content, got %d", len(contents))
	}

	text := contents[0].(mcp.TextResourceContents).Text
	var report struct {
		Project string `json:"project"`
		Feature string `json:"feature"`
		Phases  []struct {
			Number  int    `json:"number"`
			Ready   bool   `json:"ready"`
			Blocker string `json:"blocker"`
		} `json:"phases"`
	}
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		t.Fatalf("resource should be valid JSON: %v", err)
	}

	if report.Project != "shop" || report.Feature != featureID {
		t.Errorf("report selection = %s/%s", report.Project, report.Feature)
	}
	if len(report.Phases) != 6 {
		t.Fatalf("expected 6 phases, got %d", len(report.Phases))
	}
	// Constitution exists, so phases 0 and 1 are ready; phase 2 needs spec.md.
	if !report.Phases[0].Ready || !report.Phases[1].Ready {
		t.Error("phases 0 and 1 should be ready")
	}
	if report.Phases[2].Ready {
		t.Error("phase 2 should be blocked without spec.md")
	}
	if report.Phases[2].Blocker == "" {
		t.Error("blocked phase should carry a blocker message")
	}
}

func TestHandleState_NoSelection(t *testing.T) {
	root := t.TempDir()
	store := state.NewFileStore(filepath.Join(root, "state.json"))

	h := NewHandler(store, filepath.Join(root, "projects"))
	contents, err := h.HandleState(context.Background(), readRequest("sdd://workflow/state"))
	if err != nil {
		t.Fatalf("HandleState failed: %v", err)
	}

	text := contents[0].(mcp.TextResourceContents).Text
	var report struct {
		Phases []struct {
			Ready bool `json:"ready"`
		} `json:"phases"`
	}
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		t.Fatalf("resource should be valid JSON: %v", err)
	}
	for i, ph := range report.Phases {
		if ph.Ready {
			t.Errorf("phase %d should be blocked with no project selected", i)
		}
	}
}
