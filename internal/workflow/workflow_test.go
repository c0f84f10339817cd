package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sddchat/sdd-chat/internal/project"
)

// --- Shared fixtures ---

// setupProject creates a projects root with one project and one
// feature directory, returning the root.
func setupProject(t *testing.T, projectName, featureID string) string {
	t.Helper()
	root := t.TempDir()
	if err := project.Init(root, projectName); err != nil {
		t.Fatalf("setup: init project: %v", err)
	}
	if featureID != "" {
		dir := project.FeaturePath(root, projectName, featureID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("setup: mkdir feature: %v", err)
		}
	}
	return root
}

// writeArtifact creates an artifact file inside the feature directory.
func writeArtifact(t *testing.T, root, projectName, featureID, name, content string) {
	t.Helper()
	path := filepath.Join(project.FeaturePath(root, projectName, featureID), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: write %s: %v", name, err)
	}
}

// writeConstitution creates the project-level constitution.md.
func writeConstitution(t *testing.T, root, projectName, content string) {
	t.Helper()
	path := project.ConstitutionPath(root, projectName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: write constitution: %v", err)
	}
}
