package workflow

import (
	"errors"
	"testing"

	"github.com/sddchat/sdd-chat/internal/project"
)

func TestCheckPrerequisites_PhaseZeroNeedsOnlyProject(t *testing.T) {
	root := setupProject(t, "shop", "")

	if err := CheckPrerequisites(root, "shop", "", PhaseConstitution); err != nil {
		t.Errorf("phase 0 with project only: %v", err)
	}
}

func TestCheckPrerequisites_NoProject(t *testing.T) {
	root := t.TempDir()

	err := CheckPrerequisites(root, "", "", PhaseConstitution)
	var noProject *NoProjectSelectedError
	if !errors.As(err, &noProject) {
		t.Errorf("error = %v, want NoProjectSelectedError", err)
	}
}

func TestCheckPrerequisites_ProjectNotFound(t *testing.T) {
	err := CheckPrerequisites(t.TempDir(), "ghost", "", PhaseConstitution)
	var notFound *project.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want project.NotFoundError", err)
	}
}

func TestCheckPrerequisites_NoFeatureAbovePhaseZero(t *testing.T) {
	root := setupProject(t, "shop", "")

	err := CheckPrerequisites(root, "shop", "", PhaseSpecification)
	var noFeature *NoFeatureSelectedError
	if !errors.As(err, &noFeature) {
		t.Fatalf("error = %v, want NoFeatureSelectedError", err)
	}
	if noFeature.Phase != PhaseSpecification {
		t.Errorf("NoFeatureSelectedError.Phase = %d, want %d", noFeature.Phase, PhaseSpecification)
	}
}

func TestCheckPrerequisites_FeatureNotFound(t *testing.T) {
	root := setupProject(t, "shop", "")
	writeConstitution(t, root, "shop", "# Constitution")

	err := CheckPrerequisites(root, "shop", "999-ghost", PhaseSpecification)
	var notFound *project.FeatureNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want project.FeatureNotFoundError", err)
	}
}

func TestCheckPrerequisites_MissingConstitution(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")

	err := CheckPrerequisites(root, "shop", "001-auth", PhaseSpecification)
	var missing *MissingPrerequisiteError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingPrerequisiteError", err)
	}
	if missing.Artifact != "constitution.md" || missing.ProducedByPhase != PhaseConstitution {
		t.Errorf("MissingPrerequisiteError = %+v, want constitution.md from phase 0", missing)
	}
}

func TestCheckPrerequisites_PlanningGateOnSpec(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeConstitution(t, root, "shop", "# Constitution")

	// spec.md absent: planning is gated.
	err := CheckPrerequisites(root, "shop", "001-auth", PhasePlanning)
	var missing *MissingPrerequisiteError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingPrerequisiteError", err)
	}
	if missing.Artifact != "spec.md" || missing.ProducedByPhase != PhaseSpecification {
		t.Errorf("MissingPrerequisiteError = %+v, want spec.md from phase 1", missing)
	}

	// Creating spec.md satisfies the gate.
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	if err := CheckPrerequisites(root, "shop", "001-auth", PhasePlanning); err != nil {
		t.Errorf("after creating spec.md: %v", err)
	}
}

func TestCheckPrerequisites_GateTable(t *testing.T) {
	tests := []struct {
		phase    int
		artifact string
	}{
		{PhaseClarification, "spec.md"},
		{PhaseTaskBreakdown, "plan.md"},
		{PhaseImplementation, "tasks.md"},
	}

	for _, tt := range tests {
		root := setupProject(t, "shop", "001-auth")
		writeConstitution(t, root, "shop", "# Constitution")

		err := CheckPrerequisites(root, "shop", "001-auth", tt.phase)
		var missing *MissingPrerequisiteError
		if !errors.As(err, &missing) {
			t.Errorf("phase %d: error = %v, want MissingPrerequisiteError", tt.phase, err)
			continue
		}
		if missing.Artifact != tt.artifact {
			t.Errorf("phase %d: missing artifact = %s, want %s", tt.phase, missing.Artifact, tt.artifact)
		}

		writeArtifact(t, root, "shop", "001-auth", tt.artifact, "content")
		if err := CheckPrerequisites(root, "shop", "001-auth", tt.phase); err != nil {
			t.Errorf("phase %d after creating %s: %v", tt.phase, tt.artifact, err)
		}
	}
}

func TestCheckPrerequisites_InvalidPhase(t *testing.T) {
	root := setupProject(t, "shop", "")

	err := CheckPrerequisites(root, "shop", "", 7)
	var invalid *InvalidPhaseError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidPhaseError", err)
	}
}
