package workflow

import (
	"errors"
	"testing"
)

func sectionLabels(sections []Section) []string {
	labels := make([]string, len(sections))
	for i, s := range sections {
		labels[i] = s.Label
	}
	return labels
}

func TestResolveArtifacts_PhaseZeroIsEmpty(t *testing.T) {
	root := setupProject(t, "shop", "")
	writeConstitution(t, root, "shop", "# Constitution")

	sections, err := ResolveArtifacts(root, "shop", "", PhaseConstitution)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}
	if len(sections) != 0 {
		t.Errorf("phase 0 sections = %v, want none", sectionLabels(sections))
	}
}

func TestResolveArtifacts_MissingOptionalIsOmitted(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeConstitution(t, root, "shop", "# Constitution")
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	writeArtifact(t, root, "shop", "001-auth", "plan.md", "# Plan")
	// data-model.md, contracts/ and tasks.md absent.

	sections, err := ResolveArtifacts(root, "shop", "001-auth", PhaseTaskBreakdown)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}

	want := []string{"CONSTITUTION", "SPECIFICATION (spec.md)", "PLAN (plan.md)"}
	got := sectionLabels(sections)
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveArtifacts_TaskBreakdownFullSet(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeConstitution(t, root, "shop", "# Constitution")
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	writeArtifact(t, root, "shop", "001-auth", "plan.md", "# Plan")
	writeArtifact(t, root, "shop", "001-auth", "data-model.md", "# Data")
	writeArtifact(t, root, "shop", "001-auth", "tasks.md", "# Tasks")
	// Write contracts in reverse name order to prove the sort.
	writeArtifact(t, root, "shop", "001-auth", "contracts/users-api.json", "{}")
	writeArtifact(t, root, "shop", "001-auth", "contracts/auth-api.json", "{}")

	sections, err := ResolveArtifacts(root, "shop", "001-auth", PhaseTaskBreakdown)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}

	want := []string{
		"CONSTITUTION",
		"SPECIFICATION (spec.md)",
		"PLAN (plan.md)",
		"DATA MODEL (data-model.md)",
		"CONTRACT: auth-api.json",
		"CONTRACT: users-api.json",
	}
	got := sectionLabels(sections)
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestResolveArtifacts_ImplementationIncludesTasks(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeConstitution(t, root, "shop", "# Constitution")
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	writeArtifact(t, root, "shop", "001-auth", "tasks.md", "# Tasks")

	sections, err := ResolveArtifacts(root, "shop", "001-auth", PhaseImplementation)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}

	got := sectionLabels(sections)
	last := got[len(got)-1]
	if last != "TASKS (tasks.md)" {
		t.Errorf("last section = %s, want TASKS (tasks.md)", last)
	}
}

func TestResolveArtifacts_PlanningEmbedsSpecOnly(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeConstitution(t, root, "shop", "# Constitution")
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	writeArtifact(t, root, "shop", "001-auth", "plan.md", "# Plan")

	sections, err := ResolveArtifacts(root, "shop", "001-auth", PhasePlanning)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}

	got := sectionLabels(sections)
	if len(got) != 1 || got[0] != "SPECIFICATION (spec.md)" {
		t.Errorf("planning sections = %v, want only the spec", got)
	}
}

func TestResolveArtifacts_InvalidPhase(t *testing.T) {
	root := setupProject(t, "shop", "")

	_, err := ResolveArtifacts(root, "shop", "", -1)
	var invalid *InvalidPhaseError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %v, want InvalidPhaseError", err)
	}
}

func TestResolveArtifacts_SkipsContractSubdirectories(t *testing.T) {
	root := setupProject(t, "shop", "001-auth")
	writeArtifact(t, root, "shop", "001-auth", "spec.md", "# Spec")
	writeArtifact(t, root, "shop", "001-auth", "contracts/api.json", "{}")
	writeArtifact(t, root, "shop", "001-auth", "contracts/drafts/old.json", "{}")

	sections, err := ResolveArtifacts(root, "shop", "001-auth", PhaseTaskBreakdown)
	if err != nil {
		t.Fatalf("ResolveArtifacts: %v", err)
	}

	for _, s := range sections {
		if s.Label == "CONTRACT: drafts" {
			t.Error("subdirectory enumerated as a contract")
		}
	}
}
