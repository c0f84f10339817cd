package workflow

import (
	"fmt"
	"path/filepath"

	"github.com/sddchat/sdd-chat/internal/project"
)

// NoProjectSelectedError reports that no project was given and none is
// recorded in the workflow state.
type NoProjectSelectedError struct{}

func (e *NoProjectSelectedError) Error() string {
	return "no project specified: run 'sdd-chat init <project>' or 'sdd-chat use <project>' first"
}

// NoFeatureSelectedError reports that a phase above 0 was requested
// without a feature selected.
type NoFeatureSelectedError struct {
	Phase int
}

func (e *NoFeatureSelectedError) Error() string {
	return fmt.Sprintf("phase %d needs a feature: run 'sdd-chat feature <name>' first", e.Phase)
}

// MissingPrerequisiteError reports that an artifact a phase depends on
// does not exist yet, naming the phase that produces it.
type MissingPrerequisiteError struct {
	Phase           int
	Artifact        string
	ProducedByPhase int
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("phase %d requires %s: run 'sdd-chat phase %d' first",
		e.Phase, e.Artifact, e.ProducedByPhase)
}

// prerequisite names one artifact that must exist before a phase may
// run, and the phase expected to produce it.
type prerequisite struct {
	artifact   string
	producedBy int
}

// prerequisites is the hard-gate column of the dependency table.
// Phase 0 has no prerequisites.
var prerequisites = [PhaseCount][]prerequisite{
	PhaseConstitution:   nil,
	PhaseSpecification:  {{artifactConstitution, PhaseConstitution}},
	PhaseClarification:  {{artifactSpec, PhaseSpecification}},
	PhasePlanning:       {{artifactSpec, PhaseSpecification}},
	PhaseTaskBreakdown:  {{artifactPlan, PhasePlanning}},
	PhaseImplementation: {{artifactTasks, PhaseTaskBreakdown}},
}

// CheckPrerequisites validates that a phase (or its bundle) may be
// entered for the given project/feature. It is the only gate in the
// workflow: phases are never rolled back or undone.
func CheckPrerequisites(projectsRoot, projectName, featureID string, phase int) error {
	if _, err := Lookup(phase); err != nil {
		return err
	}
	if projectName == "" {
		return &NoProjectSelectedError{}
	}
	if !project.Exists(projectsRoot, projectName) {
		return &project.NotFoundError{Project: projectName}
	}
	if phase > PhaseConstitution {
		if featureID == "" {
			return &NoFeatureSelectedError{Phase: phase}
		}
		if !project.FeatureExists(projectsRoot, projectName, featureID) {
			return &project.FeatureNotFoundError{Project: projectName, Feature: featureID}
		}
	}

	featureDir := project.FeaturePath(projectsRoot, projectName, featureID)
	for _, req := range prerequisites[phase] {
		var path string
		if req.artifact == artifactConstitution {
			path = project.ConstitutionPath(projectsRoot, projectName)
		} else {
			path = filepath.Join(featureDir, req.artifact)
		}
		if !fileExists(path) {
			return &MissingPrerequisiteError{
				Phase:           phase,
				Artifact:        req.artifact,
				ProducedByPhase: req.producedBy,
			}
		}
	}

	return nil
}
