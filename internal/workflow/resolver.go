package workflow

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sddchat/sdd-chat/internal/project"
)

// Artifact file names referenced by the dependency table.
const (
	artifactConstitution = "constitution.md"
	artifactSpec         = "spec.md"
	artifactPlan         = "plan.md"
	artifactDataModel    = "data-model.md"
	artifactTasks        = "tasks.md"

	contractsDir = "contracts"
)

// artifactRef identifies one embeddable artifact kind.
type artifactRef int

const (
	refConstitution artifactRef = iota
	refSpec
	refPlan
	refDataModel
	refContracts // expands to every file under contracts/, sorted
	refTasks
)

// embedded lists, per phase and in bundle order, which existing
// artifacts are embedded in that phase's bundle. A missing optional
// artifact is silently skipped; the required-to-exist subset is
// enforced separately by the guard.
var embedded = [PhaseCount][]artifactRef{
	PhaseConstitution:   nil,
	PhaseSpecification:  {refConstitution},
	PhaseClarification:  {refSpec},
	PhasePlanning:       {refSpec},
	PhaseTaskBreakdown:  {refConstitution, refSpec, refPlan, refDataModel, refContracts},
	PhaseImplementation: {refConstitution, refSpec, refPlan, refDataModel, refContracts, refTasks},
}

// Section is one labeled artifact to embed in a bundle. Path points at
// an existing file at resolve time.
type Section struct {
	Label string
	Path  string
}

// ResolveArtifacts returns, in bundle order, the labeled artifact
// sections that exist on disk for the given phase. Contract files are
// enumerated in lexicographic filename order so the bundle is
// reproducible regardless of directory iteration order.
func ResolveArtifacts(projectsRoot, projectName, featureID string, phase int) ([]Section, error) {
	if _, err := Lookup(phase); err != nil {
		return nil, err
	}

	featureDir := project.FeaturePath(projectsRoot, projectName, featureID)
	var sections []Section

	for _, ref := range embedded[phase] {
		switch ref {
		case refConstitution:
			path := project.ConstitutionPath(projectsRoot, projectName)
			if fileExists(path) {
				sections = append(sections, Section{Label: "CONSTITUTION", Path: path})
			}
		case refSpec:
			path := filepath.Join(featureDir, artifactSpec)
			if fileExists(path) {
				sections = append(sections, Section{Label: "SPECIFICATION (spec.md)", Path: path})
			}
		case refPlan:
			path := filepath.Join(featureDir, artifactPlan)
			if fileExists(path) {
				sections = append(sections, Section{Label: "PLAN (plan.md)", Path: path})
			}
		case refDataModel:
			path := filepath.Join(featureDir, artifactDataModel)
			if fileExists(path) {
				sections = append(sections, Section{Label: "DATA MODEL (data-model.md)", Path: path})
			}
		case refContracts:
			contracts, err := listContracts(filepath.Join(featureDir, contractsDir))
			if err != nil {
				return nil, err
			}
			sections = append(sections, contracts...)
		case refTasks:
			path := filepath.Join(featureDir, artifactTasks)
			if fileExists(path) {
				sections = append(sections, Section{Label: "TASKS (tasks.md)", Path: path})
			}
		}
	}

	return sections, nil
}

// listContracts enumerates the files of a contracts/ directory in
// lexicographic order. A missing directory yields no sections.
func listContracts(dir string) ([]Section, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading contracts directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	sections := make([]Section, 0, len(names))
	for _, name := range names {
		sections = append(sections, Section{
			Label: "CONTRACT: " + name,
			Path:  filepath.Join(dir, name),
		})
	}
	return sections, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
