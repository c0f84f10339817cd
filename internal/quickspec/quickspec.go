// Package quickspec implements the lightweight 3-step workflow
// (spec → plan → build) for small features.
//
// Quickspec features live under a project's .quickspec/ directory
// with their own NNN-slug numbering, independent from the full
// 6-phase feature sequence. The spec and plan steps write fixed
// scaffolds the operator fills in; the build step is guidance only
// and never touches the filesystem. Re-running a step regenerates its
// scaffold unconditionally; there is no merge with edits.
package quickspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sddchat/sdd-chat/internal/project"
)

// Artifact filenames inside a quickspec feature directory.
const (
	SpecFile = "spec.md"
	PlanFile = "plan.md"
)

// Engine creates and inspects quickspec features under a projects root.
type Engine struct {
	ProjectsRoot string
}

// CreateSpec allocates the next quickspec number for the project,
// derives a slug from the description, creates the feature directory
// and writes the spec scaffold. An existing spec.md at the same id is
// overwritten. Returns the new feature id.
func (e *Engine) CreateSpec(projectName, description string) (string, error) {
	if !project.Exists(e.ProjectsRoot, projectName) {
		return "", &project.NotFoundError{Project: projectName}
	}

	ids, err := project.ListQuickspecs(e.ProjectsRoot, projectName)
	if err != nil {
		return "", err
	}

	id := project.FeatureID(project.NextNumber(ids), project.Slugify(description))
	dir := e.FeaturePath(projectName, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating quickspec feature %s: %w", id, err)
	}

	scaffold := specScaffold(description)
	if err := os.WriteFile(filepath.Join(dir, SpecFile), []byte(scaffold), 0o644); err != nil {
		return "", fmt.Errorf("writing spec scaffold: %w", err)
	}
	return id, nil
}

// WritePlan writes the plan scaffold into an existing quickspec
// feature, overwriting any previous plan.md.
func (e *Engine) WritePlan(projectName, featureID string) error {
	dir := e.FeaturePath(projectName, featureID)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return &project.FeatureNotFoundError{Project: projectName, Feature: featureID}
	}
	if err := os.WriteFile(filepath.Join(dir, PlanFile), []byte(planScaffold), 0o644); err != nil {
		return fmt.Errorf("writing plan scaffold: %w", err)
	}
	return nil
}

// FeaturePath returns the directory of a quickspec feature.
func (e *Engine) FeaturePath(projectName, featureID string) string {
	return filepath.Join(project.QuickspecPath(e.ProjectsRoot, projectName), featureID)
}

// SpecPath returns the spec.md path of a quickspec feature.
func (e *Engine) SpecPath(projectName, featureID string) string {
	return filepath.Join(e.FeaturePath(projectName, featureID), SpecFile)
}

// PlanPath returns the plan.md path of a quickspec feature.
func (e *Engine) PlanPath(projectName, featureID string) string {
	return filepath.Join(e.FeaturePath(projectName, featureID), PlanFile)
}

// BuildChecklist returns the fixed implementation guidance emitted by
// the build step. The step mutates nothing; the operator drives the
// implementation and checks criteria off in the spec.
func BuildChecklist(specPath string) []string {
	return []string{
		"Follow the plan",
		"Respect existing code conventions",
		"Write tests if the project has them",
		fmt.Sprintf("Check off acceptance criteria in %s", specPath),
		"Run existing tests/linting and fix issues",
	}
}

// specScaffold renders the fixed spec.md scaffold for a description.
func specScaffold(description string) string {
	return fmt.Sprintf(`# %s

## What
[1-2 sentences - what you're building]

## Why
[1 sentence - user/business value]

## Acceptance Criteria
- [ ] [criterion 1]
- [ ] [criterion 2]
- [ ] [criterion 3]

## Out of Scope
- [excluded item]
`, titleCase(description))
}

const planScaffold = `# Plan

## Files
- ` + "`path/to/file`" + ` - [change description]
- ` + "`path/to/new-file`" + ` - [create, purpose]

## Approach
[2-4 sentences on implementation strategy]

## Risks
- [potential issue, if any]
`

// titleCase capitalizes the first letter of each word and lowercases
// the rest, so "fix CART bug" becomes "Fix Cart Bug".
func titleCase(s string) string {
	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			if startOfWord {
				b.WriteRune(r - 'a' + 'A')
			} else {
				b.WriteRune(r)
			}
			startOfWord = false
		case r >= 'A' && r <= 'Z':
			if startOfWord {
				b.WriteRune(r)
			} else {
				b.WriteRune(r - 'A' + 'a')
			}
			startOfWord = false
		default:
			b.WriteRune(r)
			startOfWord = true
		}
	}
	return b.String()
}
