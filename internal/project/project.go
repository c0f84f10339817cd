// Package project models projects and their numbered features on disk.
//
// A project is a directory under projects/ holding an optional
// constitution.md, a specs/ collection of features and a .quickspec/
// collection of quickspec features. Features are identified by a
// zero-padded 3-digit sequence number joined to a slug, e.g.
// 001-user-auth. Sequence numbers are max(existing)+1 per project and
// are never reused, so a deleted feature leaves a permanent gap.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

const (
	// SpecsDir is the subdirectory of a project where features live.
	SpecsDir = "specs"
	// QuickspecDir is the subdirectory where quickspec features live.
	QuickspecDir = ".quickspec"
	// ConstitutionFile is the project principles document.
	ConstitutionFile = "constitution.md"
)

// NotFoundError reports a project referenced by name whose directory
// does not exist.
type NotFoundError struct {
	Project string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project %q does not exist (run 'sdd-chat init %s' first)", e.Project, e.Project)
}

// FeatureNotFoundError reports a feature referenced by id whose
// directory does not exist within its project.
type FeatureNotFoundError struct {
	Project string
	Feature string
}

func (e *FeatureNotFoundError) Error() string {
	return fmt.Sprintf("feature %q does not exist in project %q", e.Feature, e.Project)
}

// Path returns the directory of a project under the projects root.
func Path(projectsRoot, name string) string {
	return filepath.Join(projectsRoot, name)
}

// FeaturePath returns the directory of a feature within a project.
func FeaturePath(projectsRoot, projectName, featureID string) string {
	return filepath.Join(projectsRoot, projectName, SpecsDir, featureID)
}

// QuickspecPath returns the quickspec root of a project.
func QuickspecPath(projectsRoot, projectName string) string {
	return filepath.Join(projectsRoot, projectName, QuickspecDir)
}

// ConstitutionPath returns the path of a project's constitution.md.
func ConstitutionPath(projectsRoot, projectName string) string {
	return filepath.Join(projectsRoot, projectName, ConstitutionFile)
}

// Exists reports whether a project directory is present.
func Exists(projectsRoot, name string) bool {
	info, err := os.Stat(Path(projectsRoot, name))
	return err == nil && info.IsDir()
}

// FeatureExists reports whether a feature directory is present.
func FeatureExists(projectsRoot, projectName, featureID string) bool {
	info, err := os.Stat(FeaturePath(projectsRoot, projectName, featureID))
	return err == nil && info.IsDir()
}

// List returns the names of all projects, sorted. A missing projects
// root yields an empty list.
func List(projectsRoot string) ([]string, error) {
	return listDirs(projectsRoot)
}

// ListFeatures returns the feature ids of a project, sorted. A missing
// specs/ directory yields an empty list.
func ListFeatures(projectsRoot, projectName string) ([]string, error) {
	return listDirs(filepath.Join(projectsRoot, projectName, SpecsDir))
}

// ListQuickspecs returns the quickspec feature ids of a project,
// sorted. A missing .quickspec/ directory yields an empty list.
func ListQuickspecs(projectsRoot, projectName string) ([]string, error) {
	return listDirs(QuickspecPath(projectsRoot, projectName))
}

func listDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// NextNumber computes the next sequence number from a list of feature
// ids: max of the 3-digit numeric prefixes plus one, or 1 when none
// parse. Ids without a numeric prefix are ignored.
func NextNumber(featureIDs []string) int {
	max := 0
	for _, id := range featureIDs {
		if len(id) < 3 {
			continue
		}
		n, err := strconv.Atoi(id[:3])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// FeatureID joins a sequence number and a slug into a feature
// directory name, e.g. (1, "user-auth") → "001-user-auth".
func FeatureID(number int, slug string) string {
	return fmt.Sprintf("%03d-%s", number, slug)
}

// Init creates a project directory with its specs/ subdirectory.
// Existing directories are left in place.
func Init(projectsRoot, name string) error {
	specs := filepath.Join(Path(projectsRoot, name), SpecsDir)
	if err := os.MkdirAll(specs, 0o755); err != nil {
		return fmt.Errorf("creating project %s: %w", name, err)
	}
	return nil
}

// CreateFeature allocates the next sequence number, creates the
// feature directory and returns its id.
func CreateFeature(projectsRoot, projectName, name string) (string, error) {
	if !Exists(projectsRoot, projectName) {
		return "", &NotFoundError{Project: projectName}
	}

	ids, err := ListFeatures(projectsRoot, projectName)
	if err != nil {
		return "", err
	}

	id := FeatureID(NextNumber(ids), name)
	if err := os.MkdirAll(FeaturePath(projectsRoot, projectName, id), 0o755); err != nil {
		return "", fmt.Errorf("creating feature %s: %w", id, err)
	}
	return id, nil
}
