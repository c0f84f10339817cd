package quickspec

import (
	"os"

	"github.com/sddchat/sdd-chat/internal/project"
)

// FeatureStatus summarizes one quickspec feature for reporting.
type FeatureStatus struct {
	ID       string
	HasSpec  bool
	HasPlan  bool
	Progress Progress
}

// Status returns the per-feature artifact presence and acceptance
// progress for every quickspec feature of a project, sorted by id.
func (e *Engine) Status(projectName string) ([]FeatureStatus, error) {
	if !project.Exists(e.ProjectsRoot, projectName) {
		return nil, &project.NotFoundError{Project: projectName}
	}

	ids, err := project.ListQuickspecs(e.ProjectsRoot, projectName)
	if err != nil {
		return nil, err
	}

	statuses := make([]FeatureStatus, 0, len(ids))
	for _, id := range ids {
		st := FeatureStatus{ID: id}

		if data, err := os.ReadFile(e.SpecPath(projectName, id)); err == nil {
			st.HasSpec = true
			st.Progress = CountProgress(string(data))
		}
		if _, err := os.Stat(e.PlanPath(projectName, id)); err == nil {
			st.HasPlan = true
		}

		statuses = append(statuses, st)
	}
	return statuses, nil
}
