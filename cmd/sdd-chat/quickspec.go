package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/project"
	"github.com/sddchat/sdd-chat/internal/quickspec"
)

func newQuickspecCmd() *cobra.Command {
	var projectFlag string

	cmd := &cobra.Command{
		Use:   "quickspec <description>",
		Short: "Lightweight spec-driven development for small features",
		Long: `QuickSpec is a streamlined 3-phase workflow (spec, plan, build) for
features that don't require the full 6-phase process. Best for features
touching fewer than 5-7 files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			description := args[0]

			a.ui.header("QuickSpec: Lightweight Spec-Driven Development")

			projectName, _, err := a.selection(projectFlag, "")
			if err != nil {
				return err
			}
			if projectName == "" {
				return errNoProject()
			}
			if !project.Exists(a.ws.ProjectsPath(), projectName) {
				return &project.NotFoundError{Project: projectName}
			}

			engine := a.quickspecEngine()
			featureID, err := engine.CreateSpec(projectName, description)
			if err != nil {
				return err
			}
			a.ui.success("Created: " + engine.FeaturePath(projectName, featureID))

			st, err := a.loadState()
			if err != nil {
				return err
			}
			st.CurrentProject = projectName
			st.CurrentQuickspec = featureID
			if err := a.store.Save(st); err != nil {
				return err
			}

			a.ui.println()
			a.ui.info("Feature: " + featureID)
			a.ui.println()

			specPath := engine.SpecPath(projectName, featureID)
			a.ui.header("Phase 1: Spec")
			a.ui.success("Created: " + specPath)
			a.ui.println()
			a.ui.info("Please fill in the spec.md with your feature details.")
			a.ui.info("Keep to 3-5 acceptance criteria max.")

			if !a.ui.confirm("Ready to proceed to Phase 2 (Plan)?") {
				a.ui.println()
				a.ui.info(fmt.Sprintf("Paused. Edit %s and run 'sdd-chat quickspec' again.", specPath))
				return nil
			}

			a.ui.println()
			a.ui.header("Phase 2: Plan")
			if err := engine.WritePlan(projectName, featureID); err != nil {
				return err
			}
			planPath := engine.PlanPath(projectName, featureID)
			a.ui.success("Created: " + planPath)
			a.ui.println()
			a.ui.info(fmt.Sprintf("Please fill in %s with:", planPath))
			a.ui.info("  - Concrete file paths")
			a.ui.info("  - Implementation approach")
			a.ui.info("  - Any risks or dependencies")

			if !a.ui.confirm("Ready to proceed to Phase 3 (Build)?") {
				a.ui.println()
				a.ui.info(fmt.Sprintf("Paused. Edit %s and continue when ready.", planPath))
				return nil
			}

			a.ui.println()
			a.ui.header("Phase 3: Build")
			a.ui.println("  Implementation phase:")
			a.ui.println()
			for i, step := range quickspec.BuildChecklist(specPath) {
				a.ui.step(i+1, step)
			}

			a.ui.println()
			a.ui.info("Implement the feature according to your plan.")
			a.ui.info(fmt.Sprintf("Update %s to check off acceptance criteria as you complete them.", specPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name (uses current if not specified)")
	return cmd
}

func newQuickspecStatusCmd() *cobra.Command {
	var projectFlag string

	cmd := &cobra.Command{
		Use:   "quickspec-status",
		Short: "Show status of all quickspec features for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			a.ui.header("QuickSpec Features")

			projectName, _, err := a.selection(projectFlag, "")
			if err != nil {
				return err
			}
			if projectName == "" {
				return errNoProject()
			}

			a.ui.printf("  Project: %s\n", projectName)
			a.ui.println()

			statuses, err := a.quickspecEngine().Status(projectName)
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				a.ui.warn("No quickspec features found for this project.")
				a.ui.info("Run 'sdd-chat quickspec \"feature description\"' to start one.")
				return nil
			}

			st, err := a.loadState()
			if err != nil {
				return err
			}

			for _, fs := range statuses {
				marker := ""
				if fs.ID == st.CurrentQuickspec {
					marker = " ◀ current"
				}
				a.ui.printf("  %s%s\n", fs.ID, marker)
				a.ui.printf("    spec.md: %s\n", presenceMark(fs.HasSpec))
				a.ui.printf("    plan.md: %s\n", presenceMark(fs.HasPlan))
				if fs.Progress.Total > 0 {
					a.ui.printf("    Progress: %d/%d criteria complete\n", fs.Progress.Completed, fs.Progress.Total)
				}
				a.ui.println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name (uses current if not specified)")
	return cmd
}

func presenceMark(present bool) string {
	if present {
		return "✓"
	}
	return "✗"
}
