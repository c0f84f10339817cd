package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/project"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the workspace directory structure",
		Long: `Create the projects/, templates/ and prompts/ directories in the
current workspace. Run this once before the first project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			a.ui.header("Setting Up SDD-Chat")
			if err := a.ws.Setup(); err != nil {
				return err
			}
			a.ui.success("Created: " + a.ws.ProjectsPath())
			a.ui.success("Created: " + a.ws.TemplatesPath())
			a.ui.success("Created: " + a.ws.PromptsPath())

			a.ui.println()
			a.ui.info("Directory structure created.")
			a.ui.info("Now copy the templates and prompts from the workflow guide:")
			a.ui.println()
			a.ui.println("  Templates to create:")
			for _, name := range []string{"constitution-template.md", "spec-template.md", "plan-template.md", "tasks-template.md"} {
				a.ui.printf("    • %s\n", filepath.Join(a.ws.TemplatesPath(), name))
			}
			a.ui.println()
			a.ui.println("  Prompts to create:")
			for _, name := range []string{"constitution-prompt.md", "specify-prompt.md", "clarify-prompt.md", "plan-prompt.md", "tasks-prompt.md", "implement-prompt.md"} {
				a.ui.printf("    • %s\n", filepath.Join(a.ws.PromptsPath(), name))
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <project>",
		Short: "Initialize a new project",
		Long: `Initialize a new project with the standard structure and make it
the current project.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			name := args[0]

			a.ui.header("Initializing Project: " + name)

			if project.Exists(a.ws.ProjectsPath(), name) {
				a.ui.warn(fmt.Sprintf("Project '%s' already exists.", name))
				if !a.ui.confirm("Continue anyway?") {
					return fmt.Errorf("aborted")
				}
			}

			if err := project.Init(a.ws.ProjectsPath(), name); err != nil {
				return err
			}
			a.ui.success("Created: " + project.Path(a.ws.ProjectsPath(), name))
			a.ui.success("Created: " + filepath.Join(project.Path(a.ws.ProjectsPath(), name), project.SpecsDir))

			st, err := a.loadState()
			if err != nil {
				return err
			}
			st.CurrentProject = name
			st.CurrentFeature = ""
			if err := a.store.Save(st); err != nil {
				return err
			}

			a.ui.info("Current project set to: " + name)
			a.ui.println()
			a.ui.println("  Next steps:")
			a.ui.step(1, "Run 'sdd-chat phase 0' to create the project constitution")
			a.ui.step(2, "Run 'sdd-chat feature <name>' to start a new feature")
			a.ui.println()
			return nil
		},
	}
}

func newFeatureCmd() *cobra.Command {
	var projectFlag string

	cmd := &cobra.Command{
		Use:   "feature <name>",
		Short: "Create a new feature and make it current",
		Long: `Create a numbered feature directory (e.g. 001-user-auth) in the
project's specs/ directory and make it the current feature.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			projectName, _, err := a.selection(projectFlag, "")
			if err != nil {
				return err
			}
			if projectName == "" {
				return errNoProject()
			}

			featureID, err := project.CreateFeature(a.ws.ProjectsPath(), projectName, args[0])
			if err != nil {
				return err
			}

			a.ui.header("Creating Feature: " + featureID)
			a.ui.success("Created: " + project.FeaturePath(a.ws.ProjectsPath(), projectName, featureID))

			st, err := a.loadState()
			if err != nil {
				return err
			}
			st.CurrentProject = projectName
			st.CurrentFeature = featureID
			if err := a.store.Save(st); err != nil {
				return err
			}

			a.ui.info("Current feature set to: " + featureID)
			a.ui.println()
			a.ui.println("  Next steps:")
			a.ui.step(1, "Run 'sdd-chat phase 1' to create the specification")
			a.ui.println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name (uses current if not specified)")
	return cmd
}

func newUseCmd() *cobra.Command {
	var featureFlag string

	cmd := &cobra.Command{
		Use:   "use <project>",
		Short: "Switch to a different project or feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			projectName := args[0]

			if !project.Exists(a.ws.ProjectsPath(), projectName) {
				return &project.NotFoundError{Project: projectName}
			}

			st, err := a.loadState()
			if err != nil {
				return err
			}
			st.CurrentProject = projectName

			if featureFlag != "" {
				if !project.FeatureExists(a.ws.ProjectsPath(), projectName, featureFlag) {
					return &project.FeatureNotFoundError{Project: projectName, Feature: featureFlag}
				}
				st.CurrentFeature = featureFlag
			} else {
				// Default to the most recent feature, if any.
				features, err := project.ListFeatures(a.ws.ProjectsPath(), projectName)
				if err != nil {
					return err
				}
				st.CurrentFeature = ""
				if len(features) > 0 {
					st.CurrentFeature = features[len(features)-1]
				}
			}

			if err := a.store.Save(st); err != nil {
				return err
			}

			a.ui.success("Switched to project: " + projectName)
			if st.CurrentFeature != "" {
				a.ui.success("Current feature: " + st.CurrentFeature)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&featureFlag, "feature", "f", "", "Feature to switch to")
	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show current project and feature status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			st, err := a.loadState()
			if err != nil {
				return err
			}

			a.ui.header("SDD-Chat Status")

			if st.CurrentProject == "" {
				a.ui.warn("No project selected. Run 'sdd-chat init <project>' to start.")
				return nil
			}

			a.ui.printf("  Project: %s\n", st.CurrentProject)

			if fileExists(project.ConstitutionPath(a.ws.ProjectsPath(), st.CurrentProject)) {
				a.ui.success("Constitution: ✓ exists")
			} else {
				a.ui.warn("Constitution: ✗ not created (run 'sdd-chat phase 0')")
			}

			if st.CurrentFeature == "" {
				a.ui.warn("No feature selected. Run 'sdd-chat feature <name>' to start one.")
				a.ui.println()
				return nil
			}

			a.ui.printf("  Feature:  %s\n", st.CurrentFeature)
			featureDir := project.FeaturePath(a.ws.ProjectsPath(), st.CurrentProject, st.CurrentFeature)

			a.ui.println()
			a.ui.println("  Artifacts:")
			artifacts := []struct{ file, label string }{
				{"spec.md", "Specification"},
				{"plan.md", "Plan"},
				{"research.md", "Research"},
				{"data-model.md", "Data Model"},
				{"tasks.md", "Tasks"},
			}
			for _, art := range artifacts {
				if fileExists(filepath.Join(featureDir, art.file)) {
					a.ui.success("  " + art.label + ": ✓")
				} else {
					a.ui.printf("    %s: ✗\n", art.label)
				}
			}
			a.ui.println()
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects and their features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			a.ui.header("Projects and Features")

			projects, err := project.List(a.ws.ProjectsPath())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				a.ui.warn("No projects found. Run 'sdd-chat init <project>' to create one.")
				return nil
			}

			st, err := a.loadState()
			if err != nil {
				return err
			}

			for _, p := range projects {
				marker := ""
				if p == st.CurrentProject {
					marker = " ◀ current"
				}
				a.ui.printf("  %s%s\n", p, marker)

				constStatus := "✗"
				if fileExists(project.ConstitutionPath(a.ws.ProjectsPath(), p)) {
					constStatus = "✓"
				}
				a.ui.printf("    Constitution: %s\n", constStatus)

				features, err := project.ListFeatures(a.ws.ProjectsPath(), p)
				if err != nil {
					return err
				}
				if len(features) == 0 {
					a.ui.println("    Features: (none)")
				} else {
					a.ui.println("    Features:")
					for _, f := range features {
						featMarker := ""
						if p == st.CurrentProject && f == st.CurrentFeature {
							featMarker = " ◀"
						}
						a.ui.printf("      • %s%s\n", f, featMarker)
					}
				}
				a.ui.println()
			}
			return nil
		},
	}
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
