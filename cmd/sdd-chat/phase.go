package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/history"
	"github.com/sddchat/sdd-chat/internal/project"
	"github.com/sddchat/sdd-chat/internal/tasks"
	"github.com/sddchat/sdd-chat/internal/workflow"
)

func newPhaseCmd() *cobra.Command {
	var projectFlag, featureFlag string

	cmd := &cobra.Command{
		Use:   "phase <number>",
		Short: "Start a workflow phase with step-by-step guidance",
		Long: `Start a specific phase with step-by-step guidance.

Phases:
  0 - Constitution (project-level)
  1 - Specification
  2 - Clarification
  3 - Planning
  4 - Task Breakdown
  5 - Implementation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			phase, err := parsePhase(args[0])
			if err != nil {
				return err
			}

			projectName, featureID, err := a.selection(projectFlag, featureFlag)
			if err != nil {
				return err
			}
			if err := workflow.CheckPrerequisites(a.ws.ProjectsPath(), projectName, featureID, phase); err != nil {
				return err
			}

			info, err := workflow.Lookup(phase)
			if err != nil {
				return err
			}

			a.ui.header(fmt.Sprintf("Phase %d: %s", phase, info.Name))
			a.ui.printf("  %s\n", info.Description)
			a.ui.println()

			return a.guidePhase(phase, projectName, featureID)
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name")
	cmd.Flags().StringVarP(&featureFlag, "feature", "f", "", "Feature name")
	return cmd
}

func parsePhase(arg string) (int, error) {
	phase, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid phase number %q: must be 0-5", arg)
	}
	if _, err := workflow.Lookup(phase); err != nil {
		return 0, err
	}
	return phase, nil
}

// guidePhase prints the per-phase checklist and optionally generates
// the bundle inline. The prerequisite guard has already passed.
func (a *app) guidePhase(phase int, projectName, featureID string) error {
	featureDir := project.FeaturePath(a.ws.ProjectsPath(), projectName, featureID)

	switch phase {
	case workflow.PhaseConstitution:
		constPath := project.ConstitutionPath(a.ws.ProjectsPath(), projectName)
		a.ui.println("  Steps:")
		a.ui.step(1, "Run 'sdd-chat bundle 0' to generate the context bundle")
		a.ui.step(2, "Copy the bundle into your assistant chat")
		a.ui.step(3, "Add your specific project constraints to the prompt")
		a.ui.step(4, "Ask the assistant to generate the constitution")
		a.ui.step(5, "Save the output to: "+constPath)
		a.ui.println()
		if fileExists(constPath) {
			a.ui.warn("Constitution already exists. It will be overwritten.")
		}

	case workflow.PhaseSpecification:
		specPath := filepath.Join(featureDir, "spec.md")
		a.ui.println("  Steps:")
		a.ui.step(1, "Run 'sdd-chat bundle 1' to generate the context bundle")
		a.ui.step(2, "Copy the bundle into your assistant chat")
		a.ui.step(3, "Add your feature description (WHAT and WHY, no tech details)")
		a.ui.step(4, "Ask the assistant to generate the specification")
		a.ui.step(5, "Save the output to: "+specPath)
		a.ui.println()
		a.ui.info("Remember: NO implementation details in specs!")
		a.ui.info("Focus on user stories, requirements, and success criteria.")

	case workflow.PhaseClarification:
		specPath := filepath.Join(featureDir, "spec.md")
		a.ui.println("  Steps:")
		a.ui.step(1, "Run 'sdd-chat bundle 2' to generate the context bundle")
		a.ui.step(2, "Copy the bundle into your assistant chat")
		a.ui.step(3, "Answer any clarification questions from the assistant")
		a.ui.step(4, "Ask the assistant to update the spec with clarifications")
		a.ui.step(5, "Save the updated spec to: "+specPath)
		a.ui.println()
		content, err := os.ReadFile(specPath)
		if err != nil {
			return err
		}
		if strings.Contains(string(content), "[NEEDS CLARIFICATION") {
			a.ui.warn("Found [NEEDS CLARIFICATION] markers in spec - clarification recommended.")
		} else {
			a.ui.info("No obvious clarification markers found. You may skip this phase.")
		}

	case workflow.PhasePlanning:
		a.ui.println("  Steps:")
		a.ui.step(1, "Run 'sdd-chat bundle 3' to generate the context bundle")
		a.ui.step(2, "Copy the bundle into your assistant chat")
		a.ui.step(3, "Add your technical stack decisions")
		a.ui.step(4, "Ask the assistant to generate: plan.md, research.md, data-model.md")
		a.ui.step(5, "Save outputs to: "+featureDir+"/")
		a.ui.println()
		a.ui.info("Provide: language, framework, database, testing approach, etc.")
		a.ui.info("For brownfield projects, also include existing code context.")
		a.ui.println()
		a.ui.println("  Expected outputs:")
		for _, name := range []string{"plan.md", "research.md", "data-model.md", "contracts/api-spec.json (if applicable)"} {
			a.ui.printf("    • %s\n", filepath.Join(featureDir, name))
		}

	case workflow.PhaseTaskBreakdown:
		tasksPath := filepath.Join(featureDir, "tasks.md")
		a.ui.println("  Steps:")
		a.ui.step(1, "Run 'sdd-chat bundle 4' to generate the context bundle")
		a.ui.step(2, "Copy the bundle into your assistant chat")
		a.ui.step(3, "Ask the assistant to generate the task breakdown")
		a.ui.step(4, "Save the output to: "+tasksPath)
		a.ui.println()
		a.ui.info("Tasks should have exact file paths and clear dependencies.")
		a.ui.info("Use [P] markers for tasks that can run in parallel.")

	case workflow.PhaseImplementation:
		tasksPath := filepath.Join(featureDir, "tasks.md")
		a.ui.println("  Steps:")
		a.ui.step(1, "Identify the next task to implement from tasks.md")
		a.ui.step(2, "Run 'sdd-chat bundle 5' to generate the base context bundle")
		a.ui.step(3, "Add the specific task and any relevant existing code")
		a.ui.step(4, "Ask the assistant to generate the implementation")
		a.ui.step(5, "Save the code to your source repository")
		a.ui.step(6, "Test the implementation")
		a.ui.step(7, "Mark the task complete with 'sdd-chat complete <task-id>'")
		a.ui.step(8, "Repeat for each task")
		a.ui.println()
		a.ui.info("Implementation is iterative - do one task at a time.")
		a.ui.info("For brownfield projects, include relevant existing code as context.")

		content, err := os.ReadFile(tasksPath)
		if err != nil {
			return err
		}
		headings := taskHeadings(string(content))
		if len(headings) > 0 {
			a.ui.println()
			a.ui.println("  Tasks found:")
			for i, h := range headings {
				if i == 5 {
					a.ui.printf("    ... and %d more\n", len(headings)-5)
					break
				}
				a.ui.printf("    %s\n", h)
			}
		}
	}

	a.ui.println()
	if !a.ui.confirm("Generate context bundle now?") {
		return nil
	}

	text, err := a.assembler().Assemble(phase, projectName, featureID, time.Now())
	if err != nil {
		return err
	}
	a.recordBundle(phase, projectName, featureID, len(text))

	a.ui.println()
	a.ui.rule()
	a.ui.println(text)
	a.ui.rule()
	a.ui.println()
	a.ui.info("Copy the above into your assistant chat.")
	return nil
}

// taskHeadings extracts task heading lines (### Txxx or #### Txxx) for
// the implementation phase preview.
func taskHeadings(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "### T") || strings.HasPrefix(line, "#### T") {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func newBundleCmd() *cobra.Command {
	var projectFlag, featureFlag, outputFlag string

	cmd := &cobra.Command{
		Use:   "bundle <phase>",
		Short: "Generate a context bundle for copy/paste into your assistant chat",
		Long: `Generate a context bundle for the specified phase: the phase prompt,
template and every project artifact the phase depends on, as a single
markdown document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			phase, err := parsePhase(args[0])
			if err != nil {
				return err
			}

			projectName, featureID, err := a.selection(projectFlag, featureFlag)
			if err != nil {
				return err
			}
			if err := workflow.CheckPrerequisites(a.ws.ProjectsPath(), projectName, featureID, phase); err != nil {
				return err
			}

			info, _ := workflow.Lookup(phase)
			a.ui.header(fmt.Sprintf("Context Bundle: Phase %d (%s)", phase, info.Name))

			text, err := a.assembler().Assemble(phase, projectName, featureID, time.Now())
			if err != nil {
				return err
			}
			a.recordBundle(phase, projectName, featureID, len(text))

			if outputFlag != "" {
				if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
					return fmt.Errorf("writing bundle: %w", err)
				}
				a.ui.success("Bundle saved to: " + outputFlag)
				return nil
			}

			a.ui.println()
			a.ui.rule()
			a.ui.println("COPY EVERYTHING BELOW THIS LINE INTO YOUR ASSISTANT CHAT:")
			a.ui.rule()
			a.ui.println(text)
			a.ui.rule()
			a.ui.println("COPY EVERYTHING ABOVE THIS LINE")
			a.ui.rule()
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name")
	cmd.Flags().StringVarP(&featureFlag, "feature", "f", "", "Feature name")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file for bundle")
	return cmd
}

// recordBundle appends to the bundle history database. History is best
// effort: a failure is logged and the command continues.
func (a *app) recordBundle(phase int, projectName, featureID string, size int) {
	hist, err := history.Open(a.ws.HistoryDBPath())
	if err != nil {
		log.Printf("WARNING: bundle history disabled: %v", err)
		return
	}
	defer func() {
		if err := hist.Close(); err != nil {
			log.Printf("WARNING: history store close: %v", err)
		}
	}()
	if err := hist.RecordBundle(phase, projectName, featureID, size); err != nil {
		log.Printf("WARNING: recording bundle history: %v", err)
	}
}

func newCompleteCmd() *cobra.Command {
	var projectFlag, featureFlag string

	cmd := &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task as complete in tasks.md",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			taskID := args[0]

			projectName, featureID, err := a.selection(projectFlag, featureFlag)
			if err != nil {
				return err
			}
			if projectName == "" {
				return errNoProject()
			}
			if featureID == "" {
				return errNoFeature()
			}

			tasksPath := filepath.Join(project.FeaturePath(a.ws.ProjectsPath(), projectName, featureID), "tasks.md")
			content, err := os.ReadFile(tasksPath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("tasks.md not found: run 'sdd-chat phase 4' first")
				}
				return err
			}

			result := tasks.Complete(string(content), taskID)
			if result.Changed {
				if err := os.WriteFile(tasksPath, []byte(result.Content), 0o644); err != nil {
					return fmt.Errorf("writing tasks.md: %w", err)
				}
				a.ui.success(fmt.Sprintf("Marked %s as complete.", taskID))
				return nil
			}

			a.ui.warn(result.Warning)
			a.ui.info("You may need to update tasks.md manually.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFlag, "project", "p", "", "Project name")
	cmd.Flags().StringVarP(&featureFlag, "feature", "f", "", "Feature name")
	return cmd
}
