package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/bundle"
	"github.com/sddchat/sdd-chat/internal/quickspec"
	"github.com/sddchat/sdd-chat/internal/state"
	"github.com/sddchat/sdd-chat/internal/workspace"
)

// app bundles the resolved workspace with the stores and renderers the
// commands share. It is built per command invocation so each run picks
// up the workspace for the current directory.
type app struct {
	ws    *workspace.Workspace
	store state.Store
	ui    *ui
}

func newApp(cmd *cobra.Command) (*app, error) {
	ws, err := workspace.Discover()
	if err != nil {
		return nil, err
	}
	return &app{
		ws:    ws,
		store: state.NewFileStore(ws.StatePath()),
		ui: &ui{
			out: cmd.OutOrStdout(),
			in:  bufio.NewReader(cmd.InOrStdin()),
		},
	}, nil
}

func (a *app) assembler() *bundle.Assembler {
	return &bundle.Assembler{
		ProjectsRoot: a.ws.ProjectsPath(),
		TemplatesDir: a.ws.TemplatesPath(),
		PromptsDir:   a.ws.PromptsPath(),
	}
}

func (a *app) quickspecEngine() *quickspec.Engine {
	return &quickspec.Engine{ProjectsRoot: a.ws.ProjectsPath()}
}

// selection merges --project/--feature flags with the persisted state.
// Flags win; empty results are valid and checked by the callers.
func (a *app) selection(projectFlag, featureFlag string) (projectName, featureID string, err error) {
	st, err := a.loadState()
	if err != nil {
		return "", "", err
	}

	projectName = projectFlag
	if projectName == "" {
		projectName = st.CurrentProject
	}
	featureID = featureFlag
	if featureID == "" {
		featureID = st.CurrentFeature
	}
	return projectName, featureID, nil
}

// loadState reads the workflow state, turning a corrupt state file into
// an actionable message instead of a raw JSON error.
func (a *app) loadState() (state.State, error) {
	st, err := a.store.Load()
	if err != nil {
		var corrupt *state.CorruptStateError
		if errors.As(err, &corrupt) {
			return state.State{}, fmt.Errorf("%w (delete or fix the file to continue)", err)
		}
		return state.State{}, err
	}
	return st, nil
}

func errNoProject() error {
	return fmt.Errorf("no project selected: run 'sdd-chat init <project>' or 'sdd-chat use <project>' first")
}

func errNoFeature() error {
	return fmt.Errorf("no feature selected: run 'sdd-chat feature <name>' first")
}
