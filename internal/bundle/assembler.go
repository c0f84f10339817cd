// Package bundle assembles the context document an operator pastes
// into an external chat assistant for a workflow phase.
//
// A bundle is deterministic: for a fixed phase, project, feature and
// filesystem snapshot the output is byte-identical apart from the
// generation timestamp, which is injected by the caller. Prompts and
// templates that are missing on disk are represented by a placeholder
// section telling the operator to create the file; artifacts are
// embedded only when they exist, in the fixed order decided by the
// workflow resolver.
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sddchat/sdd-chat/internal/workflow"
)

// Assembler composes bundles from workspace files. Prerequisite
// checking is the guard's job; the assembler assumes the caller has
// already validated the request.
type Assembler struct {
	ProjectsRoot string
	TemplatesDir string
	PromptsDir   string
}

// Assemble renders the full bundle document for a phase. featureID may
// be empty for phase 0. The timestamp is the only non-deterministic
// input and appears exactly once, in the header.
func (a *Assembler) Assemble(phase int, projectName, featureID string, now time.Time) (string, error) {
	info, err := workflow.Lookup(phase)
	if err != nil {
		return "", err
	}

	var parts []string

	// Header.
	parts = append(parts,
		fmt.Sprintf("# SDD-Chat Context Bundle: Phase %d - %s", phase, info.Name),
		fmt.Sprintf("Project: %s", projectName),
	)
	if featureID != "" {
		parts = append(parts, fmt.Sprintf("Feature: %s", featureID))
	}
	parts = append(parts,
		fmt.Sprintf("Generated: %s", now.Format(time.RFC3339)),
		"",
		"---",
		"",
	)

	// Prompts, then templates: embed the file or leave a placeholder.
	for _, name := range info.Prompts {
		parts = appendFileSection(parts, "PROMPT: "+name, filepath.Join(a.PromptsDir, name))
	}
	for _, name := range info.Templates {
		parts = appendFileSection(parts, "TEMPLATE: "+name, filepath.Join(a.TemplatesDir, name))
	}

	// Existing artifacts in resolver order.
	sections, err := workflow.ResolveArtifacts(a.ProjectsRoot, projectName, featureID, phase)
	if err != nil {
		return "", err
	}
	for _, s := range sections {
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", s.Path, err)
		}
		parts = append(parts,
			"## "+s.Label,
			"",
			string(data),
			"",
			"---",
			"",
		)
	}

	// Phase-specific instruction footer.
	parts = append(parts, "## YOUR INPUT", "")
	parts = append(parts, footers[phase]...)

	return joinLines(parts), nil
}

// appendFileSection embeds a prompt or template file, or a placeholder
// when the file is missing. Placeholder sections carry no trailing
// divider, matching the bundle layout the chat prompts were written
// against.
func appendFileSection(parts []string, label, path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return append(parts,
			"## "+label,
			"",
			fmt.Sprintf("[File not found: %s]", path),
			"[Create this file from the SDD-Chat guide]",
			"",
		)
	}
	return append(parts,
		"## "+label,
		"",
		string(data),
		"",
		"---",
		"",
	)
}

func joinLines(parts []string) string {
	return strings.Join(parts, "\n")
}
