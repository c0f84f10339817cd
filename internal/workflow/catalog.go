// Package workflow implements the phase-gated engine of the guided
// 6-phase development flow: the static phase catalog, the prerequisite
// guard and the artifact resolver that decides what belongs in a
// phase's context bundle.
//
// Phases form a fixed pipeline: Constitution → Specification →
// Clarification → Planning → Task Breakdown → Implementation. Each
// phase consumes prompt and template files from the workspace and
// produces artifacts inside the active feature directory. A later
// phase may only run once the artifacts it depends on exist; that
// gate is the only control; there is no rollback of a phase once
// entered.
package workflow

import "fmt"

// Phase numbers.
const (
	PhaseConstitution = iota
	PhaseSpecification
	PhaseClarification
	PhasePlanning
	PhaseTaskBreakdown
	PhaseImplementation

	// PhaseCount is the number of phases in the catalog.
	PhaseCount = 6
)

// Phase is one static entry of the catalog: what the phase is called,
// what it produces and which prompt/template files feed its bundle.
type Phase struct {
	Number      int
	Name        string
	Description string
	Artifacts   []string // produced output artifacts (informational)
	Templates   []string // template files consumed by the bundle
	Prompts     []string // prompt files consumed by the bundle
}

// catalog is the immutable phase table. It mirrors the workflow guide:
// artifact names under Artifacts are what the operator is expected to
// save after the chat round-trip.
var catalog = [PhaseCount]Phase{
	{
		Number:      PhaseConstitution,
		Name:        "Constitution",
		Description: "Define project principles and standards",
		Artifacts:   []string{"constitution.md"},
		Templates:   []string{"constitution-template.md"},
		Prompts:     []string{"constitution-prompt.md"},
	},
	{
		Number:      PhaseSpecification,
		Name:        "Specification",
		Description: "Define WHAT to build and WHY (no implementation details)",
		Artifacts:   []string{"spec.md"},
		Templates:   []string{"spec-template.md"},
		Prompts:     []string{"specify-prompt.md"},
	},
	{
		Number:      PhaseClarification,
		Name:        "Clarification",
		Description: "Resolve ambiguities in the specification",
		Artifacts:   []string{"spec.md (updated)"},
		Templates:   []string{},
		Prompts:     []string{"clarify-prompt.md"},
	},
	{
		Number:      PhasePlanning,
		Name:        "Planning",
		Description: "Define HOW to build (technical design)",
		Artifacts:   []string{"plan.md", "research.md", "data-model.md", "contracts/"},
		Templates:   []string{"plan-template.md"},
		Prompts:     []string{"plan-prompt.md"},
	},
	{
		Number:      PhaseTaskBreakdown,
		Name:        "Task Breakdown",
		Description: "Break plan into actionable, ordered tasks",
		Artifacts:   []string{"tasks.md"},
		Templates:   []string{"tasks-template.md"},
		Prompts:     []string{"tasks-prompt.md"},
	},
	{
		Number:      PhaseImplementation,
		Name:        "Implementation",
		Description: "Generate code for each task",
		Artifacts:   []string{"(code files in source repo)"},
		Templates:   []string{},
		Prompts:     []string{"implement-prompt.md"},
	},
}

// InvalidPhaseError reports a phase number outside 0-5.
type InvalidPhaseError struct {
	Number int
}

func (e *InvalidPhaseError) Error() string {
	return fmt.Sprintf("invalid phase number %d: must be 0-5", e.Number)
}

// Lookup returns the catalog entry for a phase number.
func Lookup(number int) (Phase, error) {
	if number < 0 || number >= PhaseCount {
		return Phase{}, &InvalidPhaseError{Number: number}
	}

	p := catalog[number]
	// Return copies of the slices so callers can't mutate the catalog.
	p.Artifacts = append([]string(nil), p.Artifacts...)
	p.Templates = append([]string(nil), p.Templates...)
	p.Prompts = append([]string(nil), p.Prompts...)
	return p, nil
}

// Phases returns all catalog entries in order.
func Phases() []Phase {
	all := make([]Phase, 0, PhaseCount)
	for i := 0; i < PhaseCount; i++ {
		p, _ := Lookup(i)
		all = append(all, p)
	}
	return all
}
