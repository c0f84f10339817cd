package bundle

import "github.com/sddchat/sdd-chat/internal/workflow"

// footers holds the fixed "YOUR INPUT" instruction block appended to
// every bundle, selected solely by phase number. The text tells the
// operator what to add before sending the bundle to the chat
// assistant.
var footers = [workflow.PhaseCount][]string{
	workflow.PhaseConstitution: {
		"[Add your specific project constraints here:]",
		"- Tech stack preferences",
		"- Testing requirements",
		"- Coding standards",
		"- Architectural patterns",
		"- Security/compliance requirements",
		"",
		"Then ask: 'Generate a complete constitution for this project.'",
	},
	workflow.PhaseSpecification: {
		"[Add your feature description here - WHAT and WHY, no HOW:]",
		"",
		"Then ask: 'Generate a complete specification following the template.'",
	},
	workflow.PhaseClarification: {
		"Ask: 'Review this specification and identify any ambiguities or gaps that need clarification.'",
	},
	workflow.PhasePlanning: {
		"[Add your technical decisions here:]",
		"- Language/version:",
		"- Framework:",
		"- Database:",
		"- Testing approach:",
		"- Other dependencies:",
		"",
		"[For brownfield projects, also add:]",
		"- Project structure (tree output)",
		"- Relevant existing files",
		"",
		"Then ask: 'Generate plan.md, research.md, and data-model.md.'",
	},
	workflow.PhaseTaskBreakdown: {
		"Ask: 'Generate an actionable task breakdown with dependency ordering.'",
	},
	workflow.PhaseImplementation: {
		"[Add the specific task to implement here:]",
		"",
		"[Add any existing code context here:]",
		"",
		"Then ask: 'Generate the complete implementation for this task.'",
	},
}
