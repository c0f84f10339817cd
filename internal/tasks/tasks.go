// Package tasks mutates the progress tracking table inside a
// feature's tasks.md.
//
// The table is the source of truth for task status. Rather than blind
// substring replacement, the file is scanned line by line for rows of
// the form "| <id> | <status> |..." and mutated by task id, so the
// rest of the file is preserved byte for byte.
package tasks

import (
	"fmt"
	"strings"
)

// Status markers used in the progress tracking table.
const (
	StatusNotStarted = "⬜ Not Started"
	StatusComplete   = "✅ Complete"
)

// Result reports the outcome of a completion attempt.
type Result struct {
	Content string // file content after the attempt
	Changed bool   // whether a row was rewritten
	Warning string // non-fatal diagnostic when nothing changed
}

// Complete marks a task id as complete in the given tasks.md content.
// The match is structural: the row must start with "| <id> |" and its
// status cell must read exactly "⬜ Not Started". Anything else (an
// unknown id, a row already complete, different formatting) leaves the
// content untouched and produces a warning instead of an error; the
// table is operator-maintained.
func Complete(content, taskID string) Result {
	lines := strings.Split(content, "\n")
	rowPrefix := "| " + taskID + " |"

	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), rowPrefix) {
			continue
		}

		cells := splitRow(line)
		if len(cells) < 2 || cells[0] != taskID {
			continue
		}

		switch cells[1] {
		case StatusNotStarted:
			lines[i] = strings.Replace(line,
				"| "+StatusNotStarted+" |",
				"| "+StatusComplete+" |", 1)
			return Result{Content: strings.Join(lines, "\n"), Changed: true}
		case StatusComplete:
			return Result{
				Content: content,
				Warning: fmt.Sprintf("%s is already marked complete", taskID),
			}
		default:
			return Result{
				Content: content,
				Warning: fmt.Sprintf("%s has unexpected status %q: update tasks.md manually", taskID, cells[1]),
			}
		}
	}

	return Result{
		Content: content,
		Warning: fmt.Sprintf("could not find %s in the progress tracking table: update tasks.md manually", taskID),
	}
}

// splitRow splits a markdown table row into trimmed cell values,
// dropping the empty leading/trailing fields around the outer pipes.
func splitRow(line string) []string {
	raw := strings.Split(strings.TrimSpace(line), "|")
	var cells []string
	for i, cell := range raw {
		if i == 0 || i == len(raw)-1 {
			continue
		}
		cells = append(cells, strings.TrimSpace(cell))
	}
	return cells
}
