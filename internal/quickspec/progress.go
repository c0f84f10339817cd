package quickspec

import "strings"

// Progress is the acceptance-criteria completion count of a spec.
type Progress struct {
	Completed int
	Total     int
}

// Ratio returns completed/total, or 0 when the spec has no criteria.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// CountProgress scans spec content for checklist items. Only lines
// that begin with the checklist syntax at the start of the line are
// counted, and lines inside fenced code blocks are skipped, so
// checkbox-like text in code samples or quotes never inflates the
// numbers.
func CountProgress(content string) Progress {
	var p Progress
	inFence := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		switch {
		case strings.HasPrefix(line, "- [ ]"):
			p.Total++
		case strings.HasPrefix(line, "- [x]"), strings.HasPrefix(line, "- [X]"):
			p.Completed++
			p.Total++
		}
	}
	return p
}
