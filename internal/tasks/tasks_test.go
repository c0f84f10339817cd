package tasks

import (
	"strings"
	"testing"
)

const sampleTasks = `# Tasks

## Progress Tracking

| Task | Status | Notes |
|------|--------|-------|
| T001 | ⬜ Not Started | Set up project |
| T002 | ⬜ Not Started | User model |
| T003 | ✅ Complete | Schema |
`

func TestComplete_RewritesMatchingRow(t *testing.T) {
	res := Complete(sampleTasks, "T001")

	if !res.Changed {
		t.Fatalf("Changed = false, warning = %q", res.Warning)
	}
	if !strings.Contains(res.Content, "| T001 | ✅ Complete | Set up project |") {
		t.Error("T001 row not rewritten")
	}
	// Other rows untouched.
	if !strings.Contains(res.Content, "| T002 | ⬜ Not Started | User model |") {
		t.Error("T002 row was modified")
	}
	if !strings.Contains(res.Content, "| T003 | ✅ Complete | Schema |") {
		t.Error("T003 row was modified")
	}
}

func TestComplete_AlreadyCompleteWarnsWithoutMutation(t *testing.T) {
	res := Complete(sampleTasks, "T003")

	if res.Changed {
		t.Fatal("Changed = true for an already-complete row")
	}
	if res.Content != sampleTasks {
		t.Error("content mutated")
	}
	if res.Warning == "" {
		t.Error("expected a warning")
	}
}

func TestComplete_UnknownIDWarns(t *testing.T) {
	res := Complete(sampleTasks, "T999")

	if res.Changed {
		t.Fatal("Changed = true for unknown id")
	}
	if res.Content != sampleTasks {
		t.Error("content mutated")
	}
	if !strings.Contains(res.Warning, "T999") {
		t.Errorf("warning %q does not name the task id", res.Warning)
	}
}

func TestComplete_UnexpectedStatusWarns(t *testing.T) {
	content := "| T004 | 🔄 In Progress | Doing it |\n"

	res := Complete(content, "T004")
	if res.Changed {
		t.Fatal("Changed = true for unexpected status")
	}
	if !strings.Contains(res.Warning, "T004") {
		t.Errorf("warning %q does not name the task id", res.Warning)
	}
}

func TestComplete_IDPrefixDoesNotMatch(t *testing.T) {
	// T001 must not match the T0011 row.
	content := "| T0011 | ⬜ Not Started | Other |\n"

	res := Complete(content, "T001")
	if res.Changed {
		t.Fatal("T001 matched the T0011 row")
	}
}

func TestComplete_SecondCallIsIdempotent(t *testing.T) {
	first := Complete(sampleTasks, "T002")
	if !first.Changed {
		t.Fatalf("first call: %q", first.Warning)
	}

	second := Complete(first.Content, "T002")
	if second.Changed {
		t.Fatal("second call mutated the file again")
	}
	if second.Content != first.Content {
		t.Error("second call changed content")
	}
	if second.Warning == "" {
		t.Error("second call should warn")
	}
}

func TestComplete_PreservesUnrelatedLines(t *testing.T) {
	res := Complete(sampleTasks, "T001")

	for _, line := range []string{"# Tasks", "## Progress Tracking", "| Task | Status | Notes |"} {
		if !strings.Contains(res.Content, line) {
			t.Errorf("line %q lost", line)
		}
	}
}
