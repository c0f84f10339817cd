package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ui renders the command output conventions: banner headers, numbered
// steps, and status lines with ✓/✗/⚠/ℹ markers. All output goes through
// the writer so tests can capture it.
type ui struct {
	out io.Writer
	in  *bufio.Reader
}

func (u *ui) header(text string) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(u.out, "\n%s\n  %s\n%s\n\n", rule, text, rule)
}

func (u *ui) step(number int, text string) {
	fmt.Fprintf(u.out, "  [%d] %s\n", number, text)
}

func (u *ui) info(text string) {
	fmt.Fprintf(u.out, "  ℹ  %s\n", text)
}

func (u *ui) warn(text string) {
	fmt.Fprintf(u.out, "  ⚠  %s\n", text)
}

func (u *ui) success(text string) {
	fmt.Fprintf(u.out, "  ✓  %s\n", text)
}

func (u *ui) println(args ...any) {
	fmt.Fprintln(u.out, args...)
}

func (u *ui) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// rule prints a horizontal divider used around pasted bundle content.
func (u *ui) rule() {
	fmt.Fprintln(u.out, strings.Repeat("─", 70))
}

// confirm asks a yes/no question and reads one line from input.
// Anything other than y/yes (case-insensitive) is a no; so is EOF.
func (u *ui) confirm(prompt string) bool {
	fmt.Fprintf(u.out, "  %s [y/N]: ", prompt)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(u.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
