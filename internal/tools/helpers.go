// Package tools implements the MCP tool handlers that expose the
// workflow to a chat assistant over stdio.
//
// Each tool is a struct holding its dependencies, with a Definition
// for registration and a Handle compatible with mcp-go's
// CallToolRequest signature. Operator mistakes (bad phase number,
// missing prerequisites) come back as tool errors; only genuine I/O
// failures return Go errors.
package tools

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sddchat/sdd-chat/internal/state"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are
// float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// resolveSelection merges explicit project/feature arguments with the
// persisted state: an explicit argument always wins.
func resolveSelection(store state.Store, projectArg, featureArg string) (projectName, featureID string, err error) {
	st, err := store.Load()
	if err != nil {
		return "", "", fmt.Errorf("loading workflow state: %w", err)
	}

	projectName = projectArg
	if projectName == "" {
		projectName = st.CurrentProject
	}
	featureID = featureArg
	if featureID == "" {
		featureID = st.CurrentFeature
	}
	return projectName, featureID, nil
}

// checkMark renders a presence flag the way the CLI status output does.
func checkMark(present bool) string {
	if present {
		return "✓"
	}
	return "✗"
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
