// Package state persists the workflow selection record: which project,
// feature and quickspec the operator is currently working on.
//
// The record is a single JSON document at the workspace root. It is
// read at the start of every command that doesn't receive explicit
// project/feature arguments and overwritten whenever init, feature,
// use or quickspec succeed. A missing file means nothing is selected.
//
// Store is an interface so the command layer can be tested against an
// in-memory implementation.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// State is the persisted selection record. Empty strings mean unset.
type State struct {
	CurrentProject   string `json:"current_project,omitempty"`
	CurrentFeature   string `json:"current_feature,omitempty"`
	CurrentQuickspec string `json:"current_quickspec,omitempty"`
}

// Store defines the persistence interface for the selection record.
type Store interface {
	Load() (State, error)
	Save(State) error
}

// CorruptStateError reports a state file that exists but cannot be
// parsed. The workflow fails fast rather than guessing at intent;
// the operator deletes or fixes the file by hand.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("state file %s is corrupted: %v (delete it to reset the current selection)", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// FileStore implements Store on a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the selection record. A missing file yields the zero
// state; malformed JSON yields a CorruptStateError.
func (s *FileStore) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("reading state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, &CorruptStateError{Path: s.path, Err: err}
	}
	return st, nil
}

// Save overwrites the full record. The write goes through a temp file
// and rename so a crash mid-write never leaves a half-written record.
func (s *FileStore) Save(st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sdd-chat-state-*")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp state file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
