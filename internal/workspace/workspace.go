// Package workspace resolves the sdd-chat workspace root and its
// directory layout.
//
// A workspace is the directory that holds projects/, templates/,
// prompts/ and the state file. Commands work from any subdirectory:
// discovery walks up from the working directory looking for an
// existing workspace marker, and falls back to the working directory
// itself for fresh setups.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-workspace configuration filename.
const ConfigFile = "sdd-chat.yaml"

// Defaults for the directory layout.
const (
	DefaultProjectsDir  = "projects"
	DefaultTemplatesDir = "templates"
	DefaultPromptsDir   = "prompts"
	DefaultStateFile    = ".sdd-chat-state.json"
	DefaultHistoryDB    = ".sdd-chat/history.db"
)

// Config holds the workspace layout overrides read from sdd-chat.yaml.
// Every field is optional; zero values fall back to the defaults.
type Config struct {
	ProjectsDir  string `yaml:"projects_dir"`
	TemplatesDir string `yaml:"templates_dir"`
	PromptsDir   string `yaml:"prompts_dir"`
	StateFile    string `yaml:"state_file"`
	HistoryDB    string `yaml:"history_db"`
}

// applyDefaults fills unset fields with the standard layout.
func (c *Config) applyDefaults() {
	if c.ProjectsDir == "" {
		c.ProjectsDir = DefaultProjectsDir
	}
	if c.TemplatesDir == "" {
		c.TemplatesDir = DefaultTemplatesDir
	}
	if c.PromptsDir == "" {
		c.PromptsDir = DefaultPromptsDir
	}
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile
	}
	if c.HistoryDB == "" {
		c.HistoryDB = DefaultHistoryDB
	}
}

// Workspace is the resolved root plus its layout. All paths returned
// by its methods are absolute.
type Workspace struct {
	Root string
	cfg  Config
}

// Open resolves a workspace at the given root directory, reading
// sdd-chat.yaml if present.
func Open(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Join(abs, ConfigFile))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading %s: %w", ConfigFile, err)
	}

	cfg.applyDefaults()
	return &Workspace{Root: abs, cfg: cfg}, nil
}

// Discover walks up from the working directory looking for a directory
// that contains a state file or an sdd-chat.yaml. If none is found the
// working directory itself becomes the workspace root.
func Discover() (*Workspace, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	current := dir
	for {
		for _, marker := range []string{DefaultStateFile, ConfigFile} {
			if _, err := os.Stat(filepath.Join(current, marker)); err == nil {
				return Open(current)
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Open(dir)
		}
		current = parent
	}
}

// ProjectsPath returns the absolute path to the projects directory.
func (w *Workspace) ProjectsPath() string {
	return filepath.Join(w.Root, w.cfg.ProjectsDir)
}

// TemplatesPath returns the absolute path to the templates directory.
func (w *Workspace) TemplatesPath() string {
	return filepath.Join(w.Root, w.cfg.TemplatesDir)
}

// PromptsPath returns the absolute path to the prompts directory.
func (w *Workspace) PromptsPath() string {
	return filepath.Join(w.Root, w.cfg.PromptsDir)
}

// StatePath returns the absolute path to the state file.
func (w *Workspace) StatePath() string {
	return filepath.Join(w.Root, w.cfg.StateFile)
}

// HistoryDBPath returns the absolute path to the bundle history database.
func (w *Workspace) HistoryDBPath() string {
	return filepath.Join(w.Root, w.cfg.HistoryDB)
}

// Setup creates the projects/, templates/ and prompts/ directories.
// Existing directories are left untouched.
func (w *Workspace) Setup() error {
	for _, dir := range []string{w.ProjectsPath(), w.TemplatesPath(), w.PromptsPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
