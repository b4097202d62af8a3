package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// Env is an isolated set of XDG directories for one test.
type Env struct {
	Root      string
	ConfigDir string
	StateDir  string
}

// IsolateEnv points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh temporary
// directories and clears the notifyrules overrides, so a test never reads or
// writes the real user files.
func IsolateEnv(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		Root:      root,
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("NOTIFYRULES_CONFIG_DIR", "")
	t.Setenv("NOTIFYRULES_STATE_DIR", "")

	return env
}

// RulesFile is where the default rule file of this environment lives.
func (e *Env) RulesFile() string {
	return filepath.Join(e.ConfigDir, "notifyrules", "rules.toml")
}

// WriteRules writes content to the environment's default rule file.
func (e *Env) WriteRules(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Dir(e.RulesFile()), filepath.Base(e.RulesFile()), content)
}
