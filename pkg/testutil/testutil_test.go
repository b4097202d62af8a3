package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "a/b/rules.toml", "x = 1")

	assert.Equal(t, filepath.Join(dir, "a", "b", "rules.toml"), path)
	assert.Equal(t, "x = 1", ReadFile(t, path))
}

func TestIsolateEnv(t *testing.T) {
	env := IsolateEnv(t)

	assert.Equal(t, env.ConfigDir, os.Getenv("XDG_CONFIG_HOME"))
	assert.Equal(t, env.StateDir, os.Getenv("XDG_STATE_HOME"))
	assert.Empty(t, os.Getenv("NOTIFYRULES_CONFIG_DIR"))

	path := env.WriteRules(t, "[[rule]]\nname = \"a\"\n")
	assert.Equal(t, filepath.Join(env.ConfigDir, "notifyrules", "rules.toml"), path)
	assert.FileExists(t, path)
}
