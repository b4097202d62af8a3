package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		want     func(home string) string
	}{
		{
			name:     "from XDG_CONFIG_HOME",
			envSetup: map[string]string{"XDG_CONFIG_HOME": "/xdg/config", EnvConfigDir: ""},
			want:     func(string) string { return "/xdg/config/notifyrules" },
		},
		{
			name:     "override wins",
			envSetup: map[string]string{"XDG_CONFIG_HOME": "/xdg/config", EnvConfigDir: "/custom/config"},
			want:     func(string) string { return "/custom/config" },
		},
		{
			name:     "override with tilde",
			envSetup: map[string]string{EnvConfigDir: "~/rules"},
			want:     func(home string) string { return filepath.Join(home, "rules") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv(EnvHome, home)
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want(home), ConfigDir())
		})
	}
}

func TestStateDirAndFiles(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	t.Setenv(EnvConfigDir, "/etc/nr")

	assert.Equal(t, "/xdg/state/notifyrules", StateDir())
	assert.Equal(t, "/xdg/state/notifyrules/notifyrules.log", LogFile())
	assert.Equal(t, "/etc/nr/rules.toml", RulesFile())
	assert.Equal(t, "/etc/nr/styles.yaml", StylesFile())

	t.Setenv(EnvStateDir, "/var/lib/nr")
	assert.Equal(t, "/var/lib/nr/notifyrules.log", LogFile())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "relative", ExpandHome("relative"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x/y"), ExpandHome("~/x/y"))
	assert.Equal(t, "~bob/x", ExpandHome("~bob/x"))
}
