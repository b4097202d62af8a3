package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory created under each XDG base.
	AppDirName = "notifyrules"

	// RulesFileName is the default rule file inside ConfigDir.
	RulesFileName = "rules.toml"

	// StylesFileName is the optional CLI style sheet inside ConfigDir.
	StylesFileName = "styles.yaml"

	// LogFileName is the log file inside StateDir.
	LogFileName = "notifyrules.log"

	EnvConfigDir = "NOTIFYRULES_CONFIG_DIR"
	EnvStateDir  = "NOTIFYRULES_STATE_DIR"
	EnvHome      = "HOME"
)

// ConfigDir returns the notifyrules config directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	// xdg resolves its bases once at init; read the variable directly so
	// later changes are honoured.
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the notifyrules state directory.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// RulesFile returns the default rule file path.
func RulesFile() string {
	return filepath.Join(ConfigDir(), RulesFileName)
}

// StylesFile returns the user style sheet path.
func StylesFile() string {
	return filepath.Join(ConfigDir(), StylesFileName)
}

// LogFile returns the log file path.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
