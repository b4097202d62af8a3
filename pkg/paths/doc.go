// Package paths provides centralized path handling for notifyrules.
//
// Locations follow the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/notifyrules (rules.toml lives here)
//   - State:  $XDG_STATE_HOME/notifyrules (log file)
//
// # Environment Variables
//
//   - NOTIFYRULES_CONFIG_DIR: Override the config directory
//   - NOTIFYRULES_STATE_DIR: Override the state directory
//
// Both accept a leading ~ for the home directory.
package paths
