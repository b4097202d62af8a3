// Package config loads rule files for notifyrules.
//
// Sources are layered with koanf: the embedded defaults, then the user file
// (TOML or YAML, picked by extension), then NOTIFYRULES_GLOBAL_* environment
// variables. A file looks like:
//
//	[global]
//	verbosity = 1
//	disable = ["noisy"]
//
//	[urgency_critical]
//	timeout = 0
//
//	[[rule]]
//	name = "spotify"
//	appname = "Spotify*"
//	new_icon = "spotify"
//
// The urgency sections come first in evaluation order, then [[rule]] entries
// in the order they are written. Within a rule, keys are bound in field
// registry order.
package config
