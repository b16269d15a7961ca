// Package config provides configuration for framestate.
//
// Settings are layered: built-in defaults, then a TOML or YAML file, then
// FRAMESTATE_* environment variables, then command-line flags applied by
// the caller. Each layer only overrides the settings it names.
//
// # File Format
//
//	[input]
//	drag_threshold = 2.0
//	terminal_key_release = true
//
//	[frame]
//	rate = 60
//
//	[logging]
//	level = "info"
//	file = ""
//
//	[script]
//	path = ""
//
//	[window]
//	dpi_factor = 1.0
//
// YAML files use the same section and setting names.
//
// # Live Reload
//
// Watcher (package watcher) reports changes to the configuration file;
// Reload re-reads it. Drag threshold, frame rate and log level take effect
// without a restart.
package config
