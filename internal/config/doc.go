// Package config loads, normalizes, and validates configuration for the muda
// command.
//
// Settings come from an optional TOML file layered over built-in defaults:
// keys missing from the file keep their default values. There are no
// environment fallbacks. Command-line flags override file values; that
// merge happens in the command, not here.
package config
