// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultLogLevel is applied when no source sets App.LogLevel. "error"
// keeps stderr quiet by default so the tool behaves like a plain filter.
const DefaultLogLevel = "error"

// Config is the top-level configuration container for the go-conf-token
// CLI. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds the behavioral settings of the encoder CLI.
	App App `envPrefix:"CONFTOKEN_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Version reports whether the -version flag was given; the entry point
	// prints build metadata and exits instead of encoding anything.
	// Flags only, never read from the environment.
	Version bool

	// Args are the positional command-line arguments left after flag
	// parsing. The first one is the JSON document to encode.
	Args []string
}

// App holds application-level configuration values that control the CLI's
// exit-code policy and conveniences around the token output.
type App struct {
	// StrictExit opts into a non-zero exit code when the input argument is
	// not valid JSON. The reference behavior (off) prints the error message
	// and still exits 0 — a known defect kept for compatibility.
	// Env: CONFTOKEN_STRICT
	StrictExit bool `env:"STRICT"`

	// Clipboard additionally copies the token to the system clipboard.
	// The token is always printed to standard output regardless.
	// Env: CONFTOKEN_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`

	// LogLevel is the zerolog level for diagnostics on standard error
	// (e.g. "debug", "info", "warn", "error", "disabled").
	// Env: CONFTOKEN_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetConfig loads, merges, and validates the CLI configuration from all
// available sources in the following priority order (first non-zero source
// wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
