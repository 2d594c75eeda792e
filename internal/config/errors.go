package config

import "errors"

// Validation errors returned by [Config.validate] when the merged
// configuration is unusable.
var (
	// ErrInvalidLogLevel indicates that App.LogLevel is not a level name
	// zerolog understands.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
