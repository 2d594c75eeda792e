package encoder

import "errors"

// Parse errors returned by [ParseJSON]. Syntax errors from the underlying
// JSON scanner are wrapped with [ErrInvalidJSON] so callers can match the
// whole class with errors.Is.
var (
	// ErrInvalidJSON indicates the input is not a well-formed JSON document.
	ErrInvalidJSON = errors.New("invalid JSON input")
	// ErrTrailingData indicates extra non-whitespace content after the first
	// JSON value.
	ErrTrailingData = errors.New("trailing data after JSON value")
)
