// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the command-line behavior of go-conf-token: it
// maps process arguments onto the encoder pipeline and encodes the outcome
// as an exit code, keeping standard output reserved for the token (or the
// fixed user-facing messages below).
package app

const (
	// MsgInvalidJSON is printed when the input argument cannot be parsed
	// as JSON. Fixed wording: scripts built around the reference tool
	// match on this exact string.
	MsgInvalidJSON = "Invalid JSON string."

	// MsgUsage is printed when no input argument is supplied.
	MsgUsage = "Usage: conftoken [flags] '<json_string>'"
)
