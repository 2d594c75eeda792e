// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-conf-token/internal/config"
	"github.com/MKhiriev/go-conf-token/internal/encoder"
	"github.com/MKhiriev/go-conf-token/internal/logger"
)

// App runs one encode invocation. The output writer and clipboard function
// are fields so tests can capture stdout and clipboard writes without
// touching the process environment.
type App struct {
	cfg *config.Config
	log *logger.Logger

	out             io.Writer
	copyToClipboard func(string) error
}

// New constructs an App writing to os.Stdout and copying to the system
// clipboard.
func New(cfg *config.Config, log *logger.Logger) *App {
	return &App{
		cfg:             cfg,
		log:             log,
		out:             os.Stdout,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Run encodes the first positional argument and returns the process exit
// code.
//
// Behavior mirrors the reference tool:
//   - no argument: usage text on stdout, exit 1;
//   - invalid JSON: "Invalid JSON string." on stdout and exit 0, unless
//     StrictExit turns that into exit 1;
//   - otherwise: the token on stdout, exit 0.
//
// Extra positional arguments beyond the first are ignored.
func (a *App) Run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(a.out, MsgUsage)
		return 1
	}

	value, err := encoder.ParseJSON([]byte(args[0]))
	if err != nil {
		a.log.Debug().Err(err).Msg("input is not valid JSON")
		fmt.Fprintln(a.out, MsgInvalidJSON)
		if a.cfg.App.StrictExit {
			return 1
		}
		// Reference behavior: a parse failure still exits 0. Known defect,
		// kept for compatibility; -strict opts out.
		return 0
	}

	token, err := encoder.Encode(value)
	if err != nil {
		a.log.Error().Err(err).Msg("encoding failed")
		return 1
	}

	a.log.Debug().Int("token_len", len(token)).Msg("encoded config")
	fmt.Fprintln(a.out, token)

	if a.cfg.App.Clipboard {
		if err := a.copyToClipboard(token); err != nil {
			// The token already went to stdout; clipboard trouble is not
			// worth a failure exit.
			a.log.Warn().Err(err).Msg("clipboard copy failed")
		}
	}

	return 0
}
