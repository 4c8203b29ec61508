// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for nen-quickstart using log/slog.
// Log records carry diagnostics only; the setup and verify reports are
// written to the command's stdout.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level maps the verbosity flags to a slog level:
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  WARN and above, so reports stay uncluttered
//   - verbose mode: DEBUG and above
//
// quiet wins when both flags are set.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// New returns a text logger writing to w at the level selected by the
// verbosity flags.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose, quiet),
	}))
}

// Setup installs a stderr logger as the slog default.
func Setup(verbose, quiet bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet))
}
