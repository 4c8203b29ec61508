// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"
	"os/exec"
	"strings"
)

// CommandExecutor abstracts exec.LookPath and exec.CommandContext so that
// the toolchain probes (node, npm, npx) can be tested without the real
// binaries installed.
type CommandExecutor interface {
	// LookPath searches for an executable named file in the directories
	// named by the PATH environment variable.
	LookPath(file string) (string, error)

	// CommandContext returns an *exec.Cmd configured to run name with the
	// given arguments.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealCommandExecutor delegates to the os/exec package.
type RealCommandExecutor struct{}

// LookPath wraps exec.LookPath.
func (RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// CommandContext wraps exec.CommandContext.
func (RealCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...) //nolint:gosec // args are fixed by callers
}

// DefaultExecutor returns a production CommandExecutor backed by os/exec.
func DefaultExecutor() CommandExecutor {
	return RealCommandExecutor{}
}

// Output runs name with args through e and returns its trimmed stdout.
// Stderr is discarded; a non-zero exit or a missing binary is an error.
func Output(ctx context.Context, e CommandExecutor, name string, args ...string) (string, error) {
	out, err := e.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
