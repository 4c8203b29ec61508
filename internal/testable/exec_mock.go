// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MockCommandExecutor is a test double for CommandExecutor. Commands are
// matched by their full command line ("npm --version") and simulated with
// small sh scripts, so the returned *exec.Cmd behaves like a real process.
type MockCommandExecutor struct {
	// Outputs maps a command line to the stdout it should produce.
	Outputs map[string]string

	// Failures maps a command line to a message written to stderr before
	// the simulated command exits non-zero.
	Failures map[string]string

	// Paths maps a binary name to the path LookPath reports. Names absent
	// from the map fail with exec.ErrNotFound.
	Paths map[string]string

	// Unmatched, when true, makes commands with no Outputs entry fail
	// instead of printing nothing.
	Unmatched bool

	// Calls records the command lines that were built, in order.
	Calls []string
}

// LookPath returns the configured path for file or exec.ErrNotFound.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if p, ok := m.Paths[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// CommandContext returns an *exec.Cmd that produces the configured output
// or failure for the command line name+args.
func (m *MockCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	m.Calls = append(m.Calls, key)

	if msg, ok := m.Failures[key]; ok {
		return exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf("echo %q >&2; exit 1", msg)) //nolint:gosec // test helper
	}
	if out, ok := m.Outputs[key]; ok {
		return exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf("printf '%%s\\n' %q", out)) //nolint:gosec // test helper
	}
	if m.Unmatched {
		return exec.CommandContext(ctx, "sh", "-c", fmt.Sprintf("echo %q >&2; exit 127", key+": not found")) //nolint:gosec // test helper
	}
	return exec.CommandContext(ctx, "sh", "-c", "exit 0")
}

// Called reports whether the command line key was built at least once.
func (m *MockCommandExecutor) Called(key string) bool {
	for _, c := range m.Calls {
		if c == key {
			return true
		}
	}
	return false
}

// Compile-time interface check.
var _ CommandExecutor = (*MockCommandExecutor)(nil)
