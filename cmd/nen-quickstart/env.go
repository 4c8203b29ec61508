// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/redact"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// cmdFS is the file system implementation used by CLI commands.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS

// cmdExecutor runs the toolchain probes. Override in tests with a
// testable.MockCommandExecutor.
var cmdExecutor testable.CommandExecutor = testable.DefaultExecutor()

// resolveWorkDir returns the absolute quickstart directory: --dir when set,
// otherwise the current directory.
func resolveWorkDir() (string, error) {
	dir := workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", exitError(ExitInvalidArgs, "nen-quickstart: cannot determine working directory (%v)", err)
		}
		return wd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "nen-quickstart: cannot resolve path %q (%v)", dir, err)
	}
	info, err := cmdFS.Stat(abs)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "nen-quickstart: path %q does not exist", dir)
	}
	if !info.IsDir() {
		return "", exitError(ExitInvalidArgs, "nen-quickstart: %q is not a directory", dir)
	}
	return abs, nil
}

// homeDir returns the user's home directory, falling back to "~" like a
// shell with HOME unset would.
func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return h
	}
	return "~"
}

// loadSettings resolves the quickstart settings for dir. Broken settings
// files are a usage error.
func loadSettings(dir string) (*config.Config, error) {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "nen-quickstart: %v", err)
	}
	return cfg, nil
}

// settingsOrDefaults resolves the settings for dir like loadSettings, but a
// broken settings file yields the built-in defaults together with the error
// so setup and verify can still run and report it.
func settingsOrDefaults(dir string) (*config.Config, error) {
	cfg, err := config.Resolve(dir)
	if err != nil {
		slog.Warn("ignoring settings files, using defaults", "error", redact.String(err.Error()))
		return config.Defaults(), err
	}
	return cfg, nil
}

// withEditorConfig applies an --editor-config override.
func withEditorConfig(cfg *config.Config, path string) *config.Config {
	if path == "" {
		return cfg
	}
	return config.Merge(cfg, &config.Config{EditorConfig: path})
}

// commandLine returns how the user should invoke a subcommand in hints.
func commandLine(sub string) string {
	return fmt.Sprintf("%s %s", rootCmd.Name(), sub)
}
