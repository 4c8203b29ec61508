// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/nenai/mcp-quickstart/internal/gitignore"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	// We reuse the global rootCmd because every subcommand is wired to it
	// via init(). But we redirect its I/O.
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag variable and cobra flag to its default.
func resetFlags() {
	verbose, quiet, noColor, workDir = false, false, false, ""
	setupAPIKey, setupDeploymentID, setupEditorConfig, setupNoSamples = "", "", "", false
	verifyJSON, verifyProbe, verifyEditorConfig = false, false, ""

	reset := func(f *pflag.Flag) {
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range []*cobra.Command{setupCmd, verifyCmd, workflowNewCmd, workflowListCmd, configShowCmd, configPathCmd, versionCmd} {
		c.Flags().VisitAll(reset)
		if h := c.Flags().Lookup("help"); h != nil {
			_ = h.Value.Set("false")
		}
	}
}

// sandbox isolates a test from the real home directory, settings, git
// repository and toolchain. It returns the quickstart and home directories
// and the executor standing in for node, npm and npx.
func sandbox(t *testing.T) (work, home string, exec *testable.MockCommandExecutor) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	color.NoColor = true

	work, home = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	oldOpener := gitignore.Opener
	gitignore.Opener = &testable.MockGitOpener{}
	t.Cleanup(func() { gitignore.Opener = oldOpener })

	exec = &testable.MockCommandExecutor{
		Outputs: map[string]string{
			"node --version":                "v20.11.1",
			"npm --version":                 "10.2.4",
			"npx @nen/mcp-server --version": "0.4.2",
		},
		Paths: map[string]string{
			"node": "/usr/local/bin/node",
			"npm":  "/usr/local/bin/npm",
			"npx":  "/usr/local/bin/npx",
		},
		Unmatched: true,
	}
	oldExec := cmdExecutor
	cmdExecutor = exec
	t.Cleanup(func() { cmdExecutor = oldExec })

	return work, home, exec
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
