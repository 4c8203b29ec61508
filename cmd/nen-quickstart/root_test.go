// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"setup", "verify", "workflow", "config", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCmd_DirMustExist(t *testing.T) {
	sandbox(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"setup", "--dir", filepath.Join(t.TempDir(), "nope")})
	err := cmd.Execute()

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "does not exist")
}

func TestExitError(t *testing.T) {
	err := exitError(ExitInvalidArgs, "bad %s", "flag")
	assert.Equal(t, "bad flag", err.Error())
	assert.Equal(t, ExitInvalidArgs, err.ExitCode())

	silent := exitError(ExitVerifyFailed, "")
	assert.Empty(t, silent.Error())
}

func TestVersionCmd(t *testing.T) {
	sandbox(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "nen-quickstart dev\n", stdout.String())
}
