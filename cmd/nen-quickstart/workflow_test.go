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

func TestWorkflowCmd_NewAndList(t *testing.T) {
	work, _, _ := sandbox(t)
	readyQuickstart(t, work)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"workflow", "new", "download-invoices", "--dir", work})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Created workflows/my_workflows/download-invoices/workflow.py")
	assert.FileExists(t, filepath.Join(work, "workflows", "my_workflows", "download-invoices", "workflow.py"))

	cmd, stdout, _ = newTestCmd()
	cmd.SetArgs([]string{"workflow", "list", "--dir", work})
	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.Contains(t, out, "download-invoices")
	assert.Contains(t, out, "sample-workflow")
}

func TestWorkflowCmd_NewRefusesOverwrite(t *testing.T) {
	work, _, _ := sandbox(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"workflow", "new", "login", "--dir", work})
	require.NoError(t, cmd.Execute())

	cmd, _, _ = newTestCmd()
	cmd.SetArgs([]string{"workflow", "new", "login", "--dir", work})
	var ece *exitCodeError
	require.True(t, errors.As(cmd.Execute(), &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "already exists")
}

func TestWorkflowCmd_NewRejectsBadName(t *testing.T) {
	work, _, _ := sandbox(t)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"workflow", "new", "Bad_Name", "--dir", work})
	var ece *exitCodeError
	require.True(t, errors.As(cmd.Execute(), &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestWorkflowCmd_ListEmpty(t *testing.T) {
	work, _, _ := sandbox(t)

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"workflow", "list", "--dir", work})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "No workflows yet")
}
