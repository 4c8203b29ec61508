// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nenai/mcp-quickstart/internal/workflows"
)

// workflowCmd is the parent command for workflow subcommands.
var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Create and list workflows",
	Long: `Create and list NenAI workflows in this quickstart.

Your own workflows live in workflows/my_workflows/<name>/workflow.py;
bundled examples live in workflows/samples.`,
}

// workflowNewCmd scaffolds a new workflow.
var workflowNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new workflow",
	Long: `Create workflows/my_workflows/<name>/workflow.py from a starter template.

The name must be kebab-case, e.g. "download-invoices". Existing workflows are
never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflowNew,
}

// workflowListCmd lists workflows.
var workflowListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workflows",
	Args:  cobra.NoArgs,
	RunE:  runWorkflowList,
}

func init() {
	workflowCmd.AddCommand(workflowNewCmd)
	workflowCmd.AddCommand(workflowListCmd)
}

func runWorkflowNew(cmd *cobra.Command, args []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	path, err := workflows.Create(dir, args[0])
	switch {
	case errors.Is(err, workflows.ErrExists):
		return exitError(ExitInvalidArgs, "nen-quickstart: workflow %q already exists at %s", args[0], path)
	case err != nil:
		return exitError(ExitInvalidArgs, "nen-quickstart: %v", err)
	}

	rel, relErr := filepath.Rel(dir, path)
	if relErr != nil {
		rel = path
	}
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s Created %s\n", color.GreenString(glyphOK), filepath.ToSlash(rel))
	_, _ = fmt.Fprintf(w, "   Ask the AI in Cursor to fill in the steps of %q\n", args[0])
	return nil
}

func runWorkflowList(cmd *cobra.Command, _ []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	found, err := workflows.List(dir)
	if err != nil {
		return fmt.Errorf("nen-quickstart: listing workflows (%w)", err)
	}

	w := cmd.OutOrStdout()
	if len(found) == 0 {
		_, _ = fmt.Fprintf(w, "No workflows yet. Create one with %q.\n", commandLine("workflow new <name>"))
		return nil
	}

	dim := color.New(color.Faint)
	for _, wf := range found {
		rel, relErr := filepath.Rel(dir, wf.Path)
		if relErr != nil {
			rel = wf.Path
		}
		_, _ = fmt.Fprintf(w, "%-8s %-32s %s\n", wf.Kind, wf.Name, dim.Sprint(filepath.ToSlash(rel)))
	}
	return nil
}
