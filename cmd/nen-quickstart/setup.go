// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nenai/mcp-quickstart/internal/setup"
)

// Setup-specific flag values.
var (
	setupAPIKey       string
	setupDeploymentID string
	setupEditorConfig string
	setupNoSamples    bool
)

// setupCmd provisions the quickstart directory.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the credentials file, workflow directories and Cursor config",
	Long: `Prepare the current directory for the NenAI MCP quickstart.

Creates .env with empty NEN_API_KEY and NEN_DEPLOYMENT_ID entries, the
workflows/, workflows/my_workflows/ and workflows/samples/ directories, and
~/.cursor/mcp.json pointing the "nen" MCP server at this directory.

Setup is safe to run repeatedly: it never overwrites an existing file. When
~/.cursor/mcp.json already exists without a "nen" entry, setup prints the
entry to add by hand instead of editing the file.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "", "NEN_API_KEY to write into a newly created .env")
	setupCmd.Flags().StringVar(&setupDeploymentID, "deployment-id", "", "NEN_DEPLOYMENT_ID to write into a newly created .env")
	setupCmd.Flags().StringVar(&setupEditorConfig, "editor-config", "", "path of the MCP config file (default ~/.cursor/mcp.json)")
	setupCmd.Flags().BoolVar(&setupNoSamples, "no-samples", false, "do not add the sample workflow")
}

func runSetup(cmd *cobra.Command, _ []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}
	settings, settingsErr := settingsOrDefaults(dir)
	settings = withEditorConfig(settings, setupEditorConfig)

	slog.Info("running setup", "dir", dir)

	result := setup.Run(setup.Options{
		WorkDir:      dir,
		HomeDir:      homeDir(),
		Settings:     settings,
		APIKey:       setupAPIKey,
		DeploymentID: setupDeploymentID,
		NoSamples:    setupNoSamples,
		SettingsErr:  settingsErr,
	})

	renderSetup(cmd.OutOrStdout(), result, setup.NextSteps(result, settings.Server.Name, commandLine("verify")))
	if result.Failed() {
		slog.Warn("setup finished with failures; see the report above")
	}
	return nil
}

// renderSetup prints the action list and the numbered next steps.
func renderSetup(w io.Writer, result *setup.Result, steps []setup.Step) {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	_, _ = fmt.Fprintln(w, "🚀 Setting up NenAI MCP Quickstart...")
	_, _ = fmt.Fprintln(w)

	for _, a := range result.Actions {
		_, _ = fmt.Fprintf(w, "%s %-28s %s\n", actionGlyph(a.Operation), a.File,
			dim.Sprintf("(%s: %s)", a.Operation, a.Description))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "📝 Next steps:")
	_, _ = fmt.Fprintln(w)
	for i, s := range steps {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, s.Text)
		if len(s.Snippet) > 0 {
			_, _ = fmt.Fprintln(w)
			_, _ = w.Write(s.Snippet)
			_, _ = fmt.Fprintln(w)
		}
	}
	_, _ = fmt.Fprintln(w)
}

func actionGlyph(op setup.Operation) string {
	switch op {
	case setup.Manual:
		return color.YellowString(glyphWarn)
	case setup.Failed:
		return color.RedString(glyphError)
	default:
		return color.GreenString(glyphOK)
	}
}
