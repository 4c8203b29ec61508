// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nenai/mcp-quickstart/internal/probe"
	"github.com/nenai/mcp-quickstart/internal/verify"
)

// Verify-specific flag values.
var (
	verifyJSON         bool
	verifyProbe        bool
	verifyEditorConfig string
)

// verifyCmd checks the toolchain and the artifacts created by setup.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the quickstart is ready to use",
	Long: `Check the local environment and the files created by setup.

Checks, in order:
  - node is installed and at least version 18
  - npm is installed
  - .env exists and both credentials are filled in
  - workflows/my_workflows exists
  - the @nen/mcp-server package runs
  - ~/.cursor/mcp.json has a "nen" server whose cwd is this directory
  - .env is git-ignored (inside a git repository)

Missing toolchain pieces or a missing .env are errors and exit with status 1.
Everything else is a warning: verify exits 0 and prints what to fix.

With --probe, verify also starts the MCP server, performs the MCP handshake
and confirms the server exposes list_runs.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "print the report as JSON")
	verifyCmd.Flags().BoolVar(&verifyProbe, "probe", false, "start the MCP server and list its tools")
	verifyCmd.Flags().StringVar(&verifyEditorConfig, "editor-config", "", "path of the MCP config file (default ~/.cursor/mcp.json)")
}

// newProber builds the handshake prober. Tests replace it to avoid starting
// a real server.
var newProber = func(env verify.Env) verify.Prober {
	return &probe.Server{
		Executor: env.Executor,
		Settings: env.Settings,
		WorkDir:  env.WorkDir,
		Version:  Version,
	}
}

func runVerify(cmd *cobra.Command, _ []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}
	settings, settingsErr := settingsOrDefaults(dir)
	settings = withEditorConfig(settings, verifyEditorConfig)

	env := verify.Env{
		WorkDir:     dir,
		HomeDir:     homeDir(),
		Settings:    settings,
		SettingsErr: settingsErr,
		Executor:    cmdExecutor,
		FS:          cmdFS,
	}
	if verifyProbe {
		env.Prober = newProber(env)
	}

	slog.Info("running verify", "dir", dir, "probe", verifyProbe)
	report := verify.Run(cmd.Context(), env)

	w := cmd.OutOrStdout()
	if verifyJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("nen-quickstart: encoding report (%w)", err)
		}
		_, _ = fmt.Fprintln(w, string(data))
	} else {
		renderVerify(w, report)
	}

	if report.HasErrors() {
		return exitError(ExitVerifyFailed, "")
	}
	return nil
}

// checkHeadings are the progress lines printed above each check.
var checkHeadings = map[string]string{
	verify.NameRuntime:        "📦 Checking Node.js version...",
	verify.NamePackageManager: "📦 Checking npm version...",
	verify.NameCredentials:    "🔑 Checking .env file...",
	verify.NameWorkflowDir:    "📁 Checking workflows directory...",
	verify.NameServerInstall:  "🔌 Checking MCP server installation...",
	verify.NameEditorConfig:   "🎯 Checking Cursor MCP configuration...",
	verify.NameGitignore:      "🙈 Checking .env is git-ignored...",
	verify.NameHandshake:      "🤝 Checking MCP handshake...",
	verify.NameSettings:       "⚙️  Checking nen-quickstart settings...",
}

// renderVerify prints each check and the closing summary.
func renderVerify(w io.Writer, report *verify.Report) {
	dim := color.New(color.Faint)
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(w, "🔍 Verifying NenAI MCP Quickstart setup...")
	_, _ = fmt.Fprintln(w)

	for _, c := range report.Checks {
		heading := checkHeadings[c.Name]
		if heading == "" {
			heading = "Checking " + c.Name + "..."
		}
		_, _ = fmt.Fprintln(w, heading)
		_, _ = fmt.Fprintf(w, "   %s %s\n", statusGlyph(c.Status), c.Message)
		for _, d := range c.Details {
			_, _ = fmt.Fprintf(w, "      %s\n", dim.Sprint("- "+d))
		}
		_, _ = fmt.Fprintln(w)
	}

	switch {
	case report.HasErrors():
		_, _ = fmt.Fprintln(w, box(summaryFail, glyphError+" Setup has errors that must be fixed"))
		_, _ = fmt.Fprintln(w)
		printList(w, bold, "To fix:", report.Remediation())

	case report.HasWarnings():
		_, _ = fmt.Fprintln(w, box(summaryWarn, glyphWarn+" Setup is mostly complete but has warnings"))
		_, _ = fmt.Fprintln(w)
		steps := append(report.Remediation(),
			"Restart Cursor",
			`Ask the AI: "Use list_runs to verify the MCP server is working"`,
		)
		printList(w, bold, "Next steps:", steps)

	default:
		_, _ = fmt.Fprintln(w, box(summaryOK, glyphOK+" All checks passed! Your setup looks good."))
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Next: Ask the AI in Cursor to create a workflow:")
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, `  "Create a workflow that navigates to google.com and takes a screenshot"`)
		_, _ = fmt.Fprintln(w)
	}
}

func printList(w io.Writer, bold *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	_, _ = bold.Fprintln(w, title)
	for i, it := range items {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, it)
	}
	_, _ = fmt.Fprintln(w)
}

func statusGlyph(s verify.Status) string {
	switch s {
	case verify.Pass:
		return color.GreenString(glyphOK)
	case verify.Warn:
		return color.YellowString(glyphWarn)
	case verify.Error:
		return color.RedString(glyphError)
	default:
		return color.New(color.Faint).Sprint(glyphSkip)
	}
}
