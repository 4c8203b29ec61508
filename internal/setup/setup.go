// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package setup implements `nen-quickstart setup`: it provisions the
// credentials file, the workflow directories and the editor integration
// config. Every step is guarded by an existence check, so running setup
// again never changes an artifact it created before.
package setup

import (
	"log/slog"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/redact"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Operation is what a step did to its artifact.
type Operation string

// Operations recorded in an Action.
const (
	Created Operation = "created"
	Updated Operation = "updated"
	Skipped Operation = "skipped"
	// Manual means the artifact exists but needs a hand edit.
	Manual Operation = "manual"
	// Failed means the step hit an I/O error; setup carries on regardless.
	Failed Operation = "failed"
)

// Action records a single file operation performed during setup.
type Action struct {
	File        string    // e.g. ".env", "workflows/samples"
	Operation   Operation // see the Operation constants
	Description string    // human-readable detail
}

// Options holds the inputs of a setup run.
type Options struct {
	// WorkDir is the quickstart directory; relative artifacts live here and
	// it becomes the MCP server's cwd.
	WorkDir string
	// HomeDir anchors the default editor config path.
	HomeDir string
	// Settings are the resolved quickstart settings. Nil means defaults.
	Settings *config.Config

	// APIKey and DeploymentID seed a newly created credentials file.
	APIKey       string
	DeploymentID string

	// NoSamples skips seeding the bundled sample workflow.
	NoSamples bool

	// SettingsErr is the error from loading the settings files, if any.
	// Settings then holds the defaults and the error is recorded as a
	// failed step.
	SettingsErr error
}

// Result holds the outcome of a setup run.
type Result struct {
	Actions []Action

	// EditorConfigPath is where the integration config lives.
	EditorConfigPath string
	// ManualConfig is set when the integration config exists but could not
	// be confirmed; Snippet then holds the entry to add by hand.
	ManualConfig bool
	Snippet      []byte

	// CredentialsCreated reports whether this run wrote the credentials file.
	CredentialsCreated bool
	// MissingCredentials lists recognized keys still empty after setup.
	MissingCredentials []string
}

// Failed reports whether any step recorded an I/O failure.
func (r *Result) Failed() bool {
	for _, a := range r.Actions {
		if a.Operation == Failed {
			return true
		}
	}
	return false
}

func (r *Result) add(a Action) {
	slog.Debug("setup step", "file", a.File, "operation", string(a.Operation), "detail", a.Description)
	r.Actions = append(r.Actions, a)
}

// Run performs every setup step in order and never returns an error:
// failures are recorded as Failed actions so the caller can still print the
// full report.
func Run(opts Options) *Result {
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}

	result := &Result{}

	if opts.SettingsErr != nil {
		result.add(Action{
			File:        "settings",
			Operation:   Failed,
			Description: redact.String(opts.SettingsErr.Error()) + "; using defaults",
		})
	}

	// 1. Credentials file.
	credentials := EnsureCredentials(opts.WorkDir, opts.APIKey, opts.DeploymentID)
	result.CredentialsCreated = credentials.Operation == Created
	result.MissingCredentials = MissingCredentials(opts.WorkDir)
	result.add(credentials)

	// 2. Keep credentials out of git.
	if settings.GitignoreEnabled() {
		result.add(EnsureGitignore(opts.WorkDir))
	}

	// 3. Workflow directories.
	for _, a := range EnsureDirectories(opts.WorkDir) {
		result.add(a)
	}
	if !opts.NoSamples {
		result.add(EnsureSample(opts.WorkDir))
	}

	// 4. Editor integration config.
	editor := ConfigureEditor(opts.WorkDir, opts.HomeDir, settings)
	result.EditorConfigPath = editor.Path
	result.ManualConfig = editor.Manual
	result.Snippet = editor.Snippet
	result.add(editor.Action)

	return result
}
