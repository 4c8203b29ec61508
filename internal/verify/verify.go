// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package verify implements `nen-quickstart verify`. It runs a fixed,
// ordered list of independent checks against the runtime environment and the
// artifacts created by setup, and collects them into a Report. Checks never
// stop the run: every check executes even after an earlier one fails.
package verify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// Status is the outcome of a single check.
type Status string

// Check statuses. Error is fatal to the run; Warn is advisory.
const (
	Pass  Status = "pass"
	Warn  Status = "warn"
	Error Status = "error"
	Skip  Status = "skip"
)

// Check is the result of one verification step.
type Check struct {
	Name    string   `json:"name"`
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	// Fix is a one-line remediation hint for warnings and errors.
	Fix string `json:"fix,omitempty"`
}

// Report collects every check in execution order.
type Report struct {
	Checks []Check
}

// HasErrors reports whether any check failed fatally.
func (r *Report) HasErrors() bool {
	return r.any(Error)
}

// HasWarnings reports whether any check produced an advisory warning.
func (r *Report) HasWarnings() bool {
	return r.any(Warn)
}

func (r *Report) any(s Status) bool {
	for _, c := range r.Checks {
		if c.Status == s {
			return true
		}
	}
	return false
}

// Remediation returns the distinct fix hints of all non-passing checks, in
// check order.
func (r *Report) Remediation() []string {
	var fixes []string
	seen := make(map[string]bool)
	for _, c := range r.Checks {
		if c.Status != Warn && c.Status != Error {
			continue
		}
		if c.Fix == "" || seen[c.Fix] {
			continue
		}
		seen[c.Fix] = true
		fixes = append(fixes, c.Fix)
	}
	return fixes
}

// MarshalJSON renders the report with its summary flags.
func (r *Report) MarshalJSON() ([]byte, error) {
	checks := r.Checks
	if checks == nil {
		checks = []Check{}
	}
	return json.Marshal(struct {
		Checks      []Check `json:"checks"`
		HasErrors   bool    `json:"has_errors"`
		HasWarnings bool    `json:"has_warnings"`
	}{checks, r.HasErrors(), r.HasWarnings()})
}

func (r *Report) add(c Check) {
	slog.Debug("verify check", "name", c.Name, "status", string(c.Status), "message", c.Message)
	r.Checks = append(r.Checks, c)
}

// Env holds everything the checks read. Zero-value Executor and FS fall back
// to the real implementations; nil Settings means defaults.
type Env struct {
	WorkDir  string
	HomeDir  string
	Settings *config.Config
	Executor testable.CommandExecutor
	FS       testable.FileSystem

	// SettingsErr is the error from loading the settings files, if any.
	// It is reported as a warning; Settings then holds the defaults.
	SettingsErr error

	// Prober, when set, adds the MCP handshake check at the end.
	Prober Prober
}

func (e Env) normalized() Env {
	if e.Settings == nil {
		e.Settings = config.Defaults()
	}
	if e.Executor == nil {
		e.Executor = testable.DefaultExecutor()
	}
	if e.FS == nil {
		e.FS = testable.DefaultFS
	}
	return e
}

// Run executes every check in order and returns the report.
func Run(ctx context.Context, env Env) *Report {
	env = env.normalized()
	r := &Report{}

	r.add(CheckRuntime(ctx, env))
	r.add(CheckPackageManager(ctx, env))
	r.add(CheckCredentials(env))
	r.add(CheckWorkflowDir(env))
	r.add(CheckServerInstall(ctx, env))
	r.add(CheckEditorConfig(env))
	if env.Settings.GitignoreEnabled() {
		r.add(CheckCredentialsIgnored(env))
	}
	if env.Prober != nil {
		r.add(CheckHandshake(ctx, env))
	}
	if env.SettingsErr != nil {
		r.add(CheckSettings(env))
	}
	return r
}
