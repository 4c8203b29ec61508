// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package setup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/mcpconfig"
)

// EditorOutcome is the result of ConfigureEditor.
type EditorOutcome struct {
	Action  Action
	Path    string
	Manual  bool
	Snippet []byte
}

// Entry returns the MCP server entry setup writes for workDir.
func Entry(workDir string, settings *config.Config) mcpconfig.ServerEntry {
	return mcpconfig.ServerEntry{
		Command: settings.Server.Command,
		Args:    append([]string(nil), settings.Server.Args...),
		Cwd:     workDir,
	}
}

// ConfigureEditor creates the editor integration config when it is absent.
// An existing config is only inspected: if it already has the server entry
// it is left as is, whatever the entry's shape; otherwise, or if it does
// not parse, the outcome asks for a manual edit and carries the snippet.
func ConfigureEditor(workDir, homeDir string, settings *config.Config) EditorOutcome {
	name := settings.Server.Name
	path := settings.EditorConfigPath(homeDir)
	out := EditorOutcome{Path: path}
	label := displayPath(path, homeDir)

	snippet, err := mcpconfig.Marshal(name, Entry(workDir, settings))
	if err != nil {
		out.Action = Action{File: label, Operation: Failed, Description: err.Error()}
		return out
	}

	existing, err := FS.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if mkErr := FS.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil { //nolint:gosec // editor config directory
			out.Action = Action{File: label, Operation: Failed, Description: fmt.Sprintf("creating %s: %v", filepath.Dir(path), mkErr)}
			out.Manual, out.Snippet = true, snippet
			return out
		}
		if wErr := FS.WriteFile(path, snippet, 0o644); wErr != nil { //nolint:gosec // editor reads it
			out.Action = Action{File: label, Operation: Failed, Description: fmt.Sprintf("writing config: %v", wErr)}
			out.Manual, out.Snippet = true, snippet
			return out
		}
		out.Action = Action{File: label, Operation: Created, Description: fmt.Sprintf("with %q server entry", name)}
		return out

	case err != nil:
		out.Action = Action{File: label, Operation: Failed, Description: fmt.Sprintf("reading config: %v", err)}
		out.Manual, out.Snippet = true, snippet
		return out
	}

	cfg, err := mcpconfig.Parse(existing)
	if err != nil {
		out.Action = Action{File: label, Operation: Manual, Description: "exists but is not valid JSON; add the entry by hand"}
		out.Manual, out.Snippet = true, snippet
		return out
	}

	if cfg.Has(name) {
		out.Action = Action{File: label, Operation: Skipped, Description: fmt.Sprintf("%q server already configured", name)}
		return out
	}

	out.Action = Action{File: label, Operation: Manual, Description: fmt.Sprintf("exists without a %q server; add the entry by hand", name)}
	out.Manual, out.Snippet = true, snippet
	return out
}

// displayPath shortens paths under home to ~/... for reports.
func displayPath(path, home string) string {
	if home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "~" + string(filepath.Separator) + rel
}
