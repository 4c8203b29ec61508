// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package setup

import (
	"fmt"
	"strings"

	"github.com/nenai/mcp-quickstart/internal/envfile"
)

// Step is one numbered next-step line. Snippet, when set, is printed
// verbatim below the line.
type Step struct {
	Text    string
	Snippet []byte
}

// NextSteps builds the follow-up checklist for a setup result. The editor
// step only appears when the integration config needs a manual edit.
func NextSteps(r *Result, serverName, verifyCommand string) []Step {
	var steps []Step

	if len(r.MissingCredentials) > 0 {
		steps = append(steps, Step{Text: fmt.Sprintf("Add your %s to %s",
			strings.Join(r.MissingCredentials, " and "), envfile.FileName)})
	}

	if r.ManualConfig {
		steps = append(steps, Step{
			Text:    fmt.Sprintf("Add the %q server entry to %s:", serverName, r.EditorConfigPath),
			Snippet: r.Snippet,
		})
	}

	steps = append(steps,
		Step{Text: "Restart Cursor"},
		Step{Text: `Ask the AI: "Use list_runs to verify the MCP server is working"`},
		Step{Text: fmt.Sprintf("Run %q to check your setup", verifyCommand)},
	)
	return steps
}
