// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package setup

import (
	"fmt"
	"path/filepath"

	"github.com/nenai/mcp-quickstart/internal/envfile"
	"github.com/nenai/mcp-quickstart/internal/gitignore"
	"github.com/nenai/mcp-quickstart/internal/redact"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// EnsureCredentials writes the credentials template when no credentials
// file exists. An existing file is never touched.
func EnsureCredentials(workDir, apiKey, deploymentID string) Action {
	path := filepath.Join(workDir, envfile.FileName)
	if testable.Exists(FS, path) {
		return Action{
			File:        envfile.FileName,
			Operation:   Skipped,
			Description: "already exists",
		}
	}

	redact.Register(apiKey)
	content := envfile.Template(apiKey, deploymentID)
	if err := FS.WriteFile(path, content, 0o600); err != nil {
		return Action{
			File:        envfile.FileName,
			Operation:   Failed,
			Description: redact.String(fmt.Sprintf("writing %s: %v", envfile.FileName, err)),
		}
	}

	desc := "edit it and add your " + envfile.KeyAPIKey + " and " + envfile.KeyDeploymentID
	if missing := envfile.Missing(string(content)); len(missing) == 0 {
		desc = "created with the supplied credentials"
	} else if len(missing) == 1 {
		desc = "edit it and add your " + missing[0]
	}
	return Action{
		File:        envfile.FileName,
		Operation:   Created,
		Description: desc,
	}
}

// EnsureGitignore makes sure the credentials file is git-ignored when the
// working directory is inside a git repository.
func EnsureGitignore(workDir string) Action {
	outcome, detail, err := gitignore.Ensure(workDir, envfile.FileName)
	if err != nil {
		return Action{File: ".gitignore", Operation: Failed, Description: err.Error()}
	}
	return Action{File: ".gitignore", Operation: Operation(outcome), Description: detail}
}

// MissingCredentials returns the recognized keys that are empty in the
// credentials file. An unreadable file counts as missing every key.
func MissingCredentials(workDir string) []string {
	data, err := FS.ReadFile(filepath.Join(workDir, envfile.FileName))
	if err != nil {
		return append([]string(nil), envfile.Keys...)
	}
	redact.Register(envfile.Value(string(data), envfile.KeyAPIKey))
	return envfile.Missing(string(data))
}
