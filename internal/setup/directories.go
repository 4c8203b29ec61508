// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package setup

import (
	"fmt"
	"path/filepath"

	"github.com/nenai/mcp-quickstart/internal/testable"
	"github.com/nenai/mcp-quickstart/internal/workflows"
)

// EnsureDirectories creates each workflow directory, with parents, when it
// is missing. One action is recorded per directory.
func EnsureDirectories(workDir string) []Action {
	actions := make([]Action, 0, len(workflows.Dirs))
	for _, dir := range workflows.Dirs {
		path := filepath.Join(workDir, filepath.FromSlash(dir))
		if testable.Exists(FS, path) {
			actions = append(actions, Action{File: dir, Operation: Skipped, Description: "already exists"})
			continue
		}
		if err := FS.MkdirAll(path, 0o755); err != nil { //nolint:gosec // project directory
			actions = append(actions, Action{
				File:        dir,
				Operation:   Failed,
				Description: fmt.Sprintf("creating directory: %v", err),
			})
			continue
		}
		actions = append(actions, Action{File: dir, Operation: Created, Description: "directory"})
	}
	return actions
}

// EnsureSample drops the bundled sample workflow into workflows/samples when
// it is not there yet.
func EnsureSample(workDir string) Action {
	rel := workflows.SamplesDir + "/" + workflows.SampleFile
	path := workflows.SamplePath(workDir)
	if testable.Exists(FS, path) {
		return Action{File: rel, Operation: Skipped, Description: "already exists"}
	}
	if err := FS.WriteFile(path, workflows.Sample(), 0o644); err != nil { //nolint:gosec // source file
		return Action{File: rel, Operation: Failed, Description: fmt.Sprintf("writing sample: %v", err)}
	}
	return Action{File: rel, Operation: Created, Description: "sample workflow"}
}
