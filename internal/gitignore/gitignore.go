// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package gitignore keeps the credentials file out of version control. It
// locates the repository enclosing the working directory with go-git and
// evaluates the repository's .gitignore patterns against the file.
package gitignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	gi "github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/nenai/mcp-quickstart/internal/testable"
)

// Opener locates repositories. Override in tests with a testable.MockGitOpener.
var Opener testable.GitOpener = testable.DefaultGitOpener

// FS is the file system used to update .gitignore.
var FS testable.FileSystem = testable.DefaultFS

// Status is the outcome of Check.
type Status struct {
	// InRepo is false when the working directory is not inside a git
	// working tree; the other fields are then zero.
	InRepo bool
	// Root is the working tree root.
	Root string
	// Path is the file's slash-separated path relative to Root.
	Path string
	// Ignored reports whether the file matches an ignore pattern.
	Ignored bool
}

// Check reports whether name (relative to workDir) is ignored by the
// repository enclosing workDir.
func Check(workDir, name string) (Status, error) {
	repo, err := Opener.Open(workDir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("opening git repository: %w", err)
	}

	root := repo.Root()
	rel, ok := relativeTo(root, filepath.Join(workDir, name))
	if !ok {
		return Status{}, nil
	}

	patterns, err := repo.IgnorePatterns()
	if err != nil {
		return Status{}, fmt.Errorf("reading .gitignore patterns: %w", err)
	}

	parts := strings.Split(rel, "/")
	return Status{
		InRepo:  true,
		Root:    root,
		Path:    rel,
		Ignored: gi.NewMatcher(patterns).Match(parts, false),
	}, nil
}

// Outcome describes what Ensure did.
type Outcome string

// Ensure outcomes.
const (
	Created Outcome = "created"
	Updated Outcome = "updated"
	Skipped Outcome = "skipped"
)

// Ensure appends name to the .gitignore in workDir when the enclosing
// repository does not already ignore it. The repository root .gitignore is
// left untouched. Outside a repository it does nothing. The returned detail is a human-readable reason.
func Ensure(workDir, name string) (Outcome, string, error) {
	st, err := Check(workDir, name)
	if err != nil {
		return "", "", err
	}
	if !st.InRepo {
		return Skipped, "not a git repository", nil
	}
	if st.Ignored {
		return Skipped, st.Path + " already ignored", nil
	}

	entry := filepath.ToSlash(name)
	path := filepath.Join(workDir, ".gitignore")
	existing, err := FS.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", "", fmt.Errorf("reading .gitignore: %w", err)
	}

	if errors.Is(err, os.ErrNotExist) {
		if writeErr := FS.WriteFile(path, []byte(entry+"\n"), 0o644); writeErr != nil { //nolint:gosec // .gitignore is world-readable by convention
			return "", "", fmt.Errorf("creating .gitignore: %w", writeErr)
		}
		return Created, "ignores " + entry, nil
	}

	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"
	if writeErr := FS.WriteFile(path, []byte(content), 0o644); writeErr != nil { //nolint:gosec // .gitignore is world-readable by convention
		return "", "", fmt.Errorf("updating .gitignore: %w", writeErr)
	}
	return Updated, "added " + entry, nil
}

// relativeTo returns target relative to root in slash form. ok is false when
// target is outside root. Symlinks are resolved on both sides where
// possible so /var and /private/var style aliases compare equal.
func relativeTo(root, target string) (string, bool) {
	root = resolve(root)
	dir := resolve(filepath.Dir(target))
	rel, err := filepath.Rel(root, filepath.Join(dir, filepath.Base(target)))
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

func resolve(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		return r
	}
	return p
}
