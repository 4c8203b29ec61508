// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// MockGitOpener is a test double for GitOpener. If Repo is nil and OpenErr
// is nil, Open reports git.ErrRepositoryNotExists.
type MockGitOpener struct {
	Repo    GitRepository
	OpenErr error

	// OpenCalls records the paths passed to Open.
	OpenCalls []string
}

// Open records the call and returns Repo or OpenErr.
func (m *MockGitOpener) Open(path string) (GitRepository, error) {
	m.OpenCalls = append(m.OpenCalls, path)
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if m.Repo != nil {
		return m.Repo, nil
	}
	return nil, git.ErrRepositoryNotExists
}

// MockGitRepository is a test double for GitRepository. Patterns are parsed
// from Lines as if they came from the root .gitignore.
type MockGitRepository struct {
	RootDir     string
	Lines       []string
	PatternsErr error
}

// Root returns RootDir.
func (m *MockGitRepository) Root() string {
	return m.RootDir
}

// IgnorePatterns parses Lines, or returns PatternsErr when set.
func (m *MockGitRepository) IgnorePatterns() ([]gitignore.Pattern, error) {
	if m.PatternsErr != nil {
		return nil, m.PatternsErr
	}
	ps := make([]gitignore.Pattern, 0, len(m.Lines))
	for _, l := range m.Lines {
		ps = append(ps, gitignore.ParsePattern(l, nil))
	}
	return ps, nil
}

// Compile-time interface checks.
var _ GitOpener = (*MockGitOpener)(nil)
var _ GitRepository = (*MockGitRepository)(nil)
