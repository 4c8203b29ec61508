// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitOpener abstracts locating the git repository that contains a path.
// Production code uses RealGitOpener; tests inject a mock.
type GitOpener interface {
	// Open finds the repository enclosing path, walking up parent
	// directories. It returns git.ErrRepositoryNotExists when there is none.
	Open(path string) (GitRepository, error)
}

// GitRepository is the subset of repository behavior the credentials
// hygiene check needs.
type GitRepository interface {
	// Root returns the absolute path of the working tree.
	Root() string

	// IgnorePatterns returns every .gitignore pattern in the working tree,
	// including nested .gitignore files.
	IgnorePatterns() ([]gitignore.Pattern, error)
}

// RealGitOpener delegates to git.PlainOpenWithOptions.
type RealGitOpener struct{}

// Open opens the repository enclosing path.
func (RealGitOpener) Open(path string) (GitRepository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &RealGitRepository{root: wt.Filesystem.Root()}, nil
}

// RealGitRepository is a working tree on the local disk.
type RealGitRepository struct {
	root string
}

// Root returns the working tree root.
func (r *RealGitRepository) Root() string {
	return r.root
}

// IgnorePatterns reads .gitignore files below the working tree root.
func (r *RealGitRepository) IgnorePatterns() ([]gitignore.Pattern, error) {
	return gitignore.ReadPatterns(osfs.New(r.root), nil)
}

// DefaultGitOpener is the production GitOpener used as default.
var DefaultGitOpener GitOpener = RealGitOpener{}

// Compile-time interface checks.
var _ GitOpener = RealGitOpener{}
var _ GitRepository = (*RealGitRepository)(nil)
