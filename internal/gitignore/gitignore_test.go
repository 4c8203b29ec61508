// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package gitignore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nenai/mcp-quickstart/internal/testable"
)

func useOpener(t *testing.T, o testable.GitOpener) {
	t.Helper()
	old := Opener
	Opener = o
	t.Cleanup(func() { Opener = old })
}

func TestCheck_NotARepo(t *testing.T) {
	useOpener(t, &testable.MockGitOpener{})

	st, err := Check(t.TempDir(), ".env")
	require.NoError(t, err)
	assert.False(t, st.InRepo)
}

func TestCheck_OpenError(t *testing.T) {
	useOpener(t, &testable.MockGitOpener{OpenErr: errors.New("corrupt index")})

	_, err := Check(t.TempDir(), ".env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt index")
}

func TestCheck_Ignored(t *testing.T) {
	dir := t.TempDir()
	useOpener(t, &testable.MockGitOpener{Repo: &testable.MockGitRepository{
		RootDir: dir,
		Lines:   []string{"node_modules/", ".env"},
	}})

	st, err := Check(dir, ".env")
	require.NoError(t, err)
	assert.True(t, st.InRepo)
	assert.True(t, st.Ignored)
	assert.Equal(t, ".env", st.Path)
}

func TestCheck_Subdirectory(t *testing.T) {
	root := t.TempDir()
	work := filepath.Join(root, "quickstart")
	require.NoError(t, os.Mkdir(work, 0o750))

	useOpener(t, &testable.MockGitOpener{Repo: &testable.MockGitRepository{
		RootDir: root,
		Lines:   []string{"*.log"},
	}})

	st, err := Check(work, ".env")
	require.NoError(t, err)
	assert.True(t, st.InRepo)
	assert.False(t, st.Ignored)
	assert.Equal(t, "quickstart/.env", st.Path)
}

func TestEnsure_NotARepo(t *testing.T) {
	useOpener(t, &testable.MockGitOpener{})

	outcome, detail, err := Ensure(t.TempDir(), ".env")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.Equal(t, "not a git repository", detail)
}

func TestEnsure_AppendsToRealRepo(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules/"), 0o600))

	outcome, _, err := Ensure(dir, ".env")
	require.NoError(t, err)
	assert.Equal(t, Updated, outcome)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "node_modules/\n.env\n", string(data))

	// Second run sees the pattern and leaves the file alone.
	outcome, detail, err := Ensure(dir, ".env")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
	assert.Contains(t, detail, "already ignored")
}

func TestEnsure_CreatesGitignore(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	outcome, _, err := Ensure(dir, ".env")
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))
}

func TestEnsure_WritesInsideWorkDirNotRepoRoot(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)
	rootIgnore := []byte("*.log\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), rootIgnore, 0o600))
	work := filepath.Join(root, "projects", "quickstart")
	require.NoError(t, os.MkdirAll(work, 0o750))

	outcome, detail, err := Ensure(work, ".env")
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)
	assert.Equal(t, "ignores .env", detail)

	data, err := os.ReadFile(filepath.Join(work, ".gitignore")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, ".env\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, ".gitignore")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, rootIgnore, data)

	st, err := Check(work, ".env")
	require.NoError(t, err)
	assert.True(t, st.Ignored)
	assert.Equal(t, "projects/quickstart/.env", st.Path)

	outcome, _, err = Ensure(work, ".env")
	require.NoError(t, err)
	assert.Equal(t, Skipped, outcome)
}

func TestEnsure_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	useOpener(t, &testable.MockGitOpener{Repo: &testable.MockGitRepository{RootDir: dir}})

	oldFS := FS
	defer func() { FS = oldFS }()
	FS = &testable.MockFileSystem{
		ReadFileFn: func(_ string) ([]byte, error) { return nil, os.ErrNotExist },
		WriteFileFn: func(_ string, _ []byte, _ os.FileMode) error {
			return os.ErrPermission
		},
	}

	_, _, err := Ensure(dir, ".env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating .gitignore")
}
