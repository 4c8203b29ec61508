// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package setup

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/envfile"
	"github.com/nenai/mcp-quickstart/internal/gitignore"
	"github.com/nenai/mcp-quickstart/internal/mcpconfig"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// newDirs returns a fresh working directory and home directory and stubs
// out git discovery so tests never see an enclosing repository.
func newDirs(t *testing.T) (work, home string) {
	t.Helper()
	old := gitignore.Opener
	gitignore.Opener = &testable.MockGitOpener{}
	t.Cleanup(func() { gitignore.Opener = old })
	return t.TempDir(), t.TempDir()
}

func actionFor(t *testing.T, r *Result, file string) Action {
	t.Helper()
	for _, a := range r.Actions {
		if a.File == file {
			return a
		}
	}
	t.Fatalf("no action for %s in %+v", file, r.Actions)
	return Action{}
}

func TestRun_FreshDirectory(t *testing.T) {
	work, home := newDirs(t)

	result := Run(Options{WorkDir: work, HomeDir: home})
	require.False(t, result.Failed(), "%+v", result.Actions)

	// Credentials file with both keys unset.
	data, err := os.ReadFile(filepath.Join(work, ".env")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, envfile.Keys, envfile.Missing(string(data)))
	assert.True(t, result.CredentialsCreated)
	assert.Equal(t, envfile.Keys, result.MissingCredentials)

	// Directories.
	for _, d := range []string{"workflows", "workflows/my_workflows", "workflows/samples"} {
		assert.DirExists(t, filepath.Join(work, filepath.FromSlash(d)))
		assert.Equal(t, Created, actionFor(t, result, d).Operation)
	}
	assert.FileExists(t, filepath.Join(work, "workflows", "samples", "sample-workflow.py"))

	// Editor config with the nen entry pointing at the working directory.
	cfgPath := filepath.Join(home, ".cursor", "mcp.json")
	assert.Equal(t, cfgPath, result.EditorConfigPath)
	assert.False(t, result.ManualConfig)

	raw, err := os.ReadFile(cfgPath) //nolint:gosec // test path
	require.NoError(t, err)
	var doc struct {
		MCPServers map[string]mcpconfig.ServerEntry `json:"mcpServers"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.MCPServers, 1)
	assert.Equal(t, mcpconfig.ServerEntry{
		Command: "npx",
		Args:    []string{"@nen/mcp-server"},
		Cwd:     work,
	}, doc.MCPServers["nen"])
}

func TestRun_Idempotent(t *testing.T) {
	work, home := newDirs(t)

	Run(Options{WorkDir: work, HomeDir: home})
	envBefore, err := os.ReadFile(filepath.Join(work, ".env")) //nolint:gosec // test path
	require.NoError(t, err)
	cfgBefore, err := os.ReadFile(filepath.Join(home, ".cursor", "mcp.json")) //nolint:gosec // test path
	require.NoError(t, err)

	second := Run(Options{WorkDir: work, HomeDir: home, APIKey: "ignored-on-rerun"})
	for _, a := range second.Actions {
		assert.Equal(t, Skipped, a.Operation, "%s should be skipped on rerun", a.File)
	}
	assert.False(t, second.CredentialsCreated)
	assert.False(t, second.ManualConfig)

	envAfter, err := os.ReadFile(filepath.Join(work, ".env")) //nolint:gosec // test path
	require.NoError(t, err)
	cfgAfter, err := os.ReadFile(filepath.Join(home, ".cursor", "mcp.json")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, envBefore, envAfter)
	assert.Equal(t, cfgBefore, cfgAfter)
}

func TestRun_NeverOverwritesCredentials(t *testing.T) {
	work, home := newDirs(t)
	existing := "NEN_API_KEY=mine\nNEN_DEPLOYMENT_ID=dep\n"
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte(existing), 0o600))

	result := Run(Options{WorkDir: work, HomeDir: home, APIKey: "other"})
	assert.Equal(t, Skipped, actionFor(t, result, ".env").Operation)
	assert.Empty(t, result.MissingCredentials)

	data, err := os.ReadFile(filepath.Join(work, ".env")) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))
}

func TestRun_SeedsCredentials(t *testing.T) {
	work, home := newDirs(t)

	result := Run(Options{WorkDir: work, HomeDir: home, APIKey: "sk-test-1234", DeploymentID: "dep-9"})
	a := actionFor(t, result, ".env")
	assert.Equal(t, Created, a.Operation)
	assert.Equal(t, "created with the supplied credentials", a.Description)
	assert.Empty(t, result.MissingCredentials)
}

func TestRun_UnrelatedServerLeftUntouched(t *testing.T) {
	work, home := newDirs(t)
	cfgPath := filepath.Join(home, ".cursor", "mcp.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o750))
	existing := `{"mcpServers": {"github": {"command": "gh-mcp", "args": [], "cwd": "/src"}}, "theme": "dark"}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(existing), 0o600))

	result := Run(Options{WorkDir: work, HomeDir: home})
	assert.True(t, result.ManualConfig)
	assert.Contains(t, string(result.Snippet), `"nen"`)
	assert.Contains(t, string(result.Snippet), work)
	assert.Equal(t, Manual, actionFor(t, result, "~"+string(filepath.Separator)+filepath.Join(".cursor", "mcp.json")).Operation)

	data, err := os.ReadFile(cfgPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, existing, string(data), "existing config must not be modified")
}

func TestRun_InvalidConfigFlagsManual(t *testing.T) {
	work, home := newDirs(t)
	cfgPath := filepath.Join(home, ".cursor", "mcp.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o750))
	require.NoError(t, os.WriteFile(cfgPath, []byte("{ trailing, }"), 0o600))

	result := Run(Options{WorkDir: work, HomeDir: home})
	assert.True(t, result.ManualConfig)
	assert.False(t, result.Failed())

	data, err := os.ReadFile(cfgPath) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "{ trailing, }", string(data))
}

func TestRun_ExistingEntryOfAnyShapeCountsAsConfigured(t *testing.T) {
	work, home := newDirs(t)
	cfgPath := filepath.Join(home, ".cursor", "mcp.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0o750))
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"mcpServers": {"nen": {"command": "npx"}}}`), 0o600))

	result := Run(Options{WorkDir: work, HomeDir: home})
	assert.False(t, result.ManualConfig)
	assert.Nil(t, result.Snippet)
}

func TestRun_CustomSettings(t *testing.T) {
	work, home := newDirs(t)
	settings := config.Merge(config.Defaults(), &config.Config{
		EditorConfig: "~/editor/mcp.json",
		Server:       config.ServerConfig{Name: "nen-dev", Args: []string{"@nen/mcp-server@next"}},
	})

	result := Run(Options{WorkDir: work, HomeDir: home, Settings: settings, NoSamples: true})
	require.False(t, result.Failed(), "%+v", result.Actions)
	assert.Equal(t, filepath.Join(home, "editor", "mcp.json"), result.EditorConfigPath)

	raw, err := os.ReadFile(result.EditorConfigPath) //nolint:gosec // test path
	require.NoError(t, err)
	cfg, err := mcpconfig.Parse(raw)
	require.NoError(t, err)
	assert.True(t, cfg.Has("nen-dev"))

	assert.NoFileExists(t, filepath.Join(work, "workflows", "samples", "sample-workflow.py"))
}

func TestRun_GitignoreDisabled(t *testing.T) {
	work, home := newDirs(t)
	opener := &testable.MockGitOpener{}
	gitignore.Opener = opener

	off := false
	settings := config.Merge(config.Defaults(), &config.Config{Gitignore: &off})
	result := Run(Options{WorkDir: work, HomeDir: home, Settings: settings})

	assert.Empty(t, opener.OpenCalls)
	for _, a := range result.Actions {
		assert.NotEqual(t, ".gitignore", a.File)
	}
}

func TestRun_SettingsErrorIsRecordedAndSetupContinues(t *testing.T) {
	work, home := newDirs(t)

	result := Run(Options{
		WorkDir:     work,
		HomeDir:     home,
		SettingsErr: errors.New("parsing /w/.nen-quickstart.yaml: yaml: line 1: did not find expected ',' or ']'"),
	})

	require.NotEmpty(t, result.Actions)
	first := result.Actions[0]
	assert.Equal(t, "settings", first.File)
	assert.Equal(t, Failed, first.Operation)
	assert.Contains(t, first.Description, "using defaults")
	assert.True(t, result.Failed())

	assert.FileExists(t, filepath.Join(work, ".env"))
	assert.FileExists(t, filepath.Join(home, ".cursor", "mcp.json"))
}
