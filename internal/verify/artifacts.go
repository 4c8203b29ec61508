// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nenai/mcp-quickstart/internal/envfile"
	"github.com/nenai/mcp-quickstart/internal/gitignore"
	"github.com/nenai/mcp-quickstart/internal/mcpconfig"
	"github.com/nenai/mcp-quickstart/internal/redact"
	"github.com/nenai/mcp-quickstart/internal/testable"
	"github.com/nenai/mcp-quickstart/internal/workflows"
)

// CheckCredentials requires the credentials file and warns once per
// recognized key that is missing or empty.
func CheckCredentials(env Env) Check {
	env = env.normalized()
	c := Check{Name: NameCredentials}

	data, err := env.FS.ReadFile(filepath.Join(env.WorkDir, envfile.FileName))
	if err != nil {
		c.Status = Error
		c.Message = envfile.FileName + " file not found"
		if !errors.Is(err, os.ErrNotExist) {
			c.Message = fmt.Sprintf("cannot read %s", envfile.FileName)
			c.Details = []string{redact.String(err.Error())}
		}
		c.Fix = "Run setup to create " + envfile.FileName
		return c
	}

	content := string(data)
	redact.Register(envfile.Value(content, envfile.KeyAPIKey))

	missing := envfile.Missing(content)
	if len(missing) == 0 {
		c.Status = Pass
		c.Message = envfile.FileName + " file exists with credentials"
		return c
	}

	c.Status = Warn
	c.Message = envfile.FileName + " file exists but missing credentials"
	for _, k := range missing {
		c.Details = append(c.Details, k+" is empty")
	}
	c.Fix = fmt.Sprintf("Add your %s to %s", strings.Join(missing, " and "), envfile.FileName)
	return c
}

// CheckWorkflowDir warns when the custom workflow directory is missing.
func CheckWorkflowDir(env Env) Check {
	env = env.normalized()
	c := Check{Name: NameWorkflowDir}
	if testable.Exists(env.FS, filepath.Join(env.WorkDir, filepath.FromSlash(workflows.CustomDir))) {
		c.Status = Pass
		c.Message = workflows.CustomDir + " directory exists"
		return c
	}
	c.Status = Warn
	c.Message = workflows.CustomDir + " directory not found"
	c.Fix = "Run setup to create " + workflows.CustomDir
	return c
}

// CheckEditorConfig inspects the editor integration config: it must exist,
// parse, hold the server entry, and point the entry at the working
// directory. Every failure is a warning.
func CheckEditorConfig(env Env) Check {
	env = env.normalized()
	name := env.Settings.Server.Name
	path := env.Settings.EditorConfigPath(env.HomeDir)
	c := Check{Name: NameEditorConfig, Status: Warn}
	fix := fmt.Sprintf("Add the %q server entry to %s", name, path)

	data, err := env.FS.ReadFile(path)
	if err != nil {
		c.Message = "Cursor MCP config not found at " + path
		if !errors.Is(err, os.ErrNotExist) {
			c.Message = "cannot read Cursor MCP config at " + path
			c.Details = []string{err.Error()}
		}
		c.Fix = fix
		return c
	}

	cfg, err := mcpconfig.Parse(data)
	if err != nil {
		c.Message = "Cursor MCP config exists but has invalid JSON"
		c.Details = []string{err.Error()}
		c.Fix = "Fix the JSON in " + path
		return c
	}

	if !cfg.Has(name) {
		c.Message = fmt.Sprintf("Cursor MCP config exists but missing %q server", name)
		c.Fix = fix
		return c
	}

	cwd, _ := cfg.Cwd(name)
	if cwd != env.WorkDir {
		c.Message = "Cursor MCP config exists but cwd mismatch"
		c.Details = []string{
			"Config: " + cwd,
			"Current: " + env.WorkDir,
		}
		c.Fix = fmt.Sprintf("Set mcpServers.%s.cwd in %s to %s", name, path, env.WorkDir)
		return c
	}

	c.Status = Pass
	c.Message = "Cursor MCP config exists and points to this directory"
	return c
}

// CheckCredentialsIgnored warns when the working directory is inside a git
// repository that does not ignore the credentials file.
func CheckCredentialsIgnored(env Env) Check {
	env = env.normalized()
	c := Check{Name: NameGitignore}

	st, err := gitignore.Check(env.WorkDir, envfile.FileName)
	switch {
	case err != nil:
		c.Status = Warn
		c.Message = "cannot tell whether " + envfile.FileName + " is git-ignored"
		c.Details = []string{err.Error()}
		c.Fix = "Make sure " + envfile.FileName + " is listed in .gitignore"
	case !st.InRepo:
		c.Status = Skip
		c.Message = "not a git repository"
	case st.Ignored:
		c.Status = Pass
		c.Message = envfile.FileName + " is git-ignored"
	default:
		c.Status = Warn
		c.Message = envfile.FileName + " is not git-ignored and may be committed"
		c.Details = []string{"Repository: " + st.Root}
		c.Fix = fmt.Sprintf("Add %s to %s", envfile.FileName, filepath.Join(env.WorkDir, ".gitignore"))
	}
	return c
}

// CheckSettings reports a settings file that could not be loaded. The run
// continues with the built-in defaults.
func CheckSettings(env Env) Check {
	c := Check{Name: NameSettings}
	if env.SettingsErr == nil {
		c.Status = Pass
		c.Message = "settings loaded"
		return c
	}
	c.Status = Warn
	c.Message = "settings file is invalid; using built-in defaults"
	c.Details = []string{redact.String(env.SettingsErr.Error())}
	c.Fix = "Fix or remove the settings file (see `nen-quickstart config path`)"
	return c
}
