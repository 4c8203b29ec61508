// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/nenai/mcp-quickstart/internal/testable"
)

// Check names.
const (
	NameRuntime        = "runtime"
	NamePackageManager = "package-manager"
	NameCredentials    = "credentials"
	NameWorkflowDir    = "workflow-directory"
	NameServerInstall  = "server-install"
	NameEditorConfig   = "editor-config"
	NameGitignore      = "credentials-ignored"
	NameHandshake      = "mcp-handshake"
	NameSettings       = "settings"
)

// CheckRuntime runs `<runtime> --version` and requires the configured
// minimum major version.
func CheckRuntime(ctx context.Context, env Env) Check {
	env = env.normalized()
	bin := env.Settings.Runtime.Command
	minMajor := env.Settings.Runtime.MinMajor
	c := Check{Name: NameRuntime}

	out, failed := runVersion(ctx, env, bin, &c)
	if failed {
		c.Fix = fmt.Sprintf("Install %s %d or newer", bin, minMajor)
		return c
	}

	major, ok := MajorVersion(out)
	if !ok {
		c.Status = Error
		c.Message = fmt.Sprintf("cannot parse %s version %q", bin, out)
		c.Fix = fmt.Sprintf("Install %s %d or newer", bin, minMajor)
		return c
	}
	if major < minMajor {
		c.Status = Error
		c.Message = fmt.Sprintf("%s %s is too old. Need >= %d.0.0", bin, out, minMajor)
		c.Fix = fmt.Sprintf("Upgrade %s to %d or newer", bin, minMajor)
		return c
	}

	c.Status = Pass
	c.Message = fmt.Sprintf("%s %s (>= %d.0.0)", bin, out, minMajor)
	return c
}

// runVersion looks bin up on PATH and runs `bin --version`. On failure it
// marks c as an error, telling a missing binary apart from one that exits
// non-zero, and reports failed.
func runVersion(ctx context.Context, env Env, bin string, c *Check) (out string, failed bool) {
	path, err := env.Executor.LookPath(bin)
	if err != nil {
		c.Status = Error
		c.Message = bin + " not found"
		c.Details = []string{err.Error()}
		return "", true
	}

	out, err = testable.Output(ctx, env.Executor, bin, "--version")
	if err != nil {
		c.Status = Error
		c.Message = bin + " --version failed"
		c.Details = []string{path + ": " + err.Error()}
		return "", true
	}
	return out, false
}

// MajorVersion extracts the major version from output such as "v20.11.1"
// or "20.11.1".
func MajorVersion(out string) (int, bool) {
	v := strings.TrimSpace(out)
	if i := strings.IndexAny(v, " \t\n"); i >= 0 {
		v = v[:i]
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(semver.Major(v), "v"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckPackageManager runs `<package manager> --version`.
func CheckPackageManager(ctx context.Context, env Env) Check {
	env = env.normalized()
	bin := env.Settings.PackageManager.Command
	c := Check{Name: NamePackageManager}

	out, failed := runVersion(ctx, env, bin, &c)
	if failed {
		c.Fix = "Install " + bin
		return c
	}
	c.Status = Pass
	c.Message = bin + " " + out
	return c
}

// CheckServerInstall runs the server launch command with --version. A
// failure only means the package could not be confirmed, so it is a warning.
func CheckServerInstall(ctx context.Context, env Env) Check {
	env = env.normalized()
	pkg := serverLabel(env)
	c := Check{Name: NameServerInstall}

	if _, err := testable.Output(ctx, env.Executor, env.Settings.Server.Command, env.Settings.ServerVersionArgs()...); err != nil {
		c.Status = Warn
		c.Message = pkg + " may not be installed or accessible"
		c.Details = []string{err.Error()}
		c.Fix = fmt.Sprintf("Check that %q runs", strings.Join(append([]string{env.Settings.Server.Command}, env.Settings.ServerVersionArgs()...), " "))
		return c
	}
	c.Status = Pass
	c.Message = pkg + " is installed"
	return c
}

func serverLabel(env Env) string {
	if len(env.Settings.Server.Args) > 0 {
		return env.Settings.Server.Args[0]
	}
	return env.Settings.Server.Command
}
