// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package config handles optional nen-quickstart settings files. Every field
// has a built-in default, so a project without a settings file behaves
// exactly like the stock quickstart.
package config

import (
	"path/filepath"
	"strings"
	"time"
)

// FileName is the project-local settings file, looked up in the working
// directory.
const FileName = ".nen-quickstart.yaml"

// Built-in defaults.
const (
	DefaultServerName     = "nen"
	DefaultServerCommand  = "npx"
	DefaultServerPackage  = "@nen/mcp-server"
	DefaultRuntimeCommand = "node"
	DefaultMinMajor       = 18
	DefaultPackageManager = "npm"
	DefaultProbeTimeout   = 30 * time.Second
)

// Config represents the contents of a settings file. Zero values mean
// "inherit".
type Config struct {
	EditorConfig   string               `yaml:"editor_config,omitempty"`
	Gitignore      *bool                `yaml:"gitignore,omitempty"`
	Server         ServerConfig         `yaml:"server,omitempty"`
	Runtime        RuntimeConfig        `yaml:"runtime,omitempty"`
	PackageManager PackageManagerConfig `yaml:"package_manager,omitempty"`
	Probe          ProbeConfig          `yaml:"probe,omitempty"`
}

// ServerConfig describes how the editor launches the MCP server.
type ServerConfig struct {
	Name    string   `yaml:"name,omitempty"`
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// RuntimeConfig names the JavaScript runtime and its minimum major version.
type RuntimeConfig struct {
	Command  string `yaml:"command,omitempty"`
	MinMajor int    `yaml:"min_major,omitempty"`
}

// PackageManagerConfig names the package manager binary.
type PackageManagerConfig struct {
	Command string `yaml:"command,omitempty"`
}

// ProbeConfig tunes the optional MCP handshake probe.
type ProbeConfig struct {
	Timeout string `yaml:"timeout,omitempty"`
}

// Defaults returns the stock quickstart settings.
func Defaults() *Config {
	enabled := true
	return &Config{
		Gitignore: &enabled,
		Server: ServerConfig{
			Name:    DefaultServerName,
			Command: DefaultServerCommand,
			Args:    []string{DefaultServerPackage},
		},
		Runtime: RuntimeConfig{
			Command:  DefaultRuntimeCommand,
			MinMajor: DefaultMinMajor,
		},
		PackageManager: PackageManagerConfig{Command: DefaultPackageManager},
		Probe:          ProbeConfig{Timeout: DefaultProbeTimeout.String()},
	}
}

// EditorConfigPath returns the integration config location: the configured
// path with a leading "~/" expanded against home, or <home>/.cursor/mcp.json.
func (c *Config) EditorConfigPath(home string) string {
	p := c.EditorConfig
	switch {
	case p == "":
		return filepath.Join(home, ".cursor", "mcp.json")
	case p == "~":
		return home
	case strings.HasPrefix(p, "~/"):
		return filepath.Join(home, p[2:])
	}
	return p
}

// GitignoreEnabled reports whether setup may touch .gitignore and verify
// should check it.
func (c *Config) GitignoreEnabled() bool {
	return c.Gitignore == nil || *c.Gitignore
}

// ProbeTimeout returns the parsed probe timeout, falling back to the default
// when unset or malformed. Validate rejects malformed values up front.
func (c *Config) ProbeTimeout() time.Duration {
	d, err := time.ParseDuration(c.Probe.Timeout)
	if err != nil || d <= 0 {
		return DefaultProbeTimeout
	}
	return d
}

// ServerVersionArgs returns the server launch arguments with --version
// appended, e.g. ["@nen/mcp-server", "--version"].
func (c *Config) ServerVersionArgs() []string {
	args := append([]string(nil), c.Server.Args...)
	return append(args, "--version")
}
