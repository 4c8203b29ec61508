// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package config

// Merge overlays over onto base and returns a new Config. Non-zero fields in
// over win; zero-value fields fall through to base. Neither input is
// modified.
func Merge(base, over *Config) *Config {
	result := *base
	result.Server.Args = append([]string(nil), base.Server.Args...)

	if over == nil {
		return &result
	}

	if over.EditorConfig != "" {
		result.EditorConfig = over.EditorConfig
	}
	if over.Gitignore != nil {
		v := *over.Gitignore
		result.Gitignore = &v
	}

	if over.Server.Name != "" {
		result.Server.Name = over.Server.Name
	}
	if over.Server.Command != "" {
		result.Server.Command = over.Server.Command
	}
	if len(over.Server.Args) > 0 {
		result.Server.Args = append([]string(nil), over.Server.Args...)
	}

	if over.Runtime.Command != "" {
		result.Runtime.Command = over.Runtime.Command
	}
	if over.Runtime.MinMajor > 0 {
		result.Runtime.MinMajor = over.Runtime.MinMajor
	}

	if over.PackageManager.Command != "" {
		result.PackageManager.Command = over.PackageManager.Command
	}

	if over.Probe.Timeout != "" {
		result.Probe.Timeout = over.Probe.Timeout
	}

	return &result
}

// Resolve builds the effective settings for workDir: defaults, then the
// per-user file, then the project file. The result is validated.
func Resolve(workDir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	local, err := Load(workDir)
	if err != nil {
		return nil, err
	}

	cfg := Merge(Merge(Defaults(), global), local)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
