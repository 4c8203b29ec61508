// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// serverNamePattern matches the keys editors accept under mcpServers.
var serverNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Server.Name == "" {
		errs = append(errs, "server.name: must not be empty")
	} else if !serverNamePattern.MatchString(cfg.Server.Name) {
		errs = append(errs, fmt.Sprintf("server.name: invalid value %q (letters, digits, '.', '_' and '-' only)", cfg.Server.Name))
	}
	if strings.TrimSpace(cfg.Server.Command) == "" {
		errs = append(errs, "server.command: must not be empty")
	}

	if strings.TrimSpace(cfg.Runtime.Command) == "" {
		errs = append(errs, "runtime.command: must not be empty")
	}
	if cfg.Runtime.MinMajor < 0 {
		errs = append(errs, fmt.Sprintf("runtime.min_major: must be non-negative, got %d", cfg.Runtime.MinMajor))
	}

	if strings.TrimSpace(cfg.PackageManager.Command) == "" {
		errs = append(errs, "package_manager.command: must not be empty")
	}

	if cfg.Probe.Timeout != "" {
		d, err := time.ParseDuration(cfg.Probe.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("probe.timeout: invalid duration %q", cfg.Probe.Timeout))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("probe.timeout: must be positive, got %s", cfg.Probe.Timeout))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
