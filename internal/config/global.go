// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the per-user settings directory.
const AppName = "nen-quickstart"

// GlobalDir returns $XDG_CONFIG_HOME/nen-quickstart (platform equivalent
// on macOS and Windows).
func GlobalDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// GlobalPath returns the path to the per-user settings file.
func GlobalPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// LoadGlobal loads the per-user settings file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	return loadFile(GlobalPath())
}
