// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show nen-quickstart settings",
	Long: `Show nen-quickstart settings.

Settings are optional. Built-in defaults match the stock quickstart; a
per-user file (config path shows where) and a project .nen-quickstart.yaml
can override them. Project settings override per-user settings.`,
}

// configShowCmd prints the effective settings.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configPathCmd prints the settings file locations.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where settings files are read from",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}
	cfg, err := loadSettings(dir)
	if err != nil {
		return err
	}
	if err := config.Write(cmd.OutOrStdout(), cfg); err != nil {
		return fmt.Errorf("nen-quickstart: writing settings (%w)", err)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	dir, err := resolveWorkDir()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	dim := color.New(color.Faint)
	for _, p := range []struct{ label, path string }{
		{"project", filepath.Join(dir, config.FileName)},
		{"global", config.GlobalPath()},
	} {
		state := "missing"
		if testable.Exists(cmdFS, p.path) {
			state = "found"
		}
		_, _ = fmt.Fprintf(w, "%-8s %s %s\n", p.label, p.path, dim.Sprintf("(%s)", state))
	}
	return nil
}
