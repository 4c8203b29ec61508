// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	qslog "github.com/nenai/mcp-quickstart/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
	workDir string
)

// rootCmd is the base command for nen-quickstart.
var rootCmd = &cobra.Command{
	Use:   "nen-quickstart",
	Short: "Set up and verify the NenAI MCP quickstart",
	Long: `nen-quickstart prepares a directory for building NenAI workflows from an
AI editor. "setup" creates the credentials file, the workflow directories and
the Cursor MCP config; "verify" checks the toolchain and those artifacts and
tells you what is left to do.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		qslog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "C", "", "quickstart directory (default: current directory)")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(workflowCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
