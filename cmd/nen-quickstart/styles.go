// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Status glyphs shared by setup and verify.
const (
	glyphOK    = "✅"
	glyphWarn  = "⚠️ "
	glyphError = "❌"
	glyphSkip  = "➖"
)

// Summary box borders, one per verify outcome.
var (
	summaryOK   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1)
	summaryWarn = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1)
	summaryFail = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("196")).Padding(0, 1)
)

// box renders text inside style, or as plain text when color is off.
func box(style lipgloss.Style, text string) string {
	if color.NoColor {
		return text
	}
	return style.Render(text)
}
