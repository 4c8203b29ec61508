// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package redact provides utilities to strip credential values from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// minSecretLen guards against false positives from very short values.
const minSecretLen = 4

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"NEN_API_KEY",
	"GITHUB_TOKEN",
	"NPM_TOKEN",
}

var (
	mu         sync.Mutex
	registered []string
)

// Register adds values that must be redacted in addition to the sensitive
// environment variables, e.g. an API key read from the credentials file.
// Values shorter than four characters are ignored.
func Register(values ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, v := range values {
		v = strings.TrimSpace(v)
		if len(v) < minSecretLen {
			continue
		}
		registered = append(registered, v)
	}
}

// Reset drops every registered value. Tests use it between cases.
func Reset() {
	mu.Lock()
	registered = nil
	mu.Unlock()
}

func secrets() []string {
	mu.Lock()
	out := append([]string(nil), registered...)
	mu.Unlock()
	for _, name := range sensitiveEnvVars {
		if v := os.Getenv(name); len(v) >= minSecretLen {
			out = append(out, v)
		}
	}
	return out
}

// String replaces any occurrence of a known secret with Placeholder.
// Returns the original string if no secrets are found.
func String(s string) string {
	for _, secret := range secrets() {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return s
}
