// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the nen-quickstart CLI.
const (
	ExitOK           = 0 // Setup finished, or verify found no errors.
	ExitVerifyFailed = 1 // Verify found at least one error.
	ExitInvalidArgs  = 2 // Bad flags, arguments or settings.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. An empty message is allowed when the
// command already printed its own report.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
