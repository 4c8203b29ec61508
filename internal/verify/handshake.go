// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

package verify

import (
	"context"
	"fmt"

	"github.com/nenai/mcp-quickstart/internal/probe"
)

// Prober performs an MCP handshake against the configured server.
type Prober interface {
	Probe(ctx context.Context) (*probe.Result, error)
}

// CheckHandshake starts the server through env.Prober and reports what it
// exposes. Any failure is a warning.
func CheckHandshake(ctx context.Context, env Env) Check {
	env = env.normalized()
	c := Check{Name: NameHandshake}
	if env.Prober == nil {
		c.Status = Skip
		c.Message = "handshake probe not requested"
		return c
	}

	res, err := env.Prober.Probe(ctx)
	if err != nil {
		c.Status = Warn
		c.Message = "MCP handshake failed"
		c.Details = []string{err.Error()}
		c.Fix = "Check the server's credentials in .env and rerun with --verbose"
		return c
	}

	c.Details = []string{fmt.Sprintf("Server: %s %s", res.ServerName, res.ServerVersion)}
	if !res.HasTool(probe.ListRunsTool) {
		c.Status = Warn
		c.Message = fmt.Sprintf("MCP server answered with %d tools but no %s", len(res.Tools), probe.ListRunsTool)
		c.Fix = "Update the MCP server package"
		return c
	}
	c.Status = Pass
	c.Message = fmt.Sprintf("MCP server answered with %d tools including %s", len(res.Tools), probe.ListRunsTool)
	return c
}
