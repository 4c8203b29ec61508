// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package probe performs an MCP handshake against the quickstart's server:
// it starts the configured launch command over stdio, initializes a client
// session and lists the tools the server exposes.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nenai/mcp-quickstart/internal/config"
	"github.com/nenai/mcp-quickstart/internal/testable"
)

// ListRunsTool is the tool the quickstart asks the assistant to call first.
const ListRunsTool = "list_runs"

// clientName identifies the probe to the server.
const clientName = "nen-quickstart"

// Result is what the server reported during the handshake.
type Result struct {
	ServerName    string
	ServerVersion string
	Tools         []string
}

// HasTool reports whether the server listed a tool called name.
func (r *Result) HasTool(name string) bool {
	for _, t := range r.Tools {
		if t == name {
			return true
		}
	}
	return false
}

// Run connects to the server on transport, lists every tool (following
// pagination cursors) and closes the session.
func Run(ctx context.Context, transport mcp.Transport, version string) (*Result, error) {
	client := mcp.NewClient(&mcp.Implementation{
		Name:    clientName,
		Version: version,
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connecting to MCP server: %w", err)
	}
	defer session.Close() //nolint:errcheck // best-effort close after probe

	res := &Result{}
	if ir := session.InitializeResult(); ir != nil && ir.ServerInfo != nil {
		res.ServerName = ir.ServerInfo.Name
		res.ServerVersion = ir.ServerInfo.Version
	}

	params := &mcp.ListToolsParams{}
	for {
		page, err := session.ListTools(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("listing tools: %w", err)
		}
		for _, tool := range page.Tools {
			res.Tools = append(res.Tools, tool.Name)
		}
		if page.NextCursor == "" {
			break
		}
		params = &mcp.ListToolsParams{Cursor: page.NextCursor}
	}

	slog.Debug("mcp handshake complete", "server", res.ServerName, "tools", len(res.Tools))
	return res, nil
}

// Server launches the configured MCP server as a subprocess for probing.
type Server struct {
	Executor testable.CommandExecutor
	Settings *config.Config
	// WorkDir is the subprocess working directory, matching the cwd the
	// editor would use.
	WorkDir string
	// Version is reported as the client version.
	Version string
}

// Probe starts the server and runs the handshake, bounded by the configured
// probe timeout.
func (s *Server) Probe(ctx context.Context) (*Result, error) {
	settings := s.Settings
	if settings == nil {
		settings = config.Defaults()
	}
	executor := s.Executor
	if executor == nil {
		executor = testable.DefaultExecutor()
	}

	timeout := settings.ProbeTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := executor.CommandContext(ctx, settings.Server.Command, settings.Server.Args...)
	cmd.Dir = s.WorkDir
	slog.Debug("starting MCP server for probe", "command", cmd.String(), "dir", s.WorkDir, "timeout", timeout)

	res, err := Run(ctx, &mcp.CommandTransport{Command: cmd}, s.Version)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("no answer within %s: %w", timeout, err)
	}
	return res, err
}
