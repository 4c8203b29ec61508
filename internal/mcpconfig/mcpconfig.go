// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package mcpconfig reads and writes the editor's MCP integration config
// (Cursor's ~/.cursor/mcp.json). Existing documents are only ever read:
// unknown servers and unknown top-level keys are never rewritten.
package mcpconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned by Parse when the document is valid JSON but not
// a JSON object.
var ErrNotObject = errors.New("mcp config is not a JSON object")

// document is the shape written for a fresh config.
type document struct {
	MCPServers map[string]ServerEntry `json:"mcpServers"`
}

// ServerEntry is a single mcpServers record.
type ServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
	Cwd     string   `json:"cwd"`
}

// Marshal renders a config document holding only the named entry, indented
// with two spaces and newline-terminated.
func Marshal(name string, entry ServerEntry) ([]byte, error) {
	if entry.Args == nil {
		entry.Args = []string{}
	}
	data, err := json.MarshalIndent(document{
		MCPServers: map[string]ServerEntry{name: entry},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling mcp config: %w", err)
	}
	return append(data, '\n'), nil
}

// Config is a parsed integration config. Servers keeps entries as raw JSON
// so entries of any shape survive inspection.
type Config struct {
	Servers map[string]json.RawMessage
}

// Parse decodes data. Any syntax error, or a non-object top level, is an
// error. A missing or non-object mcpServers value yields no servers.
func Parse(data []byte) (*Config, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		return nil, err
	}
	if top == nil {
		return nil, ErrNotObject
	}

	cfg := &Config{Servers: map[string]json.RawMessage{}}
	if raw, ok := top["mcpServers"]; ok {
		var servers map[string]json.RawMessage
		if err := json.Unmarshal(raw, &servers); err == nil && servers != nil {
			cfg.Servers = servers
		}
	}
	return cfg, nil
}

// Has reports whether an entry named name exists and is not JSON null or
// another falsy literal.
func (c *Config) Has(name string) bool {
	raw, ok := c.Servers[name]
	if !ok {
		return false
	}
	switch string(bytes.TrimSpace(raw)) {
	case "null", "false", "0", `""`:
		return false
	}
	return true
}

// Cwd returns the cwd recorded for name. ok is false when the entry has no
// string cwd; text then holds the raw JSON value (or "" when absent) so
// reports can still show what was found.
func (c *Config) Cwd(name string) (text string, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Servers[name], &fields); err != nil {
		return "", false
	}
	raw, present := fields["cwd"]
	if !present {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw), false
	}
	return s, true
}
