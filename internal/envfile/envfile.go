// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package envfile creates and inspects the local credentials file (.env).
//
// The file is inspected, not parsed: a key counts as populated when its
// assignment is present and is not followed only by whitespace up to the end
// of the line. This mirrors how the quickstart has always judged the file and
// tolerates comments and unrelated lines.
package envfile

import (
	"regexp"
	"strings"
)

// FileName is the credentials file, relative to the working directory.
const FileName = ".env"

// Recognized keys.
const (
	KeyAPIKey       = "NEN_API_KEY"
	KeyDeploymentID = "NEN_DEPLOYMENT_ID"
)

// Keys lists the recognized keys in file order.
var Keys = []string{KeyAPIKey, KeyDeploymentID}

const banner = `# NenAI API Credentials
# Get your credentials from your customer engineer or request access at hello@nen.ai
`

// Template returns the initial credentials file with both keys present.
// apiKey and deploymentID may be empty.
func Template(apiKey, deploymentID string) []byte {
	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	b.WriteString(KeyAPIKey + "=" + strings.TrimSpace(apiKey) + "\n")
	b.WriteString(KeyDeploymentID + "=" + strings.TrimSpace(deploymentID) + "\n")
	return []byte(b.String())
}

var emptyAssignment = map[string]*regexp.Regexp{}

func init() {
	for _, k := range Keys {
		emptyAssignment[k] = regexp.MustCompile(`(?m)` + regexp.QuoteMeta(k) + `=\s*$`)
	}
}

// Populated reports whether key has a non-empty value in content.
func Populated(content, key string) bool {
	if !strings.Contains(content, key+"=") {
		return false
	}
	re, ok := emptyAssignment[key]
	if !ok {
		re = regexp.MustCompile(`(?m)` + regexp.QuoteMeta(key) + `=\s*$`)
	}
	return !re.MatchString(content)
}

// Missing returns the recognized keys that are absent or empty, in file
// order.
func Missing(content string) []string {
	var missing []string
	for _, k := range Keys {
		if !Populated(content, k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// Value returns the first value assigned to key on a line of its own,
// trimmed of whitespace and surrounding quotes. It is used to register
// secrets for redaction, not to load configuration.
func Value(content, key string) string {
	prefix := key + "="
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "export ")
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		v := strings.TrimSpace(strings.TrimPrefix(line, prefix))
		if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
			v = v[1 : len(v)-1]
		}
		return v
	}
	return ""
}
