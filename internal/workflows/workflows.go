// Copyright 2026 The Nen Quickstart Authors
// SPDX-License-Identifier: MIT

// Package workflows manages the local workflow tree: the fixed directory
// layout, the bundled sample, scaffolding of new workflows and listing.
package workflows

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/nenai/mcp-quickstart/internal/testable"
)

// FS is the file system implementation used by this package.
// Override in tests with a testable.MockFileSystem.
var FS testable.FileSystem = testable.DefaultFS

// Directory layout, slash-separated and relative to the working directory.
const (
	RootDir    = "workflows"
	CustomDir  = "workflows/my_workflows"
	SamplesDir = "workflows/samples"
)

// Dirs lists the directories setup provisions, parents first.
var Dirs = []string{RootDir, CustomDir, SamplesDir}

// EntryFile is the file that makes a directory a workflow.
const EntryFile = "workflow.py"

// SampleFile is the bundled sample's file name inside SamplesDir.
const SampleFile = "sample-workflow.py"

//go:embed templates/sample-workflow.py templates/workflow.py.tmpl
var templates embed.FS

var scaffold = template.Must(template.ParseFS(templates, "templates/workflow.py.tmpl"))

// namePattern matches kebab-case workflow names.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ErrExists is returned by Create when the workflow already exists.
var ErrExists = errors.New("workflow already exists")

// Sample returns the bundled sample workflow source.
func Sample() []byte {
	data, err := templates.ReadFile("templates/sample-workflow.py")
	if err != nil {
		panic(err) // embedded at build time
	}
	return data
}

// SamplePath returns where the bundled sample lives under workDir.
func SamplePath(workDir string) string {
	return filepath.Join(workDir, filepath.FromSlash(SamplesDir), SampleFile)
}

// ValidateName checks that name is a kebab-case identifier.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid workflow name %q (use lowercase letters, digits and single hyphens, e.g. clinic-login)", name)
	}
	return nil
}

// Title turns a kebab-case name into a heading: "clinic-login" -> "Clinic Login".
func Title(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Create scaffolds workflows/my_workflows/<name>/workflow.py under workDir
// and returns its path. Existing workflows are never overwritten.
func Create(workDir, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	dir := filepath.Join(workDir, filepath.FromSlash(CustomDir), name)
	path := filepath.Join(dir, EntryFile)
	if testable.Exists(FS, path) {
		return path, fmt.Errorf("%w: %s", ErrExists, path)
	}

	var buf bytes.Buffer
	if err := scaffold.Execute(&buf, struct{ Name, Title string }{name, Title(name)}); err != nil {
		return "", fmt.Errorf("rendering workflow template: %w", err)
	}

	if err := FS.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // project directory
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := FS.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // source file
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Kind distinguishes user workflows from bundled samples.
type Kind string

// Workflow kinds.
const (
	KindCustom Kind = "custom"
	KindSample Kind = "sample"
)

// Workflow is one entry found by List.
type Workflow struct {
	Name string
	Kind Kind
	Path string
}

// List returns the workflows under workDir: directories holding a
// workflow.py in my_workflows and samples, plus loose .py files in samples.
// Missing directories are treated as empty. Results are sorted by kind
// (custom first) then name.
func List(workDir string) ([]Workflow, error) {
	var out []Workflow
	for _, src := range []struct {
		dir   string
		kind  Kind
		loose bool
	}{
		{CustomDir, KindCustom, false},
		{SamplesDir, KindSample, true},
	} {
		found, err := scan(filepath.Join(workDir, filepath.FromSlash(src.dir)), src.kind, src.loose)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == KindCustom
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func scan(dir string, kind Kind, loose bool) ([]Workflow, error) {
	entries, err := FS.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var out []Workflow
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__") {
			continue
		}
		switch {
		case e.IsDir():
			entry := filepath.Join(dir, name, EntryFile)
			if _, err := FS.Stat(entry); err == nil {
				out = append(out, Workflow{Name: name, Kind: kind, Path: entry})
			} else if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("checking %s: %w", entry, err)
			}
		case loose && strings.HasSuffix(name, ".py"):
			out = append(out, Workflow{
				Name: strings.TrimSuffix(name, ".py"),
				Kind: kind,
				Path: filepath.Join(dir, name),
			})
		}
	}
	return out, nil
}
