// Package changelog maintains the CHANGELOG.md document, inserting rendered
// release entries newest-first under the Keep a Changelog header.
package changelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFilename is the conventional changelog location at the repo root.
const DefaultFilename = "CHANGELOG.md"

// defaultHeader is written when no changelog exists yet.
const defaultHeader = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).
`

// versionMarker starts every release section; new entries are inserted
// immediately before the most recent one.
const versionMarker = "\n## ["

// Update inserts a rendered changelog entry into the document at path.
// The entry lands after the header and before any existing release section,
// so the newest release reads first. A missing file is created with the
// standard Keep a Changelog header.
func Update(path, entry string) error {
	content, err := Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading changelog: %w", err)
		}
		content = defaultHeader
	}

	updated := insertEntry(content, entry)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating changelog directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("writing changelog: %w", err)
	}
	return nil
}

// Read returns the changelog contents. The error from os.ReadFile is
// passed through so callers can distinguish a missing file.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// insertEntry splices entry before the first release section, or appends it
// when the document has none. Entries already carry a leading blank line
// and a single trailing newline.
func insertEntry(content, entry string) string {
	if idx := strings.Index(content, versionMarker); idx >= 0 {
		return content[:idx] + entry + content[idx:]
	}
	return strings.TrimRight(content, "\n") + "\n" + entry
}
