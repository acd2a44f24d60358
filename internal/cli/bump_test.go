// Package cli tests the bump command end to end against temp directories.
// Related: internal/cli/bump.go
// Tags: cli, bump, release

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/addonbuild/internal/addon"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddonXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<addon id="plugin.video.test" name="Test Addon" version="1.2.3" provider-name="Test Provider">
    <extension point="xbmc.python.pluginsource" library="lib">
        <provides>video</provides>
    </extension>
    <extension point="xbmc.addon.metadata">
        <summary>Test addon for Kodi</summary>
        <platform>all</platform>
    </extension>
</addon>`

const testNews = "### Fixed\n- Resolver crash on empty playlists\n\n### Added\n- Subtitle support"

// setupAddonDir creates a temp directory with an addon.xml and chdirs into it.
func setupAddonDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, addon.ManifestName), []byte(testAddonXML), 0644))
	t.Chdir(dir)
	return dir
}

func TestBump_DryRunWritesNothing(t *testing.T) {
	dir := setupAddonDir(t)

	out, err := executeCommand(t, "bump", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--dry-run", "--non-interactive")
	require.NoError(t, err)

	assert.Contains(t, out, "would bump 1.2.3 -> 1.2.4")
	assert.Contains(t, out, "release: 1.2.4 - Bug fixes")

	// Nothing on disk changed.
	manifest, err := addon.Load(filepath.Join(dir, addon.ManifestName))
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", manifest.Version())
	assert.NoFileExists(t, filepath.Join(dir, "CHANGELOG.md"))
	assert.NoFileExists(t, filepath.Join(dir, "RELEASE_NOTES.md"))
}

func TestBump_WritesAllTargets(t *testing.T) {
	dir := setupAddonDir(t)

	_, err := executeCommand(t, "bump", "minor",
		"--summary", "Subtitle support",
		"--news", testNews,
		"--non-interactive")
	require.NoError(t, err)

	manifest, err := addon.Load(filepath.Join(dir, addon.ManifestName))
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", manifest.Version())
	assert.Contains(t, manifest.News(), "v1.3.0")
	assert.Contains(t, manifest.News(), "[fix] Resolver crash on empty playlists")
	assert.Contains(t, manifest.News(), "[new] Subtitle support")

	changelog, err := os.ReadFile(filepath.Join(dir, "CHANGELOG.md"))
	require.NoError(t, err)
	assert.Contains(t, string(changelog), "## [1.3.0]")
	assert.Contains(t, string(changelog), "### Fixed")

	notes, err := os.ReadFile(filepath.Join(dir, "RELEASE_NOTES.md"))
	require.NoError(t, err)
	assert.Contains(t, string(notes), "# Release Notes - 1.3.0")
}

func TestBump_CustomPaths(t *testing.T) {
	dir := setupAddonDir(t)

	_, err := executeCommand(t, "bump", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--changelog", "docs/CHANGES.md",
		"--release-notes", "docs/NOTES.md",
		"--non-interactive")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "docs", "CHANGES.md"))
	assert.FileExists(t, filepath.Join(dir, "docs", "NOTES.md"))
}

func TestBump_Errors(t *testing.T) {
	tests := map[string]struct {
		args         []string
		wantCategory errors.ErrorCategory
		wantMessage  string
	}{
		"invalid bump type": {
			args:         []string{"bump", "huge", "--summary", "s", "--news", testNews, "--non-interactive"},
			wantCategory: errors.Argument,
			wantMessage:  "invalid bump type",
		},
		"missing summary": {
			args:         []string{"bump", "patch", "--news", testNews, "--non-interactive"},
			wantCategory: errors.Argument,
			wantMessage:  "summary is required",
		},
		"missing news": {
			args:         []string{"bump", "patch", "--summary", "s", "--non-interactive"},
			wantCategory: errors.Argument,
			wantMessage:  "news is required",
		},
		"prose news": {
			args:         []string{"bump", "patch", "--summary", "s", "--news", "just prose, no headers", "--non-interactive"},
			wantCategory: errors.Argument,
			wantMessage:  "invalid news format",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			setupAddonDir(t)

			_, err := executeCommand(t, tc.args...)
			require.Error(t, err)

			cliErr := errors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, tc.wantCategory, cliErr.Category)
			assert.Contains(t, cliErr.Message, tc.wantMessage)
		})
	}
}

func TestBump_NoManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := executeCommand(t, "bump", "patch",
		"--summary", "s", "--news", testNews, "--non-interactive")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	assert.Contains(t, cliErr.Message, "addon.xml")
}
