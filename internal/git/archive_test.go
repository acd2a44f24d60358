// Package git tests zip archive generation from the HEAD tree.
// Related: internal/git/archive.go
// Tags: git, archive, zip

package git

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		entries[f.Name] = string(content)
	}
	return entries
}

func TestArchive(t *testing.T) {
	t.Parallel()

	repo, dir := initTestRepo(t)
	writeFile(t, dir, "addon.xml", "<addon/>")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "resources"), 0755))
	writeFile(t, dir, filepath.Join("resources", "settings.xml"), "<settings/>")
	commitAll(t, repo, "initial")

	var buf bytes.Buffer
	require.NoError(t, repo.Archive(&buf, "plugin.video.test", nil))

	entries := archiveEntries(t, buf.Bytes())
	assert.Equal(t, "<addon/>", entries["plugin.video.test/addon.xml"])
	assert.Equal(t, "<settings/>", entries["plugin.video.test/resources/settings.xml"])
}

func TestArchive_IgnoresUncommittedChanges(t *testing.T) {
	t.Parallel()

	repo, dir := initTestRepo(t)
	writeFile(t, dir, "addon.xml", "committed")
	commitAll(t, repo, "initial")

	// Modify after commit; the archive must reflect HEAD.
	writeFile(t, dir, "addon.xml", "dirty")
	writeFile(t, dir, "untracked.txt", "never committed")

	var buf bytes.Buffer
	require.NoError(t, repo.Archive(&buf, "", nil))

	entries := archiveEntries(t, buf.Bytes())
	assert.Equal(t, "committed", entries["addon.xml"])
	_, hasUntracked := entries["untracked.txt"]
	assert.False(t, hasUntracked)
}

func TestArchive_PathFilter(t *testing.T) {
	t.Parallel()

	repo, dir := initTestRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "plugin.video.test"), 0755))
	writeFile(t, dir, filepath.Join("plugin.video.test", "addon.xml"), "<addon/>")
	writeFile(t, dir, "README.md", "docs")
	commitAll(t, repo, "initial")

	var buf bytes.Buffer
	require.NoError(t, repo.Archive(&buf, "", []string{"plugin.video.test"}))

	entries := archiveEntries(t, buf.Bytes())
	assert.Contains(t, entries, "plugin.video.test/addon.xml")
	assert.NotContains(t, entries, "README.md")
}

func TestArchiveToFile(t *testing.T) {
	t.Parallel()

	repo, dir := initTestRepo(t)
	writeFile(t, dir, "addon.xml", "<addon/>")
	commitAll(t, repo, "initial")

	out := filepath.Join(t.TempDir(), "plugin.video.test-1.0.0.zip")
	require.NoError(t, repo.ArchiveToFile(out, "plugin.video.test", nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	entries := archiveEntries(t, data)
	assert.Contains(t, entries, "plugin.video.test/addon.xml")
}
