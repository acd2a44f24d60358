// Package cli tests the git-backed commands against throwaway repositories.
// Related: internal/cli/release.go
// Tags: cli, release, git

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ariel-frischer/addonbuild/internal/addon"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo creates a git repository containing a committed addon.xml and
// chdirs into it.
func setupRepo(t *testing.T) (*gogit.Repository, string) {
	t.Helper()
	dir := setupAddonDir(t)

	raw, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := raw.Config()
	require.NoError(t, err)
	cfg.User.Name = "Test User"
	cfg.User.Email = "test@example.com"
	require.NoError(t, raw.SetConfig(cfg))

	commitEverything(t, raw, "initial commit")
	return raw, dir
}

func commitEverything(t *testing.T, raw *gogit.Repository, message string) {
	t.Helper()
	wt, err := raw.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&gogit.AddOptions{All: true}))
	_, err = wt.Commit(message, &gogit.CommitOptions{})
	require.NoError(t, err)
}

func headMessage(t *testing.T, raw *gogit.Repository) string {
	t.Helper()
	head, err := raw.Head()
	require.NoError(t, err)
	commit, err := raw.CommitObject(head.Hash())
	require.NoError(t, err)
	return commit.Message
}

func TestRelease_FullPipeline(t *testing.T) {
	raw, dir := setupRepo(t)

	_, err := executeCommand(t, "release", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--non-interactive")
	require.NoError(t, err)

	manifest, err := addon.Load(filepath.Join(dir, addon.ManifestName))
	require.NoError(t, err)
	assert.Equal(t, "1.2.4", manifest.Version())

	assert.Equal(t, "release: 1.2.4 - Bug fixes", headMessage(t, raw))

	_, err = raw.Tag("v1.2.4")
	assert.NoError(t, err, "release should create the version tag")

	// The release commit left the tree clean.
	wt, err := raw.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.True(t, status.IsClean())
}

func TestRelease_WithArchive(t *testing.T) {
	_, dir := setupRepo(t)

	_, err := executeCommand(t, "release", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--archive",
		"--non-interactive")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "dist", "plugin.video.test-1.2.4.zip"))
}

func TestRelease_DirtyTree(t *testing.T) {
	_, dir := setupRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("uncommitted"), 0644))

	_, err := executeCommand(t, "release", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--non-interactive")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	assert.Contains(t, cliErr.Message, "working tree is not clean")
}

func TestRelease_OutsideRepository(t *testing.T) {
	setupAddonDir(t)

	_, err := executeCommand(t, "release", "patch",
		"--summary", "Bug fixes",
		"--news", testNews,
		"--non-interactive")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Contains(t, cliErr.Message, "not a git repository")
}

func TestCommitCommand(t *testing.T) {
	raw, dir := setupRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("content"), 0644))

	out, err := executeCommand(t, "commit", "-m", "add new file")
	require.NoError(t, err)

	assert.Contains(t, out, "committed")
	assert.Equal(t, "add new file", headMessage(t, raw))
}

func TestCommitCommand_RequiresMessage(t *testing.T) {
	setupRepo(t)

	_, err := executeCommand(t, "commit")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
}

func TestTagCommand(t *testing.T) {
	raw, _ := setupRepo(t)

	_, err := executeCommand(t, "tag", "v9.9.9")
	require.NoError(t, err)

	_, err = raw.Tag("v9.9.9")
	assert.NoError(t, err)

	// A second tag of the same name is rejected with guidance.
	_, err = executeCommand(t, "tag", "v9.9.9")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Contains(t, cliErr.Message, "already exists")
}

func TestArchiveCommand(t *testing.T) {
	_, dir := setupRepo(t)

	out, err := executeCommand(t, "archive", "--output-dir", "build")
	require.NoError(t, err)

	zipPath := filepath.Join(dir, "build", "plugin.video.test-1.2.3.zip")
	assert.Contains(t, out, "plugin.video.test-1.2.3.zip")
	assert.FileExists(t, zipPath)
}
