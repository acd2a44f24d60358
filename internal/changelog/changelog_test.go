// Package changelog tests CHANGELOG.md creation and entry insertion.
// Related: internal/changelog/changelog.go
// Tags: changelog, markdown, release

package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEntry = "\n## [1.1.0] - 2024-03-01 - Bug fixes\n\n### Fixed\n- Fixed crash on startup\n"

func TestUpdate_CreatesNewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, Update(path, sampleEntry))

	content, err := Read(path)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# Changelog\n"))
	assert.Contains(t, content, "Keep a Changelog")
	assert.Contains(t, content, "## [1.1.0] - 2024-03-01 - Bug fixes")
	assert.Contains(t, content, "- Fixed crash on startup")
}

func TestUpdate_InsertsBeforeExistingEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	existing := "# Changelog\n\n## [1.0.0] - 2023-01-01 - Initial release\n\n### Added\n- Initial release\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0644))

	require.NoError(t, Update(path, sampleEntry))

	content, err := Read(path)
	require.NoError(t, err)

	newIdx := strings.Index(content, "## [1.1.0]")
	oldIdx := strings.Index(content, "## [1.0.0]")
	require.Positive(t, newIdx)
	require.Positive(t, oldIdx)
	assert.Less(t, newIdx, oldIdx, "new entry should appear before the old one")
	assert.Contains(t, content, "- Initial release", "existing entries survive")

	// Sections stay separated by a blank line.
	assert.Contains(t, content, "- Fixed crash on startup\n\n## [1.0.0]")
}

func TestUpdate_AppendsWhenNoSectionsExist(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("# Changelog\n\nIntro text only.\n"), 0644))

	require.NoError(t, Update(path, sampleEntry))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Contains(t, content, "Intro text only.\n\n## [1.1.0]")
}

func TestUpdate_Twice(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	first := "\n## [1.0.1] - 2024-01-01 - Patch\n\n### Fixed\n- a\n"
	second := "\n## [1.1.0] - 2024-02-01 - Minor\n\n### Added\n- b\n"

	require.NoError(t, Update(path, first))
	require.NoError(t, Update(path, second))

	content, err := Read(path)
	require.NoError(t, err)
	assert.Less(t, strings.Index(content, "## [1.1.0]"), strings.Index(content, "## [1.0.1]"))
}

func TestRead_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
