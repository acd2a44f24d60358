// Package cli tests command wiring, flag handling, and exit code mapping.
// Related: internal/cli/root.go
// Tags: cli, cobra

package cli

import (
	"bytes"
	"testing"

	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given args and returns the
// combined output. Flag variables are reset first so tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	configPathFlag = ""
	debugFlag = false
	nonInteractiveFlag = false

	bumpAddonPathFlag = ""
	bumpChangelogFlag = ""
	bumpReleaseNotesFlag = ""
	bumpSummaryFlag = ""
	bumpNewsFlag = ""
	bumpAddonNewsFlag = ""
	bumpDryRunFlag = false

	commitMessageFlag = ""
	commitFilesFlag = nil
	commitAllowEmptyFlag = false

	tagMessageFlag = ""

	pushRemoteFlag = ""
	pushBranchFlag = ""
	pushTagsFlag = false

	archiveOutputFlag = ""
	archiveAddonPathFlag = ""

	releasePushFlag = false
	releaseArchiveFlag = false
	releaseYesFlag = false

	versionPlainFlag = false
	configTemplateFlag = false
}

func TestExitCodeFor(t *testing.T) {
	tests := map[string]struct {
		category errors.ErrorCategory
		want     int
	}{
		"argument":      {errors.Argument, ExitInvalidArguments},
		"configuration": {errors.Configuration, ExitInvalidConfiguration},
		"prerequisite":  {errors.Prerequisite, ExitMissingPrerequisites},
		"runtime":       {errors.Runtime, ExitRuntimeFailure},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeFor(tc.category))
		})
	}
}

func TestExitCode_ExitErrorPassesThrough(t *testing.T) {
	assert.Equal(t, 3, exitCode(NewExitError(3)))
}

func TestVersionCommand_Plain(t *testing.T) {
	out, err := executeCommand(t, "version", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "addonbuild dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestConfigCommand_Template(t *testing.T) {
	out, err := executeCommand(t, "config", "--template")
	require.NoError(t, err)

	assert.Contains(t, out, "# addonbuild configuration")
	assert.Contains(t, out, "tag_prefix: v")
}

func TestConfigCommand_EffectiveConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeCommand(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "remote: origin")
	assert.Contains(t, out, "changelog_path: CHANGELOG.md")
}

func TestConfigCommand_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADDONBUILD_REMOTE", "fork")

	out, err := executeCommand(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "remote: fork")
}
