package errors

import "fmt"

// Common error messages for the addonbuild CLI.
// These templates ensure consistent, actionable error messages.

// AddonXMLNotFound creates an error when no addon.xml can be located.
func AddonXMLNotFound(searchPath string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("could not find addon.xml in %s", searchPath),
		"Run addonbuild from the addon directory",
		"Or point at it explicitly: addonbuild bump patch --addon-path <dir>",
	)
}

// InvalidAddonXML creates an error for a manifest that fails validation.
func InvalidAddonXML(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		"invalid addon.xml",
		"Check that the root element is <addon> with a version attribute",
		"Versions must be semantic: X.Y.Z",
	)
}

// GitNotRepository creates an error when not in a git repository.
func GitNotRepository() *CLIError {
	return NewPrerequisiteError(
		"not a git repository",
		"Initialize with: git init",
		"Or navigate to an existing repository",
	)
}

// DirtyWorkingTree creates an error when a release needs a clean tree.
func DirtyWorkingTree() *CLIError {
	return NewPrerequisiteError(
		"working tree is not clean",
		"Commit or stash your changes before releasing",
		"Check what changed with: git status",
	)
}

// MissingNews creates an error when no news text was provided.
func MissingNews() *CLIError {
	return NewArgumentErrorWithUsage(
		"news is required in non-interactive mode",
		"addonbuild bump patch --news \"### Fixed\\n- <change>\"",
		"Pass the change description with --news",
		"Or drop --non-interactive to be prompted for it",
	)
}

// MissingSummary creates an error when no summary was provided.
func MissingSummary() *CLIError {
	return NewArgumentErrorWithUsage(
		"summary is required in non-interactive mode",
		"addonbuild bump patch --summary \"Bug fixes\"",
		"Pass a one-line summary with --summary",
		"Or drop --non-interactive to be prompted for it",
	)
}

// InvalidBumpType creates an error for an unrecognized bump argument.
func InvalidBumpType(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid bump type: %s", provided),
		"addonbuild bump <major|minor|patch>",
		"Use one of: major, minor, patch",
	)
}

// NewsFormatError wraps a news parsing/validation failure.
func NewsFormatError(err error) *CLIError {
	return WrapWithMessage(err, Argument,
		"invalid news format",
		"Structure the news as Keep a Changelog markdown:",
		"  ### Fixed",
		"  - Fixed the thing",
		"Recognized sections: Added, Fixed, Changed, Deprecated, Removed, Security",
	)
}

// AddonNewsTooLong wraps the addon.xml news length failure.
func AddonNewsTooLong(err error) *CLIError {
	return WrapWithMessage(err, Argument,
		"addon.xml news field over the size limit",
		"Shorten the news bullet items",
		"Or supply a shorter summary with --addon-news",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Compare against the template: addonbuild config --template",
	)
}

// TagAlreadyExists creates an error when the release tag is taken.
func TagAlreadyExists(tag string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("tag %q already exists", tag),
		"Delete the old tag if it was a mistake: git tag -d "+tag,
		"Or bump to a version that has not been released",
	)
}

// PushFailed wraps a failed push with connectivity hints.
func PushFailed(remote string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("failed to push to remote %q", remote),
		"Check your network connection and remote credentials",
		"SSH remotes need a running ssh-agent; HTTPS remotes read GIT_USERNAME/GIT_PASSWORD or GITHUB_TOKEN",
	)
}
