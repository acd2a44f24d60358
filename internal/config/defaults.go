package config

// GetDefaultConfigTemplate returns a commented config template that helps
// users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# addonbuild configuration
# Values here are overridden by ADDONBUILD_* environment variables.

# Addon layout
addon_path: ""                  # Directory searched for addon.xml (empty = current dir)
changelog_path: CHANGELOG.md    # Changelog location
release_notes_path: RELEASE_NOTES.md

# Git settings
remote: origin                  # Remote used by push/release
branch: ""                      # Branch to push (empty = current)
tag_prefix: v                   # Release tags become v{version}
push_timeout: 60                # Seconds before a push is abandoned

# Behavior
non_interactive: false          # Never prompt; missing inputs become errors

# Archive settings
archive:
  output_dir: dist              # Where release zips are written
  paths: []                     # Repo-relative paths to include (empty = all tracked)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"addon_path":         "",
		"changelog_path":     "CHANGELOG.md",
		"release_notes_path": "RELEASE_NOTES.md",
		"remote":             "origin",
		"branch":             "",
		"tag_prefix":         "v",
		"non_interactive":    false,
		"push_timeout":       60,
		"archive": map[string]interface{}{
			"output_dir": "dist",
			"paths":      []string{},
		},
	}
}
