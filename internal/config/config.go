// Package config provides hierarchical configuration management for
// addonbuild using koanf. Configuration is loaded with priority:
// environment variables (ADDONBUILD_*) > project config
// (.addonbuild/config.yml) > user config (~/.config/addonbuild/config.yml)
// > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variable overrides.
const envPrefix = "ADDONBUILD_"

// ArchiveConfig controls zip artifact generation.
type ArchiveConfig struct {
	// OutputDir is where release zips are written, relative to the repo root.
	OutputDir string `koanf:"output_dir"`
	// Paths restricts the archive to these repo-relative paths (empty = all
	// tracked files).
	Paths []string `koanf:"paths"`
}

// Configuration represents the addonbuild CLI tool configuration.
type Configuration struct {
	// AddonPath is the directory searched for addon.xml (empty = cwd).
	AddonPath string `koanf:"addon_path"`

	// ChangelogPath is the CHANGELOG.md location relative to the repo root.
	ChangelogPath string `koanf:"changelog_path"`

	// ReleaseNotesPath is the RELEASE_NOTES.md location.
	ReleaseNotesPath string `koanf:"release_notes_path"`

	// Remote is the git remote pushed to by push/release.
	Remote string `koanf:"remote"`

	// Branch overrides the branch to push (empty = current branch).
	Branch string `koanf:"branch"`

	// TagPrefix is prepended to the version when tagging (default "v").
	TagPrefix string `koanf:"tag_prefix"`

	// NonInteractive disables prompts; missing inputs become errors.
	// Can be set via ADDONBUILD_NON_INTERACTIVE.
	NonInteractive bool `koanf:"non_interactive"`

	// PushTimeoutSeconds bounds network pushes (0 = library default).
	PushTimeoutSeconds int `koanf:"push_timeout"`

	Archive ArchiveConfig `koanf:"archive"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .addonbuild/config.yml). Useful for testing.
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	userPath, _ := UserConfigPath()
	if err := loadYAMLConfig(k, userPath, "user"); err != nil {
		return nil, err
	}

	projectPath := ProjectConfigPath()
	if opts.ProjectConfigPath != "" {
		projectPath = opts.ProjectConfigPath
	}
	if err := loadYAMLConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}
	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadYAMLConfig validates and loads a YAML config file. A missing file is
// not an error; the other layers cover it.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if path == "" || !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// envTransform maps ADDONBUILD_ARCHIVE__OUTPUT_DIR to archive.output_dir:
// the prefix is stripped, double underscores become nesting, and the key is
// lowercased.
func envTransform(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
