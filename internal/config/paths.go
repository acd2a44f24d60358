package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification:
//   - Linux: ~/.config/addonbuild/config.yml
//   - macOS: ~/Library/Application Support/addonbuild/config.yml
//   - Windows: %APPDATA%\addonbuild\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "addonbuild", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// always .addonbuild/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".addonbuild", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".addonbuild"
}
