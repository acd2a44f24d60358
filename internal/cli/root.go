// Package cli implements the addonbuild command tree. Commands are thin
// orchestration layers: parsing and rendering live in internal/news, manifest
// handling in internal/addon, and repository operations in internal/git.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/ariel-frischer/addonbuild/internal/config"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/spf13/cobra"
)

// Command group IDs used for help output organization.
const (
	GroupRelease = "release"
	GroupGit     = "git"
	GroupUtility = "utility"
)

var (
	configPathFlag     string
	debugFlag          bool
	nonInteractiveFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "addonbuild",
	Short: "Release automation for Kodi addons",
	Long: `addonbuild automates the release chores of a Kodi addon: it bumps the
version in addon.xml, turns a Keep a Changelog style news blurb into the
commit message, CHANGELOG.md entry, release notes, and the length-limited
news field inside addon.xml, then commits, tags, and optionally pushes and
packages the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(log.New(cmd.ErrOrStderr(), "git: ", log.Lmsgprefix).Printf)
		}
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupGit, Title: "Git Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to project config file (default .addonbuild/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&nonInteractiveFlag, "non-interactive", false, "Never prompt; missing inputs become errors")
}

// loadConfig builds the effective configuration for a command invocation,
// layering the --config/--non-interactive flags over the file and env layers.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: configPathFlag,
	})
	if err != nil {
		path := configPathFlag
		if path == "" {
			path = config.ProjectConfigPath()
		}
		return nil, errors.ConfigParseError(path, err)
	}
	if nonInteractiveFlag {
		cfg.NonInteractive = true
	}
	return cfg, nil
}

// Execute runs the root command and translates errors to exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode renders the error and picks the process exit code. CLIErrors get
// the structured remediation output; ExitErrors pass their code through
// silently; anything else prints as a runtime failure.
func exitCode(err error) int {
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return exitCodeFor(cliErr.Category)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return ExitRuntimeFailure
}
