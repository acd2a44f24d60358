package cli

import (
	"fmt"

	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/spf13/cobra"
)

var (
	releasePushFlag    bool
	releaseArchiveFlag bool
	releaseYesFlag     bool
)

var releaseCmd = &cobra.Command{
	Use:   "release <major|minor|patch>",
	Short: "Bump, commit, and tag a release in one step",
	Long: `Run the full release pipeline: verify the working tree is clean, bump
the version, write addon.xml, CHANGELOG.md and the release notes, commit the
result, and tag it {tag_prefix}{version}.

With --push the commit and tag are pushed to the configured remote; with
--archive the installable zip is built from the release commit.

Examples:
  addonbuild release patch --summary "Bug fixes" --news "### Fixed
  - Resolver crash on empty playlists"

  addonbuild release minor --push --archive`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		repo, err := git.Open(".")
		if err != nil {
			return errors.GitNotRepository()
		}
		clean, err := repo.IsClean()
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "checking working tree")
		}
		if !clean {
			return errors.DirtyWorkingTree()
		}

		plan, err := prepareRelease(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		if !releaseYesFlag && !cfg.NonInteractive {
			previewRelease(cmd, plan)
			if !promptYesNo(cmd, fmt.Sprintf("Release %s as %s?", plan.Manifest.ID(), plan.NewVersion)) {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}

		if err := applyRelease(cmd, cfg, plan); err != nil {
			return err
		}

		if err := repo.StageAll(); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "staging release files")
		}
		hash, err := repo.Commit(plan.CommitMessage, false)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "committing release")
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("committed %s", hash[:7]))

		tagName := cfg.TagPrefix + plan.NewVersion
		if err := repo.CreateTag(tagName, plan.CommitMessage); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "tagging release")
		}
		output.PrintSuccess(cmd.OutOrStdout(), "tagged "+tagName)

		if releasePushFlag {
			remote := pickPath("", cfg.Remote, "origin")
			if err := pushWithSpinner(cmd, cfg, repo, remote, cfg.Branch, true); err != nil {
				return err
			}
			output.PrintSuccess(cmd.OutOrStdout(), "pushed to "+remote)
		}

		if releaseArchiveFlag {
			outPath, err := buildArchive(repo, plan.Manifest, pickPath("", cfg.Archive.OutputDir, "dist"), cfg.Archive.Paths)
			if err != nil {
				return err
			}
			output.PrintSuccess(cmd.OutOrStdout(), "wrote "+outPath)
		}
		return nil
	},
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)

	addReleaseFlags(releaseCmd)
	releaseCmd.Flags().BoolVar(&releasePushFlag, "push", false, "Push the release commit and tag")
	releaseCmd.Flags().BoolVar(&releaseArchiveFlag, "archive", false, "Build the installable zip after tagging")
	releaseCmd.Flags().BoolVarP(&releaseYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}
