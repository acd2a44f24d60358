package cli

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/spf13/cobra"
)

var (
	commitMessageFlag    string
	commitFilesFlag      []string
	commitAllowEmptyFlag bool
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Stage and commit the working tree",
	Long: `Stage changes and create a commit.

By default every change in the working tree is staged. Use --files to stage
only specific paths, the way a release commit stages addon.xml and the
changelog.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.TrimSpace(commitMessageFlag)
		if message == "" {
			return errors.NewArgumentErrorWithUsage(
				"commit message is required",
				"addonbuild commit -m \"release: 1.2.0 - Bug fixes\"",
				"Pass the message with -m/--message",
			)
		}

		repo, err := git.Open(".")
		if err != nil {
			return errors.GitNotRepository()
		}

		if len(commitFilesFlag) > 0 {
			err = repo.Stage(commitFilesFlag)
		} else {
			err = repo.StageAll()
		}
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "staging changes")
		}

		hash, err := repo.Commit(message, commitAllowEmptyFlag)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "creating commit")
		}

		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("committed %s", hash[:7]))
		return nil
	},
}

func init() {
	commitCmd.GroupID = GroupGit
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringVarP(&commitMessageFlag, "message", "m", "", "Commit message")
	commitCmd.Flags().StringSliceVar(&commitFilesFlag, "files", nil, "Stage only these paths instead of everything")
	commitCmd.Flags().BoolVar(&commitAllowEmptyFlag, "allow-empty", false, "Allow a commit with no changes")
}
