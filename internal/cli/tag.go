package cli

import (
	stderrors "errors"

	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/spf13/cobra"
)

var tagMessageFlag string

var tagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Create a tag at HEAD",
	Long: `Create a tag at the current HEAD.

Without --message a lightweight tag is created; with it, an annotated tag.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		repo, err := git.Open(".")
		if err != nil {
			return errors.GitNotRepository()
		}

		if err := repo.CreateTag(name, tagMessageFlag); err != nil {
			if stderrors.Is(err, git.ErrTagExists) {
				return errors.TagAlreadyExists(name)
			}
			return errors.WrapWithMessage(err, errors.Runtime, "creating tag")
		}

		output.PrintSuccess(cmd.OutOrStdout(), "tagged "+name)
		return nil
	},
}

func init() {
	tagCmd.GroupID = GroupGit
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringVarP(&tagMessageFlag, "message", "m", "", "Annotation message (omit for a lightweight tag)")
}
