package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ariel-frischer/addonbuild/internal/config"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var (
	pushRemoteFlag string
	pushBranchFlag string
	pushTagsFlag   bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push commits (and optionally tags) to the remote",
	Long: `Push the current branch to the configured remote.

SSH remotes authenticate through the running ssh-agent. HTTPS remotes read
GIT_USERNAME/GIT_PASSWORD, falling back to GITHUB_TOKEN.`,
	Args:         cobra.NoArgs,
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

		remote := pickPath(pushRemoteFlag, cfg.Remote, "origin")
		branch := pickPath(pushBranchFlag, cfg.Branch, "")

		if err := pushWithSpinner(cmd, cfg, repo, remote, branch, pushTagsFlag); err != nil {
			return err
		}
		output.PrintSuccess(cmd.OutOrStdout(), "pushed to "+remote)
		return nil
	},
}

func init() {
	pushCmd.GroupID = GroupGit
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringVar(&pushRemoteFlag, "remote", "", "Remote to push to (default from config)")
	pushCmd.Flags().StringVar(&pushBranchFlag, "branch", "", "Branch to push (default current)")
	pushCmd.Flags().BoolVar(&pushTagsFlag, "tags", false, "Also push all tags")
}

// pushWithSpinner runs the network pushes under a context timeout with a
// terminal spinner so the wait is visible.
func pushWithSpinner(cmd *cobra.Command, cfg *config.Configuration, repo *git.Repo, remote, branch string, tags bool) error {
	timeout := git.DefaultPushTimeout
	if cfg.PushTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.PushTimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(cmd.ErrOrStderr()),
		spinner.WithSuffix(fmt.Sprintf(" pushing to %s...", remote)))
	spin.Start()
	defer spin.Stop()

	if err := repo.Push(ctx, remote, branch); err != nil {
		return errors.PushFailed(remote, err)
	}
	if tags {
		if err := repo.PushTags(ctx, remote); err != nil {
			return errors.PushFailed(remote, err)
		}
	}
	return nil
}
