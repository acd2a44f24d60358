// Package git provides the version-control operations behind a release:
// staging, committing, tagging, pushing, and archiving the tracked tree.
// It uses the go-git library throughout, so no git CLI installation is
// required.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
)

// DefaultPushTimeout bounds network operations to prevent indefinite hangs.
const DefaultPushTimeout = 60 * time.Second

// ErrTagExists is returned by CreateTag when the tag name is already taken.
var ErrTagExists = errors.New("tag already exists")

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repo wraps an opened git repository.
type Repo struct {
	repo *gogit.Repository
}

// Open opens the repository containing path, traversing up the directory
// tree to find the repository root. An empty path means the current working
// directory.
func Open(path string) (*Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository at %s: %w", path, err)
	}

	return &Repo{repo: repo}, nil
}

// Root returns the absolute path of the repository worktree.
func (r *Repo) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// CurrentBranch returns the name of the checked-out branch, or empty string
// in detached HEAD state.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}
	return head.Name().Short(), nil
}

// IsClean reports whether the worktree has no modified, staged, or
// untracked files.
func (r *Repo) IsClean() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting worktree status: %w", err)
	}
	return status.IsClean(), nil
}

// StageAll stages every change in the worktree, including deletions.
func (r *Repo) StageAll() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	return nil
}

// Stage stages the given paths, relative to the repository root.
func (r *Repo) Stage(paths []string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	for _, path := range paths {
		if _, err := wt.Add(path); err != nil {
			return fmt.Errorf("staging %s: %w", path, err)
		}
	}
	return nil
}

// Commit commits the staged changes and returns the commit hash. Author and
// committer come from the repository's git config. An empty commit is
// rejected unless allowEmpty is set.
func (r *Repo) Commit(message string, allowEmpty bool) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("getting worktree: %w", err)
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		AllowEmptyCommits: allowEmpty,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrEmptyCommit) {
			return "", fmt.Errorf("no changes to commit")
		}
		return "", fmt.Errorf("committing changes: %w", err)
	}

	logDebug("[git] Commit: %s", hash)
	return hash.String(), nil
}

// CreateTag creates a tag at HEAD. With a message the tag is annotated;
// without one it is lightweight. An existing tag of the same name is an
// error.
func (r *Repo) CreateTag(name, message string) error {
	if _, err := r.repo.Tag(name); err == nil {
		return fmt.Errorf("tag %q: %w", name, ErrTagExists)
	}

	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("getting HEAD: %w", err)
	}

	var opts *gogit.CreateTagOptions
	if message != "" {
		opts = &gogit.CreateTagOptions{Message: message}
	}
	if _, err := r.repo.CreateTag(name, head.Hash(), opts); err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}

	logDebug("[git] CreateTag: %s at %s", name, head.Hash())
	return nil
}

// Push pushes a branch to the named remote. An empty branch pushes the
// current one. Already-up-to-date is not an error.
func (r *Repo) Push(ctx context.Context, remoteName, branch string) error {
	if branch == "" {
		var err error
		branch, err = r.CurrentBranch()
		if err != nil {
			return err
		}
		if branch == "" {
			return fmt.Errorf("cannot push: detached HEAD and no branch specified")
		}
	}

	refSpec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	return r.push(ctx, remoteName, refSpec)
}

// PushTags pushes all local tags to the named remote.
func (r *Repo) PushTags(ctx context.Context, remoteName string) error {
	return r.push(ctx, remoteName, config.RefSpec("refs/tags/*:refs/tags/*"))
}

func (r *Repo) push(ctx context.Context, remoteName string, refSpec config.RefSpec) error {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return fmt.Errorf("remote %q not configured: %w", remoteName, err)
	}

	var auth transport.AuthMethod
	if urls := remote.Config().URLs; len(urls) > 0 {
		auth = getAuthForURL(urls[0])
	}

	logDebug("[git] pushing %s to remote %q", refSpec, remoteName)

	err = r.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       auth,
	})
	if err == gogit.NoErrAlreadyUpToDate {
		return nil
	}
	if err != nil {
		return fmt.Errorf("pushing to remote %q: %w", remoteName, err)
	}
	return nil
}

// ResolveHead returns the hash HEAD points at.
func (r *Repo) ResolveHead() (plumbing.Hash, error) {
	head, err := r.repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting HEAD: %w", err)
	}
	return head.Hash(), nil
}

// getAuthForURL returns the appropriate authentication method for a remote
// URL. SSH URLs use SSH agent auth, HTTPS URLs use environment credentials.
func getAuthForURL(url string) transport.AuthMethod {
	if isSSHURL(url) {
		if !isSSHAgentAvailable() {
			logDebug("[git] SSH URL without SSH agent available")
			return nil
		}
		auth, err := ssh.NewSSHAgentAuth("git")
		if err != nil {
			logDebug("[git] SSH agent auth failed: %v", err)
			return nil
		}
		return auth
	}

	username := os.Getenv("GIT_USERNAME")
	password := os.Getenv("GIT_PASSWORD")
	if username == "" {
		username = os.Getenv("GITHUB_TOKEN")
		if username != "" {
			password = "" // GitHub token can be used as username with empty password
		}
	}

	if username != "" {
		return &http.BasicAuth{
			Username: username,
			Password: password,
		}
	}

	return nil
}

// isSSHURL checks if a URL is an SSH URL.
// Detects git@ (SCP-style), ssh://, and git+ssh:// schemes.
func isSSHURL(url string) bool {
	return strings.HasPrefix(url, "git@") ||
		strings.HasPrefix(url, "ssh://") ||
		strings.HasPrefix(url, "git+ssh://")
}

// isSSHAgentAvailable checks if an SSH agent is available.
func isSSHAgentAvailable() bool {
	return strings.TrimSpace(os.Getenv("SSH_AUTH_SOCK")) != ""
}
