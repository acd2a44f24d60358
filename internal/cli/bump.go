package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ariel-frischer/addonbuild/internal/addon"
	"github.com/ariel-frischer/addonbuild/internal/changelog"
	"github.com/ariel-frischer/addonbuild/internal/config"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/news"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/ariel-frischer/addonbuild/internal/semver"
	"github.com/spf13/cobra"
)

var (
	bumpAddonPathFlag    string
	bumpChangelogFlag    string
	bumpReleaseNotesFlag string
	bumpSummaryFlag      string
	bumpNewsFlag         string
	bumpAddonNewsFlag    string
	bumpDryRunFlag       bool
)

var bumpCmd = &cobra.Command{
	Use:   "bump <major|minor|patch>",
	Short: "Bump the addon version and update release files",
	Long: `Bump the version in addon.xml and regenerate the release files.

The news text is Keep a Changelog style markdown: "### Added" style headers
(Added, Fixed, Changed, Deprecated, Removed, Security) followed by "- item"
bullets. From one news block addonbuild derives the CHANGELOG.md entry, the
release notes, the commit message, and the news field inside addon.xml.

Examples:
  addonbuild bump patch --summary "Bug fixes" --news "### Fixed
  - Resolver crash on empty playlists"

  addonbuild bump minor --dry-run    # Preview without writing`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		plan, err := prepareRelease(cmd, cfg, args[0])
		if err != nil {
			return err
		}

		if bumpDryRunFlag {
			previewRelease(cmd, plan)
			return nil
		}
		return applyRelease(cmd, cfg, plan)
	},
}

func init() {
	bumpCmd.GroupID = GroupRelease
	rootCmd.AddCommand(bumpCmd)

	addReleaseFlags(bumpCmd)
	bumpCmd.Flags().BoolVar(&bumpDryRunFlag, "dry-run", false, "Preview the release files without writing anything")
}

// addReleaseFlags registers the flags shared by bump and release.
func addReleaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&bumpAddonPathFlag, "addon-path", "", "Directory searched for addon.xml (default current directory)")
	cmd.Flags().StringVar(&bumpChangelogFlag, "changelog", "", "CHANGELOG.md path (default from config)")
	cmd.Flags().StringVar(&bumpReleaseNotesFlag, "release-notes", "", "Release notes path (default from config)")
	cmd.Flags().StringVar(&bumpSummaryFlag, "summary", "", "One-line release summary")
	cmd.Flags().StringVar(&bumpNewsFlag, "news", "", "Markdown news block describing the changes")
	cmd.Flags().StringVar(&bumpAddonNewsFlag, "addon-news", "", "Custom summary for the addon.xml news field")
}

// releasePlan holds everything prepareRelease computed so bump and release
// can write files and build commits without re-deriving state.
type releasePlan struct {
	Manifest   *addon.Manifest
	OldVersion string
	NewVersion string

	CommitMessage  string
	ChangelogEntry string
	ReleaseNotes   string
	AddonNews      string

	ChangelogPath    string
	ReleaseNotesPath string
}

// prepareRelease validates the manifest, computes the bumped version,
// collects the summary and news, and renders every release target. Nothing
// is written; the caller decides between preview and apply.
func prepareRelease(cmd *cobra.Command, cfg *config.Configuration, kind string) (*releasePlan, error) {
	switch kind {
	case semver.Major, semver.Minor, semver.Patch:
	default:
		return nil, errors.InvalidBumpType(kind)
	}

	searchDir := bumpAddonPathFlag
	if searchDir == "" {
		searchDir = cfg.AddonPath
	}
	if searchDir == "" {
		searchDir = "."
	}

	manifestPath, err := addon.Find(searchDir)
	if err != nil {
		return nil, errors.AddonXMLNotFound(searchDir)
	}
	manifest, err := addon.Load(manifestPath)
	if err != nil {
		return nil, errors.InvalidAddonXML(err)
	}

	newVersion, err := semver.Bump(manifest.Version(), kind)
	if err != nil {
		return nil, errors.InvalidAddonXML(err)
	}

	summary, rawNews, err := collectInput(cmd, cfg)
	if err != nil {
		return nil, err
	}

	formatter, err := news.New(summary, rawNews, newVersion)
	if err != nil {
		if news.IsFormatError(err) {
			return nil, errors.NewsFormatError(err)
		}
		return nil, errors.Wrap(err, errors.Argument)
	}

	addonNews, err := formatter.AddonNews(bumpAddonNewsFlag)
	if err != nil {
		if news.IsLengthExceeded(err) {
			return nil, errors.AddonNewsTooLong(err)
		}
		return nil, errors.Wrap(err, errors.Argument)
	}

	return &releasePlan{
		Manifest:         manifest,
		OldVersion:       manifest.Version(),
		NewVersion:       newVersion,
		CommitMessage:    formatter.CommitMessage(),
		ChangelogEntry:   formatter.ChangelogEntry(),
		ReleaseNotes:     formatter.ReleaseNotes(),
		AddonNews:        addonNews,
		ChangelogPath:    pickPath(bumpChangelogFlag, cfg.ChangelogPath, changelog.DefaultFilename),
		ReleaseNotesPath: pickPath(bumpReleaseNotesFlag, cfg.ReleaseNotesPath, "RELEASE_NOTES.md"),
	}, nil
}

// collectInput resolves the summary and news from flags, falling back to
// interactive prompts unless non-interactive mode forbids them.
func collectInput(cmd *cobra.Command, cfg *config.Configuration) (summary, rawNews string, err error) {
	summary = strings.TrimSpace(bumpSummaryFlag)
	rawNews = bumpNewsFlag

	if summary == "" {
		if cfg.NonInteractive {
			return "", "", errors.MissingSummary()
		}
		summary = promptLine(cmd, "Release summary")
	}
	if strings.TrimSpace(rawNews) == "" {
		if cfg.NonInteractive {
			return "", "", errors.MissingNews()
		}
		rawNews = promptMultiline(cmd, "News (markdown, e.g. \"### Fixed\" then \"- item\" lines)")
	}
	return summary, rawNews, nil
}

func pickPath(flag, configured, fallback string) string {
	if flag != "" {
		return flag
	}
	if configured != "" {
		return configured
	}
	return fallback
}

// previewRelease prints every rendered target without touching the tree.
func previewRelease(cmd *cobra.Command, plan *releasePlan) {
	out := cmd.OutOrStdout()
	output.PrintDryRun(out, fmt.Sprintf("would bump %s -> %s", plan.OldVersion, plan.NewVersion))
	output.PrintPreview(out, "commit message", plan.CommitMessage)
	output.PrintPreview(out, plan.ChangelogPath, plan.ChangelogEntry)
	output.PrintPreview(out, plan.ReleaseNotesPath, plan.ReleaseNotes)
	output.PrintPreview(out, "addon.xml news", plan.AddonNews)
}

// applyRelease writes the manifest, changelog, and release notes.
func applyRelease(cmd *cobra.Command, cfg *config.Configuration, plan *releasePlan) error {
	out := cmd.OutOrStdout()

	output.PrintStep(out, 1, 3, fmt.Sprintf("Updating %s to %s", addon.ManifestName, plan.NewVersion))
	if err := plan.Manifest.SetVersion(plan.NewVersion); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if err := plan.Manifest.SetNews(plan.AddonNews); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if err := plan.Manifest.Save(); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing "+addon.ManifestName)
	}

	output.PrintStep(out, 2, 3, "Updating "+plan.ChangelogPath)
	if err := changelog.Update(plan.ChangelogPath, plan.ChangelogEntry); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "updating "+plan.ChangelogPath)
	}

	output.PrintStep(out, 3, 3, "Writing "+plan.ReleaseNotesPath)
	if err := writeReleaseNotes(plan.ReleaseNotesPath, plan.ReleaseNotes); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing "+plan.ReleaseNotesPath)
	}

	output.PrintSuccess(out, fmt.Sprintf("%s released as %s", plan.Manifest.ID(), plan.NewVersion))
	return nil
}

// writeReleaseNotes replaces the release notes file; the changelog keeps the
// history, the notes file only ever describes the latest release.
func writeReleaseNotes(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}
