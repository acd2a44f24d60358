package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/addonbuild/internal/addon"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/ariel-frischer/addonbuild/internal/git"
	"github.com/ariel-frischer/addonbuild/internal/output"
	"github.com/spf13/cobra"
)

var (
	archiveOutputFlag    string
	archiveAddonPathFlag string
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Package the addon into an installable zip",
	Long: `Package the tracked files at HEAD into a zip named
{addon-id}-{version}.zip, with the addon id as the top-level directory the
way Kodi expects installable addon zips to be laid out.

Uncommitted changes are not included; the zip reflects HEAD.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		searchDir := pickPath(archiveAddonPathFlag, cfg.AddonPath, ".")
		manifestPath, err := addon.Find(searchDir)
		if err != nil {
			return errors.AddonXMLNotFound(searchDir)
		}
		manifest, err := addon.Load(manifestPath)
		if err != nil {
			return errors.InvalidAddonXML(err)
		}

		repo, err := git.Open(".")
		if err != nil {
			return errors.GitNotRepository()
		}

		outDir := pickPath(archiveOutputFlag, cfg.Archive.OutputDir, "dist")
		outPath, err := buildArchive(repo, manifest, outDir, cfg.Archive.Paths)
		if err != nil {
			return err
		}

		output.PrintSuccess(cmd.OutOrStdout(), "wrote "+outPath)
		return nil
	},
}

func init() {
	archiveCmd.GroupID = GroupRelease
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVar(&archiveOutputFlag, "output-dir", "", "Directory to write the zip into (default from config)")
	archiveCmd.Flags().StringVar(&archiveAddonPathFlag, "addon-path", "", "Directory searched for addon.xml")
}

// buildArchive writes {id}-{version}.zip into outDir and returns the path.
func buildArchive(repo *git.Repo, manifest *addon.Manifest, outDir string, paths []string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", errors.WrapWithMessage(err, errors.Runtime, "creating output directory")
	}

	name := fmt.Sprintf("%s-%s.zip", manifest.ID(), manifest.Version())
	outPath := filepath.Join(outDir, name)

	if err := repo.ArchiveToFile(outPath, manifest.ID(), paths); err != nil {
		return "", errors.WrapWithMessage(err, errors.Runtime, "building archive")
	}
	return outPath, nil
}
