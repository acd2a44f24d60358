package cli

import (
	"fmt"

	"github.com/ariel-frischer/addonbuild/internal/config"
	"github.com/ariel-frischer/addonbuild/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configTemplateFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging all layers.

Priority: ADDONBUILD_* environment variables > project config
(.addonbuild/config.yml) > user config > built-in defaults.

Use --template to print a commented starter config instead.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configTemplateFlag {
			fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rendered, err := renderConfigYAML(cfg)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "rendering configuration")
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	configCmd.GroupID = GroupUtility
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configTemplateFlag, "template", false, "Print a commented starter config")
}

// renderConfigYAML marshals the configuration with the same key names the
// config files use, so the output can be pasted back into a config file.
func renderConfigYAML(cfg *config.Configuration) (string, error) {
	view := map[string]interface{}{
		"addon_path":         cfg.AddonPath,
		"changelog_path":     cfg.ChangelogPath,
		"release_notes_path": cfg.ReleaseNotesPath,
		"remote":             cfg.Remote,
		"branch":             cfg.Branch,
		"tag_prefix":         cfg.TagPrefix,
		"non_interactive":    cfg.NonInteractive,
		"push_timeout":       cfg.PushTimeoutSeconds,
		"archive": map[string]interface{}{
			"output_dir": cfg.Archive.OutputDir,
			"paths":      cfg.Archive.Paths,
		},
	}
	data, err := yaml.Marshal(view)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
