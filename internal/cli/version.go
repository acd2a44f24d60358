package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/addonbuild/internal/version"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var versionPlainFlag bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for addonbuild",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionPlainFlag {
			fmt.Fprintf(out, "addonbuild %s\n", version.Version)
			fmt.Fprintf(out, "commit: %s\n", version.Commit)
			fmt.Fprintf(out, "built: %s\n", version.BuildDate)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return
		}

		bold := color.New(color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(out, "%s %s\n", bold("addonbuild"), version.Version)
		fmt.Fprintf(out, "%s %s\n", dim("commit:"), version.Commit)
		fmt.Fprintf(out, "%s %s\n", dim("built: "), version.BuildDate)
		fmt.Fprintf(out, "%s %s %s/%s\n", dim("go:    "), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.GroupID = GroupUtility
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionPlainFlag, "plain", false, "Plain output without formatting")
}
