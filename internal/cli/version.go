package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%s)\n",
			styleBrand.Render("Deskshell"),
			styleVersion.Render(buildinfo.Version),
			buildinfo.Codename)
		printField(out, "commit", buildinfo.CommitHash)
		printField(out, "built", buildinfo.BuildDate)
		printField(out, "OS/Arch", runtime.GOOS+"/"+runtime.GOARCH)
		printField(out, "Go", runtime.Version())
	},
}
