// Package cli implements the deskshell CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/logging"
)

var (
	flagConfig  string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "deskshell",
	Short: "Desktop shell with a system tray and remembered window layout",
	Long: `Deskshell opens the main window and any enabled panels, restoring each
window's last position and size, and keeps a tray icon for showing, hiding
and quitting. Launching it again brings the running shell to the front.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(flagVerbose)
	},
	RunE: runShell,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "config file to try before the default locations")
	flags.StringVar(&flagDataDir, "data-dir", "", "directory for window state and instance info")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// configCandidates returns the config search order, with --config first.
func configCandidates() []string {
	paths := config.DefaultCandidates()
	if flagConfig != "" {
		paths = append([]string{flagConfig}, paths...)
	}
	return paths
}

func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return config.DataDir()
}
