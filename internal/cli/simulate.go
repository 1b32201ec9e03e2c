package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/config"
	"github.com/watchfire-io/deskshell/internal/tui"
	"github.com/watchfire-io/deskshell/internal/winstate"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the shell in the terminal without opening real windows",
	Long: `Simulate runs the normal startup sequence against an in-memory window
host. Keys stand in for tray clicks, menu items, second launches and window
moves; window state is saved to the data directory as usual.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := config.Resolve(configCandidates(), nil)

	res, err := tui.Run(tui.Options{
		Config: cfg,
		Store:  winstate.NewStore(dataDir(), nil),
	})
	if err != nil {
		return err
	}

	if res.Exited {
		fmt.Fprintf(cmd.OutOrStdout(), "Shell quit from the tray menu (exit code %d).\n", res.ExitCode)
	}
	return nil
}
