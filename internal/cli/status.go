package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/deskshell/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a shell is running",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsInstanceRunning(dataDir())
	if err != nil {
		return fmt.Errorf("failed to check shell status: %w", err)
	}

	out := cmd.OutOrStdout()
	if !running {
		fmt.Fprintln(out, styleWarning.Render("Shell is not running."))
		if info != nil {
			fmt.Fprintln(out, styleHint.Render(fmt.Sprintf("Removed stale instance info for PID %d.", info.PID)))
		}
		return nil
	}

	fmt.Fprintln(out, styleSuccess.Render("Shell is running."))
	printField(out, "pid", fmt.Sprint(info.PID))
	printField(out, "version", info.AppVer)
	printField(out, "session", info.SessionID)
	printField(out, "started", info.StartedAt.Local().Format(time.DateTime))
	return nil
}
